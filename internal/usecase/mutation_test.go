package usecase_test

import (
	"context"
	"testing"
	"time"

	"libraryapi/internal/auth"
	"libraryapi/internal/entity"
	"libraryapi/internal/store"
	"libraryapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newMutationFixture(t *testing.T) (*store.Memory, *usecase.MutationUsecase, *usecase.QueryUsecase) {
	t.Helper()
	mem := store.NewMemory()
	m := usecase.NewMutationUsecase(mem.Authors(), mem.Books(), mem.Users(), testSecret, time.Hour, "secret")
	q := usecase.NewQueryUsecase(mem.Authors(), mem.Books())
	return mem, m, q
}

func testViewer() *entity.User {
	return &entity.User{ID: "viewer-id", Username: "viewer"}
}

func TestAddBook_RequiresAuthentication(t *testing.T) {
	_, m, _ := newMutationFixture(t)

	_, err := m.AddBook(context.Background(), nil, usecase.AddBookParams{
		Title: "Clean Code", Author: "Robert Martin", Published: 2008, Genres: []string{"refactoring"},
	})
	assert.ErrorIs(t, err, usecase.ErrUnauthenticated)
}

func TestAddBook_CreatesMissingAuthorOnce(t *testing.T) {
	_, m, q := newMutationFixture(t)
	ctx := context.Background()

	book, err := m.AddBook(ctx, testViewer(), usecase.AddBookParams{
		Title: "Clean Code", Author: "Robert Martin", Published: 2008, Genres: []string{"refactoring"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, book.ID)
	assert.Equal(t, "Robert Martin", book.Author.Name)
	assert.Equal(t, book.Author.ID, book.AuthorID)

	authorCount, err := q.AuthorCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, authorCount)

	// same author name again creates zero additional authors
	_, err = m.AddBook(ctx, testViewer(), usecase.AddBookParams{
		Title: "Agile software development", Author: "Robert Martin", Published: 2002, Genres: []string{"agile"},
	})
	require.NoError(t, err)

	authorCount, err = q.AuthorCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, authorCount)

	bookCount, err := q.BookCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, bookCount)
}

func TestAddBook_ValidatesBeforeAnyWrite(t *testing.T) {
	_, m, q := newMutationFixture(t)
	ctx := context.Background()

	_, err := m.AddBook(ctx, testViewer(), usecase.AddBookParams{
		Title: "", Author: "Phantom Author", Published: 2020,
	})
	iie, ok := usecase.AsInvalidInput(err)
	require.True(t, ok, "want InvalidInputError, got %v", err)
	assert.Equal(t, "Phantom Author", iie.Args["author"])

	// the invalid book must not have left an author behind
	authorCount, err := q.AuthorCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, authorCount)
}

func TestAddBook_SingleCharacterTitleAndAuthor(t *testing.T) {
	_, m, _ := newMutationFixture(t)

	book, err := m.AddBook(context.Background(), testViewer(), usecase.AddBookParams{
		Title: "X", Author: "A", Published: 2020, Genres: []string{"x"},
	})
	require.NoError(t, err)
	assert.Equal(t, "X", book.Title)
	assert.Equal(t, "A", book.Author.Name)
}

// contestedAuthorRepo simulates losing a creation race: another request
// inserts the same author name between our lookup and our insert.
type contestedAuthorRepo struct {
	usecase.AuthorRepository
	contested bool
}

func (r *contestedAuthorRepo) Create(ctx context.Context, author *entity.Author) error {
	if !r.contested {
		r.contested = true
		winner := entity.Author{Name: author.Name}
		if err := r.AuthorRepository.Create(ctx, &winner); err != nil {
			return err
		}
	}
	return r.AuthorRepository.Create(ctx, author)
}

func TestAddBook_ReusesAuthorLostToConcurrentCreate(t *testing.T) {
	mem := store.NewMemory()
	authors := &contestedAuthorRepo{AuthorRepository: mem.Authors()}
	m := usecase.NewMutationUsecase(authors, mem.Books(), mem.Users(), testSecret, time.Hour, "secret")
	q := usecase.NewQueryUsecase(mem.Authors(), mem.Books())
	ctx := context.Background()

	book, err := m.AddBook(ctx, testViewer(), usecase.AddBookParams{
		Title: "Clean Code", Author: "Robert Martin", Published: 2008, Genres: []string{"refactoring"},
	})
	require.NoError(t, err, "losing the author-create race must not fail the mutation")
	assert.Equal(t, "Robert Martin", book.Author.Name)

	winner, err := mem.Authors().GetByName(ctx, "Robert Martin")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, book.AuthorID, "book must reference the record that won the race")

	authorCount, err := q.AuthorCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, authorCount)
}

func TestAddBook_EmptyGenresAllowed(t *testing.T) {
	_, m, _ := newMutationFixture(t)

	book, err := m.AddBook(context.Background(), testViewer(), usecase.AddBookParams{
		Title: "Untagged", Author: "Somebody", Published: 1999,
	})
	require.NoError(t, err)
	assert.Empty(t, book.Genres)
}

func TestEditAuthor(t *testing.T) {
	mem, m, _ := newMutationFixture(t)
	ctx := context.Background()

	author := entity.Author{Name: "Sandi Metz"}
	require.NoError(t, mem.Authors().Create(ctx, &author))

	t.Run("requires authentication", func(t *testing.T) {
		_, err := m.EditAuthor(ctx, nil, "Sandi Metz", 1961)
		assert.ErrorIs(t, err, usecase.ErrUnauthenticated)
	})

	t.Run("unknown name returns nothing and writes nothing", func(t *testing.T) {
		got, err := m.EditAuthor(ctx, testViewer(), "Nobody", 1900)
		require.NoError(t, err)
		assert.Nil(t, got)

		stored, err := mem.Authors().GetByName(ctx, "Sandi Metz")
		require.NoError(t, err)
		assert.Nil(t, stored.Born)
	})

	t.Run("known name updates idempotently", func(t *testing.T) {
		got, err := m.EditAuthor(ctx, testViewer(), "Sandi Metz", 1961)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.Born)
		assert.Equal(t, int32(1961), *got.Born)

		again, err := m.EditAuthor(ctx, testViewer(), "Sandi Metz", 1961)
		require.NoError(t, err)
		require.NotNil(t, again)
		assert.Equal(t, *got.Born, *again.Born)

		stored, err := mem.Authors().GetByName(ctx, "Sandi Metz")
		require.NoError(t, err)
		require.NotNil(t, stored.Born)
		assert.Equal(t, int32(1961), *stored.Born)
	})
}

func TestCreateUser(t *testing.T) {
	_, m, _ := newMutationFixture(t)
	ctx := context.Background()

	user, err := m.CreateUser(ctx, usecase.CreateUserParams{Username: "mluukkai", FavoriteGenre: "crime"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "mluukkai", user.Username)
	assert.Equal(t, "crime", user.FavoriteGenre)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret", user.PasswordHash)

	t.Run("duplicate username surfaces the field", func(t *testing.T) {
		_, err := m.CreateUser(ctx, usecase.CreateUserParams{Username: "mluukkai", FavoriteGenre: "scifi"})
		iie, ok := usecase.AsInvalidInput(err)
		require.True(t, ok, "want InvalidInputError, got %v", err)
		assert.Equal(t, "mluukkai", iie.Args["username"])
	})

	t.Run("short username rejected", func(t *testing.T) {
		_, err := m.CreateUser(ctx, usecase.CreateUserParams{Username: "ab", FavoriteGenre: "crime"})
		_, ok := usecase.AsInvalidInput(err)
		assert.True(t, ok, "want InvalidInputError, got %v", err)
	})
}

func TestLogin(t *testing.T) {
	_, m, _ := newMutationFixture(t)
	ctx := context.Background()

	user, err := m.CreateUser(ctx, usecase.CreateUserParams{
		Username: "alice", FavoriteGenre: "scifi", Password: "correct",
	})
	require.NoError(t, err)

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := m.Login(ctx, "alice", "wrong")
		iie, ok := usecase.AsInvalidInput(err)
		require.True(t, ok, "want InvalidInputError, got %v", err)
		assert.Equal(t, "wrong credentials", iie.Message)
	})

	t.Run("unknown user rejected the same way", func(t *testing.T) {
		_, err := m.Login(ctx, "bob", "correct")
		iie, ok := usecase.AsInvalidInput(err)
		require.True(t, ok, "want InvalidInputError, got %v", err)
		assert.Equal(t, "wrong credentials", iie.Message)
	})

	t.Run("valid credentials issue a token bound to the user", func(t *testing.T) {
		token, err := m.Login(ctx, "alice", "correct")
		require.NoError(t, err)

		claims, err := auth.ParseToken(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.Sub)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("default password applies when createUser omitted one", func(t *testing.T) {
		_, err := m.CreateUser(ctx, usecase.CreateUserParams{Username: "carol", FavoriteGenre: "crime"})
		require.NoError(t, err)

		_, err = m.Login(ctx, "carol", "secret")
		assert.NoError(t, err)
	})
}
