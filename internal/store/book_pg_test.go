package store

import (
	"context"
	"testing"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookPG_CreateAndListFilters(t *testing.T) {
	db := setupTestDB(t)
	authors := NewAuthorPG(db)
	books := NewBookPG(db)
	ctx := context.Background()

	marker := uuid.New().String()
	authorName := "Author " + marker
	author := entity.Author{Name: authorName}
	require.NoError(t, authors.Create(ctx, &author))

	genre := "genre-" + marker
	book := entity.Book{
		Title:     "Book " + marker,
		Published: 2020,
		Genres:    []string{genre, "extra"},
		AuthorID:  author.ID,
	}
	require.NoError(t, books.Create(ctx, &book))
	require.NotEmpty(t, book.ID)

	t.Run("filter by author name resolves the author", func(t *testing.T) {
		got, err := books.List(ctx, usecase.BookListParams{AuthorName: authorName})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, book.ID, got[0].ID)
		assert.Equal(t, authorName, got[0].Author.Name)
		assert.Equal(t, []string{genre, "extra"}, got[0].Genres)
	})

	t.Run("filter by genre membership", func(t *testing.T) {
		got, err := books.List(ctx, usecase.BookListParams{Genre: genre})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, book.ID, got[0].ID)
	})

	t.Run("both filters intersect", func(t *testing.T) {
		got, err := books.List(ctx, usecase.BookListParams{AuthorName: authorName, Genre: "no-such-genre"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("count by author", func(t *testing.T) {
		n, err := books.CountByAuthor(ctx, author.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestBookPG_CreateDanglingAuthor(t *testing.T) {
	db := setupTestDB(t)
	books := NewBookPG(db)

	book := entity.Book{
		Title:     "Orphan " + uuid.New().String(),
		Published: 2000,
		AuthorID:  uuid.New().String(),
	}
	err := books.Create(context.Background(), &book)
	assert.Error(t, err, "foreign key to a missing author must fail")
}
