package usecase

import (
	"context"
	"errors"
	"time"

	"libraryapi/internal/auth"
	"libraryapi/internal/entity"
)

// Title and Author only need to be present; blank-rejection is the store's
// job (both backends enforce it), and a one-character title is legal.
type AddBookParams struct {
	Title     string   `validate:"required"`
	Author    string   `validate:"required"`
	Published int32    `validate:"gte=0"`
	Genres    []string `validate:"dive,required"`
}

type CreateUserParams struct {
	Username      string `validate:"required,min=3,max=50"`
	FavoriteGenre string `validate:"required"`
	// Password is optional on the wire; empty falls back to the configured
	// default so existing createUser(username, favoriteGenre) calls keep
	// working.
	Password string
}

// MutationUsecase owns every write to the catalog and the user collection.
// Catalog writes require an authenticated viewer.
type MutationUsecase struct {
	authorRepo AuthorRepository
	bookRepo   BookRepository
	userRepo   UserRepository

	jwtSecret       string
	tokenTTL        time.Duration
	defaultPassword string
}

func NewMutationUsecase(authorRepo AuthorRepository, bookRepo BookRepository, userRepo UserRepository, jwtSecret string, tokenTTL time.Duration, defaultPassword string) *MutationUsecase {
	return &MutationUsecase{
		authorRepo:      authorRepo,
		bookRepo:        bookRepo,
		userRepo:        userRepo,
		jwtSecret:       jwtSecret,
		tokenTTL:        tokenTTL,
		defaultPassword: defaultPassword,
	}
}

// AddBook persists a new book. The author is looked up by name and created
// first when missing, so a book is never saved with a dangling author
// reference. Input is validated before any write; if the book insert itself
// fails the already-created author is kept (see DESIGN.md).
func (u *MutationUsecase) AddBook(ctx context.Context, viewer *entity.User, p AddBookParams) (BookWithAuthor, error) {
	if viewer == nil {
		return BookWithAuthor{}, ErrUnauthenticated
	}

	args := map[string]any{
		"title":     p.Title,
		"author":    p.Author,
		"published": p.Published,
		"genres":    p.Genres,
	}
	if err := validateStruct(p, args); err != nil {
		return BookWithAuthor{}, err
	}

	author, err := u.authorRepo.GetByName(ctx, p.Author)
	if errors.Is(err, ErrNotFound) {
		author = entity.Author{Name: p.Author}
		if createErr := u.authorRepo.Create(ctx, &author); createErr != nil {
			if _, ok := AsInvalidInput(createErr); !ok {
				return BookWithAuthor{}, createErr
			}
			// a concurrent request inserted the same name between our
			// lookup and the insert; use the winner's record
			author, err = u.authorRepo.GetByName(ctx, p.Author)
			if err != nil {
				return BookWithAuthor{}, storeError(createErr, args)
			}
		}
	} else if err != nil {
		return BookWithAuthor{}, err
	}

	book := entity.Book{
		Title:     p.Title,
		Published: p.Published,
		Genres:    p.Genres,
		AuthorID:  author.ID,
	}
	if err := u.bookRepo.Create(ctx, &book); err != nil {
		return BookWithAuthor{}, storeError(err, args)
	}

	return BookWithAuthor{Book: book, Author: author}, nil
}

// EditAuthor sets an author's birth year. An unknown name yields (nil, nil)
// rather than an error, so the API can return null for the field.
func (u *MutationUsecase) EditAuthor(ctx context.Context, viewer *entity.User, name string, setBornTo int32) (*entity.Author, error) {
	if viewer == nil {
		return nil, ErrUnauthenticated
	}

	author, err := u.authorRepo.GetByName(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	updated, err := u.authorRepo.UpdateBorn(ctx, author.ID, setBornTo)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(err, map[string]any{"name": name, "setBornTo": setBornTo})
	}
	return &updated, nil
}

func (u *MutationUsecase) CreateUser(ctx context.Context, p CreateUserParams) (entity.User, error) {
	args := map[string]any{
		"username":      p.Username,
		"favoriteGenre": p.FavoriteGenre,
	}
	if err := validateStruct(p, args); err != nil {
		return entity.User{}, err
	}

	password := p.Password
	if password == "" {
		password = u.defaultPassword
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return entity.User{}, err
	}

	user := entity.User{
		Username:      p.Username,
		FavoriteGenre: p.FavoriteGenre,
		PasswordHash:  hash,
	}
	if err := u.userRepo.Create(ctx, &user); err != nil {
		return entity.User{}, storeError(err, args)
	}
	return user, nil
}

// Login checks the credentials and issues a signed token binding
// {user id, username}. A missing user and a wrong password are
// indistinguishable to the caller.
func (u *MutationUsecase) Login(ctx context.Context, username, password string) (string, error) {
	args := map[string]any{"username": username}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return "", invalidInput(args, "wrong credentials")
	}
	if err != nil {
		return "", err
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return "", invalidInput(args, "wrong credentials")
	}

	return auth.GenerateToken(u.jwtSecret, user.ID, user.Username, u.tokenTTL)
}

// storeError re-surfaces store-level validation and uniqueness failures as
// InvalidInputError with the mutation's arguments attached; anything else
// propagates untouched.
func storeError(err error, args map[string]any) error {
	var iie *InvalidInputError
	if errors.As(err, &iie) {
		return invalidInput(args, "%s", iie.Message)
	}
	return err
}
