package usecase

import (
	"context"

	"libraryapi/internal/entity"
)

// BookListParams filters a book listing. Zero values mean "no filter";
// both filters supplied means logical AND.
type BookListParams struct {
	AuthorName string
	Genre      string
}

// BookWithAuthor is a book with its author reference already resolved.
type BookWithAuthor struct {
	entity.Book
	Author entity.Author
}

// Repository interfaces
// Define the contract between the services and the backing store. A Postgres
// implementation lives in internal/store, next to an in-memory one used by
// tests and dev mode.

type AuthorRepository interface {
	// List authors in insertion order
	List(ctx context.Context) ([]entity.Author, error)
	// GetByName looks an author up by its unique display name
	GetByName(ctx context.Context, name string) (entity.Author, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, author *entity.Author) error
	// UpdateBorn sets the birth year and returns the stored author
	UpdateBorn(ctx context.Context, id string, born int32) (entity.Author, error)
}

type BookRepository interface {
	// List books matching the params, each with its author resolved
	List(ctx context.Context, p BookListParams) ([]BookWithAuthor, error)
	Count(ctx context.Context) (int, error)
	CountByAuthor(ctx context.Context, authorID string) (int, error)
	Create(ctx context.Context, book *entity.Book) error
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (entity.User, error)
	GetByID(ctx context.Context, id string) (entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
