package usecase

import (
	"context"

	"libraryapi/internal/entity"
)

// AuthorWithBookCount augments an author with its derived book count. The
// count is computed from the book collection at read time, never stored.
type AuthorWithBookCount struct {
	entity.Author
	BookCount int
}

// QueryUsecase answers the read-only side of the catalog. It never fails on
// empty results: "no match" is an empty slice.
type QueryUsecase struct {
	authorRepo AuthorRepository
	bookRepo   BookRepository
}

func NewQueryUsecase(authorRepo AuthorRepository, bookRepo BookRepository) *QueryUsecase {
	return &QueryUsecase{
		authorRepo: authorRepo,
		bookRepo:   bookRepo,
	}
}

func (u *QueryUsecase) BookCount(ctx context.Context) (int, error) {
	return u.bookRepo.Count(ctx)
}

func (u *QueryUsecase) AuthorCount(ctx context.Context) (int, error) {
	return u.authorRepo.Count(ctx)
}

func (u *QueryUsecase) AllAuthors(ctx context.Context) ([]AuthorWithBookCount, error) {
	authors, err := u.authorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]AuthorWithBookCount, 0, len(authors))
	for _, author := range authors {
		count, err := u.bookRepo.CountByAuthor(ctx, author.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, AuthorWithBookCount{Author: author, BookCount: count})
	}
	return result, nil
}

// AuthorBookCount computes the derived book count for a single author.
func (u *QueryUsecase) AuthorBookCount(ctx context.Context, authorID string) (int, error) {
	return u.bookRepo.CountByAuthor(ctx, authorID)
}

// AllBooks lists books matching the supplied filters (AND when both are
// given), each with its author reference resolved to the full record.
func (u *QueryUsecase) AllBooks(ctx context.Context, p BookListParams) ([]BookWithAuthor, error) {
	books, err := u.bookRepo.List(ctx, p)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []BookWithAuthor{}
	}
	return books, nil
}

// Me returns the acting identity as resolved by request authentication.
// Anonymous requests get nil, not an error.
func (u *QueryUsecase) Me(viewer *entity.User) *entity.User {
	return viewer
}
