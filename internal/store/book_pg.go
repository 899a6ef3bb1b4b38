package store

import (
	"context"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) List(ctx context.Context, p usecase.BookListParams) ([]usecase.BookWithAuthor, error) {
	const query = `
	SELECT b.id, b.title, b.published, b.genres, b.author_id, b.created_at, b.updated_at,
	       a.id, a.name, a.born, a.created_at, a.updated_at
	FROM books b
	JOIN authors a ON a.id = b.author_id
	WHERE ($1 = '' OR a.name = $1)
	AND ($2 = '' OR $2 = ANY(b.genres))
	ORDER BY b.created_at, b.id
	`
	rows, err := r.db.Query(ctx, query, p.AuthorName, p.Genre)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []usecase.BookWithAuthor
	for rows.Next() {
		var b usecase.BookWithAuthor
		err := rows.Scan(
			&b.ID, &b.Title, &b.Published, &b.Genres, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
			&b.Author.ID, &b.Author.Name, &b.Author.Born, &b.Author.CreatedAt, &b.Author.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookPG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&n)
	return n, err
}

func (r *BookPG) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE author_id = $1`, authorID).Scan(&n)
	return n, err
}

func (r *BookPG) Create(ctx context.Context, book *entity.Book) error {
	const query = `
	INSERT INTO books (id, title, published, genres, author_id)
	VALUES (gen_random_uuid(), $1, $2, $3, $4)
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, book.Title, book.Published, book.Genres, book.AuthorID).
		Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	return mapPgError(err)
}
