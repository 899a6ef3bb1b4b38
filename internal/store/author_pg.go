package store

import (
	"context"
	"errors"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthorPG struct {
	db *pgxpool.Pool
}

func NewAuthorPG(db *pgxpool.Pool) *AuthorPG {
	return &AuthorPG{db: db}
}

func (r *AuthorPG) List(ctx context.Context) ([]entity.Author, error) {
	const query = `
	SELECT id, name, born, created_at, updated_at
	FROM authors
	ORDER BY created_at, id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []entity.Author
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Born, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *AuthorPG) GetByName(ctx context.Context, name string) (entity.Author, error) {
	const query = `
	SELECT id, name, born, created_at, updated_at
	FROM authors
	WHERE name = $1
	LIMIT 1
	`
	var a entity.Author
	err := r.db.QueryRow(ctx, query, name).Scan(&a.ID, &a.Name, &a.Born, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Author{}, usecase.ErrNotFound
		}
		return entity.Author{}, err
	}
	return a, nil
}

func (r *AuthorPG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&n)
	return n, err
}

func (r *AuthorPG) Create(ctx context.Context, author *entity.Author) error {
	const query = `
	INSERT INTO authors (id, name, born)
	VALUES (gen_random_uuid(), $1, $2)
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, author.Name, author.Born).Scan(&author.ID, &author.CreatedAt, &author.UpdatedAt)
	return mapPgError(err)
}

func (r *AuthorPG) UpdateBorn(ctx context.Context, id string, born int32) (entity.Author, error) {
	const query = `
	UPDATE authors
	SET born = $2, updated_at = now()
	WHERE id = $1
	RETURNING id, name, born, created_at, updated_at
	`
	var a entity.Author
	err := r.db.QueryRow(ctx, query, id, born).Scan(&a.ID, &a.Name, &a.Born, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Author{}, usecase.ErrNotFound
		}
		return entity.Author{}, mapPgError(err)
	}
	return a, nil
}
