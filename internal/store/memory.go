package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/google/uuid"
)

// Memory is a mutex-guarded in-memory store. It backs the test suites and the
// STORE=memory dev mode, and enforces the same uniqueness rules as the
// Postgres schema so both backends reject the same inputs.
type Memory struct {
	mu      sync.RWMutex
	authors []entity.Author
	books   []entity.Book
	users   []entity.User
}

func NewMemory() *Memory {
	return &Memory{}
}

// Authors returns the author repository view of the store.
func (m *Memory) Authors() usecase.AuthorRepository { return (*memoryAuthors)(m) }

// Books returns the book repository view of the store.
func (m *Memory) Books() usecase.BookRepository { return (*memoryBooks)(m) }

// Users returns the user repository view of the store.
func (m *Memory) Users() usecase.UserRepository { return (*memoryUsers)(m) }

type memoryAuthors Memory

func (m *memoryAuthors) List(ctx context.Context) ([]entity.Author, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.Author, len(m.authors))
	copy(out, m.authors)
	return out, nil
}

func (m *memoryAuthors) GetByName(ctx context.Context, name string) (entity.Author, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.authors {
		if a.Name == name {
			return a, nil
		}
	}
	return entity.Author{}, usecase.ErrNotFound
}

func (m *memoryAuthors) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.authors), nil
}

func (m *memoryAuthors) Create(ctx context.Context, author *entity.Author) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if strings.TrimSpace(author.Name) == "" {
		return &usecase.InvalidInputError{Message: "author name must not be empty"}
	}
	for _, a := range m.authors {
		if a.Name == author.Name {
			return &usecase.InvalidInputError{Message: "duplicate author name: " + author.Name}
		}
	}
	now := time.Now()
	author.ID = uuid.New().String()
	author.CreatedAt = now
	author.UpdatedAt = now
	m.authors = append(m.authors, *author)
	return nil
}

func (m *memoryAuthors) UpdateBorn(ctx context.Context, id string, born int32) (entity.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.authors {
		if m.authors[i].ID == id {
			m.authors[i].Born = &born
			m.authors[i].UpdatedAt = time.Now()
			return m.authors[i], nil
		}
	}
	return entity.Author{}, usecase.ErrNotFound
}

type memoryBooks Memory

func (m *memoryBooks) List(ctx context.Context, p usecase.BookListParams) ([]usecase.BookWithAuthor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byID := make(map[string]entity.Author, len(m.authors))
	for _, a := range m.authors {
		byID[a.ID] = a
	}

	var out []usecase.BookWithAuthor
	for _, b := range m.books {
		author := byID[b.AuthorID]
		if p.AuthorName != "" && author.Name != p.AuthorName {
			continue
		}
		if p.Genre != "" && !containsGenre(b.Genres, p.Genre) {
			continue
		}
		out = append(out, usecase.BookWithAuthor{Book: b, Author: author})
	}
	return out, nil
}

func containsGenre(genres []string, genre string) bool {
	for _, g := range genres {
		if g == genre {
			return true
		}
	}
	return false
}

func (m *memoryBooks) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.books), nil
}

func (m *memoryBooks) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, b := range m.books {
		if b.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (m *memoryBooks) Create(ctx context.Context, book *entity.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if strings.TrimSpace(book.Title) == "" {
		return &usecase.InvalidInputError{Message: "book title must not be empty"}
	}
	found := false
	for _, a := range m.authors {
		if a.ID == book.AuthorID {
			found = true
			break
		}
	}
	if !found {
		return &usecase.InvalidInputError{Message: "book references unknown author id: " + book.AuthorID}
	}
	now := time.Now()
	book.ID = uuid.New().String()
	book.CreatedAt = now
	book.UpdatedAt = now
	m.books = append(m.books, *book)
	return nil
}

type memoryUsers Memory

func (m *memoryUsers) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return entity.User{}, usecase.ErrNotFound
}

func (m *memoryUsers) GetByID(ctx context.Context, id string) (entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return entity.User{}, usecase.ErrNotFound
}

func (m *memoryUsers) Create(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return &usecase.InvalidInputError{Message: "duplicate username: " + user.Username}
		}
	}
	now := time.Now()
	user.ID = uuid.New().String()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.users = append(m.users, *user)
	return nil
}
