package graphql

import (
	"context"

	"libraryapi/internal/entity"
	"libraryapi/internal/httpx"
	"libraryapi/internal/usecase"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

// Resolver is the root resolver: every query and mutation field maps onto a
// service call. Request identity is read from the context placed there by the
// auth middleware.
type Resolver struct {
	query    *usecase.QueryUsecase
	mutation *usecase.MutationUsecase
}

func NewResolver(query *usecase.QueryUsecase, mutation *usecase.MutationUsecase) *Resolver {
	return &Resolver{query: query, mutation: mutation}
}

// MustSchema parses the SDL and binds it to the resolver; mismatches between
// the two are a programming error and panic at startup.
func MustSchema(r *Resolver) *graphqlgo.Schema {
	return graphqlgo.MustParseSchema(Schema, r)
}

func (r *Resolver) BookCount(ctx context.Context) (int32, error) {
	n, err := r.query.BookCount(ctx)
	return int32(n), err
}

func (r *Resolver) AuthorCount(ctx context.Context) (int32, error) {
	n, err := r.query.AuthorCount(ctx)
	return int32(n), err
}

func (r *Resolver) AllAuthors(ctx context.Context) ([]*AuthorResolver, error) {
	authors, err := r.query.AllAuthors(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*AuthorResolver, 0, len(authors))
	for _, a := range authors {
		count := int32(a.BookCount)
		out = append(out, &AuthorResolver{query: r.query, author: a.Author, count: &count})
	}
	return out, nil
}

func (r *Resolver) AllBooks(ctx context.Context, args struct {
	Author *string
	Genre  *string
}) ([]*BookResolver, error) {
	var p usecase.BookListParams
	if args.Author != nil {
		p.AuthorName = *args.Author
	}
	if args.Genre != nil {
		p.Genre = *args.Genre
	}
	books, err := r.query.AllBooks(ctx, p)
	if err != nil {
		return nil, err
	}
	out := make([]*BookResolver, 0, len(books))
	for _, b := range books {
		out = append(out, &BookResolver{query: r.query, book: b.Book, author: b.Author})
	}
	return out, nil
}

func (r *Resolver) Me(ctx context.Context) *UserResolver {
	viewer := r.query.Me(httpx.UserFromContext(ctx))
	if viewer == nil {
		return nil
	}
	return &UserResolver{user: *viewer}
}

func (r *Resolver) AddBook(ctx context.Context, args struct {
	Title     string
	Author    string
	Published int32
	Genres    []string
}) (*BookResolver, error) {
	book, err := r.mutation.AddBook(ctx, httpx.UserFromContext(ctx), usecase.AddBookParams{
		Title:     args.Title,
		Author:    args.Author,
		Published: args.Published,
		Genres:    args.Genres,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return &BookResolver{query: r.query, book: book.Book, author: book.Author}, nil
}

func (r *Resolver) EditAuthor(ctx context.Context, args struct {
	Name      string
	SetBornTo int32
}) (*AuthorResolver, error) {
	author, err := r.mutation.EditAuthor(ctx, httpx.UserFromContext(ctx), args.Name, args.SetBornTo)
	if err != nil {
		return nil, wrapError(err)
	}
	if author == nil {
		return nil, nil
	}
	return &AuthorResolver{query: r.query, author: *author}, nil
}

func (r *Resolver) CreateUser(ctx context.Context, args struct {
	Username      string
	FavoriteGenre string
	Password      *string
}) (*UserResolver, error) {
	p := usecase.CreateUserParams{
		Username:      args.Username,
		FavoriteGenre: args.FavoriteGenre,
	}
	if args.Password != nil {
		p.Password = *args.Password
	}
	user, err := r.mutation.CreateUser(ctx, p)
	if err != nil {
		return nil, wrapError(err)
	}
	return &UserResolver{user: user}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct {
	Username string
	Password string
}) (*TokenResolver, error) {
	token, err := r.mutation.Login(ctx, args.Username, args.Password)
	if err != nil {
		return nil, wrapError(err)
	}
	return &TokenResolver{value: token}, nil
}

// AuthorResolver serves the Author type. The book count is precomputed by
// allAuthors and computed on demand everywhere else.
type AuthorResolver struct {
	query  *usecase.QueryUsecase
	author entity.Author
	count  *int32
}

func (r *AuthorResolver) Name() string { return r.author.Name }

func (r *AuthorResolver) ID() graphqlgo.ID { return graphqlgo.ID(r.author.ID) }

func (r *AuthorResolver) Born() *int32 { return r.author.Born }

func (r *AuthorResolver) BookCount(ctx context.Context) (int32, error) {
	if r.count != nil {
		return *r.count, nil
	}
	n, err := r.query.AuthorBookCount(ctx, r.author.ID)
	return int32(n), err
}

type BookResolver struct {
	query  *usecase.QueryUsecase
	book   entity.Book
	author entity.Author
}

func (r *BookResolver) Title() string { return r.book.Title }

func (r *BookResolver) Published() int32 { return r.book.Published }

func (r *BookResolver) Author() *AuthorResolver {
	return &AuthorResolver{query: r.query, author: r.author}
}

func (r *BookResolver) Genres() []string {
	if r.book.Genres == nil {
		return []string{}
	}
	return r.book.Genres
}

func (r *BookResolver) ID() graphqlgo.ID { return graphqlgo.ID(r.book.ID) }

type UserResolver struct {
	user entity.User
}

func (r *UserResolver) Username() string { return r.user.Username }

func (r *UserResolver) FavoriteGenre() string { return r.user.FavoriteGenre }

func (r *UserResolver) ID() graphqlgo.ID { return graphqlgo.ID(r.user.ID) }

type TokenResolver struct {
	value string
}

func (r *TokenResolver) Value() string { return r.value }
