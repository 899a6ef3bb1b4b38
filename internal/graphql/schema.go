package graphql

// Schema is the public query/mutation surface of the library catalog.
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

type Author {
	name: String!
	id: ID!
	born: Int
	bookCount: Int!
}

type Book {
	title: String!
	published: Int!
	author: Author!
	genres: [String!]!
	id: ID!
}

type User {
	username: String!
	favoriteGenre: String!
	id: ID!
}

type Token {
	value: String!
}

type Query {
	bookCount: Int!
	authorCount: Int!
	allAuthors: [Author!]!
	allBooks(author: String, genre: String): [Book!]!
	me: User
}

type Mutation {
	addBook(
		title: String!
		author: String!
		published: Int!
		genres: [String!]!
	): Book
	editAuthor(name: String!, setBornTo: Int!): Author
	createUser(username: String!, favoriteGenre: String!, password: String): User
	login(username: String!, password: String!): Token
}
`
