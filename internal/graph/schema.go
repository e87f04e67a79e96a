package graph

// DefaultLimit is the pagination window size used when the client does not
// supply one.
const DefaultLimit = 10

// schemaDefinition is the complete GraphQL schema served by the API.
const schemaDefinition = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	hello: String
	getUser(id: Int!): User!
	getManyUsers(offset: Int, limit: Int = 10): UserPagination!
}

type Mutation {
	createUser(data: UserInput!): User!
	login(data: LoginInput!): Authentication!
}

type User {
	id: Int!
	name: String!
	email: String!
	birthDate: String!
	addresses: [Address]!
}

type Address {
	zipCode: Int!
	street: String!
	streetNumber: Int!
	city: String!
	state: String!
	complement: String
	neighborhood: String
}

type UserPagination {
	totalCount: Int!
	users: [User!]!
	hasMoreUsers: Boolean
}

type Authentication {
	user: User!
	token: String!
}

input UserInput {
	name: String!
	email: String!
	password: String!
	birthDate: String!
}

input LoginInput {
	email: String!
	password: String!
	rememberMe: Boolean!
}
`
