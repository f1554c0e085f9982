// Package resolvers binds the zoo operations to a GraphQL schema served by
// graph-gophers/graphql-go.
package resolvers

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/graph-gophers/animals/zoo"
)

// Schema is the GraphQL SDL of the animals API.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}
	# The query type, represents all of the entry points into the zoo
	type Query {
		# Every animal, in the order it was added
		animals: [Animal]
		# The first animal with the given species, or null
		animal(species: String!): Animal
		# "<species> makes the sound: <sound>", or null if the species is unknown
		makeSound(species: String!): String
	}
	# The mutation type, represents all updates we can make to the zoo
	type Mutation {
		# Adds an animal. The type is taken from kind when given, otherwise from
		# the first of favoritePlant, favoriteFood, eatsInsects that is present.
		addAnimal(
			species: String!
			age: Float!
			weight: Float!
			sound: String!
			favoriteFood: String
			favoritePlant: String
			eatsInsects: Boolean
			favoriteInsect: String
			kind: AnimalKind
		): Animal
		# Overwrites an existing animal. Omitted fields are cleared and the
		# animal keeps its type.
		setAnimal(
			species: String!
			age: Float
			weight: Float
			sound: String
			favoriteFood: String
			favoritePlant: String
			eatsInsects: Boolean
			favoriteInsect: String
		): Animal
		# Removes every animal with the given species. False if there was none.
		deleteAnimal(species: String!): Boolean
	}
	# The concrete type of an animal
	enum AnimalKind {
		CARNIVOROUS
		HERBIVOROUS
		INSECT
	}
	# An animal of the zoo
	interface Animal {
		# Unique name of the animal
		species: String
		# Age in years
		age: Float
		# Weight in kilograms
		weight: Float
		sound: String
	}
	# A meat eater
	type Carnivorous implements Animal {
		species: String
		age: Float
		weight: Float
		sound: String
		favoriteFood: String
	}
	# A plant eater
	type Herbivorous implements Animal {
		species: String
		age: Float
		weight: Float
		sound: String
		favoritePlant: String
	}
	type Insect implements Animal {
		species: String
		age: Float
		weight: Float
		sound: String
		eatsInsects: Boolean
		favoriteInsect: String
	}
`

// NewSchema parses Schema with a resolver backed by q and d.
func NewSchema(q *zoo.Queries, d *zoo.Dispatcher, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, &Resolver{queries: q, dispatcher: d}, opts...)
}

// MustNewSchema is like NewSchema but panics on error.
func MustNewSchema(q *zoo.Queries, d *zoo.Dispatcher, opts ...graphql.SchemaOpt) *graphql.Schema {
	s, err := NewSchema(q, d, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
