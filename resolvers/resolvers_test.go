package resolvers_test

import (
	"testing"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/graph-gophers/animals/gqltesting"
	"github.com/graph-gophers/animals/resolvers"
	"github.com/graph-gophers/animals/store"
	"github.com/graph-gophers/animals/zoo"
)

func newSchema() *graphql.Schema {
	s := store.New(store.Seed()...)
	return resolvers.MustNewSchema(zoo.NewQueries(s), zoo.NewDispatcher(s))
}

func TestListAnimalsWithTypename(t *testing.T) {
	gqltesting.RunTest(t, &gqltesting.Test{
		Schema: newSchema(),
		Query: `
			{
				animals {
					__typename
					species
					age
					weight
					sound
				}
			}
		`,
		ExpectedResult: `
			{
				"animals": [
					{"__typename": "Carnivorous", "species": "Lion", "age": 5, "weight": 200, "sound": "Roar"},
					{"__typename": "Herbivorous", "species": "Elephant", "age": 10, "weight": 5000, "sound": "Trumpet"},
					{"__typename": "Insect", "species": "Grasshopper", "age": 0.3, "weight": 0.002, "sound": "Chirp"},
					{"__typename": "Carnivorous", "species": "Tiger", "age": 3, "weight": 150, "sound": "Roar"},
					{"__typename": "Carnivorous", "species": "Penguin", "age": 2, "weight": 20, "sound": "Squawk"},
					{"__typename": "Herbivorous", "species": "Kangaroo", "age": 6, "weight": 80, "sound": "Thump"},
					{"__typename": "Carnivorous", "species": "Cheetah", "age": 4, "weight": 150, "sound": "Growl"},
					{"__typename": "Herbivorous", "species": "Hippopotamus", "age": 7, "weight": 2500, "sound": "Grunt"},
					{"__typename": "Herbivorous", "species": "Parrot", "age": 1, "weight": 0.5, "sound": "Squawk"},
					{"__typename": "Herbivorous", "species": "Gorilla", "age": 9, "weight": 400, "sound": "Grunt"},
					{"__typename": "Herbivorous", "species": "Zebra", "age": 5, "weight": 300, "sound": "Neigh"},
					{"__typename": "Carnivorous", "species": "Crocodile", "age": 12, "weight": 500, "sound": "Roar"},
					{"__typename": "Carnivorous", "species": "Peacock", "age": 4, "weight": 5, "sound": "Scream"},
					{"__typename": "Carnivorous", "species": "Snake", "age": 2, "weight": 3, "sound": "Hiss"},
					{"__typename": "Carnivorous", "species": "Ostrich", "age": 5, "weight": 150, "sound": "Boom"},
					{"__typename": "Carnivorous", "species": "Dolphin", "age": 8, "weight": 300, "sound": "Click"},
					{"__typename": "Herbivorous", "species": "Chimpanzee", "age": 6, "weight": 70, "sound": "Chatter"},
					{"__typename": "Herbivorous", "species": "Panda", "age": 4, "weight": 200, "sound": "Growl"},
					{"__typename": "Herbivorous", "species": "Koala", "age": 3, "weight": 10, "sound": "Grunt"},
					{"__typename": "Carnivorous", "species": "Flamingo", "age": 2, "weight": 8, "sound": "Honk"},
					{"__typename": "Insect", "species": "Butterfly", "age": 1, "weight": 0.01, "sound": "Flutter"},
					{"__typename": "Insect", "species": "Ant", "age": 0.5, "weight": 0.001, "sound": "March"},
					{"__typename": "Insect", "species": "Dragonfly", "age": 2, "weight": 0.02, "sound": "Buzz"},
					{"__typename": "Insect", "species": "Bee", "age": 0.5, "weight": 0.005, "sound": "Buzz"}
				]
			}
		`,
	})
}

func TestLionAndSound(t *testing.T) {
	gqltesting.RunTest(t, &gqltesting.Test{
		Schema: newSchema(),
		Query: `
			{
				animal(species: "Lion") {
					__typename
					species
					age
					weight
					sound
					... on Carnivorous {
						favoriteFood
					}
				}
				makeSound(species: "Lion")
			}
		`,
		ExpectedResult: `
			{
				"animal": {
					"__typename": "Carnivorous",
					"species": "Lion",
					"age": 5,
					"weight": 200,
					"sound": "Roar",
					"favoriteFood": "Meat"
				},
				"makeSound": "Lion makes the sound: Roar"
			}
		`,
	})
}

func TestUnknownSpeciesIsNull(t *testing.T) {
	gqltesting.RunTest(t, &gqltesting.Test{
		Schema: newSchema(),
		Query: `
			{
				animal(species: "NonExistentAnimal") {
					species
				}
				makeSound(species: "NonExistentAnimal")
			}
		`,
		ExpectedResult: `
			{
				"animal": null,
				"makeSound": null
			}
		`,
	})
}

func TestAddQueryUpdateDelete(t *testing.T) {
	schema := newSchema()
	gqltesting.RunTests(t, []*gqltesting.Test{
		{
			Name:   "add carnivorous",
			Schema: schema,
			Query: `
				mutation {
					addAnimal(species: "LionUpdated", age: 5, weight: 200, sound: "Roar", favoriteFood: "Goat") {
						species
						age
						weight
						sound
						... on Carnivorous {
							favoriteFood
						}
					}
				}
			`,
			ExpectedResult: `
				{
					"addAnimal": {
						"species": "LionUpdated",
						"age": 5,
						"weight": 200,
						"sound": "Roar",
						"favoriteFood": "Goat"
					}
				}
			`,
		},
		{
			Name:   "set carnivorous",
			Schema: schema,
			Query: `
				mutation {
					setAnimal(species: "LionUpdated", age: 6, weight: 220, sound: "Roarrrr", favoriteFood: "Deer") {
						species
						age
						weight
						sound
						... on Carnivorous {
							favoriteFood
						}
					}
				}
			`,
			ExpectedResult: `
				{
					"setAnimal": {
						"species": "LionUpdated",
						"age": 6,
						"weight": 220,
						"sound": "Roarrrr",
						"favoriteFood": "Deer"
					}
				}
			`,
		},
		{
			Name:   "set keeps the type",
			Schema: schema,
			Query: `
				mutation {
					setAnimal(species: "LionUpdated", age: 7, weight: 230, sound: "Roar", favoritePlant: "Grass") {
						__typename
						... on Carnivorous {
							favoriteFood
						}
						... on Herbivorous {
							favoritePlant
						}
					}
				}
			`,
			ExpectedResult: `
				{
					"setAnimal": {
						"__typename": "Carnivorous",
						"favoriteFood": null
					}
				}
			`,
		},
		{
			Name:   "delete",
			Schema: schema,
			Query: `
				mutation {
					deleteAnimal(species: "LionUpdated")
				}
			`,
			ExpectedResult: `
				{
					"deleteAnimal": true
				}
			`,
		},
		{
			Name:   "deleted animal is gone",
			Schema: schema,
			Query: `
				{
					animal(species: "LionUpdated") {
						species
					}
				}
			`,
			ExpectedResult: `
				{
					"animal": null
				}
			`,
		},
		{
			Name:   "delete unknown",
			Schema: schema,
			Query: `
				mutation {
					deleteAnimal(species: "NonExistentAnimal")
				}
			`,
			ExpectedResult: `
				{
					"deleteAnimal": false
				}
			`,
		},
	})
}

func TestInsect(t *testing.T) {
	schema := newSchema()
	gqltesting.RunTests(t, []*gqltesting.Test{
		{
			Name:   "add",
			Schema: schema,
			Query: `
				mutation {
					addAnimal(species: "DragonflyAdded", age: 0.2, weight: 0.002, sound: "Buzz", eatsInsects: true, favoriteInsect: "Mosquito") {
						species
						age
						weight
						sound
						... on Insect {
							eatsInsects
							favoriteInsect
						}
					}
				}
			`,
			ExpectedResult: `
				{
					"addAnimal": {
						"species": "DragonflyAdded",
						"age": 0.2,
						"weight": 0.002,
						"sound": "Buzz",
						"eatsInsects": true,
						"favoriteInsect": "Mosquito"
					}
				}
			`,
		},
		{
			Name:   "set without eatsInsects",
			Schema: schema,
			Query: `
				mutation {
					setAnimal(species: "DragonflyAdded", age: 0.2, weight: 0.002, sound: "Buzz", favoriteInsect: "Pollen") {
						... on Insect {
							eatsInsects
							favoriteInsect
						}
					}
				}
			`,
			ExpectedResult: `
				{
					"setAnimal": {
						"eatsInsects": null,
						"favoriteInsect": "Pollen"
					}
				}
			`,
		},
	})
}

func TestDuplicateSpeciesIsShadowed(t *testing.T) {
	schema := newSchema()
	gqltesting.RunTests(t, []*gqltesting.Test{
		{
			Schema: schema,
			Query: `
				mutation {
					addAnimal(species: "Lion", age: 1, weight: 1, sound: "Mew", favoritePlant: "Catnip") {
						__typename
						sound
					}
				}
			`,
			ExpectedResult: `
				{
					"addAnimal": {"__typename": "Herbivorous", "sound": "Mew"}
				}
			`,
		},
		{
			Schema: schema,
			Query: `
				{
					animal(species: "Lion") {
						__typename
						sound
					}
				}
			`,
			ExpectedResult: `
				{
					"animal": {"__typename": "Carnivorous", "sound": "Roar"}
				}
			`,
		},
	})
}

func TestExplicitKind(t *testing.T) {
	gqltesting.RunTest(t, &gqltesting.Test{
		Schema: newSchema(),
		Query: `
			mutation {
				addAnimal(species: "Mantis", age: 1, weight: 0.003, sound: "Click", favoriteFood: "Flies", kind: INSECT) {
					__typename
					... on Insect {
						eatsInsects
						favoriteInsect
					}
				}
			}
		`,
		ExpectedResult: `
			{
				"addAnimal": {"__typename": "Insect", "eatsInsects": null, "favoriteInsect": null}
			}
		`,
	})
}

func TestErrors(t *testing.T) {
	schema := newSchema()
	gqltesting.RunTests(t, []*gqltesting.Test{
		{
			Name:   "invalid animal type",
			Schema: schema,
			Query: `
				mutation {
					addAnimal(species: "InvalidAnimal", age: 1, weight: 10, sound: "InvalidSound") {
						species
					}
				}
			`,
			ExpectedResult: `
				{
					"addAnimal": null
				}
			`,
			ExpectedErrors: []gqltesting.Error{
				{
					Message:    "Invalid animal type",
					Path:       []interface{}{"addAnimal"},
					Extensions: map[string]interface{}{"code": "INVALID_ANIMAL_KIND"},
				},
			},
		},
		{
			Name:   "set unknown species",
			Schema: schema,
			Query: `
				mutation {
					setAnimal(species: "NonExistentAnimal", age: 5, weight: 200, sound: "Roar") {
						species
					}
				}
			`,
			ExpectedResult: `
				{
					"setAnimal": null
				}
			`,
			ExpectedErrors: []gqltesting.Error{
				{
					Message:    "Animal with species NonExistentAnimal not found",
					Path:       []interface{}{"setAnimal"},
					Extensions: map[string]interface{}{"code": "ANIMAL_NOT_FOUND", "species": "NonExistentAnimal"},
				},
			},
		},
		{
			Name:   "set empty species",
			Schema: schema,
			Query: `
				mutation {
					setAnimal(species: "") {
						species
					}
				}
			`,
			ExpectedResult: `
				{
					"setAnimal": null
				}
			`,
			ExpectedErrors: []gqltesting.Error{
				{
					Message:    "Animal with species  not found",
					Path:       []interface{}{"setAnimal"},
					Extensions: map[string]interface{}{"code": "ANIMAL_NOT_FOUND"},
				},
			},
		},
		{
			Name:   "missing type wins over a negative age",
			Schema: schema,
			Query: `
				mutation {
					addAnimal(species: "Ghost", age: -1, weight: 1, sound: "Boo") {
						species
					}
				}
			`,
			ExpectedResult: `
				{
					"addAnimal": null
				}
			`,
			ExpectedErrors: []gqltesting.Error{
				{
					Message:    "Invalid animal type",
					Path:       []interface{}{"addAnimal"},
					Extensions: map[string]interface{}{"code": "INVALID_ANIMAL_KIND"},
				},
			},
		},
		{
			Name:   "negative age",
			Schema: schema,
			Query: `
				mutation {
					addAnimal(species: "Ghost", age: -1, weight: 1, sound: "Boo", favoriteFood: "Fear") {
						species
					}
				}
			`,
			ExpectedResult: `
				{
					"addAnimal": null
				}
			`,
			ExpectedErrors: []gqltesting.Error{
				{
					Message:    `Invalid input for species "Ghost": age must be >= 0`,
					Path:       []interface{}{"addAnimal"},
					Extensions: map[string]interface{}{"code": "INVALID_INPUT", "species": "Ghost"},
				},
			},
		},
		{
			Name:   "add empty species",
			Schema: schema,
			Query: `
				mutation {
					addAnimal(species: "", age: 1, weight: 1, sound: "Boo", favoriteFood: "Fear") {
						species
						sound
					}
				}
			`,
			ExpectedResult: `
				{
					"addAnimal": {"species": "", "sound": "Boo"}
				}
			`,
		},
	})
}

func TestFragmentsVariablesAndDirectives(t *testing.T) {
	schema := newSchema()
	gqltesting.RunTests(t, []*gqltesting.Test{
		{
			Name:   "named fragment with variables",
			Schema: schema,
			Query: `
				fragment AnimalInfo on Animal {
					species
					age
					weight
					sound
				}
				query GetAnimalsInfo($species1: String!, $species2: String!) {
					animal1: animal(species: $species1) {
						...AnimalInfo
					}
					animal2: animal(species: $species2) {
						...AnimalInfo
						... on Herbivorous {
							favoritePlant
						}
					}
				}
			`,
			Variables: map[string]interface{}{
				"species1": "Lion",
				"species2": "Elephant",
			},
			ExpectedResult: `
				{
					"animal1": {"species": "Lion", "age": 5, "weight": 200, "sound": "Roar"},
					"animal2": {"species": "Elephant", "age": 10, "weight": 5000, "sound": "Trumpet", "favoritePlant": "Vegetables"}
				}
			`,
		},
		{
			Name:   "default variable value",
			Schema: schema,
			Query: `
				query GetAnimals($species: String = "Grasshopper") {
					animal(species: $species) {
						species
						... on Insect {
							eatsInsects
							favoriteInsect
						}
					}
				}
			`,
			ExpectedResult: `
				{
					"animal": {"species": "Grasshopper", "eatsInsects": true, "favoriteInsect": "Grass"}
				}
			`,
		},
		{
			Name:   "include and skip",
			Schema: schema,
			Query: `
				{
					lion: animal(species: "Lion") {
						species
						age @include(if: true)
						weight @skip(if: false)
					}
					elephant: animal(species: "Elephant") {
						species
						age @include(if: false)
						weight @skip(if: true)
					}
				}
			`,
			ExpectedResult: `
				{
					"lion": {"species": "Lion", "age": 5, "weight": 200},
					"elephant": {"species": "Elephant"}
				}
			`,
		},
	})
}
