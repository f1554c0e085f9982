package store

import "github.com/graph-gophers/animals/animal"

// Seed returns the animals a fresh store starts with. Each call builds new
// records.
func Seed() []animal.Animal {
	return []animal.Animal{
		animal.NewCarnivorous("Lion", 5, 200, "Roar", "Meat"),
		animal.NewHerbivorous("Elephant", 10, 5000, "Trumpet", "Vegetables"),
		animal.NewInsect("Grasshopper", 0.3, 0.002, "Chirp", true, "Grass"),
		animal.NewCarnivorous("Tiger", 3, 150, "Roar", "Meat"),
		animal.NewCarnivorous("Penguin", 2, 20, "Squawk", "Fish"),
		animal.NewHerbivorous("Kangaroo", 6, 80, "Thump", "Grass"),
		animal.NewCarnivorous("Cheetah", 4, 150, "Growl", "Meat"),
		animal.NewHerbivorous("Hippopotamus", 7, 2500, "Grunt", "Grass"),
		animal.NewHerbivorous("Parrot", 1, 0.5, "Squawk", "Seeds"),
		animal.NewHerbivorous("Gorilla", 9, 400, "Grunt", "Fruits"),
		animal.NewHerbivorous("Zebra", 5, 300, "Neigh", "Grass"),
		animal.NewCarnivorous("Crocodile", 12, 500, "Roar", "Meat"),
		animal.NewCarnivorous("Peacock", 4, 5, "Scream", "Insects"),
		animal.NewCarnivorous("Snake", 2, 3, "Hiss", "Rodents"),
		animal.NewCarnivorous("Ostrich", 5, 150, "Boom", "Insects"),
		animal.NewCarnivorous("Dolphin", 8, 300, "Click", "Fish"),
		animal.NewHerbivorous("Chimpanzee", 6, 70, "Chatter", "Fruits"),
		animal.NewHerbivorous("Panda", 4, 200, "Growl", "Bamboo"),
		animal.NewHerbivorous("Koala", 3, 10, "Grunt", "Eucalyptus leaves"),
		animal.NewCarnivorous("Flamingo", 2, 8, "Honk", "Fish"),
		animal.NewInsect("Butterfly", 1, 0.01, "Flutter", false, ""),
		animal.NewInsect("Ant", 0.5, 0.001, "March", true, "Aphids"),
		animal.NewInsect("Dragonfly", 2, 0.02, "Buzz", true, "Mosquitoes"),
		animal.NewInsect("Bee", 0.5, 0.005, "Buzz", true, "Nectar"),
	}
}
