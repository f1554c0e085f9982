package zoo

import (
	"github.com/graph-gophers/animals/animal"
	"github.com/graph-gophers/animals/store"
)

// Queries answers the read operations. A miss is reported through the second
// return value, never as an error.
type Queries struct {
	store *store.Store
}

func NewQueries(s *store.Store) *Queries {
	return &Queries{store: s}
}

// ListAll returns every stored animal in insertion order.
func (q *Queries) ListAll() []animal.Animal {
	return q.store.All()
}

func (q *Queries) GetBySpecies(species string) (animal.Animal, bool) {
	return q.store.FindBySpecies(species)
}

// SoundOf describes the sound of the animal stored under species.
func (q *Queries) SoundOf(species string) (string, bool) {
	a, ok := q.store.FindBySpecies(species)
	if !ok {
		return "", false
	}
	return animal.DescribeSound(a), true
}

// TypeOf returns the object type name a record is served as.
func (q *Queries) TypeOf(a animal.Animal) string {
	return animal.TypeName(a)
}
