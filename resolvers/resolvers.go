package resolvers

import (
	"github.com/graph-gophers/animals/animal"
	"github.com/graph-gophers/animals/errors"
	"github.com/graph-gophers/animals/zoo"
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	queries    *zoo.Queries
	dispatcher *zoo.Dispatcher
}

func (r *Resolver) Animals() *[]*animalResolver {
	all := r.queries.ListAll()
	l := make([]*animalResolver, len(all))
	for i, a := range all {
		l[i] = newAnimalResolver(a)
	}
	return &l
}

func (r *Resolver) Animal(args struct{ Species string }) *animalResolver {
	a, ok := r.queries.GetBySpecies(args.Species)
	if !ok {
		return nil
	}
	return newAnimalResolver(a)
}

func (r *Resolver) MakeSound(args struct{ Species string }) *string {
	s, ok := r.queries.SoundOf(args.Species)
	if !ok {
		return nil
	}
	return &s
}

type addAnimalArgs struct {
	Species        string
	Age            float64
	Weight         float64
	Sound          string
	FavoriteFood   *string
	FavoritePlant  *string
	EatsInsects    *bool
	FavoriteInsect *string
	Kind           *string
}

func (r *Resolver) AddAnimal(args addAnimalArgs) (*animalResolver, error) {
	in := zoo.Input{
		Species:        args.Species,
		Age:            &args.Age,
		Weight:         &args.Weight,
		Sound:          &args.Sound,
		FavoriteFood:   args.FavoriteFood,
		FavoritePlant:  args.FavoritePlant,
		EatsInsects:    args.EatsInsects,
		FavoriteInsect: args.FavoriteInsect,
	}
	if args.Kind != nil {
		k, err := animal.ParseKind(*args.Kind)
		if err != nil {
			return nil, errors.InvalidInput(args.Species, err)
		}
		in.Kind = &k
	}
	a, err := r.dispatcher.AddAnimal(in)
	if err != nil {
		return nil, err
	}
	return newAnimalResolver(a), nil
}

type setAnimalArgs struct {
	Species        string
	Age            *float64
	Weight         *float64
	Sound          *string
	FavoriteFood   *string
	FavoritePlant  *string
	EatsInsects    *bool
	FavoriteInsect *string
}

func (r *Resolver) SetAnimal(args setAnimalArgs) (*animalResolver, error) {
	a, err := r.dispatcher.SetAnimal(zoo.Input{
		Species:        args.Species,
		Age:            args.Age,
		Weight:         args.Weight,
		Sound:          args.Sound,
		FavoriteFood:   args.FavoriteFood,
		FavoritePlant:  args.FavoritePlant,
		EatsInsects:    args.EatsInsects,
		FavoriteInsect: args.FavoriteInsect,
	})
	if err != nil {
		return nil, err
	}
	return newAnimalResolver(a), nil
}

func (r *Resolver) DeleteAnimal(args struct{ Species string }) *bool {
	ok := r.dispatcher.DeleteAnimal(args.Species)
	return &ok
}
