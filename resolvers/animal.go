package resolvers

import (
	"github.com/graph-gophers/animals/animal"
)

// traitsResolver resolves the fields shared by every Animal type.
type traitsResolver struct {
	t *animal.Traits
}

func (r traitsResolver) Species() *string {
	return &r.t.Species
}

func (r traitsResolver) Age() *float64 {
	return r.t.Age
}

func (r traitsResolver) Weight() *float64 {
	return r.t.Weight
}

func (r traitsResolver) Sound() *string {
	return r.t.Sound
}

// animalResolver resolves the Animal interface. The To* methods tell the
// executor which object type a record is.
type animalResolver struct {
	traitsResolver
	a animal.Animal
}

func newAnimalResolver(a animal.Animal) *animalResolver {
	return &animalResolver{traitsResolver: traitsResolver{a.Traits()}, a: a}
}

func (r *animalResolver) ToCarnivorous() (*carnivorousResolver, bool) {
	c, ok := r.a.(*animal.Carnivorous)
	if !ok {
		return nil, false
	}
	return &carnivorousResolver{r.traitsResolver, c}, true
}

func (r *animalResolver) ToHerbivorous() (*herbivorousResolver, bool) {
	h, ok := r.a.(*animal.Herbivorous)
	if !ok {
		return nil, false
	}
	return &herbivorousResolver{r.traitsResolver, h}, true
}

func (r *animalResolver) ToInsect() (*insectResolver, bool) {
	i, ok := r.a.(*animal.Insect)
	if !ok {
		return nil, false
	}
	return &insectResolver{r.traitsResolver, i}, true
}

type carnivorousResolver struct {
	traitsResolver
	c *animal.Carnivorous
}

func (r *carnivorousResolver) FavoriteFood() *string {
	return r.c.FavoriteFood
}

type herbivorousResolver struct {
	traitsResolver
	h *animal.Herbivorous
}

func (r *herbivorousResolver) FavoritePlant() *string {
	return r.h.FavoritePlant
}

type insectResolver struct {
	traitsResolver
	i *animal.Insect
}

func (r *insectResolver) EatsInsects() *bool {
	return r.i.EatsInsects
}

func (r *insectResolver) FavoriteInsect() *string {
	return r.i.FavoriteInsect
}
