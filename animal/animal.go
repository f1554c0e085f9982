// Package animal defines the animal record: a closed set of variants sharing a
// common set of traits.
package animal

import "fmt"

// Kind is the variant tag of an Animal.
type Kind int

const (
	KindUnknown Kind = iota
	KindCarnivorous
	KindHerbivorous
	KindInsect
)

// TypeNameAnimal is the type name used for records that match no variant.
const TypeNameAnimal = "Animal"

var kindNames = map[Kind]string{
	KindCarnivorous: "Carnivorous",
	KindHerbivorous: "Herbivorous",
	KindInsect:      "Insect",
}

var enumNames = map[string]Kind{
	"CARNIVOROUS": KindCarnivorous,
	"HERBIVOROUS": KindHerbivorous,
	"INSECT":      KindInsect,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return TypeNameAnimal
}

// ParseKind converts an AnimalKind enum value (e.g. "INSECT") into a Kind.
func ParseKind(name string) (Kind, error) {
	if k, ok := enumNames[name]; ok {
		return k, nil
	}
	return KindUnknown, fmt.Errorf("animal: unknown kind %q", name)
}

// Traits are the fields every animal has. Species is the record key; the other
// fields are optional because an update may clear them.
type Traits struct {
	Species string
	Age     *float64
	Weight  *float64
	Sound   *string
}

// Animal is implemented by *Carnivorous, *Herbivorous and *Insect only.
type Animal interface {
	Traits() *Traits
	Kind() Kind
	animal()
}

type Carnivorous struct {
	Common       Traits
	FavoriteFood *string
}

type Herbivorous struct {
	Common        Traits
	FavoritePlant *string
}

type Insect struct {
	Common         Traits
	EatsInsects    *bool
	FavoriteInsect *string
}

func (a *Carnivorous) Traits() *Traits { return &a.Common }
func (a *Herbivorous) Traits() *Traits { return &a.Common }
func (a *Insect) Traits() *Traits      { return &a.Common }

func (*Carnivorous) Kind() Kind { return KindCarnivorous }
func (*Herbivorous) Kind() Kind { return KindHerbivorous }
func (*Insect) Kind() Kind      { return KindInsect }

func (*Carnivorous) animal() {}
func (*Herbivorous) animal() {}
func (*Insect) animal()      {}

// NewCarnivorous returns a carnivorous animal with every field set.
func NewCarnivorous(species string, age, weight float64, sound, favoriteFood string) *Carnivorous {
	return &Carnivorous{
		Common:       newTraits(species, age, weight, sound),
		FavoriteFood: &favoriteFood,
	}
}

// NewHerbivorous returns a herbivorous animal with every field set.
func NewHerbivorous(species string, age, weight float64, sound, favoritePlant string) *Herbivorous {
	return &Herbivorous{
		Common:        newTraits(species, age, weight, sound),
		FavoritePlant: &favoritePlant,
	}
}

// NewInsect returns an insect with every field set.
func NewInsect(species string, age, weight float64, sound string, eatsInsects bool, favoriteInsect string) *Insect {
	return &Insect{
		Common:         newTraits(species, age, weight, sound),
		EatsInsects:    &eatsInsects,
		FavoriteInsect: &favoriteInsect,
	}
}

func newTraits(species string, age, weight float64, sound string) Traits {
	return Traits{Species: species, Age: &age, Weight: &weight, Sound: &sound}
}

// Species is a nil-safe shorthand for a.Traits().Species.
func Species(a Animal) string {
	if a == nil {
		return ""
	}
	return a.Traits().Species
}

// DescribeSound returns "<species> makes the sound: <sound>". A cleared sound
// renders as the empty string.
func DescribeSound(a Animal) string {
	t := a.Traits()
	var sound string
	if t.Sound != nil {
		sound = *t.Sound
	}
	return fmt.Sprintf("%s makes the sound: %s", t.Species, sound)
}

// TypeName returns the GraphQL object type a record serializes as.
func TypeName(a Animal) string {
	switch a.(type) {
	case *Carnivorous:
		return kindNames[KindCarnivorous]
	case *Herbivorous:
		return kindNames[KindHerbivorous]
	case *Insect:
		return kindNames[KindInsect]
	default:
		return TypeNameAnimal
	}
}

// Clone returns a deep copy of a. Pointer fields of the copy never alias the
// original.
func Clone(a Animal) Animal {
	switch a := a.(type) {
	case *Carnivorous:
		return &Carnivorous{
			Common:       cloneTraits(a.Common),
			FavoriteFood: clonePtr(a.FavoriteFood),
		}
	case *Herbivorous:
		return &Herbivorous{
			Common:        cloneTraits(a.Common),
			FavoritePlant: clonePtr(a.FavoritePlant),
		}
	case *Insect:
		return &Insect{
			Common:         cloneTraits(a.Common),
			EatsInsects:    clonePtr(a.EatsInsects),
			FavoriteInsect: clonePtr(a.FavoriteInsect),
		}
	default:
		return nil
	}
}

func cloneTraits(t Traits) Traits {
	return Traits{
		Species: t.Species,
		Age:     clonePtr(t.Age),
		Weight:  clonePtr(t.Weight),
		Sound:   clonePtr(t.Sound),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
