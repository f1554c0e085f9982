package zoo

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/graph-gophers/animals/animal"
)

// Input is the loosely typed field bag of an add or set request. A nil pointer
// means the caller did not send the field.
type Input struct {
	Species string
	Age     *float64 `validate:"omitempty,gte=0"`
	Weight  *float64 `validate:"omitempty,gte=0"`
	Sound   *string

	FavoriteFood   *string
	FavoritePlant  *string
	EatsInsects    *bool
	FavoriteInsect *string

	// Kind selects the variant explicitly on add. When nil the variant is
	// inferred from which variant fields are present.
	Kind *animal.Kind
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors renders validator failures in terms of the GraphQL argument
// names, e.g. "age must be >= 0".
type fieldErrors struct {
	errs validator.ValidationErrors
}

func (e fieldErrors) Error() string {
	msgs := make([]string, 0, len(e.errs))
	for _, fe := range e.errs {
		msgs = append(msgs, describe(fe))
	}
	return strings.Join(msgs, "; ")
}

func (e fieldErrors) Unwrap() error {
	return e.errs
}

func describe(fe validator.FieldError) string {
	name := fe.Field()
	name = strings.ToLower(name[:1]) + name[1:]
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be >= %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s fails %q", name, fe.Tag())
	}
}

// check validates the numeric fields of in.
func (in *Input) check() error {
	err := validate.Struct(in)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		return fieldErrors{errs: verrs}
	}
	return err
}

// kind picks the variant for a new record. Precedence: explicit Kind, then
// favoritePlant, favoriteFood, eatsInsects.
func (in *Input) kind() animal.Kind {
	switch {
	case in.Kind != nil:
		return *in.Kind
	case in.FavoritePlant != nil:
		return animal.KindHerbivorous
	case in.FavoriteFood != nil:
		return animal.KindCarnivorous
	case in.EatsInsects != nil:
		return animal.KindInsect
	default:
		return animal.KindUnknown
	}
}

func (in *Input) traits() animal.Traits {
	return animal.Traits{
		Species: in.Species,
		Age:     dup(in.Age),
		Weight:  dup(in.Weight),
		Sound:   dup(in.Sound),
	}
}

// build constructs a new record of kind k from the input.
func (in *Input) build(k animal.Kind) animal.Animal {
	switch k {
	case animal.KindHerbivorous:
		return &animal.Herbivorous{Common: in.traits(), FavoritePlant: dup(in.FavoritePlant)}
	case animal.KindCarnivorous:
		return &animal.Carnivorous{Common: in.traits(), FavoriteFood: dup(in.FavoriteFood)}
	case animal.KindInsect:
		return &animal.Insect{Common: in.traits(), EatsInsects: dup(in.EatsInsects), FavoriteInsect: dup(in.FavoriteInsect)}
	default:
		return nil
	}
}

// apply overwrites every field of a that belongs to a's own variant. Omitted
// fields are cleared.
func (in *Input) apply(a animal.Animal) {
	*a.Traits() = in.traits()
	switch a := a.(type) {
	case *animal.Carnivorous:
		a.FavoriteFood = dup(in.FavoriteFood)
	case *animal.Herbivorous:
		a.FavoritePlant = dup(in.FavoritePlant)
	case *animal.Insect:
		a.EatsInsects = dup(in.EatsInsects)
		a.FavoriteInsect = dup(in.FavoriteInsect)
	}
}

// dup keeps stored records from sharing memory with request arguments.
func dup[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
