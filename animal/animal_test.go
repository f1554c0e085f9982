package animal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graph-gophers/animals/animal"
)

func TestDescribeSound(t *testing.T) {
	lion := animal.NewCarnivorous("Lion", 5, 200, "Roar", "Meat")
	assert.Equal(t, "Lion makes the sound: Roar", animal.DescribeSound(lion))

	lion.Common.Sound = nil
	assert.Equal(t, "Lion makes the sound: ", animal.DescribeSound(lion))
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		a    animal.Animal
		want string
		kind animal.Kind
	}{
		{animal.NewCarnivorous("Lion", 5, 200, "Roar", "Meat"), "Carnivorous", animal.KindCarnivorous},
		{animal.NewHerbivorous("Elephant", 10, 5000, "Trumpet", "Vegetables"), "Herbivorous", animal.KindHerbivorous},
		{animal.NewInsect("Grasshopper", 0.3, 0.002, "Chirp", true, "Grass"), "Insect", animal.KindInsect},
		{nil, "Animal", animal.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, animal.TypeName(tt.a))
			assert.Equal(t, tt.want, tt.kind.String())
			if tt.a != nil {
				assert.Equal(t, tt.kind, tt.a.Kind())
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := animal.ParseKind("INSECT")
	require.NoError(t, err)
	assert.Equal(t, animal.KindInsect, k)

	_, err = animal.ParseKind("Insect")
	assert.Error(t, err)
}

func TestCloneDoesNotAlias(t *testing.T) {
	bee := animal.NewInsect("Bee", 0.5, 0.005, "Buzz", true, "Nectar")
	c := animal.Clone(bee).(*animal.Insect)
	require.Equal(t, bee, c)

	*c.FavoriteInsect = "Pollen"
	*c.Common.Age = 1
	c.EatsInsects = nil

	assert.Equal(t, "Nectar", *bee.FavoriteInsect)
	assert.Equal(t, 0.5, *bee.Common.Age)
	assert.True(t, *bee.EatsInsects)
}

func TestSpecies(t *testing.T) {
	assert.Equal(t, "", animal.Species(nil))
	assert.Equal(t, "Koala", animal.Species(animal.NewHerbivorous("Koala", 3, 10, "Grunt", "Eucalyptus leaves")))
}
