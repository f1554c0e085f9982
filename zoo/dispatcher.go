package zoo

import (
	"sync"

	"go.uber.org/zap"

	"github.com/graph-gophers/animals/animal"
	"github.com/graph-gophers/animals/errors"
	"github.com/graph-gophers/animals/store"
)

const (
	opAdd    = "add"
	opSet    = "set"
	opDelete = "delete"

	resultOK       = "ok"
	resultNotFound = "not_found"
	resultInvalid  = "invalid"
)

// Dispatcher performs the write operations. Writes are serialized so that
// set and delete observe and modify the store in one step.
type Dispatcher struct {
	mu      sync.Mutex
	store   *store.Store
	logger  *zap.Logger
	metrics *Metrics
}

func NewDispatcher(s *store.Store, opts ...Option) *Dispatcher {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Dispatcher{
		store:   s,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// AddAnimal builds a record from in and appends it to the store. The variant
// comes from in.Kind when set; otherwise favoritePlant selects Herbivorous,
// then favoriteFood selects Carnivorous, then eatsInsects selects Insect. An
// input matching none of these fails with an InvalidAnimalKind error, before
// any other field is checked. The species may be empty.
//
// An existing record with the same species is not replaced: it keeps
// answering lookups and the new record stays hidden behind it.
func (d *Dispatcher) AddAnimal(in Input) (animal.Animal, error) {
	a := in.build(in.kind())
	if a == nil {
		d.metrics.observe(opAdd, resultInvalid)
		return nil, errors.InvalidAnimalKind()
	}
	if err := in.check(); err != nil {
		d.metrics.observe(opAdd, resultInvalid)
		return nil, errors.InvalidInput(in.Species, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.store.FindBySpecies(in.Species); ok {
		d.logger.Warn("species already stored, new record is shadowed",
			zap.String("species", in.Species))
	}
	d.store.Insert(a)
	d.metrics.observe(opAdd, resultOK)
	d.logger.Debug("animal added",
		zap.String("species", in.Species),
		zap.Stringer("kind", a.Kind()))
	return a, nil
}

// SetAnimal overwrites the stored record for in.Species. Age, weight and sound
// are always replaced, as are the variant fields of the record's current
// variant; fields omitted from in are cleared. The variant itself never
// changes. Unknown species, including the empty one, fail with an
// AnimalNotFound error.
func (d *Dispatcher) SetAnimal(in Input) (animal.Animal, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var existing animal.Animal
	for _, a := range d.store.All() {
		if a.Traits().Species == in.Species {
			existing = a
			break
		}
	}
	if existing == nil {
		d.metrics.observe(opSet, resultNotFound)
		return nil, errors.AnimalNotFound(in.Species)
	}
	if err := in.check(); err != nil {
		d.metrics.observe(opSet, resultInvalid)
		return nil, errors.InvalidInput(in.Species, err)
	}

	updated := animal.Clone(existing)
	in.apply(updated)
	d.store.ReplaceBySpecies(in.Species, updated)
	d.metrics.observe(opSet, resultOK)
	d.logger.Debug("animal updated",
		zap.String("species", in.Species),
		zap.Stringer("kind", updated.Kind()))
	return updated, nil
}

// DeleteAnimal removes every record for species and reports whether there
// was one.
func (d *Dispatcher) DeleteAnimal(species string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.store.FindBySpecies(species); !ok {
		d.metrics.observe(opDelete, resultNotFound)
		return false
	}
	d.store.DeleteBySpecies(species)
	d.metrics.observe(opDelete, resultOK)
	d.logger.Debug("animal deleted", zap.String("species", species))
	return true
}
