package hooking

import (
	"fmt"
	"sync"
)

// A Registry maps slot names to slots. Registration is append-only: a name
// registers at most once and the slot stays until the process exits. Lookup
// is lock-free once a slot is published and is safe to run concurrently with
// registrations of other names.
type Registry struct {
	slots sync.Map // name -> *Slot
}

// NewRegistry creates an empty Registry. Most programs use the package-level
// default registry; separate registries let independent subsystems and tests
// keep their slot namespaces apart.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register creates the slot for name with the given signature tag and origin
// function. When two registrations race on the same name, the first writer
// wins and the loser gets ErrDuplicateName with the existing slot untouched.
func (r *Registry) Register(name string, tag TypeTag, origin Next) (*Slot, error) {
	if name == "" {
		panic("name must not be empty")
	}

	if origin == nil {
		panic("origin must not be nil")
	}

	slot := newSlot(name, tag, origin)
	if _, loaded := r.slots.LoadOrStore(name, slot); loaded {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	return slot, nil
}

// Lookup finds the slot registered under name.
func (r *Registry) Lookup(name string) (*Slot, error) {
	v, ok := r.slots.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSlotNotFound, name)
	}

	return v.(*Slot), nil
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that hookable glue registers
// into.
func Default() *Registry {
	return defaultRegistry
}

// Register creates a slot in the default registry.
func Register(name string, tag TypeTag, origin Next) (*Slot, error) {
	return defaultRegistry.Register(name, tag, origin)
}

// MustRegister creates a slot in the default registry and panics on failure.
// It is meant for generated glue running at init time, where a duplicate
// name is a programming error.
func MustRegister(name string, tag TypeTag, origin Next) *Slot {
	slot, err := Register(name, tag, origin)
	if err != nil {
		panic(err)
	}

	return slot
}

// Lookup finds a slot in the default registry.
func Lookup(name string) (*Slot, error) {
	return defaultRegistry.Lookup(name)
}
