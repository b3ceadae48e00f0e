package hooking

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// A Slot is one interception point. It owns the origin function of a
// hookable call site and the chain of hooks currently attached to it. Slots
// are created through registration and live for the process lifetime; a slot
// can be disarmed by removing all of its hooks but never removed.
type Slot struct {
	name   string
	tag    TypeTag
	origin Next

	// armed is true exactly when the published chain holds at least one
	// hook. Dispatch reads it first, so call sites without hooks pay one
	// atomic load and one branch.
	armed atomic.Bool

	// chain is the only mutable shared state of a slot. It is replaced
	// wholesale under mu and read without any lock.
	chain atomic.Pointer[hookChain]

	// mu serializes chain mutations. Dispatch never takes it.
	mu sync.Mutex
}

func newSlot(name string, tag TypeTag, origin Next) *Slot {
	return &Slot{
		name:   name,
		tag:    tag,
		origin: origin,
	}
}

// Name returns the identifier the slot was registered under.
func (s *Slot) Name() string {
	return s.name
}

// Tag returns the call signature of the slot's origin function.
func (s *Slot) Tag() TypeTag {
	return s.tag
}

// NumHooks returns the number of hooks currently attached.
func (s *Slot) NumHooks() int {
	c := s.chain.Load()
	if c == nil {
		return 0
	}

	return len(c.entries)
}

// Hooks returns the currently attached hooks, outermost first. The returned
// slice is a snapshot; later mutations do not affect it.
func (s *Slot) Hooks() []Hook {
	c := s.chain.Load()
	if c == nil {
		return nil
	}

	hooks := make([]Hook, len(c.entries))
	for i, e := range c.entries {
		hooks[i] = e.hook
	}

	return hooks
}

// AddHook attaches a hook with default (0) priority.
func (s *Slot) AddHook(hook Hook) (HookToken, error) {
	return s.AddHookWithPriority(hook, 0)
}

// AddHookWithPriority attaches a hook. Hooks with greater priority execute
// more outermost; among hooks of equal priority the most recently added
// executes first, wrapping all previously attached hooks.
//
// The hook's tag must equal the slot's tag. This check is the safety gate
// that substitutes for compile-time checking; dispatch trusts it and never
// re-checks types. On mismatch the slot is left untouched.
func (s *Slot) AddHookWithPriority(hook Hook, priority int) (HookToken, error) {
	if hook.Tag() != s.tag {
		return HookToken{}, fmt.Errorf("%w: slot %q expects %s, hook declares %s",
			ErrTypeMismatch, s.name, s.tag, hook.Tag())
	}

	entry := hookEntry{
		hook:     hook,
		token:    newHookToken(),
		priority: priority,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.chain.Store(s.chain.Load().insert(entry))
	s.armed.Store(true)

	return entry.token, nil
}

// RemoveHook detaches the hook identified by token. Dispatches already in
// flight keep executing the chain version they captured. Removing the last
// hook disarms the slot.
func (s *Slot) RemoveHook(token HookToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chain, found := s.chain.Load().remove(token)
	if !found {
		return fmt.Errorf("%w: slot %q has no hook %s", ErrHookNotFound, s.name, token)
	}

	s.chain.Store(chain)
	if chain == nil {
		s.armed.Store(false)
	}

	return nil
}

// ClearHooks detaches every hook and disarms the slot.
func (s *Slot) ClearHooks() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chain.Store(nil)
	s.armed.Store(false)
}
