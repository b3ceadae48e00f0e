package hooking

import "fmt"

// Dispatch routes one call through the slot. With no hooks attached it
// invokes the origin function directly. Otherwise it captures the current
// chain snapshot and runs the hooks outermost-first, with the origin
// function as the innermost continuation.
//
// A panic escaping the chain, whether raised by a hook or by the origin
// reached through it, is recovered and returned as an error wrapping
// ErrHookPanicked; the whole dispatch fails and the chain stays intact. The
// fast path does not guard the origin, so a call on an unhooked slot behaves
// exactly like calling the origin directly.
func (s *Slot) Dispatch(args any) (any, error) {
	if !s.armed.Load() {
		return s.origin(args), nil
	}

	snapshot := s.chain.Load()
	if snapshot == nil {
		// The last hook was removed between the armed read and the chain
		// read. The empty chain degenerates to the origin call.
		return s.origin(args), nil
	}

	return s.runChain(snapshot, args)
}

func (s *Slot) runChain(c *hookChain, args any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: slot %q: %v", ErrHookPanicked, s.name, r)
		}
	}()

	next := s.origin
	for i := len(c.entries) - 1; i >= 0; i-- {
		hook := c.entries[i].hook
		inner := next
		next = func(a any) any {
			return hook.Call(Envelope{Slot: s, Args: a}, inner)
		}
	}

	return next(args), nil
}
