package hooking

import "fmt"

// A Func is a typed handle over a slot whose origin takes A and returns R.
// It is what generated hookable glue keeps for each call site: the glue
// registers the origin once at init time and rewrites calls to go through
// Call.
type Func[A, R any] struct {
	slot *Slot
}

// RegisterFunc registers fn as the origin of a new slot named name in
// registry r and returns the typed handle.
func RegisterFunc[A, R any](r *Registry, name string, fn func(A) R) (*Func[A, R], error) {
	if fn == nil {
		panic("fn must not be nil")
	}

	origin := func(args any) any {
		return fn(args.(A))
	}

	slot, err := r.Register(name, TagFor[A, R](), origin)
	if err != nil {
		return nil, err
	}

	return &Func[A, R]{slot: slot}, nil
}

// MustRegisterFunc registers fn as a slot origin and panics on failure.
func MustRegisterFunc[A, R any](r *Registry, name string, fn func(A) R) *Func[A, R] {
	f, err := RegisterFunc[A, R](r, name, fn)
	if err != nil {
		panic(err)
	}

	return f
}

// Slot returns the underlying slot, for attaching and removing hooks.
func (f *Func[A, R]) Slot() *Slot {
	return f.slot
}

// Call dispatches one invocation through the slot.
func (f *Func[A, R]) Call(args A) (R, error) {
	res, err := f.slot.Dispatch(args)
	if err != nil {
		var zero R
		return zero, err
	}

	r, _ := res.(R)

	return r, nil
}

// Invoke dispatches args on a bare slot, for callers that looked the slot up
// by name. The slot must carry the expected signature.
func Invoke[A, R any](s *Slot, args A) (R, error) {
	var zero R

	if tag := TagFor[A, R](); tag != s.tag {
		return zero, fmt.Errorf("%w: slot %q has %s, caller expects %s",
			ErrTypeMismatch, s.name, s.tag, tag)
	}

	res, err := s.Dispatch(args)
	if err != nil {
		return zero, err
	}

	r, _ := res.(R)

	return r, nil
}
