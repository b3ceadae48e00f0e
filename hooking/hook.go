// Package hooking implements a runtime interception engine. Designated call
// sites register as hookable slots, and hooks attach to and detach from the
// slots while calls are in flight.
package hooking

// Next is the continuation a hook uses to pass control inward, to either the
// next hook in the chain or the origin function.
type Next func(args any) any

// An Envelope carries one invocation's arguments through the hook chain. It
// is created per invocation and never outlives the dispatch.
type Envelope struct {
	Slot *Slot
	Args any
}

// A Hook is a unit of behavior that can be interposed on a hookable slot.
type Hook interface {
	// Tag declares the call signature the hook expects. It must equal the
	// tag of the slot the hook is added to.
	Tag() TypeTag

	// Call runs the hook. The implementation may transform the arguments
	// before handing them to next, may compose its own result with next's,
	// and may invoke next zero, one, or multiple times.
	Call(env Envelope, next Next) any
}

// FuncHook adapts a typed function into a Hook. The type-erased boundary
// stays inside the adapter, so hook authors work with their own argument and
// result types.
type FuncHook[A, R any] struct {
	fn func(args A, next func(A) R) R
}

// NewFuncHook creates a FuncHook around fn.
func NewFuncHook[A, R any](fn func(args A, next func(A) R) R) *FuncHook[A, R] {
	if fn == nil {
		panic("fn must not be nil")
	}

	return &FuncHook[A, R]{fn: fn}
}

// Tag returns the tag of the adapted function's signature.
func (h *FuncHook[A, R]) Tag() TypeTag {
	return TagFor[A, R]()
}

// Call unpacks the envelope and runs the adapted function. The add-time type
// gate guarantees the assertions cannot fail.
func (h *FuncHook[A, R]) Call(env Envelope, next Next) any {
	typedNext := func(args A) R {
		r, _ := next(args).(R)
		return r
	}

	return h.fn(env.Args.(A), typedNext)
}
