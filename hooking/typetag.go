package hooking

import (
	"fmt"
	"reflect"
)

// A TypeTag identifies the call signature of a hookable function at runtime.
// Two tags are equal if and only if they denote the same argument-tuple type
// and the same result type.
type TypeTag struct {
	args   reflect.Type
	result reflect.Type
}

// TagFor returns the TypeTag of a signature that takes A and returns R.
func TagFor[A, R any]() TypeTag {
	return TypeTag{
		args:   reflect.TypeOf((*A)(nil)).Elem(),
		result: reflect.TypeOf((*R)(nil)).Elem(),
	}
}

// ArgsType returns the argument-tuple type the tag denotes.
func (t TypeTag) ArgsType() reflect.Type {
	return t.args
}

// ResultType returns the result type the tag denotes.
func (t TypeTag) ResultType() reflect.Type {
	return t.result
}

func (t TypeTag) String() string {
	return fmt.Sprintf("func(%v) %v", t.args, t.result)
}
