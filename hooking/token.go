package hooking

import "github.com/rs/xid"

// A HookToken identifies one attached hook so that it can later be removed
// from its slot.
type HookToken struct {
	id xid.ID
}

func newHookToken() HookToken {
	return HookToken{id: xid.New()}
}

func (t HookToken) String() string {
	return t.id.String()
}
