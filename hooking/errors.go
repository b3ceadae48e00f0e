package hooking

import "errors"

// Errors reported by registry and slot operations. A failed operation always
// leaves the registry and the slot unchanged.
var (
	// ErrDuplicateName indicates a slot with the same name is already
	// registered.
	ErrDuplicateName = errors.New("hooking: slot name already registered")

	// ErrSlotNotFound indicates no slot is registered under the name.
	ErrSlotNotFound = errors.New("hooking: slot not found")

	// ErrHookNotFound indicates no attached hook matches the token.
	ErrHookNotFound = errors.New("hooking: hook not found")

	// ErrTypeMismatch indicates a hook's signature does not match the
	// slot's signature.
	ErrTypeMismatch = errors.New("hooking: hook signature does not match slot")

	// ErrHookPanicked indicates a hook panicked during dispatch. The panic
	// is confined to the failing dispatch; the slot and its chain stay
	// intact.
	ErrHookPanicked = errors.New("hooking: hook panicked during dispatch")
)
