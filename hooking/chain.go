package hooking

type hookEntry struct {
	hook     Hook
	token    HookToken
	priority int
}

// A hookChain is an immutable ordered sequence of hooks. Entry 0 is the
// outermost hook, the one that executes first. Chains are replaced wholesale
// on every mutation; a published chain is never modified, so dispatches that
// captured an older version keep a consistent view.
type hookChain struct {
	entries []hookEntry
}

// insert builds a new chain with e placed before the first entry whose
// priority is less than or equal to e's. Greater priority therefore runs
// more outermost, and among equal priorities the most recently added hook
// runs first. A nil receiver stands for the empty chain.
func (c *hookChain) insert(e hookEntry) *hookChain {
	var old []hookEntry
	if c != nil {
		old = c.entries
	}

	pos := len(old)
	for i, existing := range old {
		if existing.priority <= e.priority {
			pos = i
			break
		}
	}

	entries := make([]hookEntry, 0, len(old)+1)
	entries = append(entries, old[:pos]...)
	entries = append(entries, e)
	entries = append(entries, old[pos:]...)

	return &hookChain{entries: entries}
}

// remove builds a new chain without the entry carrying token. It returns the
// receiver unchanged when the token is unknown, and nil when the removal
// empties the chain.
func (c *hookChain) remove(token HookToken) (chain *hookChain, found bool) {
	if c == nil {
		return nil, false
	}

	for i, e := range c.entries {
		if e.token != token {
			continue
		}

		if len(c.entries) == 1 {
			return nil, true
		}

		entries := make([]hookEntry, 0, len(c.entries)-1)
		entries = append(entries, c.entries[:i]...)
		entries = append(entries, c.entries[i+1:]...)

		return &hookChain{entries: entries}, true
	}

	return c, false
}
