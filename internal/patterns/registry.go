package patterns

// Registry manages pattern definitions
type Registry struct {
	defs []Definition
}

// NewRegistry creates a Registry loaded with the default pattern table.
func NewRegistry() *Registry {
	r := &Registry{defs: make([]Definition, 0, 16)}
	for _, def := range DefaultPatterns() {
		r.Register(def)
	}
	return r
}

// NewEmptyRegistry creates a Registry with no patterns, mainly for tests.
func NewEmptyRegistry() *Registry {
	return &Registry{defs: make([]Definition, 0, 4)}
}

// Register appends a definition. Order is preserved; the detector applies
// patterns in registration order.
func (r *Registry) Register(def Definition) {
	r.defs = append(r.defs, def)
}

// Definitions returns all registered definitions.
func (r *Registry) Definitions() []Definition {
	return r.defs
}

// ByID returns the definition with the given ID, if registered.
func (r *Registry) ByID(id string) (Definition, bool) {
	for _, def := range r.defs {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// Find returns definitions matching the given predicate.
func (r *Registry) Find(predicate func(Definition) bool) []Definition {
	var matches []Definition
	for _, def := range r.defs {
		if predicate(def) {
			matches = append(matches, def)
		}
	}
	return matches
}

// WithoutIDs returns a copy of the registry minus the given pattern IDs.
// Project config uses this to disable individual patterns.
func (r *Registry) WithoutIDs(ids []string) *Registry {
	if len(ids) == 0 {
		return r
	}
	disabled := make(map[string]bool, len(ids))
	for _, id := range ids {
		disabled[id] = true
	}
	out := NewEmptyRegistry()
	for _, def := range r.defs {
		if !disabled[def.ID] {
			out.Register(def)
		}
	}
	return out
}
