package scope

// Store aggregates the three scopes visible to one resolution context, e.g.
// one open request tab. Environment and Collection are referenced, not copied;
// they are owned by whoever manages persistence. The Extracted scope is owned
// by the Store and mutated only through SetExtracted.
type Store struct {
	environment *Scope
	collection  *Scope
	extracted   *Scope
}

// NewStore creates a Store over the given shared scopes. Either argument may
// be nil when no environment is active or the request lives outside a
// collection; lookups simply skip the missing scope.
func NewStore(environment, collection *Scope) *Store {
	return &Store{
		environment: environment,
		collection:  collection,
		extracted:   NewScope(),
	}
}

// Lookup searches the scopes in precedence order (Extracted, then
// Environment, then Collection) and returns the first hit. It is a pure read.
func (st *Store) Lookup(name string) (string, bool) {
	if v, ok := st.extracted.Get(name); ok {
		return v, true
	}
	if st.environment != nil {
		if v, ok := st.environment.Get(name); ok {
			return v, true
		}
	}
	if st.collection != nil {
		if v, ok := st.collection.Get(name); ok {
			return v, true
		}
	}
	return "", false
}

// SetExtracted writes a captured value into the Extracted scope, overwriting
// any prior value with that name in that scope only.
func (st *Store) SetExtracted(name, value string) error {
	return st.extracted.Set(name, value)
}

// Names returns the variable names defined in one scope, sorted. A nil shared
// scope yields no names.
func (st *Store) Names(kind Kind) []string {
	s := st.scopeFor(kind)
	if s == nil {
		return nil
	}
	return s.Names()
}

// ResetExtracted clears all chained values, e.g. when the owning tab is
// closed or the user asks for a fresh start.
func (st *Store) ResetExtracted() {
	st.extracted.Clear()
}

func (st *Store) scopeFor(kind Kind) *Scope {
	switch kind {
	case Environment:
		return st.environment
	case Collection:
		return st.collection
	case Extracted:
		return st.extracted
	default:
		return nil
	}
}
