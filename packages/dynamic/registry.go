package dynamic

// Category groups related generators for discovery UIs. Membership is
// metadata only and plays no part in resolution.
type Category string

const (
	CategoryIdentifiers Category = "identifiers"
	CategoryTime        Category = "time"
	CategoryNumeric     Category = "numeric"
	CategoryText        Category = "text"
	CategoryPerson      Category = "person"
	CategoryAddress     Category = "address"
	CategoryNetwork     Category = "network"
	CategoryCommerce    Category = "commerce"
)

// Categories lists all generator categories in display order.
func Categories() []Category {
	return []Category{
		CategoryIdentifiers,
		CategoryTime,
		CategoryNumeric,
		CategoryText,
		CategoryPerson,
		CategoryAddress,
		CategoryNetwork,
		CategoryCommerce,
	}
}

// Generator is one dynamic variable: a name (without the $ prefix) bound to a
// function producing a fresh value on every call. Generators hold no state
// shared across calls, so a Registry is safe for concurrent use from any
// number of request tabs.
type Generator struct {
	Name        string
	Category    Category
	Description string
	fn          func() string
}

// Value invokes the generator. Each call draws independently from its entropy
// or time source.
func (g *Generator) Value() string {
	return g.fn()
}

type Registry struct {
	generators map[string]*Generator
	order      []string
}

// NewRegistry builds a registry with the full default generator set.
func NewRegistry() *Registry {
	r := &Registry{
		generators: make(map[string]*Generator),
	}
	r.registerIdentifiers()
	r.registerTime()
	r.registerNumeric()
	r.registerText()
	r.registerPerson()
	r.registerAddress()
	r.registerNetwork()
	r.registerCommerce()
	return r
}

// Register adds or replaces a generator. The name must not include the $
// prefix used to reference it in templates.
func (r *Registry) Register(name string, category Category, description string, fn func() string) {
	if _, exists := r.generators[name]; !exists {
		r.order = append(r.order, name)
	}
	r.generators[name] = &Generator{
		Name:        name,
		Category:    category,
		Description: description,
		fn:          fn,
	}
}

// Lookup finds a generator by name (without the $ prefix). An unknown name is
// not an error here; the resolver turns a miss into an unresolved-name
// diagnostic.
func (r *Registry) Lookup(name string) (*Generator, bool) {
	g, ok := r.generators[name]
	return g, ok
}

// Names returns all generator names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// ByCategory returns the generators belonging to one category, in
// registration order.
func (r *Registry) ByCategory(c Category) []*Generator {
	var out []*Generator
	for _, name := range r.order {
		if g := r.generators[name]; g.Category == c {
			out = append(out, g)
		}
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}
