package tour

// Registry holds the known tour definitions and resolves them by id.
type Registry struct {
	order []Tour
	byID  map[string]Tour
}

// NewRegistry builds a registry from the given definitions. Later
// definitions with a duplicate id replace earlier ones.
func NewRegistry(tours ...Tour) *Registry {
	r := &Registry{byID: make(map[string]Tour, len(tours))}
	for _, t := range tours {
		if _, exists := r.byID[t.ID]; !exists {
			r.order = append(r.order, t)
		} else {
			for i := range r.order {
				if r.order[i].ID == t.ID {
					r.order[i] = t
					break
				}
			}
		}
		r.byID[t.ID] = t
	}
	return r
}

// Get resolves a tour by id.
func (r *Registry) Get(id string) (Tour, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// List returns the tours in registration order.
func (r *Registry) List() []Tour {
	out := make([]Tour, len(r.order))
	copy(out, r.order)
	return out
}

// ByCategory returns the tours matching a category, in registration order.
func (r *Registry) ByCategory(category string) []Tour {
	var out []Tour
	for _, t := range r.order {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}
