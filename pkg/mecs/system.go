package mecs

// System is anything that plugs into the scheduler. A system implements
// Starter, Updater, or both; the scheduler type-checks at call time and
// skips hooks a system does not provide.
type System interface{}

// Starter receives a single callback before the first tick.
type Starter interface {
	Start(*Scene)
}

// Updater receives one callback per tick.
type Updater interface {
	Update(*Scene)
}

// Start runs the Start hook of every system that has one, in order.
func (s *Scene) Start(systems ...System) {
	for _, sys := range systems {
		if st, ok := sys.(Starter); ok {
			st.Start(s)
		}
	}
}

// Update runs the Update hook of every system that has one, in order.
// Call once per tick.
func (s *Scene) Update(systems ...System) {
	for _, sys := range systems {
		if up, ok := sys.(Updater); ok {
			up.Update(s)
		}
	}
}
