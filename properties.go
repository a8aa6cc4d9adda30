package grid

// Property names an attached grid property.
type Property uint8

const (
	PropRowDefinitions    Property = iota // row-definitions: string
	PropColumnDefinitions                 // column-definitions: string
	PropAutoGrid                          // auto-grid: bool
)

// String returns the property's external name.
func (p Property) String() string {
	switch p {
	case PropRowDefinitions:
		return "row-definitions"
	case PropColumnDefinitions:
		return "column-definitions"
	case PropAutoGrid:
		return "auto-grid"
	default:
		return "unknown"
	}
}

// Change describes one property assignment.
// Old and New hold a string for the definition properties and a bool for auto-grid.
type Change struct {
	Property Property
	Old      any
	New      any
}

type observer struct {
	id int
	fn func(Change)
}

// Properties is the configuration attached to an Element. Every setter
// notifies observers synchronously, in registration order, even when the
// value is unchanged; re-applying a definition string rebuilds the tracks.
//
// Properties is not safe for concurrent use; an element tree belongs to
// a single goroutine.
type Properties struct {
	rowDefinitions    string
	columnDefinitions string
	autoGrid          bool

	observers []observer
	nextID    int
}

// Observe registers fn to be called after every property assignment.
// The returned function removes the registration.
func (p *Properties) Observe(fn func(Change)) (cancel func()) {
	p.nextID++
	id := p.nextID
	p.observers = append(p.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range p.observers {
			if o.id == id {
				p.observers = append(p.observers[:i], p.observers[i+1:]...)
				return
			}
		}
	}
}

// RowDefinitions returns the last assigned row definition string.
func (p *Properties) RowDefinitions() string {
	return p.rowDefinitions
}

// SetRowDefinitions assigns the row definition string.
func (p *Properties) SetRowDefinitions(s string) {
	old := p.rowDefinitions
	p.rowDefinitions = s
	p.notify(Change{Property: PropRowDefinitions, Old: old, New: s})
}

// ColumnDefinitions returns the last assigned column definition string.
func (p *Properties) ColumnDefinitions() string {
	return p.columnDefinitions
}

// SetColumnDefinitions assigns the column definition string.
func (p *Properties) SetColumnDefinitions(s string) {
	old := p.columnDefinitions
	p.columnDefinitions = s
	p.notify(Change{Property: PropColumnDefinitions, Old: old, New: s})
}

// AutoGrid reports whether auto-grid is enabled.
func (p *Properties) AutoGrid() bool {
	return p.autoGrid
}

// SetAutoGrid enables or disables auto-grid.
func (p *Properties) SetAutoGrid(enabled bool) {
	old := p.autoGrid
	p.autoGrid = enabled
	p.notify(Change{Property: PropAutoGrid, Old: old, New: enabled})
}

func (p *Properties) notify(c Change) {
	// Copy so observers may cancel themselves while being notified
	observers := append([]observer(nil), p.observers...)
	for _, o := range observers {
		o.fn(c)
	}
}
