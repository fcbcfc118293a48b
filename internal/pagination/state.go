package pagination

// State is the page position a view holds between user actions.
// The total is never stored; it is derived from the filtered result.
type State struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// NewState returns the first page with the given size.
func NewState(size int) State {
	if size <= 0 {
		size = DefaultPageSize
	}
	return State{Page: 1, Size: size}
}

// Clamp returns the state with Page brought into range for total.
func (s State) Clamp(total int) State {
	if s.Size <= 0 {
		s.Size = DefaultPageSize
	}
	s.Page = ClampPage(s.Page, total, s.Size)
	return s
}

// Reset returns the state moved back to the first page.
func (s State) Reset() State {
	s.Page = 1
	if s.Size <= 0 {
		s.Size = DefaultPageSize
	}
	return s
}

// Goto returns the state moved to page; the next Clamp keeps it valid.
func (s State) Goto(page int) State {
	s.Page = page
	return s
}
