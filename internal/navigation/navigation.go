// Package navigation tracks which section of the home page is in view and
// whether the mobile navigation panel is open.
package navigation

import "slices"

// DefaultOffset is the distance from the top of the viewport, in CSS pixels,
// that a section must straddle to become active.
const DefaultOffset = 100

// Section ids on the home page, top to bottom.
const (
	SectionHome    = "home"
	SectionAbout   = "about"
	SectionWork    = "work"
	SectionContact = "contact"
)

// Sections lists the scroll-spy targets in document order.
var Sections = []string{SectionHome, SectionAbout, SectionWork, SectionContact}

// Rect is the vertical extent of an element relative to the viewport top.
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// SectionRect pairs a section id with its bounding rectangle.
type SectionRect struct {
	ID string `json:"id"`
	Rect
}

// Straddles reports whether the rectangle covers the given offset.
func (r Rect) Straddles(offset float64) bool {
	return r.Top <= offset && r.Bottom >= offset
}

// ComputeActiveSection returns the id of the first rect that straddles
// offset. ok is false when no rect does.
func ComputeActiveSection(rects []SectionRect, offset float64) (id string, ok bool) {
	for _, r := range rects {
		if r.Straddles(offset) {
			return r.ID, true
		}
	}
	return "", false
}

// IsSection reports whether id names a home page section.
func IsSection(id string) bool {
	return slices.Contains(Sections, id)
}

// State is the navigation state owned by a single rendered view.
type State struct {
	Active   string
	MenuOpen bool
}

// NewState returns the initial state: home active, menu closed.
func NewState() State {
	return State{Active: SectionHome}
}

// OnScroll recomputes the active section. The previous value is kept when
// no section straddles the offset.
func (s *State) OnScroll(rects []SectionRect, offset float64) {
	if id, ok := ComputeActiveSection(rects, offset); ok {
		s.Active = id
	}
}

func (s *State) OpenMenu()   { s.MenuOpen = true }
func (s *State) CloseMenu()  { s.MenuOpen = false }
func (s *State) ToggleMenu() { s.MenuOpen = !s.MenuOpen }

// Select handles a click on a navigation entry. It closes the menu and
// returns the section to scroll to.
func (s *State) Select(id string) string {
	s.CloseMenu()
	if IsSection(id) {
		s.Active = id
	}
	return id
}

// IsActive reports whether id is the highlighted section.
func (s State) IsActive(id string) bool {
	return s.Active == id
}
