// Package board models show/hide of the timer UI subtree.
package board

// Node is anything that can be shown or hidden and has children.
type Node interface {
	SetActive(active bool)
	Active() bool
	Children() []Node
}

// SetActiveRecursive applies active to n and every descendant, depth-first.
// A parent being hidden does not imply its children are, so each node is set
// explicitly.
func SetActiveRecursive(n Node, active bool) {
	if n == nil {
		return
	}
	n.SetActive(active)
	for _, child := range n.Children() {
		SetActiveRecursive(child, active)
	}
}

// Toggle flips the whole tree based on the root's state and returns the new
// state.
func Toggle(root Node) bool {
	if root == nil {
		return false
	}
	next := !root.Active()
	SetActiveRecursive(root, next)
	return next
}

// Element is a named in-memory Node.
type Element struct {
	Name     string
	active   bool
	children []*Element
}

// NewElement creates an active element with the given children.
func NewElement(name string, children ...*Element) *Element {
	return &Element{Name: name, active: true, children: children}
}

func (e *Element) SetActive(active bool) { e.active = active }

func (e *Element) Active() bool { return e.active }

func (e *Element) Children() []Node {
	out := make([]Node, 0, len(e.children))
	for _, c := range e.children {
		out = append(out, c)
	}
	return out
}

// Walk visits e and its descendants depth-first.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// NewTimerBoard builds the default board: the set-time panel, the countdown
// display and the control buttons.
func NewTimerBoard() *Element {
	return NewElement("timer_board",
		NewElement("control_panel",
			NewElement("hour_text"),
			NewElement("minute_text"),
			NewElement("second_text"),
			NewElement("hour_buttons"),
			NewElement("minute_buttons"),
			NewElement("second_buttons"),
		),
		NewElement("countdown",
			NewElement("hour_text"),
			NewElement("minute_text"),
			NewElement("second_text"),
		),
		NewElement("controls",
			NewElement("start_button"),
			NewElement("set_time_button"),
			NewElement("save_button"),
		),
	)
}
