package board

import "testing"

func countActive(root *Element) (active, total int) {
	root.Walk(func(e *Element) {
		total++
		if e.Active() {
			active++
		}
	})
	return active, total
}

func TestSetActiveRecursive_ReachesLeaves(t *testing.T) {
	b := NewTimerBoard()
	SetActiveRecursive(b, false)
	active, total := countActive(b)
	if active != 0 {
		t.Fatalf("%d of %d nodes still active", active, total)
	}

	SetActiveRecursive(b, true)
	active, total = countActive(b)
	if active != total {
		t.Fatalf("%d of %d nodes active", active, total)
	}
}

func TestToggle_FlipsFromRootState(t *testing.T) {
	b := NewTimerBoard()
	// A stray hidden child is re-shown with the rest when the root is shown.
	b.children[0].children[0].SetActive(false)

	if Toggle(b) {
		t.Fatalf("first toggle of a visible board should hide it")
	}
	if Toggle(b) != true {
		t.Fatalf("second toggle should show it")
	}
	if active, total := countActive(b); active != total {
		t.Fatalf("%d of %d nodes active", active, total)
	}
}

func TestNilNodes(t *testing.T) {
	SetActiveRecursive(nil, true)
	if Toggle(nil) {
		t.Fatalf("toggle of nil root must report hidden")
	}
}
