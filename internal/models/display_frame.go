package models

// Frame types and sources pushed to display subscribers.
const (
	FrameDisplay = "display"
	FrameAlarm   = "alarm"

	SourcePanel     = "panel"
	SourceCountdown = "countdown"
)

// DisplayFrame carries a changed triple (or an alarm) to renderers.
type DisplayFrame struct {
	Type    string    `json:"type"`
	Source  string    `json:"source"`
	Hours   int       `json:"hours"`
	Minutes int       `json:"minutes"`
	Seconds int       `json:"seconds"`
	Text    [3]string `json:"text"` // zero-padded "HH", "MM", "SS"
}
