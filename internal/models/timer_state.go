package models

import "time"

// PanelValue is the set-time panel as shown to the user.
type PanelValue struct {
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
	Display string `json:"display"` // HH:MM:SS
}

// TimerState is the current snapshot of the countdown and its panel.
type TimerState struct {
	State        string     `json:"state"` // IDLE | ARMED | RUNNING
	RemainingMs  int64      `json:"remaining_ms"`
	Hours        int        `json:"hours"`
	Minutes      int        `json:"minutes"`
	Seconds      int        `json:"seconds"`
	Display      string     `json:"display"`
	IsRunning    bool       `json:"is_running"`
	Panel        PanelValue `json:"panel"`
	BoardVisible bool       `json:"board_visible"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
