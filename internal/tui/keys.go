package tui

import (
	"timeboard/internal/service"

	"github.com/gdamore/tcell/v2"
)

// runeEvents maps single keys to input events. Lower case moves a field up,
// upper case moves it down.
var runeEvents = map[rune]service.InputEvent{
	'h': service.InputHourUp,
	'H': service.InputHourDown,
	'm': service.InputMinuteUp,
	'M': service.InputMinuteDown,
	's': service.InputSecondUp,
	'S': service.InputSecondDown,
	' ': service.InputToggle,
	'l': service.InputLoad,
	'w': service.InputSave,
	'r': service.InputRestore,
	'v': service.InputBoard,
}

// eventForKey returns the input event bound to ev, if any.
func eventForKey(ev *tcell.EventKey) (service.InputEvent, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return service.InputLoad, true
	case tcell.KeyRune:
		e, ok := runeEvents[ev.Rune()]
		return e, ok
	}
	return "", false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
