package service

import (
	"strings"

	"timeboard/internal/models"
	"timeboard/internal/timer"
)

// Field names a panel field.
type Field string

const (
	FieldHour   Field = "hour"
	FieldMinute Field = "minute"
	FieldSecond Field = "second"
)

// ParsePanelField accepts hour/minute/second, singular or plural.
func ParsePanelField(s string) (Field, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s") {
	case "hour":
		return FieldHour, nil
	case "minute":
		return FieldMinute, nil
	case "second":
		return FieldSecond, nil
	}
	return "", ErrUnknownField
}

// ParseDirection accepts increment/decrement and the short forms up/down,
// inc/dec and +/-.
func ParseDirection(s string) (timer.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "increment", "inc", "up", "+":
		return timer.Increment, nil
	case "decrement", "dec", "down", "-":
		return timer.Decrement, nil
	}
	return 0, ErrUnknownDirection
}

type PanelService struct {
	session *Session
}

func NewPanelService(session *Session) *PanelService {
	return &PanelService{session: session}
}

// Adjust applies one button press. Hours move by one; minutes and seconds by
// their configured step with carry.
func (p *PanelService) Adjust(field Field, dir timer.Direction) models.PanelValue {
	s := p.session
	s.mu.Lock()
	defer s.mu.Unlock()

	tv := s.panel
	switch field {
	case FieldHour:
		tv.ApplyHourDelta(int(dir))
	case FieldMinute:
		tv.ApplyMinuteDelta(dir)
	case FieldSecond:
		tv.ApplySecondDelta(dir)
	default:
		return panelValue(s.panel)
	}
	s.setPanelLocked(tv)
	return panelValue(s.panel)
}

// SetPanel replaces the panel, folding out-of-range input into range.
func (p *PanelService) SetPanel(hours, minutes, seconds int) models.PanelValue {
	s := p.session
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setPanelLocked(s.cfg.Normalize(hours, minutes, seconds))
	return panelValue(s.panel)
}

// SetPanelText is SetPanel for displayed text; malformed fields read as 0.
func (p *PanelService) SetPanelText(hours, minutes, seconds string) models.PanelValue {
	return p.SetPanel(timer.ParseField(hours), timer.ParseField(minutes), timer.ParseField(seconds))
}

func (p *PanelService) PanelValue() models.PanelValue {
	s := p.session
	s.mu.Lock()
	defer s.mu.Unlock()
	return panelValue(s.panel)
}
