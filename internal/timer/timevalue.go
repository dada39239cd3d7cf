package timer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Field limits and conversion factors.
const (
	DefaultMaxHours = 99

	secondsPerMinute = 60
	minutesPerHour   = 60
	secondsPerHour   = secondsPerMinute * minutesPerHour
	millisPerSecond  = 1000
)

// Domain errors for construction-time validation.
var (
	ErrInvalidConfig = errors.New("invalid timer config")
	ErrOutOfRange    = errors.New("time field out of range")
)

// Direction is the sign of a single button press.
type Direction int

const (
	Decrement Direction = -1
	Increment Direction = 1
)

// Config is fixed at construction and shared by value.
type Config struct {
	MaxHours   int  `mapstructure:"max_hours"`
	Wrap       bool `mapstructure:"wrap"`
	MinuteStep int  `mapstructure:"minute_step"`
	SecondStep int  `mapstructure:"second_step"`
}

// DefaultConfig returns 99 hours max, wrap-around, single steps.
func DefaultConfig() Config {
	return Config{
		MaxHours:   DefaultMaxHours,
		Wrap:       true,
		MinuteStep: 1,
		SecondStep: 1,
	}
}

// Validate rejects negative MaxHours and non-positive step sizes.
func (c Config) Validate() error {
	switch {
	case c.MaxHours < 0:
		return fmt.Errorf("%w: max_hours %d is negative", ErrInvalidConfig, c.MaxHours)
	case c.MinuteStep < 1:
		return fmt.Errorf("%w: minute_step %d must be >= 1", ErrInvalidConfig, c.MinuteStep)
	case c.SecondStep < 1:
		return fmt.Errorf("%w: second_step %d must be >= 1", ErrInvalidConfig, c.SecondStep)
	}
	return nil
}

// TimeValue is a normalized hours/minutes/seconds triple. Minutes and seconds
// stay in [0,59]; hours stay in [0,MaxHours] except for values produced by
// FromDurationMillis, which are not re-normalized.
type TimeValue struct {
	hours   int
	minutes int
	seconds int
	cfg     Config
}

// New validates cfg and the initial fields.
func New(hours, minutes, seconds int, cfg Config) (TimeValue, error) {
	if err := cfg.Validate(); err != nil {
		return TimeValue{}, err
	}
	if hours < 0 || hours > cfg.MaxHours {
		return TimeValue{}, fmt.Errorf("%w: hours %d not in [0,%d]", ErrOutOfRange, hours, cfg.MaxHours)
	}
	if minutes < 0 || minutes >= minutesPerHour {
		return TimeValue{}, fmt.Errorf("%w: minutes %d not in [0,59]", ErrOutOfRange, minutes)
	}
	if seconds < 0 || seconds >= secondsPerMinute {
		return TimeValue{}, fmt.Errorf("%w: seconds %d not in [0,59]", ErrOutOfRange, seconds)
	}
	return TimeValue{hours: hours, minutes: minutes, seconds: seconds, cfg: cfg}, nil
}

// Normalize folds arbitrary input into range. Negative fields count as zero,
// seconds and minutes overflow carries upward, and the resulting hours go
// through the wrap/clamp policy.
func (c Config) Normalize(hours, minutes, seconds int) TimeValue {
	tv := TimeValue{cfg: c}
	tv.addSeconds(max(seconds, 0))
	tv.addMinutes(max(minutes, 0))
	tv.ApplyHourDelta(max(hours, 0))
	return tv
}

// Hours returns the hours field.
func (tv TimeValue) Hours() int { return tv.hours }

// Minutes returns the minutes field.
func (tv TimeValue) Minutes() int { return tv.minutes }

// Seconds returns the seconds field.
func (tv TimeValue) Seconds() int { return tv.seconds }

// Config returns the configuration the value was built with.
func (tv TimeValue) Config() Config { return tv.cfg }

// Parts returns (hours, minutes, seconds).
func (tv TimeValue) Parts() (int, int, int) {
	return tv.hours, tv.minutes, tv.seconds
}

// Equal compares the triple only.
func (tv TimeValue) Equal(other TimeValue) bool {
	return tv.hours == other.hours && tv.minutes == other.minutes && tv.seconds == other.seconds
}

// String renders HH:MM:SS.
func (tv TimeValue) String() string {
	return Pad2(tv.hours) + ":" + Pad2(tv.minutes) + ":" + Pad2(tv.seconds)
}

// ApplySecondDelta moves seconds by one SecondStep in dir, borrowing or
// carrying into minutes (and from there into hours) as needed.
func (tv *TimeValue) ApplySecondDelta(dir Direction) {
	tv.addSeconds(int(dir.sign()) * tv.cfg.SecondStep)
}

// ApplyMinuteDelta moves minutes by one MinuteStep in dir with hour carry.
func (tv *TimeValue) ApplyMinuteDelta(dir Direction) {
	tv.addMinutes(int(dir.sign()) * tv.cfg.MinuteStep)
}

// ApplyHourDelta is the terminal field: wrap modulo MaxHours+1 or clamp.
func (tv *TimeValue) ApplyHourDelta(delta int) {
	if tv.cfg.Wrap {
		tv.hours = euclidMod(tv.hours+delta, tv.cfg.MaxHours+1)
		return
	}
	tv.hours = min(max(tv.hours+delta, 0), tv.cfg.MaxHours)
}

func (tv *TimeValue) addSeconds(delta int) {
	total := tv.seconds + delta
	if total >= 0 && total < secondsPerMinute {
		tv.seconds = total
		return
	}
	tv.seconds = euclidMod(total, secondsPerMinute)
	if carry := floorDiv(total, secondsPerMinute); carry != 0 {
		tv.addMinutes(carry)
	}
}

func (tv *TimeValue) addMinutes(delta int) {
	total := tv.minutes + delta
	if total >= 0 && total < minutesPerHour {
		tv.minutes = total
		return
	}
	tv.minutes = euclidMod(total, minutesPerHour)
	if carry := floorDiv(total, minutesPerHour); carry != 0 {
		tv.ApplyHourDelta(carry)
	}
}

// ToDurationMillis returns the whole value in milliseconds.
func (tv TimeValue) ToDurationMillis() int64 {
	secs := int64(tv.hours)*secondsPerHour + int64(tv.minutes)*secondsPerMinute + int64(tv.seconds)
	return secs * millisPerSecond
}

// FromDurationMillis floors ms to whole seconds and splits it. Hours are
// taken as-is; no wrap or clamp is applied on load. Negative input yields zero.
func FromDurationMillis(ms int64, cfg Config) TimeValue {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / millisPerSecond
	return TimeValue{
		hours:   int(totalSeconds / secondsPerHour),
		minutes: int(totalSeconds % secondsPerHour / secondsPerMinute),
		seconds: int(totalSeconds % secondsPerMinute),
		cfg:     cfg,
	}
}

// Pad2 renders n as a two-digit, zero-padded decimal.
func Pad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// ParseField reads a displayed field. Text that is not an integer reads as
// 0 so the control stays responsive. A well-formed negative such as "-5" is
// deliberately folded to 0 as well, since no field has a negative range.
func ParseField(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (d Direction) sign() Direction {
	switch {
	case d < 0:
		return Decrement
	case d > 0:
		return Increment
	}
	return 0
}

// floorDiv is division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func euclidMod(a, b int) int {
	return ((a % b) + b) % b
}
