package story

import (
	"fmt"
	"strconv"
)

// TimePart is a time of day as milliseconds since midnight, always in
// [0, 24h).
type TimePart int

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

// NewTimePart normalizes millis into [0, 24h); negative and
// out-of-range counts wrap.
func NewTimePart(millis int) TimePart {
	m := millis % millisPerDay
	if m < 0 {
		m += millisPerDay
	}
	return TimePart(m)
}

func (t TimePart) Hour() int        { return int(t) / millisPerHour }
func (t TimePart) Minute() int      { return int(t) % millisPerHour / millisPerMinute }
func (t TimePart) Second() int      { return int(t) % millisPerMinute / millisPerSecond }
func (t TimePart) Millisecond() int { return int(t) % millisPerSecond }

func (t TimePart) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// ParseTimePart decodes the archive's "HH:MM:SS" format, optionally
// followed by '.' and fractional-second digits and/or a timezone
// suffix. Only the first four fractional digits are consumed and only
// the first three contribute (truncation to millisecond precision).
// The timezone suffix is discarded: archive times are already in the
// village's nominal local time.
func ParseTimePart(s string) (TimePart, bool) {
	if len(s) < 8 {
		return 0, false
	}
	if s[2] != ':' || s[5] != ':' {
		return 0, false
	}
	h, err := strconv.Atoi(s[0:2])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(s[3:5])
	if err != nil {
		return 0, false
	}
	sec, err := strconv.Atoi(s[6:8])
	if err != nil {
		return 0, false
	}

	ms := 0
	if rest := s[8:]; len(rest) > 0 && rest[0] == '.' {
		digits := rest[1:]
		n := 0
		for n < len(digits) && digits[n] >= '0' && digits[n] <= '9' {
			n++
		}
		if n == 0 {
			return 0, false
		}
		if n > 4 {
			n = 4
		}
		scale := 100
		for i := 0; i < n && i < 3; i++ {
			ms += int(digits[i]-'0') * scale
			scale /= 10
		}
	}

	total := h*millisPerHour + m*millisPerMinute + sec*millisPerSecond + ms
	return NewTimePart(total), true
}
