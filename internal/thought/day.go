package thought

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultEpoch is the instant day numbering starts from. Day boundaries are
// UTC throughout.
var DefaultEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DayNumber is the 1-based count of days elapsed since epoch, clamped to 1
// for any instant at or before the epoch.
func DayNumber(now, epoch time.Time) int {
	n := int(now.Sub(epoch)/(24*time.Hour)) + 1
	if n < 1 {
		return 1
	}
	return n
}

// SafeIndex maps any integer into [0, length). Returns 0 when length is 0;
// callers guard against an empty set before indexing.
func SafeIndex(raw, length int) int {
	if length == 0 {
		return 0
	}
	return ((raw % length) + length) % length
}

// ViewMode says how the current record was chosen.
type ViewMode int

const (
	ModeToday ViewMode = iota
	ModeYesterday
	ModeRandom
)

func (m ViewMode) String() string {
	switch m {
	case ModeYesterday:
		return "yesterday"
	case ModeRandom:
		return "random"
	default:
		return "today"
	}
}

// Selector owns which record index is on display. All index values are
// derived from AnchorDay except in random mode, where the draw is unseeded
// and re-rolled per invocation.
type Selector struct {
	Length    int
	Mode      ViewMode
	Index     int
	AnchorDay int
}

// NewSelector anchors to the day number at now and lands on today's record.
func NewSelector(length int, now, epoch time.Time) Selector {
	s := Selector{Length: length, AnchorDay: DayNumber(now, epoch)}
	s.GoToday()
	return s
}

func (s *Selector) todayIndex() int {
	return SafeIndex(s.AnchorDay-1, s.Length)
}

// GoToday recomputes the index from the anchor day number.
func (s *Selector) GoToday() {
	s.Mode = ModeToday
	s.Index = s.todayIndex()
}

// GoYesterday is always today−1, never displayed−1, so repeated presses
// hold on the same record instead of walking backwards.
func (s *Selector) GoYesterday() {
	s.Mode = ModeYesterday
	s.Index = SafeIndex(s.todayIndex()-1, s.Length)
}

// GoRandom draws uniformly over [0, Length).
func (s *Selector) GoRandom() {
	s.Mode = ModeRandom
	if s.Length > 0 {
		s.Index = rand.Intn(s.Length)
	} else {
		s.Index = 0
	}
}

// Roll advances the anchor when the day number at now has grown past it.
// Returns true when a new day started. In today mode the displayed index
// follows the new day; other modes keep what they show.
func (s *Selector) Roll(now, epoch time.Time) bool {
	n := DayNumber(now, epoch)
	if n <= s.AnchorDay {
		return false
	}
	s.AnchorDay = n
	if s.Mode == ModeToday {
		s.GoToday()
	}
	return true
}

// Label is the caption for the current record: "Day N", or a fixed "random"
// label when the record was a random draw.
func (s *Selector) Label() string {
	if s.Mode == ModeRandom {
		return "random"
	}
	return fmt.Sprintf("Day %d", s.Index+1)
}

// UntilRollover is the time left to the next UTC midnight, clamped to ≥ 0.
func UntilRollover(now time.Time) time.Duration {
	u := now.UTC()
	next := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	d := next.Sub(u)
	if d < 0 {
		d = 0
	}
	return d
}

// Countdown formats a duration as zero-padded HH:MM:SS, floor-truncated.
func Countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}
