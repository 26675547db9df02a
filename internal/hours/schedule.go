package hours

import (
	"encoding/json"
	"time"
)

// TimeLayout is the wire format for slot instants. Close instants of
// overnight slots land on the next calendar day, so full date-times are
// kept even though consumers only compare same-day clock times.
const TimeLayout = "2006-01-02 15:04:05"

// dayNames is indexed by the provider's day convention: 0=Monday .. 6=Sunday.
var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type LocalTime struct {
	time.Time
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimeLayout))
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// TimeSlot is one contiguous open-to-close interval within a day.
type TimeSlot struct {
	Open  LocalTime `json:"open_time"`
	Close LocalTime `json:"close_time"`
}

type DaySchedule struct {
	DayOfWeek           string     `json:"day_of_week"`
	Slots               []TimeSlot `json:"business_hours"`
	SpecialHoursApplied bool       `json:"special_hours_applied"`
}

// WeeklySchedule always carries exactly 7 entries, Monday through Sunday.
// An empty slot list means "no published hours that day", which the
// evaluator reads as closed rather than unknown.
type WeeklySchedule []DaySchedule

// RawSlot is the provider-native open-slot shape from the business-detail
// endpoint: a day index, HHMM clock strings, and an overnight flag.
type RawSlot struct {
	Day         *int   `json:"day"`
	Start       string `json:"start"`
	End         string `json:"end"`
	IsOvernight bool   `json:"is_overnight"`
}

// RawHours is the hours block of a business-detail document.
type RawHours struct {
	Open      []RawSlot `json:"open"`
	HoursType string    `json:"hours_type"`
}

// ProviderSlot and ProviderDay mirror the day-wise hours shape embedded in
// chat responses, with instants already rendered as TimeLayout strings.
type ProviderSlot struct {
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type ProviderDay struct {
	DayOfWeek           string         `json:"day_of_week"`
	Slots               []ProviderSlot `json:"business_hours"`
	SpecialHoursApplied bool           `json:"special_hours_applied"`
}

// Normalize converts provider-native open slots into a canonical weekly
// schedule anchored to now's calendar date. It always emits 7 days and
// never fails: slots missing a day index, start, or end are dropped, and
// a payload with no usable slots yields 7 empty days.
func Normalize(slots []RawSlot, now time.Time) WeeklySchedule {
	byDay := make(map[int][]RawSlot)
	for _, s := range slots {
		if s.Day == nil || *s.Day < 0 || *s.Day > 6 {
			continue
		}
		if len(s.Start) < 4 || len(s.End) < 4 {
			continue
		}
		byDay[*s.Day] = append(byDay[*s.Day], s)
	}

	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	schedule := make(WeeklySchedule, 0, 7)
	for day := 0; day <= 6; day++ {
		daySlots := make([]TimeSlot, 0, len(byDay[day]))
		for _, s := range byDay[day] {
			open, ok := clockOn(base, s.Start)
			if !ok {
				continue
			}
			closeBase := base
			if s.IsOvernight {
				closeBase = base.AddDate(0, 0, 1)
			}
			close, ok := clockOn(closeBase, s.End)
			if !ok {
				continue
			}
			// Keep the open < close invariant even when the overnight
			// flag is missing on a slot that wraps past midnight.
			if !close.After(open) {
				close = close.AddDate(0, 0, 1)
			}
			daySlots = append(daySlots, TimeSlot{
				Open:  LocalTime{open},
				Close: LocalTime{close},
			})
		}

		schedule = append(schedule, DaySchedule{
			DayOfWeek:           dayNames[day],
			Slots:               daySlots,
			SpecialHoursApplied: false,
		})
	}

	return schedule
}

// FromProviderDays canonicalizes chat-response day-wise hours into a weekly
// schedule: one entry per day Monday through Sunday regardless of how the
// raw payload was ordered or which days it covered. Unparseable slots are
// dropped. An entirely empty or unusable payload returns nil, which callers
// treat as "hours absent".
func FromProviderDays(days []ProviderDay) WeeklySchedule {
	if len(days) == 0 {
		return nil
	}

	byName := make(map[string]ProviderDay, len(days))
	for _, d := range days {
		if _, dup := byName[d.DayOfWeek]; !dup {
			byName[d.DayOfWeek] = d
		}
	}

	schedule := make(WeeklySchedule, 0, 7)
	for _, name := range dayNames {
		raw := byName[name]
		daySlots := make([]TimeSlot, 0, len(raw.Slots))
		for _, s := range raw.Slots {
			open, errOpen := time.ParseInLocation(TimeLayout, s.OpenTime, time.Local)
			close, errClose := time.ParseInLocation(TimeLayout, s.CloseTime, time.Local)
			if errOpen != nil || errClose != nil {
				continue
			}
			daySlots = append(daySlots, TimeSlot{
				Open:  LocalTime{open},
				Close: LocalTime{close},
			})
		}
		schedule = append(schedule, DaySchedule{
			DayOfWeek:           name,
			Slots:               daySlots,
			SpecialHoursApplied: raw.SpecialHoursApplied,
		})
	}

	return schedule
}

// HasHours reports whether any day of the schedule carries at least one slot.
func (ws WeeklySchedule) HasHours() bool {
	for _, d := range ws {
		if len(d.Slots) > 0 {
			return true
		}
	}
	return false
}

func (ws WeeklySchedule) day(name string) (DaySchedule, bool) {
	for _, d := range ws {
		if d.DayOfWeek == name {
			return d, true
		}
	}
	return DaySchedule{}, false
}

func clockOn(base time.Time, hhmm string) (time.Time, bool) {
	hour, ok1 := atoi2(hhmm[0:2])
	min, ok2 := atoi2(hhmm[2:4])
	if !ok1 || !ok2 || hour > 23 || min > 59 {
		return time.Time{}, false
	}
	return base.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute), true
}

func atoi2(s string) (int, bool) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func weekdayName(d time.Weekday) string {
	// time.Weekday counts from Sunday; the canonical order starts Monday.
	return dayNames[(int(d)+6)%7]
}
