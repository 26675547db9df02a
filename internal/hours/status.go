package hours

import (
	"encoding/json"
	"time"
)

type OpenState int

const (
	StateUnknown OpenState = iota
	StateOpen
	StateClosed
)

func (s OpenState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

func (s OpenState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// OpenStatus is the evaluator's answer for one business at one instant.
type OpenStatus struct {
	State   OpenState `json:"state"`
	Message string    `json:"message"`
}

// Rank orders open before closed before unknown for result sorting.
func (s OpenStatus) Rank() int {
	switch s.State {
	case StateOpen:
		return 0
	case StateClosed:
		return 1
	default:
		return 2
	}
}

const clockLayout = "3:04 PM"

// Evaluate answers "open now / opens at / closes at" against the weekly
// schedule. Only the first slot of a day is consulted; split-hours
// businesses are not modeled. Absent data always degrades to unknown,
// never to an error.
func Evaluate(ws WeeklySchedule, now time.Time) OpenStatus {
	if len(ws) == 0 {
		return OpenStatus{State: StateUnknown, Message: "Hours unknown"}
	}

	today, ok := ws.day(weekdayName(now.Weekday()))
	if !ok || len(today.Slots) == 0 {
		return OpenStatus{State: StateClosed, Message: "Closed today"}
	}

	slot := today.Slots[0]
	open := slot.Open.Time
	close := slot.Close.Time

	if !now.Before(open) && now.Before(close) {
		return OpenStatus{
			State:   StateOpen,
			Message: "Open until " + close.Format(clockLayout),
		}
	}

	if now.Before(open) {
		return OpenStatus{
			State:   StateClosed,
			Message: "Opens at " + open.Format(clockLayout),
		}
	}

	tomorrow, ok := ws.day(weekdayName(now.AddDate(0, 0, 1).Weekday()))
	if ok && len(tomorrow.Slots) > 0 {
		return OpenStatus{
			State:   StateClosed,
			Message: "Closed • Opens " + tomorrow.Slots[0].Open.Format(clockLayout),
		}
	}

	return OpenStatus{State: StateClosed, Message: "Closed"}
}
