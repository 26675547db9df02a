package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mondayWeek(t *testing.T, slots []RawSlot) WeeklySchedule {
	t.Helper()
	return Normalize(slots, monday)
}

func TestEvaluateNilScheduleUnknown(t *testing.T) {
	status := Evaluate(nil, monday)

	assert.Equal(t, StateUnknown, status.State)
	assert.Equal(t, "Hours unknown", status.Message)
	assert.Equal(t, 2, status.Rank())
}

func TestEvaluateOpenNow(t *testing.T) {
	ws := mondayWeek(t, []RawSlot{{Day: dayPtr(0), Start: "0900", End: "1700"}})

	at := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.Local)
	status := Evaluate(ws, at)

	assert.Equal(t, StateOpen, status.State)
	assert.Equal(t, "Open until 5:00 PM", status.Message)
	assert.Equal(t, 0, status.Rank())
}

func TestEvaluateBeforeOpening(t *testing.T) {
	ws := mondayWeek(t, []RawSlot{{Day: dayPtr(0), Start: "0900", End: "1700"}})

	at := time.Date(2026, time.March, 2, 7, 30, 0, 0, time.Local)
	status := Evaluate(ws, at)

	assert.Equal(t, StateClosed, status.State)
	assert.Equal(t, "Opens at 9:00 AM", status.Message)
}

func TestEvaluateAfterClosePointsAtTomorrow(t *testing.T) {
	ws := mondayWeek(t, []RawSlot{
		{Day: dayPtr(0), Start: "0900", End: "1700"},
		{Day: dayPtr(1), Start: "0900", End: "1700"},
	})

	at := time.Date(2026, time.March, 2, 20, 0, 0, 0, time.Local)
	status := Evaluate(ws, at)

	assert.Equal(t, StateClosed, status.State)
	assert.Equal(t, "Closed • Opens 9:00 AM", status.Message)
}

func TestEvaluateAfterCloseNoTomorrowSlots(t *testing.T) {
	ws := mondayWeek(t, []RawSlot{{Day: dayPtr(0), Start: "0900", End: "1700"}})

	at := time.Date(2026, time.March, 2, 20, 0, 0, 0, time.Local)
	status := Evaluate(ws, at)

	assert.Equal(t, StateClosed, status.State)
	assert.Equal(t, "Closed", status.Message)
}

func TestEvaluateClosedToday(t *testing.T) {
	ws := mondayWeek(t, []RawSlot{{Day: dayPtr(3), Start: "0900", End: "1700"}})

	status := Evaluate(ws, monday)

	assert.Equal(t, StateClosed, status.State)
	assert.Equal(t, "Closed today", status.Message)
}

func TestEvaluateBoundaryInstants(t *testing.T) {
	ws := mondayWeek(t, []RawSlot{{Day: dayPtr(0), Start: "0900", End: "1700"}})

	atOpen := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.Local)
	assert.Equal(t, StateOpen, Evaluate(ws, atOpen).State)

	atClose := time.Date(2026, time.March, 2, 17, 0, 0, 0, time.Local)
	assert.Equal(t, StateClosed, Evaluate(ws, atClose).State)
}
