package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// March 4, 2026 is a Wednesday.
func wednesdayAt(hour int) time.Time {
	return time.Date(2026, time.March, 4, hour, 0, 0, 0, time.Local)
}

func TestPredictWaitQuietMorning(t *testing.T) {
	// 100 * 4.0 * 0.5 = 200
	est := PredictWait(100, 4.0, 2, wednesdayAt(9))

	assert.Equal(t, WaitEstimate{Min: 5, Max: 15, Busy: false}, est)
}

func TestPredictWaitLunchPeak(t *testing.T) {
	// 1000 * 4.0 * 1.8 = 7200
	est := PredictWait(1000, 4.0, 2, wednesdayAt(13))

	assert.Equal(t, WaitEstimate{Min: 60, Max: 120, Busy: true}, est)
}

func TestPredictWaitShoulderHour(t *testing.T) {
	// 200 * 4.0 * 1.3 = 1040
	est := PredictWait(200, 4.0, 2, wednesdayAt(17))

	assert.Equal(t, WaitEstimate{Min: 30, Max: 60, Busy: true}, est)
}

func TestPredictWaitMidBand(t *testing.T) {
	// 200 * 4.0 * 1.0 = 800 at 15:00 (no multiplier window)
	est := PredictWait(200, 4.0, 2, wednesdayAt(15))

	assert.Equal(t, WaitEstimate{Min: 15, Max: 30, Busy: false}, est)
}

func TestPredictWaitWeekendMultiplier(t *testing.T) {
	// March 7, 2026 is a Saturday: 200 * 4.0 * 1.0 * 1.3 = 1040
	saturday := time.Date(2026, time.March, 7, 15, 0, 0, 0, time.Local)

	est := PredictWait(200, 4.0, 2, saturday)

	assert.Equal(t, WaitEstimate{Min: 30, Max: 60, Busy: true}, est)
}

func TestPredictWaitPartySizeMultipliers(t *testing.T) {
	at := wednesdayAt(15)

	// 150 * 4.0 = 600 base
	small := PredictWait(150, 4.0, 2, at)
	medium := PredictWait(150, 4.0, 4, at) // *1.2 = 720
	large := PredictWait(150, 4.0, 6, at)  // *1.5 = 900

	assert.Equal(t, 15, small.Min)
	assert.Equal(t, 15, medium.Min)
	assert.Equal(t, 15, large.Min)
	assert.True(t, PredictWait(300, 4.0, 6, at).Busy) // 1800 > 1000
}

func TestPredictWaitNegativeReviews(t *testing.T) {
	est := PredictWait(-10, 4.5, 2, wednesdayAt(13))

	assert.Equal(t, WaitEstimate{Min: 5, Max: 15, Busy: false}, est)
}

func TestPredictWaitDeterministic(t *testing.T) {
	at := wednesdayAt(19)
	first := PredictWait(800, 4.2, 3, at)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, PredictWait(800, 4.2, 3, at))
	}
}

func TestBestTimeAdvice(t *testing.T) {
	assert.Equal(t, "Come at 5:30 PM or after 8:30 PM to avoid the rush", BestTimeAdvice(wednesdayAt(19)))
	assert.Equal(t, "Come at 11:30 AM or after 2:00 PM for shorter wait", BestTimeAdvice(wednesdayAt(13)))
	assert.Equal(t, "Peak time starting soon! Arrive now or wait until 8:30 PM", BestTimeAdvice(wednesdayAt(17)))
	assert.Equal(t, "Good time to visit now - minimal wait expected!", BestTimeAdvice(wednesdayAt(9)))
}

func TestTimeOfDay(t *testing.T) {
	assert.Equal(t, "morning", TimeOfDay(wednesdayAt(8)))
	assert.Equal(t, "afternoon", TimeOfDay(wednesdayAt(14)))
	assert.Equal(t, "evening", TimeOfDay(wednesdayAt(19)))
	assert.Equal(t, "late night", TimeOfDay(wednesdayAt(22)))
}
