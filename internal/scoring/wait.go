package scoring

import "time"

// WaitEstimate is a predicted wait window in minutes plus a peak-load flag.
type WaitEstimate struct {
	Min  int  `json:"min"`
	Max  int  `json:"max"`
	Busy bool `json:"busy"`
}

// PredictWait estimates the wait from a popularity proxy (reviews × rating)
// scaled by time-of-day, weekend, and party-size multipliers. Deterministic
// for a given (reviewCount, rating, partySize, now).
func PredictWait(reviewCount int, rating float64, partySize int, now time.Time) WaitEstimate {
	if reviewCount < 0 {
		reviewCount = 0
	}
	popularity := float64(reviewCount) * rating

	hour := now.Hour()
	timeMultiplier := 1.0
	switch {
	case (hour >= 12 && hour <= 14) || (hour >= 18 && hour <= 20):
		timeMultiplier = 1.8 // lunch and dinner peaks
	case (hour >= 11 && hour < 12) || (hour >= 17 && hour < 18):
		timeMultiplier = 1.3
	case hour >= 21 || hour <= 10:
		timeMultiplier = 0.5
	}

	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		timeMultiplier *= 1.3
	}

	partyMultiplier := 1.0
	if partySize >= 6 {
		partyMultiplier = 1.5
	} else if partySize >= 4 {
		partyMultiplier = 1.2
	}

	adjusted := popularity * timeMultiplier * partyMultiplier

	switch {
	case adjusted > 2000:
		return WaitEstimate{Min: 60, Max: 120, Busy: true}
	case adjusted > 1000:
		return WaitEstimate{Min: 30, Max: 60, Busy: true}
	case adjusted > 500:
		return WaitEstimate{Min: 15, Max: 30, Busy: false}
	default:
		return WaitEstimate{Min: 5, Max: 15, Busy: false}
	}
}

// BestTimeAdvice suggests when to arrive relative to the current rush.
func BestTimeAdvice(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour >= 18 && hour <= 20:
		return "Come at 5:30 PM or after 8:30 PM to avoid the rush"
	case hour >= 12 && hour <= 14:
		return "Come at 11:30 AM or after 2:00 PM for shorter wait"
	case hour >= 17 && hour < 18:
		return "Peak time starting soon! Arrive now or wait until 8:30 PM"
	default:
		return "Good time to visit now - minimal wait expected!"
	}
}

// TimeOfDay labels the current dining period.
func TimeOfDay(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour < 12:
		return "morning"
	case hour < 17:
		return "afternoon"
	case hour < 21:
		return "evening"
	default:
		return "late night"
	}
}
