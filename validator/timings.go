package validator

import "time"

type Timings []Timing

func (t *Timings) Add(l string, d time.Duration) {
	*t = append(*t, Timing{Label: l, Duration: d})
}

// Total sums all recorded durations
func (t Timings) Total() time.Duration {
	var total time.Duration
	for _, ti := range t {
		total += ti.Duration
	}

	return total
}

type Timing struct {
	Label    string
	Duration time.Duration
}
