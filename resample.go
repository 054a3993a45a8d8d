package marketcap

import "github.com/mau1878/marketcapmanual/date"

// ResampleDaily expands a sparse share-count series into a gap-free daily
// series covering every calendar day from the first to the last sample,
// inclusive.
//
// Known dates keep their value. Days strictly between two known samples are
// linearly interpolated by elapsed calendar days:
//
//	V = V1 + (V2-V1) * (D-D1)/(D2-D1)
//
// Resampling an already-dense daily series is a no-op.
func ResampleDaily(samples date.History[float64]) date.History[float64] {
	var daily date.History[float64]
	var prev date.Date
	var prevValue float64
	havePrev := false

	for on, value := range samples.Values() {
		if havePrev {
			gap := float64(on.Sub(prev))
			for day := prev.Add(1); day.Before(on); day = day.Add(1) {
				frac := float64(day.Sub(prev)) / gap
				daily.Append(day, prevValue+(value-prevValue)*frac)
			}
		}
		daily.Append(on, value)
		prev, prevValue, havePrev = on, value, true
	}
	return daily
}

// ExtendThrough forward-fills a daily series up to and including 'last':
// every day after the series' final sample inherits that sample's value.
// A 'last' on or before the final sample leaves the series unchanged. Days
// before the first sample remain undefined.
func ExtendThrough(daily date.History[float64], last date.Date) date.History[float64] {
	if daily.Len() == 0 {
		return daily
	}
	end, value := daily.Latest()
	for day := end.Add(1); !day.After(last); day = day.Add(1) {
		daily.Append(day, value)
	}
	return daily
}
