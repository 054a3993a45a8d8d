package marketcap

import (
	"testing"

	"github.com/mau1878/marketcapmanual/date"
)

func TestResampleDaily_interpolation(t *testing.T) {
	var samples date.History[float64]
	samples.Append(date.New(2023, 1, 1), 10_000_000)
	samples.Append(date.New(2023, 1, 11), 20_000_000)

	daily := ResampleDaily(samples)

	// One entry per calendar day over [min, max], no gaps.
	if daily.Len() != 11 {
		t.Fatalf("Len() = %v want 11", daily.Len())
	}
	for day := range date.NewRange(date.New(2023, 1, 1), date.New(2023, 1, 11)).All() {
		if _, ok := daily.Get(day); !ok {
			t.Errorf("daily series has no entry for %v", day)
		}
	}

	// V = V1 + (V2-V1) * (D-D1)/(D2-D1)
	cases := []struct {
		on   date.Date
		want float64
	}{
		{date.New(2023, 1, 1), 10_000_000},
		{date.New(2023, 1, 4), 13_000_000},
		{date.New(2023, 1, 6), 15_000_000}, // midpoint: (V1+V2)/2
		{date.New(2023, 1, 11), 20_000_000},
	}
	for _, c := range cases {
		if got, _ := daily.Get(c.on); got != c.want {
			t.Errorf("daily[%v] = %v want %v", c.on, got, c.want)
		}
	}
}

func TestResampleDaily_idempotent(t *testing.T) {
	var samples date.History[float64]
	samples.Append(date.New(2023, 1, 1), 10)
	samples.Append(date.New(2023, 1, 4), 40)

	daily := ResampleDaily(samples)
	again := ResampleDaily(daily)

	if again.Len() != daily.Len() {
		t.Fatalf("resampled twice: Len() = %v want %v", again.Len(), daily.Len())
	}
	for on, want := range daily.Values() {
		if got, _ := again.Get(on); got != want {
			t.Errorf("resampled twice: [%v] = %v want %v", on, got, want)
		}
	}
}

func TestResampleDaily_singleSample(t *testing.T) {
	var samples date.History[float64]
	samples.Append(date.New(2023, 1, 1), 10)

	daily := ResampleDaily(samples)
	if daily.Len() != 1 {
		t.Errorf("Len() = %v want 1", daily.Len())
	}
}

func TestResampleDaily_empty(t *testing.T) {
	var samples date.History[float64]
	if daily := ResampleDaily(samples); daily.Len() != 0 {
		t.Errorf("Len() = %v want 0", daily.Len())
	}
}

func TestExtendThrough(t *testing.T) {
	var samples date.History[float64]
	samples.Append(date.New(2023, 1, 1), 10)
	samples.Append(date.New(2023, 1, 3), 20)

	daily := ExtendThrough(ResampleDaily(samples), date.New(2023, 1, 6))

	if daily.Len() != 6 {
		t.Fatalf("Len() = %v want 6", daily.Len())
	}
	// Every day after the last sample inherits the last sample's value.
	for _, on := range []date.Date{date.New(2023, 1, 4), date.New(2023, 1, 5), date.New(2023, 1, 6)} {
		if got, _ := daily.Get(on); got != 20 {
			t.Errorf("daily[%v] = %v want 20 (forward-fill)", on, got)
		}
	}
}

func TestExtendThrough_noop(t *testing.T) {
	var samples date.History[float64]
	samples.Append(date.New(2023, 1, 1), 10)
	samples.Append(date.New(2023, 1, 3), 20)
	daily := ResampleDaily(samples)

	if got := ExtendThrough(daily, date.New(2023, 1, 2)); got.Len() != 3 {
		t.Errorf("ExtendThrough before last: Len() = %v want 3", got.Len())
	}

	var empty date.History[float64]
	if got := ExtendThrough(empty, date.New(2023, 1, 2)); got.Len() != 0 {
		t.Errorf("ExtendThrough on empty: Len() = %v want 0", got.Len())
	}
}

func TestBuildDailyShares(t *testing.T) {
	daily, dropped, err := BuildDailyShares("2023-01-01\t10\n2023-01-03\t20")
	if err != nil {
		t.Fatalf("BuildDailyShares() err = %v", err)
	}
	if dropped != 0 {
		t.Errorf("dropped = %v want 0", dropped)
	}

	want := map[date.Date]float64{
		date.New(2023, 1, 1): 10_000_000,
		date.New(2023, 1, 2): 15_000_000,
		date.New(2023, 1, 3): 20_000_000,
	}
	if daily.Len() != len(want) {
		t.Fatalf("Len() = %v want %v", daily.Len(), len(want))
	}
	for on, value := range want {
		if got, _ := daily.Get(on); got != value {
			t.Errorf("daily[%v] = %v want %v", on, got, value)
		}
	}
}
