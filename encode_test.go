package marketcap

import (
	"strings"
	"testing"

	"github.com/mau1878/marketcapmanual/date"
)

// The TSV encoding matches the paste format: rebuilding from the serialized
// daily series must reproduce it exactly.
func TestEncodeSharesTSV_roundTrip(t *testing.T) {
	daily, _, err := BuildDailyShares("2023-01-01\t10\n2023-01-03\t20")
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := EncodeSharesTSV(&buf, daily); err != nil {
		t.Fatal(err)
	}

	again, dropped, err := BuildDailyShares(buf.String())
	if err != nil {
		t.Fatalf("rebuild err = %v", err)
	}
	if dropped != 0 {
		t.Errorf("rebuild dropped = %v want 0", dropped)
	}
	if again.Len() != daily.Len() {
		t.Fatalf("rebuild Len() = %v want %v", again.Len(), daily.Len())
	}
	for on, want := range daily.Values() {
		if got, _ := again.Get(on); got != want {
			t.Errorf("rebuild [%v] = %v want %v", on, got, want)
		}
	}
}

func TestEncodeTSV_roundTrip(t *testing.T) {
	var prices date.History[float64]
	prices.Append(date.New(2023, 1, 1), 5.25)
	prices.Append(date.New(2023, 1, 2), 6)

	var buf strings.Builder
	if err := EncodeTSV(&buf, prices); err != nil {
		t.Fatal(err)
	}

	again, err := ParsePrices(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	if again.Len() != 2 {
		t.Fatalf("Len() = %v want 2", again.Len())
	}
	if got, _ := again.Get(date.New(2023, 1, 1)); got != 5.25 {
		t.Errorf("[2023-01-01] = %v want 5.25", got)
	}
}

func TestEncodeCSV(t *testing.T) {
	var h date.History[float64]
	h.Append(date.New(2023, 1, 1), 5)

	var buf strings.Builder
	if err := EncodeCSV(&buf, "close", h); err != nil {
		t.Fatal(err)
	}
	want := "date,close\n2023-01-01,5\n"
	if buf.String() != want {
		t.Errorf("EncodeCSV = %q want %q", buf.String(), want)
	}
}

func TestExportImportSeries(t *testing.T) {
	var h date.History[float64]
	h.Append(date.New(2023, 1, 1), 50_000_000)
	h.Append(date.New(2023, 1, 2), 90_000_000)

	var buf strings.Builder
	if err := ExportSeries(&buf, "AAPL", h); err != nil {
		t.Fatal(err)
	}

	series, err := ImportSeries(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	got, ok := series["AAPL"]
	if !ok {
		t.Fatalf("ImportSeries has no %q entry", "AAPL")
	}
	if got.Len() != 2 {
		t.Fatalf("Len() = %v want 2", got.Len())
	}
	if v, _ := got.Get(date.New(2023, 1, 2)); v != 90_000_000 {
		t.Errorf("[2023-01-02] = %v want 90000000", v)
	}
}

func TestParsePrices_errors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no tab", "2023-01-01 5"},
		{"bad date", "yesterday\t5"},
		{"bad number", "2023-01-01\tfive"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParsePrices(strings.NewReader(c.raw)); err == nil {
				t.Errorf("ParsePrices(%q) want error, got nil", c.raw)
			}
		})
	}
}

func TestParsePrices_lineNumberInError(t *testing.T) {
	_, err := ParsePrices(strings.NewReader("2023-01-01\t5\n2023-01-02\tbroken"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v want mention of line 2", err)
	}
}
