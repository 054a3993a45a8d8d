package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mau1878/marketcapmanual/date"
)

func TestWriteChart(t *testing.T) {
	var caps date.History[float64]
	caps.Append(date.New(2023, 1, 1), 1234.5)
	caps.Append(date.New(2023, 1, 2), 2345.5)

	var buf bytes.Buffer
	if err := WriteChart(&buf, "AAPL", caps); err != nil {
		t.Fatalf("WriteChart() err = %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"Market Capitalization of AAPL",
		"echarts",
		"2023-01-01",
		"1234.5",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("chart html missing %q", want)
		}
	}
}
