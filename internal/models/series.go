package models

import (
	"encoding/json"
	"fmt"
)

// Reading is a single row of the annual temperature table.
type Reading struct {
	Year        int     `json:"year"`
	Temperature float64 `json:"temperature"`
}

// TemperatureSeries is an ordered, contiguous run of annual sea-surface
// temperatures. It is immutable once constructed; accessors return copies.
type TemperatureSeries struct {
	years        []int
	temperatures []float64
}

// NewTemperatureSeries builds a series from parallel year and temperature
// slices. Years must be strictly increasing by exactly one.
func NewTemperatureSeries(years []int, temperatures []float64) (TemperatureSeries, error) {
	if len(years) != len(temperatures) {
		return TemperatureSeries{}, fmt.Errorf("series: %d years but %d temperatures", len(years), len(temperatures))
	}
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			return TemperatureSeries{}, fmt.Errorf("series: year %d follows %d, want %d", years[i], years[i-1], years[i-1]+1)
		}
	}
	s := TemperatureSeries{
		years:        make([]int, len(years)),
		temperatures: make([]float64, len(temperatures)),
	}
	copy(s.years, years)
	copy(s.temperatures, temperatures)
	return s, nil
}

func (s TemperatureSeries) Len() int {
	return len(s.years)
}

func (s TemperatureSeries) Empty() bool {
	return len(s.years) == 0
}

func (s TemperatureSeries) Years() []int {
	out := make([]int, len(s.years))
	copy(out, s.years)
	return out
}

func (s TemperatureSeries) Temperatures() []float64 {
	out := make([]float64, len(s.temperatures))
	copy(out, s.temperatures)
	return out
}

// At returns the i-th reading. It panics if i is out of range, like a slice index.
func (s TemperatureSeries) At(i int) Reading {
	return Reading{Year: s.years[i], Temperature: s.temperatures[i]}
}

func (s TemperatureSeries) Readings() []Reading {
	out := make([]Reading, len(s.years))
	for i := range s.years {
		out[i] = s.At(i)
	}
	return out
}

// Latest returns the most recent reading by year, or false for an empty series.
func (s TemperatureSeries) Latest() (Reading, bool) {
	if len(s.years) == 0 {
		return Reading{}, false
	}
	return s.At(len(s.years) - 1), true
}

// Span returns the first and last year. ok is false for an empty series.
func (s TemperatureSeries) Span() (first, last int, ok bool) {
	if len(s.years) == 0 {
		return 0, 0, false
	}
	return s.years[0], s.years[len(s.years)-1], true
}

type seriesJSON struct {
	Years        []int     `json:"years"`
	Temperatures []float64 `json:"temperatures"`
}

func (s TemperatureSeries) MarshalJSON() ([]byte, error) {
	return json.Marshal(seriesJSON{Years: s.Years(), Temperatures: s.Temperatures()})
}

func (s *TemperatureSeries) UnmarshalJSON(b []byte) error {
	var raw seriesJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := NewTemperatureSeries(raw.Years, raw.Temperatures)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
