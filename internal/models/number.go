package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// scalar keeps a submitted numeric value together with whether it was supplied at all
// and whether it parsed. Browser forms send numbers as strings, so both JSON numbers and
// numeric strings are accepted.
type scalar struct {
	value   float64
	present bool
	numeric bool
	raw     string
}

func (s *scalar) parse(text string) {
	*s = scalar{}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.present = true
	s.raw = text
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return
	}
	s.numeric = true
	s.value = f
}

func (s *scalar) unmarshalJSON(data []byte) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = scalar{}
		return
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			*s = scalar{present: true, raw: string(data)}
			return
		}
		s.parse(text)
		return
	}
	s.parse(string(data))
}

func (s scalar) marshalJSON(asInt bool) ([]byte, error) {
	switch {
	case !s.present:
		return []byte("null"), nil
	case !s.numeric:
		return json.Marshal(s.raw)
	case asInt:
		return []byte(strconv.FormatFloat(s.value, 'f', 0, 64)), nil
	default:
		return json.Marshal(s.value)
	}
}

func (s scalar) text(asInt bool) string {
	switch {
	case !s.present:
		return ""
	case !s.numeric:
		return s.raw
	case asInt:
		return strconv.FormatFloat(s.value, 'f', 0, 64)
	default:
		return strconv.FormatFloat(s.value, 'f', -1, 64)
	}
}

// Measure is a real-valued dimension such as a plot length in feet.
type Measure struct {
	s scalar
}

// MeasureOf returns a present, numeric Measure.
func MeasureOf(v float64) Measure {
	return Measure{s: scalar{value: v, present: true, numeric: true}}
}

// Present reports whether a non-empty value was supplied.
func (m Measure) Present() bool { return m.s.present }

// Numeric reports whether the supplied value parsed as a finite number.
func (m Measure) Numeric() bool { return m.s.present && m.s.numeric }

// Float64 returns the parsed value, or 0 when absent or not numeric.
func (m Measure) Float64() float64 { return m.s.value }

// Positive reports whether the value was supplied, parsed and is greater than zero.
func (m Measure) Positive() bool { return m.Numeric() && m.s.value > 0 }

func (m Measure) String() string { return m.s.text(false) }

func (m *Measure) UnmarshalJSON(data []byte) error {
	m.s.unmarshalJSON(data)
	return nil
}

func (m Measure) MarshalJSON() ([]byte, error) { return m.s.marshalJSON(false) }

// UnmarshalParam lets gin bind form and query values into a Measure.
func (m *Measure) UnmarshalParam(param string) error {
	m.s.parse(param)
	return nil
}

// Count is a whole-number quantity such as a number of bedrooms. Fractional input is
// truncated toward zero, so "1.9" counts as 1.
type Count struct {
	s scalar
}

// CountOf returns a present, numeric Count.
func CountOf(v int) Count {
	return Count{s: scalar{value: float64(v), present: true, numeric: true}}
}

func (c *Count) truncate() {
	if !c.s.numeric {
		return
	}
	c.s.value = math.Trunc(c.s.value)
	if c.s.value == 0 {
		c.s.value = 0 // no "-0" for -0.5
	}
}

func (c Count) Present() bool { return c.s.present }

func (c Count) Numeric() bool { return c.s.present && c.s.numeric }

// Int returns the truncated value, or 0 when absent or not numeric. Values outside the
// int range are clamped to it.
func (c Count) Int() int {
	switch {
	case c.s.value >= float64(math.MaxInt):
		return math.MaxInt
	case c.s.value <= float64(math.MinInt):
		return math.MinInt
	}
	return int(c.s.value)
}

// Float64 returns the truncated value without any range limit.
func (c Count) Float64() float64 { return c.s.value }

// AtLeast reports whether the value was supplied, parsed and is >= min.
func (c Count) AtLeast(min int) bool { return c.Numeric() && c.s.value >= float64(min) }

func (c Count) String() string { return c.s.text(true) }

func (c *Count) UnmarshalJSON(data []byte) error {
	c.s.unmarshalJSON(data)
	c.truncate()
	return nil
}

func (c Count) MarshalJSON() ([]byte, error) { return c.s.marshalJSON(true) }

func (c *Count) UnmarshalParam(param string) error {
	c.s.parse(param)
	c.truncate()
	return nil
}
