package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Number is a numeric form value kept as the raw text that was entered.
// It decodes from both numbers and strings so that a bad entry is reported
// against its field by the validator instead of failing the whole decode.
type Number string

// NumberOf formats f as a Number
func NumberOf(f float64) Number {
	return Number(strconv.FormatFloat(f, 'f', -1, 64))
}

// IsBlank reports whether nothing was entered
func (n Number) IsBlank() bool {
	return strings.TrimSpace(string(n)) == ""
}

// Float coerces the value to a float64. Blank text coerces to 0, the same
// way the form layer treats an emptied number input.
func (n Number) Float() (float64, error) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", string(n))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", string(n))
	}
	return f, nil
}

// UnmarshalJSON accepts a JSON number, a JSON string or null
func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*n = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
	default:
		*n = Number(raw)
	}
	return nil
}

// MarshalJSON writes a JSON number when the text parses, otherwise a string
func (n Number) MarshalJSON() ([]byte, error) {
	s := strings.TrimSpace(string(n))
	if s != "" {
		if _, err := n.Float(); err == nil {
			return []byte(s), nil
		}
	}
	return json.Marshal(string(n))
}

// UnmarshalYAML accepts any scalar node
func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar for a number field", value.Line)
	}
	if value.Tag == "!!null" {
		*n = ""
		return nil
	}
	*n = Number(value.Value)
	return nil
}

// MarshalYAML writes a plain number when the text parses
func (n Number) MarshalYAML() (interface{}, error) {
	if f, err := n.Float(); err == nil && !n.IsBlank() {
		return f, nil
	}
	return string(n), nil
}
