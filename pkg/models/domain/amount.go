package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is an authored numeric input kept exactly as it was typed.
// Blank or non-numeric text evaluates to zero.
type Amount string

func NewAmount(v float64) Amount {
	return Amount(strconv.FormatFloat(v, 'f', -1, 64))
}

func (a Amount) IsBlank() bool {
	return strings.TrimSpace(string(a)) == ""
}

// Valid reports whether a non-blank amount parses as a finite number.
func (a Amount) Valid() bool {
	_, ok := a.parse()
	return ok
}

func (a Amount) Float() float64 {
	v, _ := a.parse()
	return v
}

func (a Amount) parse() (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(string(a)), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("amount must be a number or a string: %w", err)
		}
		*a = Amount(n.String())
		return nil
	}
}
