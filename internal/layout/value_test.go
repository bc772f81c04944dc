package layout

import (
	"math"
	"testing"
)

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		available int
		fallback  int
		expected  int
	}

	tests := map[string]tc{
		"fixed ignores available":        {value: Fixed(50), available: 100, fallback: 0, expected: 50},
		"fixed ignores fallback":         {value: Fixed(50), available: 100, fallback: 999, expected: 50},
		"50 percent of 100":              {value: Percent(50), available: 100, fallback: 0, expected: 50},
		"percent of zero available":      {value: Percent(50), available: 0, fallback: 50, expected: 0},
		"fractional percent rounds down": {value: Percent(33.33), available: 100, fallback: 0, expected: 33},
		"auto returns fallback":          {value: Auto(), available: 100, fallback: 42, expected: 42},
		"zero value is auto":             {value: Value{}, available: 100, fallback: 7, expected: 7},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.value.Resolve(tt.available, tt.fallback)
			if got != tt.expected {
				t.Errorf("Resolve(%d, %d) = %d, want %d",
					tt.available, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestValue_FixedOr(t *testing.T) {
	if got := Fixed(12).fixedOr(3); got != 12 {
		t.Errorf("Fixed(12).fixedOr(3) = %d, want 12", got)
	}
	if got := Percent(50).fixedOr(3); got != 3 {
		t.Errorf("Percent(50).fixedOr(3) = %d, want 3", got)
	}
	if got := Auto().fixedOr(3); got != 3 {
		t.Errorf("Auto().fixedOr(3) = %d, want 3", got)
	}
}

func TestValue_Valid(t *testing.T) {
	type tc struct {
		value Value
		valid bool
	}

	tests := map[string]tc{
		"auto":             {value: Auto(), valid: true},
		"fixed zero":       {value: Fixed(0), valid: true},
		"fixed negative":   {value: Fixed(-10), valid: false},
		"percent NaN":      {value: Percent(math.NaN()), valid: false},
		"percent infinite": {value: Percent(math.Inf(1)), valid: false},
		"unknown unit":     {value: Value{Unit: 9}, valid: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.valid(); got != tt.valid {
				t.Errorf("valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}
