package jsonutil

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleFloat converts a json.RawMessage to a float64, handling cases where
// upstream APIs return numbers as strings ("32.7" instead of 32.7).
func FlexibleFloat(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, fmt.Errorf("value is empty")
	}

	// Try number first
	var numVal float64
	if err := json.Unmarshal(raw, &numVal); err == nil {
		return numVal, nil
	}

	// Try quoted number
	var strVal string
	if err := json.Unmarshal(raw, &strVal); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(strVal), 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not a number: %w", strVal, err)
		}
		return parsed, nil
	}

	return 0, fmt.Errorf("value %s is not a number", string(raw))
}
