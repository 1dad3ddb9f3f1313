package utils

import (
	"fmt"
	"strconv"
)

// ParseID converts a path parameter into a positive int64 identifier
func ParseID(value string) (int64, error) {
	if value == "" {
		return 0, fmt.Errorf("id is required")
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", value)
	}

	return id, nil
}
