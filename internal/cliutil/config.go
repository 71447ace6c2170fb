package cliutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInts converts command arguments to integers.
func ParseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// ParseIntList converts a comma separated list such as "1,2,3" to
// integers. An empty string is an empty list.
func ParseIntList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}
	return ParseInts(strings.Split(s, ","))
}
