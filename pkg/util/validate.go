package util

import (
	"errors"
	"strconv"
	"strings"
)

var errInvalidID = errors.New("invalid id")

// ParseID parses a positive integer id, tolerating surrounding spaces.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// ParseIDs parses every element with ParseID and stops at the first failure.
func ParseIDs(items []string) ([]int64, error) {
	ids := make([]int64, 0, len(items))
	for _, s := range items {
		id, err := ParseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
