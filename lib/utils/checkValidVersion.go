package utils

import (
	"errors"
	"strconv"
)

// CheckValidVersion parses a version-number path segment. Versions start
// at 1.
func CheckValidVersion(version string) (*int, error) {
	versionNum, err := strconv.Atoi(version)
	if err != nil {
		return nil, err
	}
	if versionNum < 1 {
		return nil, errors.New("version must be positive")
	}
	return &versionNum, nil
}
