package prompt

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ValidateNotEmpty rejects blank input.
func ValidateNotEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

// ValidateFile accepts the path of an existing regular file.
func ValidateFile(s string) error {
	_, err := filePath(s)
	return err
}

// filePath returns s without surrounding spaces if it names a regular file.
func filePath(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("path cannot be empty")
	}
	fi, err := os.Stat(s)
	if err != nil {
		return "", errors.New("path invalid, try a different path")
	}
	if fi.IsDir() {
		return "", errors.New("path is a directory")
	}
	return s, nil
}

// ValidateYear accepts whole numbers of at least minYear.
func ValidateYear(minYear int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("please enter a whole number")
		}
		if n < minYear {
			return fmt.Errorf("invalid year: data starts in %d", minYear)
		}
		return nil
	}
}

// ValidateCount accepts whole numbers from 1 to limit.
func ValidateCount(limit int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("please enter a whole number")
		}
		if n < 1 || n > limit {
			return fmt.Errorf("pick a number from 1 to %d", limit)
		}
		return nil
	}
}
