package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrCacheMiss is returned when the cache is read without a refresh and no usable file exists.
	ErrCacheMiss = errors.New("cache file does not exist or is empty, run with -update to fetch the schedule")

	ErrMalformedResponse = errors.New("malformed schedule document")

	ErrPublishDisabled = errors.New("firebase publishing is not configured")
)

// NetworkError wraps a transport failure of the schedule request.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusError is returned when the schedule API answers with a non-200 status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to retrieve %s, status code: %d", e.URL, e.StatusCode)
}

// UnknownDayError means the day name has no entry in the day order table.
type UnknownDayError struct {
	Day string
}

func (e *UnknownDayError) Error() string {
	return fmt.Sprintf("unknown day %q", e.Day)
}

type WeekRangeError struct {
	Day  string
	Week int
}

func (e *WeekRangeError) Error() string {
	return fmt.Sprintf("lesson on %s has week number %d out of range", e.Day, e.Week)
}

func (e *WeekRangeError) Is(target error) bool {
	return target == ErrMalformedResponse
}
