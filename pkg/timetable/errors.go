package timetable

import "fmt"

// TransportError is returned by FetchDay when the timetable could not be
// retrieved or decoded. StatusCode is zero unless the server answered.
type TransportError struct {
	Day        string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("timetable for %q: unexpected status code %d from %s", e.Day, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("timetable for %q: %v", e.Day, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
