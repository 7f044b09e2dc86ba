package models

import "time"

// WindowSize is the fixed number of consecutive days a gallery shows
const WindowSize = 9

// Window represents a run of WindowSize consecutive calendar days.
// Day arithmetic goes through AddDate on midnight-UTC values so month
// and year boundaries roll over correctly.
type Window struct {
	Start time.Time
}

// NewWindow creates a window starting at the given day
func NewWindow(start time.Time) Window {
	return Window{
		Start: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// WindowFromDate creates a window from a date string in any accepted format
func WindowFromDate(dateStr string) (Window, error) {
	start, err := ParseDate(dateStr)
	if err != nil {
		return Window{}, err
	}
	return NewWindow(start), nil
}

// End returns the last day of the window
func (w Window) End() time.Time {
	return w.Start.AddDate(0, 0, WindowSize-1)
}

// Dates returns the window's days in order as canonical date strings
func (w Window) Dates() []string {
	dates := make([]string, 0, WindowSize)
	for i := 0; i < WindowSize; i++ {
		dates = append(dates, w.Start.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}

// StartDate returns the first day as a canonical date string
func (w Window) StartDate() string {
	return w.Start.Format(DateLayout)
}

// EndDate returns the last day as a canonical date string
func (w Window) EndDate() string {
	return w.End().Format(DateLayout)
}

// Contains reports whether a canonical date string falls inside the window.
// Canonical dates compare correctly as strings.
func (w Window) Contains(date string) bool {
	return date >= w.StartDate() && date <= w.EndDate()
}
