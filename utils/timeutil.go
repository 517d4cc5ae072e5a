package utils

import "time"

const DateLayout = "2006-01-02"

// Today returns the current date in the storage format. Dates are stored
// as ISO strings, so lexicographic comparison matches chronological order.
func Today() string {
	return time.Now().Format(DateLayout)
}
