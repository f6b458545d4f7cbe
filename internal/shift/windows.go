package shift

import (
	"strings"

	shifterrors "github.com/shreyansh404/attendanceManagment/internal/shift/errors"
)

// Window is one row of the canonical shift table. Start and End are
// wall-clock "HH:MM" values; End before Start marks an overnight window.
type Window struct {
	Name  string
	Start string
	End   string
}

// canonicalWindows is the closed set of assignable shifts. Assignment
// requests must match a row exactly, only the name compares
// case-insensitively.
var canonicalWindows = []Window{
	{Name: "morning", Start: "08:00", End: "16:00"},
	{Name: "afternoon", Start: "12:00", End: "21:00"},
	{Name: "evening", Start: "16:00", End: "03:00"},
	{Name: "night", Start: "21:00", End: "06:00"},
}

// ValidateWindow resolves a requested shift against the canonical table.
// The returned window carries the canonical lowercase name.
func ValidateWindow(name, start, end string) (Window, error) {
	for _, w := range canonicalWindows {
		if strings.EqualFold(name, w.Name) && start == w.Start && end == w.End {
			return w, nil
		}
	}
	return Window{}, shifterrors.ErrInvalidShift
}
