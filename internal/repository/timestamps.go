package repository

import "time"

// modifiedAt returns the update time carried by a patch, or the current
// time when the caller did not stamp one. Stored times are UTC with
// millisecond precision on every backend.
func modifiedAt(stamped time.Time, now func() time.Time) time.Time {
	if stamped.IsZero() {
		stamped = now()
	}
	return stamped.UTC().Truncate(time.Millisecond)
}
