package order

import (
	"time"

	"fulfillment/internal/pkg/errs"
)

// Timestamps is the append-only record of when an order entered each
// status. A timestamp for a status is written exactly once; a second
// write for the same status is a programming error and fails loudly
// rather than overwriting history.
type Timestamps struct {
	byStatus map[Status]time.Time
}

// NewTimestamps creates an empty timestamp record.
func NewTimestamps() Timestamps {
	return Timestamps{byStatus: make(map[Status]time.Time)}
}

// RestoreTimestamps reconstructs the record from persistence.
func RestoreTimestamps(byStatus map[Status]time.Time) (Timestamps, error) {
	ts := NewTimestamps()
	for status, at := range byStatus {
		if err := status.Validate(); err != nil {
			return Timestamps{}, err
		}
		ts.byStatus[status] = at
	}
	return ts, nil
}

// record writes the timestamp for a status. Fails if already set.
func (t Timestamps) record(status Status, at time.Time) error {
	if _, ok := t.byStatus[status]; ok {
		return errs.NewValueIsInvalidError("timestamp for " + status.String() + " is already set")
	}

	t.byStatus[status] = at
	return nil
}

// At returns the time the order entered the given status, if it did.
func (t Timestamps) At(status Status) (time.Time, bool) {
	at, ok := t.byStatus[status]
	return at, ok
}

// All returns a copy of every recorded timestamp keyed by status.
func (t Timestamps) All() map[Status]time.Time {
	out := make(map[Status]time.Time, len(t.byStatus))
	for status, at := range t.byStatus {
		out[status] = at
	}
	return out
}
