// Package ledger defines the domain entities of the bank clients service.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the canonical timestamp format used wherever a creation date
// is rendered, parsed, or compared: local time, second precision, no zone.
const TimeLayout = "2006-01-02 15:04:05"

// Client is a customer's ledger record. Name and Salary are fixed at
// creation; Balance starts equal to Salary and is the only mutable field.
type Client struct {
	ID        uuid.UUID
	Name      string
	Salary    float64
	Balance   float64
	CreatedAt time.Time
}

// NewClient builds a record with a fresh random ID, the balance initialized
// to the salary, and the creation time truncated to seconds so strictly-after
// comparisons match the persisted second-precision form.
func NewClient(name string, salary float64) Client {
	return Client{
		ID:        uuid.New(),
		Name:      name,
		Salary:    salary,
		Balance:   salary,
		CreatedAt: time.Now().Truncate(time.Second),
	}
}

// CreationDate renders CreatedAt in TimeLayout.
func (c Client) CreationDate() string {
	return c.CreatedAt.Format(TimeLayout)
}

// ParseCreationDate parses a timestamp in TimeLayout against the local zone,
// matching how creation dates are produced.
func ParseCreationDate(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.Local)
}
