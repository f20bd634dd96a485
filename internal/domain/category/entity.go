package category

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type (
	ID   uint64
	UUID = uuid.UUID
	// Category groups donation items (paint, tiles, lumber, ...).
	Category struct {
		UUID   UUID
		Name   string
		Status Status

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Categories []*Category
)

// Active reports whether the category may receive new donations.
func (c *Category) Active() bool {
	return c != nil && c.Status == StatusActive
}
