package category

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID       uint64
	Category struct {
		ID     uint64
		UUID   uuid.UUID
		Name   string
		Status string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Categories []*Category
)
