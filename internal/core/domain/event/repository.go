package event

import (
	"context"
	"time"

	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/user"
)

type CreateInput struct {
	OwnerID     user.ID
	GroupID     c.Optional[group.ID]
	Title       string
	Description c.Optional[string]
	At          time.Time
	Recurrence  c.Optional[string]
	CreatedAt   time.Time
}

type UpdateInput struct {
	ID          ID
	GroupID     c.Optional[group.ID]
	Title       string
	Description c.Optional[string]
	At          time.Time
	Recurrence  c.Optional[string]
}

type EventRepository interface {
	Create(ctx context.Context, input CreateInput) (Event, error)
	GetByID(ctx context.Context, id ID) (Event, error)
	Update(ctx context.Context, input UpdateInput) (Event, error)
	Delete(ctx context.Context, id ID) error
	ListByOwner(ctx context.Context, ownerID user.ID) ([]Event, error)
}
