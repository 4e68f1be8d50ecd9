package group

import (
	"context"
	"time"

	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/user"
)

type CreateGroupInput struct {
	Name        string
	Description c.Optional[string]
	CreatedBy   user.ID
	CreatedAt   time.Time
}

type GroupRepository interface {
	Create(ctx context.Context, input CreateGroupInput) (Group, error)
	GetByID(ctx context.Context, id ID) (Group, error)
	Delete(ctx context.Context, id ID) error
	ListByMember(ctx context.Context, userID user.ID) ([]Group, error)
}

type CreateMemberInput struct {
	GroupID   ID
	UserID    user.ID
	Role      Role
	CreatedAt time.Time
}

type MembershipRepository interface {
	Create(ctx context.Context, input CreateMemberInput) (Member, error)
	Get(ctx context.Context, groupID ID, userID user.ID) (Member, error)
	ListByGroup(ctx context.Context, groupID ID) ([]Member, error)
}
