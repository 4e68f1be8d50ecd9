package group

import (
	"time"

	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/user"
)

type ID int64

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) IsValid() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleMember
}

// CanManageMembers reports whether the role is allowed to add or remove
// members of the group.
func (r Role) CanManageMembers() bool {
	return r == RoleOwner || r == RoleAdmin
}

type Group struct {
	ID          ID
	Name        string
	Description c.Optional[string]
	CreatedBy   user.ID
	CreatedAt   time.Time
}

type Member struct {
	GroupID   ID
	UserID    user.ID
	Role      Role
	CreatedAt time.Time
}
