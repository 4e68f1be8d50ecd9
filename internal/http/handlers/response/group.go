package response

import (
	"time"

	"calremind/internal/core/domain/group"
)

type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (g *Group) FromDomainGroup(dg group.Group) {
	g.ID = int64(dg.ID)
	g.Name = dg.Name
	if dg.Description.IsPresent {
		g.Description = &dg.Description.Value
	}
	g.CreatedBy = int64(dg.CreatedBy)
	g.CreatedAt = dg.CreatedAt
}

type Member struct {
	GroupID   int64     `json:"group_id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Member) FromDomainMember(dm group.Member) {
	m.GroupID = int64(dm.GroupID)
	m.UserID = int64(dm.UserID)
	m.Role = string(dm.Role)
	m.CreatedAt = dm.CreatedAt
}
