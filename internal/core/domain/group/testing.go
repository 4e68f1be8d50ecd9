package group

import (
	"context"
	"fmt"
	"sync"

	"calremind/internal/core/domain/user"
)

type FakeGroupRepository struct {
	Groups      []Group
	Members     *FakeMembershipRepository
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeGroupRepository(members *FakeMembershipRepository) *FakeGroupRepository {
	return &FakeGroupRepository{Members: members}
}

func (r *FakeGroupRepository) Create(ctx context.Context, input CreateGroupInput) (g Group, err error) {
	if r.ReturnError {
		return g, fmt.Errorf("could not create group %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Groups {
		maxID = existing.ID
	}
	g = Group{
		ID:          maxID + 1,
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   input.CreatedAt,
	}
	r.Groups = append(r.Groups, g)
	return g, nil
}

func (r *FakeGroupRepository) GetByID(ctx context.Context, id ID) (g Group, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, g := range r.Groups {
		if g.ID == id {
			return g, nil
		}
	}
	return g, ErrGroupDoesNotExist
}

func (r *FakeGroupRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, g := range r.Groups {
		if g.ID == id {
			r.Groups = append(r.Groups[:ix], r.Groups[ix+1:]...)
			return nil
		}
	}
	return ErrGroupDoesNotExist
}

func (r *FakeGroupRepository) ListByMember(ctx context.Context, userID user.ID) ([]Group, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	groups := make([]Group, 0)
	for _, g := range r.Groups {
		if _, err := r.Members.Get(ctx, g.ID, userID); err == nil {
			groups = append(groups, g)
		}
	}
	return groups, nil
}

type FakeMembershipRepository struct {
	Members     []Member
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeMembershipRepository() *FakeMembershipRepository {
	return &FakeMembershipRepository{}
}

func (r *FakeMembershipRepository) Create(ctx context.Context, input CreateMemberInput) (m Member, err error) {
	if r.ReturnError {
		return m, fmt.Errorf("could not create member %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Members {
		if existing.GroupID == input.GroupID && existing.UserID == input.UserID {
			return m, ErrMemberAlreadyExists
		}
	}
	m = Member{
		GroupID:   input.GroupID,
		UserID:    input.UserID,
		Role:      input.Role,
		CreatedAt: input.CreatedAt,
	}
	r.Members = append(r.Members, m)
	return m, nil
}

func (r *FakeMembershipRepository) Get(ctx context.Context, groupID ID, userID user.ID) (m Member, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, m := range r.Members {
		if m.GroupID == groupID && m.UserID == userID {
			return m, nil
		}
	}
	return m, ErrMemberDoesNotExist
}

func (r *FakeMembershipRepository) ListByGroup(ctx context.Context, groupID ID) ([]Member, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	members := make([]Member, 0)
	for _, m := range r.Members {
		if m.GroupID == groupID {
			members = append(members, m)
		}
	}
	return members, nil
}
