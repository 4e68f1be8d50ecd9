package group

import (
	"context"
	"fmt"
	"testing"
	"time"

	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/user"
	"calremind/internal/db"
	dbuser "calremind/internal/db/user"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var NOW = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

type testMembershipSuite struct {
	suite.Suite
	pool            *pgxpool.Pool
	userRepository  *dbuser.PgxUserRepository
	groupRepository *PgxGroupRepository
	repository      *PgxMembershipRepository
}

func (suite *testMembershipSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.userRepository = dbuser.NewPgxRepository(suite.pool)
	suite.groupRepository = NewPgxGroupRepository(suite.pool)
	suite.repository = NewPgxMembershipRepository(suite.pool)
}

func (suite *testMembershipSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testMembershipSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxMembershipRepository(t *testing.T) {
	suite.Run(t, new(testMembershipSuite))
}

func (s *testMembershipSuite) createUser(email string) user.User {
	u, err := s.userRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(email),
		PasswordHash: "test-password-hash",
		CreatedAt:    NOW,
	})
	s.Nil(err)
	return u
}

func (s *testMembershipSuite) createGroup(createdBy user.ID) group.Group {
	g, err := s.groupRepository.Create(context.Background(), group.CreateGroupInput{
		Name:      "family",
		CreatedBy: createdBy,
		CreatedAt: NOW,
	})
	s.Nil(err)
	return g
}

func (s *testMembershipSuite) TestCreateAndGet() {
	u := s.createUser("owner@example.com")
	g := s.createGroup(u.ID)

	created, err := s.repository.Create(context.Background(), group.CreateMemberInput{
		GroupID:   g.ID,
		UserID:    u.ID,
		Role:      group.RoleOwner,
		CreatedAt: NOW,
	})
	s.Nil(err)
	s.Equal(group.RoleOwner, created.Role)

	m, err := s.repository.Get(context.Background(), g.ID, u.ID)
	s.Nil(err)
	s.Equal(group.RoleOwner, m.Role)
	s.Equal(NOW, m.CreatedAt)
}

func (s *testMembershipSuite) TestDuplicateMembership() {
	u := s.createUser("owner@example.com")
	g := s.createGroup(u.ID)

	_, err := s.repository.Create(context.Background(), group.CreateMemberInput{
		GroupID: g.ID, UserID: u.ID, Role: group.RoleOwner, CreatedAt: NOW,
	})
	s.Nil(err)

	_, err = s.repository.Create(context.Background(), group.CreateMemberInput{
		GroupID: g.ID, UserID: u.ID, Role: group.RoleMember, CreatedAt: NOW,
	})
	s.ErrorIs(err, group.ErrMemberAlreadyExists)
}

func (s *testMembershipSuite) TestListByGroup() {
	owner := s.createUser("owner@example.com")
	g := s.createGroup(owner.ID)
	_, err := s.repository.Create(context.Background(), group.CreateMemberInput{
		GroupID: g.ID, UserID: owner.ID, Role: group.RoleOwner, CreatedAt: NOW,
	})
	s.Nil(err)
	for i := 0; i < 3; i++ {
		member := s.createUser(fmt.Sprintf("member-%d@example.com", i))
		_, err := s.repository.Create(context.Background(), group.CreateMemberInput{
			GroupID:   g.ID,
			UserID:    member.ID,
			Role:      group.RoleMember,
			CreatedAt: NOW.Add(time.Duration(i+1) * time.Minute),
		})
		s.Nil(err)
	}

	members, err := s.repository.ListByGroup(context.Background(), g.ID)
	s.Nil(err)
	s.Len(members, 4)
	s.Equal(owner.ID, members[0].UserID)
}

func (s *testMembershipSuite) TestDeleteGroupCascadesToMembers() {
	u := s.createUser("owner@example.com")
	g := s.createGroup(u.ID)
	_, err := s.repository.Create(context.Background(), group.CreateMemberInput{
		GroupID: g.ID, UserID: u.ID, Role: group.RoleOwner, CreatedAt: NOW,
	})
	s.Nil(err)

	err = s.groupRepository.Delete(context.Background(), g.ID)
	s.Nil(err)

	_, err = s.repository.Get(context.Background(), g.ID, u.ID)
	s.ErrorIs(err, group.ErrMemberDoesNotExist)
}
