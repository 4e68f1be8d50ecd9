package group

import (
	"context"
	"errors"
	"time"

	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/user"
	"calremind/internal/db"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const PG_FOREIGN_KEY_ERR_CODE = "23503"

type PgxMembershipRepository struct {
	db db.Querier
}

func NewPgxMembershipRepository(db db.Querier) *PgxMembershipRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxMembershipRepository{db: db}
}

func (r *PgxMembershipRepository) Create(
	ctx context.Context,
	input group.CreateMemberInput,
) (m group.Member, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO group_member (group_id, user_id, role, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING group_id, user_id, role, created_at`,
		int64(input.GroupID),
		int64(input.UserID),
		string(input.Role),
		input.CreatedAt,
	)
	m, err = scanMember(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PG_UNIQUE_CONSTRAINT_ERR_CODE:
			return m, group.ErrMemberAlreadyExists
		case PG_FOREIGN_KEY_ERR_CODE:
			return m, group.ErrGroupDoesNotExist
		}
	}
	return m, err
}

func (r *PgxMembershipRepository) Get(
	ctx context.Context,
	groupID group.ID,
	userID user.ID,
) (m group.Member, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT group_id, user_id, role, created_at
		 FROM group_member WHERE group_id = $1 AND user_id = $2`,
		int64(groupID),
		int64(userID),
	)
	m, err = scanMember(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return m, group.ErrMemberDoesNotExist
	}
	return m, err
}

func (r *PgxMembershipRepository) ListByGroup(
	ctx context.Context,
	groupID group.ID,
) ([]group.Member, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT group_id, user_id, role, created_at
		 FROM group_member WHERE group_id = $1
		 ORDER BY created_at, user_id`,
		int64(groupID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]group.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func scanMember(row pgx.Row) (m group.Member, err error) {
	var (
		groupID   int64
		userID    int64
		role      string
		createdAt time.Time
	)
	if err := row.Scan(&groupID, &userID, &role, &createdAt); err != nil {
		return m, err
	}
	return group.Member{
		GroupID:   group.ID(groupID),
		UserID:    user.ID(userID),
		Role:      group.Role(role),
		CreatedAt: db.NaiveAsUTC(createdAt),
	}, nil
}
