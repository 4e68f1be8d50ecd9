package group

import (
	"context"
	"database/sql"
	"errors"
	"time"

	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/user"
	"calremind/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxGroupRepository struct {
	db db.Querier
}

func NewPgxGroupRepository(db db.Querier) *PgxGroupRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxGroupRepository{db: db}
}

func (r *PgxGroupRepository) Create(
	ctx context.Context,
	input group.CreateGroupInput,
) (g group.Group, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "group" (name, description, created_by, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, description, created_by, created_at`,
		input.Name,
		sql.NullString{String: input.Description.Value, Valid: input.Description.IsPresent},
		int64(input.CreatedBy),
		input.CreatedAt,
	)
	return scanGroup(row)
}

func (r *PgxGroupRepository) GetByID(ctx context.Context, id group.ID) (g group.Group, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, name, description, created_by, created_at FROM "group" WHERE id = $1`,
		int64(id),
	)
	g, err = scanGroup(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return g, group.ErrGroupDoesNotExist
	}
	return g, err
}

func (r *PgxGroupRepository) Delete(ctx context.Context, id group.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM "group" WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return group.ErrGroupDoesNotExist
	}
	return nil
}

func (r *PgxGroupRepository) ListByMember(
	ctx context.Context,
	userID user.ID,
) ([]group.Group, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT g.id, g.name, g.description, g.created_by, g.created_at
		 FROM "group" AS g JOIN group_member AS m ON m.group_id = g.id
		 WHERE m.user_id = $1
		 ORDER BY g.id`,
		int64(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]group.Group, 0)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func scanGroup(row pgx.Row) (g group.Group, err error) {
	var (
		id          int64
		name        string
		description sql.NullString
		createdBy   int64
		createdAt   time.Time
	)
	if err := row.Scan(&id, &name, &description, &createdBy, &createdAt); err != nil {
		return g, err
	}
	return group.Group{
		ID:          group.ID(id),
		Name:        name,
		Description: c.NewOptional(description.String, description.Valid),
		CreatedBy:   user.ID(createdBy),
		CreatedAt:   db.NaiveAsUTC(createdAt),
	}, nil
}
