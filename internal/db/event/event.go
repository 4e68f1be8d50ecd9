package event

import (
	"context"
	"database/sql"
	"errors"
	"time"

	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/user"
	"calremind/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxEventRepository struct {
	db db.Querier
}

func NewPgxEventRepository(db db.Querier) *PgxEventRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxEventRepository{db: db}
}

func (r *PgxEventRepository) Create(
	ctx context.Context,
	input event.CreateInput,
) (ev event.Event, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO event (owner_id, group_id, title, description, at, recurrence, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, owner_id, group_id, title, description, at, recurrence, created_at`,
		int64(input.OwnerID),
		encodeGroupID(input.GroupID),
		input.Title,
		encodeOptionalString(input.Description),
		input.At,
		encodeOptionalString(input.Recurrence),
		input.CreatedAt,
	)
	return scanEvent(row)
}

func (r *PgxEventRepository) GetByID(ctx context.Context, id event.ID) (ev event.Event, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, owner_id, group_id, title, description, at, recurrence, created_at
		 FROM event WHERE id = $1`,
		int64(id),
	)
	ev, err = scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return ev, event.ErrEventDoesNotExist
	}
	return ev, err
}

func (r *PgxEventRepository) Update(
	ctx context.Context,
	input event.UpdateInput,
) (ev event.Event, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE event
		 SET group_id = $1, title = $2, description = $3, at = $4, recurrence = $5
		 WHERE id = $6
		 RETURNING id, owner_id, group_id, title, description, at, recurrence, created_at`,
		encodeGroupID(input.GroupID),
		input.Title,
		encodeOptionalString(input.Description),
		input.At,
		encodeOptionalString(input.Recurrence),
		int64(input.ID),
	)
	ev, err = scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return ev, event.ErrEventDoesNotExist
	}
	return ev, err
}

func (r *PgxEventRepository) Delete(ctx context.Context, id event.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM event WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventDoesNotExist
	}
	return nil
}

func (r *PgxEventRepository) ListByOwner(
	ctx context.Context,
	ownerID user.ID,
) ([]event.Event, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, group_id, title, description, at, recurrence, created_at
		 FROM event WHERE owner_id = $1
		 ORDER BY at, id`,
		int64(ownerID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]event.Event, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func encodeGroupID(id c.Optional[group.ID]) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(id.Value), Valid: id.IsPresent}
}

func encodeOptionalString(s c.Optional[string]) sql.NullString {
	return sql.NullString{String: s.Value, Valid: s.IsPresent}
}

func scanEvent(row pgx.Row) (ev event.Event, err error) {
	var (
		id          int64
		ownerID     int64
		groupID     sql.NullInt64
		title       string
		description sql.NullString
		at          time.Time
		recurrence  sql.NullString
		createdAt   time.Time
	)
	err = row.Scan(&id, &ownerID, &groupID, &title, &description, &at, &recurrence, &createdAt)
	if err != nil {
		return ev, err
	}
	return event.Event{
		ID:          event.ID(id),
		OwnerID:     user.ID(ownerID),
		GroupID:     c.NewOptional(group.ID(groupID.Int64), groupID.Valid),
		Title:       title,
		Description: c.NewOptional(description.String, description.Valid),
		At:          db.NaiveAsUTC(at),
		Recurrence:  c.NewOptional(recurrence.String, recurrence.Valid),
		CreatedAt:   db.NaiveAsUTC(createdAt),
	}, nil
}
