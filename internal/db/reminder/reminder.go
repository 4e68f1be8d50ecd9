package reminder

import (
	"context"
	"time"

	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/reminder"
	"calremind/internal/db"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

type PgxReminderRepository struct {
	db db.Querier
}

func NewPgxReminderRepository(db db.Querier) *PgxReminderRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxReminderRepository{db: db}
}

func (r *PgxReminderRepository) CreateMany(
	ctx context.Context,
	input reminder.CreateManyInput,
) ([]reminder.Reminder, error) {
	var times pgtype.TimestampArray
	if err := times.Set(input.Times); err != nil {
		return nil, err
	}
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO reminder (event_id, at)
		 SELECT $1, unnest($2::timestamp[])
		 RETURNING id, event_id, at, sent`,
		int64(input.EventID),
		&times,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReminders(rows)
}

func (r *PgxReminderRepository) DueUnsent(
	ctx context.Context,
	asOf time.Time,
) ([]reminder.Reminder, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, event_id, at, sent
		 FROM reminder WHERE NOT sent AND at <= $1
		 ORDER BY at, id`,
		asOf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReminders(rows)
}

func (r *PgxReminderRepository) MarkSent(ctx context.Context, id reminder.ID) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE reminder SET sent = TRUE WHERE id = $1 AND NOT sent`,
		int64(id),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxReminderRepository) ListByEvent(
	ctx context.Context,
	eventID event.ID,
) ([]reminder.Reminder, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, event_id, at, sent
		 FROM reminder WHERE event_id = $1
		 ORDER BY at, id`,
		int64(eventID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReminders(rows)
}

func (r *PgxReminderRepository) DeleteByEvent(ctx context.Context, eventID event.ID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reminder WHERE event_id = $1`, int64(eventID))
	return err
}

func collectReminders(rows pgx.Rows) ([]reminder.Reminder, error) {
	reminders := make([]reminder.Reminder, 0)
	for rows.Next() {
		var (
			id      int64
			eventID int64
			at      time.Time
			sent    bool
		)
		if err := rows.Scan(&id, &eventID, &at, &sent); err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder.Reminder{
			ID:      reminder.ID(id),
			EventID: event.ID(eventID),
			At:      db.NaiveAsUTC(at),
			Sent:    sent,
		})
	}
	return reminders, rows.Err()
}
