package user

import (
	"context"
	"errors"
	"time"

	"calremind/internal/core/domain/user"
	"calremind/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxTelegramLinkRepository struct {
	db db.Querier
}

func NewPgxTelegramLinkRepository(db db.Querier) *PgxTelegramLinkRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxTelegramLinkRepository{db: db}
}

func (r *PgxTelegramLinkRepository) Create(
	ctx context.Context,
	input user.CreateTelegramLinkInput,
) (link user.TelegramLink, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO telegram_link (user_id, code, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, code, confirmed, created_at`,
		int64(input.UserID),
		string(input.Code),
		input.CreatedAt,
	)
	return scanTelegramLink(row)
}

func (r *PgxTelegramLinkRepository) GetByCode(
	ctx context.Context,
	code user.LinkCode,
) (link user.TelegramLink, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, code, confirmed, created_at
		 FROM telegram_link WHERE code = $1`,
		string(code),
	)
	link, err = scanTelegramLink(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return link, user.ErrLinkCodeDoesNotExist
	}
	return link, err
}

func (r *PgxTelegramLinkRepository) Confirm(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE telegram_link SET confirmed = TRUE WHERE id = $1 AND NOT confirmed`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrLinkCodeDoesNotExist
	}
	return nil
}

func scanTelegramLink(row pgx.Row) (link user.TelegramLink, err error) {
	var (
		id        int64
		userID    int64
		code      string
		confirmed bool
		createdAt time.Time
	)
	if err := row.Scan(&id, &userID, &code, &confirmed, &createdAt); err != nil {
		return link, err
	}
	return user.TelegramLink{
		ID:        id,
		UserID:    user.ID(userID),
		Code:      user.LinkCode(code),
		Confirmed: confirmed,
		CreatedAt: db.NaiveAsUTC(createdAt),
	}, nil
}
