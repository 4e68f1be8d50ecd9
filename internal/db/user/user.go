package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"calremind/internal/core/domain/bot"
	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/user"
	"calremind/internal/db"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

type PgxUserRepository struct {
	db db.Querier
}

func NewPgxRepository(db db.Querier) *PgxUserRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (name, email, password_hash, created_at, activated_at, activation_token)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, name, email, password_hash, telegram_chat_id, created_at, activated_at, activation_token`,
		encodeOptionalString(input.Name),
		string(input.Email),
		string(input.PasswordHash),
		input.CreatedAt,
		encodeOptionalTime(input.ActivatedAt),
		encodeOptionalString(activationTokenAsString(input.ActivationToken)),
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, name, email, password_hash, telegram_chat_id, created_at, activated_at, activation_token
		 FROM "user" WHERE id = $1`,
		int64(id),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, name, email, password_hash, telegram_chat_id, created_at, activated_at, activation_token
		 FROM "user" WHERE email = $1`,
		string(email),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) Activate(
	ctx context.Context,
	token user.ActivationToken,
	at time.Time,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET activated_at = $1, activation_token = NULL
		 WHERE activation_token = $2 AND activated_at IS NULL
		 RETURNING id, name, email, password_hash, telegram_chat_id, created_at, activated_at, activation_token`,
		at,
		string(token),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrInvalidActivationToken
	}
	return u, err
}

func (r *PgxUserRepository) SetTelegramChatID(ctx context.Context, id user.ID, chatID bot.ChatID) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET telegram_chat_id = $1 WHERE id = $2`,
		int64(chatID),
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func encodeOptionalString(s c.Optional[string]) sql.NullString {
	return sql.NullString{String: s.Value, Valid: s.IsPresent}
}

func encodeOptionalTime(at c.Optional[time.Time]) sql.NullTime {
	return sql.NullTime{Time: at.Value, Valid: at.IsPresent}
}

func activationTokenAsString(token c.Optional[user.ActivationToken]) c.Optional[string] {
	return c.NewOptional(string(token.Value), token.IsPresent)
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id              int64
		name            sql.NullString
		email           string
		passwordHash    string
		telegramChatID  sql.NullInt64
		createdAt       time.Time
		activatedAt     sql.NullTime
		activationToken sql.NullString
	)
	err = row.Scan(
		&id, &name, &email, &passwordHash,
		&telegramChatID, &createdAt, &activatedAt, &activationToken,
	)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:              user.ID(id),
		Name:            c.NewOptional(name.String, name.Valid),
		Email:           c.Email(email),
		PasswordHash:    user.PasswordHash(passwordHash),
		TelegramChatID:  c.NewOptional(bot.ChatID(telegramChatID.Int64), telegramChatID.Valid),
		CreatedAt:       db.NaiveAsUTC(createdAt),
		ActivatedAt:     c.NewOptional(db.NaiveAsUTC(activatedAt.Time), activatedAt.Valid),
		ActivationToken: c.NewOptional(user.ActivationToken(activationToken.String), activationToken.Valid),
	}, nil
}
