package user

import (
	"context"
	"time"

	"calremind/internal/core/domain/bot"
	c "calremind/internal/core/domain/common"
)

type CreateUserInput struct {
	Name            c.Optional[string]
	Email           c.Email
	PasswordHash    PasswordHash
	CreatedAt       time.Time
	ActivatedAt     c.Optional[time.Time]
	ActivationToken c.Optional[ActivationToken]
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	Activate(ctx context.Context, token ActivationToken, at time.Time) (User, error)
	SetTelegramChatID(ctx context.Context, id ID, chatID bot.ChatID) error
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}

type CreateTelegramLinkInput struct {
	UserID    ID
	Code      LinkCode
	CreatedAt time.Time
}

type TelegramLinkRepository interface {
	Create(ctx context.Context, input CreateTelegramLinkInput) (TelegramLink, error)
	GetByCode(ctx context.Context, code LinkCode) (TelegramLink, error)
	Confirm(ctx context.Context, id int64) error
}
