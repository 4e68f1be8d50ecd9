package user

import (
	"context"
	"fmt"
	"time"

	"calremind/internal/core/domain/bot"
	c "calremind/internal/core/domain/common"
	e "calremind/internal/core/domain/errors"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type ActivationToken string

type SessionToken string

// LinkCode is a short pairing code a user hands to the Telegram bot
// to attach their chat to the account.
type LinkCode string

type User struct {
	ID              ID
	Name            c.Optional[string]
	Email           c.Email
	PasswordHash    PasswordHash
	TelegramChatID  c.Optional[bot.ChatID]
	CreatedAt       time.Time
	ActivatedAt     c.Optional[time.Time]
	ActivationToken c.Optional[ActivationToken]
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	return nil
}

func (u *User) IsActive() bool {
	return u.ActivatedAt.IsPresent
}

type TelegramLink struct {
	ID        int64
	UserID    ID
	Code      LinkCode
	Confirmed bool
	CreatedAt time.Time
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type ActivationTokenGenerator interface {
	GenerateActivationToken() ActivationToken
}

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}

type LinkCodeGenerator interface {
	GenerateLinkCode() LinkCode
}

type ActivationTokenSender interface {
	SendActivationToken(ctx context.Context, u User) error
}
