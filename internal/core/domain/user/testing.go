package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
	"time"

	"calremind/internal/core/domain/bot"
	c "calremind/internal/core/domain/common"
)

type FakeActivationTokenSender struct {
	Sent        []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeActivationTokenSender() *FakeActivationTokenSender {
	return &FakeActivationTokenSender{}
}

func (s *FakeActivationTokenSender) SendActivationToken(ctx context.Context, u User) error {
	if s.ReturnError {
		return fmt.Errorf("could not send activation token for user %v", u)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, u)
	return nil
}

type FakeActivationTokenGenerator struct {
	Token ActivationToken
}

func NewFakeActivationTokenGenerator(token string) *FakeActivationTokenGenerator {
	return &FakeActivationTokenGenerator{Token: ActivationToken(token)}
}

func (g *FakeActivationTokenGenerator) GenerateActivationToken() ActivationToken {
	return g.Token
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return SessionToken(g.Token)
}

type FakeLinkCodeGenerator struct {
	Code string
}

func NewFakeLinkCodeGenerator(code string) *FakeLinkCodeGenerator {
	return &FakeLinkCodeGenerator{Code: code}
}

func (g *FakeLinkCodeGenerator) GenerateLinkCode() LinkCode {
	return LinkCode(g.Code)
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Users {
		if existing.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = existing.ID
	}
	u = User{
		ID:              maxID + 1,
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    input.PasswordHash,
		CreatedAt:       input.CreatedAt,
		ActivatedAt:     input.ActivatedAt,
		ActivationToken: input.ActivationToken,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) Activate(ctx context.Context, token ActivationToken, at time.Time) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ActivationToken.IsPresent && u.ActivationToken.Value == token {
			r.Users[ix].ActivatedAt = c.NewOptional(at, true)
			return r.Users[ix], nil
		}
	}
	return u, ErrInvalidActivationToken
}

func (r *FakeUserRepository) SetTelegramChatID(ctx context.Context, id ID, chatID bot.ChatID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].TelegramChatID = c.NewOptional(chatID, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakeSessionRepository struct {
	UserRepository *FakeUserRepository
	Sessions       map[SessionToken]ID
	ReturnError    bool
	lock           sync.Mutex
}

func NewFakeSessionRepository(userRepository *FakeUserRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		UserRepository: userRepository,
		Sessions:       make(map[SessionToken]ID),
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create session %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Sessions[input.Token] = input.UserID
	return nil
}

func (r *FakeSessionRepository) GetUserByToken(ctx context.Context, token SessionToken) (u User, err error) {
	r.lock.Lock()
	userID, ok := r.Sessions[token]
	r.lock.Unlock()
	if !ok {
		return u, ErrUserDoesNotExist
	}
	return r.UserRepository.GetByID(ctx, userID)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (userID ID, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userID, ok := r.Sessions[token]
	if !ok {
		return userID, ErrSessionDoesNotExist
	}
	delete(r.Sessions, token)
	return userID, nil
}

type FakeTelegramLinkRepository struct {
	Links  []TelegramLink
	nextID int64
	lock   sync.Mutex
}

func NewFakeTelegramLinkRepository() *FakeTelegramLinkRepository {
	return &FakeTelegramLinkRepository{}
}

func (r *FakeTelegramLinkRepository) Create(ctx context.Context, input CreateTelegramLinkInput) (TelegramLink, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	link := TelegramLink{
		ID:        r.nextID,
		UserID:    input.UserID,
		Code:      input.Code,
		CreatedAt: input.CreatedAt,
	}
	r.Links = append(r.Links, link)
	return link, nil
}

func (r *FakeTelegramLinkRepository) GetByCode(ctx context.Context, code LinkCode) (link TelegramLink, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, l := range r.Links {
		if l.Code == code {
			return l, nil
		}
	}
	return link, ErrLinkCodeDoesNotExist
}

func (r *FakeTelegramLinkRepository) Confirm(ctx context.Context, id int64) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, l := range r.Links {
		if l.ID == id {
			r.Links[ix].Confirmed = true
			return nil
		}
	}
	return ErrLinkCodeDoesNotExist
}
