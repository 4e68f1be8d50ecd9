package response

import (
	"time"

	"calremind/internal/core/domain/user"
)

type User struct {
	ID             int64     `json:"id"`
	Name           *string   `json:"name"`
	Email          string    `json:"email"`
	TelegramLinked bool      `json:"telegram_linked"`
	CreatedAt      time.Time `json:"created_at"`
	IsActive       bool      `json:"is_active"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	if du.Name.IsPresent {
		u.Name = &du.Name.Value
	}
	u.Email = string(du.Email)
	u.TelegramLinked = du.TelegramChatID.IsPresent
	u.CreatedAt = du.CreatedAt
	u.IsActive = du.IsActive()
}
