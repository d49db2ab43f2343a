package models

import "time"

// User представляет пользователя в системе
type User struct {
	CreatedAt   time.Time  `json:"createdAt"`             // время создания
	UpdatedAt   time.Time  `json:"updatedAt"`             // время последнего обновления
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"` // время последнего входа
	ID          string     `json:"id"`                    // UUID пользователя
	Email       string     `json:"email"`                 // уникальный email
	Username    string     `json:"username"`              // уникальный username
	Avatar      string     `json:"avatar,omitempty"`      // URL аватара
	IsActive    bool       `json:"isActive"`              // false блокирует вход
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.LastLoginAt = cloneTime(u.LastLoginAt)
	return &c
}

// Session представляет сессию пользователя
type Session struct {
	ExpiresAt time.Time `json:"expiresAt"` // время истечения
	UserID    string    `json:"userId"`    // ID владельца
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Token     string    `json:"token"` // непрозрачный случайный токен
}

// Clone returns a copy of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// IsLive reports whether the session has not expired at the given moment.
// A session expiring exactly at now is already dead.
func (s *Session) IsLive(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
