package domain

import (
	"context"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Username  *string   `json:"username,omitempty"` // nullable until the user picks one
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	// List returns every user ordered by id ascending.
	List(ctx context.Context) ([]User, error)
}

type AuthUsecase interface {
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
