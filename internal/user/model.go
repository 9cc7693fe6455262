package user

import "time"

type User struct {
	ID           uint
	Email        string
	PasswordHash string
	Role         string
	StoreID      *uint
	CreatedAt    time.Time
}
