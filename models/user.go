package models

import "time"

// User is a registered account. PasswordHash holds a bcrypt digest and is
// never serialized.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Age          int       `json:"age"`
	Location     string    `json:"location"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	DateAdded    time.Time `json:"date_added"`
}
