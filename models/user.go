package models

import (
	"time"

	"github.com/gocql/gocql"
)

// User est le document de compte. Les champs sensibles (password, tokens,
// avatar) ne sortent jamais dans le JSON renvoyé au client.
type User struct {
	ID        gocql.UUID `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Age       *int       `json:"age,omitempty"`
	Tokens    []string   `json:"-"`
	Avatar    []byte     `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
