package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Task appartient toujours à exactement un utilisateur. L'owner vient de la
// session authentifiée, jamais du client.
type Task struct {
	TaskID      gocql.UUID `json:"task_id"`
	OwnerID     gocql.UUID `json:"owner_id"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
