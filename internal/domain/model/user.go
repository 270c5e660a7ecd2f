package model

import "time"

// User represents a registered customer. Staff users may additionally
// manage the catalog and review placed orders.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Staff        bool
	CreatedAt    time.Time
}
