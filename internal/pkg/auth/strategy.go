package auth

import "time"

type Strategy interface {
	IssueToken(userID int64, staff bool) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

// Claims is what a verified token asserts about its bearer.
type Claims struct {
	UserID int64
	Staff  bool
}

type Options struct {
	TTL time.Duration
}
