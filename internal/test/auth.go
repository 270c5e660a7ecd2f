package test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	pkgAuth "storefront/internal/pkg/auth"
)

// HasherStub fakes password hashing with a reversible prefix.
type HasherStub struct {
	HashErr    error
	CompareErr error
}

func (h *HasherStub) Hash(password string) (string, error) {
	if h.HashErr != nil {
		return "", h.HashErr
	}
	return "hashed:" + password, nil
}

func (h *HasherStub) Compare(hashed, password string) error {
	if h.CompareErr != nil {
		return h.CompareErr
	}
	if hashed != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// StrategyStub issues transparent tokens of the form "token:<id>:<staff>".
type StrategyStub struct {
	IssueErr error
	ParseErr error
}

func (s *StrategyStub) IssueToken(userID int64, staff bool) (string, error) {
	if s.IssueErr != nil {
		return "", s.IssueErr
	}
	return fmt.Sprintf("token:%d:%t", userID, staff), nil
}

func (s *StrategyStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseErr != nil {
		return pkgAuth.Claims{}, s.ParseErr
	}
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] != "token" {
		return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
	}
	staff, err := strconv.ParseBool(parts[2])
	if err != nil {
		return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
	}
	return pkgAuth.Claims{UserID: id, Staff: staff}, nil
}

func (s *StrategyStub) Name() string { return "stub" }
