package repository

import (
	"errors"
	"strings"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
	// ErrReference means a referenced row (user, content) does not exist.
	ErrReference = errors.New("referenced row does not exist")
)

// UnregisteredVisitorsError lists visitor emails with no matching user.
type UnregisteredVisitorsError struct {
	Emails []string
}

func (e *UnregisteredVisitorsError) Error() string {
	return "unregistered visitors: " + strings.Join(e.Emails, ", ")
}
