package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument matches every ValidationError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound matches every NotFoundError.
	ErrNotFound = errors.New("not found")

	ErrFollowSelf = &ValidationError{Field: "userId", Reason: "cannot follow yourself"}
)

// ValidationError rejects an operation before anything is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s %s", e.Field, e.Reason) }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidArgument }

// NotFoundError reports a referenced id that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %s not found", e.Kind, e.ID) }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(kind, id string) error { return &NotFoundError{Kind: kind, ID: id} }
