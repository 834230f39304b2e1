package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a write violates a uniqueness constraint:
// a contributor email or a (contributor, date) attendance pair. The store's
// constraint is the sole backstop against concurrent writers, so this is an
// expected outcome, not a crash.
var ErrDuplicate = errors.New("duplicate record")

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
