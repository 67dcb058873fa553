package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every lookup that matches no row.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
