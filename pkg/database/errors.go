package database

import (
	"errors"
	"fmt"

	"anoa.com/sekolahadmin/pkg/apperror"
	"gorm.io/gorm"
)

// TranslateError converts gorm errors into the app error taxonomy. Relies on
// gorm.Config{TranslateError: true} being set on the connection.
func TranslateError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", resource, apperror.ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s already exists: %w", resource, apperror.ErrConflict)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%s references a missing row: %w", resource, apperror.ErrBadRequest)
	}
	return err
}
