package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested or referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a write breaks a uniqueness or not-null rule.
	ErrValidation = errors.New("validation failed")
	// ErrStorage is returned for any unexpected failure of the database.
	ErrStorage = errors.New("storage error")
)

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

func validationNameTaken(entity, name string) error {
	return fmt.Errorf("%w: %s name %q already exists", ErrValidation, entity, name)
}

func storageError(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// classified reports whether err already carries one of the store sentinels.
func classified(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) || errors.Is(err, ErrStorage)
}

// translateError maps a gorm error to the store taxonomy. It relies on
// gorm.Config.TranslateError being enabled for constraint errors.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case classified(err):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicate value: %w", ErrValidation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: referenced row missing: %w", ErrValidation, err)
	default:
		return storageError(err)
	}
}

// validationError turns validator output into a readable ErrValidation.
func validationError(entity string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s: %w", ErrValidation, entity, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s %s", ErrValidation, entity, strings.Join(msgs, ", "))
}
