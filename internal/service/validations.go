package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/NinaWiik/Tracker-app/internal/error_values"
	"github.com/NinaWiik/Tracker-app/internal/store"
	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

// HabitForm is the user input for a new habit.
type HabitForm struct {
	Title       string `validate:"required,notblank,max=200"`
	Description string `validate:"required,notblank,max=2000"`
	Frequency   string `validate:"required,oneof=daily weekly monthly"`
}

// ValidateHabitForm checks form and returns the trimmed fields ready for the
// store. Every failure wraps ErrValidation.
func ValidateHabitForm(form HabitForm) (store.HabitFields, error) {
	InitValidator()
	form.Title = strings.TrimSpace(form.Title)
	form.Description = strings.TrimSpace(form.Description)
	form.Frequency = strings.ToLower(strings.TrimSpace(form.Frequency))
	err := validate.Struct(form)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errs := make([]error, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				errs = append(errs, fieldErr)
			}
			return store.HabitFields{}, fmt.Errorf("%w: %w", errorvalues.ErrValidation, errors.Join(errs...))
		}
		return store.HabitFields{}, fmt.Errorf("%w: unexpected error: %w", errorvalues.ErrValidation, err)
	}
	return store.HabitFields{
		Title:       form.Title,
		Description: form.Description,
		Frequency:   entity.Frequency(form.Frequency),
	}, nil
}
