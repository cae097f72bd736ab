package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ingredient errors
	ErrMsgIngredientNotFound = "ingredient not found"

	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"

	// Alert errors
	ErrMsgAlertNotFound  = "alert not found"
	ErrMsgDuplicateAlert = "unresolved alert already exists"

	// Unit conversion errors
	ErrMsgUnknownUnit       = "unknown unit"
	ErrMsgIncompatibleUnits = "incompatible units"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrIngredientNotFound = errors.New(ErrMsgIngredientNotFound)
	ErrRecipeNotFound     = errors.New(ErrMsgRecipeNotFound)
	ErrAlertNotFound      = errors.New(ErrMsgAlertNotFound)
	ErrDuplicateAlert     = errors.New(ErrMsgDuplicateAlert)

	ErrUnknownUnit       = errors.New(ErrMsgUnknownUnit)
	ErrIncompatibleUnits = errors.New(ErrMsgIncompatibleUnits)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
