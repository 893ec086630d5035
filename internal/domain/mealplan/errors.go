package mealplan

import "errors"

// Domain errors for plan assembly.

var (
	// ErrNoCandidateFoods fires when no catalog record survives every
	// fallback tier. It is a recoverable data-availability failure, never an
	// excuse for an empty plan.
	ErrNoCandidateFoods = errors.New("no food in the catalog survives filtering")

	ErrInvalidDays   = errors.New("plan horizon must be at least 1 day")
	ErrPlanNotFound  = errors.New("meal plan not found")
	ErrNotPlanOwner  = errors.New("only the plan owner can perform this action")
	ErrEmptyPlanName = errors.New("plan name is required")
)
