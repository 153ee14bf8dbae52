package service

// InputValidator checks a request DTO before any store access. Failures are
// reported as domainerrors.ErrValidationFailed with per-field details.
type InputValidator interface {
	Validate(i any) error
}
