package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing or invalid credential. It is deliberately
// coarse: the outward signal must not distinguish an expired token from a
// revoked key or a deactivated user.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates an authenticated caller lacks permission for the action.
var ErrForbidden = errors.New("forbidden")

// ErrAlreadySubmitted indicates a draft write against an application that has
// already been submitted.
var ErrAlreadySubmitted = errors.New("application already submitted")

// ErrInvalidAction indicates a review action name outside the supported set.
var ErrInvalidAction = errors.New("invalid action")
