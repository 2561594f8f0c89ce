package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the authenticated principal lacks the required role or scope.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthenticated indicates that no valid session accompanied the request.
var ErrUnauthenticated = errors.New("unauthenticated")
