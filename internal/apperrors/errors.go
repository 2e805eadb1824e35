package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPolicyViolation indicates that a well-formed request was refused by an account rule,
// such as depositing into a fixed deposit account.
var ErrPolicyViolation = errors.New("operation not permitted for this account")
