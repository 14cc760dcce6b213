package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMalformedInput indicates an import row that could not be parsed.
// Parsing stops at the bad row; rows already committed are kept.
var ErrMalformedInput = errors.New("malformed input row")

// ErrPartialUpdate indicates that recording a transaction failed after some of
// its writes were already committed. There is no compensation logic; the wrapped
// message names what was left unapplied so it can be reconciled by hand.
var ErrPartialUpdate = errors.New("ledger partially updated")
