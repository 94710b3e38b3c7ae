package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates input that violates a domain rule.
	ErrValidation = errors.New("validation error")

	// ErrUnsupportedLegalType indicates a legal type outside the dissolution
	// process scope; the business is skipped, no furnishing is created.
	ErrUnsupportedLegalType = errors.New("unsupported legal type")

	// ErrNoMailingAddress indicates a MAIL furnishing was due but the business
	// has no mailing address on record.
	ErrNoMailingAddress = errors.New("no mailing address")
)
