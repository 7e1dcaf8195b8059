package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrValidation: a client-side precondition failed before anything was
	// sent to the chain. Recoverable, no side effects occurred.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidAmount: a decimal amount string is empty, non-numeric,
	// negative, too precise, or zero where a positive amount is required.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrTransactionFailed: the contract rejected or reverted the call.
	// Surfaced verbatim, never retried automatically.
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrMetadataUnavailable: the decorating metadata fetch failed. The
	// structural record is still usable.
	ErrMetadataUnavailable = errors.New("metadata unavailable")
	// ErrReadUnavailable: the watched read returned no data. Treated as
	// "no data yet", not a user-facing failure.
	ErrReadUnavailable = errors.New("read unavailable")

	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrInvalidAddress    = errors.New("Invalid address")
)
