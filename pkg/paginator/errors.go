package paginator

import (
	"errors"
	"fmt"
)

// Kind classifies pagination errors with a machine-readable code.
type Kind string

const (
	// KindInvalidConfig covers an absent configuration, a non-positive
	// page, or a negative cache TTL.
	KindInvalidConfig Kind = "invalid_config"

	// KindInvalidPageSize covers a non-positive page size or one that
	// exceeds the maximum.
	KindInvalidPageSize Kind = "invalid_page_size"

	// KindPageNotFound covers a requested page outside [1, totalPages].
	KindPageNotFound Kind = "page_not_found"

	// KindCacheError wraps a cache-backend failure. It is logged and
	// swallowed inside the engine, never returned from Paginate.
	KindCacheError Kind = "cache_error"
)

// Error is the tagged error type returned by the engine. The structured
// fields carry whatever the kind needs (requested page and valid range
// for KindPageNotFound, sizes for KindInvalidPageSize) so callers can
// build precise responses without parsing the message.
type Error struct {
	Kind        Kind
	Message     string
	Page        int
	PageSize    int
	MaxPageSize int
	TotalPages  int
	Err         error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pagination %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("pagination %s: %s", e.Kind, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind carried by err, or "" when err is not a
// pagination error.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

func errInvalidConfig(message string) *Error {
	return &Error{Kind: KindInvalidConfig, Message: message}
}

func errInvalidPageSize(pageSize, maxPageSize int) *Error {
	message := fmt.Sprintf("page size %d must be a positive integer", pageSize)
	if pageSize > 0 {
		message = fmt.Sprintf("page size %d exceeds maximum %d", pageSize, maxPageSize)
	}
	return &Error{
		Kind:        KindInvalidPageSize,
		Message:     message,
		PageSize:    pageSize,
		MaxPageSize: maxPageSize,
	}
}

func errPageNotFound(page, totalPages int) *Error {
	return &Error{
		Kind:       KindPageNotFound,
		Message:    fmt.Sprintf("page %d not found, valid range is 1-%d", page, totalPages),
		Page:       page,
		TotalPages: totalPages,
	}
}

func errCache(op string, err error) *Error {
	return &Error{
		Kind:    KindCacheError,
		Message: fmt.Sprintf("cache %s failed", op),
		Err:     err,
	}
}
