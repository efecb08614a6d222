package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for propagation to the transport layer
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	default:
		return "internal"
	}
}

// Error is a typed application error
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": " + e.Kind.String()
	}
}

// Unwrap supports errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// Sentinel errors shared by repositories and usecases
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrMissingCategory     = errors.New("category is required")
	ErrTransactionNotFound = errors.New("payment transaction not found")
	ErrAlreadySubscribed   = errors.New("email already subscribed")
	ErrMissingSignature    = errors.New("missing stripe signature")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrEmptyOrder          = errors.New("order must contain at least one item")
	ErrInvalidQuantity     = errors.New("item quantity must be positive")
	ErrMissingOrigin       = errors.New("origin_url is required")
	ErrInvalidOrigin       = errors.New("origin_url must be an absolute http(s) URL")
	ErrOrderAlreadyPaid    = errors.New("order is already paid")
	ErrNonPositiveAmount   = errors.New("order total must be positive")
)

// NotFound wraps err as a NotFound error
func NotFound(op string, err error) error {
	return &Error{Kind: KindNotFound, Op: op, Err: err}
}

// BadRequest wraps err as a BadRequest error
func BadRequest(op string, err error) error {
	return &Error{Kind: KindBadRequest, Op: op, Err: err}
}

// Internal wraps err as an Internal error with a short description
func Internal(op, msg string, err error) error {
	return &Error{Kind: KindInternal, Op: op, Msg: msg, Err: err}
}

// KindOf returns the kind of err. Untyped errors are Internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a NotFound error
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsBadRequest reports whether err is a BadRequest error
func IsBadRequest(err error) bool {
	return err != nil && KindOf(err) == KindBadRequest
}

// HTTPStatus maps err to a response status code
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err. Internal errors keep
// their description but hide the wrapped cause.
func Message(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return "Internal server error"
	}
	switch appErr.Kind {
	case KindInternal:
		if appErr.Msg != "" {
			return appErr.Msg
		}
		return "Internal server error"
	default:
		if appErr.Err != nil {
			return appErr.Err.Error()
		}
		return appErr.Msg
	}
}
