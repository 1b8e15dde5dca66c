package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the operation is not permitted on the target resource.
var ErrForbidden = errors.New("operation forbidden")

// Posting and workflow errors.
var (
	// ErrEmptyEntry indicates a posting group with fewer than two lines.
	ErrEmptyEntry = errors.New("posting group requires at least two lines")

	// ErrUnbalancedEntry indicates a posting group whose debits and credits do not match.
	ErrUnbalancedEntry = errors.New("posting group debits and credits do not balance")

	// ErrUnknownAccount indicates a line referencing an account that does not
	// exist or belongs to another business.
	ErrUnknownAccount = errors.New("account not found in business chart of accounts")

	// ErrMissingCoreAccount indicates a workflow could not resolve one of the
	// named system accounts it posts to.
	ErrMissingCoreAccount = errors.New("required system account missing from chart of accounts")

	// ErrInsufficientStock indicates a sale or debit note exceeding available stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrOverReturn indicates a return quantity exceeding what remains returnable.
	ErrOverReturn = errors.New("return quantity exceeds returnable quantity")

	// ErrInvalidTransferTarget indicates a fund transfer with identical source
	// and destination accounts or a non-positive amount.
	ErrInvalidTransferTarget = errors.New("invalid fund transfer target")

	// ErrBranchMismatch indicates an entity referenced from a branch it does not belong to.
	ErrBranchMismatch = errors.New("entity does not belong to branch")

	// ErrDuplicateDocumentNumber indicates a document number collision within a business.
	ErrDuplicateDocumentNumber = errors.New("document number already exists")
)

// AppError carries an HTTP-ish status code alongside a message. Repositories
// wrap driver failures in it so handlers can map them without string matching.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err with a code and message. A nil
// err is fine for errors that originate here.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
