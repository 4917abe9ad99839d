package errors

import (
	"net/http"

	"labgas/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the
// original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is reports whether target is a BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	ErrDuplicateKey = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_KEY",
		"Registro duplicado",
		"",
	)

	ErrDuplicateCylinderCode = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_KEY",
		"Código já existe",
		"",
	)

	ErrDuplicateElementName = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_KEY",
		"Elemento já existe",
		"",
	)

	ErrInvalidReference = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Cilindro ou elemento informado não pertence ao usuário",
		"",
	)

	// Lookup errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Registro não encontrado",
		"",
	)

	ErrCylinderNotFound = NewBaseError(
		http.StatusNotFound,
		"CYLINDER_NOT_FOUND",
		"Cilindro não encontrado",
		"",
	)

	ErrElementNotFound = NewBaseError(
		http.StatusNotFound,
		"ELEMENT_NOT_FOUND",
		"Elemento não encontrado",
		"",
	)

	ErrSampleNotFound = NewBaseError(
		http.StatusNotFound,
		"SAMPLE_NOT_FOUND",
		"Amostra não encontrada",
		"",
	)

	ErrFlameTimeNotFound = NewBaseError(
		http.StatusNotFound,
		"FLAME_TIME_NOT_FOUND",
		"Registro de tempo de chama não encontrado",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuário não encontrado",
		"",
	)

	// Referential errors
	ErrHasDependents = NewBaseError(
		http.StatusConflict,
		"HAS_DEPENDENTS",
		"Registro possui amostras ou tempos de chama vinculados",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"Este email já está cadastrado",
		"",
	)

	// Authentication errors
	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Email e senha são obrigatórios",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciais inválidas",
		"",
	)

	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_TOKEN",
		"Token não fornecido",
		"",
	)

	ErrExpiredCredential = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expirado",
		"",
	)

	ErrInvalidCredential = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token inválido",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erro ao processar a senha",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falha na transação do banco de dados",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falha ao executar operação no banco de dados"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// UpstreamError carries a failure reported by the identity provider. The
// provider's own message is surfaced to the client unchanged.
type UpstreamError struct {
	err      error
	httpCode int
	message  string
}

// NewUpstreamError creates an upstream error answered with httpCode. An empty
// message falls back to the wrapped error text.
func NewUpstreamError(err error, httpCode int, message string) *UpstreamError {
	if message == "" && err != nil {
		message = err.Error()
	}

	return &UpstreamError{
		err:      err,
		httpCode: httpCode,
		message:  message,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.err == nil {
		return "upstream: " + e.message
	}

	return errors.Wrap(e.err, "upstream").Error()
}

// Unwrap exposes the transport or provider error
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_ERROR"
}

// Message returns the provider message
func (e *UpstreamError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return ""
}
