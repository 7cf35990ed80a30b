package usecase

import (
	"errors"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	// ErrUpstream marks failures of the sports data provider. The provider
	// client attaches it with errors.Mark so callers never import the client.
	ErrUpstream  = errors.New("upstream unavailable")
	ErrTransform = errors.New("unexpected upstream payload")
)

// ErrorCode identifies a failure independently of the language it is
// rendered in.
type ErrorCode string

const (
	CodeMissingParameter        ErrorCode = "MISSING_PARAMETER"
	CodeInvalidParameter        ErrorCode = "INVALID_PARAMETER"
	CodeLivescoresUnavailable   ErrorCode = "LIVESCORES_UNAVAILABLE"
	CodeFixturesUnavailable     ErrorCode = "FIXTURES_UNAVAILABLE"
	CodeTeamFixturesUnavailable ErrorCode = "TEAM_FIXTURES_UNAVAILABLE"
	CodeStandingsUnavailable    ErrorCode = "STANDINGS_UNAVAILABLE"
	CodeTeamUnavailable         ErrorCode = "TEAM_UNAVAILABLE"
	CodeMatchUnavailable        ErrorCode = "MATCH_UNAVAILABLE"
	CodeSchedulesUnavailable    ErrorCode = "SCHEDULES_UNAVAILABLE"
	CodeNoCurrentSeason         ErrorCode = "NO_CURRENT_SEASON"
	CodeInternal                ErrorCode = "INTERNAL"
)

// Error is the single coarse error every service operation returns.
type Error struct {
	Code  ErrorCode
	Param string
	Err   error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, err error) *Error {
	return &Error{Code: code, Err: err}
}

func MissingParameter(param string) *Error {
	return &Error{
		Code:  CodeMissingParameter,
		Param: param,
		Err:   crerr.Wrapf(ErrInvalidInput, "%s is required", param),
	}
}

func InvalidParameter(param string, value any) *Error {
	return &Error{
		Code:  CodeInvalidParameter,
		Param: param,
		Err:   crerr.Wrapf(ErrInvalidInput, "%s=%v is invalid", param, value),
	}
}

// CodeOf returns the error code carried by err, or CodeInternal.
func CodeOf(err error) ErrorCode {
	var coded *Error
	if crerr.As(err, &coded) && coded.Code != "" {
		return coded.Code
	}
	return CodeInternal
}

// ParamOf returns the parameter name a validation error refers to.
func ParamOf(err error) string {
	var coded *Error
	if crerr.As(err, &coded) {
		return coded.Param
	}
	return ""
}

func IsInvalidInput(err error) bool {
	return crerr.Is(err, ErrInvalidInput)
}

func IsNotFound(err error) bool {
	return crerr.Is(err, ErrNotFound)
}

func IsUpstream(err error) bool {
	return crerr.Is(err, ErrUpstream)
}
