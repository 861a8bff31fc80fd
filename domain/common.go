package domain

import (
	"errors"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is the human-readable outcome attached to every response.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageUnauthorized         = "operator token required"
	MessageSuccessPing          = "pong"

	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrNotOperator   = errors.New("token is not an operator token")
)

// Soft conditions: the request was understood and nothing failed in the
// store, but there is nothing to do or nothing matched.
var (
	ErrRecordNotFound   = errors.New("no record found")
	ErrEmptyInput       = errors.New("no usable fields after filtering")
	ErrMissingParameter = errors.New("missing parameter")
	ErrEmptyQuery       = errors.New("empty query")
)

// Caller errors.
var (
	ErrUnknownTable      = errors.New("unknown table")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrInvalidValue      = errors.New("invalid value")
	ErrUnknownAnalysis   = errors.New("unknown analysis")
	ErrInvalidChartType  = errors.New("invalid chart type")
	ErrUnknownEntity     = errors.New("unknown entity type")
	ErrInvalidRecordID   = errors.New("invalid record id")
	ErrChartSchemaChange = errors.New("chart columns missing from result")
)

// IsSoft reports whether err is a warning-level condition rather than a failure.
func IsSoft(err error) bool {
	return errors.Is(err, ErrRecordNotFound) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrMissingParameter) ||
		errors.Is(err, ErrEmptyQuery)
}

type (
	AboutResponse struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Features    []string `json:"features"`
		Tables      []string `json:"tables"`
		Analyses    int      `json:"analyses"`
	}
)
