package domain

// Error codes surfaced by the command layer
const (
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeIO           = "IO_ERROR"
	ErrCodePattern      = "PATTERN_ERROR"
	ErrCodeNoFileOpen   = "NO_FILE_OPEN"
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// ErrorOutput is the machine-readable failure format
type ErrorOutput struct {
	Type          string `json:"type"` // Always "error"
	SchemaVersion int    `json:"schemaVersion"`
	Code          string `json:"code"`
	Message       string `json:"message"`
	Hint          string `json:"hint,omitempty"`
}

// NewErrorOutput creates an error output with the given code and message
func NewErrorOutput(code, message string) *ErrorOutput {
	return &ErrorOutput{
		Type:    "error",
		Code:    code,
		Message: message,
	}
}
