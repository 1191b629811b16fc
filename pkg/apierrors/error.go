package apierrors

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/TukaHeba/Task-System/pkg/translator"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code, a message and optional field details.
type Err struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	message := GetTransErrorMsg(msgKey, lang)
	return JsonErr{ErrDetails: Err{Code: code, Message: message}}
}

// WithField appends a translated detail for a field that broke rule.
func (e JsonErr) WithField(field, rule, lang string) JsonErr {
	message := rule
	if msgKey, ok := ruleMessages[rule]; ok {
		message = getTransMsg(msgKey, lang, map[string]any{"Field": field})
	}
	e.ErrDetails.Details = append(e.ErrDetails.Details, FieldError{Field: field, Rule: rule, Message: message})
	return e
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return getTransMsg(msgKey, lang, nil)
}

func getTransMsg(msgKey, lang string, data map[string]any) string {
	msg, err := translator.Localize(lang, msgKey, data)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
