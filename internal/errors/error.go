package errors

import (
	stderrors "errors"
	"fmt"
)

// AError 是结构化错误：稳定 code + 人类可读 message + 可选 details。
type AError struct {
	Code    Code           `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	cause   error
}

func (e *AError) Error() string {
	if e == nil {
		return ""
	}
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
}

func (e *AError) Unwrap() error { return e.cause }

func New(code Code, message string, details map[string]any) *AError {
	return &AError{Code: code, Message: message, Details: details}
}

func Wrap(code Code, message string, details map[string]any, cause error) *AError {
	return &AError{Code: code, Message: message, Details: details, cause: cause}
}

func As(err error) (*AError, bool) {
	var ae *AError
	if stderrors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func AsOrWrap(err error) *AError {
	if ae, ok := As(err); ok {
		return ae
	}
	return Wrap(CodeInternal, err.Error(), nil, err)
}
