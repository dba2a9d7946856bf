package steperrors

import (
	"errors"

	"github.com/hiberbee/kube-bdd/internal/messages"
)

// StepError is returned by every step that fails. godog reports its message and
// stops the current scenario.
type StepError struct {
	messageCode   *messages.MessageCode
	messageParams []any
	cause         error
}

func (e *StepError) Error() string {
	return messages.GetErrorMessage(e.messageCode, e.messageParams...)
}

func (e *StepError) Unwrap() error {
	return e.cause
}

func (e *StepError) MessageCode() *messages.MessageCode {
	return e.messageCode
}

func (e *StepError) MessageParams() []any {
	return e.messageParams
}

func (e *StepError) Kind() messages.Kind {
	return e.messageCode.GetKind()
}

func NewStepError(messageCode *messages.MessageCode, messageParams ...any) *StepError {
	return &StepError{
		messageCode:   messageCode,
		messageParams: messageParams,
	}
}

// NewStepErrorWithCause keeps err reachable through errors.Is / errors.As. The
// cause message is also passed as the "Error" parameter.
func NewStepErrorWithCause(err error, messageCode *messages.MessageCode, messageParams ...any) *StepError {
	params := append([]any{}, messageParams...)
	if err != nil {
		params = append(params, "Error", err.Error())
	}
	return &StepError{
		messageCode:   messageCode,
		messageParams: params,
		cause:         err,
	}
}

// IsKind reports whether any StepError in err's chain has the given kind.
func IsKind(err error, kind messages.Kind) bool {
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		return false
	}
	return stepErr.Kind() == kind
}
