package api

import (
	"fmt"

	"github.com/pkg/errors"
)

type apiError interface {
	Error() string
	Code() int
	Message() string
	Cause() error
}

type baseError struct {
	Err     error
	Msg     string
	ErrCode int
}

func (x *baseError) Message() string {
	if x.Msg != "" {
		return x.Msg
	}

	return x.Err.Error()
}

func (x *baseError) Cause() error {
	return x.Err
}

type userError struct{ baseError }

func (x *userError) Error() string { return "UserError: " + x.Message() }
func (x *userError) Code() int {
	if x.baseError.ErrCode > 0 {
		return x.baseError.ErrCode
	}
	return 400
}

func wrapUserError(err error, code int, msg string) apiError {
	return &userError{
		baseError: baseError{
			Err:     errors.Wrap(err, msg),
			ErrCode: code,
		},
	}
}

func newUserErrorf(code int, msg string, args ...interface{}) apiError {
	return &userError{
		baseError: baseError{
			Msg:     fmt.Sprintf(msg, args...),
			ErrCode: code,
		},
	}
}

type systemError struct{ baseError }

func (x *systemError) Error() string { return "SystemError: " + x.Message() }
func (x *systemError) Code() int {
	if x.baseError.ErrCode > 0 {
		return x.baseError.ErrCode
	}
	return 500
}

func wrapSystemError(err error, code int, msg string) apiError {
	return &systemError{
		baseError: baseError{
			Err:     errors.Wrap(err, msg),
			ErrCode: code,
		},
	}
}
