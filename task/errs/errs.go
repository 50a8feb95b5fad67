package errs

import (
	"errors"
	"fmt"
)

// InvalidTask is a user error in the declaration of a task, raised while
// building a task, never while running it.
type InvalidTask struct {
	Msg string
}

func (e *InvalidTask) Error() string {
	return e.Msg
}

// InvalidTaskf builds an InvalidTask
func InvalidTaskf(format string, args ...interface{}) *InvalidTask {
	return &InvalidTask{
		Msg: fmt.Sprintf(format, args...),
	}
}

// TaskFailed is the ordinary unsuccessful outcome of an action: the work
// was attempted correctly but did not succeed.
type TaskFailed struct {
	Msg string
}

func (e *TaskFailed) Error() string {
	return e.Msg
}

// Failedf builds a TaskFailed
func Failedf(format string, args ...interface{}) *TaskFailed {
	return &TaskFailed{
		Msg: fmt.Sprintf(format, args...),
	}
}

// TaskError is an unexpected failure while running an action. Detail keeps
// the original error text and stack trace when there is one.
type TaskError struct {
	Msg    string
	Detail string
}

func (e *TaskError) Error() string {
	return e.Msg
}

// Errorf builds a TaskError without detail
func Errorf(format string, args ...interface{}) *TaskError {
	return &TaskError{
		Msg: fmt.Sprintf(format, args...),
	}
}

// IsInvalid tells if err is an InvalidTask
func IsInvalid(err error) bool {
	var e *InvalidTask
	return errors.As(err, &e)
}

// IsFailure tells if err is a TaskFailed
func IsFailure(err error) bool {
	var e *TaskFailed
	return errors.As(err, &e)
}

// IsError tells if err is a TaskError
func IsError(err error) bool {
	var e *TaskError
	return errors.As(err, &e)
}
