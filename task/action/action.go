package action

import (
	"github.com/factorysh/forge/task/errs"
)

// Action is a unit of executable work owned by a task
type Action interface {
	// Execute runs the action, blocking until it is done. Captured output
	// is forwarded to the logger package. Returns nil on success, a
	// *errs.TaskFailed on an ordinary unsuccessful outcome, a
	// *errs.TaskError when the action could not run properly.
	Execute(captureStdout bool, captureStderr bool) error
	// Describe is a short human readable description
	Describe() string
}

// Callable is the signature of an in-process action
type Callable func(args []interface{}, kwargs map[string]interface{}) interface{}

// New builds an Action from a raw spec: an Action is returned as is, so
// custom actions can be plugged in, a string becomes a Cmd, a Callable
// becomes a Func, a []interface{} is unpacked as Func constructor
// arguments (callable, args, kwargs).
func New(spec interface{}) (Action, error) {
	switch v := spec.(type) {
	case Action:
		return v, nil
	case string:
		return &Cmd{Cmd: v}, nil
	case Callable:
		return NewFunc(v, nil, nil)
	case func([]interface{}, map[string]interface{}) interface{}:
		return NewFunc(v, nil, nil)
	case []interface{}:
		return fromTuple(v)
	}
	return nil, errs.InvalidTaskf("Invalid task action type: %T", spec)
}

func fromTuple(tuple []interface{}) (Action, error) {
	if len(tuple) == 0 || len(tuple) > 3 {
		return nil, errs.InvalidTaskf(
			"Func action spec needs 1 to 3 elements, got %d", len(tuple))
	}
	fn, ok := asCallable(tuple[0])
	if !ok {
		return nil, errs.InvalidTaskf(
			"Func action spec first element must be a Callable, got %T", tuple[0])
	}
	var args []interface{}
	if len(tuple) > 1 && tuple[1] != nil {
		args, ok = tuple[1].([]interface{})
		if !ok {
			return nil, errs.InvalidTaskf(
				"Func action args must be a []interface{}, got %T", tuple[1])
		}
	}
	var kwargs map[string]interface{}
	if len(tuple) > 2 && tuple[2] != nil {
		kwargs, ok = tuple[2].(map[string]interface{})
		if !ok {
			return nil, errs.InvalidTaskf(
				"Func action kwargs must be a map[string]interface{}, got %T", tuple[2])
		}
	}
	return NewFunc(fn, args, kwargs)
}

func asCallable(v interface{}) (Callable, bool) {
	switch f := v.(type) {
	case Callable:
		return f, true
	case func([]interface{}, map[string]interface{}) interface{}:
		return f, true
	}
	return nil, false
}
