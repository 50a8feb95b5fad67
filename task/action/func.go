package action

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"runtime/debug"

	"github.com/factorysh/forge/logger"
	"github.com/factorysh/forge/task/errs"
)

var _ Action = &Func{}

// Func is an in-process action, it runs a Callable with stored arguments.
// The returned value decides the outcome: falsy means the action failed.
type Func struct {
	Fn     Callable
	Args   []interface{}
	Kwargs map[string]interface{}
}

// NewFunc builds a Func action
func NewFunc(fn Callable, args []interface{}, kwargs map[string]interface{}) (*Func, error) {
	if fn == nil {
		return nil, errs.InvalidTaskf("Func action must be a callable")
	}
	return &Func{
		Fn:     fn,
		Args:   args,
		Kwargs: kwargs,
	}, nil
}

// Execute the callable. When capturing, os.Stdout / os.Stderr are swapped
// for in-memory pipes for the duration of the call and restored on every
// exit path, flushing non empty content to the logger. A panic in the
// callable becomes a TaskError carrying the panic value and the stack.
func (f *Func) Execute(captureStdout bool, captureStderr bool) (err error) {
	if captureStdout {
		c, cerr := redirect(&os.Stdout)
		if cerr != nil {
			return errs.Errorf("Cannot capture stdout: %s", cerr)
		}
		defer func() {
			if content := c.restore(); content != "" {
				logger.Log("stdout", content)
			}
		}()
	}
	if captureStderr {
		c, cerr := redirect(&os.Stderr)
		if cerr != nil {
			return errs.Errorf("Cannot capture stderr: %s", cerr)
		}
		defer func() {
			if content := c.restore(); content != "" {
				logger.Log("stderr", content)
			}
		}()
	}
	defer func() {
		if r := recover(); r != nil {
			err = &errs.TaskError{
				Msg:    fmt.Sprintf("Func error: '%s': %v", f.Describe(), r),
				Detail: fmt.Sprintf("%v\n%s", r, debug.Stack()),
			}
		}
	}()

	result := f.Fn(f.Args, f.Kwargs)

	if !truthy(result) {
		return errs.Failedf("Func failed: '%s' returned %v", f.Describe(), result)
	}
	return nil
}

// Describe action interface implementation
func (f *Func) Describe() string {
	name := "<nil>"
	if f.Fn != nil {
		if fn := runtime.FuncForPC(reflect.ValueOf(f.Fn).Pointer()); fn != nil {
			name = fn.Name()
		} else {
			name = "<anonymous>"
		}
	}
	return "Func: " + name
}

// truthy mirrors the outcome contract of a callable: nil, false, zero
// numbers, empty strings and empty containers mean failure.
func truthy(v interface{}) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() != 0
	case reflect.Ptr, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	}
	return true
}
