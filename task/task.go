package task

import (
	"os"
	"reflect"
	"strings"

	"github.com/factorysh/forge/task/action"
	"github.com/factorysh/forge/task/errs"
	"github.com/google/uuid"
)

// Task something to do
type Task struct {
	Id           uuid.UUID       // Id, the external scheduler keys on it
	Name         string          // Name, unique across a build (enforced by the scheduler)
	Actions      []action.Action // Actions run in declared order
	Dependencies []interface{}   // Dependencies as declared, heterogeneous
	Targets      []string        // Targets are the declared output paths
	Setup        string          // Setup names a setup task, resolved by the scheduler
	IsSubtask    bool            // IsSubtask marks tasks synthesized by a generator

	// classification of Dependencies, derived once at construction
	FileDep   []string
	TaskDep   []string
	FolderDep []string
	RunOnce   bool
}

// New builds and validates a Task. actions is nil, a single action spec or
// a slice of specs. dependencies and targets must be nil or sequences.
// Dependency grammar: the bool true sets RunOnce, a trailing path separator
// means a folder, a leading ':' references another task, any other string
// is a file.
func New(name string, actions interface{}, dependencies interface{},
	targets interface{}, setup string, isSubtask bool) (*Task, error) {

	deps, ok := sequence(dependencies)
	if !ok {
		return nil, errs.InvalidTaskf(
			"%s. parameter 'dependencies' must be a sequence, got: '%v' %T",
			name, dependencies, dependencies)
	}

	rawTargets, ok := sequence(targets)
	if !ok {
		return nil, errs.InvalidTaskf(
			"%s. parameter 'targets' must be a sequence, got: '%v' %T",
			name, targets, targets)
	}

	t := &Task{
		Id:           uuid.New(),
		Name:         name,
		Dependencies: deps,
		Setup:        setup,
		IsSubtask:    isSubtask,
		Targets:      make([]string, 0, len(rawTargets)),
		FileDep:      []string{},
		TaskDep:      []string{},
		FolderDep:    []string{},
	}

	for _, target := range rawTargets {
		s, ok := target.(string)
		if !ok {
			return nil, errs.InvalidTaskf(
				"%s. target must be a string, got: '%v' %T", name, target, target)
		}
		t.Targets = append(t.Targets, s)
	}

	t.Actions = make([]action.Action, 0)
	if actions != nil {
		specs, ok := sequence(actions)
		if !ok {
			specs = []interface{}{actions}
		}
		for _, spec := range specs {
			a, err := action.New(spec)
			if err != nil {
				return nil, err
			}
			t.Actions = append(t.Actions, a)
		}
	}

	// there are 3 kinds of dependencies: file, task and folder. The bool
	// true is not a dependency, it flags the task as run once.
	for _, dep := range deps {
		switch d := dep.(type) {
		case bool:
			if !d {
				return nil, errs.InvalidTaskf(
					"%s. bool value in 'dependencies' must be true, got: 'false'",
					name)
			}
			t.RunOnce = true
		case string:
			if isFolder(d) {
				t.FolderDep = append(t.FolderDep, d)
			} else if strings.HasPrefix(d, ":") {
				t.TaskDep = append(t.TaskDep, d[1:])
			} else {
				t.FileDep = append(t.FileDep, d)
			}
		default:
			return nil, errs.InvalidTaskf(
				"%s. dependency must be a string or true, got: '%v' %T",
				name, dep, dep)
		}
	}

	// run once means no tracking, file dependencies mean run on change.
	// Note: task and folder dependencies are still accepted along RunOnce.
	if t.RunOnce && len(t.FileDep) > 0 {
		return nil, errs.InvalidTaskf(
			"%s. task cannot have file dependencies and true at the same time"+
				" (just remove true)", name)
	}

	return t, nil
}

// Execute runs each action in declared order. The first failing action
// aborts the task, its error propagates unchanged.
func (t *Task) Execute(captureStdout bool, captureStderr bool) error {
	for _, a := range t.Actions {
		err := a.Execute(captureStdout, captureStderr)
		if err != nil {
			return err
		}
	}
	return nil
}

// Title is a one line summary for reporters
func (t *Task) Title() string {
	return t.Name + " => " + t.String()
}

func (t *Task) String() string {
	descriptions := make([]string, len(t.Actions))
	for i, a := range t.Actions {
		descriptions[i] = a.Describe()
	}
	return strings.Join(descriptions, "\n\t")
}

func isFolder(dep string) bool {
	if dep == "" {
		return false
	}
	last := dep[len(dep)-1]
	return last == '/' || os.IsPathSeparator(last)
}

// sequence normalizes a loose value into a []interface{}. nil is an empty
// sequence, anything that is not a slice or an array is refused.
func sequence(v interface{}) ([]interface{}, bool) {
	if v == nil {
		return []interface{}{}, true
	}
	switch s := v.(type) {
	case []interface{}:
		return s, true
	case []string:
		out := make([]interface{}, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
