package loader

import (
	"github.com/factorysh/forge/task"
	"github.com/factorysh/forge/task/errs"
	log "github.com/sirupsen/logrus"
)

// Record is a declarative task description, as found in task files
type Record map[string]interface{}

// recognized record fields, anything else is a typo
var taskAttrs = map[string]bool{
	"name":         true,
	"actions":      true,
	"dependencies": true,
	"targets":      true,
	"setup":        true,
}

// Option tweaks how records are turned into tasks
type Option func(*options)

type options struct {
	glob bool
}

// WithGlob expands glob patterns found in file dependencies and in targets
// before building the task
func WithGlob() Option {
	return func(o *options) {
		o.glob = true
	}
}

// FromRecord builds a validated Task out of a Record.
// The deprecated 'action' field is rewritten to 'actions' with a warning.
func FromRecord(r Record, opts ...Option) (*task.Task, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return fromRecord(r, &o, false)
}

func fromRecord(r Record, o *options, isSubtask bool) (*task.Task, error) {
	name, ok := r["name"].(string)
	if !ok {
		return nil, errs.InvalidTaskf(
			"Task must contain a 'name' field, got: %v", r)
	}

	actions, hasActions := r["actions"]
	if !hasActions {
		deprecated, hasAlias := r["action"]
		if !hasAlias {
			return nil, errs.InvalidTaskf(
				"Task %s must contain an 'actions' field. %v", name, r)
		}
		log.WithField("task", name).Warn(
			"Field 'action' is deprecated, please use 'actions' instead")
		actions = deprecated
		r = alias(r)
	}

	for key := range r {
		if !taskAttrs[key] {
			return nil, errs.InvalidTaskf(
				"Task %s contains invalid field: %s", name, key)
		}
	}

	dependencies := r["dependencies"]
	targets := r["targets"]
	setup, ok := r["setup"].(string)
	if !ok && r["setup"] != nil {
		return nil, errs.InvalidTaskf(
			"Task %s field 'setup' must be a string, got: '%v' %T",
			name, r["setup"], r["setup"])
	}

	if o.glob {
		var err error
		dependencies, err = expandDeps(name, dependencies)
		if err != nil {
			return nil, err
		}
		targets, err = expandTargets(name, targets)
		if err != nil {
			return nil, err
		}
	}

	return task.New(name, actions, dependencies, targets, setup, isSubtask)
}

// alias returns a copy of the record with 'action' rewritten to 'actions'
func alias(r Record) Record {
	fixed := make(Record, len(r))
	for k, v := range r {
		if k == "action" {
			fixed["actions"] = v
			continue
		}
		fixed[k] = v
	}
	return fixed
}
