package loader

import (
	"github.com/factorysh/forge/task"
	"github.com/factorysh/forge/task/errs"
)

// Generate turns the output of a task generator into tasks. A single
// Record makes one task named base. A slice of Records makes one group
// task named base plus one subtask per record, named base:name, each
// flagged as subtask, the group depending on all of them.
func Generate(base string, spec interface{}, opts ...Option) ([]*task.Task, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	switch v := spec.(type) {
	case nil:
		return []*task.Task{}, nil
	case Record:
		return generateSingle(base, v, &o)
	case map[string]interface{}:
		return generateSingle(base, Record(v), &o)
	case []Record:
		specs := make([]interface{}, len(v))
		for i, r := range v {
			specs[i] = r
		}
		return generateGroup(base, specs, &o)
	case []interface{}:
		return generateGroup(base, v, &o)
	}
	return nil, errs.InvalidTaskf(
		"Task %s. generator must yield a record or a sequence of records,"+
			" got: %T", base, spec)
}

func generateSingle(base string, r Record, o *options) ([]*task.Task, error) {
	if _, ok := r["name"]; ok {
		// 'name' is reserved for subtasks
		return nil, errs.InvalidTaskf(
			"Task %s. single record cannot have a 'name' field", base)
	}
	named := make(Record, len(r)+1)
	for k, v := range r {
		named[k] = v
	}
	named["name"] = base
	t, err := fromRecord(named, o, false)
	if err != nil {
		return nil, err
	}
	return []*task.Task{t}, nil
}

func generateGroup(base string, specs []interface{}, o *options) ([]*task.Task, error) {
	subtasks := make([]*task.Task, 0, len(specs))
	taskDeps := make([]interface{}, 0, len(specs))
	seen := make(map[string]bool, len(specs))

	for _, spec := range specs {
		r, ok := record(spec)
		if !ok {
			return nil, errs.InvalidTaskf(
				"Task %s. generator must yield records, got: %T", base, spec)
		}
		sub, ok := r["name"].(string)
		if !ok {
			return nil, errs.InvalidTaskf(
				"Task %s. generated record must have a 'name' field. %v", base, r)
		}
		name := base + ":" + sub
		if seen[name] {
			return nil, errs.InvalidTaskf(
				"Task %s. generated name is not unique: %s", base, name)
		}
		seen[name] = true

		named := make(Record, len(r))
		for k, v := range r {
			named[k] = v
		}
		named["name"] = name
		t, err := fromRecord(named, o, true)
		if err != nil {
			return nil, err
		}
		subtasks = append(subtasks, t)
		taskDeps = append(taskDeps, ":"+name)
	}

	group, err := task.New(base, nil, taskDeps, nil, "", false)
	if err != nil {
		return nil, err
	}
	return append([]*task.Task{group}, subtasks...), nil
}

func record(v interface{}) (Record, bool) {
	switch r := v.(type) {
	case Record:
		return r, true
	case map[string]interface{}:
		return Record(r), true
	}
	return nil, false
}
