package loader

import (
	"io"
	"os"

	"github.com/factorysh/forge/task"
	"gopkg.in/yaml.v3"
)

// FromYAML reads a YAML list of task records. YAML carries command actions
// only, in-process actions are registered programmatically.
func FromYAML(r io.Reader, opts ...Option) ([]*task.Task, error) {
	var records []Record
	err := yaml.NewDecoder(r).Decode(&records)
	if err == io.EOF {
		return []*task.Task{}, nil
	}
	if err != nil {
		return nil, err
	}

	tasks := make([]*task.Task, 0, len(records))
	for _, record := range records {
		t, err := FromRecord(record, opts...)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// FromYAMLFile reads a YAML task file
func FromYAMLFile(path string, opts ...Option) ([]*task.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromYAML(f, opts...)
}
