package loader

import (
	"os"
	"sort"
	"strings"

	"github.com/factorysh/forge/task/errs"
	zglob "github.com/mattn/go-zglob"
)

// expandDeps expands glob patterns found in plain file dependencies.
// Task references, folders, booleans and values of unexpected types are
// passed through untouched, task.New owns their validation.
func expandDeps(name string, dependencies interface{}) (interface{}, error) {
	deps, ok := loose(dependencies)
	if !ok {
		return dependencies, nil
	}
	expanded := make([]interface{}, 0, len(deps))
	for _, dep := range deps {
		s, ok := dep.(string)
		if !ok || strings.HasPrefix(s, ":") || strings.HasSuffix(s, "/") || !hasMeta(s) {
			expanded = append(expanded, dep)
			continue
		}
		matches, err := glob(name, s)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			expanded = append(expanded, m)
		}
	}
	return expanded, nil
}

// expandTargets expands glob patterns found in targets
func expandTargets(name string, targets interface{}) (interface{}, error) {
	raw, ok := loose(targets)
	if !ok {
		return targets, nil
	}
	expanded := make([]interface{}, 0, len(raw))
	for _, target := range raw {
		s, ok := target.(string)
		if !ok || !hasMeta(s) {
			expanded = append(expanded, target)
			continue
		}
		matches, err := glob(name, s)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			expanded = append(expanded, m)
		}
	}
	return expanded, nil
}

// glob resolves one pattern, a pattern matching nothing is kept verbatim
// so missing inputs still surface downstream
func glob(name string, pattern string) ([]string, error) {
	matches, err := zglob.Glob(pattern)
	if err != nil {
		// zglob reports a pattern matching nothing as os.ErrNotExist
		if os.IsNotExist(err) {
			return []string{pattern}, nil
		}
		return nil, errs.InvalidTaskf("%s. bad glob pattern '%s': %s",
			name, pattern, err)
	}
	if len(matches) == 0 {
		return []string{pattern}, nil
	}
	sort.Strings(matches)
	return matches, nil
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// loose reads a yet unvalidated sequence
func loose(v interface{}) ([]interface{}, bool) {
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
	return nil, false
}
