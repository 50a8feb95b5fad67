package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	invalid := InvalidTaskf("task %s is broken", "build")
	assert.Equal(t, "task build is broken", invalid.Error())
	assert.True(t, IsInvalid(invalid))
	assert.False(t, IsFailure(invalid))
	assert.False(t, IsError(invalid))

	failed := Failedf("returned %d", 1)
	assert.True(t, IsFailure(failed))
	assert.False(t, IsError(failed))

	taskError := Errorf("boom")
	assert.True(t, IsError(taskError))
	assert.False(t, IsFailure(taskError))
}

func TestWrapped(t *testing.T) {
	err := fmt.Errorf("while running: %w", Failedf("returned 1"))
	assert.True(t, IsFailure(err))
	assert.False(t, IsError(err))
}

func TestDetail(t *testing.T) {
	err := &TaskError{
		Msg:    "callable blew up",
		Detail: "panic: boom\nstack",
	}
	assert.Equal(t, "callable blew up", err.Error())
	assert.Contains(t, err.Detail, "boom")
}
