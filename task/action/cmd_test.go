package action

import (
	"testing"

	"github.com/factorysh/forge/logger"
	"github.com/factorysh/forge/task/errs"
	"github.com/stretchr/testify/assert"
)

func withRecord(t *testing.T) *logger.Record {
	record := &logger.Record{}
	logger.SetDefault(record)
	t.Cleanup(func() {
		logger.SetDefault(&logger.Logrus{})
	})
	return record
}

func TestCmdSuccess(t *testing.T) {
	cmd := &Cmd{Cmd: "true"}
	assert.NoError(t, cmd.Execute(false, false))
	assert.NoError(t, cmd.Execute(true, true))
}

func TestCmdExitCodes(t *testing.T) {
	tests := []struct {
		name    string
		cmd     string
		failure bool
	}{
		{
			name:    "ordinary failure",
			cmd:     "exit 1",
			failure: true,
		},
		{
			name:    "highest ordinary failure",
			cmd:     "exit 125",
			failure: true,
		},
		{
			name:    "shell level error",
			cmd:     "exit 126",
			failure: false,
		},
		{
			name:    "command not found",
			cmd:     "no-such-command-for-sure-42",
			failure: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withRecord(t)
			cmd := &Cmd{Cmd: tt.cmd}
			err := cmd.Execute(true, true)
			assert.Error(t, err)
			if tt.failure {
				assert.True(t, errs.IsFailure(err))
				assert.False(t, errs.IsError(err))
			} else {
				assert.True(t, errs.IsError(err))
				assert.False(t, errs.IsFailure(err))
			}
			assert.Contains(t, err.Error(), tt.cmd)
		})
	}
}

func TestCmdCapture(t *testing.T) {
	record := withRecord(t)

	cmd := &Cmd{Cmd: "echo hello"}
	assert.NoError(t, cmd.Execute(true, true))
	assert.Equal(t, []string{"hello\n"}, record.Channel("stdout"))
	assert.Len(t, record.Channel("stderr"), 0)

	record.Reset()
	cmd = &Cmd{Cmd: "echo oops >&2"}
	assert.NoError(t, cmd.Execute(true, true))
	assert.Equal(t, []string{"oops\n"}, record.Channel("stderr"))
	assert.Len(t, record.Channel("stdout"), 0)
}

func TestCmdCaptureOnFailure(t *testing.T) {
	record := withRecord(t)

	cmd := &Cmd{Cmd: "echo partial; exit 3"}
	err := cmd.Execute(true, false)
	assert.True(t, errs.IsFailure(err))
	// captured content is forwarded even when the command fails
	assert.Equal(t, []string{"partial\n"}, record.Channel("stdout"))
}

func TestCmdNoCapture(t *testing.T) {
	record := withRecord(t)

	cmd := &Cmd{Cmd: "true"}
	assert.NoError(t, cmd.Execute(false, false))
	assert.Len(t, record.Entries(), 0)
}

func TestCmdDescribe(t *testing.T) {
	cmd := &Cmd{Cmd: "make all"}
	assert.Equal(t, "Cmd: make all", cmd.Describe())
}
