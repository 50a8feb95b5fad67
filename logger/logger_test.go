package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	record := &Record{}
	record.Log("stdout", "hello\n")
	record.Log("stderr", "oops\n")
	record.Log("stdout", "bye\n")

	assert.Len(t, record.Entries(), 3)
	assert.Equal(t, []string{"hello\n", "bye\n"}, record.Channel("stdout"))
	assert.Equal(t, []string{"oops\n"}, record.Channel("stderr"))

	record.Reset()
	assert.Len(t, record.Entries(), 0)
}

func TestDefault(t *testing.T) {
	assert.IsType(t, &Logrus{}, Default())

	record := &Record{}
	SetDefault(record)
	defer SetDefault(&Logrus{})

	Log("stdout", "through the package\n")
	assert.Equal(t, []string{"through the package\n"}, record.Channel("stdout"))
}
