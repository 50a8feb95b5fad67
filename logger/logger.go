package logger

import (
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Logger receives the output captured while running actions.
// channel is "stdout" or "stderr".
type Logger interface {
	Log(channel string, content string)
}

var (
	lock    sync.RWMutex
	current Logger = &Logrus{}
)

// SetDefault replaces the package level logger
func SetDefault(l Logger) {
	lock.Lock()
	defer lock.Unlock()
	current = l
}

// Default returns the package level logger
func Default() Logger {
	lock.RLock()
	defer lock.RUnlock()
	return current
}

// Log with the package level logger
func Log(channel string, content string) {
	Default().Log(channel, content)
}

// Logrus forwards captured output to logrus
type Logrus struct{}

func (l *Logrus) Log(channel string, content string) {
	entry := log.WithField("channel", channel)
	content = strings.TrimRight(content, "\n")
	if channel == "stderr" {
		entry.Warn(content)
		return
	}
	entry.Info(content)
}
