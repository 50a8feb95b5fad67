package logger

import (
	"sync"
)

// Entry is one captured log call
type Entry struct {
	Channel string
	Content string
}

// Record keeps log calls in memory, for tests
type Record struct {
	lock    sync.Mutex
	entries []Entry
}

func (r *Record) Log(channel string, content string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.entries = append(r.entries, Entry{
		Channel: channel,
		Content: content,
	})
}

// Entries returns a copy of everything logged so far
func (r *Record) Entries() []Entry {
	r.lock.Lock()
	defer r.lock.Unlock()
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Channel returns the contents logged on one channel
func (r *Record) Channel(channel string) []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	contents := make([]string, 0)
	for _, e := range r.entries {
		if e.Channel == channel {
			contents = append(contents, e.Content)
		}
	}
	return contents
}

// Reset forgets everything logged so far
func (r *Record) Reset() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.entries = nil
}
