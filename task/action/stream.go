package action

import (
	"bytes"
	"io"
	"os"
)

// capture redirects a process wide stream (os.Stdout or os.Stderr) to an
// in-memory buffer. It is scoped: restore must run on every exit path.
// Redirection is process global, only one action may run at a time.
type capture struct {
	target **os.File
	saved  *os.File
	w      *os.File
	out    chan string
}

func redirect(target **os.File) (*capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	c := &capture{
		target: target,
		saved:  *target,
		w:      w,
		out:    make(chan string),
	}
	*target = w
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		r.Close()
		c.out <- buf.String()
	}()
	return c, nil
}

// restore puts the original stream back and returns what was written
func (c *capture) restore() string {
	*c.target = c.saved
	c.w.Close()
	return <-c.out
}
