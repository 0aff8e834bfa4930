package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Console prints game messages and reads answers line by line.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	pause time.Duration
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// WithPause makes the console wait after every message so a human can follow
// the game.
func (c *Console) WithPause(pause time.Duration) *Console {
	c.pause = pause
	return c
}

// Print writes an already formatted message, see package msg.
func (c *Console) Print(message string) {
	_, _ = io.WriteString(c.out, message)
	if c.pause > 0 {
		time.Sleep(c.pause)
	}
}

func (c *Console) Printfln(format string, args ...interface{}) {
	c.Print(fmt.Sprintln(fmt.Sprintf(format, args...)))
}

// ReadLine returns the next trimmed input line. The last line may end
// without a newline; after it io.EOF is returned.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
