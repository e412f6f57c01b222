package log

import (
	"io"
	"os"
	"sync"
)

// ConsoleOutput writes formatted entries to a writer, stderr by default.
// Writes are serialized so lines from concurrent goroutines never interleave.
type ConsoleOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleOutput returns an output writing to os.Stderr.
func NewConsoleOutput() *ConsoleOutput { return &ConsoleOutput{w: os.Stderr} }

// NewWriterOutput returns an output writing to w.
func NewWriterOutput(w io.Writer) *ConsoleOutput { return &ConsoleOutput{w: w} }

// Write implements Output.
func (o *ConsoleOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.w.Write(formatted)
	return err
}

// Close implements Output. The underlying writer is not closed.
func (o *ConsoleOutput) Close() error { return nil }

// NullOutput discards everything.
type NullOutput struct{}

func (NullOutput) Write(*Entry, []byte) error { return nil }
func (NullOutput) Close() error               { return nil }
