package main

import (
	"bytes"
	"io"
)

// crlfWriter turns "\n" into "\r\n" while the terminal is in raw mode.
type crlfWriter struct {
	w   io.Writer
	raw bool
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if !c.raw {
		return c.w.Write(p)
	}
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
