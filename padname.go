package goflat

import (
	"strconv"
	"sync/atomic"
)

// PadNamer mints names for padding fields declared with AutoName.
type PadNamer interface {
	NextPadName() string
}

// PadCounter generates "pad_1", "pad_2", ... It is safe for concurrent use.
type PadCounter struct {
	prefix string
	n      atomic.Int64
}

// NewPadCounter returns a counter starting at 1 with the "pad_" prefix.
func NewPadCounter() *PadCounter { return &PadCounter{prefix: "pad_"} }

func (c *PadCounter) NextPadName() string {
	return c.prefix + strconv.FormatInt(c.n.Add(1), 10)
}

// shared by every schema that does not inject its own namer
var processPadCounter = NewPadCounter()

// DefaultPadNamer returns the process-wide pad counter.
func DefaultPadNamer() PadNamer { return processPadCounter }
