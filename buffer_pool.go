package main

import (
	"sync"

	"github.com/ssgreg/logf"
)

// NewPool returns a new Pool of buffers with the given initial capacity.
func NewPool(capacity int) Pool {
	return Pool{p: &sync.Pool{
		New: func() interface{} {
			return logf.NewBufferWithCapacity(capacity)
		},
	}}
}

// A Pool is a type-safe wrapper around a sync.Pool. It feeds both the input
// lines handed to the parse workers and the rendered output.
type Pool struct {
	p *sync.Pool
}

// Get retrieves an empty Buffer from the pool, creating one if necessary.
func (p Pool) Get() *logf.Buffer {
	buf := p.p.Get().(*logf.Buffer)
	buf.Reset()

	return buf
}

// Put returns buf to the pool. buf must not be used afterwards.
func (p Pool) Put(buf *logf.Buffer) {
	if buf != nil {
		p.p.Put(buf)
	}
}
