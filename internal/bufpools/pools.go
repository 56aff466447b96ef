// Package bufpools provides pooled scratch buffers for the encoder,
// built on bytebufferpool so repeated Encode calls don't re-allocate
// their working buffer each time (spec §5, resource model). The decoder
// does not use them.
package bufpools

import "github.com/valyala/bytebufferpool"

// Buffer is a pooled, growable byte buffer. It implements io.Writer and
// io.ByteWriter, and satisfies the Len/Reset/Bytes surface the pooled
// encoder expects of its underlying sink.
type Buffer = bytebufferpool.ByteBuffer

var pool bytebufferpool.Pool

// Get acquires an empty Buffer from the shared pool. The returned buffer
// may retain capacity from a prior Put.
func Get() *Buffer { return pool.Get() }

// Put resets b and returns it to the shared pool. The caller must not
// use b again afterward.
func Put(b *Buffer) {
	b.Reset()
	pool.Put(b)
}
