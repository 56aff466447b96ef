package jsontext

import (
	"sync"

	"github.com/ylongjson/json/internal/bufpools"
)

// bufferEncoderPool reuses scratch buffers for callers that want
// compact or indented bytes without supplying their own io.Writer
// (spec §5, resource model: reuse instead of reallocate across
// repeated Encode calls). The buffer is reused; a fresh Encoder is
// built over it on each call.
var bufferEncoderPool = sync.Pool{
	New: func() any { return &pooledEncoder{buf: bufpools.Get()} },
}

type pooledEncoder struct {
	buf *bufpools.Buffer
	enc *Encoder
}

// AppendEncoded encodes v (given as a sequence of tokens produced by
// write) into dst using opts, through a new Encoder over a pooled
// scratch buffer.
func AppendEncoded(dst []byte, opts Options, write func(*Encoder) error) ([]byte, error) {
	pe := bufferEncoderPool.Get().(*pooledEncoder)
	defer func() {
		pe.buf.Reset()
		bufferEncoderPool.Put(pe)
	}()
	pe.buf.Reset()
	pe.enc = NewEncoder(pe.buf, opts)
	if err := write(pe.enc); err != nil {
		return dst, err
	}
	return append(dst, pe.buf.Bytes()...), nil
}
