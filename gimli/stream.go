package gimli

import "io"

// ByteProducer is a lazy, finite, non-restartable sequence of bytes:
// each pull either yields a byte, signals clean end-of-stream, or
// signals a read failure.
//
// Next returns ok == false with err == nil at a clean end of stream, and
// ok == false with err != nil when the underlying source failed. The
// core pulls exactly the declared number of bytes during each phase
// (message, and — for decrypt — the trailing tag; associated data is
// passed as a slice, not pulled from a producer) and surfaces a
// *ReadError the moment a pull comes up short.
type ByteProducer interface {
	Next() (b byte, err error, ok bool)
}

// sliceProducer is a ByteProducer over an in-memory buffer, used by the
// one-shot APIs and in tests to drive the streaming state machines byte
// by byte.
type sliceProducer struct {
	buf []byte
	pos int
}

// NewSliceProducer returns a ByteProducer that yields the bytes of buf
// in order, then signals clean end-of-stream.
func NewSliceProducer(buf []byte) ByteProducer {
	return &sliceProducer{buf: buf}
}

func (p *sliceProducer) Next() (byte, error, bool) {
	if p.pos >= len(p.buf) {
		return 0, nil, false
	}
	b := p.buf[p.pos]
	p.pos++
	return b, nil, true
}

// readerProducer adapts an io.Reader into a ByteProducer, letting a CLI
// or any other caller stream a file's worth of plaintext/ciphertext
// without buffering it whole.
type readerProducer struct {
	r   io.Reader
	buf [1]byte
}

// NewReaderProducer returns a ByteProducer backed by r. Read errors
// other than io.EOF are surfaced verbatim on the next Next() call;
// io.EOF is translated into clean end-of-stream.
func NewReaderProducer(r io.Reader) ByteProducer {
	return &readerProducer{r: r}
}

func (p *readerProducer) Next() (byte, error, bool) {
	n, err := p.r.Read(p.buf[:])
	if n == 1 {
		return p.buf[0], nil, true
	}
	if err == nil || err == io.EOF {
		return 0, nil, false
	}
	return 0, err, false
}

// pullExact pulls n bytes from p into a fresh slice, returning a
// *ReadError (never a bare err) the moment the producer runs dry or
// fails early.
func pullExact(p ByteProducer, n int) ([]byte, error) {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err, ok := p.Next()
		if err != nil {
			return nil, &ReadError{Cause: err}
		}
		if !ok {
			return nil, &ReadError{Cause: errUnexpectedEOF}
		}
		out[i] = b
	}
	return out, nil
}
