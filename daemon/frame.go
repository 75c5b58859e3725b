package daemon

import (
	"encoding/binary"
	"io"

	"github.com/flagstorage/aconfig/errs"
)

// MaxFrameSize bounds the length prefix so a corrupt or hostile peer
// cannot make ReadFrame allocate an unbounded buffer.
const MaxFrameSize = 16 << 20 // 16 MiB

// WriteFrame writes payload to w preceded by its length as a 4-byte
// big-endian prefix.
func WriteFrame(w io.Writer, payload []byte) error {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(payload))) //nolint: gosec

	if _, err := w.Write(length[:]); err != nil {
		return err
	}

	_, err := w.Write(payload)

	return err
}

// ReadFrame reads a 4-byte big-endian length prefix from r followed by
// exactly that many payload bytes.
func ReadFrame(r io.Reader) ([]byte, error) {
	var length [4]byte
	if _, err := io.ReadFull(r, length[:]); err != nil {
		return nil, err
	}

	n := binary.BigEndian.Uint32(length[:])
	if n > MaxFrameSize {
		return nil, errs.Wrap(errs.ErrBytesParseFail, "frame exceeds maximum size")
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}

	return payload, nil
}
