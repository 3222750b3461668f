// Package remote exposes a serializing safety service over TCP. The wire
// protocol is deliberately small: each request and each response travels as
// one length-prefixed frame, and frames on a connection strictly alternate
// request, response, request, response. Everything inside a frame is opaque
// here; the serializer package gives the bytes their meaning.
package remote

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// MaxFrameSize bounds the payload of a single frame. Safety rules requests
// are small; the bound exists so a corrupt or hostile length prefix cannot
// drive an allocation of arbitrary size.
const MaxFrameSize = 8 << 20

// WriteFrame writes one frame: a 4-byte big-endian payload length followed
// by the payload.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxFrameSize {
		return errors.Errorf("frame payload exceeds maximum size (%d > %d)", len(payload), MaxFrameSize)
	}
	frame := make([]byte, 4+len(payload))
	binary.BigEndian.PutUint32(frame, uint32(len(payload)))
	copy(frame[4:], payload)
	_, err := w.Write(frame)
	if err != nil {
		return errors.Wrap(err, "could not write frame")
	}
	return nil
}

// ReadFrame reads one length-prefixed frame. A clean end of stream before
// the first length byte surfaces as io.EOF; anything shorter than the
// announced payload is an error.
func ReadFrame(r io.Reader) ([]byte, error) {
	var length [4]byte
	_, err := io.ReadFull(r, length[:])
	if err != nil {
		return nil, err
	}
	size := binary.BigEndian.Uint32(length[:])
	if size > MaxFrameSize {
		return nil, errors.Errorf("frame payload exceeds maximum size (%d > %d)", size, MaxFrameSize)
	}
	payload := make([]byte, size)
	_, err = io.ReadFull(r, payload)
	if err != nil {
		return nil, errors.Wrap(err, "could not read frame payload")
	}
	return payload, nil
}
