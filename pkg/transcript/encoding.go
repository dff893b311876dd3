package transcript

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
)

// encodeTurn serializes a Turn to bytes using gob.
func encodeTurn(t *Turn) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeTurn deserializes bytes back into a Turn.
func decodeTurn(data []byte) (*Turn, error) {
	var t Turn
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// intToKey converts an int to an 8-byte big-endian key so turn numbers
// sort in play order.
func intToKey(n int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(n))
	return buf
}
