package bytecode

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical options so the same chunk always encodes to
// the same bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("bytecode: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalChunk serializes a chunk to CBOR bytes.
func MarshalChunk(c *Chunk) ([]byte, error) {
	return cborEncMode.Marshal(c)
}

// UnmarshalChunk deserializes a chunk from CBOR bytes.
func UnmarshalChunk(data []byte) (*Chunk, error) {
	var c Chunk
	if err := cbor.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("bytecode: unmarshal chunk: %w", err)
	}
	return &c, nil
}

// EncodeChunk frames the CBOR payload with the magic bytes and format
// version, the on-disk .vbc layout.
func EncodeChunk(c *Chunk) ([]byte, error) {
	payload, err := MarshalChunk(c)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(ChunkMagic)
	if err := binary.Write(&buf, binary.BigEndian, ChunkVersion); err != nil {
		return nil, err
	}
	buf.Write(payload)
	return buf.Bytes(), nil
}

// DecodeChunk reads the framed .vbc layout.
func DecodeChunk(data []byte) (*Chunk, error) {
	if len(data) < len(ChunkMagic)+2 {
		return nil, fmt.Errorf("bytecode: encoded chunk too short (%d bytes)", len(data))
	}
	if !bytes.Equal(data[:len(ChunkMagic)], ChunkMagic) {
		return nil, fmt.Errorf("bytecode: bad magic %q", data[:len(ChunkMagic)])
	}
	version := binary.BigEndian.Uint16(data[len(ChunkMagic):])
	if version != ChunkVersion {
		return nil, fmt.Errorf("bytecode: unsupported format version %d", version)
	}
	return UnmarshalChunk(data[len(ChunkMagic)+2:])
}
