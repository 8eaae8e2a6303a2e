package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
)

// CompressedS2 wraps a codec with S2 block compression.
//
// The resulting codec is named inner.Name()+"+s2". S2 blocks record their
// own uncompressed length, so no framing is added.
func CompressedS2(inner Codec) Codec {
	return s2Codec{inner: inner}
}

type s2Codec struct {
	inner Codec
}

func (c s2Codec) Marshal(v any) ([]byte, error) {
	b, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	return s2.Encode(nil, b), nil
}

func (c s2Codec) Unmarshal(data []byte, v any) error {
	b, err := s2.Decode(nil, data)
	if err != nil {
		return err
	}
	return c.inner.Unmarshal(b, v)
}

func (c s2Codec) Name() string { return c.inner.Name() + "+s2" }

// CompressedLZ4 wraps a codec with LZ4 frame compression.
//
// The resulting codec is named inner.Name()+"+lz4". The LZ4 frame format is
// self-describing, so no extra framing is added.
func CompressedLZ4(inner Codec) Codec {
	return lz4Codec{inner: inner}
}

type lz4Codec struct {
	inner Codec
}

func (c lz4Codec) Marshal(v any) ([]byte, error) {
	b, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c lz4Codec) Unmarshal(data []byte, v any) error {
	b, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return err
	}
	return c.inner.Unmarshal(b, v)
}

func (c lz4Codec) Name() string { return c.inner.Name() + "+lz4" }
