package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scanRecord struct {
	First  int64 `json:"first"`
	Last   int64 `json:"last"`
	Count  int64 `json:"count"`
	Sorted bool  `json:"sorted"`
}

func roundTrip(t *testing.T, c Codec) {
	t.Helper()

	in := []scanRecord{
		{First: 1, Last: 9, Count: 4, Sorted: true},
		{First: 3, Last: 2, Count: 2, Sorted: false},
		{Count: 0, Sorted: true},
	}

	b, err := c.Marshal(in)
	require.NoError(t, err)

	var out []scanRecord
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, c := range []Codec{
		JSON{},
		GoJSON{},
		CBOR{},
		CompressedS2(CBOR{}),
		CompressedLZ4(CBOR{}),
		CompressedS2(JSON{}),
	} {
		t.Run(c.Name(), func(t *testing.T) {
			roundTrip(t, c)
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json", "cbor", "cbor+s2", "json+lz4"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)

	_, ok = ByName("cbor+zstd")
	assert.False(t, ok)
}

type fakeCodec struct {
	CBOR
}

func (fakeCodec) Name() string { return "engine-wire" }

func TestRegister(t *testing.T) {
	Register(fakeCodec{})

	c, ok := ByName("engine-wire")
	require.True(t, ok)
	assert.Equal(t, "engine-wire", c.Name())
	roundTrip(t, c)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "cbor", Default.Name())
}
