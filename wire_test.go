package partstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partstat/partstat/codec"
	"github.com/partstat/partstat/order"
)

func TestScanRecords_WireRoundTrip(t *testing.T) {
	ord := order.Natural[int]()
	recs := []PartitionStat[int]{
		ScanPartition([]int{1, 2}, ord),
		ScanPartition(nil, ord),
		ScanPartition([]int{5, 3}, ord),
	}

	for _, c := range []codec.Codec{nil, codec.JSON{}, codec.CompressedS2(codec.CBOR{})} {
		b, err := EncodeScan(c, recs)
		require.NoError(t, err)

		got, err := DecodeScan[int](c, b)
		require.NoError(t, err)
		require.Equal(t, recs, got)

		// A decoded gather merges identically to the local one.
		assert.Equal(t, MergeStats(recs, ord), MergeStats(got, ord))
	}
}

func TestStats_WireRoundTrip(t *testing.T) {
	ord := order.Natural[string]()
	st := MergeStats([]PartitionStat[string]{
		ScanPartition([]string{"a", "b"}, ord),
		ScanPartition(nil, ord),
		ScanPartition([]string{"c"}, ord),
	}, ord)

	b, err := EncodeStats(nil, st)
	require.NoError(t, err)

	got, err := DecodeStats[string](nil, b)
	require.NoError(t, err)
	assert.Equal(t, st.PartitionBounds, got.PartitionBounds)
	assert.Equal(t, st.PartitionSizes, got.PartitionSizes)
	assert.Equal(t, st.Sorted, got.Sorted)

	// Derived summaries are recomputed on the receiving side.
	assert.Equal(t, st.CountStats().Mean, got.CountStats().Mean)
}

func TestDecodeScan_WrongCodec(t *testing.T) {
	b, err := EncodeScan(codec.CBOR{}, []PartitionStat[int]{{Count: 1}})
	require.NoError(t, err)

	_, err = DecodeScan[int](codec.JSON{}, b)
	assert.Error(t, err)
}
