package partstat

import "github.com/partstat/partstat/codec"

// Wire helpers for shipping scan records and merged stats between engine
// workers and a coordinator. A nil codec selects codec.Default; the decoding
// side must use the codec the bytes were produced with (resolve it with
// codec.ByName when the name travels out of band).

// EncodeScan encodes a gathered batch of per-partition scan records.
func EncodeScan[T any](c codec.Codec, recs []PartitionStat[T]) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(recs)
}

// DecodeScan decodes a batch of per-partition scan records.
func DecodeScan[T any](c codec.Codec, data []byte) ([]PartitionStat[T], error) {
	if c == nil {
		c = codec.Default
	}
	var recs []PartitionStat[T]
	if err := c.Unmarshal(data, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// statsWire is the transfer shape of DatasetStats; the derived summaries are
// recomputed on the receiving side, not transferred.
type statsWire[T any] struct {
	PartitionBounds []*Bounds[T] `json:"partition_bounds"`
	PartitionSizes  []int64      `json:"partition_sizes"`
	Sorted          bool         `json:"sorted"`
}

// EncodeStats encodes merged dataset stats.
func EncodeStats[T any](c codec.Codec, s *DatasetStats[T]) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(statsWire[T]{
		PartitionBounds: s.PartitionBounds,
		PartitionSizes:  s.PartitionSizes,
		Sorted:          s.Sorted,
	})
}

// DecodeStats decodes merged dataset stats.
func DecodeStats[T any](c codec.Codec, data []byte) (*DatasetStats[T], error) {
	if c == nil {
		c = codec.Default
	}
	var w statsWire[T]
	if err := c.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return &DatasetStats[T]{
		PartitionBounds: w.PartitionBounds,
		PartitionSizes:  w.PartitionSizes,
		Sorted:          w.Sorted,
	}, nil
}
