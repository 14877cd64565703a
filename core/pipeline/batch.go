package pipeline

import "fmt"

// Batch-size bounds enforced by the batch-inference backend.
const (
	MinBatchSize = 100
	MaxBatchSize = 50000
)

// SplitBatches partitions items into batches of batchSize, preserving
// order. A final remainder smaller than MinBatchSize is absorbed into the
// preceding batch so that no undersized batch is submitted; a remainder of
// exactly MinBatchSize stays a separate batch. Fewer items than
// MinBatchSize cannot form a valid batch at all and are rejected.
func SplitBatches[T any](items []T, batchSize int) ([][]T, error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("batch size %d outside allowed range [%d, %d]", batchSize, MinBatchSize, MaxBatchSize)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("cannot split an empty item list into batches")
	}
	if len(items) < MinBatchSize {
		return nil, fmt.Errorf("%d items is fewer than the minimum batch size %d", len(items), MinBatchSize)
	}

	var batches [][]T
	i := 0
	for i < len(items) {
		end := i + batchSize
		if end > len(items) {
			end = len(items)
		}
		if remaining := len(items) - end; remaining > 0 && remaining < MinBatchSize {
			end = len(items)
		}
		batches = append(batches, items[i:end])
		i = end
	}

	return batches, nil
}
