package partition

import "errors"

var (
	// ErrBadHeight indicates a grid with fewer than one interior row.
	ErrBadHeight = errors.New("partition: height must be > 0")
	// ErrBadWorkers indicates fewer than one worker.
	ErrBadWorkers = errors.New("partition: workers must be > 0")
	// ErrBadRank indicates a rank outside [0, len(plan)).
	ErrBadRank = errors.New("partition: rank out of range")
)
