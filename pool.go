package crowdpost

import (
	"sync"

	"github.com/crowdkit/go-crowdpost/suppress"
)

// Pool fans independent per image suppression jobs across a fixed number of
// worker goroutines.  The greedy dependency chain inside one suppression
// call is inherently sequential, so parallelism is only applied across
// candidate lists from different images.
type Pool struct {
	// size is the number of worker goroutines
	size int
	// cfg is the suppressor configuration each worker builds from
	cfg suppress.Config
}

// NewPool creates a new suppression pool of the given size.  A size below
// one is raised to one.  The suppressor configuration is validated here so
// workers cannot fail later.
func NewPool(size int, cfg suppress.Config) (*Pool, error) {

	if size < 1 {
		size = 1
	}

	// validate the configuration up front
	if _, err := suppress.New(cfg); err != nil {
		return nil, err
	}

	return &Pool{
		size: size,
		cfg:  cfg,
	}, nil
}

// Process runs suppression over each candidate list and returns the keep
// lists in the same order as the input batches.  Workers write to disjoint
// result slots so no locking is needed.
func (p *Pool) Process(batches [][]suppress.Candidate) [][]int {

	out := make([][]int, len(batches))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(p.size)

	for w := 0; w < p.size; w++ {
		go func() {
			defer wg.Done()

			// each worker owns its suppressor instance, the config was
			// validated in NewPool
			sup, _ := suppress.New(p.cfg)

			for i := range jobs {
				out[i] = sup.Suppress(batches[i])
			}
		}()
	}

	for i := range batches {
		jobs <- i
	}

	close(jobs)
	wg.Wait()

	return out
}
