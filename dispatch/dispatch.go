// Package dispatch implements the seed-driven worker pool (spec.md §4.G):
// build the seed list, partition it across a fixed number of worker
// goroutines, and grow+finalize paths per seed.
//
// Grounded on the reference implementation's FindBlocks: seeds are shuffled
// then stably sorted by descending degree (so high-multiplicity vertices,
// the ones most likely to anchor a large block, are tried first within each
// worker's share), and each worker reuses a single Path object across its
// seeds rather than allocating one per seed. A seed is retried from scratch
// after every successful commit, since its remaining unclaimed occurrences
// may still seed further blocks; it is abandoned once a grow attempt fails
// to score positively or a commit attempt fails.
package dispatch

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/wangdi2014/SibeliaZ/block"
	"github.com/wangdi2014/SibeliaZ/config"
	"github.com/wangdi2014/SibeliaZ/extender"
	"github.com/wangdi2014/SibeliaZ/finalizer"
	"github.com/wangdi2014/SibeliaZ/junction"
	"github.com/wangdi2014/SibeliaZ/pathwalk"
	"github.com/wangdi2014/SibeliaZ/progress"
)

// minSeedOccurrences is the fewest occurrences a seed vertex needs before
// it is even worth growing a path from: a block needs at least two good
// instances, and an instance can never exceed its seed's own occurrence
// count.
const minSeedOccurrences = 2

// Run builds the seed list from store, partitions it across cfg.Threads
// worker goroutines, and grows+finalizes blocks per seed, reporting progress
// through reporter. It returns every committed block instance.
func Run(ctx context.Context, store *junction.Store, cfg config.Config, reporter progress.Reporter) ([]block.Instance, error) {
	seeds := buildSeedList(store, cfg.RandSeed)

	g, ctx := errgroup.WithContext(ctx)
	var nextBlockID atomic.Int64
	var mu sync.Mutex
	var out []block.Instance

	for _, chunk := range partition(seeds, cfg.Threads) {
		chunk := chunk
		g.Go(func() error {
			path := pathwalk.New(store, cfg.MaxBranchSize, cfg.MinBlockSize, cfg.MaxFlankingSize)

			for _, v := range chunk {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				if store.InstancesCount(v) < minSeedOccurrences {
					reporter.SeedProcessed()
					continue
				}

				if seed := store.Occurrence(v, 0); !seed.IsUnknown() {
					reporter.SeedProcessed()
					continue
				}

				for explore := true; explore; {
					path.Init(v)
					if len(path.Instances()) < minSeedOccurrences {
						path.Clear()
						break
					}

					result := extender.Run(path, cfg.LookingDepth, cfg.MaxBranchSize, cfg.MinBlockSize)
					if result.BestScore <= 0 {
						path.Clear()
						break
					}

					id := nextBlockID.Add(1)
					instances, ok := finalizer.TryFinalize(store, path, id, cfg.MinBlockSize, result.BestRightSize, result.BestLeftSize)
					path.Clear()
					if !ok {
						explore = false
						break
					}

					mu.Lock()
					out = append(out, instances...)
					mu.Unlock()
					reporter.BlockFound(id, len(instances))
				}

				reporter.SeedProcessed()
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	reporter.Done()

	return out, nil
}

// buildSeedList returns store's seed vertices shuffled under seed, then
// stably sorted by descending occurrence count.
func buildSeedList(store *junction.Store, seed int64) []junction.VertexID {
	seeds := store.SeedVertices()

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(seeds), func(i, j int) { seeds[i], seeds[j] = seeds[j], seeds[i] })

	sort.SliceStable(seeds, func(i, j int) bool {
		return store.InstancesCount(seeds[i]) > store.InstancesCount(seeds[j])
	})

	return seeds
}

// partition splits seeds into n round-robin shares, so each worker gets a
// comparable mix of high- and low-degree vertices rather than one worker
// getting every high-degree seed.
func partition(seeds []junction.VertexID, n int) [][]junction.VertexID {
	if n < 1 {
		n = 1
	}

	out := make([][]junction.VertexID, n)
	for i, v := range seeds {
		w := i % n
		out[w] = append(out[w], v)
	}

	return out
}
