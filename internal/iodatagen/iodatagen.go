// Package iodatagen generates synthetic workloads for benchmarking and
// exploration. Generation is reproducible: the same seed and options
// always yield the same workload.
package iodatagen

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"github.com/ixsel/ixsel/pkg/workload"
	"golang.org/x/sync/errgroup"
)

// Options control the shape of a generated workload. All ranges are
// inclusive.
type Options struct {
	Seed int64

	ScansMin, ScansMax int

	// Cost of a scan through an index. The generator keeps every
	// coverage cost strictly below the covered scan's read cost.
	IndexCostMin, IndexCostMax int

	// Sequential read cost of a scan.
	ReadCostMin, ReadCostMax int

	// Number of possible and existing indexes.
	IndexesMin, IndexesMax   int
	ExistingMin, ExistingMax int

	// Write overhead of one index.
	IWOMin, IWOMax int

	// Fraction of the scans covered by one index.
	CoveredFracMin, CoveredFracMax float64

	// Jobs is the number of parallel workers; 0 means NumCPU.
	Jobs int

	// WithProgress shows a progress bar over index generation.
	WithProgress bool
}

// DefaultOptions mirror a mid-sized analytical workload.
func DefaultOptions() Options {
	return Options{
		ScansMin: 40, ScansMax: 60,
		IndexCostMin: 10, IndexCostMax: 100,
		ReadCostMin: 150, ReadCostMax: 300,
		IndexesMin: 50, IndexesMax: 100,
		ExistingMin: 1, ExistingMax: 3,
		IWOMin: 10, IWOMax: 30,
		CoveredFracMin: 0.1, CoveredFracMax: 0.25,
	}
}

func (o Options) validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"scans", 0 < o.ScansMin && o.ScansMin <= o.ScansMax},
		{"index cost", 0 < o.IndexCostMin && o.IndexCostMin <= o.IndexCostMax},
		{"read cost", 0 < o.ReadCostMin && o.ReadCostMin <= o.ReadCostMax},
		{"index cost vs read cost", o.IndexCostMin < o.ReadCostMax},
		{"indexes", 0 < o.IndexesMin && o.IndexesMin <= o.IndexesMax},
		{"existing indexes", 0 <= o.ExistingMin && o.ExistingMin <= o.ExistingMax},
		{"write overhead", 0 < o.IWOMin && o.IWOMin <= o.IWOMax},
		{"covered fraction", 0 < o.CoveredFracMin &&
			o.CoveredFracMin <= o.CoveredFracMax && o.CoveredFracMax <= 1},
	}
	for _, c := range checks {
		if !c.ok {
			return RangeError(c.name)
		}
	}
	return nil
}

// genIndex is the per-worker result for one index: the index itself and
// the scans it covers, by scan position.
type genIndex struct {
	index   workload.Index
	covered map[int]float64
}

// Generate creates a random workload. Scans are generated first from
// the seeded source; each index then gets its own source derived from
// the master one, so the worker pool does not affect the result.
func Generate(ctx context.Context, o Options) (
	[]workload.Scan, []workload.Index, error,
) {
	if err := o.validate(); err != nil {
		return nil, nil, err
	}

	master := rand.New(rand.NewSource(o.Seed))

	numScans := randBetween(master, o.ScansMin, o.ScansMax)
	scans := make([]workload.Scan, numScans)
	for i := range scans {
		scans[i] = workload.Scan{
			ID:          scanID(o.Seed, i),
			DefaultCost: float64(randBetween(master, o.ReadCostMin, o.ReadCostMax)),
			Coverage:    make(map[string]float64),
		}
	}

	numPossible := randBetween(master, o.IndexesMin, o.IndexesMax)
	numExisting := randBetween(master, o.ExistingMin, o.ExistingMax)
	total := numPossible + numExisting

	kinds := make([]workload.IndexKind, total)
	seeds := make([]int64, total)
	for i := range kinds {
		if i >= numPossible {
			kinds[i] = workload.Existing
		} else {
			kinds[i] = workload.Possible
		}
		seeds[i] = master.Int63()
	}

	jobs := o.Jobs
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}

	var bar *pb.ProgressBar
	if o.WithProgress {
		bar = newProgressBar(total, "Generating indexes: ")
	}

	results := make([]genIndex, total)
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := 0; i < total; i++ {
		g.Go(func() error {
			results[i] = makeIndex(o, scans, kinds[i], seeds[i], i)
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if bar != nil {
		bar.Finish()
	}

	indexes := make([]workload.Index, total)
	for i, r := range results {
		indexes[i] = r.index
		for scanPos, cost := range r.covered {
			scans[scanPos].Coverage[r.index.ID] = cost
		}
	}

	return scans, indexes, nil
}

// makeIndex generates one index and its covered scans from a dedicated
// random source.
func makeIndex(
	o Options,
	scans []workload.Scan,
	kind workload.IndexKind,
	seed int64,
	pos int,
) genIndex {
	rng := rand.New(rand.NewSource(seed))

	res := genIndex{
		index: workload.Index{
			ID:            indexID(seed, kind, pos),
			Kind:          kind,
			WriteOverhead: float64(randBetween(rng, o.IWOMin, o.IWOMax)),
		},
		covered: make(map[int]float64),
	}

	frac := o.CoveredFracMin +
		rng.Float64()*(o.CoveredFracMax-o.CoveredFracMin)
	n := int(float64(len(scans))*frac + 0.5)

	for _, scanPos := range rng.Perm(len(scans))[:n] {
		readCost := int(scans[scanPos].DefaultCost)
		maxCost := o.IndexCostMax
		// Coverage must improve on the sequential read.
		if readCost <= maxCost {
			maxCost = readCost - 1
		}
		if maxCost < o.IndexCostMin {
			continue
		}
		res.covered[scanPos] =
			float64(randBetween(rng, o.IndexCostMin, maxCost))
	}
	return res
}

func randBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Identifiers are name-based UUIDs, so a seed fully determines them.

func scanID(seed int64, pos int) string {
	name := fmt.Sprintf("scan-%d-%d", seed, pos)
	return fmt.Sprintf("scan-%s", uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)))
}

func indexID(seed int64, kind workload.IndexKind, pos int) string {
	name := fmt.Sprintf("index-%s-%d-%d", kind, seed, pos)
	return fmt.Sprintf("idx-%s", uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)))
}
