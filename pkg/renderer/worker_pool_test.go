package renderer

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// indexRenderer encodes the row's y coordinate and its first random draw in every pixel
type indexRenderer struct {
	width, height int
}

func (r indexRenderer) Width() int  { return r.width }
func (r indexRenderer) Height() int { return r.height }

func (r indexRenderer) RenderRow(y int, random *rand.Rand) []core.Color {
	draw := random.Float64()
	pixels := make([]core.Color, r.width)
	for i := range pixels {
		pixels[i] = core.NewVec3(float64(y), float64(i), draw)
	}
	return pixels
}

func TestWorkerPool_ProcessesEveryTask(t *testing.T) {
	rr := indexRenderer{width: 3, height: 50}
	pool := NewWorkerPool(rr, 4)
	if pool.GetNumWorkers() != 4 {
		t.Fatalf("Expected 4 workers, got %d", pool.GetNumWorkers())
	}

	pool.Start()
	for index := 0; index < rr.height; index++ {
		pool.SubmitTask(RowTask{Index: index, Seed: 42})
	}
	go pool.Stop()

	var indices []int
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.WorkerID < 0 || result.WorkerID >= 4 {
			t.Errorf("Result from unknown worker %d", result.WorkerID)
		}
		if result.Row.Y != rowY(rr.height, result.Row.Index) {
			t.Errorf("Row %d has y=%d, expected %d", result.Row.Index, result.Row.Y, rowY(rr.height, result.Row.Index))
		}

		expected := rand.New(rand.NewSource(RowSeed(42, result.Row.Index))).Float64()
		if result.Row.Pixels[0].Z != expected {
			t.Errorf("Row %d rendered with the wrong seed", result.Row.Index)
		}
		indices = append(indices, result.Row.Index)
	}

	sort.Ints(indices)
	if len(indices) != rr.height {
		t.Fatalf("Expected %d results, got %d", rr.height, len(indices))
	}
	for i, index := range indices {
		if index != i {
			t.Fatalf("Missing or duplicated row near index %d", i)
		}
	}
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	pool := NewWorkerPool(indexRenderer{width: 1, height: 1}, 0)
	if pool.GetNumWorkers() != DefaultWorkerCount() {
		t.Errorf("Expected %d workers, got %d", DefaultWorkerCount(), pool.GetNumWorkers())
	}
	if DefaultWorkerCount() < 1 {
		t.Errorf("DefaultWorkerCount must be at least 1, got %d", DefaultWorkerCount())
	}
}

func TestRowSeed(t *testing.T) {
	if RowSeed(42, 0) != 42 || RowSeed(42, 10) != 52 {
		t.Errorf("Unexpected row seeds: %d, %d", RowSeed(42, 0), RowSeed(42, 10))
	}
	if rowY(10, 0) != 9 || rowY(10, 9) != 0 {
		t.Errorf("Expected index 0 to map to the top row")
	}
}
