package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/log"
)

var logger = log.New("renderer")

// RenderOptions controls how rows are scheduled
type RenderOptions struct {
	SingleThread bool  // Render every row on the calling goroutine
	Workers      int   // Worker count for parallel renders, 0 = DefaultWorkerCount()
	Seed         int64 // Base seed for per-row random generators
}

// Render renders every row of rr and writes them to sink top to bottom.
// Serial and parallel renders with the same seed produce identical rows.
func Render(rr RowRenderer, sink RowSink, options RenderOptions) (RenderStats, error) {
	if rr.Width() <= 0 || rr.Height() <= 0 {
		return RenderStats{}, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rr.Width(), rr.Height())
	}

	stats := newRenderStats(rr, options.SingleThread)
	start := time.Now()

	var err error
	if options.SingleThread {
		err = renderSerial(rr, sink, options.Seed, &stats)
	} else {
		err = renderParallel(rr, sink, options, &stats)
	}
	stats.Elapsed = time.Since(start)

	if err != nil {
		return stats, err
	}

	logger.Infof("rendered %d rows (%dx%d) in %s", stats.Rows, stats.Width, stats.Height, stats.Elapsed)
	return stats, nil
}

// renderSerial renders rows in order on the calling goroutine
func renderSerial(rr RowRenderer, sink RowSink, seed int64, stats *RenderStats) error {
	stats.Workers = []WorkerStats{{ID: 0}}

	for index := 0; index < rr.Height(); index++ {
		start := time.Now()
		row := renderRow(rr, index, seed)
		stats.recordRow(0, time.Since(start))

		if err := writeRow(sink, row, rr.Width()); err != nil {
			return err
		}
	}
	return nil
}

// renderParallel dispatches rows to a worker pool and re-serializes the results
func renderParallel(rr RowRenderer, sink RowSink, options RenderOptions, stats *RenderStats) error {
	pool := NewWorkerPool(rr, options.Workers)
	stats.Workers = make([]WorkerStats, pool.GetNumWorkers())
	for i := range stats.Workers {
		stats.Workers[i].ID = i
	}

	logger.Debugf("dispatching %d rows to %d workers", rr.Height(), pool.GetNumWorkers())
	pool.Start()

	// Dispatcher: enqueue every row top to bottom, then close the pool so
	// the result queue closes once the last worker exits
	go func() {
		for index := 0; index < rr.Height(); index++ {
			pool.SubmitTask(RowTask{Index: index, Seed: options.Seed})
		}
		pool.Stop()
	}()

	buffer := NewRowReorderBuffer()
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.recordRow(result.WorkerID, result.Elapsed)

		ready, err := buffer.Push(result.Row)
		if err != nil {
			return err
		}
		for _, row := range ready {
			if err := writeRow(sink, row, rr.Width()); err != nil {
				return err
			}
		}
	}

	stats.MaxBuffered = buffer.MaxPending()
	return buffer.Close(rr.Height())
}

func writeRow(sink RowSink, row Row, width int) error {
	if len(row.Pixels) != width {
		return fmt.Errorf("%w: row %d has %d pixels, expected %d", ErrRowWidth, row.Index, len(row.Pixels), width)
	}
	if err := sink.WriteRow(row); err != nil {
		return fmt.Errorf("writing row %d: %w", row.Index, err)
	}
	return nil
}
