package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WorkerStats tracks the rows rendered by one worker
type WorkerStats struct {
	ID   int
	Rows int
	Busy time.Duration // Time spent rendering rows
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	Rows            int           // Rows rendered
	Pixels          int           // Pixels rendered
	SamplesPerPixel int           // 1 for renderers that do not sample
	SingleThread    bool          // Whether the render ran on the calling goroutine
	MaxBuffered     int           // Peak number of rows waiting in the reorder buffer
	Elapsed         time.Duration // Wall-clock render time
	Workers         []WorkerStats
}

func newRenderStats(rr RowRenderer, singleThread bool) RenderStats {
	spp := 1
	if counter, ok := rr.(SampleCounter); ok {
		spp = counter.SamplesPerPixel()
	}
	return RenderStats{
		Width:           rr.Width(),
		Height:          rr.Height(),
		SamplesPerPixel: spp,
		SingleThread:    singleThread,
	}
}

func (s *RenderStats) recordRow(workerID int, elapsed time.Duration) {
	s.Rows++
	s.Pixels += s.Width
	s.Workers[workerID].Rows++
	s.Workers[workerID].Busy += elapsed
}

// TotalSamples returns the number of camera rays traced
func (s RenderStats) TotalSamples() int {
	return s.Pixels * s.SamplesPerPixel
}

// Table formats per-worker statistics as a text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Busy time"})
	for _, worker := range s.Workers {
		percent := 0.0
		if s.Rows > 0 {
			percent = 100 * float64(worker.Rows) / float64(s.Rows)
		}
		table.Append([]string{
			fmt.Sprintf("%d", worker.ID),
			fmt.Sprintf("%d", worker.Rows),
			fmt.Sprintf("%02.1f %%", percent),
			worker.Busy.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{"TOTAL", fmt.Sprintf("%d", s.Rows), fmt.Sprintf("%d spp", s.SamplesPerPixel), s.Elapsed.Round(time.Millisecond).String()})

	table.Render()
	return buf.String()
}
