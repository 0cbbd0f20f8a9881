package renderer

import (
	"runtime"
	"sync"
	"time"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Index int   // Enumeration index, used to restore output order
	Seed  int64 // Base seed; the row generator is derived from Seed and Index
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row      Row
	WorkerID int
	Elapsed  time.Duration
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	renderer    RowRenderer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// DefaultWorkerCount leaves one CPU for the dispatcher and consumer
func DefaultWorkerCount() int {
	return max(1, runtime.NumCPU()-1)
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(rr RowRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkerCount()
	}

	// Both queues hold a full image, so neither the dispatcher nor a worker
	// blocks on a consumer that has stopped reading
	rows := rr.Height()

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),
		resultQueue: make(chan RowResult, rows),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    rr,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue, waits for workers to drain it and then
// closes the result queue. It must be called exactly once, after the last
// SubmitTask.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row; ok is false once the pool is stopped and drained
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()
	logger.Debugf("worker %d started", w.ID)

	rows := 0
	for task := range w.taskQueue {
		start := time.Now()
		row := renderRow(w.renderer, task.Index, task.Seed)

		w.resultQueue <- RowResult{
			Row:      row,
			WorkerID: w.ID,
			Elapsed:  time.Since(start),
		}
		rows++
	}

	logger.Debugf("worker %d exiting after %d rows", w.ID, rows)
}
