package renderer

import (
	"image"
	"runtime"
	"sync"

	"github.com/raytracing-go/skytracer/pkg/core"
)

// TileTask describes one tile of one frame for the worker pool
type TileTask struct {
	TaskID int
	Bounds image.Rectangle
	Frame  *Framebuffer
	Seed   float64
	Jitter core.Vec2
}

// TileResult reports a completed tile
type TileResult struct {
	TaskID int
}

// WorkerPool renders tiles in parallel. Tiles of one frame have disjoint
// bounds, so workers write to the shared framebuffer without locking; all
// other state a pixel needs is either read-only scene data or private to
// the pixel.
type WorkerPool struct {
	renderer    *Renderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool with the given number of workers
// (0 = CPU count)
func NewWorkerPool(renderer *Renderer, numWorkers, queueDepth int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		renderer:    renderer,
		taskQueue:   make(chan TileTask, queueDepth),
		resultQueue: make(chan TileResult, queueDepth),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop closes the task queue and waits for the workers to drain it
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a tile for rendering
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()
	for task := range wp.taskQueue {
		wp.renderer.RenderBounds(task.Frame, task.Bounds, task.Seed, task.Jitter)
		wp.resultQueue <- TileResult{TaskID: task.TaskID}
	}
}
