package starfield

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum point count to shade on the worker pool.
// Below this, inline shading is faster than the channel round trips.
const parallelThreshold = 2048

// shadeChunk is a range of points for one worker.
type shadeChunk struct {
	index      int // output slot, preserves sequential order
	start, end int
}

// shadePool is a persistent worker pool for the per-frame shading stage.
type shadePool struct {
	numWorkers int
	outputs    [][]Sprite // one reusable buffer per chunk

	// Current frame input, read-only while workers run
	points []Point
	params *shadeParams

	workChan chan shadeChunk
	doneChan chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
}

func newShadePool(numWorkers int) *shadePool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &shadePool{
		numWorkers: numWorkers,
		outputs:    make([][]Sprite, numWorkers),
	}
}

// start launches the worker goroutines.
func (p *shadePool) start() {
	if p.running {
		return
	}

	p.workChan = make(chan shadeChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// stop signals all workers to exit and waits for them.
func (p *shadePool) stop() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

func (p *shadePool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			p.outputs[chunk.index] = shadeRange(p.points, chunk.start, chunk.end, p.params, p.outputs[chunk.index][:0])
			p.doneChan <- struct{}{}
		}
	}
}

// shade projects and shades all points into dst, splitting the work across the pool.
// The result is in the same order as a sequential pass.
func (p *shadePool) shade(points []Point, params *shadeParams, dst []Sprite) []Sprite {
	n := len(points)
	if n < parallelThreshold || p.numWorkers < 2 {
		return shadeRange(points, 0, n, params, dst)
	}

	p.start()
	p.points = points
	p.params = params

	chunkSize := (n + p.numWorkers - 1) / p.numWorkers
	chunks := 0
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		p.workChan <- shadeChunk{index: chunks, start: start, end: end}
		chunks++
	}

	for i := 0; i < chunks; i++ {
		<-p.doneChan
	}

	for i := 0; i < chunks; i++ {
		dst = append(dst, p.outputs[i]...)
	}

	p.points = nil
	p.params = nil
	return dst
}
