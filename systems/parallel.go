package systems

import (
	"runtime"
	"sync"
)

// workChunk represents a range of particles for a worker to process.
type workChunk struct {
	start, end int
	fn         func(start, end int)
}

// workerPool runs chunked work on persistent goroutines.
// run blocks until every dispatched chunk has completed, which is the
// barrier between stepping and anything that reads the stepped population.
type workerPool struct {
	numWorkers int

	workChan chan workChunk // sends work to workers
	doneChan chan struct{}  // workers signal completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup // tracks active workers
	running  bool           // true if workers are running
}

func newWorkerPool(numWorkers int) *workerPool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &workerPool{numWorkers: numWorkers}
}

// start launches persistent worker goroutines.
func (p *workerPool) start() {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// stop signals all workers to exit and waits for them.
func (p *workerPool) stop() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker processes chunks until stopped.
func (p *workerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			chunk.fn(chunk.start, chunk.end)
			p.doneChan <- struct{}{}
		}
	}
}

// run splits [0, n) across the workers and waits for all chunks to finish.
func (p *workerPool) run(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if !p.running {
		p.start()
	}

	chunkSize := (n + p.numWorkers - 1) / p.numWorkers

	dispatched := 0
	for w := 0; w < p.numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		p.workChan <- workChunk{start: start, end: end, fn: fn}
		dispatched++
	}

	for i := 0; i < dispatched; i++ {
		<-p.doneChan
	}
}
