package multiply

import (
	"runtime"
	"sync"
)

// cloneAll produces count instances, serially or through a worker pool.
//
// Workers only read the shared belonging-set and source document, so clone
// generation parallelizes without locking. Results are reassembled by grid
// index: parallel and serial runs produce structurally identical output,
// only generated identifier values differ.
func (g *Generator) cloneAll(set *BelongingSet, count int) []*Instance {
	if count <= 0 {
		return nil
	}
	if !g.opts.Parallel {
		return g.cloneSerial(set, count)
	}

	workers := g.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > count {
		workers = count
	}

	jobs := make(chan int, count)
	results := make(chan *Instance, count)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				results <- g.CloneInstance(set, index)
			}
		}()
	}

	for i := 0; i < count; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	instances := make([]*Instance, count)
	done := 0
	for inst := range results {
		done++
		if g.opts.Progress != nil {
			g.opts.Progress(done, count)
		}
		instances[inst.Index] = inst
	}
	return instances
}

func (g *Generator) cloneSerial(set *BelongingSet, count int) []*Instance {
	instances := make([]*Instance, 0, count)
	for i := 0; i < count; i++ {
		if g.opts.Progress != nil {
			g.opts.Progress(i, count)
		}
		instances = append(instances, g.CloneInstance(set, i))
	}
	if g.opts.Progress != nil {
		g.opts.Progress(count, count)
	}
	return instances
}
