package pipeline

import (
	"context"

	"customer-support-agent/internal/model"
)

// notify hands the finished context to every observer on its own goroutine.
func (p *Pipeline) notify(ctx context.Context, pc *model.PipelineContext) {
	p.obsMu.RLock()
	defer p.obsMu.RUnlock()
	if p.closed || len(p.observers) == 0 {
		return
	}

	octx := context.WithoutCancel(ctx)
	for _, o := range p.observers {
		p.wg.Add(1)
		go func(o Observer) {
			defer p.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					p.l.Errorf(octx, "%s: observer panicked: %v", LogPrefixNotify, r)
				}
			}()
			o.Observe(octx, pc)
		}(o)
	}
}

// Close stops notifying observers and waits for the running ones.
func (p *Pipeline) Close() {
	p.obsMu.Lock()
	p.closed = true
	p.obsMu.Unlock()
	p.wg.Wait()
}
