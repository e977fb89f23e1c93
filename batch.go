package av1txfm

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Block is one forward transform request of a batch.
type Block struct {
	Src    []int16 // residual samples
	Stride int     // row stride of Src
	Out    []int32 // receives Size.CoeffCount() coefficients
	Size   TxSize
	Type   TxType
}

// BlockError reports which block of a batch failed.
type BlockError struct {
	Index int
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("av1txfm: block %d: %v", e.Index, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }

// minBatchPerWorker is the number of blocks below which a batch runs on the
// calling goroutine.
const minBatchPerWorker = 4

// ForwardBatch transforms every block of blocks. Blocks are independent and
// are processed by up to Options.Workers goroutines, each claiming the next
// unprocessed block. Output buffers must not overlap.
//
// On the first failure no further blocks are claimed and the error is
// returned as a *BlockError. Cancelling ctx stops the batch the same way and
// returns ctx.Err(). Blocks claimed before the stop are still completed.
func (e *Engine) ForwardBatch(ctx context.Context, blocks []Block) error {
	if len(blocks) == 0 {
		return ctx.Err()
	}

	numWorkers := e.opts.Workers
	if n := (len(blocks) + minBatchPerWorker - 1) / minBatchPerWorker; numWorkers > n {
		numWorkers = n
	}
	if numWorkers <= 1 {
		for i := range blocks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := e.forwardBlock(&blocks[i]); err != nil {
				return &BlockError{Index: i, Err: err}
			}
		}
		return nil
	}

	var (
		next     atomic.Int64 // index of the next unclaimed block
		stop     atomic.Bool
		errOnce  sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		stop.Store(true)
	}

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for !stop.Load() {
				i := int(next.Add(1) - 1)
				if i >= len(blocks) {
					return
				}
				if err := ctx.Err(); err != nil {
					fail(err)
					return
				}
				if err := e.forwardBlock(&blocks[i]); err != nil {
					fail(&BlockError{Index: i, Err: err})
					return
				}
			}
		}()
	}
	wg.Wait()
	return firstErr
}

func (e *Engine) forwardBlock(b *Block) error {
	return e.Forward(b.Src, b.Stride, b.Out, b.Size, b.Type)
}

// ForwardBatch transforms blocks with the default integer engine.
func ForwardBatch(ctx context.Context, blocks []Block) error {
	return defaultEngine.ForwardBatch(ctx, blocks)
}
