package clipboard

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/passout/internal/logger"
)

// Clearer empties the clipboard.
type Clearer interface {
	Clear(ctx context.Context) error
}

// ExpiryJob clears the clipboard once after a delay on a background
// goroutine. The job is idle until Start is called.
type ExpiryJob struct {
	clearer Clearer
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	err    error
	wg     sync.WaitGroup
}

// NewExpiryJob creates an ExpiryJob that calls clearer.Clear when it fires.
func NewExpiryJob(clearer Clearer, log *logger.Logger) *ExpiryJob {
	return &ExpiryJob{clearer: clearer, logger: log}
}

// Start stops any pending clear, then launches a goroutine that clears after
// delay. If ctx is cancelled first the clear happens immediately.
func (j *ExpiryJob) Start(ctx context.Context, delay time.Duration) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.err = nil
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTimer(delay)
		defer t.Stop()

		select {
		case <-jobCtx.Done():
			return
		case <-ctx.Done():
			j.logger.Info().Msg("interrupted, clearing clipboard now")
			j.setErr(j.clearer.Clear(context.WithoutCancel(ctx)))
		case <-t.C:
			// an interrupt arriving mid-clear must not abort the writes
			j.setErr(j.clearer.Clear(context.WithoutCancel(ctx)))
		}
	}()
}

// Wait blocks until the pending clear has run or was abandoned and returns
// the clear error, if any.
func (j *ExpiryJob) Wait() error {
	j.wg.Wait()

	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

// Stop abandons the pending clear and blocks until the goroutine has exited.
// Safe to call when the job is not running.
func (j *ExpiryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *ExpiryJob) setErr(err error) {
	j.mu.Lock()
	j.err = err
	j.mu.Unlock()
}
