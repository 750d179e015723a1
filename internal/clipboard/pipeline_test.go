package clipboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/logger"
	"github.com/MKhiriev/passout/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTarget records what was last written to it. A positive slowClear
// makes every empty write take that long and then honour ctx.
type fakeTarget struct {
	name      string
	err       error
	slowClear time.Duration

	mu      sync.Mutex
	content string
	writes  int
}

func (f *fakeTarget) Name() string { return f.name }

func (f *fakeTarget) Write(ctx context.Context, data []byte) error {
	if len(data) == 0 && f.slowClear > 0 {
		time.Sleep(f.slowClear)
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.err != nil {
		return f.err
	}
	f.content = string(data)
	return nil
}

func (f *fakeTarget) Content() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content
}

func (f *fakeTarget) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

// fakeSource serves secrets from a map.
type fakeSource map[string]string

func (s fakeSource) Get(_ context.Context, _ config.Profile, name string) ([]byte, error) {
	secret, ok := s[name]
	if !ok {
		return nil, &store.CredentialError{Name: name, Err: store.ErrCredentialNotFound}
	}
	return []byte(secret), nil
}

func threeTargets() []*fakeTarget {
	return []*fakeTarget{
		{name: SelectionPrimary},
		{name: SelectionSecondary},
		{name: SelectionClipboard},
	}
}

func newTestPipeline(targets []*fakeTarget) *Pipeline {
	ts := make([]Target, len(targets))
	for i, t := range targets {
		ts[i] = t
	}
	p := NewPipeline(fakeSource{"mail": "hunter2"}, ts, logger.Nop())
	p.delayUnit = time.Millisecond
	return p
}

func profileWithDelay(seconds int) config.Profile {
	p := config.DefaultProfile()
	p.Identity = "me@example.com"
	p.ClipClearDelaySeconds = seconds
	return p
}

// ── Load / Clear ─────────────────────────────────────────────────────────────

func TestPipeline_Load_WritesAllTargets(t *testing.T) {
	targets := threeTargets()
	p := newTestPipeline(targets)

	require.NoError(t, p.Load(context.Background(), profileWithDelay(0), "mail"))

	for _, target := range targets {
		assert.Equal(t, "hunter2", target.Content(), target.name)
	}
	assert.Equal(t, []string{"primary", "secondary", "clipboard"}, p.Targets())
}

func TestPipeline_Load_MissingCredential(t *testing.T) {
	targets := threeTargets()
	p := newTestPipeline(targets)

	err := p.Load(context.Background(), profileWithDelay(0), "nope")
	require.ErrorIs(t, err, store.ErrCredentialNotFound)

	for _, target := range targets {
		assert.Zero(t, target.Writes())
	}
}

// TestPipeline_Load_PartialFailure verifies that a failing target is reported
// and the targets that did receive the secret are wiped again.
func TestPipeline_Load_PartialFailure(t *testing.T) {
	targets := threeTargets()
	boom := errors.New("no display")
	targets[1].err = boom
	p := newTestPipeline(targets)

	err := p.Load(context.Background(), profileWithDelay(0), "mail")
	require.ErrorIs(t, err, ErrClipboardWriteFailed)
	require.ErrorIs(t, err, boom)

	var we *WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, SelectionSecondary, we.Target)

	assert.Empty(t, targets[0].Content())
	assert.Empty(t, targets[2].Content())
	assert.Equal(t, 2, targets[0].Writes())
}

func TestPipeline_Clear(t *testing.T) {
	targets := threeTargets()
	p := newTestPipeline(targets)
	ctx := context.Background()

	require.NoError(t, p.Load(ctx, profileWithDelay(0), "mail"))
	require.NoError(t, p.Clear(ctx))

	for _, target := range targets {
		assert.Empty(t, target.Content())
	}
}

func TestPipeline_Clear_JoinsFailures(t *testing.T) {
	targets := threeTargets()
	targets[0].err = errors.New("first")
	targets[2].err = errors.New("third")
	p := newTestPipeline(targets)

	err := p.Clear(context.Background())
	require.ErrorIs(t, err, ErrClipboardWriteFailed)
	assert.Contains(t, err.Error(), "target 'primary'")
	assert.Contains(t, err.Error(), "target 'clipboard'")
	assert.NotContains(t, err.Error(), "target 'secondary'")
}

// ── LoadAndExpire ────────────────────────────────────────────────────────────

func TestPipeline_LoadAndExpire_ZeroDelayKeepsSecret(t *testing.T) {
	targets := threeTargets()
	p := newTestPipeline(targets)

	require.NoError(t, p.LoadAndExpire(context.Background(), profileWithDelay(0), "mail"))

	time.Sleep(20 * time.Millisecond)
	for _, target := range targets {
		assert.Equal(t, "hunter2", target.Content())
		assert.Equal(t, 1, target.Writes())
	}
}

func TestPipeline_LoadAndExpire_ClearsAfterDelay(t *testing.T) {
	targets := threeTargets()
	p := newTestPipeline(targets)

	start := time.Now()
	require.NoError(t, p.LoadAndExpire(context.Background(), profileWithDelay(30), "mail"))

	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	for _, target := range targets {
		assert.Empty(t, target.Content())
		assert.Equal(t, 2, target.Writes())
	}
}

func TestPipeline_LoadAndExpire_CancelClearsNow(t *testing.T) {
	targets := threeTargets()
	p := newTestPipeline(targets)
	p.delayUnit = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	start := time.Now()
	require.NoError(t, p.LoadAndExpire(ctx, profileWithDelay(60), "mail"))

	assert.Less(t, time.Since(start), 5*time.Second)
	for _, target := range targets {
		assert.Empty(t, target.Content())
	}
}

// TestPipeline_LoadAndExpire_InterruptDuringClear verifies that a cancel
// arriving while the timed clear is running does not abort it.
func TestPipeline_LoadAndExpire_InterruptDuringClear(t *testing.T) {
	targets := threeTargets()
	for _, target := range targets {
		target.slowClear = 20 * time.Millisecond
	}
	p := newTestPipeline(targets)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(40*time.Millisecond, cancel)

	require.NoError(t, p.LoadAndExpire(ctx, profileWithDelay(30), "mail"))
	for _, target := range targets {
		assert.Empty(t, target.Content(), target.name)
	}
}

func TestPipeline_ClearDelay(t *testing.T) {
	p := NewPipeline(fakeSource{}, nil, logger.Nop())

	assert.Equal(t, 10*time.Second, p.ClearDelay(config.DefaultProfile()))
	assert.Zero(t, p.ClearDelay(profileWithDelay(0)))
}
