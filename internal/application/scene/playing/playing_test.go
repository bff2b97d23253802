package playing

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sightline/internal/application/replay"
	"github.com/younwookim/sightline/internal/application/sim"
	"github.com/younwookim/sightline/internal/application/state"
	"github.com/younwookim/sightline/internal/infrastructure/config"
)

type savedScore struct {
	level     string
	score     int
	completed bool
}

type fakeStore struct {
	saved []savedScore
	err   error
}

func (s *fakeStore) SaveScore(level string, score int, completed bool) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, savedScore{level, score, completed})
	return int64(len(s.saved)), nil
}

type fakeWatcher struct {
	names []string
	errs  []error
}

func (w *fakeWatcher) PollError() error {
	if len(w.errs) == 0 {
		return nil
	}
	err := w.errs[0]
	w.errs = w.errs[1:]
	return err
}

func (w *fakeWatcher) Poll() (string, bool) {
	if len(w.names) == 0 {
		return "", false
	}
	name := w.names[0]
	w.names = w.names[1:]
	return name, true
}

func finishLevel() *config.LevelConfig {
	return &config.LevelConfig{
		ID:   "finish",
		Grid: []string{"0000", "2300", "0000", "1111"},
	}
}

func createTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	tuning, err := config.DefaultTuning()
	require.NoError(t, err)
	opts.Tuning = tuning
	if opts.Level == nil {
		opts.Level = finishLevel()
	}
	if opts.Seed == 0 {
		opts.Seed = 12345
	}

	p, err := New(opts)
	require.NoError(t, err)
	return p
}

func TestNew(t *testing.T) {
	p := createTestPlaying(t, Options{})

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, "finish", p.World().LevelID())
	assert.Nil(t, p.recorder)
}

func TestNew_BadLevel(t *testing.T) {
	tuning, err := config.DefaultTuning()
	require.NoError(t, err)

	_, err = New(Options{Tuning: tuning, Level: &config.LevelConfig{ID: "bad", Grid: []string{"000"}}})
	assert.Error(t, err)
}

func TestNew_EmbeddedLevel(t *testing.T) {
	level, err := config.EmbeddedLoader().LoadLevel("tutorial")
	require.NoError(t, err)

	p := createTestPlaying(t, Options{Level: level})
	assert.Equal(t, "tutorial", p.World().LevelID())
}

func TestAdvance_CompletesAndSavesOnce(t *testing.T) {
	store := &fakeStore{}
	p := createTestPlaying(t, Options{Store: store})

	var res sim.StepResult
	for i := 0; i < 3; i++ {
		res = p.Advance(sim.Input{Right: true})
	}
	assert.Equal(t, state.Complete, res.Status)
	assert.Equal(t, state.StateLevelClear, p.State())

	again := p.Advance(sim.Input{Right: true})
	assert.Equal(t, res.Tick, again.Tick, "finished scenes do not step")

	require.Len(t, store.saved, 1)
	assert.Equal(t, savedScore{"finish", 0, true}, store.saved[0])
}

func TestAdvance_StoreErrorIsNotFatal(t *testing.T) {
	p := createTestPlaying(t, Options{Store: &fakeStore{err: assert.AnError}})

	for i := 0; i < 3; i++ {
		p.Advance(sim.Input{Right: true})
	}
	assert.Equal(t, state.StateLevelClear, p.State())
}

func TestAdvance_PauseToggles(t *testing.T) {
	p := createTestPlaying(t, Options{})

	p.Advance(sim.Input{Pause: true})
	assert.Equal(t, state.StatePaused, p.State())

	x := p.World().Player().Rect.X
	p.Advance(sim.Input{Right: true})
	assert.Equal(t, x, p.World().Player().Rect.X, "paused world does not move")

	p.Advance(sim.Input{Pause: true})
	assert.Equal(t, state.StatePlaying, p.State())
}

func TestAdvance_RecordsAndSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p := createTestPlaying(t, Options{RecordPath: path, Seed: 99})

	for i := 0; i < 3; i++ {
		p.Advance(sim.Input{Right: true})
	}
	require.Equal(t, state.StateLevelClear, p.State())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var data replay.ReplayData
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Equal(t, int64(99), data.Seed)
	assert.Equal(t, "finish", data.Level)
	assert.Len(t, data.Frames, 3)
	assert.True(t, data.Frames[0].Input().Right)
	assert.False(t, p.recorder.IsRecording(), "a finished run stops recording")

	require.NoError(t, p.restart())
	assert.True(t, p.recorder.IsRecording())
}

func TestRestart_BumpsSeed(t *testing.T) {
	p := createTestPlaying(t, Options{Seed: 7})
	for i := 0; i < 3; i++ {
		p.Advance(sim.Input{Right: true})
	}
	require.Equal(t, state.StateLevelClear, p.State())

	require.NoError(t, p.restart())
	assert.Equal(t, int64(8), p.seed)
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 0.0, p.World().Player().Rect.X)
}

func TestPollReload(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/finish.json": &fstest.MapFile{Data: []byte(`{"grid": ["0200", "0300", "1111"]}`)},
		"levels/other.json":  &fstest.MapFile{Data: []byte(`{"grid": ["2"]}`)},
	}
	watcher := &fakeWatcher{names: []string{"other", "finish"}}
	p := createTestPlaying(t, Options{
		Loader:  config.NewFSLoader(fsys, "levels"),
		Watcher: watcher,
	})

	p.pollReload()

	assert.Empty(t, watcher.names, "every pending change is drained")
	assert.Equal(t, "finish", p.World().LevelID())
	assert.Equal(t, 50.0, p.World().Player().Rect.X, "spawn moved one column right")
}

func TestPollReload_KeepsLevelOnError(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/finish.json": &fstest.MapFile{Data: []byte(`{"grid": ["0000"]}`)},
	}
	p := createTestPlaying(t, Options{
		Loader:  config.NewFSLoader(fsys, "levels"),
		Watcher: &fakeWatcher{names: []string{"finish"}},
	})

	p.pollReload()

	assert.Len(t, p.World().Level().Finishes, 1, "broken edit leaves the running level alone")
	assert.Equal(t, 4, len(p.opts.Level.Grid))
}

func TestPollReload_RestoresSeedOnError(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/finish.json": &fstest.MapFile{Data: []byte(`{"grid": ["0000"]}`)},
	}
	p := createTestPlaying(t, Options{
		Seed:    7,
		Loader:  config.NewFSLoader(fsys, "levels"),
		Watcher: &fakeWatcher{names: []string{"finish"}},
	})
	world := p.World()

	p.pollReload()

	assert.Equal(t, int64(7), p.seed)
	assert.Same(t, world, p.World())
}

func TestPollReload_RestartsRecording(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/finish.json": &fstest.MapFile{Data: []byte(`{"grid": ["0200", "0300", "1111"]}`)},
	}
	path := filepath.Join(t.TempDir(), "run.json")
	p := createTestPlaying(t, Options{
		Seed:       7,
		RecordPath: path,
		Loader:     config.NewFSLoader(fsys, "levels"),
		Watcher:    &fakeWatcher{names: []string{"finish"}},
	})
	p.Advance(sim.Input{})
	p.Advance(sim.Input{})

	p.pollReload()

	saved, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, saved.Frames, 2, "frames before the edit are saved")
	assert.Equal(t, int64(7), saved.Seed)

	assert.Equal(t, int64(8), p.seed)
	assert.Equal(t, 0, p.recorder.FrameCount())
	assert.Equal(t, p.seed, p.recorder.Data().Seed)
}

func TestPollReload_LogsWatcherErrors(t *testing.T) {
	var buf bytes.Buffer
	watcher := &fakeWatcher{errs: []error{errors.New("queue overflow"), errors.New("bad fd")}}
	p := createTestPlaying(t, Options{
		Loader:  config.NewFSLoader(fstest.MapFS{}, "levels"),
		Watcher: watcher,
		Logger:  log.New(&buf),
	})

	p.pollReload()

	assert.Empty(t, watcher.errs)
	assert.Contains(t, buf.String(), "level watcher error")
	assert.Contains(t, buf.String(), "queue overflow")
	assert.Contains(t, buf.String(), "bad fd")
}
