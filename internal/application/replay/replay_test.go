package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sightline/internal/application/state"
	"github.com/younwookim/sightline/internal/application/system"
	"github.com/younwookim/sightline/internal/infrastructure/config"
)

func TestFrameInput_RoundTripsInput(t *testing.T) {
	in := system.InputState{
		Left:    true,
		Jump:    true,
		Sprint:  true,
		Fire:    true,
		TargetX: 123.5,
		TargetY: 456,
		Pause:   true,
	}

	fi := NewFrame(7, in)
	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Input())
}

func TestFrameInput_OmitsIdleFields(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, TX: 10, TY: 20})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":3,"tx":10,"ty":20}`, string(data))
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Level:   "test",
		Frames: []FrameInput{
			{F: 0, L: true, TX: 100, TY: 100},
			{F: 1, R: true, J: true, TX: 110, TY: 95},
			{F: 2, FR: true, TX: 120, TY: 90},
		},
	}

	replayer := NewReplayer(data)

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)
	assert.Equal(t, 100.0, input.TargetX)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.Jump)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Fire)
	assert.Equal(t, 90.0, input.TargetY)

	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_FrameBookkeeping(t *testing.T) {
	data := CreateTestReplayData(5, 100, 100)
	replayer := NewReplayer(data)

	assert.Equal(t, 5, replayer.TotalFrames())
	assert.Equal(t, int64(12345), replayer.Seed())
	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 2, replayer.CurrentFrame())

	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.Equal(t, 100.0, input.TargetX)
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")
	want := CreateTestReplayData(3, 50, 60)

	raw, err := json.Marshal(want)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	got, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	_, err = LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = LoadReplay(path)
	assert.Error(t, err)
}

func testLevel() *config.LevelConfig {
	return &config.LevelConfig{
		ID:   "finish",
		Grid: []string{"0000", "2300", "0000", "1111"},
	}
}

func TestRun_ReachesFinish(t *testing.T) {
	tuning, err := config.DefaultTuning()
	require.NoError(t, err)

	data := CreateTestReplayData(10, 300, 85)
	for i := range data.Frames {
		data.Frames[i].R = true
	}
	data.Frames[0].FR = true

	sum, err := Run(data, tuning, testLevel(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Frames, "stops once the level ends")
	assert.Equal(t, len(data.Frames), sum.Total)
	assert.Equal(t, state.Complete, sum.Final.Status)
	assert.Equal(t, 0, sum.Shots, "fire cooldown runs from level start")
}

func TestRun_IsDeterministic(t *testing.T) {
	tuning, err := config.DefaultTuning()
	require.NoError(t, err)
	levelCfg, err := config.EmbeddedLoader().LoadLevel("tutorial")
	require.NoError(t, err)

	data := CreateTestReplayData(600, 700, 300)
	for i := range data.Frames {
		data.Frames[i].R = i%120 < 60
		data.Frames[i].L = i%120 >= 60
		data.Frames[i].J = i%45 == 0
		data.Frames[i].FR = i%30 == 0
	}

	a, err := Run(data, tuning, levelCfg, nil)
	require.NoError(t, err)
	b, err := Run(data, tuning, levelCfg, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_BadLevel(t *testing.T) {
	tuning, err := config.DefaultTuning()
	require.NoError(t, err)

	_, err = Run(CreateTestReplayData(1, 0, 0), tuning, &config.LevelConfig{ID: "bad"}, nil)
	assert.ErrorIs(t, err, system.ErrGridShape)
}
