// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sightline/internal/application/scene"
	"github.com/younwookim/sightline/internal/application/sim"
	"github.com/younwookim/sightline/internal/application/state"
	"github.com/younwookim/sightline/internal/application/system"
	"github.com/younwookim/sightline/internal/domain/entity"
	"github.com/younwookim/sightline/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorPlatform   = color.RGBA{80, 80, 100, 255}
	colorFinish     = color.RGBA{255, 215, 0, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorEnemyAlert = color.RGBA{255, 60, 60, 255}
	colorProjectile = color.RGBA{255, 200, 100, 255}
	colorEnemyShot  = color.RGBA{255, 100, 100, 255}
	colorBarBG      = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorStaminaFG  = color.RGBA{100, 150, 255, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 160}
)

const (
	aimLength = 3.0 // aim vector scale for an enemy's line of fire
	barWidth  = 200.0
	barTop    = 10.0
)

// ScoreSaver persists the result of a finished run
type ScoreSaver interface {
	SaveScore(level string, score int, completed bool) (int64, error)
}

// LevelSource reports names of level files that changed on disk
type LevelSource interface {
	Poll() (string, bool)
	PollError() error
}

// Options configures a Playing scene. Loader, Store and Watcher are
// optional.
type Options struct {
	Tuning     *config.TuningConfig
	Level      *config.LevelConfig
	Loader     *config.Loader
	Settings   config.Settings
	Seed       int64 // 0 picks a time-based seed
	RecordPath string
	Store      ScoreSaver
	Watcher    LevelSource
	Logger     *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	opts        Options
	world       *sim.World
	clock       *sim.TickClock
	inputSystem *system.InputSystem
	state       state.GameState
	last        sim.StepResult
	saved       bool
	screenW     int
	screenH     int
	logger      *log.Logger

	// Deterministic RNG
	seed int64

	// Input recording
	recorder *Recorder
}

// New creates a new Playing scene
func New(opts Options) (*Playing, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p := &Playing{
		opts:        opts,
		inputSystem: system.NewInputSystem(opts.Tuning),
		screenW:     opts.Tuning.Display.ScreenWidth,
		screenH:     opts.Tuning.Display.ScreenHeight,
		logger:      logger,
		seed:        seed,
	}
	if err := p.start(); err != nil {
		return nil, err
	}
	return p, nil
}

// start builds a fresh world on a fresh clock from the current seed
func (p *Playing) start() error {
	clock := sim.NewTickClock(p.opts.Tuning.Display.TPS)
	world, err := sim.New(sim.Context{
		Clock:  clock,
		RNG:    rand.New(rand.NewSource(p.seed)),
		SFX:    p.opts.Settings.SoundEffects,
		Logger: p.logger,
	}, p.opts.Tuning, p.opts.Level)
	if err != nil {
		return fmt.Errorf("failed to start level: %w", err)
	}

	p.clock = clock
	p.world = world
	p.state = state.StatePlaying
	p.saved = false
	p.last = sim.StepResult{}

	if p.opts.RecordPath != "" {
		p.recorder = NewRecorder(p.seed, p.opts.Level.ID, p.opts.Tuning.Display.TPS)
		p.logger.Info("recording enabled", "path", p.opts.RecordPath, "seed", p.seed)
	}
	return nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return nil, scene.ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}
	p.pollReload()

	switch p.state {
	case state.StateGameOver, state.StateLevelClear:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			if err := p.restart(); err != nil {
				return nil, err
			}
		}
	default:
		p.Advance(p.inputSystem.GetInput())
	}

	return nil, nil
}

// Advance runs one tick with the given input
func (p *Playing) Advance(in sim.Input) sim.StepResult {
	if p.state == state.StateGameOver || p.state == state.StateLevelClear {
		return p.last
	}

	p.clock.Tick()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	res := p.world.Step(in)
	p.last = res
	p.state = state.FromStatus(res.Status, res.Paused)

	if res.Status.Finished() && !p.saved {
		p.saved = true
		p.saveScore(res)
		p.saveRecording()
		if p.recorder != nil {
			p.recorder.Stop()
		}
	}
	return res
}

// State returns the screen state
func (p *Playing) State() state.GameState { return p.state }

// World returns the running world
func (p *Playing) World() *sim.World { return p.world }

func (p *Playing) restart() error {
	p.seed++
	return p.start()
}

// pollReload restarts the level when its file changed on disk
func (p *Playing) pollReload() {
	if p.opts.Watcher == nil || p.opts.Loader == nil {
		return
	}
	for err := p.opts.Watcher.PollError(); err != nil; err = p.opts.Watcher.PollError() {
		p.logger.Warn("level watcher error", "err", err)
	}
	for {
		name, ok := p.opts.Watcher.Poll()
		if !ok {
			return
		}
		if name != p.world.LevelID() {
			continue
		}
		p.reload(name)
	}
}

// reload restarts on the edited level with a fresh seed and recording, so
// every recording covers a single level layout. A broken edit keeps the
// running level.
func (p *Playing) reload(name string) {
	path := p.opts.Loader.LevelPath(name)
	cfg, err := p.opts.Loader.LoadLevel(name)
	if err != nil {
		p.logger.Warn("level reload failed", "level", name, "path", path, "err", err)
		return
	}

	if !p.saved {
		p.saveRecording()
	}
	prev, prevSeed := p.opts.Level, p.seed
	p.opts.Level = cfg
	if err := p.restart(); err != nil {
		p.opts.Level, p.seed = prev, prevSeed
		p.logger.Warn("level reload failed", "level", name, "path", path, "err", err)
		return
	}
	p.logger.Info("level reloaded", "level", name, "path", path, "seed", p.seed)
}

func (p *Playing) saveScore(res sim.StepResult) {
	if p.opts.Store == nil {
		return
	}
	completed := res.Status == state.Complete
	if _, err := p.opts.Store.SaveScore(p.world.LevelID(), res.Score, completed); err != nil {
		p.logger.Warn("failed to save score", "err", err)
		return
	}
	p.logger.Info("score saved", "level", p.world.LevelID(), "score", res.Score, "completed", completed)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Warn("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	level := p.world.Level()
	for _, pl := range level.Platforms {
		drawRect(screen, pl.Rect.X, pl.Rect.Y, pl.Rect.W, pl.Rect.H, colorPlatform)
	}
	for _, f := range level.Finishes {
		drawRect(screen, f.Rect.X, f.Rect.Y, f.Rect.W, f.Rect.H, colorFinish)
	}
	for _, l := range level.Labels {
		ebitenutil.DebugPrintAt(screen, l.Text, int(l.X), int(l.Y))
	}

	p.drawEnemies(screen, level.Enemies)
	p.drawProjectiles(screen, level.Projectiles)

	if pl := level.Player; !pl.Dead {
		drawRect(screen, pl.Rect.X, pl.Rect.Y, pl.Rect.W, pl.Rect.H, colorPlayer)
	}

	p.drawUI(screen, level.Player)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, fmt.Sprintf("GAME OVER\n\nScore: %d\nR to retry", p.last.Score))
	case state.StateLevelClear:
		p.drawOverlay(screen, fmt.Sprintf("LEVEL CLEAR\n\nScore: %d\nR to play again", p.last.Score))
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, enemies []*entity.Enemy) {
	for _, e := range enemies {
		c := colorEnemy
		if e.Watching {
			c = colorEnemyAlert
			from := e.Rect.Center()
			to := from.Add(e.VectorToPlayer.Scale(aimLength))
			ebitenutil.DrawLine(screen, from.X, from.Y, to.X, to.Y, c)
		}
		drawRect(screen, e.Rect.X, e.Rect.Y, e.Rect.W, e.Rect.H, c)
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, projectiles []*entity.Projectile) {
	playerID := p.world.Player().ID
	for _, proj := range projectiles {
		c := colorEnemyShot
		if proj.Owner == playerID {
			c = colorProjectile
		}
		drawRect(screen, proj.Rect.X, proj.Rect.Y, proj.Rect.W, proj.Rect.H, c)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image, pl *entity.Player) {
	drawBar(screen, barTop, pl.Health()/pl.Stats.MaxHealth, colorHealthFG)
	drawBar(screen, barTop+14, pl.Stamina()/pl.Stats.MaxStamina, colorStaminaFG)

	hud := fmt.Sprintf("Lives: %d  Score: %d", pl.Lives, pl.Score)
	ebitenutil.DebugPrintAt(screen, hud, 10, int(barTop)+28)
	if p.recorder != nil && p.recorder.IsRecording() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REC %d", p.recorder.FrameCount()), p.screenW-80, 10)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	drawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-30)
}

func drawBar(screen *ebiten.Image, y, ratio float64, fg color.Color) {
	ratio = max(0, min(1, ratio))
	drawRect(screen, 10, y, barWidth, 10, colorBarBG)
	drawRect(screen, 10, y, barWidth*ratio, 10, fg)
}

func drawRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	ebitenutil.DrawRect(screen, x, y, w, h, c)
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {}

// OnExit saves an unfinished recording (implements scene.Scene)
func (p *Playing) OnExit() {
	if !p.saved {
		p.saveRecording()
	}
}
