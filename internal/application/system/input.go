package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sightline/internal/domain/entity"
	"github.com/younwookim/sightline/internal/domain/geom"
	"github.com/younwookim/sightline/internal/infrastructure/config"
)

// InputState holds the held keys and one-shot triggers for a tick
type InputState struct {
	Left   bool
	Right  bool
	Jump   bool
	Sprint bool

	Fire             bool // fire trigger, aimed at the target point
	TargetX, TargetY float64
	Pause            bool
}

// Target returns the aim point
func (in InputState) Target() geom.Vec2 {
	return geom.Vec2{X: in.TargetX, Y: in.TargetY}
}

// InputSystem turns input into player intents
type InputSystem struct {
	config *config.TuningConfig
	prev   InputState
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.TuningConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Left:    ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:    ebiten.IsKeyPressed(ebiten.KeyW),
		Sprint:  ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
		Fire:    inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		TargetX: float64(mx),
		TargetY: float64(my),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// UpdatePlayer applies the move, jump and sprint intents.
//
// Jump and sprint are edge triggered: pressing raises the intent, releasing
// clears it, and holding does not re-raise an intent the player dropped for
// lack of stamina.
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState) {
	player.MovingLeft = input.Left
	player.MovingRight = input.Right

	if input.Jump && !s.prev.Jump {
		player.Jumping = true
	} else if !input.Jump {
		player.Jumping = false
	}

	if input.Sprint && !s.prev.Sprint {
		player.Sprinting = true
	} else if !input.Sprint {
		player.Sprinting = false
	}

	s.prev = input
}

// Fire shoots from the player toward the input target if triggered.
// A target on the player's own center gives no direction and is ignored.
func (s *InputSystem) Fire(player *entity.Player, input InputState, now time.Duration) (*entity.Projectile, bool) {
	if !input.Fire {
		return nil, false
	}
	vel, err := geom.Vector(player.Rect.Center(), input.Target(), s.config.Projectile.Speed)
	if err != nil {
		return nil, false
	}
	return player.Fire(now, vel)
}
