package replay

import "github.com/younwookim/sightline/internal/application/system"

// Version is the replay format written by this build
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	J  bool    `json:"j,omitempty"`  // Jump
	S  bool    `json:"s,omitempty"`  // Sprint
	FR bool    `json:"fr,omitempty"` // Fire
	TX float64 `json:"tx"`           // TargetX
	TY float64 `json:"ty"`           // TargetY
	P  bool    `json:"p,omitempty"`  // Pause toggle
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	TPS       int          `json:"tps"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrame captures an input state as frame f
func NewFrame(f int, in system.InputState) FrameInput {
	return FrameInput{
		F:  f,
		L:  in.Left,
		R:  in.Right,
		J:  in.Jump,
		S:  in.Sprint,
		FR: in.Fire,
		TX: in.TargetX,
		TY: in.TargetY,
		P:  in.Pause,
	}
}

// Input converts the frame back to an input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:    fi.L,
		Right:   fi.R,
		Jump:    fi.J,
		Sprint:  fi.S,
		Fire:    fi.FR,
		TargetX: fi.TX,
		TargetY: fi.TY,
		Pause:   fi.P,
	}
}
