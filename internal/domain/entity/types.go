package entity

import (
	"time"

	"github.com/younwookim/sightline/internal/domain/geom"
)

// EntityID is a unique identifier for an entity within a level
type EntityID uint32

// NoEntity is the zero ID, never assigned to a live entity
const NoEntity EntityID = 0

// TileCode is a cell value of a level grid
type TileCode int

const (
	TileEmpty TileCode = iota
	TilePlatform
	TilePlayerSpawn
	TileFinish
	TileEnemySpawn
)

// PlatformKind tags what a static box is used for
type PlatformKind int

const (
	KindPlatform PlatformKind = iota
	KindFinish
)

// Platform is a static box. Solid platforms block movement and sight;
// finish points only end the level.
type Platform struct {
	Rect geom.Rect
	Kind PlatformKind
	Mask *geom.Mask
}

// NewPlatform creates a platform and its pixel mask
func NewPlatform(x, y, w, h float64, kind PlatformKind) *Platform {
	r := geom.NewRect(x, y, w, h)
	return &Platform{
		Rect: r,
		Kind: kind,
		Mask: geom.RectMask(r),
	}
}

// Label is a piece of static text placed by the level author
type Label struct {
	Text string
	X, Y float64
	Size int
}

// Damageable is anything a projectile can strike
type Damageable interface {
	EntityID() EntityID
	Box() geom.Rect
	Hit(amount float64, now time.Duration)
}

// Level owns every platform and entity of one loaded map
type Level struct {
	Name      string
	Width     float64
	Height    float64
	TileSize  float64
	Platforms []*Platform
	Finishes  []*Platform
	Player    *Player
	Enemies   []*Enemy
	Labels    []Label

	// Projectiles in flight, in spawn order
	Projectiles []*Projectile
}

// Enemy returns the enemy with the given ID, or nil
func (l *Level) Enemy(id EntityID) *Enemy {
	for _, e := range l.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}
