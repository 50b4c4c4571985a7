package raycast

import (
	"fmt"
	"math"

	"gridcast/pkg/core"
	"gridcast/pkg/trig"
)

// Player is the camera pose. Angle is stored unbounded; use Heading for a
// table index.
type Player struct {
	X, Y  float64
	Angle int
	FOV   int
}

// NewPlayer returns a player at (x, y) facing angle with the given field of view.
func NewPlayer(x, y float64, angle, fov int) Player {
	return Player{X: x, Y: y, Angle: angle, FOV: fov}
}

// DefaultPlayer returns the start pose used by the reference map.
func DefaultPlayer() Player {
	return NewPlayer(1.5, 1.5, 0, 60)
}

// MaxFOV bounds the field of view. Wider views put rays behind the player,
// where the fisheye cosine is no longer positive.
const MaxFOV = 180

// Validate checks that the field of view lies in (0, MaxFOV).
func (p Player) Validate() error {
	if p.FOV <= 0 || p.FOV >= MaxFOV {
		return fmt.Errorf("%w: fov %d outside (0, %d)", ErrBadConfig, p.FOV, MaxFOV)
	}
	return nil
}

// Heading returns Angle wrapped into [0, 360).
func (p Player) Heading() int { return trig.Normalize(p.Angle) }

// Rotate turns the player by delta degrees. Positive turns clockwise on a
// y-down screen.
func (p *Player) Rotate(delta int) { p.Angle += delta }

// Move translates the player dist cells along its heading, or against it when
// dist is negative. The move is committed only when the destination tile is
// open; otherwise the player is left untouched and Move returns false.
func (p *Player) Move(m *core.TileMap, t *trig.Tables, dist float64) bool {
	h := p.Heading()
	cx := p.X + dist*t.Cos(h)
	cy := p.Y + dist*t.Sin(h)
	if !m.Open(int(math.Floor(cx)), int(math.Floor(cy))) {
		return false
	}
	p.X, p.Y = cx, cy
	return true
}

// Controls is one tick of pre-debounced directional input.
type Controls struct {
	RotateLeft  bool
	RotateRight bool
	Forward     bool
	Backward    bool
}

// Any reports whether any control is active.
func (c Controls) Any() bool {
	return c.RotateLeft || c.RotateRight || c.Forward || c.Backward
}

// Apply updates p for one tick: rotations by turnStep degrees, translations by
// speed cells gated on the map. It reports whether a requested move was
// rejected by a wall.
func (c Controls) Apply(p *Player, m *core.TileMap, t *trig.Tables, turnStep int, speed float64) (blocked bool) {
	if c.RotateLeft {
		p.Rotate(-turnStep)
	}
	if c.RotateRight {
		p.Rotate(turnStep)
	}
	if c.Forward && !p.Move(m, t, speed) {
		blocked = true
	}
	if c.Backward && !p.Move(m, t, -speed) {
		blocked = true
	}
	return blocked
}
