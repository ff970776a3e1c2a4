package mines

// Extent is the side of a cell frame in texture pixels.
const Extent = 64

// TextureID is an opaque handle into a renderer-owned texture registry.
type TextureID uint32

type Vec2 struct {
	X, Y float64
}

// Rect is a frame inside a texture: origin and size in texture pixels.
type Rect struct {
	X, Y, W, H int
}

// Clickable is anything on the board a pointer press can be routed to.
type Clickable interface {
	LeftClick()
	RightClick()
}

var _ Clickable = (*Cell)(nil)

type Cell struct {
	pos   Vec2
	scale float64

	bgTex   TextureID
	bgFrame Rect
	fgTex   TextureID
	fgFrame Rect

	value    Value
	revealed bool
	flagged  bool
}

func NewCell(pos Vec2, bgFrame, fgFrame Rect, bg, fg TextureID) *Cell {
	return &Cell{
		pos:     pos,
		scale:   1,
		bgTex:   bg,
		bgFrame: bgFrame,
		fgTex:   fg,
		fgFrame: fgFrame,
		value:   None,
	}
}

func (c *Cell) Value() Value { return c.value }

// SetValue is meant for board generation only.
func (c *Cell) SetValue(v Value) { c.value = v }

// Revealed reports whether the cell counts as opened for the win check.
func (c *Cell) Revealed() bool { return c.revealed }

// Shown reports whether a left click already reached this cell. It tracks
// the same state as Revealed.
func (c *Cell) Shown() bool { return c.revealed }

func (c *Cell) Flagged() bool { return c.flagged }

// LeftClick opens the cell. It never touches the neighbours.
func (c *Cell) LeftClick() {
	c.revealed = true
}

// RightClick toggles the flag marker on a closed cell.
func (c *Cell) RightClick() {
	if c.revealed {
		return
	}
	c.flagged = !c.flagged
}

func (c *Cell) Pos() Vec2 { return c.pos }

func (c *Cell) BgTexture() TextureID       { return c.bgTex }
func (c *Cell) SetBgTexture(tex TextureID) { c.bgTex = tex }
func (c *Cell) FgTexture() TextureID       { return c.fgTex }
func (c *Cell) SetFgTexture(tex TextureID) { c.fgTex = tex }

func (c *Cell) BgFrame() Rect        { return c.bgFrame }
func (c *Cell) SetBgFrame(rect Rect) { c.bgFrame = rect }
func (c *Cell) FgFrame() Rect        { return c.fgFrame }
func (c *Cell) SetFgFrame(rect Rect) { c.fgFrame = rect }

func (c *Cell) Scale() float64         { return c.scale }
func (c *Cell) SetScale(scale float64) { c.scale = scale }

// Size is the side of the cell in world pixels.
func (c *Cell) Size() float64 {
	return Extent * c.scale
}

// Bounds returns the world-space box of the cell, min inclusive and max
// exclusive.
func (c *Cell) Bounds() (lo, hi Vec2) {
	s := c.Size()
	return c.pos, Vec2{c.pos.X + s, c.pos.Y + s}
}

// Contains reports whether the world pixel (x, y) falls on the cell.
func (c *Cell) Contains(x, y float64) bool {
	lo, hi := c.Bounds()
	return lo.X <= x && x < hi.X && lo.Y <= y && y < hi.Y
}

// BgRects returns the source frame and the destination box for drawing the
// background.
func (c *Cell) BgRects() (src Rect, dst Rect) {
	return c.bgFrame, c.dst(c.bgFrame)
}

// FgRects is BgRects for the foreground.
func (c *Cell) FgRects() (src Rect, dst Rect) {
	return c.fgFrame, c.dst(c.fgFrame)
}

func (c *Cell) dst(frame Rect) Rect {
	return Rect{
		X: int(c.pos.X),
		Y: int(c.pos.Y),
		W: int(float64(frame.W) * c.scale),
		H: int(float64(frame.H) * c.scale),
	}
}
