package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellClicks(t *testing.T) {
	c := NewCell(Vec2{0, 0}, Rect{0, 0, 64, 64}, Rect{0, 0, 64, 64}, 1, 2)
	assert.Equal(t, None, c.Value())
	assert.False(t, c.Revealed())
	assert.False(t, c.Shown())

	c.RightClick()
	assert.True(t, c.Flagged())
	c.RightClick()
	assert.False(t, c.Flagged())

	c.LeftClick()
	assert.True(t, c.Revealed())
	assert.True(t, c.Shown())
	c.LeftClick()
	assert.True(t, c.Revealed())

	c.RightClick()
	assert.False(t, c.Flagged(), "revealed cells take no flags")
}

func TestCellAsClickable(t *testing.T) {
	var target Clickable = NewCell(Vec2{}, Rect{}, Rect{}, 0, 0)
	target.LeftClick()
	assert.True(t, target.(*Cell).Revealed())
}

func TestCellGeometry(t *testing.T) {
	c := NewCell(Vec2{10, 20}, Rect{0, 0, 64, 64}, Rect{64, 0, 64, 64}, 1, 2)
	c.SetScale(0.5)

	lo, hi := c.Bounds()
	assert.Equal(t, Vec2{10, 20}, lo)
	assert.Equal(t, Vec2{42, 52}, hi)
	assert.True(t, c.Contains(10, 20))
	assert.True(t, c.Contains(41.9, 51.9))
	assert.False(t, c.Contains(42, 30))

	src, dst := c.FgRects()
	assert.Equal(t, Rect{64, 0, 64, 64}, src)
	assert.Equal(t, Rect{10, 20, 32, 32}, dst)

	src, dst = c.BgRects()
	assert.Equal(t, Rect{0, 0, 64, 64}, src)
	assert.Equal(t, Rect{10, 20, 32, 32}, dst)
}

func TestCellTextures(t *testing.T) {
	c := NewCell(Vec2{}, Rect{}, Rect{}, 1, 2)
	c.SetBgTexture(7)
	c.SetFgTexture(8)
	c.SetBgFrame(Rect{1, 2, 3, 4})
	c.SetFgFrame(Rect{5, 6, 7, 8})

	assert.Equal(t, TextureID(7), c.BgTexture())
	assert.Equal(t, TextureID(8), c.FgTexture())
	assert.Equal(t, Rect{1, 2, 3, 4}, c.BgFrame())
	assert.Equal(t, Rect{5, 6, 7, 8}, c.FgFrame())
}
