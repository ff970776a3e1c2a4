package desktop

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/sprites"
)

var (
	colorRaised = color.RGBA{0xbd, 0xbd, 0xbd, 0xff}
	colorLight  = color.RGBA{0xf4, 0xf4, 0xf4, 0xff}
	colorShadow = color.RGBA{0x7b, 0x7b, 0x7b, 0xff}
	colorSunken = color.RGBA{0xd6, 0xd6, 0xd6, 0xff}
	colorFlag   = color.RGBA{0xe0, 0x20, 0x20, 0xff}
	colorMine   = color.RGBA{0x10, 0x10, 0x10, 0xff}
)

// numberColors follows the classic palette, indexed by digit.
var numberColors = [...]color.RGBA{
	{},
	{0x00, 0x00, 0xff, 0xff},
	{0x00, 0x7b, 0x00, 0xff},
	{0xff, 0x00, 0x00, 0xff},
	{0x00, 0x00, 0x7b, 0xff},
	{0x7b, 0x00, 0x00, 0xff},
	{0x00, 0x7b, 0x7b, 0xff},
	{0x00, 0x00, 0x00, 0xff},
	{0x7b, 0x7b, 0x7b, 0xff},
}

// newAtlas paints both sheets and registers them. Nothing is loaded from
// disk.
func newAtlas() (reg *sprites.Registry[*ebiten.Image], tiles, marks mines.TextureID) {
	reg = sprites.NewRegistry[*ebiten.Image]()
	tiles = reg.Register(sprites.TilesSheet, paintTiles())
	marks = reg.Register(sprites.MarksSheet, paintMarks())
	return reg, tiles, marks
}

func paintTiles() *ebiten.Image {
	w, h := sprites.SheetSize()
	sheet := ebiten.NewImage(w, h)

	f := sprites.Frame(sprites.Hidden)
	x, y, s := float32(f.X), float32(f.Y), float32(f.W)
	vector.DrawFilledRect(sheet, x, y, s, s, colorLight, false)
	vector.DrawFilledRect(sheet, x+6, y+6, s-6, s-6, colorShadow, false)
	vector.DrawFilledRect(sheet, x+6, y+6, s-12, s-12, colorRaised, false)

	f = sprites.Frame(sprites.Opened)
	x, y = float32(f.X), float32(f.Y)
	vector.DrawFilledRect(sheet, x, y, s, s, colorShadow, false)
	vector.DrawFilledRect(sheet, x+2, y+2, s-2, s-2, colorSunken, false)
	return sheet
}

func paintMarks() *ebiten.Image {
	w, h := sprites.SheetSize()
	sheet := ebiten.NewImage(w, h)

	f := sprites.Frame(sprites.Flag)
	x, y := float32(f.X), float32(f.Y)
	vector.DrawFilledRect(sheet, x+30, y+14, 4, 36, colorMine, false)
	vector.DrawFilledRect(sheet, x+14, y+14, 18, 14, colorFlag, false)
	vector.DrawFilledRect(sheet, x+20, y+46, 24, 4, colorMine, false)

	f = sprites.Frame(sprites.Mine)
	x, y = float32(f.X), float32(f.Y)
	vector.DrawFilledCircle(sheet, x+32, y+32, 14, colorMine, true)
	vector.DrawFilledRect(sheet, x+12, y+30, 40, 4, colorMine, false)
	vector.DrawFilledRect(sheet, x+30, y+12, 4, 40, colorMine, false)

	for n := 1; n <= 8; n++ {
		f = sprites.Frame(sprites.NumberKind(n))
		digit := ebiten.NewImage(8, 16)
		ebitenutil.DebugPrint(digit, strconv.Itoa(n))

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(4, 3)
		op.GeoM.Translate(float64(f.X)+18, float64(f.Y)+6)
		op.ColorScale.ScaleWithColor(numberColors[n])
		sheet.DrawImage(digit, op)
	}
	return sheet
}
