package handlers

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/sprites"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

// ClickParams is a press at a world pixel.
type ClickParams struct {
	X      int    `schema:"x,required"`
	Y      int    `schema:"y,required"`
	Button string `schema:"button"`
}

// CellParams is a press on a grid position.
type CellParams struct {
	Row    int    `schema:"row,required"`
	Col    int    `schema:"col,required"`
	Button string `schema:"button"`
}

func ParseClickParams(src url.Values) (ClickParams, mines.Button, error) {
	var p ClickParams
	if err := decoder.Decode(&p, src); err != nil {
		return p, mines.Left, err
	}
	btn, err := ParseButton(p.Button)
	return p, btn, err
}

func ParseCellParams(src url.Values) (CellParams, mines.Button, error) {
	var p CellParams
	if err := decoder.Decode(&p, src); err != nil {
		return p, mines.Left, err
	}
	btn, err := ParseButton(p.Button)
	return p, btn, err
}

// ParseButton accepts "left", "right" or nothing, which means left.
func ParseButton(s string) (mines.Button, error) {
	switch s {
	case "", "left":
		return mines.Left, nil
	case "right":
		return mines.Right, nil
	}
	return mines.Left, fmt.Errorf("invalid button %q", s)
}

type FrameDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type SpriteDTO struct {
	Texture mines.TextureID `json:"texture"`
	Frame   FrameDTO        `json:"frame"`
}

type CellDTO struct {
	Row      int        `json:"row"`
	Col      int        `json:"col"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Scale    float64    `json:"scale"`
	Revealed bool       `json:"revealed"`
	Flagged  bool       `json:"flagged"`
	Value    *int       `json:"value,omitempty"`
	Bg       SpriteDTO  `json:"bg"`
	Fg       *SpriteDTO `json:"fg,omitempty"`
}

type GameDTO struct {
	ID        string                     `json:"id"`
	Rows      int                        `json:"rows"`
	Cols      int                        `json:"cols"`
	Mines     int                        `json:"mines"`
	MinesLeft int                        `json:"mines_left"`
	Lost      bool                       `json:"lost"`
	Won       bool                       `json:"won"`
	Textures  map[string]mines.TextureID `json:"textures"`
	Cells     []CellDTO                  `json:"cells"`
}

type PointDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type MoveDTO struct {
	Hit      bool       `json:"hit"`
	Row      int        `json:"row"`
	Col      int        `json:"col"`
	Button   string     `json:"button"`
	Revealed []PointDTO `json:"revealed"`
	Game     *GameDTO   `json:"game"`
}

func frameDTO(r mines.Rect) FrameDTO {
	return FrameDTO{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// NewGameDTO snapshots b. It dresses the cells, so the caller must hold the
// board exclusively.
func NewGameDTO(id string, b *mines.Board, textures map[string]mines.TextureID) *GameDTO {
	dto := &GameDTO{
		ID:        id,
		Rows:      mines.Rows,
		Cols:      mines.Cols,
		Mines:     mines.NumMines,
		MinesLeft: b.MinesLeft(),
		Lost:      b.Lost(),
		Won:       b.Won(),
		Textures:  textures,
		Cells:     make([]CellDTO, 0, mines.Rows*mines.Cols),
	}
	for p, c := range b.All() {
		showFg := sprites.Dress(c)
		cell := CellDTO{
			Row:      p.Row,
			Col:      p.Col,
			X:        c.Pos().X,
			Y:        c.Pos().Y,
			Scale:    c.Scale(),
			Revealed: c.Revealed(),
			Flagged:  c.Flagged(),
			Bg:       SpriteDTO{Texture: c.BgTexture(), Frame: frameDTO(c.BgFrame())},
		}
		if c.Revealed() || b.Over() {
			v := int(c.Value())
			cell.Value = &v
		}
		if showFg {
			cell.Fg = &SpriteDTO{Texture: c.FgTexture(), Frame: frameDTO(c.FgFrame())}
		}
		dto.Cells = append(dto.Cells, cell)
	}
	return dto
}

func NewMoveDTO(upd mines.Update, game *GameDTO) *MoveDTO {
	dto := &MoveDTO{
		Hit:      upd.Hit,
		Row:      upd.At.Row,
		Col:      upd.At.Col,
		Button:   upd.Button.String(),
		Revealed: make([]PointDTO, 0, len(upd.Revealed)),
		Game:     game,
	}
	for _, p := range upd.Revealed {
		dto.Revealed = append(dto.Revealed, PointDTO{p.Row, p.Col})
	}
	return dto
}
