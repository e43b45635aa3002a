// Command replayviewer is a minimal debug visualizer for a running
// match.State: it steps the simulation one tick per frame and draws
// every live, selectable entity as a colored rect, tile elevation as background
// shading. It exists to give hajimehoshi/ebiten/v2 a real, exercised
// caller rather than leaving it an unused go.mod entry.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/noise"
	"goldrush/pkg/game/entity"
	"goldrush/pkg/game/mapgen"
	"goldrush/pkg/game/match"
)

const cellPixels = 8

var playerColors = []color.RGBA{
	{R: 0x4f, G: 0x8f, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x60, B: 0x50, A: 0xff},
	{R: 0x60, G: 0xd0, B: 0x60, A: 0xff},
	{R: 0xd0, G: 0xb0, B: 0x30, A: 0xff},
}

var (
	colorGold       = color.RGBA{R: 0xf0, G: 0xd0, B: 0x30, A: 0xff}
	colorBackground = color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff}
)

// viewer implements ebiten.Game: each Update advances the match by exactly
// one tick with no applied inputs, since this is a read-only observer, not
// a lockstep participant.
type viewer struct {
	state *match.State
}

func (v *viewer) Update() error {
	v.state.Tick(nil)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := v.state.Grid
	for y := int32(0); y < g.Height; y++ {
		for x := int32(0); x < g.Width; x++ {
			tile := g.Tile(fixed.Cell{X: x, Y: y})
			shade := uint8(0x18 + int(tile.Elevation)*6)
			vector.DrawFilledRect(screen,
				float32(x*cellPixels), float32(y*cellPixels),
				cellPixels, cellPixels,
				color.RGBA{R: shade, G: shade, B: shade, A: 0xff}, false)
		}
	}

	v.state.Entities.Each(func(id entity.EntityID, e *entity.Entity) {
		if !e.IsSelectable() {
			return
		}
		size := float32(e.CellSize() * cellPixels)
		col := colorGold
		if e.Type != entity.TypeGold && e.Type != entity.TypeMine {
			col = playerColors[int(e.PlayerID)%len(playerColors)]
		}
		margin := float32(1)
		vector.DrawFilledRect(screen,
			float32(e.Cell.X*cellPixels)+margin, float32(e.Cell.Y*cellPixels)+margin,
			size-margin*2, size-margin*2,
			col, false)
	})
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(v.state.Grid.Width) * cellPixels, int(v.state.Grid.Height) * cellPixels
}

func main() {
	seed := flag.Int("seed", 1, "LCG/noise seed")
	players := flag.Int("players", 2, "number of players to spawn")
	width := flag.Int("width", 80, "map width")
	height := flag.Int("height", 80, "map height")
	flag.Parse()

	ev := match.LoadEvent{
		LCGSeed: int32(*seed),
		Noise: match.NoisePayload{
			Width:  int32(*width),
			Height: int32(*height),
			Map:    noise.Generate(uint64(uint32(*seed)), uint32(*width), uint32(*height)),
		},
	}
	st := match.NewState(ev, *players, mapgen.SmallMap)

	ebiten.SetWindowSize(int(st.Grid.Width)*cellPixels, int(st.Grid.Height)*cellPixels)
	ebiten.SetWindowTitle("Gold Rush replay viewer")

	if err := ebiten.RunGame(&viewer{state: st}); err != nil {
		log.Fatal(err)
	}
}
