//go:build ebiten

package main

import (
	"errors"
	"flag"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	cellSize    = 20
	footerLines = 5
	lineHeight  = 16

	controls = "Space to start/pause, click on cells to convert\n" +
		"Left/A to slow down, Right/D to speed up\n" +
		"Up/W to brighten cells, Down/S to darken"
)

var (
	colorGrid = color.RGBA{0, 100, 240, 255}
	colorDead = color.RGBA{10, 10, 10, 255}
)

// Game adapts a model.World to the ebiten.Game interface.
type Game struct {
	world     *model.World
	frameRate time.Duration
	lastStep  time.Time
	running   bool
	green     uint8
	message   string
}

// Update handles input and advances the world when a frame delay has passed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.world.Toggle(y/cellSize, x/cellSize)
		g.message = ""
	}
	if !g.running {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.frameRate = utils.Slower(g.frameRate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.frameRate = utils.Faster(g.frameRate)
	}
	if (inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW)) && g.green < 245 {
		g.green += 10
	}
	if (inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS)) && g.green > 9 {
		g.green -= 10
	}

	if time.Since(g.lastStep) < g.frameRate {
		return nil
	}
	g.lastStep = time.Now()

	if g.world.LivingCount() == 0 {
		g.running = false
		g.message = "Unfortunately, the cells live no more. Game over!\n" + model.Verdict(g.world.Generation())
		return nil
	}
	g.world.Step()
	return nil
}

// Draw paints every cell as a square with a one pixel grid border.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorGrid)

	alive := color.RGBA{80, g.green, 80, 255}
	grid := g.world.Grid()
	for coord := range grid.AllCoordinates() {
		c := colorDead
		if ok, _ := grid.Alive(coord.Row, coord.Column); ok {
			c = alive
		}
		vector.DrawFilledRect(screen,
			float32(coord.Column*cellSize), float32(coord.Row*cellSize),
			cellSize-1, cellSize-1, c, false)
	}

	footer := grid.Rows() * cellSize
	text := controls
	if g.message != "" {
		text = g.message
	}
	ebitenutil.DebugPrintAt(screen, text, 0, footer)
	ebitenutil.DebugPrintAt(screen, g.world.Summary(), 0, footer+(footerLines-1)*lineHeight)
}

// Layout keeps the logical screen at the grid size plus the footer.
func (g *Game) Layout(int, int) (int, int) {
	grid := g.world.Grid()
	return grid.Columns() * cellSize, (grid.Rows() + footerLines) * cellSize
}

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Printf("using default configuration: %v", err)
		cfg = utils.DefaultConfig()
	}

	world, err := model.NewWorld(cfg.Rows, cfg.Columns, model.NewSeededSource(cfg.SeedOrNow()))
	if err != nil {
		log.Fatalf("failed to create world: %+v", err)
	}

	game := &Game{world: world, frameRate: cfg.FrameRate, green: 210}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Println(model.Verdict(world.Generation()))
}
