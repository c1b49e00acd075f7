package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/lumen2d/assets"
	"github.com/meghashyamc/lumen2d/beam"
	"github.com/meghashyamc/lumen2d/config"
	"github.com/meghashyamc/lumen2d/event"
	"github.com/meghashyamc/lumen2d/logger"
	"github.com/meghashyamc/lumen2d/physics"
)

const (
	screenWidth  = 1200
	screenHeight = 800

	beamThickness = 3.0
)

type Game struct {
	cfg        *config.Config
	logger     logger.Logger
	world      *physics.World
	queue      *event.Queue
	dispatcher *event.Dispatcher
	sim        *beam.Simulation
	shooter    *Shooter
	frame      map[beam.SourceID][]beam.VisibleSegment
}

func NewGame(cfg *config.Config) (*Game, error) {
	log := logger.New()
	world := physics.NewWorld()
	buildLevel(world)

	queue := event.NewQueue()
	dispatcher := event.NewDispatcher()
	sim := beam.NewSimulation(world, queue, dispatcher, log, beam.Params{
		Speed:    cfg.GetBeamSpeed(),
		MaxRange: cfg.GetBeamMaxRange(),
	})

	g := &Game{
		cfg:        cfg,
		logger:     log,
		world:      world,
		queue:      queue,
		dispatcher: dispatcher,
		sim:        sim,
		shooter:    NewShooter(),
	}
	dispatcher.Subscribe(event.BeamDespawned, g)

	log.Info("game initialized", "beam_speed", cfg.GetBeamSpeed(), "max_range", cfg.GetBeamMaxRange())
	return g, nil
}

// OnEvent receives beam lifecycle notifications from the simulation
func (g *Game) OnEvent(e event.Event) {
	g.logger.Debug("beam lifecycle event", "type", string(e.Type), "id", e.Data)
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.queue.Push(event.Event{Type: event.LevelReset})
	}

	if dir, fired := g.shooter.Update(); fired {
		id, err := g.sim.Shoot(g.shooter.Position(), dir, g.shooter.Selected())
		if err != nil {
			g.logger.Error("failed to shoot beam", "err", err.Error())
		} else {
			g.logger.Debug("beam fired", "id", id, "color", g.shooter.Selected().String())
		}
	}

	g.frame = g.sim.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{10, 10, 20, 255})

	g.drawSurfaces(screen)
	g.drawBeams(screen)
	g.drawShooter(screen)
	g.drawHUD(screen)
}

func (g *Game) drawSurfaces(screen *ebiten.Image) {
	for _, surface := range g.world.Surfaces() {
		col := color.RGBA{90, 90, 90, 255}
		if surface.IsReflective() {
			col = color.RGBA{140, 220, 255, 255}
		}
		vector.StrokeLine(screen,
			float32(surface.Start.X), float32(surface.Start.Y),
			float32(surface.End.X), float32(surface.End.Y),
			2, col, true)
	}
}

func (g *Game) drawBeams(screen *ebiten.Image) {
	for id, segments := range g.frame {
		source, ok := g.sim.Source(id)
		if !ok {
			continue
		}
		col := source.Color.BeamColor()

		for _, segment := range segments {
			end := segment.Seg.PointAt(segment.Fraction)
			vector.StrokeLine(screen,
				float32(segment.Seg.Start.X), float32(segment.Seg.Start.Y),
				float32(end.X), float32(end.Y),
				beamThickness, col, true)
		}
	}
}

func (g *Game) drawShooter(screen *ebiten.Image) {
	pos := g.shooter.Position()
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), 8, g.shooter.Selected().ButtonColor(), true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	selectedText := fmt.Sprintf("Color: %s (keys 1-4)", g.shooter.Selected().String())
	op := &text.DrawOptions{}
	op.GeoM.Translate(20, 30)
	op.ColorScale.ScaleWithColor(g.shooter.Selected().ButtonColor())
	text.Draw(screen, selectedText, assets.HUDFont, op)

	beamsText := fmt.Sprintf("Active beams: %d", g.sim.ActiveBeams())
	op2 := &text.DrawOptions{}
	op2.GeoM.Translate(20, 60)
	op2.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, beamsText, assets.HUDFont, op2)

	instructionText := "Click to shoot, R to reset"
	op3 := &text.DrawOptions{}
	op3.GeoM.Translate(20, screenHeight-30)
	op3.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, instructionText, assets.HUDFont, op3)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
