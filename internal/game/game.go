// Package game wires the walkthrough together and runs its main loop.
package game

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heightwalk/internal/assets"
	"github.com/Faultbox/heightwalk/internal/config"
	"github.com/Faultbox/heightwalk/internal/engine/camera"
	"github.com/Faultbox/heightwalk/internal/engine/debug"
	"github.com/Faultbox/heightwalk/internal/engine/input"
	"github.com/Faultbox/heightwalk/internal/engine/lighting"
	"github.com/Faultbox/heightwalk/internal/engine/model"
	"github.com/Faultbox/heightwalk/internal/engine/renderer"
	"github.com/Faultbox/heightwalk/internal/engine/scene"
	"github.com/Faultbox/heightwalk/internal/engine/terrain"
	"github.com/Faultbox/heightwalk/internal/engine/window"
	"github.com/Faultbox/heightwalk/internal/game/world"
	"github.com/Faultbox/heightwalk/internal/logger"
	"github.com/Faultbox/heightwalk/pkg/math"
)

// Title is the window title prefix.
const Title = "Heightwalk"

// fpsInterval is how many frames the title's FPS figure averages over.
const fpsInterval = 100

// Game is the application context: every subsystem the loop touches.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	scene    *scene.Scene
	world    *world.World
	camera   *camera.FirstPerson
	lens     camera.Lens
	view     math.Mat4
	fps      *FrameCounter
	shots    *debug.ScreenshotCapture
}

// New opens the window and loads the terrain, props and skybox.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("assets", cfg.Data.AssetDir))

	g := &Game{
		cfg:   cfg,
		input: input.New(),
		lens: camera.Lens{
			FOV:  cfg.Camera.FOV,
			Near: cfg.Camera.Near,
			Far:  cfg.Camera.Far,
		},
		fps:   NewFrameCounter(fpsInterval),
		shots: debug.NewScreenshotCapture("screenshots", "heightwalk"),
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just made current.
	w, h := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := g.load(); err != nil {
		g.Close()
		return nil, err
	}

	logger.Info("scene ready", append(g.scene.Stats(), zap.Stringer("scene", g.scene))...)
	return g, nil
}

func (g *Game) load() error {
	cfg := g.cfg

	g.assets = assets.NewManager()
	if err := g.assets.AddDir(cfg.Data.AssetDir); err != nil {
		return err
	}

	var err error
	g.scene, err = scene.New(lighting.Light{
		Position:  cfg.Light.Position,
		Color:     cfg.Light.Color,
		Intensity: cfg.Light.Intensity,
	})
	if err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}

	t, err := terrain.Generate(terrain.Options{
		Size:          cfg.Terrain.Size,
		HeightmapPath: cfg.Terrain.Heightmap,
		TexturePath:   cfg.Terrain.Texture,
		Scale:         cfg.Terrain.Scale,
	}, g.assets, g.scene.TerrainUploader())
	if err != nil {
		return fmt.Errorf("creating terrain: %w", err)
	}
	if cfg.Terrain.Centered {
		t.Center()
	}
	g.scene.Terrain = t

	g.camera = camera.NewFirstPerson()
	g.camera.X, g.camera.Z = cfg.Camera.StartX, cfg.Camera.StartZ
	g.camera.Height = cfg.Camera.Height
	g.camera.MovementSpeed = cfg.Camera.MovementSpeed
	g.camera.RotationSpeed = cfg.Camera.RotationSpeed
	g.world = world.New(g.camera, t)
	g.view = g.camera.ViewMatrix()

	g.loadProps()
	g.loadSkybox()
	g.scene.SetProjection(g.lens.Projection(g.renderer.Aspect()))
	return nil
}

func (g *Game) loadProps() {
	defs := g.cfg.Scene.Props

	props := make([]world.Prop, len(defs))
	for i, p := range defs {
		props[i] = world.Prop{X: p.X, Z: p.Z, YOffset: p.YOffset}
	}
	g.world.PlaceOnGround(props)

	for i, p := range defs {
		geom := model.Build(model.Kind(p.Kind), p.Size)
		if geom == nil {
			logger.Warn("skipping prop of unknown kind", zap.String("kind", p.Kind))
			continue
		}
		m := g.scene.AddProp(geom, g.image(p.Texture))
		m.X, m.Y, m.Z = props[i].X, props[i].Y, props[i].Z
		m.RX, m.RY = p.RX, p.RY
	}
}

func (g *Game) loadSkybox() {
	sb := g.cfg.Scene.Skybox
	if !sb.Enabled {
		return
	}

	textures := map[scene.Face]string{
		scene.FaceFront:  sb.Front,
		scene.FaceBack:   sb.Back,
		scene.FaceLeft:   sb.Left,
		scene.FaceRight:  sb.Right,
		scene.FaceTop:    sb.Top,
		scene.FaceBottom: sb.Bottom,
	}

	for _, f := range scene.SkyboxLayout(sb.Size) {
		m := g.scene.AddSkyboxFace(model.Square(sb.Size), g.image(textures[f.Face]))
		m.X, m.Y, m.Z = g.camera.X+f.X, f.Y, g.camera.Z+f.Z
		m.RX, m.RY = f.RX, f.RY
		g.world.Follow(m)
	}
}

// image loads a texture, logging and returning nil when it is unavailable.
func (g *Game) image(path string) image.Image {
	if path == "" {
		return nil
	}
	img, err := g.assets.LoadImage(path)
	if err != nil {
		logger.Warn("texture unavailable", zap.String("path", path), zap.Error(err))
		return nil
	}
	return img
}

// Run drives the loop until the window closes or a quit key is pressed.
func (g *Game) Run() error {
	g.running = true
	last := time.Now()

	logger.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		if g.input.Update() {
			break
		}
		if _, _, ok := g.input.Resized(); ok {
			g.renderer.Resize(g.window.DrawableSize())
			g.scene.SetProjection(g.lens.Projection(g.renderer.Aspect()))
		}
		if g.input.Held(keyQuit) || g.input.Pressed(keyEscape) {
			break
		}

		if g.world.Step(controls(g.input), float32(dt)) {
			g.view = g.camera.ViewMatrix()
		}

		g.renderer.Begin()
		g.scene.Draw(g.view)
		g.renderer.End()

		if g.input.Pressed(keyScreenshot) {
			g.screenshot()
		}

		g.window.SwapBuffers()

		if fps, ok := g.fps.Tick(dt); ok && g.cfg.Graphics.ShowFPS {
			g.window.SetTitle(fmt.Sprintf("%s - FPS = %.2f", Title, fps))
			pos := g.camera.Position()
			logger.Debug("frame rate",
				zap.Float64("fps", fps),
				zap.Float32("x", pos.X),
				zap.Float32("y", pos.Y),
				zap.Float32("z", pos.Z))
		}
	}

	g.running = false
	return nil
}

func (g *Game) screenshot() {
	path, err := g.shots.Capture(g.renderer.Size())
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases the scene, the assets and the window.
func (g *Game) Close() {
	logger.Info("shutting down")

	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.assets != nil {
		g.assets.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
