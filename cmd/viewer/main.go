package main

import (
	"flag"
	"os"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scene-renderer/core"
	"scene-renderer/internal/config"
	"scene-renderer/internal/opengl"
	"scene-renderer/math"
	"scene-renderer/scene"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfgPath := flag.String("config", "config/viewer.yaml", "path to viewer config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *cfgPath).Msg("config not loaded, using defaults")
		cfg = config.Default()
	}

	window, err := core.NewWindow(core.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: true,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("window creation failed")
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("renderer creation failed")
	}

	// One renderer value serves as shader program, texture backend and mesh
	// provider for the scene manager.
	manager := scene.NewManager(renderer, renderer, renderer, scene.CarInteriorScene(cfg.TextureDir))
	manager.Prepare()
	log.Info().
		Int("textures", manager.Textures().Len()).
		Int("materials", manager.Materials().Len()).
		Msg("scene prepared")

	eye := math.NewVec3(cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2])
	target := math.NewVec3(cfg.Camera.Target[0], cfg.Camera.Target[1], cfg.Camera.Target[2])
	clear := core.Color{
		R: cfg.ClearColor[0],
		G: cfg.ClearColor[1],
		B: cfg.ClearColor[2],
		A: cfg.ClearColor[3],
	}

	for !window.ShouldClose() {
		window.PollEvents()
		if window.IsKeyPressed(glfw.KeyEscape) {
			window.Handle.SetShouldClose(true)
		}

		width, height := window.GetFramebufferSize()
		if height == 0 {
			height = 1
		}
		renderer.SetViewport(width, height)
		renderer.BeginFrame(clear)

		view := math.Mat4LookAt(eye, target, math.Vec3Up)
		proj := math.Mat4Perspective(
			math.Radians(cfg.Camera.FOVDegrees),
			float32(width)/float32(height),
			0.1, 100.0,
		)
		renderer.SetViewProjection(view, proj)
		renderer.SetCameraPosition(eye)

		manager.RenderFrame()

		window.SwapBuffers()
	}

	manager.Release()
	renderer.Destroy()
}
