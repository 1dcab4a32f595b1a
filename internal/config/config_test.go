package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 900 || cfg.Graphics.Height != 900 {
		t.Errorf("expected 900x900 window, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.ClearColor != [3]float32{0, 0.6, 0.8} {
		t.Errorf("unexpected clear colour %v", cfg.Graphics.ClearColor)
	}

	if cfg.Camera.FOV != 45 || cfg.Camera.Near != 0.1 || cfg.Camera.Far != 1000 {
		t.Errorf("unexpected projection fov=%v near=%v far=%v", cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	}
	if cfg.Camera.Height != 1.5 {
		t.Errorf("expected eye height 1.5, got %v", cfg.Camera.Height)
	}
	if cfg.Camera.MovementSpeed != 1 || cfg.Camera.RotationSpeed != 90 {
		t.Errorf("unexpected speeds %v / %v", cfg.Camera.MovementSpeed, cfg.Camera.RotationSpeed)
	}

	if cfg.Terrain.Size != 512 {
		t.Errorf("expected terrain size 512, got %d", cfg.Terrain.Size)
	}
	if cfg.Terrain.Scale != 1 || !cfg.Terrain.Centered {
		t.Errorf("expected centred terrain at scale 1, got scale=%v centered=%v", cfg.Terrain.Scale, cfg.Terrain.Centered)
	}

	if cfg.Light.Position != [4]float32{0, 5, 0, 1} {
		t.Errorf("unexpected light position %v", cfg.Light.Position)
	}

	if len(cfg.Scene.Props) != 7 {
		t.Errorf("expected 7 props, got %d", len(cfg.Scene.Props))
	}
	if !cfg.Scene.Skybox.Enabled || cfg.Scene.Skybox.Size != 1000 {
		t.Errorf("unexpected skybox %+v", cfg.Scene.Skybox)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1280
  height: 720
  fullscreen: true

camera:
  fov: 60
  movement_speed: 4

terrain:
  size: 256
  heightmap: "heightmaps/hills.png"
  scale: 2
  centered: false

scene:
  props:
    - kind: cube
      size: 2
      texture: "textures/brick512.png"
      x: 3
      z: 4
      y_offset: 1

logging:
  level: "debug"
  log_file: "walk.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Camera.FOV != 60 || cfg.Camera.MovementSpeed != 4 {
		t.Errorf("camera not loaded: %+v", cfg.Camera)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Camera.Height != 1.5 {
		t.Errorf("expected default eye height to survive, got %v", cfg.Camera.Height)
	}

	if cfg.Terrain.Size != 256 || cfg.Terrain.Scale != 2 || cfg.Terrain.Centered {
		t.Errorf("terrain not loaded: %+v", cfg.Terrain)
	}
	if cfg.Terrain.Heightmap != "heightmaps/hills.png" {
		t.Errorf("unexpected heightmap %s", cfg.Terrain.Heightmap)
	}

	if len(cfg.Scene.Props) != 1 {
		t.Fatalf("expected props to be replaced by the file's list, got %d", len(cfg.Scene.Props))
	}
	p := cfg.Scene.Props[0]
	if p.Kind != "cube" || p.Size != 2 || p.X != 3 || p.Z != 4 || p.YOffset != 1 {
		t.Errorf("unexpected prop %+v", p)
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "walk.log" {
		t.Errorf("logging not loaded: %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "window size"},
		{"zero terrain", func(c *Config) { c.Terrain.Size = 0 }, "terrain size"},
		{"negative scale", func(c *Config) { c.Terrain.Scale = -1 }, "terrain scale"},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }, "clip planes"},
		{"flat fov", func(c *Config) { c.Camera.FOV = 180 }, "fov"},
		{"bad prop", func(c *Config) { c.Scene.Props[0].Kind = "torus" }, "unknown kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen then windowed",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen with -fullscreen")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "window size",
			setup: func() {
				*flagWidth = 1024
				*flagHeight = 768
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 1024 || cfg.Graphics.Height != 768 {
					t.Errorf("expected 1024x768, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "terrain overrides",
			setup: func() {
				*flagAssets = "/srv/walk"
				*flagTerrainSize = 128
				*flagHeightmap = "heightmaps/flat.png"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Data.AssetDir != "/srv/walk" {
					t.Errorf("expected asset dir override, got %s", cfg.Data.AssetDir)
				}
				if cfg.Terrain.Size != 128 {
					t.Errorf("expected terrain size 128, got %d", cfg.Terrain.Size)
				}
				if cfg.Terrain.Heightmap != "heightmaps/flat.png" {
					t.Errorf("expected heightmap override, got %s", cfg.Terrain.Heightmap)
				}
			},
			teardown: func() {
				*flagAssets = ""
				*flagTerrainSize = 0
				*flagHeightmap = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 1000
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// flag beats file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	// file beats default
	if cfg.Graphics.Height != 1000 {
		t.Errorf("expected height 1000 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("terrain:\n  scale: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject zero terrain scale")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Terrain.Size = 64
	cfg.Scene.Props = cfg.Scene.Props[:2]

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	loaded.Scene.Props = nil
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}

	if loaded.Terrain.Size != 64 {
		t.Errorf("expected terrain size 64, got %d", loaded.Terrain.Size)
	}
	if len(loaded.Scene.Props) != 2 {
		t.Errorf("expected 2 props, got %d", len(loaded.Scene.Props))
	}
}
