// Package config handles walkthrough configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Light    LightConfig    `yaml:"light"`
	Scene    SceneConfig    `yaml:"scene"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	ShowFPS    bool       `yaml:"show_fps"`
	ClearColor [3]float32 `yaml:"clear_color"`
}

// CameraConfig holds the projection and first-person controls.
type CameraConfig struct {
	FOV           float32 `yaml:"fov"` // vertical, degrees
	Near          float32 `yaml:"near"`
	Far           float32 `yaml:"far"`
	Height        float32 `yaml:"height"`         // eye height above ground
	MovementSpeed float32 `yaml:"movement_speed"` // units per second
	RotationSpeed float32 `yaml:"rotation_speed"` // degrees per second
	StartX        float32 `yaml:"start_x"`
	StartZ        float32 `yaml:"start_z"`
}

// TerrainConfig describes the heightmap terrain.
type TerrainConfig struct {
	Size      int     `yaml:"size"`
	Heightmap string  `yaml:"heightmap"`
	Texture   string  `yaml:"texture"`
	Scale     float32 `yaml:"scale"`
	Centered  bool    `yaml:"centered"`
}

// LightConfig describes the single point light.
type LightConfig struct {
	Position  [4]float32 `yaml:"position"`
	Color     [4]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
}

// SceneConfig lists the objects placed on the terrain and the skybox.
type SceneConfig struct {
	Props  []PropConfig `yaml:"props"`
	Skybox SkyboxConfig `yaml:"skybox"`
}

// PropConfig is one primitive mesh standing on the terrain.
// Its Y is the ground height at (X, Z) plus YOffset.
type PropConfig struct {
	Kind    string  `yaml:"kind"` // square, cube or pyramid
	Size    float32 `yaml:"size"`
	Texture string  `yaml:"texture"`
	X       float32 `yaml:"x"`
	Z       float32 `yaml:"z"`
	YOffset float32 `yaml:"y_offset"`
	RX      float32 `yaml:"rx"`
	RY      float32 `yaml:"ry"`
}

// SkyboxConfig names the six inward-facing skybox textures.
type SkyboxConfig struct {
	Enabled bool    `yaml:"enabled"`
	Size    float32 `yaml:"size"`
	Front   string  `yaml:"front"`
	Back    string  `yaml:"back"`
	Left    string  `yaml:"left"`
	Right   string  `yaml:"right"`
	Top     string  `yaml:"top"`
	Bottom  string  `yaml:"bottom"`
}

// DataConfig holds asset locations.
type DataConfig struct {
	AssetDir string `yaml:"asset_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config describing the pit walkthrough.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      900,
			Height:     900,
			VSync:      true,
			ShowFPS:    true,
			ClearColor: [3]float32{0, 0.6, 0.8},
		},
		Camera: CameraConfig{
			FOV:           45,
			Near:          0.1,
			Far:           1000,
			Height:        1.5,
			MovementSpeed: 1,
			RotationSpeed: 90,
		},
		Terrain: TerrainConfig{
			Size:      512,
			Heightmap: "heightmaps/pit.heightmap512.png",
			Texture:   "textures/slate128.png",
			Scale:     1,
			Centered:  true,
		},
		Light: LightConfig{
			Position:  [4]float32{0, 5, 0, 1},
			Color:     [4]float32{1, 1, 1, 1},
			Intensity: 1,
		},
		Scene: SceneConfig{
			Props: []PropConfig{
				{Kind: "pyramid", Size: 1, Texture: "textures/walnut512.png"},
				{Kind: "cube", Size: 1, Texture: "textures/brick512.png", X: 0, Z: -7, YOffset: 0.5},
				{Kind: "cube", Size: 1, Texture: "textures/brick512.png", X: -5, Z: -3, YOffset: 0.5},
				{Kind: "cube", Size: 1, Texture: "textures/brick512.png", X: -4, Z: -5, YOffset: 0.5},
				{Kind: "pyramid", Size: 1, Texture: "textures/stone512.png", X: -2, Z: 3},
				{Kind: "pyramid", Size: 1, Texture: "textures/stone512.png", X: -3, Z: 3},
				{Kind: "pyramid", Size: 1, Texture: "textures/stone512.png", X: -4, Z: 3},
			},
			Skybox: SkyboxConfig{
				Enabled: true,
				Size:    1000,
				Front:   "skyboxes/bluecloud/bluecloud_bk.jpg",
				Back:    "skyboxes/bluecloud/bluecloud_ft.jpg",
				Left:    "skyboxes/bluecloud/bluecloud_lf.jpg",
				Right:   "skyboxes/bluecloud/bluecloud_rt.jpg",
				Top:     "skyboxes/bluecloud/bluecloud_up.jpg",
				Bottom:  "skyboxes/bluecloud/bluecloud_dn.jpg",
			},
		},
		Data: DataConfig{
			AssetDir: "assets",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
