package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Camera struct {
	Position   [3]float32 `yaml:"position"`
	Target     [3]float32 `yaml:"target"`
	FOVDegrees float32    `yaml:"fov_degrees"`
}

type Config struct {
	Window     Window     `yaml:"window"`
	Camera     Camera     `yaml:"camera"`
	TextureDir string     `yaml:"texture_dir"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Car Interior",
			VSync:  true,
		},
		Camera: Camera{
			Position:   [3]float32{0, 1.2, 2.5},
			Target:     [3]float32{0, 0.7, -1},
			FOVDegrees: 60,
		},
		TextureDir: "textures",
		ClearColor: [4]float32{0.1, 0.1, 0.12, 1},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
