package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given and the file exists.
const DefaultPath = "trapmap.yaml"

// Config holds the default paths and formats of both pipelines.
type Config struct {
	Edges   EdgesConfig   `yaml:"edges"`
	Convert ConvertConfig `yaml:"convert"`
}

// EdgesConfig configures the edge-list compiler
type EdgesConfig struct {
	InputDir string `yaml:"input_dir"`
	Pattern  string `yaml:"pattern"`
	Output   string `yaml:"output"`
	Format   string `yaml:"format"`
}

// ConvertConfig configures the shapefile converter
type ConvertConfig struct {
	Output    string `yaml:"output"`
	AxisOrder string `yaml:"axis_order"`
}

func Default() Config {
	return Config{
		Edges: EdgesConfig{
			InputDir: "InputFiles",
			Pattern:  "*.txt",
			Output:   "js/input_files.js",
			Format:   "js",
		},
		Convert: ConvertConfig{
			Output:    "mapOut.txt",
			AxisOrder: "xyxy",
		},
	}
}

// Load layers defaults, the YAML file at path, a .env file and TRAPMAP_*
// environment variables, in that order. A missing file is only an error when
// explicit is true.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	_ = godotenv.Load(".env")
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Edges.InputDir, "TRAPMAP_INPUT_DIR")
	set(&cfg.Edges.Pattern, "TRAPMAP_PATTERN")
	set(&cfg.Edges.Output, "TRAPMAP_EDGES_OUTPUT")
	set(&cfg.Edges.Format, "TRAPMAP_EDGES_FORMAT")
	set(&cfg.Convert.Output, "TRAPMAP_CONVERT_OUTPUT")
	set(&cfg.Convert.AxisOrder, "TRAPMAP_AXIS_ORDER")
}
