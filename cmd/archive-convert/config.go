package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	InputPath string `env:"WOLFSTORY_IN"`
	OutputDir string `env:"WOLFSTORY_OUT"`
	Pretty    bool   `env:"WOLFSTORY_PRETTY"`
	Overwrite bool
}

func (c Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("missing -in")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("missing -out")
	}
	return nil
}

// defaultConfig seeds the config from the environment (and a .env file
// when present); flags override.
func defaultConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := defaultConfig()
	if err != nil {
		return Config{}, err
	}

	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.InputPath, "in", cfg.InputPath, "Path to the village archive XML document")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory to write playdata JSON artifacts into")
	fs.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Pretty-print each output JSON artifact")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite an existing playdata directory")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nExamples:")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/archive-convert -in village.xml -out playdata/")
		fmt.Fprintln(fs.Output(), "  WOLFSTORY_OUT=playdata/ go run ./cmd/archive-convert -in village.xml -pretty")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.InputPath != "" {
		cfg.InputPath = filepath.Clean(cfg.InputPath)
	}
	if cfg.OutputDir != "" {
		cfg.OutputDir = filepath.Clean(cfg.OutputDir)
	}
	return cfg, nil
}
