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
	DataDir string `env:"WOLFSTORY_DATA"`
	Day     int
}

func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("missing -dir")
	}
	return nil
}

func defaultConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{Day: -1}
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

	fs.StringVar(&cfg.DataDir, "dir", cfg.DataDir, "Playdata directory produced by archive-convert")
	fs.IntVar(&cfg.Day, "day", cfg.Day, "Dump one period's elements instead of the story index")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nExamples:")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/story-dump -dir playdata/")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/story-dump -dir playdata/ -day 1")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DataDir != "" {
		cfg.DataDir = filepath.Clean(cfg.DataDir)
	}
	return cfg, nil
}
