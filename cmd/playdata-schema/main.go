// Command playdata-schema publishes the JSON Schema of the playdata
// artifact formats. The intermediate representation is a stable
// contract (archives already converted on disk must remain loadable),
// so the schema is generated from the same document structs the story
// loader consumes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/fogbound/wolfstory/fileutils"
	"github.com/fogbound/wolfstory/playdata"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	written := 0
	targets := []struct {
		name string
		v    any
	}{
		{"village.schema.json", &playdata.VillageDoc{}},
		{"period.schema.json", &playdata.PeriodDoc{}},
	}
	for _, target := range targets {
		if err := writeSchema(filepath.Join(cfg.OutputDir, target.name), target.v); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		written++
	}

	fmt.Fprintf(os.Stdout, "schemas_written=%d out_dir=%s\n", written, cfg.OutputDir)
}

func writeSchema(path string, v any) error {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(v)
	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema %s: %w", path, err)
	}
	if _, err := fileutils.WriteFileAtomic(path, b, 0o644); err != nil {
		return fmt.Errorf("write schema %s: %w", path, err)
	}
	return nil
}

type Config struct {
	OutputDir string
}

func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("missing -out")
	}
	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config

	fs.SetOutput(os.Stderr)
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory to write the schema files into")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.OutputDir != "" {
		cfg.OutputDir = filepath.Clean(cfg.OutputDir)
	}
	return cfg, nil
}
