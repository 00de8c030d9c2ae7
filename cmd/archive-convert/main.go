// Command archive-convert turns one village archive XML document into
// a playdata directory: playdata.json plus one period-<day>.json per
// period.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fogbound/wolfstory/archive"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	villagePath := filepath.Join(cfg.OutputDir, playdata.VillageFile)
	if !cfg.Overwrite && fileutils.FileExists(villagePath) {
		fmt.Fprintf(os.Stderr, "playdata already exists: %s (use -overwrite)\n", villagePath)
		os.Exit(1)
	}

	res, err := archive.Convert(ctx, cfg.InputPath, cfg.OutputDir, archive.Options{
		Pretty:   cfg.Pretty,
		DirMode:  0o755,
		FileMode: 0o644,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "periods_written=%d public_talks=%d bytes_written=%d out_dir=%s\n",
		res.PeriodsWritten, res.PublicTalks, res.BytesWritten, cfg.OutputDir)
}
