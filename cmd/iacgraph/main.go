package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeroc0d3/iacgraph/internal/cli"
	"github.com/zeroc0d3/iacgraph/internal/ctxlog"
	"github.com/zeroc0d3/iacgraph/internal/hcl"
	"github.com/zeroc0d3/iacgraph/internal/render"
)

// main is the entrypoint for the iacgraph binary.
func main() {
	// Minimal logger until the configured one takes over.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(config.LogLevel, config.LogFormat, os.Stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	loader := hcl.NewLoader()
	blocks, refs, err := loader.Load(ctx, config.Path)
	if err != nil {
		return err
	}
	logger.Info("Configuration loaded.", "blocks", len(blocks), "references", len(refs))

	engine := render.NewEngine(blocks, refs)
	if err := engine.Resolve(ctx); err != nil {
		return err
	}

	exported := engine.Export(!config.SkipHash)

	switch config.Format {
	case "yaml":
		enc := yaml.NewEncoder(outW)
		defer enc.Close()
		return enc.Encode(exported)
	default:
		data, err := json.MarshalIndent(exported, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(outW, string(data))
		return err
	}
}
