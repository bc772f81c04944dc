// Package main provides the shadow CLI for inspecting layout passes over
// YAML tree descriptions.
//
// Usage:
//
//	shadow layout [-v] [--rtl|--ltr] [--fit] file.yaml
//	shadow relayout file.yaml name=width,height...
//	shadow gen [-o out.go] [-pkg name] [-func Name] file.yaml
//	shadow help
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-shadow/internal/config"
	"github.com/grindlemire/go-shadow/pkg/debug"
)

const version = "0.1.0"

const usage = `shadow - run layout passes over shadow tree descriptions

Usage:
  shadow <command> [options] file.yaml

Commands:
  layout      Run one layout pass and print every node's frame
  relayout    Run a pass, change content sizes, run again and print what changed
  gen         Generate Go code that builds the tree
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output
  --rtl       Force a right-to-left base direction
  --ltr       Force a left-to-right base direction
  --fit       Use the terminal size as the maximum size

Examples:
  shadow layout tree.yaml                   Lay out and print frames
  shadow layout --rtl tree.yaml             Same, mirrored
  shadow relayout tree.yaml body=40,10      Print nodes affected by the edit
  shadow gen -pkg ui -o tree_gen.go tree.yaml

Configuration is read from $SHADOW_CONFIG or ~/.config/shadow/config.yaml.
Set SHADOW_DEBUG=/path/to/log to write debug logs.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "layout":
		run(func(cfg config.Config) error { return runLayout(cfg, args) })
	case "relayout":
		run(func(cfg config.Config) error { return runRelayout(cfg, args) })
	case "gen":
		run(func(cfg config.Config) error { return runGen(args) })
	case "version":
		fmt.Printf("shadow version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

// run loads configuration, sets up debug logging and runs fn, exiting
// non-zero on any error.
func run(fn func(config.Config) error) {
	cfg, err := config.Load()
	if err == nil {
		err = initDebug(cfg)
	}
	if err == nil {
		err = fn(cfg)
	}
	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func initDebug(cfg config.Config) error {
	if cfg.Log.Path != "" {
		return debug.Init(cfg.Log.Path)
	}
	return debug.FromEnv()
}
