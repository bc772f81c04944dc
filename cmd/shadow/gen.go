package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/grindlemire/go-shadow/internal/treefile"
)

// runGen implements the gen subcommand.
// It writes Go source that builds the described tree.
func runGen(args []string) error {
	var (
		out     string
		pkg     = "main"
		fn      = ""
		verbose bool
		paths   []string
	)

	// Parse arguments
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-o", "-pkg", "-func":
			if i+1 >= len(args) {
				return fmt.Errorf("%s needs a value", arg)
			}
			i++
			switch arg {
			case "-o":
				out = args[i]
			case "-pkg":
				pkg = args[i]
			case "-func":
				fn = args[i]
			}
		case "-v", "--verbose":
			verbose = true
		default:
			paths = append(paths, arg)
		}
	}
	if len(paths) != 1 {
		return fmt.Errorf("gen takes exactly one file")
	}
	path := paths[0]
	if fn == "" {
		fn = "Build" + exportedName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := treefile.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	src, err := treefile.NewGenerator().Generate(doc, pkg, fn, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if out == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	if verbose {
		fmt.Printf("Generated %s -> %s (%s)\n", path, out, fn)
	}
	return nil
}

// exportedName turns a file stem like "main-window" into "MainWindow".
// Runes that cannot appear in a Go identifier are dropped and start a new
// word.
func exportedName(stem string) string {
	var b strings.Builder
	upper := true
	for _, r := range stem {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "Tree"
	}
	return b.String()
}
