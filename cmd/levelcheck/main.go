// Command levelcheck validates level files without opening the editor. It
// prints the status counters and lint warnings of each level and, with
// -print, the canonical export.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/milk9111/gardenpuzzle/editor"
	"github.com/milk9111/gardenpuzzle/export"
	"github.com/milk9111/gardenpuzzle/levels"
	"github.com/milk9111/gardenpuzzle/prefabs"
	"github.com/milk9111/gardenpuzzle/rules"
	"github.com/milk9111/gardenpuzzle/validate"
)

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("levelcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatName := fs.String("format", "data", "Export format for -print: data or code")
	printExport := fs.Bool("print", false, "Print the export of every valid level")
	rulesName := fs.String("rules", rules.DefaultScript, "Lint script under scripts/ (empty disables linting)")
	prefabDir := fs.String("prefabs", prefabs.Dir, "Directory checked for scripts before the built-in copies")
	strict := fs.Bool("strict", false, "Treat lint warnings as failures")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	format, err := export.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	prefabs.Dir = *prefabDir

	var linter *rules.Linter
	if *rulesName != "" {
		linter, err = rules.Load(*rulesName)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	names := fs.Args()
	if len(names) == 0 {
		names = levels.Names()
	}

	failed := 0
	for _, name := range names {
		if !checkLevel(name, format, linter, *printExport, *strict, stdout) {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(stdout, "%d of %d levels failed\n", failed, len(names))
		return 1
	}
	return 0
}

func checkLevel(name string, format export.Format, linter *rules.Linter, printExport, strict bool, out io.Writer) bool {
	lvl, err := editor.OpenLevel(name)
	if err != nil {
		fmt.Fprintf(out, "%s: FAIL %v\n", name, err)
		return false
	}

	stats := validate.Compute(lvl)
	fmt.Fprintf(out, "%s: %dx%d cans %s, chars %s\n", name, lvl.Cols, lvl.Rows, stats.CanStatus(), stats.CharacterStatus())

	ok := true
	if linter != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		warnings, err := linter.Lint(ctx, lvl)
		cancel()
		if err != nil {
			fmt.Fprintf(out, "  lint error: %v\n", err)
			ok = false
		}
		for _, w := range warnings {
			fmt.Fprintf(out, "  warn: %s\n", w)
		}
		if strict && len(warnings) > 0 {
			ok = false
		}
	}

	text, err := export.Generate(lvl, format)
	if err != nil {
		fmt.Fprintf(out, "  FAIL %v\n", err)
		return false
	}
	if printExport {
		fmt.Fprintln(out, text)
	}
	return ok
}

