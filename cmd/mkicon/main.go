// mkicon generates the extension's icon set (icon16.png, icon48.png,
// icon128.png) into ./icons.
// Usage: go run ./cmd/mkicon
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/Mavwarf/carbontracker/internal/icon"
	"github.com/Mavwarf/carbontracker/internal/paths"
)

func main() {
	if err := run(os.Stdout, paths.IconsDirName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, dir string) error {
	if err := paths.EnsureDir(dir); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	for _, size := range icon.Sizes {
		p := filepath.Join(dir, paths.IconFileName(size))
		if err := icon.Generate(size, p); err != nil {
			return err
		}
		fmt.Fprintf(w, "Created %s\n", p)
	}
	fmt.Fprintf(w, "\n%s\n", green(w, "✓ All icons generated successfully!"))
	return nil
}

// --- ANSI color helpers (disabled when NO_COLOR is set or w is not a terminal) ---

func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func green(w io.Writer, s string) string {
	if !useColor(w) {
		return s
	}
	return "\033[32m" + s + "\033[0m"
}
