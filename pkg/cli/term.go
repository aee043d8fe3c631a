package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/funvibe/either/internal/config"
	"github.com/mattn/go-isatty"
)

const (
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// colorEnabled reports whether w is a terminal that should get ANSI colors.
func colorEnabled(w io.Writer) bool {
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if config.IsTestMode {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

type printer struct {
	w     io.Writer
	color bool
	width int
}

func (p *printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

func (p *printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

func (p *printer) bold(s string) string { return p.paint(ansiBold, s) }
func (p *printer) cyan(s string) string { return p.paint(ansiCyan, s) }
