package commands

import (
	"os"

	"golang.org/x/term"

	"github.com/colonyops/tagtree/internal/core/config"
)

// Flags holds the global flag values shared by every command.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	NoColor    bool

	// Config is loaded in the Before hook and available to all commands.
	Config *config.Config
}

// ColorEnabled reports whether styled output should be used: color must not
// be disabled by flag, env, or config, and stdout must be a terminal.
func (f *Flags) ColorEnabled() bool {
	if f.NoColor {
		return false
	}
	if f.Config != nil && f.Config.NoColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
