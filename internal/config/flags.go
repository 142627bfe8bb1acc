// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/bethropolis/brackets/internal/logger"
	"github.com/bethropolis/brackets/internal/utils"
)

// Flags holds values parsed from command-line flags.
// ApplyOverrides only copies flags that were set on the command line.
type Flags struct {
	set *flag.FlagSet

	ConfigFilePath *string
	Version        *bool
	View           *bool
	LogLevel       *string
	LogFilePath    *string
	TabWidth       *int
	ScrollOff      *int
	ThemeFile      *string
	EnableTags     *string
	DisableTags    *string
	EnablePkgs     *string
	DisablePkgs    *string
	EnableFiles    *string
	DisableFiles   *string
	DebugLog       *bool

	SystemClipboard *bool
	PlainText       *bool
	NoMismatch      *bool
	NoMatching      *bool
	MaxScanSteps    *int
}

// NewFlags defines the command-line flags on a fresh FlagSet.
func NewFlags(name string, errorHandling flag.ErrorHandling) *Flags {
	f := &Flags{set: flag.NewFlagSet(name, errorHandling)}
	f.DefineFlags()
	return f
}

// DefineFlags sets up the command-line flags and associates them with the Flags struct fields.
func (f *Flags) DefineFlags() {
	s := f.set
	f.ConfigFilePath = s.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = s.Bool("version", false, "Show version information and exit")
	f.View = s.Bool("view", false, "Open the interactive viewer instead of printing a report")
	f.LogLevel = s.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = s.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.TabWidth = s.Int("tabwidth", 0, "Number of spaces per tab - Overrides config file")
	f.ScrollOff = s.Int("scrolloff", -1, "Lines of context above/below cursor - Overrides config file")
	f.ThemeFile = s.String("theme", "", "Path to a TOML theme file - Overrides config file")
	f.EnableTags = s.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = s.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = s.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = s.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = s.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = s.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = s.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")
	f.SystemClipboard = s.Bool("system-clipboard", false, "Copy matched blocks to the system clipboard")
	f.PlainText = s.Bool("plain", false, "Ignore syntax and match brackets in raw text")
	f.NoMismatch = s.Bool("no-mismatch", false, "Show mismatched brackets as unmatched")
	f.NoMatching = s.Bool("no-highlight", false, "Disable bracket highlighting in the viewer")
	f.MaxScanSteps = s.Int("max-steps", 0, "Maximum brackets examined per query - Overrides config file")
}

// Parse parses args (without the program name) and returns the remaining
// non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f.set.Args(), nil
}

// Usage prints the flag defaults.
func (f *Flags) Usage() {
	f.set.Usage()
}

// SetUsage replaces the usage function of the FlagSet.
func (f *Flags) SetUsage(fn func()) {
	f.set.Usage = fn
}

// SetOutput redirects usage and error messages.
func (f *Flags) SetOutput(w io.Writer) {
	f.set.SetOutput(w)
}

// PrintDefaults writes the flag help to the FlagSet output.
func (f *Flags) PrintDefaults() {
	f.set.PrintDefaults()
}

// ApplyOverrides updates the Config struct with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	// Visit only processes flags that were actually set
	f.set.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "scrolloff":
			if *f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = *f.ScrollOff
			}
		case "theme":
			cfg.Editor.ThemeFile = *f.ThemeFile
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "plain":
			cfg.Brackets.PlainText = *f.PlainText
		case "no-mismatch":
			cfg.Brackets.HighlightMismatch = !*f.NoMismatch
		case "no-highlight":
			cfg.Brackets.HighlightMatching = !*f.NoMatching
		case "max-steps":
			if *f.MaxScanSteps > 0 {
				cfg.Brackets.MaxScanSteps = *f.MaxScanSteps
			}
		case "log-tags":
			cfg.Logger.EnabledTags = utils.SplitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = utils.SplitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = utils.SplitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = utils.SplitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = utils.SplitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = utils.SplitCommaList(*f.DisableFiles)
		}
	})
}
