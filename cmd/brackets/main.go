// cmd/brackets/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bethropolis/brackets/internal/app"
	"github.com/bethropolis/brackets/internal/bracket"
	"github.com/bethropolis/brackets/internal/buffer"
	"github.com/bethropolis/brackets/internal/config"
	"github.com/bethropolis/brackets/internal/lexer"
	"github.com/bethropolis/brackets/internal/logger"
	"github.com/bethropolis/brackets/internal/report"
	"github.com/bethropolis/brackets/internal/theme"
	"github.com/bethropolis/brackets/internal/tui"
	"github.com/bethropolis/brackets/internal/types"
)

const version = "0.1.0"

// Exit codes
const (
	exitOK       = 0
	exitProblems = 1
	exitError    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := config.NewFlags(config.AppName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.SetUsage(func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] FILE [LINE:COL]\n\nFlags:\n", config.AppName)
		flags.PrintDefaults()
	})

	rest, err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitError
	}
	if *flags.Version {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, version)
		return exitOK
	}
	if len(rest) < 1 || len(rest) > 2 {
		flags.Usage()
		return exitError
	}

	cfg, warnings, err := config.Load(*flags.ConfigFilePath, flags)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	logCloser, err := logger.Setup(cfg.Logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer logCloser.Close()
	logger.SetFilterDebug(*flags.DebugLog)
	for _, w := range warnings {
		logger.Warnf("%s", w)
	}
	logger.Infof("Starting %s %s", config.AppName, version)

	filePath := rest[0]
	doc := buffer.NewSliceBuffer()
	if err := doc.Load(filePath); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	toks := tokenize(cfg, filePath, doc.Bytes())

	switch {
	case len(rest) == 2:
		return runQuery(stdout, stderr, cfg, doc, toks, rest[1])
	case *flags.View:
		return runViewer(stderr, cfg, doc, toks)
	default:
		return runReport(stdout, stderr, cfg, doc, toks)
	}
}

// tokenize returns nil when plain text was requested, no grammar matches
// the file or parsing fails.
func tokenize(cfg *config.Config, filePath string, src []byte) *lexer.Tokens {
	if cfg.Brackets.PlainText {
		return nil
	}
	tk := lexer.NewTokenizer()
	defer tk.Close()
	toks, err := tk.ForFile(context.Background(), filePath, src)
	if err != nil {
		logger.Warnf("Tokenizing %s failed, using plain text: %v", filePath, err)
		return nil
	}
	return toks
}

func newMatcher(cfg *config.Config, doc *buffer.SliceBuffer, toks *lexer.Tokens) *bracket.Matcher {
	var lex bracket.Lexer
	if toks != nil {
		lex = toks
	}
	return bracket.NewMatcher(doc, lex, bracket.WithMaxScanSteps(cfg.Brackets.MaxScanSteps))
}

// parseCaret parses a 1-based "LINE:COL".
func parseCaret(s string) (types.Position, error) {
	lineStr, colStr, ok := strings.Cut(s, ":")
	if !ok {
		return types.Position{}, fmt.Errorf("caret %q: want LINE:COL", s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return types.Position{}, fmt.Errorf("caret %q: invalid line", s)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return types.Position{}, fmt.Errorf("caret %q: invalid column", s)
	}
	return types.Position{Line: line - 1, Col: col - 1}, nil
}

func runQuery(stdout, stderr io.Writer, cfg *config.Config, doc *buffer.SliceBuffer, toks *lexer.Tokens, caretArg string) int {
	caretPos, err := parseCaret(caretArg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	caret, err := doc.PositionToOffset(caretPos)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	q, ok := bracket.AtCaret(doc, caret)
	if !ok {
		fmt.Fprintf(stdout, "%s: no bracket\n", caretPos)
		return exitOK
	}

	res, err := newMatcher(cfg, doc, toks).FindMatch(q.Pos, q.Char)
	if errors.Is(err, bracket.ErrBracketNotFound) {
		fmt.Fprintf(stdout, "%s: '%c' is inside a literal\n", glyphAt(doc, q.Pos), q.Char)
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	switch res.Status {
	case bracket.Match:
		fmt.Fprintf(stdout, "%s: '%c' match at %s\n", glyphAt(doc, q.Pos), q.Char, glyphAt(doc, res.Corresponding))
	case bracket.MisMatch:
		fmt.Fprintf(stdout, "%s: '%c' mismatch at %s (open at %s)\n", glyphAt(doc, q.Pos), q.Char,
			glyphAt(doc, res.Corresponding), glyphAt(doc, res.Offending))
	default:
		fmt.Fprintf(stdout, "%s: '%c' no match\n", glyphAt(doc, q.Pos), q.Char)
	}
	for _, h := range bracket.DecideHighlights(res, q.Pos, cfg.Brackets.HighlightMismatch) {
		fmt.Fprintf(stdout, "  %s %s\n", glyphAt(doc, h.Pos), h.Class)
	}
	return exitOK
}

// glyphAt renders the 1-based location of the glyph ending at pos.
func glyphAt(doc bracket.Document, pos int) string {
	p, err := doc.OffsetToPosition(pos - 1)
	if err != nil {
		return "?"
	}
	return p.String()
}

func runReport(stdout, stderr io.Writer, cfg *config.Config, doc *buffer.SliceBuffer, toks *lexer.Tokens) int {
	problems, err := report.Scan(newMatcher(cfg, doc, toks))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	if err := report.Write(stdout, doc.FilePath(), problems); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	if len(problems) > 0 {
		return exitProblems
	}
	return exitOK
}

func runViewer(stderr io.Writer, cfg *config.Config, doc *buffer.SliceBuffer, toks *lexer.Tokens) int {
	themes := theme.NewManager(theme.DefaultThemesDir(config.AppName, config.ThemesDirName))
	if cfg.Editor.ThemeFile != "" {
		th, err := theme.LoadThemeFromFile(cfg.Editor.ThemeFile)
		if err != nil {
			logger.Warnf("Theme file: %v", err)
		} else {
			themes.Add(th)
			if err := themes.SetTheme(th.Name); err != nil {
				logger.Warnf("Theme file: %v", err)
			}
		}
	}

	tuiManager, err := tui.New(themes.Current())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	viewer := app.New(tuiManager, app.Options{Config: cfg, Doc: doc, Tokens: toks, Themes: themes})
	if err := viewer.Run(); err != nil {
		logger.Errorf("Viewer exited with error: %v", err)
		return exitError
	}
	return exitOK
}
