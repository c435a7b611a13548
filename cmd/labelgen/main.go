// ABOUTME: Command line tool for rendering article labels
// ABOUTME: Exports a label PNG to disk and optionally opens a print dialog

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"article-labels-api/core/domain"
	"article-labels-api/core/export"
	"article-labels-api/core/interfaces"
	"article-labels-api/core/payload"
	"article-labels-api/core/symbol"
	logrusLogger "article-labels-api/infrastructure/logger/logrus"
	"article-labels-api/infrastructure/surface/browser"
	"article-labels-api/pkg/config"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		id          string
		code        string
		designation string
		outDir      string
		width       int
		margin      int
		fg          string
		bg          string
		doPrint     bool
		verbose     bool
	)

	flagSet := pflag.NewFlagSet("labelgen", pflag.ContinueOnError)
	flagSet.StringVar(&id, "id", "", "article identifier (required)")
	flagSet.StringVar(&code, "code", "", "article code, also names the output file (required)")
	flagSet.StringVar(&designation, "designation", "", "article designation printed under the code")
	flagSet.StringVar(&outDir, "out", "", "directory for the exported PNG (default: EXPORT_DIR)")
	flagSet.IntVar(&width, "width", 0, "symbol width in pixels")
	flagSet.IntVar(&margin, "margin", -1, "quiet zone width in modules")
	flagSet.StringVar(&fg, "fg", "", "module color as a hex triplet, e.g. #1A2B3C")
	flagSet.StringVar(&bg, "bg", "", "background color as a hex triplet")
	flagSet.BoolVar(&doPrint, "print", false, "open the label in a print dialog after export")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if id == "" || code == "" {
		printHelp(flagSet)
		return fmt.Errorf("--id and --code are required")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	opts, err := cfg.Label.RenderOptions()
	if err != nil {
		return err
	}
	if width > 0 {
		opts.Width = width
	}
	if margin >= 0 {
		opts.Margin = margin
	}
	if fg != "" {
		color, err := domain.ParseHexColor(fg)
		if err != nil {
			return fmt.Errorf("--fg: %w", err)
		}
		opts.Foreground = color
	}
	if bg != "" {
		color, err := domain.ParseHexColor(bg)
		if err != nil {
			return fmt.Errorf("--bg: %w", err)
		}
		opts.Background = color
	}

	if outDir == "" {
		outDir = cfg.Export.Dir
	}

	logger := logrusLogger.NewLogrusLogger()
	if verbose {
		logger.SetLevel("debug")
	} else {
		logger.SetLevel("warn")
	}

	deps := interfaces.Dependencies{Logger: logger}
	renderer := symbol.NewRenderer(deps)
	exporter := export.NewExporter(deps, outDir)

	p, err := payload.Encode(domain.ArticleIdentity{
		ID:          id,
		Code:        code,
		Designation: designation,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	artifact, err := renderer.Render(ctx, p, opts)
	if err != nil {
		return err
	}

	path, err := exporter.ExportFile(ctx, artifact, code)
	if err != nil {
		return err
	}
	fmt.Println(path)

	if doPrint {
		ttl := time.Duration(cfg.Export.PrintDocTTL) * time.Second
		exporter.SetPrintSurface(browser.NewBrowserSurface(ttl))
		if err := exporter.Print(ctx, artifact, code, designation); err != nil {
			return err
		}
	}

	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `labelgen renders a scannable article label and writes it to disk as
qr-<code>.png. With --print it also composes a printable document and
opens it in the default browser, which brings up the print dialog.

Colors, width and margin fall back to the LABEL_* environment variables
and then to the built-in defaults.

Usage:
  labelgen --id <id> --code <code> [flags]

Examples:
  # Render a label with defaults
  labelgen --id 42 --code CER-100 --designation "Ceramic Tile 30x30"

  # Render at 400px with no quiet zone and open the print dialog
  labelgen --id 42 --code CER-100 --width 400 --margin 0 --print

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
