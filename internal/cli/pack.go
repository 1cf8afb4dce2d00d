package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/sigpress/internal/compress"
	"github.com/mvp-joe/sigpress/internal/config"
	"github.com/mvp-joe/sigpress/internal/output"
	"github.com/mvp-joe/sigpress/internal/scanner"
)

var (
	outputFlag     string
	styleFlag      string
	workersFlag    int
	noCompressFlag bool
	quietFlag      bool
)

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack [path]",
	Short: "Compress a directory tree into a single document",
	Long: `Pack scans a directory, compresses every supported source file to its
declarations and signatures, and assembles the results plus a directory
tree into one document.

Files whose language is not recognized, or which fail to parse, are
included unchanged.

Examples:
  # Pack the current directory to stdout as markdown
  sigpress pack

  # Pack a project into an XML file
  sigpress pack ~/src/myproject --style xml -o packed.xml

  # Skip compression, bundle files verbatim
  sigpress pack --no-compress`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write the document to this file instead of stdout")
	packCmd.Flags().StringVar(&styleFlag, "style", "", "output style: markdown, xml, or plain")
	packCmd.Flags().IntVar(&workersFlag, "workers", 0, "number of compression workers (0 = CPU count)")
	packCmd.Flags().BoolVar(&noCompressFlag, "no-compress", false, "bundle files verbatim without compression")
	packCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress progress output")
}

func runPack(cmd *cobra.Command, args []string) error {
	rootDir := "."
	if len(args) > 0 {
		rootDir = args[0]
	}
	rootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader(rootDir).Load()
	if err != nil {
		// A broken static configuration is fatal; nothing can be packed
		// without it.
		return fmt.Errorf("configuration error: %w", err)
	}
	applyPackFlags(cfg)

	style, err := output.ParseStyle(cfg.Output.Style)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reporter := newPackProgressReporter(quietFlag)

	reporter.OnScanStart(rootDir)
	sc, err := scanner.New(rootDir, cfg.Paths.Include, cfg.Paths.Ignore)
	if err != nil {
		return fmt.Errorf("invalid path patterns: %w", err)
	}
	files, err := sc.Scan()
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", rootDir, err)
	}
	reporter.OnScanComplete(len(files))

	compressor := compress.New(nil, compress.Options{
		Enabled:     cfg.Compression.Enabled,
		Placeholder: cfg.Compression.Placeholder,
		Workers:     cfg.Compression.Workers,
		Progress:    reporter.OnCompressProgress,
	})

	reporter.OnCompressStart(len(files))
	results := compressor.All(ctx, files)
	reporter.OnCompressComplete(results)

	if verbose {
		for _, r := range results {
			if r.Outcome != compress.OutcomeCompressed {
				log.Printf("  %s: %s\n", r.Path, r.Outcome)
			}
		}
	}

	doc := &output.Document{
		RootDir: rootDir,
		Files:   results,
	}
	text, err := output.Render(doc, style)
	if err != nil {
		return err
	}

	if cfg.Output.File == "" {
		fmt.Print(text)
		return nil
	}

	outPath := cfg.Output.File
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(rootDir, outPath)
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	if !quietFlag {
		log.Printf("Wrote %s\n", outPath)
	}
	return nil
}

// applyPackFlags lets explicit flags override the loaded configuration.
func applyPackFlags(cfg *config.Config) {
	if outputFlag != "" {
		cfg.Output.File = outputFlag
	}
	if styleFlag != "" {
		cfg.Output.Style = styleFlag
	}
	if workersFlag > 0 {
		cfg.Compression.Workers = workersFlag
	}
	if noCompressFlag {
		cfg.Compression.Enabled = false
	}
}
