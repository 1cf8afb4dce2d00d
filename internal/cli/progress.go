package cli

import (
	"log"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/sigpress/internal/compress"
)

// packProgressReporter prints scan and compression progress to stderr so the
// document itself can go to stdout.
type packProgressReporter struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

func newPackProgressReporter(quiet bool) *packProgressReporter {
	return &packProgressReporter{quiet: quiet}
}

func (p *packProgressReporter) OnScanStart(rootDir string) {
	if p.quiet {
		return
	}
	log.Printf("Scanning %s...\n", rootDir)
}

func (p *packProgressReporter) OnScanComplete(files int) {
	if p.quiet {
		return
	}
	log.Printf("Found %d files\n", files)
}

func (p *packProgressReporter) OnCompressStart(totalFiles int) {
	if p.quiet || totalFiles == 0 {
		return
	}
	p.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Compressing files"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *packProgressReporter) OnCompressProgress(done, total int) {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *packProgressReporter) OnCompressComplete(results []compress.Result) {
	if p.quiet {
		return
	}
	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}

	counts := make(map[compress.Outcome]int)
	for _, r := range results {
		counts[r.Outcome]++
	}
	log.Printf("Compressed %d files (%d unsupported, %d parse failures)\n",
		counts[compress.OutcomeCompressed],
		counts[compress.OutcomeUnsupported],
		counts[compress.OutcomeParseFailed])
}
