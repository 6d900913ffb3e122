package processor

import (
	"context"
	"fmt"
	"os"

	"github.com/jbaiden/bankledger/internal/batch"
	"github.com/jbaiden/bankledger/internal/logging"
	"github.com/jbaiden/bankledger/internal/report"
)

// processActivities handles A: stream the activities file through the same
// deposit/withdraw primitives, tagging every entry as batch-sourced.
func (p *Processor) processActivities(ctx context.Context) {
	log := logging.FromContext(ctx)

	if p.reg.IsEmpty() {
		fmt.Fprintln(p.out, "ERROR: Account database is empty! Ensure accounts are loaded before processing activities.")
		return
	}

	f, err := os.Open(p.cfg.ActivitiesFile)
	if err != nil {
		fmt.Fprintf(p.out, "Could not process activities file: %v\n", err)
		return
	}
	defer f.Close()

	fmt.Fprintf(p.out, "Processing %q...\n", p.cfg.ActivitiesFile)
	count, err := batch.ApplyActivities(ctx, f, p.reg, p.loyal, p.out)
	if err != nil {
		fmt.Fprintf(p.out, "Could not process activities file: %v\n", err)
		return
	}
	log.Info("activities applied", "file", p.cfg.ActivitiesFile, "count", count)
	fmt.Fprintf(p.out, "Account activities in %q processed.\n", p.cfg.ActivitiesFile)
}

func (p *Processor) printReport(command string) {
	if command == "PA" {
		if p.reg.ArchiveIsEmpty() {
			fmt.Fprintln(p.out, "Archive is empty.")
			return
		}
		report.WriteArchive(p.out, p.reg.Archive())
		return
	}

	if p.reg.IsEmpty() {
		fmt.Fprintln(p.out, "Account database is empty!")
		return
	}

	switch command {
	case "PB":
		report.WriteByBranch(p.out, p.reg.ByBranch())
	case "PH":
		report.WriteByHolder(p.out, p.reg.ByHolder())
	case "PT":
		report.WriteByType(p.out, p.reg.ByType())
	case "PS":
		report.WriteStatements(p.out, p.reg.ByHolder())
	}
}
