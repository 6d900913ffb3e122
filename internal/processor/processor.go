// Package processor is the command interpreter: one whitespace-tokenized
// command per line, validated and applied in full before the next line is
// read. Every failure is reported and recovered; the loop only stops on Q or
// end of input.
package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jbaiden/bankledger/internal/config"
	"github.com/jbaiden/bankledger/internal/domain"
	"github.com/jbaiden/bankledger/internal/logging"
	"github.com/jbaiden/bankledger/internal/loyalty"
	"github.com/jbaiden/bankledger/internal/registry"
)

type Processor struct {
	reg   *registry.Registry
	loyal *loyalty.Engine
	cfg   *config.Config
	out   io.Writer

	// today is swappable so tests can pin the activity date.
	today func() domain.Date
}

func New(reg *registry.Registry, loyal *loyalty.Engine, cfg *config.Config, out io.Writer) *Processor {
	return &Processor{
		reg:   reg,
		loyal: loyal,
		cfg:   cfg,
		out:   out,
		today: domain.Today,
	}
}

// Run consumes commands from r until Q or end of input.
func (p *Processor) Run(ctx context.Context, r io.Reader) error {
	log := logging.FromContext(ctx)
	fmt.Fprintln(p.out, "Transaction Manager is running.")

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !p.Dispatch(ctx, line) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("command input failed", "error", err)
		return fmt.Errorf("Run: %w", err)
	}
	return nil
}

// Dispatch applies a single command line and reports whether the loop should
// keep going.
func (p *Processor) Dispatch(ctx context.Context, line string) bool {
	tokens := strings.Fields(line)
	command := tokens[0]

	if command == "Q" && len(tokens) == 1 {
		fmt.Fprintln(p.out, "Transaction Manager is terminated.")
		return false
	}

	switch command {
	case "O":
		p.openAccount(tokens)
	case "C":
		p.closeAccount(tokens)
	case "D":
		p.deposit(tokens)
	case "W":
		p.withdraw(tokens)
	case "A":
		if len(tokens) == 1 {
			p.processActivities(ctx)
		} else {
			fmt.Fprintln(p.out, "Invalid command!")
		}
	case "P":
		fmt.Fprintln(p.out, "P command is deprecated!")
	case "PA", "PB", "PH", "PT", "PS":
		if len(tokens) == 1 {
			p.printReport(command)
		} else {
			fmt.Fprintln(p.out, "Invalid command!")
		}
	default:
		fmt.Fprintln(p.out, "Invalid command!")
	}
	return true
}
