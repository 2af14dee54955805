// Package cmd implements the CLI application to manage a rental portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/smartrent/rentroll"
)

// Commands lists every subcommand.
// A main package registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&dashboardCmd{},
	&matrixCmd{},
	&statusCmd{},
	&timelineCmd{},

	&addBuildingCmd{},
	&addUnitCmd{},
	&addTenantCmd{},
	&addLeaseCmd{},
	&addPaymentCmd{},
	&addExpenseCmd{},
	&listCmd{},
	&deleteCmd{},

	&fmtCmd{},
	&importCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var registryFile = flag.String("registry-file", "registry.jsonl", "Path to the registry file containing all records (JSONL format)")

// LoadRegistry reads the app registry file. A missing file yields an empty
// registry so the very first add command just works.
func LoadRegistry() (*rentroll.Registry, error) {
	f, err := os.Open(*registryFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, registry file does not exist, starting empty")
		return rentroll.NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening registry file %q: %w", *registryFile, err)
	}
	defer f.Close()

	g, err := rentroll.DecodeRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("reading registry file %q: %w", *registryFile, err)
	}
	return g, nil
}

// SaveRegistry writes the registry back to the app registry file in
// canonical form.
func SaveRegistry(g *rentroll.Registry) error {
	f, err := os.OpenFile(*registryFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening registry file %q: %w", *registryFile, err)
	}
	defer f.Close()

	if err := rentroll.EncodeRegistry(f, g); err != nil {
		return fmt.Errorf("writing registry file %q: %w", *registryFile, err)
	}
	return nil
}

// LoadSnapshot is the shortcut used by the report commands.
func LoadSnapshot() (*rentroll.Snapshot, error) {
	g, err := LoadRegistry()
	if err != nil {
		return nil, err
	}
	return g.Snapshot(), nil
}
