// Command chartlens is a viewer for ICD-10 annotated clinical notes.
package main

import (
	"fmt"
	"os"

	configfile "github.com/chartlens-labs/chartlens-cli/internal/adapters/driven/config/file"
	loaderfile "github.com/chartlens-labs/chartlens-cli/internal/adapters/driven/loader/file"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driven/storage/sqlite"
	"github.com/chartlens-labs/chartlens-cli/internal/adapters/driving/cli"
	"github.com/chartlens-labs/chartlens-cli/internal/core/services"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(configStore.GetString("storage.dir"))
	if err != nil {
		return fmt.Errorf("opening record store: %w", err)
	}
	defer store.Close()

	recordService := services.NewRecordService(loaderfile.NewLoader(), store.RecordStore())

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Record:      recordService,
		Indexer:     services.NewIndexer(),
		Highlighter: services.NewHighlighter(),
		Config:      configStore,
	})

	return cli.Execute()
}
