package cmd

import (
	"os"

	"github.com/Cyclone1070/yaget/internal/fsutil"
	"github.com/Cyclone1070/yaget/internal/logger"
	"github.com/Cyclone1070/yaget/internal/present"
	"github.com/Cyclone1070/yaget/internal/scan"
	"github.com/spf13/cobra"
)

// NewScanCommand creates the extraction-only subcommand. It needs no
// credential: annotation units are printed without calling the generation
// backend.
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "scan <project-directory>",
		Short:        "List TODO annotations without generating suggestions",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0])
		},
	}

	registerScanFlags(cmd)

	return cmd
}

func runScan(cmd *cobra.Command, projectDir string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(os.Stderr, cfg.Logging.Level)
	scanner := scan.NewScanner(fsutil.NewOSFileSystem(), log, scanOptions(cfg))

	units, err := scanner.Scan(cmd.Context(), projectDir)
	if err != nil {
		return err
	}

	sink := present.NewConsole(cmd.OutOrStdout(), nil, false)
	for _, unit := range units {
		sink.Unit(unit)
	}
	log.Infof("found %d annotation(s) under %s", len(units), projectDir)
	return nil
}
