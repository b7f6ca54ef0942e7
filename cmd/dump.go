package cmd

import (
	"fmt"

	"codedump/pkg/collect"
	"codedump/pkg/config"
	"codedump/pkg/logging"
	"codedump/pkg/version"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// runDump resolves the configuration, sets up logging and dumps root.
func runDump(cmd *cobra.Command, v *viper.Viper, root string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := logging.Setup(cfg.Verbose, "codedump", version.Get().Version)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("Resolved configuration",
		zap.String("root", root),
		zap.String("configFile", v.ConfigFileUsed()),
		zap.Any("config", cfg))

	summary, err := collect.Run(afero.NewOsFs(), cfg.Arguments(root), logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Collected %d files into %s\n", summary.Files, cfg.Out)
	return nil
}
