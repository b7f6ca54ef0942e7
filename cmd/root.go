package cmd

import (
	"codedump/pkg/collect"
	"codedump/pkg/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the codedump command with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "codedump [path]",
		Short: "Collects a codebase into a single text file",
		Long: `codedump walks a directory, skipping ignored, hidden and binary files, and
concatenates every remaining text file into one output file with a header
before each file. The result is meant to be pasted into an AI assistant.

Ignore rules are read from .dumpignore and .ignore files in every directory,
and from .gitignore files when the path is inside a git repository.

Examples:
  codedump                          # dump the current directory to code_dump.txt
  codedump ./src -o out/src.txt     # dump src into out/src.txt
  codedump -e "*.md,*.json" -v      # exclude markdown and JSON, report progress
  codedump --use-banner=false       # compact one-line headers`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Init(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := collect.DefaultRoot
			if len(args) > 0 {
				root = args[0]
			}
			return runDump(cmd, v, root)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/codedump/config.yaml)")

	flags := rootCmd.Flags()
	flags.StringP("out", "o", collect.DefaultOutput, "output file path")
	flags.StringP("exclude", "e", "", "glob patterns to exclude files (comma-separated)")
	flags.BoolP("verbose", "v", false, "report every added and skipped file")
	flags.BoolP("use-banner", "u", true, "mark the top of each file with a high-visibility banner; --use-banner=false (or -u=false) for one-line headers")
	flags.Bool("hidden", false, "include hidden files and directories")
	flags.Bool("no-ignore", false, "don't respect ignore files")
	flags.String("ignore-file", collect.DefaultIgnoreFileName, "name of the per-directory ignore file")

	_ = v.BindPFlag("out", flags.Lookup("out"))
	_ = v.BindPFlag("exclude", flags.Lookup("exclude"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = v.BindPFlag("use_banner", flags.Lookup("use-banner"))
	_ = v.BindPFlag("hidden", flags.Lookup("hidden"))
	_ = v.BindPFlag("no_ignore", flags.Lookup("no-ignore"))
	_ = v.BindPFlag("ignore_file", flags.Lookup("ignore-file"))

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
