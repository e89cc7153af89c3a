package cmd

import (
	"fmt"

	"headerdump/pkg/config"
	"headerdump/pkg/headers"
	"headerdump/pkg/logging"
	"headerdump/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the headerdump command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "headerdump [project-root]",
		Short: "headerdump collects a project's header files into one report",
		Long: `headerdump concatenates every header file found directly in a project's
include/ directory into a single headers.txt report in the project root.
Each header is listed with its path and wrapped in a cpp code fence.

The project root defaults to the current directory.`,
		Version:       version.Get().Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	flags := rootCmd.Flags()
	flags.String("config", "", "Path to a YAML configuration file")
	flags.String("include-dir", "", "Header directory relative to the project root (default \"include\")")
	flags.String("suffix", "", "File name suffix of header files (default \".h\")")
	flags.StringP("output", "o", "", "Report file name in the project root (default \"headers.txt\")")
	flags.String("fence-lang", "", "Language tag of the code fences (default \"cpp\")")
	flags.Bool("stdout", false, "Print the report to stdout instead of writing the file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	opts, err := loadOptions(cmd, root)
	if err != nil {
		return err
	}

	logger := logging.L()
	if opts.Verbose && !logger.Core().Enabled(zap.DebugLevel) {
		if err := logging.Setup(true, config.AppName, version.Get().Version); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logging.L()
	}
	logger.Debug("Starting header report", zap.String("root", root), zap.Any("options", opts))

	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}
	if toStdout {
		files, err := headers.CollectHeaders(root, opts, logger)
		if err != nil {
			return fmt.Errorf("failed to collect headers: %w", err)
		}
		return headers.WriteReport(cmd.OutOrStdout(), files, opts, logger)
	}

	outputPath, err := headers.GenerateReport(root, opts, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Header files written to %s\n", outputPath)
	return nil
}

// loadOptions merges config files with any flags set on the command line.
func loadOptions(cmd *cobra.Command, root string) (config.Options, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return config.Options{}, fmt.Errorf("error reading flags: %w", err)
	}
	opts, err := config.Load(root, configPath)
	if err != nil {
		return config.Options{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"include-dir", &opts.IncludeDir},
		{"suffix", &opts.Suffix},
		{"output", &opts.Output},
		{"fence-lang", &opts.FenceLang},
	}
	for _, o := range overrides {
		if !flags.Changed(o.flag) {
			continue
		}
		if *o.dst, err = flags.GetString(o.flag); err != nil {
			return config.Options{}, fmt.Errorf("error reading flags: %w", err)
		}
	}
	if flags.Changed("verbose") {
		if opts.Verbose, err = flags.GetBool("verbose"); err != nil {
			return config.Options{}, fmt.Errorf("error reading flags: %w", err)
		}
	}

	if err := opts.Validate(); err != nil {
		return config.Options{}, err
	}
	return opts, nil
}
