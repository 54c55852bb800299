package confex

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/confex/internal/version"
	"github.com/arthur-debert/confex/pkg/config"
	"github.com/arthur-debert/confex/pkg/errors"
	"github.com/arthur-debert/confex/pkg/formatter"
	"github.com/arthur-debert/confex/pkg/generator"
	"github.com/arthur-debert/confex/pkg/logging"
	"github.com/arthur-debert/confex/pkg/output"
	"github.com/arthur-debert/confex/pkg/schema"
	"github.com/arthur-debert/confex/pkg/textblock"
)

// flagKeys maps command-line flags to the configuration keys they override
var flagKeys = map[string]string{
	"dialect":   "dialect",
	"format":    "format",
	"separator": "separator",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configPath string
		cfg        = &config.Config{}
	)

	rootCmd := &cobra.Command{
		Use:     "confex",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(config.Options{
				Path:  configPath,
				Flags: changedFlags(cmd.Flags(), verbosity),
			})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			*cfg = *loaded

			// Setup logging based on verbosity
			logging.SetupLogger(cfg.Log.Verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(cfg))
	rootCmd.AddCommand(newDialectsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// changedFlags collects the flags set on the command line, keyed like the
// configuration file
func changedFlags(flags *pflag.FlagSet, verbosity int) map[string]interface{} {
	out := map[string]interface{}{}
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil && f.Changed {
			out[key] = f.Value.String()
		}
	}
	if f := flags.Lookup("verbose"); f != nil && f.Changed {
		out["log.verbosity"] = verbosity
	}
	return out
}

func newRenderCmd(cfg *config.Config) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:     "render <schema-file>",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, cfg, args[0], outputPath)
		},
	}

	// Defaults live in the configuration, these only override it
	cmd.Flags().StringP("dialect", "d", "", MsgFlagDialect)
	cmd.Flags().StringP("format", "f", "", MsgFlagFormat)
	cmd.Flags().String("separator", "", MsgFlagSeparator)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", MsgFlagOutput)

	_ = cmd.RegisterFlagCompletionFunc("dialect", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formatter.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return output.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runRender(cmd *cobra.Command, cfg *config.Config, schemaPath, outputPath string) (err error) {
	logger := logging.GetLogger("render")
	done := logging.LogOperationStart(logger, "render")
	defer done()

	g, err := generator.ForDialect(cfg.Dialect)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	s, warnings, err := schema.Load(schemaPath)
	if err != nil {
		return err
	}
	if len(warnings) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgWarningsFormat, len(warnings))
	}

	snippets := g.Render(s)
	if len(snippets) == 0 {
		logger.Info().Str("schema", schemaPath).Msg(MsgNoExamples)
	}

	var w io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		f, ferr := os.Create(outputPath)
		if ferr != nil {
			return errors.Wrapf(ferr, errors.ErrFileWrite, MsgErrOpenOutput, outputPath).
				WithDetail("path", outputPath)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Wrapf(cerr, errors.ErrFileWrite, MsgErrCloseOutput, outputPath)
			}
		}()
		w = f
	}

	r := output.NewRenderer(w, output.Options{
		Format:    format,
		Separator: cfg.Separator,
	})
	logger.Debug().
		Str("dialect", g.Dialect().Name()).
		Str("format", r.Format().String()).
		Int("snippets", len(snippets)).
		Msg("Writing output")
	return r.Render(snippets)
}

func newDialectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: MsgDialectsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderDialectTable(cmd.OutOrStdout())
		},
	}
}

// renderDialectTable prints one row per registered dialect
func renderDialectTable(w io.Writer) error {
	data := pterm.TableData{{"NAME", "ALIASES", "SEPARATOR", "COMMENT", "INDENT"}}

	for _, name := range formatter.Names() {
		d, err := formatter.Lookup(name)
		if err != nil {
			return err
		}
		data = append(data, []string{
			name,
			strings.Join(formatter.Aliases(name), ", "),
			fmt.Sprintf("%q", d.Separator()),
			d.FormatComment(textblock.Line("text")).String(),
			describeIndent(formatter.IndentUnit(d)),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(w)
	if !isTerminal(w) {
		table = table.
			WithHeaderStyle(pterm.NewStyle()).
			WithSeparatorStyle(pterm.NewStyle()).
			WithStyle(pterm.NewStyle())
	}
	return table.Render()
}

func describeIndent(unit string) string {
	switch {
	case unit == "\t":
		return "tab"
	case strings.Trim(unit, " ") == "":
		return fmt.Sprintf("%d spaces", len(unit))
	}
	return fmt.Sprintf("%q", unit)
}

func newConfigCmd() *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigPath, config.UserConfigPath())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.GenerateConfigContent())
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, MsgFlagPath)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
