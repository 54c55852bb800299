package confex

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render configuration examples in several dialects"
	MsgRenderShort     = "Render the examples of a schema document"
	MsgDialectsShort   = "List the available dialects"
	MsgConfigShort     = "Print a configuration file template"
	MsgConfigLong      = "Print the default configuration with every value commented out, ready to be saved as the user config file."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output messages
	MsgVersionFormat  = "confex version %s\n  commit: %s\n  built:  %s\n"
	MsgWarningsFormat = "%d option(s) were skipped, see the warnings above\n"
	MsgNoExamples     = "No examples to render."
	MsgConfigPath     = "User config file: %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrOpenOutput  = "failed to open output file %s"
	MsgErrCloseOutput = "failed to close output file %s"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/confex/config.toml)"
	MsgFlagDialect   = "Dialect to render: toml, yaml, ini, xml"
	MsgFlagFormat    = "Output format: auto, text, markdown, term"
	MsgFlagOutput    = "Write to this file instead of stdout"
	MsgFlagSeparator = "Text between examples in text output (\\n for a newline)"
	MsgFlagPath      = "Print the user config file location instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimRight(msgUsageTemplateRaw, "\n") + "\n"
)
