package ezlink

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Create symbolic links, merging existing destinations"
	MsgLinkShort       = "Link a destination path to a source path"
	MsgSessionShort    = "Run an interactive linking session"
	MsgOpenShort       = "Show a path in the file manager"
	MsgGenconfigShort  = "Print the default configuration"
	MsgAboutShort      = "Show the known limitations of ezlink"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgOpeningFile    = "Opening file"
	MsgVersionFormat  = "ezlink version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten     = "Man pages written to %s\n"
	MsgSessionPrompt  = "ezlink> "
	MsgSessionPending = "ezlink (yes/no)> "
	MsgTypeSet        = "Default link type set to %s."
	MsgUnknownCommand = "Unknown command %q. Type \"help\" for the list of commands."
	MsgSessionUsage   = "Usage: %s"
	MsgOpened         = "Opened %s"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrOutput      = "invalid output format: %w"
	MsgErrRenderer    = "failed to create renderer: %w"
	MsgErrConfirm     = "failed to read confirmation: %w"
	MsgErrGenconfig   = "failed to generate configuration: %w"
	MsgErrNoTopic     = "help topic %q not found"
	MsgErrLinkFailed  = "link failed: %s"
	MsgErrReadSession = "failed to read session input: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput  = "Output format (auto, term, text, json, yaml)"
	MsgFlagConfig  = "Configuration file (default $XDG_CONFIG_HOME/ezlink/config.toml)"
	MsgFlagType    = "Link type (auto, file, dir); defaults to link.default_type"
	MsgFlagYes     = "Merge an existing destination without asking"
	MsgFlagNo      = "Cancel when the destination exists, without asking"
	MsgFlagManDir  = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/link-long.txt
	msgLinkLongRaw string
	MsgLinkLong    = strings.TrimSpace(msgLinkLongRaw)

	//go:embed msgs/link-example.txt
	msgLinkExampleRaw string
	MsgLinkExample    = strings.TrimRight(msgLinkExampleRaw, "\n")

	//go:embed msgs/session-long.txt
	msgSessionLongRaw string
	MsgSessionLong    = strings.TrimSpace(msgSessionLongRaw)

	//go:embed msgs/session-help.txt
	msgSessionHelpRaw string
	MsgSessionHelp    = strings.TrimSpace(msgSessionHelpRaw)

	//go:embed msgs/open-long.txt
	msgOpenLongRaw string
	MsgOpenLong    = strings.TrimSpace(msgOpenLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenconfigLongRaw string
	MsgGenconfigLong    = strings.TrimSpace(msgGenconfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
