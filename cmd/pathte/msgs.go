package pathte

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Paste paths in the format the target expects"
	MsgClassifyShort   = "Report the path format of each argument"
	MsgConvertShort    = "Convert a path to another format"
	MsgVariantsShort   = "List every format a path can be written in"
	MsgCycleShort      = "Step through the variants of a path"
	MsgReplayShort     = "Run a recorded key sequence through the paste gesture"
	MsgWatchShort      = "Open the interactive selection overlay"
	MsgFormatsShort    = "Explain the Windows, Unix and WSL path formats"
	MsgGenConfigShort  = "Print the default configuration"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgVersionFormat = "pathte version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNotAPath       = "%q is not a path"
	MsgErrNoSelection    = "%q has no alternative formats"
	MsgErrReadScript     = "failed to read key script"
	MsgErrSystemClip     = "no clipboard utility available"
	MsgErrReadClipboard  = "failed to read the clipboard"
	MsgErrRenderer       = "failed to create output renderer"
	MsgErrTopicsNotFound = "help command not found"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/pathte/config.toml)"
	MsgFlagOutput    = "Output format: auto, term, text, json or yaml"
	MsgFlagTo        = "Target format: windows, unix or wsl"
	MsgFlagSteps     = "Steps to take, negative steps go backwards"
	MsgFlagClipboard = "Clipboard text to start from (default is the system clipboard)"
	MsgFlagEffective = "Print the loaded configuration instead of the commented defaults"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimSpace(msgConvertExampleRaw)

	//go:embed msgs/cycle-example.txt
	msgCycleExampleRaw string
	MsgCycleExample    = strings.TrimSpace(msgCycleExampleRaw)

	//go:embed msgs/replay-long.txt
	msgReplayLongRaw string
	MsgReplayLong    = strings.TrimSpace(msgReplayLongRaw)

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
