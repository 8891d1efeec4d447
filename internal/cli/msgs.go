package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Mirror declared files into a target root as symlinks"
	MsgLinkShort       = "Create the links declared in a metadata file"
	MsgUnlinkShort     = "Remove the links declared in a metadata file"
	MsgRegisterShort   = "Append an entry to a metadata file"
	MsgStatusShort     = "Show what link would do for each entry"
	MsgWatchShort      = "Link again whenever the metadata file changes"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"

	// Entry verbs
	MsgVerbWouldRegister = "Would register"

	// Status messages
	MsgDryRunNotice = "DRY RUN MODE - No changes were made"
	MsgWatching     = "Watching %s for changes (Ctrl-C to stop)"
	MsgManWritten   = "Man pages written to %s"

	// Error messages
	MsgErrNoMetadata   = "no metadata path given and metadata.path is not configured"
	MsgErrNoTargetRoot = "no target root given and link.target_root is not configured"
	MsgErrBadFormat    = "invalid --format"
	MsgErrUnhealthy    = "status: %d entries cannot be linked"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Preview changes without executing them"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/makky/config.toml)"
	MsgFlagDefaults = "Print the built-in defaults instead, as a starting config file"
	MsgFlagCheck    = "Exit with an error when any entry is in conflict or error"
	MsgFlagFormat   = "Output format: auto, term, text or yaml (default from output.format)"
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

	//go:embed msgs/unlink-long.txt
	msgUnlinkLongRaw string
	MsgUnlinkLong    = strings.TrimSpace(msgUnlinkLongRaw)

	//go:embed msgs/unlink-example.txt
	msgUnlinkExampleRaw string
	MsgUnlinkExample    = strings.TrimRight(msgUnlinkExampleRaw, "\n")

	//go:embed msgs/register-long.txt
	msgRegisterLongRaw string
	MsgRegisterLong    = strings.TrimSpace(msgRegisterLongRaw)

	//go:embed msgs/register-example.txt
	msgRegisterExampleRaw string
	MsgRegisterExample    = strings.TrimRight(msgRegisterExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
