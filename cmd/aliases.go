package cmd

import (
	"path/filepath"
	"strings"
)

// aliasCommands maps binary names (hardlinks or symlinks to the gitmcp
// binary) to the subcommand they stand for. Installing "gstatus" as a link
// to gitmcp makes `gstatus` behave like `gitmcp status`.
var aliasCommands = map[string]string{
	"gstatus":   "status",
	"gadd":      "add",
	"gcommit":   "commit",
	"gpush":     "push",
	"gpull":     "pull",
	"gfetch":    "fetch",
	"gbranch":   "branch",
	"gcheckout": "checkout",
	"glog":      "log",
	"gdiff":     "diff",
	"gshow":     "show",
	"gblame":    "blame",
	"gstash":    "stash",
	"greset":    "reset",
	"gclean":    "clean",
	"gclone":    "clone",
	"ginit":     "init",
	"gremote":   "remote",
	"gtag":      "tag",
	"gmerge":    "merge",
	"grebase":   "rebase",
	"gcherry":   "cherry-pick",
	"gbisect":   "bisect",
	"gflow":     "flow",
	"gsync":     "sync",
	"ginfo":     "info",
}

// AliasArgs rewrites the argument list when the binary was invoked under an
// alias name, prepending the subcommand the alias stands for. Invocations
// under the canonical name pass through unchanged.
func AliasArgs(argv0 string, args []string) []string {
	name := strings.TrimSuffix(filepath.Base(argv0), ".exe")
	sub, ok := aliasCommands[name]
	if !ok {
		return args
	}
	return append([]string{sub}, args...)
}
