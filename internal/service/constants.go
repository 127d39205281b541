package service

// networkSubcommands are the git subcommands that talk to a remote and
// therefore get the longer network timeout.
var networkSubcommands = map[string]bool{
	"clone":     true,
	"fetch":     true,
	"pull":      true,
	"push":      true,
	"ls-remote": true,
}
