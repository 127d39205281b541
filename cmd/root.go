package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "gitmcp",
	Short:         "Git operations as MCP tools and shell aliases",
	Long:          `gitmcp exposes common git operations as Model Context Protocol tools for AI assistants and as short CLI aliases for humans.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	rootCmd.SetArgs(AliasArgs(os.Args[0], os.Args[1:]))
	return rootCmd.Execute()
}
