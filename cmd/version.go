package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitmcp/gitmcp/pkg/version"
)

// NewVersionCmd creates the version command
func NewVersionCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Printf("gitmcp %s\n", version.Summary())
			if v, err := c.git.Version(cmd.Context()); err == nil {
				fmt.Printf("git %s\n", v.String())
			}
			return nil
		},
	}
}
