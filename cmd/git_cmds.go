package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitmcp/gitmcp/internal/domain"
)

// workDirFlag is the shared -C/--path working-directory flag.
var workDirFlag string

// runOp executes a request and prints its result text. Failures are returned
// as errors; main prints them and exits non-zero.
func (c *container) runOp(cmd *cobra.Command, req domain.Request) error {
	text, err := c.runner.Execute(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func (c *container) workDir() domain.WorkDir {
	return domain.WorkDir{Path: workDirFlag}
}

// addGitCommands registers one subcommand per git operation. Each also
// answers to its short alias name via argv[0] dispatch (see aliases.go).
func addGitCommands(c *container) {
	rootCmd.PersistentFlags().StringVarP(&workDirFlag, "path", "C", ".", "working directory of the repository")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the working tree status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runOp(cmd, domain.StatusRequest{WorkDir: c.workDir()})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "add [files...]",
		Short: "Stage files (all pending changes when no files are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.runOp(cmd, domain.AddAllRequest{WorkDir: c.workDir()})
			}
			return c.runOp(cmd, domain.AddRequest{WorkDir: c.workDir(), Files: args})
		},
	})

	commitMsg := ""
	commitCmd := &cobra.Command{
		Use:   "commit [message]",
		Short: "Create a commit from the staged changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := commitMsg
			if msg == "" && len(args) > 0 {
				msg = args[0]
			}
			return c.runOp(cmd, domain.CommitRequest{WorkDir: c.workDir(), Message: msg})
		},
	}
	commitCmd.Flags().StringVarP(&commitMsg, "message", "m", "", "commit message")
	rootCmd.AddCommand(commitCmd)

	var pushRemote, pushBranch string
	var pushForce bool
	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "Push a branch to a remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runOp(cmd, domain.PushRequest{
				WorkDir: c.workDir(),
				Remote:  pushRemote,
				Branch:  pushBranch,
				Force:   pushForce,
			})
		},
	}
	pushCmd.Flags().StringVarP(&pushRemote, "remote", "r", "", "remote name (defaults to origin)")
	pushCmd.Flags().StringVarP(&pushBranch, "branch", "b", "", "branch to push (defaults to the current branch)")
	pushCmd.Flags().BoolVarP(&pushForce, "force", "f", false, "force push with lease")
	rootCmd.AddCommand(pushCmd)

	var pullRemote, pullBranch string
	pullCmd := &cobra.Command{
		Use:   "pull",
		Short: "Fetch from and integrate with a remote branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runOp(cmd, domain.PullRequest{
				WorkDir: c.workDir(),
				Remote:  pullRemote,
				Branch:  pullBranch,
			})
		},
	}
	pullCmd.Flags().StringVarP(&pullRemote, "remote", "r", "", "remote name (defaults to origin)")
	pullCmd.Flags().StringVarP(&pullBranch, "branch", "b", "", "branch to pull")
	rootCmd.AddCommand(pullCmd)

	var fetchRemote string
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download objects and refs from a remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runOp(cmd, domain.FetchRequest{WorkDir: c.workDir(), Remote: fetchRemote})
		},
	}
	fetchCmd.Flags().StringVarP(&fetchRemote, "remote", "r", "", "remote name (defaults to origin)")
	rootCmd.AddCommand(fetchCmd)

	var branchAll, branchCheckout, branchDelete, branchForce bool
	branchCmd := &cobra.Command{
		Use:   "branch [name]",
		Short: "List branches, or create/delete one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.runOp(cmd, domain.BranchListRequest{WorkDir: c.workDir(), All: branchAll})
			}
			if branchDelete {
				return c.runOp(cmd, domain.BranchDeleteRequest{
					WorkDir: c.workDir(),
					Name:    args[0],
					Force:   branchForce,
				})
			}
			return c.runOp(cmd, domain.BranchCreateRequest{
				WorkDir:  c.workDir(),
				Name:     args[0],
				Checkout: branchCheckout,
			})
		},
	}
	branchCmd.Flags().BoolVarP(&branchAll, "all", "a", false, "include remote-tracking branches")
	branchCmd.Flags().BoolVarP(&branchCheckout, "checkout", "c", false, "switch to the new branch")
	branchCmd.Flags().BoolVarP(&branchDelete, "delete", "d", false, "delete the branch")
	branchCmd.Flags().BoolVarP(&branchForce, "force", "f", false, "delete even if not merged")
	rootCmd.AddCommand(branchCmd)

	var checkoutCreate bool
	checkoutCmd := &cobra.Command{
		Use:   "checkout <target>",
		Short: "Switch to a branch, tag, or commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOp(cmd, domain.CheckoutRequest{
				WorkDir: c.workDir(),
				Target:  args[0],
				Create:  checkoutCreate,
			})
		},
	}
	checkoutCmd.Flags().BoolVarP(&checkoutCreate, "create", "b", false, "create the branch first")
	rootCmd.AddCommand(checkoutCmd)

	var logCount int
	var logOneline bool
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent commits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runOp(cmd, domain.LogRequest{
				WorkDir: c.workDir(),
				Count:   logCount,
				Oneline: logOneline,
			})
		},
	}
	logCmd.Flags().IntVarP(&logCount, "count", "n", 0, "number of commits to show (defaults to 10)")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "one line per commit")
	rootCmd.AddCommand(logCmd)

	var diffStaged bool
	diffCmd := &cobra.Command{
		Use:   "diff [target]",
		Short: "Show changes in the working tree or against a ref",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) > 0 {
				target = args[0]
			}
			return c.runOp(cmd, domain.DiffRequest{
				WorkDir: c.workDir(),
				Target:  target,
				Staged:  diffStaged,
			})
		},
	}
	diffCmd.Flags().BoolVar(&diffStaged, "staged", false, "show staged changes only")
	rootCmd.AddCommand(diffCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "show [ref]",
		Short: "Show a commit (defaults to HEAD)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) > 0 {
				ref = args[0]
			}
			return c.runOp(cmd, domain.ShowRequest{WorkDir: c.workDir(), Ref: ref})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "blame <file>",
		Short: "Annotate each line of a file with its last-change commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOp(cmd, domain.BlameRequest{WorkDir: c.workDir(), File: args[0]})
		},
	})

	stashMsg := ""
	stashCmd := &cobra.Command{
		Use:   "stash [pop|list]",
		Short: "Stash worktree changes, or pop/list stash entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.runOp(cmd, domain.StashRequest{WorkDir: c.workDir(), Message: stashMsg})
			}
			switch args[0] {
			case "pop":
				return c.runOp(cmd, domain.StashPopRequest{WorkDir: c.workDir()})
			case "list":
				return c.runOp(cmd, domain.StashListRequest{WorkDir: c.workDir()})
			default:
				return fmt.Errorf("unknown stash action: %s (expected: pop, list)", args[0])
			}
		},
	}
	stashCmd.Flags().StringVarP(&stashMsg, "message", "m", "", "stash description")
	rootCmd.AddCommand(stashCmd)

	resetMode := ""
	resetCmd := &cobra.Command{
		Use:   "reset [target]",
		Short: "Reset HEAD to a target; hard mode discards uncommitted work",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) > 0 {
				target = args[0]
			}
			return c.runOp(cmd, domain.ResetRequest{
				WorkDir: c.workDir(),
				Mode:    domain.ResetMode(resetMode),
				Target:  target,
			})
		},
	}
	resetCmd.Flags().StringVar(&resetMode, "mode", "", "reset mode: soft, mixed, or hard (defaults to mixed)")
	rootCmd.AddCommand(resetCmd)

	var cleanForce bool
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove untracked files and directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runOp(cmd, domain.CleanRequest{WorkDir: c.workDir(), Force: cleanForce})
		},
	}
	cleanCmd.Flags().BoolVarP(&cleanForce, "force", "f", false, "confirm the destructive cleanup")
	rootCmd.AddCommand(cleanCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "clone <url> [directory]",
		Short: "Clone a repository",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 1 {
				dir = args[1]
			}
			return c.runOp(cmd, domain.CloneRequest{WorkDir: c.workDir(), URL: args[0], Directory: dir})
		},
	})

	var initBare bool
	initCmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return c.runOp(cmd, domain.InitRequest{WorkDir: c.workDir(), Directory: dir, Bare: initBare})
		},
	}
	initCmd.Flags().BoolVar(&initBare, "bare", false, "create a bare repository")
	rootCmd.AddCommand(initCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "remote [add <name> <url> | remove <name>]",
		Short: "List, add, or remove remotes",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.runOp(cmd, domain.RemoteListRequest{WorkDir: c.workDir()})
			}
			switch args[0] {
			case "add":
				if len(args) != 3 {
					return fmt.Errorf("usage: remote add <name> <url>")
				}
				return c.runOp(cmd, domain.RemoteAddRequest{WorkDir: c.workDir(), Name: args[1], URL: args[2]})
			case "remove":
				if len(args) != 2 {
					return fmt.Errorf("usage: remote remove <name>")
				}
				return c.runOp(cmd, domain.RemoteRemoveRequest{WorkDir: c.workDir(), Name: args[1]})
			default:
				return fmt.Errorf("unknown remote action: %s (expected: add, remove)", args[0])
			}
		},
	})

	tagMsg := ""
	var tagDelete bool
	tagCmd := &cobra.Command{
		Use:   "tag [name]",
		Short: "List tags, or create/delete one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.runOp(cmd, domain.TagListRequest{WorkDir: c.workDir()})
			}
			if tagDelete {
				return c.runOp(cmd, domain.TagDeleteRequest{WorkDir: c.workDir(), Name: args[0]})
			}
			return c.runOp(cmd, domain.TagCreateRequest{WorkDir: c.workDir(), Name: args[0], Message: tagMsg})
		},
	}
	tagCmd.Flags().StringVarP(&tagMsg, "message", "m", "", "tag message (creates an annotated tag)")
	tagCmd.Flags().BoolVarP(&tagDelete, "delete", "d", false, "delete the tag")
	rootCmd.AddCommand(tagCmd)

	var mergeNoFF, mergeAbort bool
	mergeCmd := &cobra.Command{
		Use:   "merge [branch]",
		Short: "Merge a branch into the current branch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			branch := ""
			if len(args) > 0 {
				branch = args[0]
			}
			return c.runOp(cmd, domain.MergeRequest{
				WorkDir: c.workDir(),
				Branch:  branch,
				NoFF:    mergeNoFF,
				Abort:   mergeAbort,
			})
		},
	}
	mergeCmd.Flags().BoolVar(&mergeNoFF, "no-ff", false, "always create a merge commit")
	mergeCmd.Flags().BoolVar(&mergeAbort, "abort", false, "abort the in-progress merge")
	rootCmd.AddCommand(mergeCmd)

	var rebaseAbort, rebaseContinue bool
	rebaseCmd := &cobra.Command{
		Use:   "rebase [target]",
		Short: "Rebase the current branch onto a target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) > 0 {
				target = args[0]
			}
			return c.runOp(cmd, domain.RebaseRequest{
				WorkDir:  c.workDir(),
				Target:   target,
				Abort:    rebaseAbort,
				Continue: rebaseContinue,
			})
		},
	}
	rebaseCmd.Flags().BoolVar(&rebaseAbort, "abort", false, "abort the in-progress rebase")
	rebaseCmd.Flags().BoolVar(&rebaseContinue, "continue", false, "continue the in-progress rebase")
	rootCmd.AddCommand(rebaseCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "cherry-pick <commit>",
		Short: "Apply an existing commit on top of the current branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOp(cmd, domain.CherryPickRequest{WorkDir: c.workDir(), Commit: args[0]})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "bisect <start|good|bad|reset> [commit]",
		Short: "Drive a bisect session",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			commit := ""
			if len(args) > 1 {
				commit = args[1]
			}
			return c.runOp(cmd, domain.BisectRequest{
				WorkDir: c.workDir(),
				Action:  domain.BisectAction(args[0]),
				Commit:  commit,
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "flow <message>",
		Short: "Stage everything, commit, and push in one workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOp(cmd, domain.FlowRequest{WorkDir: c.workDir(), Message: args[0]})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "sync",
		Short: "Pull then push the current branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runOp(cmd, domain.SyncRequest{WorkDir: c.workDir()})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show repository information, enriched with GitHub metadata when available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runOp(cmd, domain.RepoInfoRequest{WorkDir: c.workDir()})
		},
	})
}
