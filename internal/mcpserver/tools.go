package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/orchestrator"
)

// withPath is the working-directory argument shared by almost every tool.
func withPath() mcp.ToolOption {
	return mcp.WithString("path",
		mcp.Description("Working directory of the repository (defaults to the server's current directory)"),
	)
}

// registerTools registers one MCP tool per git operation.
func registerTools(s *server.MCPServer, runner *orchestrator.Runner, log *zap.Logger) {
	type registration struct {
		tool  mcp.Tool
		build requestBuilder
	}

	registrations := []registration{
		{
			tool: mcp.NewTool("git_status",
				mcp.WithDescription("Show the working tree status"),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.StatusRequest{WorkDir: workDir(r)}, nil
			},
		},
		{
			tool: mcp.NewTool("git_add",
				mcp.WithDescription("Stage specific files for commit"),
				mcp.WithArray("files", mcp.Required(),
					mcp.Description("Files to stage"),
					mcp.Items(map[string]any{"type": "string"}),
				),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.AddRequest{WorkDir: workDir(r), Files: r.GetStringSlice("files", nil)}, nil
			},
		},
		{
			tool: mcp.NewTool("git_add_all",
				mcp.WithDescription("Stage all pending changes; reports when the working tree is already clean"),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.AddAllRequest{WorkDir: workDir(r)}, nil
			},
		},
		{
			tool: mcp.NewTool("git_commit",
				mcp.WithDescription("Create a commit from the staged changes"),
				mcp.WithString("message", mcp.Required(), mcp.Description("Commit message")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.CommitRequest{WorkDir: workDir(r), Message: r.GetString("message", "")}, nil
			},
		},
		{
			tool: mcp.NewTool("git_push",
				mcp.WithDescription("Push a branch to a remote"),
				mcp.WithString("remote", mcp.Description("Remote name (defaults to origin)")),
				mcp.WithString("branch", mcp.Description("Branch to push (defaults to the current branch)")),
				mcp.WithBoolean("force", mcp.Description("Force push with lease")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.PushRequest{
					WorkDir: workDir(r),
					Remote:  r.GetString("remote", ""),
					Branch:  r.GetString("branch", ""),
					Force:   r.GetBool("force", false),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_pull",
				mcp.WithDescription("Fetch from and integrate with a remote branch"),
				mcp.WithString("remote", mcp.Description("Remote name (defaults to origin)")),
				mcp.WithString("branch", mcp.Description("Branch to pull")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.PullRequest{
					WorkDir: workDir(r),
					Remote:  r.GetString("remote", ""),
					Branch:  r.GetString("branch", ""),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_fetch",
				mcp.WithDescription("Download objects and refs from a remote"),
				mcp.WithString("remote", mcp.Description("Remote name (defaults to origin)")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.FetchRequest{WorkDir: workDir(r), Remote: r.GetString("remote", "")}, nil
			},
		},
		{
			tool: mcp.NewTool("git_branch_list",
				mcp.WithDescription("List branches"),
				mcp.WithBoolean("all", mcp.Description("Include remote-tracking branches")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.BranchListRequest{WorkDir: workDir(r), All: r.GetBool("all", false)}, nil
			},
		},
		{
			tool: mcp.NewTool("git_branch_create",
				mcp.WithDescription("Create a branch"),
				mcp.WithString("name", mcp.Required(), mcp.Description("Branch name")),
				mcp.WithBoolean("checkout", mcp.Description("Switch to the new branch")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.BranchCreateRequest{
					WorkDir:  workDir(r),
					Name:     r.GetString("name", ""),
					Checkout: r.GetBool("checkout", false),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_branch_delete",
				mcp.WithDescription("Delete a local branch"),
				mcp.WithString("name", mcp.Required(), mcp.Description("Branch name")),
				mcp.WithBoolean("force", mcp.Description("Delete even if not merged")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.BranchDeleteRequest{
					WorkDir: workDir(r),
					Name:    r.GetString("name", ""),
					Force:   r.GetBool("force", false),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_checkout",
				mcp.WithDescription("Switch to a branch, tag, or commit"),
				mcp.WithString("target", mcp.Required(), mcp.Description("Branch, tag, or commit to switch to")),
				mcp.WithBoolean("create", mcp.Description("Create the branch first")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.CheckoutRequest{
					WorkDir: workDir(r),
					Target:  r.GetString("target", ""),
					Create:  r.GetBool("create", false),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_log",
				mcp.WithDescription("Show recent commits"),
				mcp.WithNumber("count", mcp.Description("Number of commits to show (defaults to 10)")),
				mcp.WithBoolean("oneline", mcp.Description("One line per commit")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.LogRequest{
					WorkDir: workDir(r),
					Count:   r.GetInt("count", 0),
					Oneline: r.GetBool("oneline", false),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_diff",
				mcp.WithDescription("Show changes in the working tree or against a ref"),
				mcp.WithString("target", mcp.Description("Ref to diff against")),
				mcp.WithBoolean("staged", mcp.Description("Show staged changes only")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.DiffRequest{
					WorkDir: workDir(r),
					Target:  r.GetString("target", ""),
					Staged:  r.GetBool("staged", false),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_show",
				mcp.WithDescription("Show a commit (defaults to HEAD)"),
				mcp.WithString("ref", mcp.Description("Commit, tag, or branch to show")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.ShowRequest{WorkDir: workDir(r), Ref: r.GetString("ref", "")}, nil
			},
		},
		{
			tool: mcp.NewTool("git_blame",
				mcp.WithDescription("Annotate each line of a file with its last-change commit"),
				mcp.WithString("file", mcp.Required(), mcp.Description("File to annotate")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.BlameRequest{WorkDir: workDir(r), File: r.GetString("file", "")}, nil
			},
		},
		{
			tool: mcp.NewTool("git_stash",
				mcp.WithDescription("Stash the current worktree changes"),
				mcp.WithString("message", mcp.Description("Stash description")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.StashRequest{WorkDir: workDir(r), Message: r.GetString("message", "")}, nil
			},
		},
		{
			tool: mcp.NewTool("git_stash_pop",
				mcp.WithDescription("Apply and drop the most recent stash entry"),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.StashPopRequest{WorkDir: workDir(r)}, nil
			},
		},
		{
			tool: mcp.NewTool("git_stash_list",
				mcp.WithDescription("List stash entries"),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.StashListRequest{WorkDir: workDir(r)}, nil
			},
		},
		{
			tool: mcp.NewTool("git_reset",
				mcp.WithDescription("Reset HEAD to a target; hard mode discards uncommitted work"),
				mcp.WithString("mode",
					mcp.Description("Reset mode (defaults to mixed)"),
					mcp.Enum("soft", "mixed", "hard"),
				),
				mcp.WithString("target", mcp.Description("Ref to reset to (defaults to HEAD)")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.ResetRequest{
					WorkDir: workDir(r),
					Mode:    domain.ResetMode(r.GetString("mode", "")),
					Target:  r.GetString("target", ""),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_clean",
				mcp.WithDescription("Remove untracked files and directories (requires force=true)"),
				mcp.WithBoolean("force", mcp.Required(), mcp.Description("Confirm the destructive cleanup")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.CleanRequest{WorkDir: workDir(r), Force: r.GetBool("force", false)}, nil
			},
		},
		{
			tool: mcp.NewTool("git_clone",
				mcp.WithDescription("Clone a repository"),
				mcp.WithString("url", mcp.Required(), mcp.Description("Repository URL")),
				mcp.WithString("directory", mcp.Description("Target directory")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.CloneRequest{
					WorkDir:   workDir(r),
					URL:       r.GetString("url", ""),
					Directory: r.GetString("directory", ""),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_init",
				mcp.WithDescription("Initialize a repository"),
				mcp.WithString("directory", mcp.Description("Directory to initialize (defaults to the working directory)")),
				mcp.WithBoolean("bare", mcp.Description("Create a bare repository")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.InitRequest{
					WorkDir:   workDir(r),
					Directory: r.GetString("directory", ""),
					Bare:      r.GetBool("bare", false),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_remote_list",
				mcp.WithDescription("List configured remotes"),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.RemoteListRequest{WorkDir: workDir(r)}, nil
			},
		},
		{
			tool: mcp.NewTool("git_remote_add",
				mcp.WithDescription("Add a remote"),
				mcp.WithString("name", mcp.Required(), mcp.Description("Remote name")),
				mcp.WithString("url", mcp.Required(), mcp.Description("Remote URL")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.RemoteAddRequest{
					WorkDir: workDir(r),
					Name:    r.GetString("name", ""),
					URL:     r.GetString("url", ""),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_remote_remove",
				mcp.WithDescription("Remove a remote"),
				mcp.WithString("name", mcp.Required(), mcp.Description("Remote name")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.RemoteRemoveRequest{WorkDir: workDir(r), Name: r.GetString("name", "")}, nil
			},
		},
		{
			tool: mcp.NewTool("git_tag_list",
				mcp.WithDescription("List tags"),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.TagListRequest{WorkDir: workDir(r)}, nil
			},
		},
		{
			tool: mcp.NewTool("git_tag_create",
				mcp.WithDescription("Create a tag at HEAD; a message makes it annotated"),
				mcp.WithString("name", mcp.Required(), mcp.Description("Tag name")),
				mcp.WithString("message", mcp.Description("Tag message")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.TagCreateRequest{
					WorkDir: workDir(r),
					Name:    r.GetString("name", ""),
					Message: r.GetString("message", ""),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_tag_delete",
				mcp.WithDescription("Delete a local tag"),
				mcp.WithString("name", mcp.Required(), mcp.Description("Tag name")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.TagDeleteRequest{WorkDir: workDir(r), Name: r.GetString("name", "")}, nil
			},
		},
		{
			tool: mcp.NewTool("git_merge",
				mcp.WithDescription("Merge a branch into the current branch"),
				mcp.WithString("branch", mcp.Description("Branch to merge")),
				mcp.WithBoolean("no_ff", mcp.Description("Always create a merge commit")),
				mcp.WithBoolean("abort", mcp.Description("Abort the in-progress merge")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.MergeRequest{
					WorkDir: workDir(r),
					Branch:  r.GetString("branch", ""),
					NoFF:    r.GetBool("no_ff", false),
					Abort:   r.GetBool("abort", false),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_rebase",
				mcp.WithDescription("Rebase the current branch onto a target"),
				mcp.WithString("target", mcp.Description("Ref to rebase onto")),
				mcp.WithBoolean("abort", mcp.Description("Abort the in-progress rebase")),
				mcp.WithBoolean("continue", mcp.Description("Continue the in-progress rebase")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.RebaseRequest{
					WorkDir:  workDir(r),
					Target:   r.GetString("target", ""),
					Abort:    r.GetBool("abort", false),
					Continue: r.GetBool("continue", false),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_cherry_pick",
				mcp.WithDescription("Apply an existing commit on top of the current branch"),
				mcp.WithString("commit", mcp.Required(), mcp.Description("Commit to apply")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.CherryPickRequest{WorkDir: workDir(r), Commit: r.GetString("commit", "")}, nil
			},
		},
		{
			tool: mcp.NewTool("git_bisect",
				mcp.WithDescription("Drive a bisect session"),
				mcp.WithString("action", mcp.Required(),
					mcp.Description("Bisect action"),
					mcp.Enum("start", "good", "bad", "reset"),
				),
				mcp.WithString("commit", mcp.Description("Commit for the good/bad actions")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.BisectRequest{
					WorkDir: workDir(r),
					Action:  domain.BisectAction(r.GetString("action", "")),
					Commit:  r.GetString("commit", ""),
				}, nil
			},
		},
		{
			tool: mcp.NewTool("git_flow",
				mcp.WithDescription("Stage everything, commit, and push in one workflow"),
				mcp.WithString("message", mcp.Required(), mcp.Description("Commit message")),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.FlowRequest{WorkDir: workDir(r), Message: r.GetString("message", "")}, nil
			},
		},
		{
			tool: mcp.NewTool("git_sync",
				mcp.WithDescription("Pull then push the current branch"),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.SyncRequest{WorkDir: workDir(r)}, nil
			},
		},
		{
			tool: mcp.NewTool("git_repo_info",
				mcp.WithDescription("Show repository information, enriched with GitHub metadata when available"),
				withPath(),
			),
			build: func(r mcp.CallToolRequest) (domain.Request, error) {
				return domain.RepoInfoRequest{WorkDir: workDir(r)}, nil
			},
		},
	}

	for _, reg := range registrations {
		s.AddTool(reg.tool, handle(runner, log, reg.build))
	}
}
