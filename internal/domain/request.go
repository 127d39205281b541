package domain

// Request is one typed operation request. Each operation carries only its
// relevant fields; the dispatch boundary resolves the concrete type with a
// type switch.
type Request interface {
	// Operation returns the tool name, e.g. "git_commit".
	Operation() string
	// Dir returns the caller-supplied working directory.
	Dir() string
}

// WorkDir is the common working-directory field embedded by every request.
type WorkDir struct {
	Path string
}

func (w WorkDir) Dir() string { return w.Path }

type StatusRequest struct{ WorkDir }

func (StatusRequest) Operation() string { return "git_status" }

type AddRequest struct {
	WorkDir
	Files []string
}

func (AddRequest) Operation() string { return "git_add" }

type AddAllRequest struct{ WorkDir }

func (AddAllRequest) Operation() string { return "git_add_all" }

type CommitRequest struct {
	WorkDir
	Message string
}

func (CommitRequest) Operation() string { return "git_commit" }

type PushRequest struct {
	WorkDir
	Remote string
	Branch string
	Force  bool
}

func (PushRequest) Operation() string { return "git_push" }

type PullRequest struct {
	WorkDir
	Remote string
	Branch string
}

func (PullRequest) Operation() string { return "git_pull" }

type FetchRequest struct {
	WorkDir
	Remote string
}

func (FetchRequest) Operation() string { return "git_fetch" }

type BranchListRequest struct {
	WorkDir
	All bool
}

func (BranchListRequest) Operation() string { return "git_branch_list" }

type BranchCreateRequest struct {
	WorkDir
	Name     string
	Checkout bool
}

func (BranchCreateRequest) Operation() string { return "git_branch_create" }

type BranchDeleteRequest struct {
	WorkDir
	Name  string
	Force bool
}

func (BranchDeleteRequest) Operation() string { return "git_branch_delete" }

type CheckoutRequest struct {
	WorkDir
	Target string
	Create bool
}

func (CheckoutRequest) Operation() string { return "git_checkout" }

type LogRequest struct {
	WorkDir
	Count   int
	Oneline bool
}

func (LogRequest) Operation() string { return "git_log" }

type DiffRequest struct {
	WorkDir
	Target string
	Staged bool
}

func (DiffRequest) Operation() string { return "git_diff" }

type ShowRequest struct {
	WorkDir
	Ref string
}

func (ShowRequest) Operation() string { return "git_show" }

type BlameRequest struct {
	WorkDir
	File string
}

func (BlameRequest) Operation() string { return "git_blame" }

type StashRequest struct {
	WorkDir
	Message string
}

func (StashRequest) Operation() string { return "git_stash" }

type StashPopRequest struct{ WorkDir }

func (StashPopRequest) Operation() string { return "git_stash_pop" }

type StashListRequest struct{ WorkDir }

func (StashListRequest) Operation() string { return "git_stash_list" }

// ResetMode is the reset strategy passed to git reset.
type ResetMode string

const (
	ResetSoft  ResetMode = "soft"
	ResetMixed ResetMode = "mixed"
	ResetHard  ResetMode = "hard"
)

type ResetRequest struct {
	WorkDir
	Mode   ResetMode
	Target string
}

func (ResetRequest) Operation() string { return "git_reset" }

type CleanRequest struct {
	WorkDir
	Force bool
}

func (CleanRequest) Operation() string { return "git_clean" }

type CloneRequest struct {
	WorkDir
	URL       string
	Directory string
}

func (CloneRequest) Operation() string { return "git_clone" }

type InitRequest struct {
	WorkDir
	Directory string
	Bare      bool
}

func (InitRequest) Operation() string { return "git_init" }

type RemoteListRequest struct{ WorkDir }

func (RemoteListRequest) Operation() string { return "git_remote_list" }

type RemoteAddRequest struct {
	WorkDir
	Name string
	URL  string
}

func (RemoteAddRequest) Operation() string { return "git_remote_add" }

type RemoteRemoveRequest struct {
	WorkDir
	Name string
}

func (RemoteRemoveRequest) Operation() string { return "git_remote_remove" }

type TagListRequest struct{ WorkDir }

func (TagListRequest) Operation() string { return "git_tag_list" }

type TagCreateRequest struct {
	WorkDir
	Name    string
	Message string
}

func (TagCreateRequest) Operation() string { return "git_tag_create" }

type TagDeleteRequest struct {
	WorkDir
	Name string
}

func (TagDeleteRequest) Operation() string { return "git_tag_delete" }

type MergeRequest struct {
	WorkDir
	Branch string
	NoFF   bool
	Abort  bool
}

func (MergeRequest) Operation() string { return "git_merge" }

type RebaseRequest struct {
	WorkDir
	Target   string
	Abort    bool
	Continue bool
}

func (RebaseRequest) Operation() string { return "git_rebase" }

type CherryPickRequest struct {
	WorkDir
	Commit string
}

func (CherryPickRequest) Operation() string { return "git_cherry_pick" }

// BisectAction is the bisect subcommand to run.
type BisectAction string

const (
	BisectStart BisectAction = "start"
	BisectGood  BisectAction = "good"
	BisectBad   BisectAction = "bad"
	BisectReset BisectAction = "reset"
)

type BisectRequest struct {
	WorkDir
	Action BisectAction
	Commit string
}

func (BisectRequest) Operation() string { return "git_bisect" }

type FlowRequest struct {
	WorkDir
	Message string
}

func (FlowRequest) Operation() string { return "git_flow" }

type SyncRequest struct{ WorkDir }

func (SyncRequest) Operation() string { return "git_sync" }

type RepoInfoRequest struct{ WorkDir }

func (RepoInfoRequest) Operation() string { return "git_repo_info" }
