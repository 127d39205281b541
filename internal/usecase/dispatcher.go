package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/repository"
	"github.com/gitmcp/gitmcp/internal/service"
)

// Dispatcher resolves a typed operation request to its handler. It is the
// single dispatch boundary: every base operation enters here, gets its
// working directory validated, its repository preflight checked, and is then
// routed by a type switch.
type Dispatcher struct {
	stage     *StageUseCase
	commit    *CommitUseCase
	sync      *RemoteSyncUseCase
	branch    *BranchUseCase
	history   *HistoryUseCase
	stash     *StashUseCase
	reset     *ResetUseCase
	remote    *RemoteAdminUseCase
	tag       *TagUseCase
	merge     *MergeUseCase
	bisect    *BisectUseCase
	initRepo  *InitUseCase
	repoInfo  *RepoInfoUseCase
	fs        repository.FileSystemRepository
	inspector repository.GitInspector
	log       *zap.Logger
}

// NewDispatcher creates a Dispatcher wired to the given executor and
// repositories. github may be nil; git_repo_info then reports local
// information only.
func NewDispatcher(
	git service.GitExecutor,
	inspector repository.GitInspector,
	fs repository.FileSystemRepository,
	github repository.GithubRepository,
	log *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		stage:     &StageUseCase{Git: git, Inspector: inspector},
		commit:    &CommitUseCase{Git: git, Inspector: inspector},
		sync:      &RemoteSyncUseCase{Git: git, Inspector: inspector},
		branch:    &BranchUseCase{Git: git},
		history:   &HistoryUseCase{Git: git},
		stash:     &StashUseCase{Git: git},
		reset:     &ResetUseCase{Git: git},
		remote:    &RemoteAdminUseCase{Git: git},
		tag:       &TagUseCase{Git: git},
		merge:     &MergeUseCase{Git: git},
		bisect:    &BisectUseCase{Git: git},
		initRepo:  &InitUseCase{Git: git},
		repoInfo:  &RepoInfoUseCase{Inspector: inspector, Github: github},
		fs:        fs,
		inspector: inspector,
		log:       log,
	}
}

// Dispatch runs the handler for req and returns the human-readable result
// text. Failures come back as errors; the transport boundary converts them
// into failure envelopes.
func (d *Dispatcher) Dispatch(ctx context.Context, req domain.Request) (string, error) {
	if err := repository.ValidateWorkDir(d.fs, req.Dir()); err != nil {
		return "", err
	}
	if requiresRepository(req) && !d.inspector.IsRepository(ctx, req.Dir()) {
		return "", &domain.GitError{
			Kind:       domain.ErrNotARepository,
			Op:         req.Operation(),
			Message:    fmt.Sprintf("%s is not a git repository", req.Dir()),
			Suggestion: "run git_init to create a repository here, or pass the path of an existing one",
		}
	}
	d.log.Debug("dispatching operation",
		zap.String("operation", req.Operation()),
		zap.String("dir", req.Dir()),
	)

	switch r := req.(type) {
	case domain.StatusRequest:
		return d.stage.Status(ctx, r)
	case domain.AddRequest:
		return d.stage.Add(ctx, r)
	case domain.AddAllRequest:
		return d.stage.AddAll(ctx, r)
	case domain.CommitRequest:
		return d.commit.Execute(ctx, r)
	case domain.PushRequest:
		return d.sync.Push(ctx, r)
	case domain.PullRequest:
		return d.sync.Pull(ctx, r)
	case domain.FetchRequest:
		return d.sync.Fetch(ctx, r)
	case domain.CloneRequest:
		return d.sync.Clone(ctx, r)
	case domain.BranchListRequest:
		return d.branch.List(ctx, r)
	case domain.BranchCreateRequest:
		return d.branch.Create(ctx, r)
	case domain.BranchDeleteRequest:
		return d.branch.Delete(ctx, r)
	case domain.CheckoutRequest:
		return d.branch.Checkout(ctx, r)
	case domain.LogRequest:
		return d.history.Log(ctx, r)
	case domain.DiffRequest:
		return d.history.Diff(ctx, r)
	case domain.ShowRequest:
		return d.history.Show(ctx, r)
	case domain.BlameRequest:
		return d.history.Blame(ctx, r)
	case domain.StashRequest:
		return d.stash.Save(ctx, r)
	case domain.StashPopRequest:
		return d.stash.Pop(ctx, r)
	case domain.StashListRequest:
		return d.stash.List(ctx, r)
	case domain.ResetRequest:
		return d.reset.Reset(ctx, r)
	case domain.CleanRequest:
		return d.reset.Clean(ctx, r)
	case domain.RemoteListRequest:
		return d.remote.List(ctx, r)
	case domain.RemoteAddRequest:
		return d.remote.Add(ctx, r)
	case domain.RemoteRemoveRequest:
		return d.remote.Remove(ctx, r)
	case domain.TagListRequest:
		return d.tag.List(ctx, r)
	case domain.TagCreateRequest:
		return d.tag.Create(ctx, r)
	case domain.TagDeleteRequest:
		return d.tag.Delete(ctx, r)
	case domain.MergeRequest:
		return d.merge.Merge(ctx, r)
	case domain.RebaseRequest:
		return d.merge.Rebase(ctx, r)
	case domain.CherryPickRequest:
		return d.merge.CherryPick(ctx, r)
	case domain.BisectRequest:
		return d.bisect.Execute(ctx, r)
	case domain.InitRequest:
		return d.initRepo.Execute(ctx, r)
	case domain.RepoInfoRequest:
		return d.repoInfo.Execute(ctx, r)
	default:
		return "", domain.NewInvalidArgument(req.Operation(), "unsupported operation")
	}
}

// requiresRepository reports whether the operation needs an existing
// repository at the working directory. init and clone create repositories
// and are exempt.
func requiresRepository(req domain.Request) bool {
	switch req.(type) {
	case domain.InitRequest, domain.CloneRequest:
		return false
	default:
		return true
	}
}
