package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/gitmcp/gitmcp/internal/config"
	"github.com/gitmcp/gitmcp/internal/domain"
)

// gitExecutor is the implementation of the GitExecutor interface.
type gitExecutor struct {
	binary         string
	defaultTimeout time.Duration
	networkTimeout time.Duration
	log            *zap.Logger
}

// NewGitExecutor creates a new GitExecutor.
func NewGitExecutor(cfg *config.Config, log *zap.Logger) GitExecutor {
	return &gitExecutor{
		binary:         cfg.GitBinary,
		defaultTimeout: cfg.DefaultTimeout,
		networkTimeout: cfg.NetworkTimeout,
		log:            log,
	}
}

// Run executes git with the given arguments in dir and returns stdout.
// Network subcommands (push, pull, fetch, clone) get the longer timeout.
// Failures come back as classified *domain.GitError values; nothing is
// retried.
func (s *gitExecutor) Run(ctx context.Context, dir string, args ...string) (string, error) {
	timeout := s.defaultTimeout
	op := "git"
	if len(args) > 0 {
		op = args[0]
		if networkSubcommands[args[0]] {
			timeout = s.networkTimeout
		}
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.binary, args...)
	cmd.Dir = dir
	// LC_ALL=C keeps git's messages in English so the substring fallback in
	// the classifier sees known output. GIT_TERMINAL_PROMPT=0 prevents git
	// from blocking on interactive credential prompts.
	cmd.Env = append(os.Environ(), "LC_ALL=C", "LANG=C", "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.log.Debug("running git",
		zap.String("command", shellquote.Join(append([]string{s.binary}, args...)...)),
		zap.String("dir", dir),
		zap.Duration("timeout", timeout),
	)

	start := time.Now()
	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", &domain.GitError{
				Kind:       domain.ErrTimeout,
				Op:         op,
				Message:    fmt.Sprintf("command timed out after %v", timeout),
				Suggestion: "increase the timeout in the configuration or check for hung network operations",
			}
		}
		gitErr := Classify(op, stdout.String(), stderr.String())
		s.log.Debug("git command failed",
			zap.String("operation", op),
			zap.String("kind", string(gitErr.Kind)),
			zap.Duration("elapsed", time.Since(start)),
		)
		return "", gitErr
	}

	s.log.Debug("git command succeeded",
		zap.String("operation", op),
		zap.Duration("elapsed", time.Since(start)),
	)
	return stdout.String(), nil
}

// Version returns the version of the installed git binary.
func (s *gitExecutor) Version(ctx context.Context) (*semver.Version, error) {
	out, err := s.Run(ctx, ".", "--version")
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s --version: %w", s.binary, err)
	}
	return domain.ParseGitVersion(out)
}
