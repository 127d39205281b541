package service

import (
	"regexp"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
)

// classificationRule maps known substrings in git's output to a failure kind.
// Matching is case-insensitive and checked in order; the first rule with a
// matching substring wins. Substring matching against git's English output is
// inherently fragile; the executor pins LC_ALL=C so at least the locale is
// stable. Structured signals (go-git preflight, context deadlines) are
// handled before this table is ever consulted.
type classificationRule struct {
	substrings []string
	kind       domain.ErrorKind
	message    string
	suggestion string
}

var classificationRules = []classificationRule{
	{
		substrings: []string{"not a git repository"},
		kind:       domain.ErrNotARepository,
		message:    "not a git repository (or any parent up to mount point)",
		suggestion: "run git_init to create a repository here, or pass the path of an existing one",
	},
	{
		substrings: []string{
			"could not read username",
			"could not read password",
			"authentication failed",
			"invalid username or password",
			"permission denied (publickey",
		},
		kind:       domain.ErrAuthFailed,
		message:    "authentication failed",
		suggestion: "check your credentials, token, or SSH key for the remote",
	},
	{
		substrings: []string{
			"could not resolve host",
			"unable to access",
			"network is unreachable",
			"connection timed out",
			"connection refused",
		},
		kind:       domain.ErrNetworkFailed,
		message:    "network failure while contacting the remote",
		suggestion: "check network connectivity and the remote URL",
	},
	{
		substrings: []string{
			"updates were rejected",
			"non-fast-forward",
			"fetch first",
			"failed to push some refs",
		},
		kind:       domain.ErrPushRejected,
		message:    "push rejected: the remote contains work you do not have locally",
		suggestion: "run git_pull first, then retry the push",
	},
	{
		substrings: []string{
			"merge conflict",
			"needs merge",
			"fix conflicts",
			"could not apply",
			"conflict",
		},
		kind:       domain.ErrConflict,
		message:    "operation stopped due to conflicts",
		suggestion: "resolve the conflicted files, stage them with git_add, then continue (or abort) the operation",
	},
	{
		substrings: []string{"permission denied", "operation not permitted"},
		kind:       domain.ErrPermissionDenied,
		message:    "permission denied",
		suggestion: "check filesystem permissions for the repository path",
	},
	{
		substrings: []string{"did not match any file", "pathspec"},
		kind:       domain.ErrInvalidArgument,
		message:    "the given path or revision does not match anything known to git",
	},
	{
		substrings: []string{"nothing to commit"},
		kind:       domain.ErrInvalidArgument,
		message:    "nothing to commit",
		suggestion: "stage changes with git_add or git_add_all first",
	},
}

// conflictFileRegex extracts file names from merge/rebase/cherry-pick
// conflict output, e.g. "CONFLICT (content): Merge conflict in main.go".
var conflictFileRegex = regexp.MustCompile(`(?m)^CONFLICT \([^)]+\): .*? in (.+)$`)

// Classify converts a failed git invocation into a classified GitError by
// matching known substrings in its output. Unrecognized failures fall through
// to ErrUnknown carrying the raw stderr.
func Classify(op, stdout, stderr string) *domain.GitError {
	combined := stdout + "\n" + stderr
	lowered := strings.ToLower(combined)
	for _, rule := range classificationRules {
		for _, substr := range rule.substrings {
			if !strings.Contains(lowered, substr) {
				continue
			}
			gitErr := &domain.GitError{
				Kind:       rule.kind,
				Op:         op,
				Message:    rule.message,
				Suggestion: rule.suggestion,
				Stderr:     strings.TrimSpace(stderr),
			}
			if rule.kind == domain.ErrConflict {
				gitErr.ConflictFiles = parseConflictFiles(combined)
			}
			return gitErr
		}
	}
	message := strings.TrimSpace(stderr)
	if message == "" {
		message = "git command failed"
	}
	return &domain.GitError{
		Kind:    domain.ErrUnknown,
		Op:      op,
		Message: message,
		Stderr:  strings.TrimSpace(stderr),
	}
}

// parseConflictFiles lists the files git reported as conflicted.
func parseConflictFiles(output string) []string {
	var files []string
	seen := map[string]bool{}
	for _, match := range conflictFileRegex.FindAllStringSubmatch(output, -1) {
		file := strings.TrimSpace(match[1])
		if file != "" && !seen[file] {
			seen[file] = true
			files = append(files, file)
		}
	}
	return files
}
