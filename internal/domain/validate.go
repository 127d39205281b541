package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// branchNameRegex matches valid git branch names
	branchNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)
	// remoteNameRegex matches valid git remote names
	remoteNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

// ValidateBranchName validates a git branch name.
func ValidateBranchName(branch string) error {
	if branch == "" {
		return fmt.Errorf("branch name cannot be empty")
	}
	if len(branch) > 255 {
		return fmt.Errorf("branch name too long: %d characters (max: 255)", len(branch))
	}
	// Check for invalid patterns
	if strings.HasPrefix(branch, "/") || strings.HasSuffix(branch, "/") {
		return fmt.Errorf("branch name cannot start or end with slash: %s", branch)
	}
	if strings.HasPrefix(branch, "-") {
		return fmt.Errorf("branch name cannot start with a dash: %s", branch)
	}
	if strings.Contains(branch, "..") {
		return fmt.Errorf("branch name cannot contain consecutive dots: %s", branch)
	}
	if strings.HasSuffix(branch, ".lock") {
		return fmt.Errorf("branch name cannot end with .lock: %s", branch)
	}
	if !branchNameRegex.MatchString(branch) {
		return fmt.Errorf("invalid branch name format: %s", branch)
	}
	return nil
}

// ValidateRemoteName validates a git remote name.
func ValidateRemoteName(name string) error {
	if name == "" {
		return fmt.Errorf("remote name cannot be empty")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("remote name cannot start with a dash: %s", name)
	}
	if !remoteNameRegex.MatchString(name) {
		return fmt.Errorf("invalid remote name format: %s", name)
	}
	return nil
}

// ValidateRef rejects empty refs and refs that would be parsed as git
// command-line options.
func ValidateRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("ref cannot be empty")
	}
	if strings.HasPrefix(ref, "-") {
		return fmt.Errorf("ref cannot start with a dash: %s", ref)
	}
	return nil
}
