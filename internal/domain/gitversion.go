package domain

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// MinimumGitVersion is the oldest git release the executor is validated
// against. Older versions may still work but are not checked for.
var MinimumGitVersion = semver.MustParse("2.20.0")

// gitVersionRegex extracts the version triple from `git --version` output,
// e.g. "git version 2.39.2" or "git version 2.39.2 (Apple Git-143)".
var gitVersionRegex = regexp.MustCompile(`git version (\d+\.\d+(?:\.\d+)?)`)

// ParseGitVersion parses the output of `git --version` into a semver version.
func ParseGitVersion(output string) (*semver.Version, error) {
	matches := gitVersionRegex.FindStringSubmatch(output)
	if len(matches) < 2 {
		return nil, fmt.Errorf("unrecognized git version output: %q", output)
	}
	v, err := semver.NewVersion(matches[1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse git version %q: %w", matches[1], err)
	}
	return v, nil
}

// IsSupportedGitVersion reports whether the given version meets the minimum
// supported git release.
func IsSupportedGitVersion(v *semver.Version) bool {
	return !v.LessThan(MinimumGitVersion)
}
