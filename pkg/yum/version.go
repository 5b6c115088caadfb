package yum

import (
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

var versionToken = regexp.MustCompile(`\d+\.\d+\.\d+`)

// parseVersionOutput extracts the tool version from `<tool> --version`
// output: the first N.N.N token of the first line, or the whole first line
// when no token is found.
func parseVersionOutput(out string) string {
	lines := strings.SplitN(out, "\n", 2)
	firstLine := strings.TrimSpace(lines[0])
	if token := versionToken.FindString(firstLine); token != "" {
		return token
	}
	return firstLine
}

// SemVer returns the detected tool version as a comparable version value,
// or nil when the version string does not parse.
func (b *Backend) SemVer() *goversion.Version {
	v, err := goversion.NewVersion(b.version)
	if err != nil {
		return nil
	}
	return v
}
