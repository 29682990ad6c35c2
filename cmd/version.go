package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/ajxudir/creatordash/pkg/constants"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X github.com/ajxudir/creatordash/cmd.Version=v1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// BuildTime is the timestamp of the build.
	BuildTime = ""
	// GitCommit is the git commit hash of the build.
	GitCommit = ""
	// BuildOS is the target OS the binary was built for.
	BuildOS = ""
	// BuildArch is the target architecture the binary was built for.
	BuildArch = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Show version, build date, and system information.`,
	Run: func(cmd *cobra.Command, args []string) {
		printVersionOutput()
	},
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// canonicalVersion returns Version with a "v" prefix, as semver expects.
func canonicalVersion() string {
	if strings.HasPrefix(Version, "v") {
		return Version
	}
	return "v" + Version
}

// getBuildTarget returns the OS and architecture the binary was built for,
// falling back to the runtime values when ldflags did not set them.
func getBuildTarget() (string, string) {
	buildOS, buildArch := BuildOS, BuildArch
	if buildOS == "" {
		buildOS = runtime.GOOS
	}
	if buildArch == "" {
		buildArch = runtime.GOARCH
	}
	return buildOS, buildArch
}

// HasArchMismatch reports whether the binary targets a different platform
// than the one it runs on. Builds without ldflags never mismatch.
func HasArchMismatch() bool {
	if BuildOS == "" && BuildArch == "" {
		return false
	}
	buildOS, buildArch := getBuildTarget()
	return buildOS != runtime.GOOS || buildArch != runtime.GOARCH
}

// IsDevBuild returns true if Version is not a valid semantic version.
//
// The default "dev" string, an empty string and ad-hoc labels all count as
// development builds. "1.2.3" and "v1.2.3" are both accepted as releases.
//
// Returns:
//   - bool: true for untagged builds; false for tagged releases and prereleases
func IsDevBuild() bool {
	return !semver.IsValid(canonicalVersion())
}

// IsPrerelease returns true if Version is a valid semantic version carrying a
// prerelease suffix (e.g., "v1.2.0-rc.1").
func IsPrerelease() bool {
	v := canonicalVersion()
	return semver.IsValid(v) && semver.Prerelease(v) != ""
}

// GetArchMismatchWarning returns the platform mismatch warning, or "".
func GetArchMismatchWarning() string {
	if !HasArchMismatch() {
		return ""
	}
	buildOS, buildArch := getBuildTarget()
	return buildWarning(
		fmt.Sprintf("Architecture mismatch: binary built for %s/%s but running on %s/%s", buildOS, buildArch, runtime.GOOS, runtime.GOARCH),
		"This may cause unexpected behavior. Please download the correct binary.",
	)
}

// GetDevBuildWarning returns the untagged build warning, or "".
func GetDevBuildWarning() string {
	if !IsDevBuild() {
		return ""
	}
	return buildWarning(
		"Development build: this is an unreleased version without a version tag.",
		"For production use, please install a released version.",
	)
}

// GetPrereleaseWarning returns the prerelease warning, or "".
func GetPrereleaseWarning() string {
	if !IsPrerelease() {
		return ""
	}
	return buildWarning(
		"Prerelease build: "+Version,
		"Not intended for production. Install a stable release (vX.Y.Z) instead.",
	)
}

// buildWarning formats a headline with the warning icon and indented detail lines.
func buildWarning(headline string, details ...string) string {
	var sb strings.Builder
	sb.WriteString(constants.IconWarn + "  " + headline + "\n")
	for _, d := range details {
		sb.WriteString("   " + d + "\n")
	}
	return sb.String()
}

// GetBuildWarnings returns every applicable build warning, printed before
// each command unless --skip-build-checks is set.
func GetBuildWarnings() string {
	return GetArchMismatchWarning() + GetDevBuildWarning() + GetPrereleaseWarning()
}
