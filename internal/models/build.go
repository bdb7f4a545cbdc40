package models

import "strings"

// BuildInformation is set at build time through ldflags.
type BuildInformation struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"buildDate"`
}

// VersionString returns the version, suffixed with the short commit
// hash for development builds tagged latest.
func (b BuildInformation) VersionString() string {
	const shortCommitLength = 7
	if b.Version != "latest" || len(b.Commit) < shortCommitLength ||
		!isHex(b.Commit) {
		return b.Version
	}
	return b.Version + "-" + b.Commit[:shortCommitLength]
}

// String is the line printed by the version command.
func (b BuildInformation) String() string {
	return "dynners " + b.VersionString() + " (commit " + b.Commit + ", built " + b.Date + ")"
}

func isHex(s string) bool {
	return strings.Trim(strings.ToLower(s), "0123456789abcdef") == ""
}
