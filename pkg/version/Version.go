package version

import "strings"

type Version struct {
	Version string
}

func NewClient(version string) *Version {
	return &Version{
		Version: strings.TrimSpace(version),
	}
}
