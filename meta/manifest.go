// Package meta fetches and decodes the publicly hosted Minecraft version
// metadata: the root version manifest, the per-version manifests it points
// at, and the download descriptors those contain.
package meta

import (
	"time"

	"golang.org/x/exp/slices"
)

// ManifestURL is the publicly hosted root version manifest
const ManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

// ReleaseKind classifies a version release
type ReleaseKind string

const (
	KindSnapshot ReleaseKind = "snapshot"
	KindRelease  ReleaseKind = "release"
	KindOldBeta  ReleaseKind = "old_beta"
	KindOldAlpha ReleaseKind = "old_alpha"
)

// LatestReleases names the most recent release and snapshot version ids
type LatestReleases struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

// VersionRelease is one entry in the root manifest's version list
type VersionRelease struct {
	ID              string      `json:"id"`
	Kind            ReleaseKind `json:"type"`
	URL             string      `json:"url"`
	Time            time.Time   `json:"time"`
	ReleaseTime     time.Time   `json:"releaseTime"`
	SHA1            string      `json:"sha1"`
	ComplianceLevel int         `json:"complianceLevel"`
}

// RootManifest is the decoded root version manifest
type RootManifest struct {
	Latest   LatestReleases   `json:"latest"`
	Versions []VersionRelease `json:"versions"`
}

// Version looks up a release by its version id, returning nil when the
// manifest does not list it
func (m *RootManifest) Version(id string) *VersionRelease {
	for i := range m.Versions {
		if m.Versions[i].ID == id {
			return &m.Versions[i]
		}
	}
	return nil
}

// LatestRelease returns the release named by the manifest's latest block
func (m *RootManifest) LatestRelease() *VersionRelease {
	return m.Version(m.Latest.Release)
}

// LatestSnapshot returns the snapshot named by the manifest's latest block
func (m *RootManifest) LatestSnapshot() *VersionRelease {
	return m.Version(m.Latest.Snapshot)
}

// SortedByReleaseTime returns a copy of the version list ordered newest
// first
func (m *RootManifest) SortedByReleaseTime() []VersionRelease {
	sorted := slices.Clone(m.Versions)
	slices.SortFunc(sorted, func(a, b VersionRelease) bool {
		return a.ReleaseTime.After(b.ReleaseTime)
	})
	return sorted
}
