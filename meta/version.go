package meta

// VersionManifest is the subset of a per-version manifest this module
// consumes: identity, the top-level downloads, and the library list. The
// hosted document carries many more fields (launch arguments, asset indexes,
// java versions) that decode away harmlessly
type VersionManifest struct {
	ID        string           `json:"id"`
	Downloads VersionDownloads `json:"downloads"`
	Libraries []Library        `json:"libraries"`
}

// VersionDownloads holds the four top-level artifacts of a version: the two
// game jars and their ProGuard mapping files
type VersionDownloads struct {
	Client         DownloadInfo `json:"client"`
	ClientMappings DownloadInfo `json:"client_mappings"`
	Server         DownloadInfo `json:"server"`
	ServerMappings DownloadInfo `json:"server_mappings"`
}

// DownloadInfo describes a single downloadable artifact
type DownloadInfo struct {
	SHA1 string `json:"sha1"`
	Size uint64 `json:"size"`
	URL  string `json:"url"`
}
