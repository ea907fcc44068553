package meta

import "runtime"

// OsName identifies one of the three operating systems the manifest's
// library rules distinguish
type OsName string

const (
	OsLinux   OsName = "linux"
	OsWindows OsName = "windows"
	OsOsx     OsName = "osx"
)

// CurrentOS maps runtime.GOOS onto the manifest's operating system naming
func CurrentOS() OsName {
	switch runtime.GOOS {
	case "windows":
		return OsWindows
	case "darwin":
		return OsOsx
	default:
		return OsLinux
	}
}

// IsCurrent reports whether the name matches the operating system the
// program is running on
func (o OsName) IsCurrent() bool {
	return o == CurrentOS()
}

// RuleAction is the effect of a matched library rule
type RuleAction string

const (
	ActionAllow    RuleAction = "allow"
	ActionDisallow RuleAction = "disallow"
)

// OsRule restricts a rule to a single operating system
type OsRule struct {
	Name OsName `json:"name"`
}

// Rule gates a library on the operating system it runs on
type Rule struct {
	Action RuleAction `json:"action"`
	OS     *OsRule    `json:"os,omitempty"`
}

// Allowed reports whether the rule permits the current operating system
func (r Rule) Allowed() bool {
	return r.allowedOn(CurrentOS())
}

func (r Rule) allowedOn(current OsName) bool {
	if r.Action == ActionDisallow {
		// An unconditional disallow excludes every operating system
		return r.OS != nil && r.OS.Name != current
	}
	return r.OS == nil || r.OS.Name == current
}

// Library describes one dependency of a version: where to fetch it, which
// native classifiers exist, and the operating system rules gating it
type Library struct {
	Name      string              `json:"name"`
	Downloads LibraryDownloads    `json:"downloads"`
	Extract   ExtractInstructions `json:"extract,omitempty"`
	Natives   map[OsName]string   `json:"natives,omitempty"`
	Rules     []Rule              `json:"rules,omitempty"`
}

// LibraryDownloads holds a library's main artifact plus any per-classifier
// artifacts, keyed the way the natives map references them
type LibraryDownloads struct {
	Artifact    LibraryDownload            `json:"artifact"`
	Classifiers map[string]LibraryDownload `json:"classifiers,omitempty"`
}

// LibraryDownload is a downloadable jar together with its repository path
type LibraryDownload struct {
	Path string `json:"path"`
	SHA1 string `json:"sha1"`
	Size uint64 `json:"size"`
	URL  string `json:"url"`
}

// ExtractInstructions lists archive paths excluded when a library is
// unpacked
type ExtractInstructions struct {
	Exclude []string `json:"exclude,omitempty"`
}

// IsEmpty reports whether the instructions exclude nothing
func (e ExtractInstructions) IsEmpty() bool {
	return len(e.Exclude) == 0
}

// Allowed reports whether every rule permits the library on the current
// operating system. A library with no rules is always allowed
func (l *Library) Allowed() bool {
	return l.allowedOn(CurrentOS())
}

func (l *Library) allowedOn(current OsName) bool {
	for _, rule := range l.Rules {
		if !rule.allowedOn(current) {
			return false
		}
	}
	return true
}

// Artifact returns the library's main jar descriptor
func (l *Library) Artifact() *LibraryDownload {
	return &l.Downloads.Artifact
}

// Native returns the classifier artifact for the current operating system,
// or nil when the library ships no matching natives
func (l *Library) Native() *LibraryDownload {
	return l.nativeFor(CurrentOS())
}

func (l *Library) nativeFor(current OsName) *LibraryDownload {
	key, ok := l.Natives[current]
	if !ok {
		return nil
	}
	classifier, ok := l.Downloads.Classifiers[key]
	if !ok {
		return nil
	}
	return &classifier
}
