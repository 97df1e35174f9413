package types

import "time"

// RepoRef identifies a repository on the hosting service.
type RepoRef struct {
	Owner string
	Name  string
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

type RepoMetadata struct {
	Owner       string
	Name        string
	FullName    string
	Description string
	Stars       int
	Forks       int
	UpdatedAt   time.Time
	HTMLURL     string
}

type EntryKind string

const (
	EntryFile EntryKind = "file"
	EntryDir  EntryKind = "dir"
)

type FileEntry struct {
	Path        string
	Kind        EntryKind
	Size        int
	DownloadURL string
}

// TreeNode is one directory in the nested layout tree. Files are counted
// in RepoStructure.FileTypes rather than stored as leaves.
type TreeNode struct {
	Children map[string]*TreeNode
}

type RepoStructure struct {
	FileTypes  map[string]int
	TotalFiles int
	Tree       *TreeNode
}

type Commit struct {
	SHA        string
	AuthoredAt time.Time
}

type ActivityMetrics struct {
	TotalCommits      int
	TotalContributors int
	TotalIssues       int
	CommitDates       []string
	RecentActivity    bool
}

// SampledFile always carries printable content: the file body when the
// fetch succeeds, otherwise a placeholder describing why it is absent.
// Error holds the fetch failure description, empty on success.
type SampledFile struct {
	Path    string
	Content string
	Size    int
	Error   string
}

type StructuredAssessment struct {
	Verdict   string
	Ratings   map[string]string
	Narrative string
}

type AnalysisReport struct {
	Ref         RepoRef
	Metadata    RepoMetadata
	Structure   RepoStructure
	Activity    ActivityMetrics
	SampleCount int
	RawAnalysis string
	Assessment  StructuredAssessment
	Segments    []string
}
