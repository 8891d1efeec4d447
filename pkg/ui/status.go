package ui

// Status is the state of one entry as reported by the status command
type Status string

const (
	StatusLinked   Status = "linked"   // Target is the desired link
	StatusPending  Status = "pending"  // Nothing at the target yet
	StatusMerged   Status = "merged"   // Real directory at the target, children reconciled individually
	StatusStale    Status = "stale"    // Target links somewhere else and will be replaced
	StatusConflict Status = "conflict" // Target holds data link will refuse to touch
	StatusError    Status = "error"    // Target could not be inspected
)

// EntryStatus is one line of a status report
type EntryStatus struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Status Status `yaml:"status"`
	Detail string `yaml:"detail,omitempty"`
}

// StatusReport is the document printed by the status command
type StatusReport struct {
	MetadataPath string        `yaml:"metadata"`
	TargetRoot   string        `yaml:"target_root"`
	Entries      []EntryStatus `yaml:"entries"`
}

// Counts returns how many entries are in each status
func (r StatusReport) Counts() map[Status]int {
	counts := make(map[Status]int)
	for _, e := range r.Entries {
		counts[e.Status]++
	}
	return counts
}

// Healthy reports whether link could run without refusing any entry
func (r StatusReport) Healthy() bool {
	for _, e := range r.Entries {
		if e.Status == StatusConflict || e.Status == StatusError {
			return false
		}
	}
	return true
}
