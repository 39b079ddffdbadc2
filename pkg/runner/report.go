package runner

// HookStatus is the outcome of a single hook.
type HookStatus string

// Hook outcome values.
const (
	StatusPassed  HookStatus = "passed"
	StatusFailed  HookStatus = "failed"
	StatusSkipped HookStatus = "skipped"
)

// HookResult is the outcome of one hook in a run.
type HookResult struct {
	ID            string
	Name          string
	Status        HookStatus
	ExitCode      int
	Output        string
	FilesModified bool
}

// Report is the ordered outcome of a hook set run. Hooks skipped by
// fail-fast do not appear at all.
type Report struct {
	Results []HookResult
}

// Success reports whether no hook failed.
func (r *Report) Success() bool {
	for _, result := range r.Results {
		if result.Status == StatusFailed {
			return false
		}
	}
	return true
}

// FirstFailure returns the first failed hook result, or nil.
func (r *Report) FirstFailure() *HookResult {
	for i := range r.Results {
		if r.Results[i].Status == StatusFailed {
			return &r.Results[i]
		}
	}
	return nil
}
