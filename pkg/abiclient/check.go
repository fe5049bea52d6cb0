package abiclient

// CheckResult is the outcome of one conformance check.
type CheckResult struct {
	Name    string `json:"name"`
	Skipped bool   `json:"skipped,omitempty"`
	Err     error  `json:"-"`
	Detail  string `json:"detail,omitempty"`
}

// Passed reports whether the check ran and succeeded.
func (r CheckResult) Passed() bool {
	return !r.Skipped && r.Err == nil
}

// Summary counts passed, failed and skipped results.
func Summary(results []CheckResult) (passed, failed, skipped int) {
	for _, r := range results {
		switch {
		case r.Skipped:
			skipped++
		case r.Err != nil:
			failed++
		default:
			passed++
		}
	}
	return passed, failed, skipped
}
