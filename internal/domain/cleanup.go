package domain

import "time"

// CleanupOptions narrow one cover image cleanup run.
type CleanupOptions struct {
	Source            Source
	DryRun            bool
	CheckReachability bool
	TimeBudget        time.Duration
}

// CleanupSummary reports one cover image cleanup run. Invalid counts
// vehicles whose cover failed a check. Removed and Unavailable count the
// writes made for them.
type CleanupSummary struct {
	Source      Source        `json:"source,omitempty"`
	DryRun      bool          `json:"dry_run"`
	Scanned     int           `json:"scanned"`
	Invalid     int           `json:"invalid"`
	Unreachable int           `json:"unreachable"`
	Removed     int           `json:"removed"`
	Unavailable int           `json:"unavailable"`
	Failed      int           `json:"failed"`
	Partial     bool          `json:"partial"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration_ns"`
}
