package domain

import (
	"encoding/json"
	"time"
)

type SyncMode string

const (
	ModeFull    SyncMode = "full"
	ModeChanges SyncMode = "changes"
)

func ParseSyncMode(s string) (SyncMode, bool) {
	switch SyncMode(s) {
	case ModeFull:
		return ModeFull, true
	case ModeChanges:
		return ModeChanges, true
	}
	return "", false
}

type SyncStatus string

const (
	SyncIdle    SyncStatus = "idle"
	SyncRunning SyncStatus = "running"
	SyncSuccess SyncStatus = "success"
	SyncFailed  SyncStatus = "failed"
)

type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeChanged ChangeType = "changed"
	ChangeRemoved ChangeType = "removed"
)

// OfferFilters narrows a full listing scan.
type OfferFilters struct {
	Mark     string
	Model    string
	YearFrom int
	YearTo   int
}

// RawOffer is one upstream record before normalization. Payload is the
// source-specific JSON body and is empty for removals.
type RawOffer struct {
	InnerID    string
	ChangeType ChangeType
	Payload    json.RawMessage
}

// OfferPage is one page of a full listing. NextPage is nil on the last page.
type OfferPage struct {
	Offers   []RawOffer
	NextPage *int
}

// ChangePage is one page of the change stream.
type ChangePage struct {
	Changes    []RawOffer
	NextCursor string
}

// SyncCursor is the per-source watermark and last-run state.
type SyncCursor struct {
	Source         Source     `db:"source" json:"source"`
	ChangeID       *string    `db:"change_id" json:"change_id"`
	FullScanPage   *int       `db:"full_scan_page" json:"full_scan_page"`
	LastSyncAt     *time.Time `db:"last_sync_at" json:"last_sync_at"`
	LastSyncStatus SyncStatus `db:"last_sync_status" json:"last_sync_status"`
	LastSyncError  *string    `db:"last_sync_error" json:"last_sync_error"`
	RunStartedAt   *time.Time `db:"run_started_at" json:"run_started_at"`
	Added          int        `db:"vehicles_added" json:"vehicles_added"`
	Updated        int        `db:"vehicles_updated" json:"vehicles_updated"`
	Removed        int        `db:"vehicles_removed" json:"vehicles_removed"`
	Errors         int        `db:"errors_count" json:"errors_count"`
}

// SyncLog is the append-only audit row of one run.
type SyncLog struct {
	ID           string     `db:"id" json:"id"`
	Source       Source     `db:"source" json:"source"`
	Mode         SyncMode   `db:"mode" json:"mode"`
	Status       SyncStatus `db:"status" json:"status"`
	StartedAt    time.Time  `db:"started_at" json:"started_at"`
	EndedAt      *time.Time `db:"ended_at" json:"ended_at"`
	Added        int        `db:"vehicles_added" json:"vehicles_added"`
	Updated      int        `db:"vehicles_updated" json:"vehicles_updated"`
	Removed      int        `db:"vehicles_removed" json:"vehicles_removed"`
	Errors       int        `db:"errors_count" json:"errors_count"`
	ErrorMessage *string    `db:"error_message" json:"error_message"`
}

// SyncOptions tune a single run. Zero values fall back to configured
// defaults. ChangeID and Since override the stored change cursor.
type SyncOptions struct {
	Mode        SyncMode
	MaxPages    int
	StartPage   int
	Filters     OfferFilters
	RemoveStale bool
	TimeBudget  time.Duration
	ChangeID    string
	Since       *time.Time
}

// SyncSummary is what a run reports back to its caller.
type SyncSummary struct {
	RunID         string        `json:"run_id"`
	Source        Source        `json:"source"`
	Mode          SyncMode      `json:"mode"`
	Status        SyncStatus    `json:"status"`
	Added         int           `json:"added"`
	Updated       int           `json:"updated"`
	Removed       int           `json:"removed"`
	Unavailable   int           `json:"unavailable"`
	Errors        int           `json:"errors"`
	Pages         int           `json:"pages"`
	Cursor        string        `json:"cursor,omitempty"`
	Partial       bool          `json:"partial"`
	FailureReason string        `json:"failure_reason,omitempty"`
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"duration_ns"`
}

// Successes counts every record that was durably applied.
func (s *SyncSummary) Successes() int {
	return s.Added + s.Updated + s.Removed + s.Unavailable
}

// SyncStatusReport is the read model behind getSyncStatus.
type SyncStatusReport struct {
	Cursor  *SyncCursor `json:"cursor"`
	LastRun *SyncLog    `json:"last_run,omitempty"`
}
