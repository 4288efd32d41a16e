package domain

import "time"

// Source groups used for counting. Older rows may carry platform names or
// legacy aliases instead of the canonical market.
var SourceGroups = map[Source][]string{
	SourceKorea: {"korea", "encar"},
	SourceChina: {"china", "che168", "dongchedi"},
	SourceDubai: {"dubai", "dubicars", "uae"},
}

// GroupOf maps a stored source or platform name to its market.
func GroupOf(name string) (Source, bool) {
	for group, names := range SourceGroups {
		for _, n := range names {
			if n == name {
				return group, true
			}
		}
	}
	return "", false
}

type VehicleCounts struct {
	Total       int `db:"total_count" json:"total"`
	Korea       int `db:"korea_count" json:"korea"`
	China       int `db:"china_count" json:"china"`
	Dubai       int `db:"dubai_count" json:"dubai"`
	Available   int `db:"available_count" json:"available"`
	Reserved    int `db:"reserved_count" json:"reserved"`
	Sold        int `db:"sold_count" json:"sold"`
	Unavailable int `db:"unavailable_count" json:"unavailable"`
}

// VehicleCountHistory is one row per calendar day.
type VehicleCountHistory struct {
	Date       time.Time `db:"date" json:"date"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
	VehicleCounts
}

// DailyNetChange aggregates SyncLog rows of one day for one source.
type DailyNetChange struct {
	Day     time.Time `db:"day"`
	Source  string    `db:"source"`
	Added   int       `db:"added"`
	Removed int       `db:"removed"`
}
