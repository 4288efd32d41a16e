package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"vehicle_sync/internal/domain"
)

const (
	maxPageSize        = 100
	defaultHistoryDays = 30
	sinceLayout        = "2006-01-02"
)

// SyncQueryParams holds query parameters for POST /sync/:source
type SyncQueryParams struct {
	Mode        string `form:"mode" binding:"omitempty,oneof=full changes"`
	MaxPages    int    `form:"max_pages" binding:"gte=0"`
	StartPage   int    `form:"start_page" binding:"gte=0"`
	Mark        string `form:"mark"`
	Model       string `form:"model"`
	YearFrom    int    `form:"year_from" binding:"gte=0"`
	YearTo      int    `form:"year_to" binding:"gte=0"`
	RemoveStale bool   `form:"remove_stale"`
	ChangeID    string `form:"change_id"`
	Since       string `form:"since"`
	TimeBudget  string `form:"time_budget"`
}

func ParseSyncQuery(c *gin.Context) (*SyncQueryParams, error) {
	var params SyncQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.YearFrom > 0 && params.YearTo > 0 && params.YearTo < params.YearFrom {
		return nil, fmt.Errorf("year_to %d is before year_from %d", params.YearTo, params.YearFrom)
	}
	return &params, nil
}

// Options converts the query into run options.
func (p *SyncQueryParams) Options() (domain.SyncOptions, error) {
	opts := domain.SyncOptions{
		Mode:      domain.SyncMode(p.Mode),
		MaxPages:  p.MaxPages,
		StartPage: p.StartPage,
		Filters: domain.OfferFilters{
			Mark:     p.Mark,
			Model:    p.Model,
			YearFrom: p.YearFrom,
			YearTo:   p.YearTo,
		},
		RemoveStale: p.RemoveStale,
		ChangeID:    p.ChangeID,
	}

	if p.Since != "" {
		since, err := time.ParseInLocation(sinceLayout, p.Since, time.UTC)
		if err != nil {
			return opts, fmt.Errorf("since must be YYYY-MM-DD: %w", err)
		}
		opts.Since = &since
	}

	if p.TimeBudget != "" {
		budget, err := time.ParseDuration(p.TimeBudget)
		if err != nil || budget <= 0 {
			return opts, fmt.Errorf("invalid time_budget %q", p.TimeBudget)
		}
		opts.TimeBudget = budget
	}

	return opts, nil
}

// ListVehiclesQueryParams holds query parameters for GET /vehicles
type ListVehiclesQueryParams struct {
	Source string `form:"source"`
	Limit  int    `form:"limit,default=20" binding:"gte=1"`
	Offset int    `form:"offset,default=0" binding:"gte=0"`
}

func ParseListVehiclesQuery(c *gin.Context) (*ListVehiclesQueryParams, error) {
	var params ListVehiclesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit > maxPageSize {
		params.Limit = maxPageSize
	}
	return &params, nil
}

// DaysQueryParams holds the days window of the count endpoints.
type DaysQueryParams struct {
	Days int `form:"days" binding:"gte=0,lte=365"`
}

func ParseDaysQuery(c *gin.Context) (*DaysQueryParams, error) {
	var params DaysQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// CleanupQueryParams holds query parameters for POST /cleanup/images
type CleanupQueryParams struct {
	Source            string `form:"source"`
	DryRun            bool   `form:"dry_run"`
	CheckReachability bool   `form:"check_reachability"`
	TimeBudget        string `form:"time_budget"`
}

func ParseCleanupQuery(c *gin.Context) (*CleanupQueryParams, error) {
	var params CleanupQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Options converts the query into cleanup options. An empty source covers
// every market.
func (p *CleanupQueryParams) Options() (domain.CleanupOptions, error) {
	opts := domain.CleanupOptions{
		DryRun:            p.DryRun,
		CheckReachability: p.CheckReachability,
	}

	if p.Source != "" {
		source, err := domain.ParseSource(p.Source)
		if err != nil {
			return opts, err
		}
		opts.Source = source
	}

	if p.TimeBudget != "" {
		budget, err := time.ParseDuration(p.TimeBudget)
		if err != nil || budget <= 0 {
			return opts, fmt.Errorf("invalid time_budget %q", p.TimeBudget)
		}
		opts.TimeBudget = budget
	}

	return opts, nil
}
