package service

import (
	"context"
	"fmt"

	"vehicle_sync/internal/domain"
)

// Pipeline bundles what the Manager needs per source.
type Pipeline struct {
	Runner     Runner
	Source     Source
	Normalizer Normalizer
}

// Manager routes operations to the pipeline of a source.
type Manager struct {
	pipelines map[domain.Source]Pipeline
	cursors   CursorStore
	logs      SyncLogStore
}

func NewManager(cursors CursorStore, logs SyncLogStore) *Manager {
	return &Manager{
		pipelines: make(map[domain.Source]Pipeline),
		cursors:   cursors,
		logs:      logs,
	}
}

func (m *Manager) Register(name domain.Source, p Pipeline) {
	m.pipelines[name] = p
}

// Sources lists registered sources in scheduling order.
func (m *Manager) Sources() []domain.Source {
	var out []domain.Source
	for _, name := range domain.Sources {
		if _, ok := m.pipelines[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

func (m *Manager) pipeline(name domain.Source) (Pipeline, error) {
	p, ok := m.pipelines[name]
	if !ok {
		return Pipeline{}, fmt.Errorf("%w: %s", domain.ErrUnknownSource, name)
	}
	return p, nil
}

func (m *Manager) RunSync(ctx context.Context, name domain.Source, mode domain.SyncMode, opts domain.SyncOptions) (*domain.SyncSummary, error) {
	p, err := m.pipeline(name)
	if err != nil {
		return nil, err
	}
	if mode != "" {
		opts.Mode = mode
	}
	return p.Runner.Sync(ctx, opts)
}

func (m *Manager) GetSyncStatus(ctx context.Context, name domain.Source) (*domain.SyncStatusReport, error) {
	if _, err := m.pipeline(name); err != nil {
		return nil, err
	}

	cursor, err := m.cursors.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get cursor: %w", err)
	}

	lastRun, err := m.logs.Latest(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get latest run: %w", err)
	}

	return &domain.SyncStatusReport{Cursor: cursor, LastRun: lastRun}, nil
}

// FetchOffer loads and normalizes a single listing without storing it.
func (m *Manager) FetchOffer(ctx context.Context, name domain.Source, innerID string) (*domain.Vehicle, error) {
	p, err := m.pipeline(name)
	if err != nil {
		return nil, err
	}

	payload, err := p.Source.OfferByID(ctx, innerID)
	if err != nil {
		return nil, err
	}
	return p.Normalizer.Normalize(innerID, payload)
}

// FetchOfferByURL resolves a public listing URL and normalizes the result.
func (m *Manager) FetchOfferByURL(ctx context.Context, name domain.Source, listingURL string) (*domain.Vehicle, error) {
	p, err := m.pipeline(name)
	if err != nil {
		return nil, err
	}

	payload, err := p.Source.OfferByURL(ctx, listingURL)
	if err != nil {
		return nil, err
	}
	// The listing id comes from the payload itself.
	return p.Normalizer.Normalize("", payload)
}
