package encar

import (
	"log/slog"

	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/source/autoapi"
)

// Source is the Korea market feed.
type Source struct {
	*autoapi.Client
}

func New(cfg autoapi.Config, logger *slog.Logger) *Source {
	return &Source{
		Client: autoapi.New(cfg, logger.With("source", domain.SourceKorea, "platform", Platform)),
	}
}

func (s *Source) Name() domain.Source {
	return domain.SourceKorea
}

func (s *Source) Platform() string {
	return Platform
}
