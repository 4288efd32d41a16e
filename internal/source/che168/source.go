package che168

import (
	"log/slog"

	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/source/autoapi"
)

// Source is the China market feed.
type Source struct {
	*autoapi.Client
}

func New(cfg autoapi.Config, logger *slog.Logger) *Source {
	return &Source{
		Client: autoapi.New(cfg, logger.With("source", domain.SourceChina, "platform", Platform)),
	}
}

func (s *Source) Name() domain.Source {
	return domain.SourceChina
}

func (s *Source) Platform() string {
	return Platform
}
