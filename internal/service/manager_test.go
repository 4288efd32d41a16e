package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/service/mocks"
)

type ManagerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context

	runner     *mocks.MockRunner
	source     *mocks.MockSource
	normalizer *mocks.MockNormalizer
	cursors    *mocks.MockCursorStore
	logs       *mocks.MockSyncLogStore

	manager *Manager
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.runner = mocks.NewMockRunner(s.ctrl)
	s.source = mocks.NewMockSource(s.ctrl)
	s.normalizer = mocks.NewMockNormalizer(s.ctrl)
	s.cursors = mocks.NewMockCursorStore(s.ctrl)
	s.logs = mocks.NewMockSyncLogStore(s.ctrl)

	s.manager = NewManager(s.cursors, s.logs)
	s.manager.Register(domain.SourceChina, Pipeline{Runner: s.runner, Source: s.source, Normalizer: s.normalizer})
}

func (s *ManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) TestRunSync_PassesModeToRunner() {
	want := &domain.SyncSummary{Source: domain.SourceChina, Status: domain.SyncSuccess}
	s.runner.EXPECT().Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeFull, MaxPages: 3}).Return(want, nil)

	got, err := s.manager.RunSync(s.ctx, domain.SourceChina, domain.ModeFull, domain.SyncOptions{MaxPages: 3})

	s.NoError(err)
	s.Same(want, got)
}

func (s *ManagerTestSuite) TestRunSync_UnknownSource() {
	summary, err := s.manager.RunSync(s.ctx, domain.SourceDubai, domain.ModeChanges, domain.SyncOptions{})

	s.ErrorIs(err, domain.ErrUnknownSource)
	s.Nil(summary)
}

func (s *ManagerTestSuite) TestGetSyncStatus() {
	changeID := "C42"
	ended := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cursor := &domain.SyncCursor{Source: domain.SourceChina, ChangeID: &changeID, LastSyncStatus: domain.SyncSuccess}
	lastRun := &domain.SyncLog{ID: "run-1", Source: domain.SourceChina, Status: domain.SyncSuccess, EndedAt: &ended}

	s.cursors.EXPECT().Get(s.ctx, domain.SourceChina).Return(cursor, nil)
	s.logs.EXPECT().Latest(s.ctx, domain.SourceChina).Return(lastRun, nil)

	report, err := s.manager.GetSyncStatus(s.ctx, domain.SourceChina)

	s.Require().NoError(err)
	s.Same(cursor, report.Cursor)
	s.Same(lastRun, report.LastRun)
}

func (s *ManagerTestSuite) TestGetSyncStatus_UnknownSource() {
	_, err := s.manager.GetSyncStatus(s.ctx, domain.SourceKorea)

	s.ErrorIs(err, domain.ErrUnknownSource)
}

func (s *ManagerTestSuite) TestFetchOffer() {
	payload := json.RawMessage(`{"inner_id":"77"}`)
	vehicle := &domain.Vehicle{Source: domain.SourceChina, SourceID: "che168_77"}

	s.source.EXPECT().OfferByID(s.ctx, "77").Return(payload, nil)
	s.normalizer.EXPECT().Normalize("77", payload).Return(vehicle, nil)

	got, err := s.manager.FetchOffer(s.ctx, domain.SourceChina, "77")

	s.NoError(err)
	s.Same(vehicle, got)
}

func (s *ManagerTestSuite) TestFetchOfferByURL() {
	payload := json.RawMessage(`{"inner_id":"88"}`)
	vehicle := &domain.Vehicle{Source: domain.SourceChina, SourceID: "che168_88"}

	s.source.EXPECT().OfferByURL(s.ctx, "https://www.che168.com/dealer/1/88.html").Return(payload, nil)
	s.normalizer.EXPECT().Normalize("", payload).Return(vehicle, nil)

	got, err := s.manager.FetchOfferByURL(s.ctx, domain.SourceChina, "https://www.che168.com/dealer/1/88.html")

	s.NoError(err)
	s.Same(vehicle, got)
}

func (s *ManagerTestSuite) TestSources_KeepsSchedulingOrder() {
	s.manager.Register(domain.SourceKorea, Pipeline{Runner: s.runner})

	s.Equal([]domain.Source{domain.SourceKorea, domain.SourceChina}, s.manager.Sources())
}
