package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"vehicle_sync/internal/config"
	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/reconciler"
	"vehicle_sync/internal/service/mocks"
	"vehicle_sync/testdata/utils"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context

	source      *mocks.MockSource
	normalizer  *mocks.MockNormalizer
	reconciler  *mocks.MockReconciler
	cursors     *mocks.MockCursorStore
	logs        *mocks.MockSyncLogStore
	vehicles    *mocks.MockVehicleIndex
	snapshotter *mocks.MockSnapshotter
	publisher   *mocks.MockPublisher

	service *SyncService
	cfg     config.SyncConfig
	logger  *slog.Logger
	now     time.Time

	finishedCursor *domain.SyncCursor
	finishedLog    *domain.SyncLog
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.source = mocks.NewMockSource(s.ctrl)
	s.normalizer = mocks.NewMockNormalizer(s.ctrl)
	s.reconciler = mocks.NewMockReconciler(s.ctrl)
	s.cursors = mocks.NewMockCursorStore(s.ctrl)
	s.logs = mocks.NewMockSyncLogStore(s.ctrl)
	s.vehicles = mocks.NewMockVehicleIndex(s.ctrl)
	s.snapshotter = mocks.NewMockSnapshotter(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.SyncConfig{
		Mode:                     "changes",
		MaxPages:                 20,
		StaleRunAfter:            time.Hour,
		MaxConsecutivePageErrors: 3,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	s.source.EXPECT().Name().Return(domain.SourceKorea).AnyTimes()
	s.source.EXPECT().Platform().Return("encar").AnyTimes()

	s.normalizer.EXPECT().SourceID(gomock.Any()).DoAndReturn(func(innerID string) string {
		return "encar_" + innerID
	}).AnyTimes()
	s.normalizer.EXPECT().Normalize(gomock.Any(), gomock.Any()).DoAndReturn(
		func(innerID string, payload json.RawMessage) (*domain.Vehicle, error) {
			if string(payload) == `{}` {
				return nil, fmt.Errorf("%w: missing make", domain.ErrInvalidRecord)
			}
			return &domain.Vehicle{
				Source:   domain.SourceKorea,
				SourceID: "encar_" + innerID,
				Make:     "Hyundai",
				Model:    "Sonata",
				Year:     2021,
			}, nil
		},
	).AnyTimes()
	s.normalizer.EXPECT().NormalizePriceChange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(innerID string, payload json.RawMessage) (*domain.PriceUpdate, bool) {
			if !strings.Contains(string(payload), "new_price") {
				return nil, false
			}
			return &domain.PriceUpdate{Source: domain.SourceKorea, SourceID: "encar_" + innerID, CurrentPriceUSD: 15000}, true
		},
	).AnyTimes()

	s.finishedCursor = nil
	s.finishedLog = nil
	s.service = s.newService(s.publisher, s.snapshotter)
}

func (s *SyncServiceTestSuite) newService(publisher Publisher, snapshotter Snapshotter) *SyncService {
	svc := NewSyncService(
		s.source,
		s.normalizer,
		s.reconciler,
		s.cursors,
		s.logs,
		s.vehicles,
		snapshotter,
		publisher,
		s.logger,
		s.cfg,
	)
	svc.now = func() time.Time { return s.now }
	return svc
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) expectBegin(cursor *domain.SyncCursor) {
	s.cursors.EXPECT().
		TryBeginRun(gomock.Any(), domain.SourceKorea, s.now, s.now.Add(-time.Hour)).
		Return(cursor, nil)
	s.logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *domain.SyncLog) error {
			s.NotEmpty(log.ID)
			s.Equal(domain.SyncRunning, log.Status)
			return nil
		},
	)
}

func (s *SyncServiceTestSuite) expectFinish() {
	s.cursors.EXPECT().Finish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cursor *domain.SyncCursor) error {
			s.finishedCursor = cursor
			return nil
		},
	)
	s.logs.EXPECT().Finish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *domain.SyncLog) error {
			s.finishedLog = log
			return nil
		},
	)
	s.publisher.EXPECT().PublishRunSummary(gomock.Any(), gomock.Any()).Return(nil)
	s.snapshotter.EXPECT().RecordSnapshot(gomock.Any()).Return(&domain.VehicleCountHistory{}, nil)
}

func (s *SyncServiceTestSuite) expectUpsertsInsertAll() {
	s.reconciler.EXPECT().ApplyUpserts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []domain.Vehicle) reconciler.Result {
			return reconciler.Result{Inserted: len(records)}
		},
	).AnyTimes()
}

func offers(prefix string, n int) []domain.RawOffer {
	out := make([]domain.RawOffer, n)
	for i := range out {
		out[i] = domain.RawOffer{
			InnerID:    fmt.Sprintf("%s%d", prefix, i),
			ChangeType: domain.ChangeAdded,
			Payload:    json.RawMessage(`{"mark":"Hyundai"}`),
		}
	}
	return out
}

func (s *SyncServiceTestSuite) TestSync_FullModeWritesEveryPage() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea})
	s.expectUpsertsInsertAll()

	gomock.InOrder(
		s.source.EXPECT().ListOffers(gomock.Any(), 1, domain.OfferFilters{}).
			Return(&domain.OfferPage{Offers: offers("a", 50), NextPage: utils.Ptr(2)}, nil),
		s.source.EXPECT().ListOffers(gomock.Any(), 2, domain.OfferFilters{}).
			Return(&domain.OfferPage{Offers: offers("b", 50), NextPage: utils.Ptr(3)}, nil),
		s.source.EXPECT().ListOffers(gomock.Any(), 3, domain.OfferFilters{}).
			Return(&domain.OfferPage{Offers: offers("c", 20)}, nil),
	)
	for page := 1; page <= 3; page++ {
		s.cursors.EXPECT().SaveCheckpoint(gomock.Any(), domain.SourceKorea, gomock.Nil(), utils.Ptr(page)).Return(nil)
	}
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeFull})

	s.Require().NoError(err)
	s.Equal(domain.SyncSuccess, summary.Status)
	s.Equal(120, summary.Added)
	s.Equal(0, summary.Errors)
	s.Equal(3, summary.Pages)
	s.Equal("3", summary.Cursor)
	s.Require().NotNil(s.finishedCursor.FullScanPage)
	s.Equal(3, *s.finishedCursor.FullScanPage)
	s.Equal(domain.SyncSuccess, s.finishedCursor.LastSyncStatus)
	s.Nil(s.finishedCursor.RunStartedAt)
	s.Equal(120, s.finishedLog.Added)
	s.NotNil(s.finishedLog.EndedAt)
}

func (s *SyncServiceTestSuite) TestSync_FullModeIsolatesFailedPage() {
	s.cfg.MaxPages = 10
	s.service = s.newService(s.publisher, s.snapshotter)

	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea})

	for page := 1; page <= 10; page++ {
		var next *int
		if page < 10 {
			next = utils.Ptr(page + 1)
		}
		s.source.EXPECT().ListOffers(gomock.Any(), page, domain.OfferFilters{}).
			Return(&domain.OfferPage{Offers: offers(fmt.Sprintf("p%d-", page), 10), NextPage: next}, nil)
		s.cursors.EXPECT().SaveCheckpoint(gomock.Any(), domain.SourceKorea, gomock.Nil(), utils.Ptr(page)).Return(nil)
	}

	s.reconciler.EXPECT().ApplyUpserts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []domain.Vehicle) reconciler.Result {
			if records[0].SourceID == "encar_p5-0" {
				return reconciler.Result{Failed: len(records), Errors: []error{errors.New("deadlock detected")}}
			}
			return reconciler.Result{Inserted: len(records)}
		},
	).Times(10)
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeFull})

	s.Require().NoError(err)
	s.Equal(domain.SyncSuccess, summary.Status)
	s.Equal(90, summary.Added)
	s.Equal(10, summary.Errors)
	s.Equal(10, *s.finishedCursor.FullScanPage)
}

func (s *SyncServiceTestSuite) TestSync_FullModeSkipsUnreadablePage() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea})
	s.expectUpsertsInsertAll()

	s.source.EXPECT().ListOffers(gomock.Any(), 1, gomock.Any()).
		Return(&domain.OfferPage{Offers: offers("a", 5), NextPage: utils.Ptr(2)}, nil)
	s.source.EXPECT().ListOffers(gomock.Any(), 2, gomock.Any()).
		Return(nil, errors.New("connection reset by peer"))
	s.source.EXPECT().ListOffers(gomock.Any(), 3, gomock.Any()).
		Return(&domain.OfferPage{Offers: offers("c", 5)}, nil)
	s.cursors.EXPECT().SaveCheckpoint(gomock.Any(), domain.SourceKorea, gomock.Nil(), gomock.Any()).Return(nil).Times(2)
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeFull})

	s.Require().NoError(err)
	s.Equal(domain.SyncSuccess, summary.Status)
	s.Equal(10, summary.Added)
	s.Equal(1, summary.Errors)
	s.Equal(2, summary.Pages)
}

func (s *SyncServiceTestSuite) TestSync_FullModeStopsAfterConsecutiveErrors() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea})
	s.expectUpsertsInsertAll()

	s.source.EXPECT().ListOffers(gomock.Any(), 1, gomock.Any()).
		Return(&domain.OfferPage{Offers: offers("a", 5), NextPage: utils.Ptr(2)}, nil)
	s.source.EXPECT().ListOffers(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("502 bad gateway")).Times(3)
	s.cursors.EXPECT().SaveCheckpoint(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeFull})

	s.Require().NoError(err)
	s.Equal(3, summary.Errors)
	s.Equal(5, summary.Added)
	s.Equal(domain.SyncSuccess, summary.Status)
}

func (s *SyncServiceTestSuite) TestSync_FirstCallFailureFailsRun() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea})
	s.source.EXPECT().ListOffers(gomock.Any(), 1, gomock.Any()).Return(nil, errors.New("dial tcp: timeout"))
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeFull})

	s.Require().Error(err)
	s.Contains(err.Error(), "first upstream call")
	s.Require().NotNil(summary)
	s.Equal(domain.SyncFailed, summary.Status)
	s.Equal(domain.SyncFailed, s.finishedCursor.LastSyncStatus)
	s.Require().NotNil(s.finishedLog.ErrorMessage)
	s.Contains(*s.finishedLog.ErrorMessage, "dial tcp")
}

func (s *SyncServiceTestSuite) TestSync_ErrorsExceedingSuccessesFailRun() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea})
	s.expectUpsertsInsertAll()

	page := []domain.RawOffer{
		{InnerID: "1", Payload: json.RawMessage(`{}`)},
		{InnerID: "2", Payload: json.RawMessage(`{}`)},
		{InnerID: "3", Payload: json.RawMessage(`{"mark":"Kia"}`)},
	}
	s.source.EXPECT().ListOffers(gomock.Any(), 1, gomock.Any()).Return(&domain.OfferPage{Offers: page}, nil)
	s.cursors.EXPECT().SaveCheckpoint(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeFull})

	s.NoError(err)
	s.Equal(domain.SyncFailed, summary.Status)
	s.Equal(2, summary.Errors)
	s.Equal(1, summary.Added)
	s.NotEmpty(summary.FailureReason)
}

func (s *SyncServiceTestSuite) TestSync_FullModeRemovesStaleAfterCleanScan() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea})
	s.expectUpsertsInsertAll()

	s.source.EXPECT().ListOffers(gomock.Any(), 1, gomock.Any()).
		Return(&domain.OfferPage{Offers: offers("v", 2)}, nil)
	s.cursors.EXPECT().SaveCheckpoint(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.vehicles.EXPECT().ListSourceIDs(gomock.Any(), domain.SourceKorea).
		Return([]string{"encar_v0", "encar_v1", "encar_gone"}, nil)
	s.reconciler.EXPECT().ApplyRemovals(gomock.Any(), domain.SourceKorea, []string{"encar_gone"}).
		Return(reconciler.Result{Removed: 1})
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeFull, RemoveStale: true})

	s.Require().NoError(err)
	s.Equal(2, summary.Added)
	s.Equal(1, summary.Removed)
}

func (s *SyncServiceTestSuite) TestSync_FullModeKeepsStaleWhenFiltered() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea})
	s.expectUpsertsInsertAll()

	filters := domain.OfferFilters{Mark: "Kia"}
	s.source.EXPECT().ListOffers(gomock.Any(), 1, filters).
		Return(&domain.OfferPage{Offers: offers("v", 2)}, nil)
	s.cursors.EXPECT().SaveCheckpoint(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeFull, RemoveStale: true, Filters: filters})

	s.Require().NoError(err)
	s.Equal(0, summary.Removed)
}

func (s *SyncServiceTestSuite) TestSync_ChangesModeAppliesPageAndAdvancesCursor() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea, ChangeID: utils.Ptr("C100")})

	changes := []domain.RawOffer{
		{InnerID: "1", ChangeType: domain.ChangeAdded, Payload: json.RawMessage(`{"mark":"Kia"}`)},
		{InnerID: "2", ChangeType: domain.ChangeAdded, Payload: json.RawMessage(`{"mark":"Kia"}`)},
		{InnerID: "3", ChangeType: domain.ChangeChanged, Payload: json.RawMessage(`{"mark":"Kia","year":2020}`)},
		{InnerID: "4", ChangeType: domain.ChangeRemoved},
	}

	gomock.InOrder(
		s.source.EXPECT().ChangesSince(gomock.Any(), "C100").
			Return(&domain.ChangePage{Changes: changes, NextCursor: "C101"}, nil),
		s.source.EXPECT().ChangesSince(gomock.Any(), "C101").
			Return(&domain.ChangePage{NextCursor: "C101"}, nil),
	)

	gomock.InOrder(
		s.reconciler.EXPECT().ApplyUpserts(gomock.Any(), gomock.Len(3)).
			Return(reconciler.Result{Inserted: 2, Updated: 1}),
		s.reconciler.EXPECT().ApplyRemovals(gomock.Any(), domain.SourceKorea, []string{"encar_4"}).
			Return(reconciler.Result{Removed: 1}),
	)
	s.cursors.EXPECT().SaveCheckpoint(gomock.Any(), domain.SourceKorea, utils.Ptr("C101"), gomock.Nil()).Return(nil)
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{})

	s.Require().NoError(err)
	s.Equal(domain.ModeChanges, summary.Mode)
	s.Equal(domain.SyncSuccess, summary.Status)
	s.Equal(2, summary.Added)
	s.Equal(1, summary.Updated)
	s.Equal(1, summary.Removed)
	s.Equal("C101", summary.Cursor)
	s.Equal("C101", *s.finishedCursor.ChangeID)
}

func (s *SyncServiceTestSuite) TestSync_ChangesModeAppliesPriceOnlyChange() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea, ChangeID: utils.Ptr("C7")})

	s.source.EXPECT().ChangesSince(gomock.Any(), "C7").Return(&domain.ChangePage{
		Changes:    []domain.RawOffer{{InnerID: "9", ChangeType: domain.ChangeChanged, Payload: json.RawMessage(`{"new_price":2000}`)}},
		NextCursor: "C7",
	}, nil)
	s.reconciler.EXPECT().ApplyPriceUpdates(gomock.Any(), domain.SourceKorea, []domain.PriceUpdate{
		{Source: domain.SourceKorea, SourceID: "encar_9", CurrentPriceUSD: 15000},
	}).Return(reconciler.Result{Updated: 1})
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeChanges})

	s.Require().NoError(err)
	s.Equal(1, summary.Updated)
	s.Equal("C7", summary.Cursor)
}

func (s *SyncServiceTestSuite) TestSync_ChangesModeGuardedRemovalCountsUnavailable() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea, ChangeID: utils.Ptr("C1")})

	s.source.EXPECT().ChangesSince(gomock.Any(), "C1").Return(&domain.ChangePage{
		Changes: []domain.RawOffer{{InnerID: "42", ChangeType: domain.ChangeRemoved}},
	}, nil)
	s.reconciler.EXPECT().ApplyRemovals(gomock.Any(), domain.SourceKorea, []string{"encar_42"}).
		Return(reconciler.Result{Unavailable: 1})
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeChanges})

	s.Require().NoError(err)
	s.Equal(0, summary.Removed)
	s.Equal(1, summary.Unavailable)
	s.Equal(0, s.finishedCursor.Removed)
}

func (s *SyncServiceTestSuite) TestSync_ChangesModeBootstrapsCursorFromToday() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea})

	s.source.EXPECT().ChangeIDForDate(gomock.Any(), s.now).Return("C500", nil)
	s.source.EXPECT().ChangesSince(gomock.Any(), "C500").Return(&domain.ChangePage{NextCursor: "C500"}, nil)
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeChanges})

	s.Require().NoError(err)
	s.Equal(domain.SyncSuccess, summary.Status)
	s.Equal("C500", summary.Cursor)
	s.Equal("C500", *s.finishedCursor.ChangeID)
}

func (s *SyncServiceTestSuite) TestSync_ChangesModeSinceOverridesStoredCursor() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea, ChangeID: utils.Ptr("C900")})

	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.source.EXPECT().ChangeIDForDate(gomock.Any(), since).Return("C10", nil)
	s.source.EXPECT().ChangesSince(gomock.Any(), "C10").Return(&domain.ChangePage{}, nil)
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeChanges, Since: &since})

	s.Require().NoError(err)
	s.Equal("C10", summary.Cursor)
}

func (s *SyncServiceTestSuite) TestSync_ChangesModeLaterFailureKeepsCursor() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea, ChangeID: utils.Ptr("C100")})
	s.expectUpsertsInsertAll()

	s.source.EXPECT().ChangesSince(gomock.Any(), "C100").
		Return(&domain.ChangePage{Changes: offers("n", 3), NextCursor: "C101"}, nil)
	s.source.EXPECT().ChangesSince(gomock.Any(), "C101").Return(nil, errors.New("503 service unavailable"))
	s.cursors.EXPECT().SaveCheckpoint(gomock.Any(), domain.SourceKorea, utils.Ptr("C101"), gomock.Nil()).Return(nil)
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeChanges})

	s.Require().NoError(err)
	s.Equal(domain.SyncSuccess, summary.Status)
	s.Equal(3, summary.Added)
	s.Equal(1, summary.Errors)
	s.Equal("C101", *s.finishedCursor.ChangeID)
}

func (s *SyncServiceTestSuite) TestSync_ChangesModeWriteFailureDoesNotAdvance() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea, ChangeID: utils.Ptr("C100")})

	s.source.EXPECT().ChangesSince(gomock.Any(), "C100").
		Return(&domain.ChangePage{Changes: offers("n", 2), NextCursor: "C101"}, nil)
	s.reconciler.EXPECT().ApplyUpserts(gomock.Any(), gomock.Any()).Return(reconciler.Result{Failed: 2})
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeChanges})

	s.Require().NoError(err)
	s.Equal(domain.SyncFailed, summary.Status)
	s.Equal("C100", summary.Cursor)
	s.Equal("C100", *s.finishedCursor.ChangeID)
}

func (s *SyncServiceTestSuite) TestSync_UnauthorizedFailsRun() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea, ChangeID: utils.Ptr("C1")})
	s.source.EXPECT().ChangesSince(gomock.Any(), "C1").Return(nil, domain.ErrUnauthorized)
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeChanges})

	s.Require().ErrorIs(err, domain.ErrUnauthorized)
	s.Equal(domain.SyncFailed, summary.Status)
	s.Equal("C1", *s.finishedCursor.ChangeID)
}

func (s *SyncServiceTestSuite) TestSync_RejectsConcurrentRunFromStore() {
	s.cursors.EXPECT().TryBeginRun(gomock.Any(), domain.SourceKorea, gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRunInProgress)

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{})

	s.ErrorIs(err, domain.ErrRunInProgress)
	s.Nil(summary)
}

func (s *SyncServiceTestSuite) TestSync_RejectsConcurrentRunInProcess() {
	s.service.running.Store(true)

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{})

	s.ErrorIs(err, domain.ErrRunInProgress)
	s.Nil(summary)
}

func (s *SyncServiceTestSuite) TestSync_TimeBudgetEndsRunAsPartial() {
	start := s.now
	tick := 0
	s.service.now = func() time.Time {
		t := start.Add(time.Duration(tick) * 10 * time.Minute)
		tick++
		return t
	}

	s.cursors.EXPECT().TryBeginRun(gomock.Any(), domain.SourceKorea, start, gomock.Any()).
		Return(&domain.SyncCursor{Source: domain.SourceKorea}, nil)
	s.logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.expectUpsertsInsertAll()

	s.source.EXPECT().ListOffers(gomock.Any(), 1, gomock.Any()).
		Return(&domain.OfferPage{Offers: offers("a", 4), NextPage: utils.Ptr(2)}, nil)
	s.source.EXPECT().ListOffers(gomock.Any(), 2, gomock.Any()).
		Return(&domain.OfferPage{Offers: offers("b", 4), NextPage: utils.Ptr(3)}, nil)
	s.cursors.EXPECT().SaveCheckpoint(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.expectFinish()

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{Mode: domain.ModeFull, TimeBudget: 25 * time.Minute})

	s.Require().NoError(err)
	s.True(summary.Partial)
	s.Equal(domain.SyncSuccess, summary.Status)
	s.Equal(8, summary.Added)
	s.Equal(2, *s.finishedCursor.FullScanPage)
}

func (s *SyncServiceTestSuite) TestSync_NilPublisherAndSnapshotter() {
	svc := s.newService(nil, nil)

	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea, ChangeID: utils.Ptr("C1")})
	s.source.EXPECT().ChangesSince(gomock.Any(), "C1").Return(&domain.ChangePage{}, nil)
	s.cursors.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)
	s.logs.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := svc.Sync(s.ctx, domain.SyncOptions{})

	s.NoError(err)
	s.Equal(domain.SyncSuccess, summary.Status)
}

func (s *SyncServiceTestSuite) TestSync_SnapshotFailureDoesNotFailRun() {
	s.expectBegin(&domain.SyncCursor{Source: domain.SourceKorea, ChangeID: utils.Ptr("C1")})
	s.source.EXPECT().ChangesSince(gomock.Any(), "C1").Return(&domain.ChangePage{}, nil)
	s.cursors.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)
	s.logs.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)
	s.publisher.EXPECT().PublishRunSummary(gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))
	s.snapshotter.EXPECT().RecordSnapshot(gomock.Any()).Return(nil, errors.New("db down"))

	summary, err := s.service.Sync(s.ctx, domain.SyncOptions{})

	s.NoError(err)
	s.Equal(domain.SyncSuccess, summary.Status)
}
