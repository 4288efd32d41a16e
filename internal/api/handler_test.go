package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"vehicle_sync/internal/api/mocks"
	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/image"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	syncs     *mocks.MockSyncManager
	proxy     *mocks.MockImageProxy
	loader    *mocks.MockImageLoader
	images    *mocks.MockImageValidator
	snapshots *mocks.MockCountSnapshotter
	history   *mocks.MockCountHistoryReader
	vehicles  *mocks.MockVehicleReader
	cleaner   *mocks.MockImageCleaner

	handler *Handler
	router  *gin.Engine
	now     time.Time
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())

	s.syncs = mocks.NewMockSyncManager(s.ctrl)
	s.proxy = mocks.NewMockImageProxy(s.ctrl)
	s.loader = mocks.NewMockImageLoader(s.ctrl)
	s.images = mocks.NewMockImageValidator(s.ctrl)
	s.snapshots = mocks.NewMockCountSnapshotter(s.ctrl)
	s.history = mocks.NewMockCountHistoryReader(s.ctrl)
	s.vehicles = mocks.NewMockVehicleReader(s.ctrl)
	s.cleaner = mocks.NewMockImageCleaner(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.handler = NewHandler(s.syncs, s.proxy, s.loader, s.images, s.snapshots, s.history, s.vehicles, s.cleaner, logger)
	s.now = time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC)
	s.handler.now = func() time.Time { return s.now }

	s.router = gin.New()
	SetupRoutes(s.router, s.handler)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) ErrorCode {
	var resp errorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func imageQuery(path, raw string) string {
	return path + "?" + url.Values{"url": {raw}}.Encode()
}

func (s *HandlerTestSuite) TestHealthCheck() {
	rec := s.do(http.MethodGet, "/health")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"ok"`)
}

func (s *HandlerTestSuite) TestTriggerSync_ParsesOptions() {
	since := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	want := domain.SyncOptions{
		Mode:        domain.ModeFull,
		MaxPages:    3,
		StartPage:   2,
		Filters:     domain.OfferFilters{Mark: "BMW", YearFrom: 2018},
		RemoveStale: true,
		Since:       &since,
		TimeBudget:  5 * time.Minute,
	}
	s.syncs.EXPECT().RunSync(gomock.Any(), domain.SourceKorea, domain.ModeFull, want).
		Return(&domain.SyncSummary{Source: domain.SourceKorea, Status: domain.SyncSuccess, Added: 7}, nil)

	rec := s.do(http.MethodPost, "/api/v1/sync/korea?mode=full&max_pages=3&start_page=2&mark=BMW&year_from=2018&remove_stale=true&since=2026-05-01&time_budget=5m")

	s.Require().Equal(http.StatusOK, rec.Code)
	var summary domain.SyncSummary
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &summary))
	s.Equal(7, summary.Added)
	s.Equal(domain.SyncSuccess, summary.Status)
}

func (s *HandlerTestSuite) TestTriggerSync_FailedRunStillReturnsSummary() {
	s.syncs.EXPECT().RunSync(gomock.Any(), domain.SourceChina, domain.ModeChanges, gomock.Any()).
		Return(&domain.SyncSummary{Status: domain.SyncFailed, FailureReason: "upstream down"}, errors.New("sync failed"))

	rec := s.do(http.MethodPost, "/api/v1/sync/china?mode=changes")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"failed"`)
}

func (s *HandlerTestSuite) TestTriggerSync_RunInProgress() {
	s.syncs.EXPECT().RunSync(gomock.Any(), domain.SourceDubai, gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("begin run: %w", domain.ErrRunInProgress))

	rec := s.do(http.MethodPost, "/api/v1/sync/dubai")

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(errCodeConflict, s.errorCode(rec))
}

func (s *HandlerTestSuite) TestTriggerSync_SourceNotRegistered() {
	s.syncs.EXPECT().RunSync(gomock.Any(), domain.SourceDubai, gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: dubai", domain.ErrUnknownSource))

	rec := s.do(http.MethodPost, "/api/v1/sync/dubai")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestTriggerSync_RejectsBadInput() {
	cases := []string{
		"/api/v1/sync/mars",
		"/api/v1/sync/korea?mode=weekly",
		"/api/v1/sync/korea?max_pages=-1",
		"/api/v1/sync/korea?year_from=2020&year_to=2010",
		"/api/v1/sync/korea?since=yesterday",
		"/api/v1/sync/korea?time_budget=soon",
	}

	for _, target := range cases {
		rec := s.do(http.MethodPost, target)
		s.GreaterOrEqual(rec.Code, 400, target)
		s.Less(rec.Code, 500, target)
	}
}

func (s *HandlerTestSuite) TestGetSyncStatus() {
	changeID := "C100"
	s.syncs.EXPECT().GetSyncStatus(gomock.Any(), domain.SourceKorea).Return(&domain.SyncStatusReport{
		Cursor: &domain.SyncCursor{Source: domain.SourceKorea, ChangeID: &changeID, LastSyncStatus: domain.SyncSuccess},
	}, nil)

	rec := s.do(http.MethodGet, "/api/v1/sync/korea/status")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"change_id":"C100"`)
}

func (s *HandlerTestSuite) TestGetOffer() {
	s.syncs.EXPECT().FetchOffer(gomock.Any(), domain.SourceChina, "55").
		Return(&domain.Vehicle{Source: domain.SourceChina, SourceID: "che168_55", Make: "BYD"}, nil)

	rec := s.do(http.MethodGet, "/api/v1/offers/china/55")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"source_id":"che168_55"`)
}

func (s *HandlerTestSuite) TestGetOffer_NotFound() {
	s.syncs.EXPECT().FetchOffer(gomock.Any(), domain.SourceChina, "56").
		Return(nil, fmt.Errorf("get offer: %w", domain.ErrNotFound))

	rec := s.do(http.MethodGet, "/api/v1/offers/china/56")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestResolveOffer() {
	listing := "https://fem.encar.com/cars/detail/38000001"
	s.syncs.EXPECT().FetchOfferByURL(gomock.Any(), domain.SourceKorea, listing).
		Return(&domain.Vehicle{Source: domain.SourceKorea, SourceID: "encar_38000001"}, nil)

	rec := s.do(http.MethodGet, "/api/v1/offers/korea?"+url.Values{"url": {listing}}.Encode())

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestResolveOffer_MissingURL() {
	rec := s.do(http.MethodGet, "/api/v1/offers/korea")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestProxyImage_StreamsBody() {
	raw := "https://p3-dcd.byteimg.com/img/motor/abc.jpg?x-expires=1999999999"
	s.proxy.EXPECT().Fetch(gomock.Any(), raw).Return(&image.Result{
		Body:          io.NopCloser(strings.NewReader("jpeg-bytes")),
		ContentType:   "image/jpeg",
		ContentLength: 10,
		CacheControl:  "public, max-age=600, s-maxage=600",
	}, nil)

	rec := s.do(http.MethodGet, imageQuery("/api/v1/images/proxy", raw))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("jpeg-bytes", rec.Body.String())
	s.Equal("image/jpeg", rec.Header().Get("Content-Type"))
	s.Equal("public, max-age=600, s-maxage=600", rec.Header().Get("Cache-Control"))
	s.Equal("public, max-age=600, s-maxage=600", rec.Header().Get("CDN-Cache-Control"))
}

func (s *HandlerTestSuite) TestProxyImage_ErrorMapping() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid", fmt.Errorf("%w: no host", domain.ErrInvalidURL), http.StatusBadRequest},
		{"not allowed", domain.ErrDomainNotAllowed, http.StatusForbidden},
		{"expired", domain.ErrImageExpired, http.StatusGone},
		{"timeout", image.ErrFetchTimeout, http.StatusGatewayTimeout},
		{"upstream status", &image.UpstreamStatusError{StatusCode: http.StatusNotFound}, http.StatusNotFound},
		{"other", errors.New("connection reset"), http.StatusBadGateway},
	}

	for _, tc := range cases {
		raw := "https://img.example.com/" + strings.ReplaceAll(tc.name, " ", "-") + ".jpg"
		s.proxy.EXPECT().Fetch(gomock.Any(), raw).Return(nil, tc.err)

		rec := s.do(http.MethodGet, imageQuery("/api/v1/images/proxy", raw))

		s.Equal(tc.status, rec.Code, tc.name)
	}
}

func (s *HandlerTestSuite) TestProxyImage_MissingURL() {
	rec := s.do(http.MethodGet, "/api/v1/images/proxy")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestLoadImage_Placeholder() {
	raw := "https://p3-dcd.byteimg.com/img/gone.jpg?x-expires=1"
	s.loader.EXPECT().Load(gomock.Any(), raw).Return(image.Placeholder())

	rec := s.do(http.MethodGet, imageQuery("/api/v1/images/load", raw))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("true", rec.Header().Get("X-Image-Placeholder"))
	s.Equal("image/svg+xml", rec.Header().Get("Content-Type"))
}

func (s *HandlerTestSuite) TestCheckImage_Signed() {
	raw := "https://p3-dcd.byteimg.com/img/a.jpg?x-expires=1779300000"
	expires := time.Unix(1779300000, 0).UTC()
	s.images.EXPECT().Classify(raw).Return(image.Classification{Kind: image.KindSigned, Host: "p3-dcd.byteimg.com", ExpiresAt: expires}, nil)
	s.images.EXPECT().IsValid(raw).Return(false)

	rec := s.do(http.MethodGet, imageQuery("/api/v1/images/validity", raw))

	s.Require().Equal(http.StatusOK, rec.Code)
	var resp imageValidityResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(image.KindSigned, resp.Kind)
	s.False(resp.Valid)
	s.Require().NotNil(resp.ExpiresAt)
	s.True(expires.Equal(*resp.ExpiresAt))
}

func (s *HandlerTestSuite) TestCheckImage_Invalid() {
	s.images.EXPECT().Classify("ftp://files.example.com/a.jpg").Return(image.Classification{}, domain.ErrInvalidURL)

	rec := s.do(http.MethodGet, imageQuery("/api/v1/images/validity", "ftp://files.example.com/a.jpg"))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestListVehicles_DropsExpiredCovers() {
	vehicles := []domain.Vehicle{
		{SourceID: "che168_1"},
		{SourceID: "che168_2"},
		{SourceID: "che168_3"},
	}
	s.vehicles.EXPECT().ListVisible(gomock.Any(), domain.SourceChina, maxPageSize, 40).Return(vehicles, nil)
	s.images.EXPECT().HasValidCover(gomock.Any()).DoAndReturn(func(v *domain.Vehicle) bool {
		return v.SourceID != "che168_2"
	}).Times(3)

	rec := s.do(http.MethodGet, "/api/v1/vehicles?source=china&limit=500&offset=40")

	s.Require().Equal(http.StatusOK, rec.Code)
	var resp listVehiclesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Vehicles, 2)
	s.Equal("che168_1", resp.Vehicles[0].SourceID)
	s.Equal("che168_3", resp.Vehicles[1].SourceID)
	s.Equal(maxPageSize, resp.Limit)
	s.Equal(3, resp.Scanned)
	s.Equal(43, resp.NextOffset)
}

func (s *HandlerTestSuite) TestListVehicles_AllSources() {
	s.vehicles.EXPECT().ListVisible(gomock.Any(), domain.Source(""), 20, 0).Return(nil, nil)

	rec := s.do(http.MethodGet, "/api/v1/vehicles")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"vehicles":[]`)
	s.Contains(rec.Body.String(), `"scanned":0`)
	s.Contains(rec.Body.String(), `"next_offset":0`)
}

func (s *HandlerTestSuite) TestRecordCountSnapshot() {
	s.snapshots.EXPECT().RecordSnapshot(gomock.Any()).Return(&domain.VehicleCountHistory{
		VehicleCounts: domain.VehicleCounts{Total: 12},
	}, nil)

	rec := s.do(http.MethodPost, "/api/v1/vehicle-count/snapshot")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total":12`)
}

func (s *HandlerTestSuite) TestBackfillCounts() {
	s.snapshots.EXPECT().Backfill(gomock.Any(), 14).Return(make([]domain.VehicleCountHistory, 14), nil)

	rec := s.do(http.MethodPost, "/api/v1/vehicle-count/backfill?days=14")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"days":14`)
}

func (s *HandlerTestSuite) TestBackfillCounts_RejectsLongWindow() {
	rec := s.do(http.MethodPost, "/api/v1/vehicle-count/backfill?days=1000")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(errCodeValidationFailed, s.errorCode(rec))
}

func (s *HandlerTestSuite) TestBackfillCounts_Failure() {
	s.snapshots.EXPECT().Backfill(gomock.Any(), 0).Return(nil, errors.New("db down"))

	rec := s.do(http.MethodPost, "/api/v1/vehicle-count/backfill")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(errCodeInternalError, s.errorCode(rec))
}

func (s *HandlerTestSuite) TestGetCountHistory_DefaultWindow() {
	since := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)
	s.history.EXPECT().ListSince(gomock.Any(), since).Return(nil, nil)

	rec := s.do(http.MethodGet, "/api/v1/vehicle-count/history")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"history":[]`)
}

func (s *HandlerTestSuite) TestCleanupImages_ParsesOptions() {
	s.cleaner.EXPECT().Run(gomock.Any(), domain.CleanupOptions{
		Source:            domain.SourceChina,
		DryRun:            true,
		CheckReachability: true,
		TimeBudget:        5 * time.Minute,
	}).Return(&domain.CleanupSummary{Source: domain.SourceChina, DryRun: true, Scanned: 40, Invalid: 3}, nil)

	rec := s.do(http.MethodPost, "/api/v1/cleanup/images?source=china&dry_run=true&check_reachability=true&time_budget=5m")

	s.Require().Equal(http.StatusOK, rec.Code)
	var resp domain.CleanupSummary
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(40, resp.Scanned)
	s.Equal(3, resp.Invalid)
}

func (s *HandlerTestSuite) TestCleanupImages_Errors() {
	tests := []struct {
		name   string
		err    error
		status int
		code   ErrorCode
	}{
		{"already running", domain.ErrCleanupInProgress, http.StatusConflict, errCodeConflict},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError, errCodeInternalError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.cleaner.EXPECT().Run(gomock.Any(), domain.CleanupOptions{}).Return(nil, tt.err)

			rec := s.do(http.MethodPost, "/api/v1/cleanup/images")

			s.Equal(tt.status, rec.Code)
			s.Equal(tt.code, s.errorCode(rec))
		})
	}
}

func (s *HandlerTestSuite) TestCleanupImages_RejectsBadInput() {
	for _, target := range []string{
		"/api/v1/cleanup/images?source=mars",
		"/api/v1/cleanup/images?time_budget=soon",
		"/api/v1/cleanup/images?dry_run=maybe",
	} {
		rec := s.do(http.MethodPost, target)
		s.Equal(http.StatusBadRequest, rec.Code, target)
	}
}
