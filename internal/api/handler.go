package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/image"
)

// Handler serves the admin, image and read endpoints.
type Handler struct {
	syncs     SyncManager
	proxy     ImageProxy
	loader    ImageLoader
	images    ImageValidator
	snapshots CountSnapshotter
	history   CountHistoryReader
	vehicles  VehicleReader
	cleaner   ImageCleaner
	logger    *slog.Logger
	now       func() time.Time
}

func NewHandler(
	syncs SyncManager,
	proxy ImageProxy,
	loader ImageLoader,
	images ImageValidator,
	snapshots CountSnapshotter,
	history CountHistoryReader,
	vehicles VehicleReader,
	cleaner ImageCleaner,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		syncs:     syncs,
		proxy:     proxy,
		loader:    loader,
		images:    images,
		snapshots: snapshots,
		history:   history,
		vehicles:  vehicles,
		cleaner:   cleaner,
		logger:    logger.With("component", "api"),
		now:       time.Now,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "vehicle-sync",
	})
}

// TriggerSync runs one sync for a source and returns its summary.
// A failed run still answers 200, the status lives in the summary.
func (h *Handler) TriggerSync(c *gin.Context) {
	source, ok := h.sourceParam(c)
	if !ok {
		return
	}

	params, err := ParseSyncQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	opts, err := params.Options()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	summary, err := h.syncs.RunSync(c.Request.Context(), source, opts.Mode, opts)
	switch {
	case errors.Is(err, domain.ErrRunInProgress):
		respondConflict(c, "A sync is already running for this source")
	case errors.Is(err, domain.ErrUnknownSource):
		respondNotFound(c, "Source is not configured", string(source))
	case summary != nil:
		c.JSON(http.StatusOK, summary)
	case err != nil:
		respondInternalError(c, h.logger, err, "Failed to run sync", "source", source)
	default:
		respondInternalError(c, h.logger, errors.New("empty run summary"), "Failed to run sync", "source", source)
	}
}

func (h *Handler) GetSyncStatus(c *gin.Context) {
	source, ok := h.sourceParam(c)
	if !ok {
		return
	}

	report, err := h.syncs.GetSyncStatus(c.Request.Context(), source)
	if errors.Is(err, domain.ErrUnknownSource) {
		respondNotFound(c, "Source is not configured", string(source))
		return
	}
	if err != nil {
		respondInternalError(c, h.logger, err, "Failed to load sync status", "source", source)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetOffer previews one upstream listing, normalized but not stored.
func (h *Handler) GetOffer(c *gin.Context) {
	source, ok := h.sourceParam(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Offer id is required")
		return
	}

	vehicle, err := h.syncs.FetchOffer(c.Request.Context(), source, id)
	h.respondOffer(c, source, vehicle, err)
}

// ResolveOffer previews a listing by its public page URL.
func (h *Handler) ResolveOffer(c *gin.Context) {
	source, ok := h.sourceParam(c)
	if !ok {
		return
	}

	listingURL := c.Query("url")
	if listingURL == "" {
		respondBadRequest(c, "Missing url parameter")
		return
	}

	vehicle, err := h.syncs.FetchOfferByURL(c.Request.Context(), source, listingURL)
	h.respondOffer(c, source, vehicle, err)
}

func (h *Handler) respondOffer(c *gin.Context, source domain.Source, vehicle *domain.Vehicle, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownSource):
		respondNotFound(c, "Source is not configured", string(source))
	case errors.Is(err, domain.ErrNotFound):
		respondNotFound(c, "Offer not found")
	case errors.Is(err, domain.ErrInvalidRecord):
		respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, "Offer cannot be normalized", err.Error())
	case err != nil:
		h.logger.Warn("offer lookup failed", "source", source, "error", err)
		respondWithError(c, http.StatusBadGateway, errCodeUpstreamError, "Upstream lookup failed")
	default:
		c.JSON(http.StatusOK, vehicle)
	}
}

// ProxyImage streams an allowlisted upstream image with the headers it
// requires and a cache policy derived from the URL.
func (h *Handler) ProxyImage(c *gin.Context) {
	raw := image.DecodeParam(c.Query("url"))
	if raw == "" {
		respondBadRequest(c, "Missing url parameter")
		return
	}

	res, err := h.proxy.Fetch(c.Request.Context(), raw)
	if err != nil {
		h.respondImageError(c, raw, err)
		return
	}
	defer res.Close()

	c.Header("Cache-Control", res.CacheControl)
	c.Header("CDN-Cache-Control", res.CacheControl)
	c.DataFromReader(http.StatusOK, res.ContentLength, res.ContentType, res.Body, nil)
}

func (h *Handler) respondImageError(c *gin.Context, raw string, err error) {
	var statusErr *image.UpstreamStatusError
	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		respondBadRequest(c, "Invalid image url", err.Error())
	case errors.Is(err, domain.ErrDomainNotAllowed):
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Image domain not allowed")
	case errors.Is(err, domain.ErrImageExpired):
		respondWithError(c, http.StatusGone, errCodeGone, "Image url expired")
	case errors.Is(err, image.ErrFetchTimeout):
		respondWithError(c, http.StatusGatewayTimeout, errCodeTimeout, "Image fetch timed out")
	case errors.As(err, &statusErr):
		respondWithError(c, statusErr.StatusCode, errCodeUpstreamError, "Upstream image request failed")
	default:
		h.logger.Warn("image proxy failed", "url", raw, "error", err)
		respondWithError(c, http.StatusBadGateway, errCodeUpstreamError, "Failed to fetch image")
	}
}

// LoadImage always answers with an image, the placeholder when the real one
// could not be loaded.
func (h *Handler) LoadImage(c *gin.Context) {
	raw := image.DecodeParam(c.Query("url"))
	if raw == "" {
		respondBadRequest(c, "Missing url parameter")
		return
	}

	img := h.loader.Load(c.Request.Context(), raw)
	if img.Placeholder {
		c.Header("X-Image-Placeholder", "true")
	}
	c.Header("Cache-Control", img.CacheControl)
	c.Data(http.StatusOK, img.ContentType, img.Data)
}

type imageValidityResponse struct {
	URL       string     `json:"url"`
	Kind      image.Kind `json:"kind"`
	Valid     bool       `json:"valid"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (h *Handler) CheckImage(c *gin.Context) {
	raw := image.DecodeParam(c.Query("url"))
	if raw == "" {
		respondBadRequest(c, "Missing url parameter")
		return
	}

	cl, err := h.images.Classify(raw)
	if err != nil {
		respondBadRequest(c, "Invalid image url", err.Error())
		return
	}

	resp := imageValidityResponse{
		URL:   raw,
		Kind:  cl.Kind,
		Valid: h.images.IsValid(raw),
	}
	if cl.Kind == image.KindSigned {
		resp.ExpiresAt = &cl.ExpiresAt
	}
	c.JSON(http.StatusOK, resp)
}

// Cover filtering runs after paging, so a page may hold fewer than Limit
// vehicles. Clients advance with NextOffset, which counts scanned rows.
type listVehiclesResponse struct {
	Vehicles   []domain.Vehicle `json:"vehicles"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
	Scanned    int              `json:"scanned"`
	NextOffset int              `json:"next_offset"`
}

// ListVehicles pages over visible vehicles and drops those whose cover image
// is no longer displayable.
func (h *Handler) ListVehicles(c *gin.Context) {
	params, err := ParseListVehiclesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var source domain.Source
	if params.Source != "" {
		if source, err = domain.ParseSource(params.Source); err != nil {
			respondValidationError(c, err.Error())
			return
		}
	}

	vehicles, err := h.vehicles.ListVisible(c.Request.Context(), source, params.Limit, params.Offset)
	if err != nil {
		respondInternalError(c, h.logger, err, "Failed to list vehicles")
		return
	}

	visible := make([]domain.Vehicle, 0, len(vehicles))
	for i := range vehicles {
		if h.images.HasValidCover(&vehicles[i]) {
			visible = append(visible, vehicles[i])
		}
	}

	c.JSON(http.StatusOK, listVehiclesResponse{
		Vehicles:   visible,
		Limit:      params.Limit,
		Offset:     params.Offset,
		Scanned:    len(vehicles),
		NextOffset: params.Offset + len(vehicles),
	})
}

// CleanupImages removes vehicles whose cover image is expired or, with
// check_reachability, refused by the image host.
func (h *Handler) CleanupImages(c *gin.Context) {
	params, err := ParseCleanupQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	opts, err := params.Options()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	summary, err := h.cleaner.Run(c.Request.Context(), opts)
	switch {
	case errors.Is(err, domain.ErrCleanupInProgress):
		respondConflict(c, "An image cleanup is already running")
	case err != nil:
		respondInternalError(c, h.logger, err, "Image cleanup failed")
	default:
		c.JSON(http.StatusOK, summary)
	}
}

func (h *Handler) RecordCountSnapshot(c *gin.Context) {
	row, err := h.snapshots.RecordSnapshot(c.Request.Context())
	if err != nil {
		respondInternalError(c, h.logger, err, "Failed to record count snapshot")
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) BackfillCounts(c *gin.Context) {
	params, err := ParseDaysQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	rows, err := h.snapshots.Backfill(c.Request.Context(), params.Days)
	if err != nil {
		respondInternalError(c, h.logger, err, "Failed to backfill count history")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"days": len(rows),
		"rows": rows,
	})
}

func (h *Handler) GetCountHistory(c *gin.Context) {
	params, err := ParseDaysQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	days := params.Days
	if days == 0 {
		days = defaultHistoryDays
	}

	today := h.now().UTC().Truncate(24 * time.Hour)
	rows, err := h.history.ListSince(c.Request.Context(), today.AddDate(0, 0, -(days-1)))
	if err != nil {
		respondInternalError(c, h.logger, err, "Failed to load count history")
		return
	}
	if rows == nil {
		rows = []domain.VehicleCountHistory{}
	}
	c.JSON(http.StatusOK, gin.H{"history": rows})
}

func (h *Handler) sourceParam(c *gin.Context) (domain.Source, bool) {
	source, err := domain.ParseSource(c.Param("source"))
	if err != nil {
		respondNotFound(c, "Unknown source", c.Param("source"))
		return "", false
	}
	return source, true
}
