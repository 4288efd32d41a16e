package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"vehicle_sync/internal/domain"
)

const vehicleInsertColumns = `source, source_id, source_url, platform, make, model, year, mileage,
	engine_cc, transmission, fuel_type, color, body_type, drive_type, grade,
	start_price_usd, current_price_usd, buy_now_price_usd, images, auction_status, status, is_visible`

const vehicleColumnCount = 22

// Nullable columns keep their stored value when the incoming record omits them.
// A vehicle that was hidden as unavailable is listed again when it reappears.
const vehicleUpsertConflict = `
	ON CONFLICT (source, source_id) DO UPDATE SET
		source_url = COALESCE(EXCLUDED.source_url, vehicles.source_url),
		platform = COALESCE(NULLIF(EXCLUDED.platform, ''), vehicles.platform),
		make = EXCLUDED.make,
		model = EXCLUDED.model,
		year = EXCLUDED.year,
		mileage = COALESCE(EXCLUDED.mileage, vehicles.mileage),
		engine_cc = COALESCE(EXCLUDED.engine_cc, vehicles.engine_cc),
		transmission = COALESCE(EXCLUDED.transmission, vehicles.transmission),
		fuel_type = COALESCE(EXCLUDED.fuel_type, vehicles.fuel_type),
		color = COALESCE(EXCLUDED.color, vehicles.color),
		body_type = COALESCE(EXCLUDED.body_type, vehicles.body_type),
		drive_type = COALESCE(EXCLUDED.drive_type, vehicles.drive_type),
		grade = COALESCE(EXCLUDED.grade, vehicles.grade),
		start_price_usd = COALESCE(EXCLUDED.start_price_usd, vehicles.start_price_usd),
		current_price_usd = COALESCE(EXCLUDED.current_price_usd, vehicles.current_price_usd),
		buy_now_price_usd = COALESCE(EXCLUDED.buy_now_price_usd, vehicles.buy_now_price_usd),
		images = CASE WHEN cardinality(EXCLUDED.images) > 0 THEN EXCLUDED.images ELSE vehicles.images END,
		auction_status = EXCLUDED.auction_status,
		status = CASE WHEN vehicles.status = 'unavailable' THEN 'available' ELSE vehicles.status END,
		is_visible = CASE WHEN vehicles.status = 'unavailable' THEN TRUE ELSE vehicles.is_visible END,
		updated_at = NOW()
	RETURNING (xmax = 0) AS inserted`

type VehicleStore struct {
	db *sqlx.DB
}

func NewVehicleStore(db *sqlx.DB) *VehicleStore {
	return &VehicleStore{db: db}
}

// UpsertBatch writes all vehicles in one statement keyed by (source, source_id).
// The batch must not contain the same key twice.
func (s *VehicleStore) UpsertBatch(ctx context.Context, vehicles []domain.Vehicle) (inserted, updated int, err error) {
	if len(vehicles) == 0 {
		return 0, 0, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO vehicles (")
	sb.WriteString(vehicleInsertColumns)
	sb.WriteString(") VALUES ")
	args := make([]interface{}, 0, len(vehicles)*vehicleColumnCount)

	for i := range vehicles {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for c := 0; c < vehicleColumnCount; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*vehicleColumnCount + c + 1))
		}
		sb.WriteString(")")
		args = append(args, vehicleArgs(&vehicles[i])...)
	}
	sb.WriteString(vehicleUpsertConflict)

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, 0, fmt.Errorf("upsert vehicles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var isInsert bool
		if err := rows.Scan(&isInsert); err != nil {
			return 0, 0, fmt.Errorf("scan upsert result: %w", err)
		}
		if isInsert {
			inserted++
		} else {
			updated++
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("upsert vehicles: %w", err)
	}
	return inserted, updated, nil
}

func vehicleArgs(v *domain.Vehicle) []interface{} {
	images := []string(v.Images)
	if images == nil {
		images = []string{}
	}

	auction := v.AuctionStatus
	if auction == "" {
		auction = domain.AuctionOngoing
	}
	status := v.Status
	if status == "" {
		status = domain.StatusAvailable
	}

	return []interface{}{
		v.Source, v.SourceID, v.SourceURL, v.Platform, v.Make, v.Model, v.Year, v.Mileage,
		v.EngineCC, v.Transmission, v.FuelType, v.Color, v.BodyType, v.DriveType, v.Grade,
		v.StartPriceUSD, v.CurrentPriceUSD, v.BuyNowPriceUSD, pq.Array(images), auction, status, true,
	}
}

// UpdatePrices applies price-only changes and returns how many rows matched.
func (s *VehicleStore) UpdatePrices(ctx context.Context, source domain.Source, updates []domain.PriceUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	ids := make([]string, len(updates))
	prices := make([]int64, len(updates))
	for i, u := range updates {
		ids[i] = u.SourceID
		prices[i] = u.CurrentPriceUSD
	}

	query := `
		UPDATE vehicles v SET current_price_usd = u.price, updated_at = NOW()
		FROM unnest($2::text[], $3::bigint[]) AS u(source_id, price)
		WHERE v.source = $1 AND v.source_id = u.source_id`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, source, pq.Array(ids), pq.Array(prices))
	if err != nil {
		return 0, fmt.Errorf("update prices: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update prices: %w", err)
	}
	return int(n), nil
}

// DeleteBatch physically removes vehicles. Callers are responsible for the
// active-order guard.
func (s *VehicleStore) DeleteBatch(ctx context.Context, source domain.Source, sourceIDs []string) (int, error) {
	if len(sourceIDs) == 0 {
		return 0, nil
	}

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM vehicles WHERE source = $1 AND source_id = ANY($2)`,
		source, pq.Array(sourceIDs),
	)
	if err != nil {
		return 0, fmt.Errorf("delete vehicles: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete vehicles: %w", err)
	}
	return int(n), nil
}

// MarkUnavailable hides vehicles that cannot be deleted. Rows already
// unavailable are left alone and not counted.
func (s *VehicleStore) MarkUnavailable(ctx context.Context, source domain.Source, sourceIDs []string) (int, error) {
	if len(sourceIDs) == 0 {
		return 0, nil
	}

	query := `
		UPDATE vehicles SET
			status = $3,
			auction_status = $4,
			is_visible = FALSE,
			updated_at = NOW()
		WHERE source = $1 AND source_id = ANY($2) AND status IS DISTINCT FROM $3`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		source, pq.Array(sourceIDs), domain.StatusUnavailable, domain.AuctionEnded,
	)
	if err != nil {
		return 0, fmt.Errorf("mark unavailable: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark unavailable: %w", err)
	}
	return int(n), nil
}

// ListSourceIDs returns every stored source_id of one source.
func (s *VehicleStore) ListSourceIDs(ctx context.Context, source domain.Source) ([]string, error) {
	var ids []string
	err := GetExecutor(ctx, s.db).SelectContext(ctx, &ids,
		`SELECT source_id FROM vehicles WHERE source = $1`, source)
	if err != nil {
		return nil, fmt.Errorf("list source ids: %w", err)
	}
	return ids, nil
}

// Counts aggregates the whole inventory by source group and status.
// Rows without a status count as available.
func (s *VehicleStore) Counts(ctx context.Context) (*domain.VehicleCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total_count,
			COUNT(*) FILTER (WHERE source = ANY($1)) AS korea_count,
			COUNT(*) FILTER (WHERE source = ANY($2)) AS china_count,
			COUNT(*) FILTER (WHERE source = ANY($3)) AS dubai_count,
			COUNT(*) FILTER (WHERE status IS NULL OR status = 'available') AS available_count,
			COUNT(*) FILTER (WHERE status = 'reserved') AS reserved_count,
			COUNT(*) FILTER (WHERE status = 'sold') AS sold_count,
			COUNT(*) FILTER (WHERE status = 'unavailable') AS unavailable_count
		FROM vehicles`

	var counts domain.VehicleCounts
	err := GetExecutor(ctx, s.db).GetContext(ctx, &counts, query,
		pq.Array(domain.SourceGroups[domain.SourceKorea]),
		pq.Array(domain.SourceGroups[domain.SourceChina]),
		pq.Array(domain.SourceGroups[domain.SourceDubai]),
	)
	if err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}
	return &counts, nil
}

type vehicleRow struct {
	ID              int64          `db:"id"`
	Source          string         `db:"source"`
	SourceID        string         `db:"source_id"`
	SourceURL       sql.NullString `db:"source_url"`
	Platform        sql.NullString `db:"platform"`
	Make            string         `db:"make"`
	Model           string         `db:"model"`
	Year            int            `db:"year"`
	Mileage         sql.NullInt64  `db:"mileage"`
	EngineCC        sql.NullInt64  `db:"engine_cc"`
	Transmission    sql.NullString `db:"transmission"`
	FuelType        sql.NullString `db:"fuel_type"`
	Color           sql.NullString `db:"color"`
	BodyType        sql.NullString `db:"body_type"`
	DriveType       sql.NullString `db:"drive_type"`
	Grade           sql.NullString `db:"grade"`
	StartPriceUSD   sql.NullInt64  `db:"start_price_usd"`
	CurrentPriceUSD sql.NullInt64  `db:"current_price_usd"`
	BuyNowPriceUSD  sql.NullInt64  `db:"buy_now_price_usd"`
	Images          pq.StringArray `db:"images"`
	AuctionStatus   string         `db:"auction_status"`
	Status          sql.NullString `db:"status"`
	IsVisible       bool           `db:"is_visible"`
	ViewCount       int            `db:"view_count"`
	FavoriteCount   int            `db:"favorite_count"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r *vehicleRow) toDomain() domain.Vehicle {
	return domain.Vehicle{
		ID:              r.ID,
		Source:          domain.Source(r.Source),
		SourceID:        r.SourceID,
		SourceURL:       nullString(r.SourceURL),
		Platform:        r.Platform.String,
		Make:            r.Make,
		Model:           r.Model,
		Year:            r.Year,
		Mileage:         nullInt(r.Mileage),
		EngineCC:        nullInt(r.EngineCC),
		Transmission:    nullString(r.Transmission),
		FuelType:        nullString(r.FuelType),
		Color:           nullString(r.Color),
		BodyType:        nullString(r.BodyType),
		DriveType:       nullString(r.DriveType),
		Grade:           nullString(r.Grade),
		StartPriceUSD:   nullInt64(r.StartPriceUSD),
		CurrentPriceUSD: nullInt64(r.CurrentPriceUSD),
		BuyNowPriceUSD:  nullInt64(r.BuyNowPriceUSD),
		Images:          domain.ImageList(r.Images),
		AuctionStatus:   domain.AuctionStatus(r.AuctionStatus),
		Status:          domain.InventoryStatus(r.Status.String),
		IsVisible:       r.IsVisible,
		ViewCount:       r.ViewCount,
		FavoriteCount:   r.FavoriteCount,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// Get returns one vehicle by natural key or nil when absent.
func (s *VehicleStore) Get(ctx context.Context, source domain.Source, sourceID string) (*domain.Vehicle, error) {
	var row vehicleRow
	err := GetExecutor(ctx, s.db).GetContext(ctx, &row,
		`SELECT * FROM vehicles WHERE source = $1 AND source_id = $2`, source, sourceID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	v := row.toDomain()
	return &v, nil
}

// ListVisible pages over visible vehicles, newest first. An empty source
// lists every market.
func (s *VehicleStore) ListVisible(ctx context.Context, source domain.Source, limit, offset int) ([]domain.Vehicle, error) {
	query := `
		SELECT * FROM vehicles
		WHERE is_visible AND ($1::text = '' OR source = $1::text) AND cardinality(images) > 0
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	var rows []vehicleRow
	if err := GetExecutor(ctx, s.db).SelectContext(ctx, &rows, query, string(source), limit, offset); err != nil {
		return nil, fmt.Errorf("list visible vehicles: %w", err)
	}

	vehicles := make([]domain.Vehicle, len(rows))
	for i := range rows {
		vehicles[i] = rows[i].toDomain()
	}
	return vehicles, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
