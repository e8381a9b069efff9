package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
	"github.com/oksasatya/wisata-api/internal/domain/repository"
)

type VisitRepository struct {
	pool *pgxpool.Pool
}

func NewVisitRepository(pool *pgxpool.Pool) *VisitRepository {
	return &VisitRepository{pool: pool}
}

// upsertVisitSQL merges the incoming visitors into an existing row as an ordered set
// union (first occurrence wins). xmax = 0 only for freshly inserted tuples.
const upsertVisitSQL = `
	INSERT INTO visits (wisata_id, list_visitor, visit_date)
	VALUES ($1, $2::jsonb, $3::date)
	ON CONFLICT (wisata_id, visit_date) DO UPDATE
	SET list_visitor = (
		SELECT COALESCE(jsonb_agg(m.v ORDER BY m.ord), '[]'::jsonb)
		FROM (
			SELECT e.v, MIN(e.ord) AS ord
			FROM jsonb_array_elements(visits.list_visitor || EXCLUDED.list_visitor) WITH ORDINALITY AS e(v, ord)
			GROUP BY e.v
		) m
	),
	updated_at = now()
	RETURNING visiting_id, wisata_id, list_visitor, visit_date, created_at, updated_at, (xmax = 0) AS inserted
`

func (r *VisitRepository) Record(ctx context.Context, wisataID int64, visitors []string, day entity.Day) (*entity.Visit, bool, error) {
	payload, err := json.Marshal(visitors)
	if err != nil {
		return nil, false, err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	missing, err := unregistered(ctx, tx, visitors)
	if err != nil {
		return nil, false, err
	}
	if len(missing) > 0 {
		return nil, false, &repository.UnregisteredVisitorsError{Emails: missing}
	}

	v := &entity.Visit{}
	var date time.Time
	var inserted bool
	if err := tx.QueryRow(ctx, upsertVisitSQL, wisataID, string(payload), day.Time).Scan(
		&v.ID, &v.WisataID, &v.ListVisitor, &date, &v.CreatedAt, &v.UpdatedAt, &inserted,
	); err != nil {
		return nil, false, mapErr(err)
	}
	v.VisitDate = entity.DayOf(date)

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}
	return v, inserted, nil
}

// unregistered returns the emails in visitors that have no users row, in input order.
func unregistered(ctx context.Context, tx pgx.Tx, visitors []string) ([]string, error) {
	rows, err := tx.Query(ctx, `SELECT email FROM users WHERE email = ANY($1)`, visitors)
	if err != nil {
		return nil, err
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(found))
	for _, e := range found {
		known[e] = struct{}{}
	}
	var missing []string
	for _, e := range visitors {
		if _, ok := known[e]; !ok {
			missing = append(missing, e)
		}
	}
	return missing, nil
}

const visitWithContentSQL = `
	SELECT v.visiting_id, v.wisata_id, v.list_visitor, v.visit_date, v.created_at, v.updated_at,
	       c.wisata_id, c.wisata_name, c.description, c.image_url, c.address, c.lat, c.lon, c.country,
	       c.created_at, c.updated_at
	FROM visits v
	JOIN contents c ON c.wisata_id = v.wisata_id
`

func (r *VisitRepository) ListWithContent(ctx context.Context) ([]entity.VisitWithContent, error) {
	return r.query(ctx, visitWithContentSQL+` ORDER BY v.visit_date, v.visiting_id`)
}

func (r *VisitRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entity.VisitWithContent, error) {
	return r.query(ctx, visitWithContentSQL+`
		WHERE v.visit_date BETWEEN $1::date AND $2::date
		ORDER BY v.visit_date, v.visiting_id
	`, from, to)
}

func (r *VisitRepository) query(ctx context.Context, sql string, args ...any) ([]entity.VisitWithContent, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := make([]entity.VisitWithContent, 0)
	for rows.Next() {
		var (
			vc   entity.VisitWithContent
			date time.Time
			c    = &vc.Content
		)
		if err := rows.Scan(
			&vc.ID, &vc.WisataID, &vc.ListVisitor, &date, &vc.CreatedAt, &vc.UpdatedAt,
			&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.Address, &c.Lat, &c.Lon, &c.Country,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		vc.VisitDate = entity.DayOf(date)
		out = append(out, vc)
	}
	return out, rows.Err()
}

var _ repository.VisitRepository = (*VisitRepository)(nil)
