package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
	"github.com/oksasatya/wisata-api/internal/domain/repository"
)

type ContentRepository struct {
	pool *pgxpool.Pool
}

func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

const contentColumns = `wisata_id, wisata_name, description, image_url, address, lat, lon, country, created_at, updated_at`

func scanContent(row pgx.Row, c *entity.Content) error {
	return row.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.Address,
		&c.Lat, &c.Lon, &c.Country, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ContentRepository) Create(ctx context.Context, c *entity.Content) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contents (wisata_name, description, image_url, address, lat, lon, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING wisata_id, created_at, updated_at
	`, c.Name, c.Description, c.ImageURL, c.Address, c.Lat, c.Lon, c.Country)
	return mapErr(row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt))
}

func (r *ContentRepository) List(ctx context.Context) ([]entity.Content, error) {
	return r.query(ctx, `SELECT `+contentColumns+` FROM contents ORDER BY wisata_id`)
}

func (r *ContentRepository) GetByID(ctx context.Context, id int64) (*entity.Content, error) {
	c := &entity.Content{}
	if err := scanContent(r.pool.QueryRow(ctx, `SELECT `+contentColumns+` FROM contents WHERE wisata_id = $1`, id), c); err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

func (r *ContentRepository) GetByName(ctx context.Context, name string) (*entity.Content, error) {
	c := &entity.Content{}
	if err := scanContent(r.pool.QueryRow(ctx, `SELECT `+contentColumns+` FROM contents WHERE wisata_name = $1`, name), c); err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

func (r *ContentRepository) Update(ctx context.Context, c *entity.Content) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE contents
		SET wisata_name = $1, description = $2, image_url = $3, address = $4,
		    lat = $5, lon = $6, country = $7, updated_at = now()
		WHERE wisata_id = $8
		RETURNING updated_at
	`, c.Name, c.Description, c.ImageURL, c.Address, c.Lat, c.Lon, c.Country, c.ID)
	return mapErr(row.Scan(&c.UpdatedAt))
}

func (r *ContentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM contents WHERE wisata_id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Search is the SQL fallback used when no search index is configured.
func (r *ContentRepository) Search(ctx context.Context, q string, limit int) ([]entity.Content, error) {
	pattern := "%" + escapeLike(q) + "%"
	return r.query(ctx, `
		SELECT `+contentColumns+` FROM contents
		WHERE wisata_name ILIKE $1 OR description ILIKE $1 OR address ILIKE $1 OR country ILIKE $1
		ORDER BY wisata_name
		LIMIT $2
	`, pattern, limit)
}

func (r *ContentRepository) query(ctx context.Context, sql string, args ...any) ([]entity.Content, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := make([]entity.Content, 0)
	for rows.Next() {
		var c entity.Content
		if err := scanContent(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

var _ repository.ContentRepository = (*ContentRepository)(nil)
