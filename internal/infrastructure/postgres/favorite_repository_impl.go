package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
	"github.com/oksasatya/wisata-api/internal/domain/repository"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

const favoriteColumns = `favorite_id, email, wisata_id, is_favorite, created_at, updated_at`

func scanFavorite(row pgx.Row, f *entity.Favorite) error {
	return row.Scan(&f.ID, &f.Email, &f.WisataID, &f.IsFavorite, &f.CreatedAt, &f.UpdatedAt)
}

func (r *FavoriteRepository) Create(ctx context.Context, f *entity.Favorite) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO favorites (email, wisata_id, is_favorite)
		VALUES ($1, $2, $3)
		RETURNING favorite_id, created_at, updated_at
	`, f.Email, f.WisataID, f.IsFavorite)
	return mapErr(row.Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt))
}

func (r *FavoriteRepository) List(ctx context.Context) ([]entity.Favorite, error) {
	return r.query(ctx, `SELECT `+favoriteColumns+` FROM favorites ORDER BY favorite_id`)
}

func (r *FavoriteRepository) ListByEmail(ctx context.Context, email string) ([]entity.Favorite, error) {
	return r.query(ctx, `SELECT `+favoriteColumns+` FROM favorites WHERE email = $1 ORDER BY favorite_id`, email)
}

func (r *FavoriteRepository) GetByID(ctx context.Context, id int64) (*entity.Favorite, error) {
	f := &entity.Favorite{}
	if err := scanFavorite(r.pool.QueryRow(ctx, `SELECT `+favoriteColumns+` FROM favorites WHERE favorite_id = $1`, id), f); err != nil {
		return nil, mapErr(err)
	}
	return f, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM favorites WHERE favorite_id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *FavoriteRepository) query(ctx context.Context, sql string, args ...any) ([]entity.Favorite, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := make([]entity.Favorite, 0)
	for rows.Next() {
		var f entity.Favorite
		if err := scanFavorite(rows, &f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

var _ repository.FavoriteRepository = (*FavoriteRepository)(nil)
