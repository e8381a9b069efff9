package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
	"github.com/oksasatya/wisata-api/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, name, password_hash, role::text, wisata_name, profile_pic, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, name, password_hash, role, wisata_name)
		VALUES ($1, $2, $3, $4::text::user_role, $5)
		RETURNING id, created_at, updated_at
	`, u.Email, u.Name, u.Password, string(u.Role), u.WisataName)

	return mapErr(row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) getOne(ctx context.Context, sql string, arg any) (*entity.User, error) {
	u := &entity.User{}
	var role string
	if err := r.pool.QueryRow(ctx, sql, arg).Scan(&u.ID, &u.Email, &u.Name, &u.Password, &role,
		&u.WisataName, &u.ProfilePic, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	u.Role = entity.Role(role)
	return u, nil
}

func (r *UserRepository) UpdateProfilePic(ctx context.Context, id int64, url string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET profile_pic = $1, updated_at = now() WHERE id = $2
	`, url, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
