package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/foodprint-app/foodprint/internal/common"
	"github.com/foodprint-app/foodprint/internal/dbx"
	"github.com/foodprint-app/foodprint/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, username, email, password_hash, full_address,
	shopping_preference, profile_image, registration_date,
	total_emissions, emissions_saved, points`

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, username, email, password_hash, full_address,
		                    shopping_preference, profile_image, registration_date,
		                    total_emissions, emissions_saved, points)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.FullAddress, user.ShoppingPreference, user.ProfileImage,
		user.RegistrationDate, user.TotalEmissions, user.EmissionsSaved,
		user.Points).Scan(&user.ID)

	if err != nil {
		// the uniqueness constraint on username/email is the only source of
		// atomicity for concurrent registrations
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FullAddress, &user.ShoppingPreference, &user.ProfileImage,
		&user.RegistrationDate, &user.TotalEmissions, &user.EmissionsSaved,
		&user.Points)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
