package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgresRepository implements Repository on top of a pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user record. The id is generated here; created_at is
// assigned by the database. A collision with the unique email index surfaces
// as ErrDuplicateEmail.
func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {
	user.ID = uuid.NewString()

	query := `INSERT INTO users (id, name, email, password)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at`

	err := r.db.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.HashedPassword).Scan(&user.CreatedAt)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return user, nil
}

// FindAll returns every user, oldest first.
func (r *PostgresRepository) FindAll(ctx context.Context) ([]User, error) {
	query := `SELECT id, name, email, password, created_at
	          FROM users
	          ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

// FindByID returns the user with the given id, or ErrNotFound.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT id, name, email, password, created_at
	          FROM users
	          WHERE id = $1`

	var u User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail returns the user with the given email, or ErrNotFound. The
// lookup is exact; emails are stored and compared case-sensitively.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, name, email, password, created_at
	          FROM users
	          WHERE email = $1`

	var u User
	err := r.db.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update writes the full mutable state of the user in a single statement.
// The service layer has already merged partial input into the stored record.
func (r *PostgresRepository) Update(ctx context.Context, user *User) (*User, error) {
	query := `UPDATE users
	          SET name = $2, email = $3, password = $4
	          WHERE id = $1
	          RETURNING created_at`

	err := r.db.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.HashedPassword).Scan(&user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, mapUniqueViolation(err)
	}
	return user, nil
}

// Delete permanently removes the user, or returns ErrNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateEmail
	}
	return err
}
