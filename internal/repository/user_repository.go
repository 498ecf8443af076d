package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/lms-service/internal/domain"
)

// UserRepository defines persistence access for accounts and their
// role-specific profiles.
type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *domain.User, student *domain.StudentProfile, instructor *domain.InstructorProfile) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	GetStudentProfile(ctx context.Context, userID string) (*domain.StudentProfile, error)
	GetInstructorProfile(ctx context.Context, userID string) (*domain.InstructorProfile, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

// CreateWithProfile inserts the user row and its role profile row in one
// transaction; a failure on either side rolls back both.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *domain.User, student *domain.StudentProfile, instructor *domain.InstructorProfile) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const insertUser = `
        INSERT INTO users (name, email, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

		if err := tx.QueryRow(ctx, insertUser,
			user.Name,
			user.Email,
			user.PasswordHash,
			user.Role,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return err
		}

		if student != nil {
			const insertStudent = `
            INSERT INTO students (user_id, age, country, skill_level, category)
            VALUES ($1, $2, $3, $4, $5)`
			if _, err := tx.Exec(ctx, insertStudent,
				user.ID,
				student.Age,
				student.Country,
				student.SkillLevel,
				student.Category,
			); err != nil {
				return err
			}
			student.UserID = user.ID
		}

		if instructor != nil {
			const insertInstructor = `
            INSERT INTO instructors (user_id, experience, rating)
            VALUES ($1, $2, $3)`
			if _, err := tx.Exec(ctx, insertInstructor,
				user.ID,
				instructor.Experience,
				instructor.Rating,
			); err != nil {
				return err
			}
			instructor.UserID = user.ID
		}

		return nil
	})
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, password_hash, role, created_at, updated_at
        FROM users WHERE id=$1`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, password_hash, role, created_at, updated_at
        FROM users WHERE email=$1`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	const query = `
        SELECT id, name, email, password_hash, role, created_at, updated_at
        FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE users SET password_hash=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	const query = `UPDATE users SET role=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, role, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetStudentProfile(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	const query = `
        SELECT user_id, age, country, skill_level, category
        FROM students WHERE user_id=$1`

	var profile domain.StudentProfile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Age,
		&profile.Country,
		&profile.SkillLevel,
		&profile.Category,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) GetInstructorProfile(ctx context.Context, userID string) (*domain.InstructorProfile, error) {
	const query = `
        SELECT user_id, experience, rating
        FROM instructors WHERE user_id=$1`

	var profile domain.InstructorProfile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Experience,
		&profile.Rating,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}
