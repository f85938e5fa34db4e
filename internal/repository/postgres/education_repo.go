package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-peerrank-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

const educationColumns = `
	id, user_id, degree_type, university_name, university_tier, gpa,
	start_date, end_date, is_completed, college_id, verification_status, verified_at`

func scanEducation(row pgx.Row) (*domain.EducationEntry, error) {
	var e domain.EducationEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.DegreeType, &e.UniversityName, &e.UniversityTier, &e.GPA,
		&e.StartDate, &e.EndDate, &e.IsCompleted, &e.CollegeID, &e.VerificationStatus, &e.VerifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *educationRepo) GetByID(ctx context.Context, id int64) (*domain.EducationEntry, error) {
	query := `SELECT ` + educationColumns + ` FROM education_entries WHERE id = $1`
	e, err := scanEducation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *educationRepo) ListVerifiedByUserIDs(ctx context.Context, userIDs []int64) ([]domain.EducationEntry, error) {
	if len(userIDs) == 0 {
		return []domain.EducationEntry{}, nil
	}
	query := `SELECT ` + educationColumns + `
		FROM education_entries
		WHERE user_id = ANY($1) AND verification_status = $2
		ORDER BY id ASC`
	return r.list(ctx, query, pq.Array(userIDs), domain.VerificationStatusVerified)
}

func (r *educationRepo) ListByStatus(ctx context.Context, status string) ([]domain.EducationEntry, error) {
	query := `SELECT ` + educationColumns + `
		FROM education_entries
		WHERE verification_status = $1
		ORDER BY id ASC`
	return r.list(ctx, query, status)
}

func (r *educationRepo) list(ctx context.Context, query string, args ...any) ([]domain.EducationEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch education entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.EducationEntry{}
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (r *educationRepo) UpdateVerificationStatus(ctx context.Context, id int64, status string, verifiedAt *time.Time) (bool, error) {
	query := `
		UPDATE education_entries
		SET verification_status = $2, verified_at = $3
		WHERE id = $1 AND verification_status = $4`
	tag, err := r.db.Exec(ctx, query, id, status, verifiedAt, domain.VerificationStatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
