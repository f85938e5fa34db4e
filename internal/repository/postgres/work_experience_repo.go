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

type workExperienceRepo struct {
	db *pgxpool.Pool
}

func NewWorkExperienceRepository(db *pgxpool.Pool) domain.WorkExperienceRepository {
	return &workExperienceRepo{db: db}
}

const workColumns = `
	id, user_id, company_name, title, employment_type, is_current,
	start_date, end_date, verification_status, verified_at`

func scanWork(row pgx.Row) (*domain.WorkExperience, error) {
	var w domain.WorkExperience
	err := row.Scan(
		&w.ID, &w.UserID, &w.CompanyName, &w.Title, &w.EmploymentType, &w.IsCurrent,
		&w.StartDate, &w.EndDate, &w.VerificationStatus, &w.VerifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *workExperienceRepo) GetByID(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	query := `SELECT ` + workColumns + ` FROM work_experiences WHERE id = $1`
	w, err := scanWork(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}

func (r *workExperienceRepo) ListVerifiedByUserIDs(ctx context.Context, userIDs []int64) ([]domain.WorkExperience, error) {
	if len(userIDs) == 0 {
		return []domain.WorkExperience{}, nil
	}
	query := `SELECT ` + workColumns + `
		FROM work_experiences
		WHERE user_id = ANY($1) AND verification_status = $2
		ORDER BY id ASC`
	return r.list(ctx, query, pq.Array(userIDs), domain.VerificationStatusVerified)
}

func (r *workExperienceRepo) ListByStatus(ctx context.Context, status string) ([]domain.WorkExperience, error) {
	query := `SELECT ` + workColumns + `
		FROM work_experiences
		WHERE verification_status = $1
		ORDER BY id ASC`
	return r.list(ctx, query, status)
}

func (r *workExperienceRepo) list(ctx context.Context, query string, args ...any) ([]domain.WorkExperience, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work experiences: %w", err)
	}
	defer rows.Close()

	entries := []domain.WorkExperience{}
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *w)
	}
	return entries, rows.Err()
}

func (r *workExperienceRepo) UpdateVerificationStatus(ctx context.Context, id int64, status string, verifiedAt *time.Time) (bool, error) {
	query := `
		UPDATE work_experiences
		SET verification_status = $2, verified_at = $3
		WHERE id = $1 AND verification_status = $4`
	tag, err := r.db.Exec(ctx, query, id, status, verifiedAt, domain.VerificationStatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
