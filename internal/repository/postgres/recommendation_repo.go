package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-peerrank-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type recommendationRepo struct {
	db *pgxpool.Pool
}

func NewRecommendationRepository(db *pgxpool.Pool) domain.RecommendationRepository {
	return &recommendationRepo{db: db}
}

const recommendationColumns = `
	id, requester_id, recommender_id, rec_type, reason, note_title, note_body,
	status, created_at, decided_at`

func scanRecommendation(row pgx.Row) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	err := row.Scan(
		&rec.ID, &rec.RequesterID, &rec.RecommenderID, &rec.RecType, &rec.Reason, &rec.NoteTitle, &rec.NoteBody,
		&rec.Status, &rec.CreatedAt, &rec.DecidedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepo) GetByID(ctx context.Context, id int64) (*domain.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE id = $1`
	rec, err := scanRecommendation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (r *recommendationRepo) ListApprovedByRequesterIDs(ctx context.Context, requesterIDs []int64) ([]domain.Recommendation, error) {
	if len(requesterIDs) == 0 {
		return []domain.Recommendation{}, nil
	}
	query := `SELECT ` + recommendationColumns + `
		FROM recommendations
		WHERE requester_id = ANY($1) AND status = $2
		ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, pq.Array(requesterIDs), domain.RecommendationStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations: %w", err)
	}
	defer rows.Close()

	recs := []domain.Recommendation{}
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

func (r *recommendationRepo) Decide(ctx context.Context, rec *domain.Recommendation) (bool, error) {
	// Only PENDING rows may be decided
	query := `
		UPDATE recommendations
		SET status = $2, note_title = $3, note_body = $4, decided_at = $5
		WHERE id = $1 AND status = $6`
	tag, err := r.db.Exec(ctx, query,
		rec.ID, rec.Status, rec.NoteTitle, rec.NoteBody, rec.DecidedAt, domain.RecommendationStatusPending,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
