package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"code_tutor/internal/common"
	"code_tutor/internal/domain/model"
)

type SubmissionRepository interface {
	Create(ctx context.Context, sub *model.CodeSubmission) error
	FindByID(ctx context.Context, id int64) (*model.CodeSubmission, error)
	// ListByUserID returns submissions in insertion order; never nil.
	ListByUserID(ctx context.Context, userID int64) ([]model.CodeSubmission, error)
}

type pgSubmissionRepository struct {
	db *sql.DB
}

func NewPgSubmissionRepository(db *sql.DB) SubmissionRepository {
	return &pgSubmissionRepository{db: db}
}

func (r *pgSubmissionRepository) Create(ctx context.Context, s *model.CodeSubmission) error {
	query := `INSERT INTO code_submissions (user_id, code, problem_number, is_correct, feedback)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, submitted_at`
	err := r.db.QueryRowContext(ctx, query, s.UserID, s.Code, s.ProblemNumber, s.IsCorrect, s.Feedback).
		Scan(&s.ID, &s.SubmittedAt)
	if err != nil {
		return fmt.Errorf("pgSubmissionRepository.Create: %w", err)
	}
	return nil
}

func (r *pgSubmissionRepository) FindByID(ctx context.Context, id int64) (*model.CodeSubmission, error) {
	query := `SELECT id, user_id, code, problem_number, is_correct, feedback, submitted_at
	          FROM code_submissions WHERE id = $1`
	s := &model.CodeSubmission{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Code, &s.ProblemNumber, &s.IsCorrect, &s.Feedback, &s.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgSubmissionRepository.FindByID: %w", err)
	}
	return s, nil
}

func (r *pgSubmissionRepository) ListByUserID(ctx context.Context, userID int64) ([]model.CodeSubmission, error) {
	query := `SELECT id, user_id, code, problem_number, is_correct, feedback, submitted_at
	          FROM code_submissions WHERE user_id = $1
	          ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.ListByUserID: %w", err)
	}
	defer rows.Close()

	submissions := []model.CodeSubmission{}
	for rows.Next() {
		var s model.CodeSubmission
		if err := rows.Scan(&s.ID, &s.UserID, &s.Code, &s.ProblemNumber, &s.IsCorrect, &s.Feedback, &s.SubmittedAt); err != nil {
			return nil, fmt.Errorf("pgSubmissionRepository.ListByUserID scan: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.ListByUserID rows: %w", err)
	}
	return submissions, nil
}
