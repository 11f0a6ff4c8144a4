package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"code_tutor/internal/common"
	"code_tutor/internal/domain/model"
)

type AnswerRepository interface {
	// Save inserts the answer, or updates the row with answer.ID when it exists.
	// An unknown ID is inserted under a newly generated one.
	Save(ctx context.Context, answer *model.Answer) error
	FindByID(ctx context.Context, id int64) (*model.Answer, error)
	FindByProblemNumber(ctx context.Context, problemNumber string) (*model.Answer, error)
	ListByProblemNumbers(ctx context.Context, problemNumbers []string) ([]model.Answer, error)
}

type pgAnswerRepository struct {
	db *sql.DB
}

func NewPgAnswerRepository(db *sql.DB) AnswerRepository {
	return &pgAnswerRepository{db: db}
}

func (r *pgAnswerRepository) Save(ctx context.Context, a *model.Answer) error {
	if a.ID != 0 {
		updated, err := r.update(ctx, a)
		if err != nil || updated {
			return err
		}
	}

	query := `INSERT INTO answers (problem_number, answer_code)
	          VALUES ($1, $2)
	          RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, a.ProblemNumber, a.AnswerCode).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if common.IsUniqueViolation(err) {
			return fmt.Errorf("answer for problem %s already exists: %w", a.ProblemNumber, common.ErrConflict)
		}
		return fmt.Errorf("pgAnswerRepository.Save: %w", err)
	}
	return nil
}

func (r *pgAnswerRepository) update(ctx context.Context, a *model.Answer) (bool, error) {
	query := `UPDATE answers SET problem_number = $1, answer_code = $2
	          WHERE id = $3
	          RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, a.ProblemNumber, a.AnswerCode, a.ID).Scan(&a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		if common.IsUniqueViolation(err) {
			return false, fmt.Errorf("answer for problem %s already exists: %w", a.ProblemNumber, common.ErrConflict)
		}
		return false, fmt.Errorf("pgAnswerRepository.update: %w", err)
	}
	return true, nil
}

func (r *pgAnswerRepository) FindByID(ctx context.Context, id int64) (*model.Answer, error) {
	query := `SELECT id, problem_number, answer_code, created_at
	          FROM answers WHERE id = $1`
	answer := &model.Answer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&answer.ID, &answer.ProblemNumber, &answer.AnswerCode, &answer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgAnswerRepository.FindByID: %w", err)
	}
	return answer, nil
}

func (r *pgAnswerRepository) FindByProblemNumber(ctx context.Context, problemNumber string) (*model.Answer, error) {
	query := `SELECT id, problem_number, answer_code, created_at
	          FROM answers WHERE problem_number = $1`
	answer := &model.Answer{}
	err := r.db.QueryRowContext(ctx, query, problemNumber).Scan(
		&answer.ID, &answer.ProblemNumber, &answer.AnswerCode, &answer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgAnswerRepository.FindByProblemNumber: %w", err)
	}
	return answer, nil
}

func (r *pgAnswerRepository) ListByProblemNumbers(ctx context.Context, problemNumbers []string) ([]model.Answer, error) {
	answers := []model.Answer{}
	if len(problemNumbers) == 0 {
		return answers, nil
	}

	placeholders := make([]string, len(problemNumbers))
	args := make([]interface{}, len(problemNumbers))
	for i, pn := range problemNumbers {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = pn
	}
	query := `SELECT id, problem_number, answer_code, created_at
	          FROM answers WHERE problem_number IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgAnswerRepository.ListByProblemNumbers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a model.Answer
		if err := rows.Scan(&a.ID, &a.ProblemNumber, &a.AnswerCode, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgAnswerRepository.ListByProblemNumbers scan: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgAnswerRepository.ListByProblemNumbers rows: %w", err)
	}
	return answers, nil
}
