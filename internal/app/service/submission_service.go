package service

import (
	"context"

	"code_tutor/internal/common"
	"code_tutor/internal/domain/model"
	"code_tutor/internal/domain/repository"
	"code_tutor/internal/platform/metrics"

	"github.com/sirupsen/logrus"
)

type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
	answerRepo     repository.AnswerRepository
}

func NewSubmissionService(subRepo repository.SubmissionRepository, answerRepo repository.AnswerRepository) *SubmissionService {
	return &SubmissionService{
		submissionRepo: subRepo,
		answerRepo:     answerRepo,
	}
}

// SaveSubmission stores the submission exactly as sent. The user id and the
// correctness flag come from the client and are not checked.
func (s *SubmissionService) SaveSubmission(ctx context.Context, submission *model.CodeSubmission) (*model.CodeSubmission, error) {
	submission.Answer = nil

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, common.Errorf("failed to save submission: %w", err)
	}
	metrics.RecordSubmissionSaved(submission.IsCorrect)

	logrus.WithFields(logrus.Fields{
		"submission_id":  submission.ID,
		"user_id":        submission.UserID,
		"problem_number": submission.ProblemNumber,
	}).Info("Submission saved")
	return submission, nil
}

func (s *SubmissionService) GetSubmissionsByUserID(ctx context.Context, userID int64) ([]model.CodeSubmission, error) {
	submissions, err := s.submissionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, common.Errorf("failed to list submissions for user %d: %w", userID, err)
	}
	return submissions, nil
}

// GetSubmissionsWithAnswers lists the user's submissions and attaches the stored
// answer for each problem number. Submissions without an answer are left bare.
func (s *SubmissionService) GetSubmissionsWithAnswers(ctx context.Context, userID int64) ([]model.CodeSubmission, error) {
	submissions, err := s.GetSubmissionsByUserID(ctx, userID)
	if err != nil || len(submissions) == 0 {
		return submissions, err
	}

	seen := make(map[string]bool)
	var problemNumbers []string
	for _, sub := range submissions {
		if !seen[sub.ProblemNumber] {
			seen[sub.ProblemNumber] = true
			problemNumbers = append(problemNumbers, sub.ProblemNumber)
		}
	}

	answers, err := s.answerRepo.ListByProblemNumbers(ctx, problemNumbers)
	if err != nil {
		return nil, common.Errorf("failed to load answers for user %d submissions: %w", userID, err)
	}

	byNumber := make(map[string]*model.Answer, len(answers))
	for i := range answers {
		byNumber[answers[i].ProblemNumber] = &answers[i]
	}
	for i := range submissions {
		submissions[i].Answer = byNumber[submissions[i].ProblemNumber]
	}
	return submissions, nil
}
