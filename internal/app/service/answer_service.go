package service

import (
	"context"
	"errors"

	"code_tutor/internal/common"
	"code_tutor/internal/domain/model"
	"code_tutor/internal/domain/repository"
	"code_tutor/internal/platform/metrics"

	"github.com/sirupsen/logrus"
)

// AnswerCache is a read-through cache of answers keyed by problem number.
// Get returns nil, nil on a miss.
type AnswerCache interface {
	Get(ctx context.Context, problemNumber string) (*model.Answer, error)
	Set(ctx context.Context, answer *model.Answer) error
	Delete(ctx context.Context, problemNumbers ...string) error
}

type AnswerService struct {
	answerRepo repository.AnswerRepository
	cache      AnswerCache // nil when caching is disabled
}

func NewAnswerService(answerRepo repository.AnswerRepository, cache AnswerCache) *AnswerService {
	return &AnswerService{answerRepo: answerRepo, cache: cache}
}

// SaveAnswer inserts the answer, or upserts it when ID refers to an existing row.
func (s *AnswerService) SaveAnswer(ctx context.Context, answer *model.Answer) (*model.Answer, error) {
	var previousNumber string
	if answer.ID != 0 && s.cache != nil {
		existing, err := s.answerRepo.FindByID(ctx, answer.ID)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("failed to load answer %d: %w", answer.ID, err)
		}
		if existing != nil {
			previousNumber = existing.ProblemNumber
		}
	}

	if err := s.answerRepo.Save(ctx, answer); err != nil {
		return nil, common.Errorf("failed to save answer: %w", err)
	}
	metrics.RecordAnswerSaved()

	if s.cache != nil {
		stale := []string{answer.ProblemNumber}
		if previousNumber != "" && previousNumber != answer.ProblemNumber {
			stale = append(stale, previousNumber)
		}
		if err := s.cache.Delete(ctx, stale...); err != nil {
			logrus.WithError(err).WithField("problem_number", answer.ProblemNumber).Warn("Failed to invalidate cached answer")
		}
	}

	logrus.WithFields(logrus.Fields{"answer_id": answer.ID, "problem_number": answer.ProblemNumber}).Info("Answer saved")
	return answer, nil
}

// GetAnswerByProblemNumber returns nil, nil when no answer exists for the problem.
func (s *AnswerService) GetAnswerByProblemNumber(ctx context.Context, problemNumber string) (*model.Answer, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, problemNumber)
		if err != nil {
			logrus.WithError(err).WithField("problem_number", problemNumber).Warn("Answer cache lookup failed")
		}
		metrics.RecordAnswerCacheLookup(cached != nil)
		if cached != nil {
			return cached, nil
		}
	}

	answer, err := s.answerRepo.FindByProblemNumber(ctx, problemNumber)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, common.Errorf("failed to get answer for problem %s: %w", problemNumber, err)
	}

	// A save racing with this fill can leave a stale entry; it lives at most one TTL.
	if s.cache != nil {
		if err := s.cache.Set(ctx, answer); err != nil {
			logrus.WithError(err).WithField("problem_number", problemNumber).Warn("Failed to cache answer")
		}
	}
	return answer, nil
}
