package api

import (
	"context"
	"errors"
	"sync"
	"time"

	"code_tutor/internal/common"
	"code_tutor/internal/domain/model"
)

// In-memory repositories with the same contract as the Postgres ones.

type memUserRepo struct {
	mu    sync.Mutex
	users []model.User
}

func (m *memUserRepo) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return common.ErrConflict
		}
	}
	user.ID = int64(len(m.users) + 1)
	user.CreatedAt = time.Now()
	m.users = append(m.users, *user)
	return nil
}

func (m *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

type memAnswerRepo struct {
	mu      sync.Mutex
	answers []model.Answer
}

func (m *memAnswerRepo) Save(_ context.Context, answer *model.Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.answers {
		if a.ProblemNumber == answer.ProblemNumber && a.ID != answer.ID {
			return common.ErrConflict
		}
	}
	if answer.ID != 0 {
		for i := range m.answers {
			if m.answers[i].ID == answer.ID {
				answer.CreatedAt = m.answers[i].CreatedAt
				m.answers[i] = *answer
				return nil
			}
		}
	}
	answer.ID = int64(len(m.answers) + 1)
	answer.CreatedAt = time.Now()
	m.answers = append(m.answers, *answer)
	return nil
}

func (m *memAnswerRepo) FindByID(_ context.Context, id int64) (*model.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.answers {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memAnswerRepo) FindByProblemNumber(_ context.Context, problemNumber string) (*model.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.answers {
		if a.ProblemNumber == problemNumber {
			found := a
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memAnswerRepo) ListByProblemNumbers(_ context.Context, problemNumbers []string) ([]model.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := make(map[string]bool, len(problemNumbers))
	for _, pn := range problemNumbers {
		wanted[pn] = true
	}
	answers := []model.Answer{}
	for _, a := range m.answers {
		if wanted[a.ProblemNumber] {
			answers = append(answers, a)
		}
	}
	return answers, nil
}

type memSubmissionRepo struct {
	mu          sync.Mutex
	submissions []model.CodeSubmission
	failCreate  bool
}

func (m *memSubmissionRepo) Create(_ context.Context, sub *model.CodeSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate {
		return errors.New("insert failed")
	}
	if sub.Feedback != nil && len(*sub.Feedback) > model.MaxFeedbackLength {
		return errors.New("value too long for type character varying(2000)")
	}
	sub.ID = int64(len(m.submissions) + 1)
	sub.SubmittedAt = time.Now()
	m.submissions = append(m.submissions, *sub)
	return nil
}

func (m *memSubmissionRepo) FindByID(_ context.Context, id int64) (*model.CodeSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.submissions {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memSubmissionRepo) ListByUserID(_ context.Context, userID int64) ([]model.CodeSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	subs := []model.CodeSubmission{}
	for _, s := range m.submissions {
		if s.UserID == userID {
			subs = append(subs, s)
		}
	}
	return subs, nil
}
