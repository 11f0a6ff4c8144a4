package service

import (
	"context"
	"errors"

	"code_tutor/internal/domain/model"
)

type fakeUserRepo struct {
	createFn        func(user *model.User) error
	existsByEmailFn func(email string) (bool, error)
	findByEmailFn   func(email string) (*model.User, error)
	findByIDFn      func(id int64) (*model.User, error)
	lastCreated     *model.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.lastCreated = user
	if f.createFn == nil {
		return errors.New("Create not implemented")
	}
	return f.createFn(user)
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if f.existsByEmailFn == nil {
		return false, errors.New("ExistsByEmail not implemented")
	}
	return f.existsByEmailFn(email)
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if f.findByEmailFn == nil {
		return nil, errors.New("FindByEmail not implemented")
	}
	return f.findByEmailFn(email)
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	if f.findByIDFn == nil {
		return nil, errors.New("FindByID not implemented")
	}
	return f.findByIDFn(id)
}

type fakeAnswerRepo struct {
	saveFn                 func(answer *model.Answer) error
	findByIDFn             func(id int64) (*model.Answer, error)
	findByProblemNumberFn  func(problemNumber string) (*model.Answer, error)
	listByProblemNumbersFn func(problemNumbers []string) ([]model.Answer, error)
	lookups                int
}

func (f *fakeAnswerRepo) Save(_ context.Context, answer *model.Answer) error {
	if f.saveFn == nil {
		return errors.New("Save not implemented")
	}
	return f.saveFn(answer)
}

func (f *fakeAnswerRepo) FindByID(_ context.Context, id int64) (*model.Answer, error) {
	if f.findByIDFn == nil {
		return nil, errors.New("FindByID not implemented")
	}
	return f.findByIDFn(id)
}

func (f *fakeAnswerRepo) FindByProblemNumber(_ context.Context, problemNumber string) (*model.Answer, error) {
	f.lookups++
	if f.findByProblemNumberFn == nil {
		return nil, errors.New("FindByProblemNumber not implemented")
	}
	return f.findByProblemNumberFn(problemNumber)
}

func (f *fakeAnswerRepo) ListByProblemNumbers(_ context.Context, problemNumbers []string) ([]model.Answer, error) {
	if f.listByProblemNumbersFn == nil {
		return nil, errors.New("ListByProblemNumbers not implemented")
	}
	return f.listByProblemNumbersFn(problemNumbers)
}

type fakeSubmissionRepo struct {
	createFn       func(sub *model.CodeSubmission) error
	findByIDFn     func(id int64) (*model.CodeSubmission, error)
	listByUserIDFn func(userID int64) ([]model.CodeSubmission, error)
}

func (f *fakeSubmissionRepo) Create(_ context.Context, sub *model.CodeSubmission) error {
	if f.createFn == nil {
		return errors.New("Create not implemented")
	}
	return f.createFn(sub)
}

func (f *fakeSubmissionRepo) FindByID(_ context.Context, id int64) (*model.CodeSubmission, error) {
	if f.findByIDFn == nil {
		return nil, errors.New("FindByID not implemented")
	}
	return f.findByIDFn(id)
}

func (f *fakeSubmissionRepo) ListByUserID(_ context.Context, userID int64) ([]model.CodeSubmission, error) {
	if f.listByUserIDFn == nil {
		return nil, errors.New("ListByUserID not implemented")
	}
	return f.listByUserIDFn(userID)
}

type fakeAnswerCache struct {
	entries map[string]*model.Answer
	deleted []string
	getErr  error
}

func newFakeAnswerCache() *fakeAnswerCache {
	return &fakeAnswerCache{entries: map[string]*model.Answer{}}
}

func (f *fakeAnswerCache) Get(_ context.Context, problemNumber string) (*model.Answer, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.entries[problemNumber], nil
}

func (f *fakeAnswerCache) Set(_ context.Context, answer *model.Answer) error {
	f.entries[answer.ProblemNumber] = answer
	return nil
}

func (f *fakeAnswerCache) Delete(_ context.Context, problemNumbers ...string) error {
	for _, pn := range problemNumbers {
		delete(f.entries, pn)
		f.deleted = append(f.deleted, pn)
	}
	return nil
}

type fakeAuthenticator struct {
	authenticateFn func(creds Credentials) (*Principal, error)
	lastCreds      Credentials
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, creds Credentials) (*Principal, error) {
	f.lastCreds = creds
	if f.authenticateFn == nil {
		return nil, errors.New("Authenticate not implemented")
	}
	return f.authenticateFn(creds)
}
