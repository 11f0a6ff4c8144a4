package model

import "time"

const MaxFeedbackLength = 2000

// CodeSubmission is a user's attempt at a problem. IsCorrect is reported by the
// client; nothing is graded server side.
type CodeSubmission struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Code          string    `json:"code"`
	ProblemNumber string    `json:"problem_number"`
	IsCorrect     bool      `json:"is_correct"`
	Feedback      *string   `json:"feedback"`
	SubmittedAt   time.Time `json:"submitted_at"`

	// Answer is attached at read time by problem number; it is never written.
	Answer *Answer `json:"answer,omitempty"`
}
