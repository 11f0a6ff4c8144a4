package model

import "time"

// Answer is the generated reference solution for a problem. ProblemNumber is unique.
type Answer struct {
	ID            int64     `json:"id"`
	ProblemNumber string    `json:"problem_number"` // e.g. "001"
	AnswerCode    string    `json:"answer_code"`
	CreatedAt     time.Time `json:"created_at"`
}
