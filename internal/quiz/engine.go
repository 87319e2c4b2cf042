// Package quiz scores a fixed multiple-choice quiz against its answer key.
// Scoring is a pure function of the bank and the submission; persisting the
// outcome is the caller's job.
package quiz

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrMalformedSubmission is returned when a submitted answer is missing,
// not an integer, or out of range for its question's choices.
var ErrMalformedSubmission = errors.New("malformed quiz submission")

// Question is one entry of the question bank.
type Question struct {
	ID          int      `json:"id"`
	Stem        string   `json:"stem"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
	Explain     string   `json:"explain"`
}

// Bank is the ordered question bank. Order is significant: scoring, review
// and the details summary all follow bank order.
type Bank []Question

// Submission maps question id to the chosen choice index.
type Submission map[int]int

// Review shows one question's outcome to the user, produced for every
// question regardless of correctness.
type Review struct {
	Stem    string
	Chosen  string
	Correct string
	Explain string
}

// ParseSubmission extracts one answer per bank question from form values,
// reading the field q{id} for each question. Any missing, non-integer or
// out-of-range value fails the whole submission with ErrMalformedSubmission.
func ParseSubmission(bank Bank, form url.Values) (Submission, error) {
	sub := make(Submission, len(bank))
	for _, q := range bank {
		field := "q" + strconv.Itoa(q.ID)
		raw := form.Get(field)
		if raw == "" {
			return nil, fmt.Errorf("%w: missing answer for %s", ErrMalformedSubmission, field)
		}
		chosen, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not an integer", ErrMalformedSubmission, field)
		}
		if chosen < 0 || chosen >= len(q.Choices) {
			return nil, fmt.Errorf("%w: %s out of range", ErrMalformedSubmission, field)
		}
		sub[q.ID] = chosen
	}
	return sub, nil
}

// PointsPerQuestion returns the value of one correct answer. With the stock
// 5-question bank this is 20; integer division leaves any remainder
// unawarded, so a 7-question bank tops out at 98.
func PointsPerQuestion(bank Bank) int {
	if len(bank) == 0 {
		return 0
	}
	return 100 / len(bank)
}

// Score evaluates a parsed submission against the bank's answer key. It
// returns the total score and one review entry per question in bank order.
// The submission must have passed ParseSubmission; unknown ids score zero.
func Score(bank Bank, sub Submission) (int, []Review) {
	points := PointsPerQuestion(bank)
	total := 0
	review := make([]Review, 0, len(bank))
	for _, q := range bank {
		chosen := sub[q.ID]
		if chosen == q.AnswerIndex {
			total += points
		}
		review = append(review, Review{
			Stem:    q.Stem,
			Chosen:  q.Choices[chosen],
			Correct: q.Choices[q.AnswerIndex],
			Explain: q.Explain,
		})
	}
	return total, review
}

// EncodeDetails renders the durable per-question audit summary, one token
// per question in bank order: Q{n}:D for a correct answer, Q{n}:Y for a
// wrong one, joined by " | ".
func EncodeDetails(bank Bank, sub Submission) string {
	tokens := make([]string, 0, len(bank))
	for i, q := range bank {
		marker := "Y"
		if sub[q.ID] == q.AnswerIndex {
			marker = "D"
		}
		tokens = append(tokens, fmt.Sprintf("Q%d:%s", i+1, marker))
	}
	return strings.Join(tokens, " | ")
}
