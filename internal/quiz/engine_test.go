package quiz

import (
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBank() Bank {
	return Bank{
		{ID: 1, Stem: "Soru 1", Choices: []string{"A", "B", "C"}, AnswerIndex: 0, Explain: "açıklama 1"},
		{ID: 2, Stem: "Soru 2", Choices: []string{"A", "B", "C"}, AnswerIndex: 1, Explain: "açıklama 2"},
		{ID: 3, Stem: "Soru 3", Choices: []string{"A", "B", "C"}, AnswerIndex: 2, Explain: "açıklama 3"},
		{ID: 4, Stem: "Soru 4", Choices: []string{"A", "B", "C"}, AnswerIndex: 0, Explain: "açıklama 4"},
		{ID: 5, Stem: "Soru 5", Choices: []string{"A", "B", "C"}, AnswerIndex: 1, Explain: "açıklama 5"},
	}
}

func allCorrect(bank Bank) Submission {
	sub := make(Submission, len(bank))
	for _, q := range bank {
		sub[q.ID] = q.AnswerIndex
	}
	return sub
}

func allWrong(bank Bank) Submission {
	sub := make(Submission, len(bank))
	for _, q := range bank {
		sub[q.ID] = (q.AnswerIndex + 1) % len(q.Choices)
	}
	return sub
}

func TestScore_AllCorrect(t *testing.T) {
	bank := testBank()
	score, review := Score(bank, allCorrect(bank))

	assert.Equal(t, 100, score)
	require.Len(t, review, len(bank))
	for i, r := range review {
		assert.Equal(t, bank[i].Stem, r.Stem)
		assert.Equal(t, r.Correct, r.Chosen)
		assert.Equal(t, bank[i].Explain, r.Explain)
	}
}

func TestScore_AllWrong(t *testing.T) {
	bank := testBank()
	score, review := Score(bank, allWrong(bank))

	assert.Equal(t, 0, score)
	require.Len(t, review, len(bank))
	for _, r := range review {
		assert.NotEqual(t, r.Correct, r.Chosen)
	}
}

func TestScore_Mixed(t *testing.T) {
	bank := testBank()
	sub := allWrong(bank)
	sub[1] = bank[0].AnswerIndex
	sub[3] = bank[2].AnswerIndex

	score, _ := Score(bank, sub)
	assert.Equal(t, 40, score)
}

func TestScore_Deterministic(t *testing.T) {
	bank := testBank()
	sub := allWrong(bank)
	sub[2] = bank[1].AnswerIndex

	firstScore, firstReview := Score(bank, sub)
	for i := 0; i < 10; i++ {
		score, review := Score(bank, sub)
		assert.Equal(t, firstScore, score)
		assert.Equal(t, firstReview, review)
	}
}

func TestPointsPerQuestion(t *testing.T) {
	assert.Equal(t, 20, PointsPerQuestion(testBank()))
	assert.Equal(t, 0, PointsPerQuestion(Bank{}))

	// Integer division: a 7-question bank is worth 14 a question.
	seven := make(Bank, 7)
	assert.Equal(t, 14, PointsPerQuestion(seven))
}

func TestEncodeDetails(t *testing.T) {
	bank := testBank()

	sub := allCorrect(bank)
	sub[2] = (bank[1].AnswerIndex + 1) % len(bank[1].Choices)
	sub[5] = (bank[4].AnswerIndex + 1) % len(bank[4].Choices)

	details := EncodeDetails(bank, sub)
	assert.Equal(t, "Q1:D | Q2:Y | Q3:D | Q4:D | Q5:Y", details)

	tokens := strings.Split(details, " | ")
	assert.Len(t, tokens, len(bank))
}

func TestParseSubmission_Valid(t *testing.T) {
	bank := testBank()
	form := url.Values{}
	for _, q := range bank {
		form.Set("q"+strconv.Itoa(q.ID), strconv.Itoa(q.AnswerIndex))
	}

	sub, err := ParseSubmission(bank, form)
	require.NoError(t, err)
	require.Len(t, sub, len(bank))
	for _, q := range bank {
		assert.Equal(t, q.AnswerIndex, sub[q.ID])
	}
}

func TestParseSubmission_Malformed(t *testing.T) {
	bank := testBank()

	valid := url.Values{}
	for _, q := range bank {
		valid.Set("q"+strconv.Itoa(q.ID), "0")
	}

	tests := []struct {
		name   string
		mutate func(url.Values)
	}{
		{"missing answer", func(f url.Values) { f.Del("q3") }},
		{"non-integer answer", func(f url.Values) { f.Set("q2", "abc") }},
		{"negative index", func(f url.Values) { f.Set("q1", "-1") }},
		{"index out of range", func(f url.Values) { f.Set("q4", "3") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			for k, v := range valid {
				form[k] = append([]string(nil), v...)
			}
			tt.mutate(form)

			sub, err := ParseSubmission(bank, form)
			assert.ErrorIs(t, err, ErrMalformedSubmission)
			assert.Nil(t, sub)
		})
	}
}

