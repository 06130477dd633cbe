package questions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionFile_SingleBlock(t *testing.T) {
	content := `Q: What is the capital of France?
A) London
B) Paris
C) Berlin
D) Madrid
ANSWER: B`

	parsed := ParseQuestionFile(content)
	require.Len(t, parsed, 1)

	q := parsed[0]
	assert.Equal(t, "What is the capital of France?", q.QuestionText)
	assert.Equal(t, "London", q.OptionA)
	assert.Equal(t, "Paris", q.OptionB)
	assert.Equal(t, "Berlin", q.OptionC)
	assert.Equal(t, "Madrid", q.OptionD)
	assert.Equal(t, "B", q.CorrectAnswer)
}

func TestParseQuestionFile_MultipleBlocksWithBlankLines(t *testing.T) {
	content := `Q: First question?
A) one
B) two
C) three
D) four
ANSWER: A

Q: Second question?
A) red
B) green
C) blue
D) yellow
ANSWER: D`

	parsed := ParseQuestionFile(content)
	require.Len(t, parsed, 2)
	assert.Equal(t, "First question?", parsed[0].QuestionText)
	assert.Equal(t, "D", parsed[1].CorrectAnswer)
}

func TestParseQuestionFile_AlternateTags(t *testing.T) {
	content := `Question: Dotted options work too?
A. yes
B. no
C. maybe
D. unsure
Answer: a`

	parsed := ParseQuestionFile(content)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Dotted options work too?", parsed[0].QuestionText)
	assert.Equal(t, "yes", parsed[0].OptionA)
	// Lowercase answers are normalized
	assert.Equal(t, "A", parsed[0].CorrectAnswer)
}

func TestParseQuestionFile_IncompleteBlockSkipped(t *testing.T) {
	content := `Q: Missing option D
A) one
B) two
C) three
ANSWER: A

Q: Complete block
A) one
B) two
C) three
D) four
ANSWER: C`

	parsed := ParseQuestionFile(content)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Complete block", parsed[0].QuestionText)
}

func TestParseQuestionFile_InvalidAnswerLetterSkipped(t *testing.T) {
	content := `Q: Bad answer letter
A) one
B) two
C) three
D) four
ANSWER: E`

	parsed := ParseQuestionFile(content)
	assert.Empty(t, parsed)
}

func TestParseQuestionFile_OverlongFieldsSkipped(t *testing.T) {
	content := "Q: " + strings.Repeat("x", 501) + `
A) one
B) two
C) three
D) four
ANSWER: A`

	parsed := ParseQuestionFile(content)
	assert.Empty(t, parsed)
}

func TestParseQuestionFile_NoiseIgnored(t *testing.T) {
	content := `These lines are preamble a teacher left in the file.

Q: Real question?
A) one
B) two
C) three
D) four
ANSWER: B

Trailing notes here.`

	parsed := ParseQuestionFile(content)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Real question?", parsed[0].QuestionText)
}

func TestParseQuestionFile_WindowsLineEndings(t *testing.T) {
	content := "Q: CRLF file?\r\nA) one\r\nB) two\r\nC) three\r\nD) four\r\nANSWER: C\r\n"

	parsed := ParseQuestionFile(content)
	require.Len(t, parsed, 1)
	assert.Equal(t, "C", parsed[0].CorrectAnswer)
	assert.Equal(t, "one", parsed[0].OptionA)
}
