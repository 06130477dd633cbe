package questions

import (
	"strings"
)

const (
	maxQuestionLength = 500
	maxOptionLength   = 255
)

// ParsedQuestion is one complete block from an uploaded question file.
type ParsedQuestion struct {
	QuestionText  string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectAnswer string
}

// ParseQuestionFile reads the tag-delimited question format teachers upload:
//
//	Q: What is the capital of France?
//	A) London
//	B) Paris
//	C) Berlin
//	D) Madrid
//	ANSWER: B
//
// "Question:" works in place of "Q:", option lines accept "A." as well as
// "A)", and the answer letter must be A-D. Blocks missing any field or
// exceeding the length caps are skipped, not rejected; the import keeps
// whatever parsed cleanly.
func ParseQuestionFile(content string) []ParsedQuestion {
	lines := strings.Split(content, "\n")
	parsed := []ParsedQuestion{}

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if line == "" {
			i++
			continue
		}

		if !strings.HasPrefix(line, "Q:") && !strings.HasPrefix(line, "Question:") {
			i++
			continue
		}

		q := ParsedQuestion{
			QuestionText: strings.TrimSpace(line[strings.Index(line, ":")+1:]),
		}

		// A question block is at most five lines after the question text:
		// four options plus the answer, in any order.
		for j := 0; j < 5; j++ {
			i++
			if i >= len(lines) {
				break
			}
			optionLine := strings.TrimSpace(lines[i])

			switch {
			case strings.HasPrefix(optionLine, "A)") || strings.HasPrefix(optionLine, "A."):
				q.OptionA = strings.TrimSpace(optionLine[2:])
			case strings.HasPrefix(optionLine, "B)") || strings.HasPrefix(optionLine, "B."):
				q.OptionB = strings.TrimSpace(optionLine[2:])
			case strings.HasPrefix(optionLine, "C)") || strings.HasPrefix(optionLine, "C."):
				q.OptionC = strings.TrimSpace(optionLine[2:])
			case strings.HasPrefix(optionLine, "D)") || strings.HasPrefix(optionLine, "D."):
				q.OptionD = strings.TrimSpace(optionLine[2:])
			case strings.HasPrefix(optionLine, "ANSWER:") || strings.HasPrefix(optionLine, "Answer:"):
				answer := strings.ToUpper(strings.TrimSpace(optionLine[strings.Index(optionLine, ":")+1:]))
				if answer == "A" || answer == "B" || answer == "C" || answer == "D" {
					q.CorrectAnswer = answer
				}
			}
		}

		if isComplete(q) {
			parsed = append(parsed, q)
		}
		i++
	}

	return parsed
}

func isComplete(q ParsedQuestion) bool {
	if q.QuestionText == "" || q.OptionA == "" || q.OptionB == "" ||
		q.OptionC == "" || q.OptionD == "" || q.CorrectAnswer == "" {
		return false
	}
	if len(q.QuestionText) > maxQuestionLength {
		return false
	}
	for _, option := range []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD} {
		if len(option) > maxOptionLength {
			return false
		}
	}
	return true
}
