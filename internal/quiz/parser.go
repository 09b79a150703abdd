package quiz

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Markers of the generated-text grammar. The model is prompted to separate
// theory from questions with a bare "---" line and to open every question
// block with ";;Вопрос" and close it with "Ответ N". Real model output drifts
// from the template, so parsing below is deliberately best-effort.
const (
	theoryDelimiter  = "---"
	questionsMarker  = "Вопросы по теме"
	questionBoundary = ";;"
)

// minQuestionLineLen is the heuristic cutoff separating a question statement
// from a short leading marker line ("Вопрос", a number, an empty remnant).
const minQuestionLineLen = 10

// optionWindow is how many trailing lines of a question chunk are scanned
// for answer options.
const optionWindow = 6

// ErrNoQuestions is returned when the generated text yields zero valid
// questions.
var ErrNoQuestions = errors.New("no valid questions in generated text")

// Parse splits freshly generated study text into a theory section and the
// questions that follow it.
//
// Malformed question chunks are skipped, never fatal: the generator gives no
// format guarantees, so a single broken chunk must not cost the user the
// whole quiz. Parse fails only when not a single valid question survives.
func Parse(raw string) (theory string, questions []Question, err error) {
	theory, block := splitTheory(raw)

	// Emphasis markup confuses the line heuristics below.
	block = strings.ReplaceAll(block, "*", "")

	for _, chunk := range strings.Split(block, questionBoundary) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		q, ok := parseChunk(chunk)
		if !ok {
			log.Printf("quiz: skipping malformed question chunk (%d bytes)", len(chunk))
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return theory, nil, ErrNoQuestions
	}
	return theory, questions, nil
}

// splitTheory separates the theory section from the question block. The
// explicit delimiter wins; the marker phrase is the fallback; with neither,
// the whole text is theory.
func splitTheory(raw string) (theory, block string) {
	if before, after, found := strings.Cut(raw, theoryDelimiter); found {
		return strings.TrimSpace(before), after
	}
	if before, after, found := strings.Cut(raw, questionsMarker); found {
		return strings.TrimSpace(before), after
	}
	return strings.TrimSpace(raw), ""
}

// parseChunk extracts one Question from a chunk of lines. Layout expected:
// an optional short marker line, the question text, four numbered options,
// and a final answer-index line.
func parseChunk(chunk string) (Question, bool) {
	var lines []string
	for _, line := range strings.Split(chunk, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) < 2 {
		return Question{}, false
	}

	text := lines[0]
	if utf8.RuneCountInString(text) <= minQuestionLineLen {
		text = lines[1]
	}

	// Options live in a fixed trailing window just above the answer line.
	start := len(lines) - 1 - optionWindow
	if start < 0 {
		start = 0
	}
	var options []string
	for _, line := range lines[start : len(lines)-1] {
		if opt, ok := stripOptionPrefix(line); ok {
			options = append(options, opt)
			if len(options) == OptionCount {
				break
			}
		}
	}

	correct, ok := parseAnswerIndex(lines[len(lines)-1])
	if !ok {
		return Question{}, false
	}

	q := Question{Text: text, Options: options, Correct: correct}
	if !q.Valid() {
		return Question{}, false
	}
	return q, true
}

// stripOptionPrefix recognizes "N. text" / "N) text" option lines and
// returns the bare option text.
func stripOptionPrefix(line string) (string, bool) {
	r := []rune(line)
	if len(r) < 2 || !unicode.IsDigit(r[0]) {
		return "", false
	}
	if r[1] != '.' && r[1] != ')' {
		return "", false
	}
	return strings.TrimSpace(string(r[2:])), true
}

// parseAnswerIndex pulls the correct-option number out of the final line of
// a chunk ("Ответ 2", "Ответ: 2", bare "2").
func parseAnswerIndex(line string) (int, bool) {
	var digits strings.Builder
	for _, r := range line {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}
