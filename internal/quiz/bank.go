package quiz

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// LoadBank reads a pre-authored module-test question bank. Each non-empty
// line encodes one question as delimiter-separated fields:
//
//	question text_option1_option2_option3_option4_correctIndex
//
// Pipe-delimited banks are accepted too (the delimiter is detected per line).
// Malformed lines are skipped with a log entry, in the same spirit as Parse:
// one bad author line must not take the whole test down. A bank that yields
// zero questions is an error.
func LoadBank(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	defer f.Close()

	var questions []Question
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		q, ok := parseBankLine(line)
		if !ok {
			log.Printf("quiz: %s:%d: skipping malformed bank line", path, lineNo)
			continue
		}
		questions = append(questions, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("question bank %s: %w", path, ErrNoQuestions)
	}
	return questions, nil
}

func parseBankLine(line string) (Question, bool) {
	delim := "_"
	if strings.Contains(line, "|") {
		delim = "|"
	}

	parts := strings.Split(line, delim)
	// Text, four options, correct index.
	if len(parts) != OptionCount+2 {
		return Question{}, false
	}

	correct, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return Question{}, false
	}

	options := make([]string, 0, OptionCount)
	for _, p := range parts[1 : len(parts)-1] {
		options = append(options, strings.TrimSpace(p))
	}

	q := Question{
		Text:    strings.TrimSpace(parts[0]),
		Options: options,
		Correct: correct,
	}
	if !q.Valid() {
		return Question{}, false
	}
	return q, true
}
