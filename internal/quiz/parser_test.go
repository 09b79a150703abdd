package quiz

import (
	"strings"
	"testing"
)

const sampleGenerated = "Theory para.\n---\n;;Вопрос\nWhat is 2+2?\n1. 3\n2. 4\n3. 5\n4. 6\nОтвет 2"

func TestParseWellFormed(t *testing.T) {
	theory, questions, err := Parse(sampleGenerated)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if theory != "Theory para." {
		t.Errorf("theory = %q, want %q", theory, "Theory para.")
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}

	q := questions[0]
	if q.Text != "What is 2+2?" {
		t.Errorf("text = %q, want %q", q.Text, "What is 2+2?")
	}
	wantOptions := []string{"3", "4", "5", "6"}
	if len(q.Options) != len(wantOptions) {
		t.Fatalf("got %d options, want %d", len(q.Options), len(wantOptions))
	}
	for i, want := range wantOptions {
		if q.Options[i] != want {
			t.Errorf("option %d = %q, want %q", i, q.Options[i], want)
		}
	}
	if q.Correct != 2 {
		t.Errorf("correct = %d, want 2", q.Correct)
	}
}

func TestParseLongFirstLineIsQuestionText(t *testing.T) {
	raw := "Теория.\n---\n;;Чему равна производная функции x^2?\n1. 2x\n2. x\n3. x^2\n4. 2\nОтвет 1"
	_, questions, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if questions[0].Text != "Чему равна производная функции x^2?" {
		t.Errorf("text = %q", questions[0].Text)
	}
}

func TestParseSkipsMalformedChunksKeepsOrder(t *testing.T) {
	raw := strings.Join([]string{
		"Theory.",
		"---",
		";;Вопрос",
		"First valid question?",
		"1. a", "2. b", "3. c", "4. d",
		"Ответ 1",
		";;Вопрос",
		"Broken: only two options",
		"1. a", "2. b",
		"Ответ 2",
		";;Вопрос",
		"Bad answer index question?",
		"1. a", "2. b", "3. c", "4. d",
		"Ответ 9",
		";;Вопрос",
		"Second valid question?",
		"1. w", "2. x", "3. y", "4. z",
		"Ответ 4",
	}, "\n")

	_, questions, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Text != "First valid question?" {
		t.Errorf("first = %q", questions[0].Text)
	}
	if questions[1].Text != "Second valid question?" {
		t.Errorf("second = %q", questions[1].Text)
	}
	if questions[1].Correct != 4 {
		t.Errorf("second correct = %d, want 4", questions[1].Correct)
	}
}

func TestParseMarkerPhraseFallback(t *testing.T) {
	raw := "Немного теории.\nВопросы по теме\n;;Вопрос\nLong enough question text?\n1. a\n2. b\n3. c\n4. d\nОтвет 3"
	theory, questions, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if theory != "Немного теории." {
		t.Errorf("theory = %q", theory)
	}
	if len(questions) != 1 || questions[0].Correct != 3 {
		t.Errorf("questions = %+v", questions)
	}
}

func TestParseStripsEmphasisMarkup(t *testing.T) {
	raw := "T.\n---\n;;Вопрос\n**A question with bold text?**\n1. a\n2. b\n3. c\n4. d\n**Ответ 2**"
	_, questions, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if questions[0].Text != "A question with bold text?" {
		t.Errorf("text = %q", questions[0].Text)
	}
	if questions[0].Correct != 2 {
		t.Errorf("correct = %d, want 2", questions[0].Correct)
	}
}

func TestParseZeroValidQuestionsFails(t *testing.T) {
	cases := map[string]string{
		"no separator":    "Just a plain theory text with no questions at all.",
		"empty block":     "Theory.\n---\n",
		"only malformed":  "Theory.\n---\n;;Вопрос\nShort\nОтвет 1",
		"index range":     "Theory.\n---\n;;Вопрос\nA sufficiently long question?\n1. a\n2. b\n3. c\n4. d\nОтвет 5",
		"no answer index": "Theory.\n---\n;;Вопрос\nA sufficiently long question?\n1. a\n2. b\n3. c\n4. d\nОтвет не дан",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, questions, err := Parse(raw)
			if err == nil {
				t.Fatalf("expected error, got %d questions", len(questions))
			}
		})
	}
}

func TestParseNoSeparatorAllTheory(t *testing.T) {
	raw := "Only theory here."
	theory, _, err := Parse(raw)
	if err == nil {
		t.Fatal("expected ErrNoQuestions")
	}
	if theory != "Only theory here." {
		t.Errorf("theory = %q", theory)
	}
}

func TestStripOptionPrefix(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"1. Москва", "Москва", true},
		{"2) Париж", "Париж", true},
		{"4.42", "42", true},
		{"Вопрос без номера", "", false},
		{"a. не цифра", "", false},
		{"7", "", false},
	}
	for _, tt := range tests {
		got, ok := stripOptionPrefix(tt.line)
		if ok != tt.ok || got != tt.want {
			t.Errorf("stripOptionPrefix(%q) = (%q, %v), want (%q, %v)", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}
