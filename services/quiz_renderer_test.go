package services

import (
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/generatorku/quiz-web/models"
)

type noShuffle struct{}

func (noShuffle) Shuffle(int, func(i, j int)) {}

type reverseShuffle struct{}

func (reverseShuffle) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

var idSafe = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

func TestOptionIDRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Jakarta",
		"a b\"c'<d>&e",
		"x = y / 2 + 1?",
		"Ibu kota: 東京",
		"emoji 🎉 opsi",
		strings.Repeat("=", 7),
		"line\nbreak\ttab",
	}
	for _, in := range inputs {
		id := EncodeOptionID(in)
		if !idSafe.MatchString(id) {
			t.Fatalf("EncodeOptionID(%q) = %q contains unsafe characters", in, id)
		}
		out, err := DecodeOptionID(id)
		if err != nil {
			t.Fatalf("DecodeOptionID(%q): %v", id, err)
		}
		if out != in {
			t.Fatalf("round trip = %q, want %q", out, in)
		}
	}
}

func TestOptionIDRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		b := make([]byte, r.Intn(40))
		r.Read(b)
		in := string(b)
		out, err := DecodeOptionID(EncodeOptionID(in))
		if err != nil || out != in {
			t.Fatalf("round trip of %q = (%q, %v)", in, out, err)
		}
	}
}

func TestBuildQuizFormStructure(t *testing.T) {
	items := []models.QuizItem{
		{Question: "Ibu kota Indonesia?", Options: []string{"Jakarta", "Bandung", "Surabaya", "Medan"}, CorrectAnswer: "Jakarta"},
		{Question: "2 + 2 = ?", Options: []string{"3", "4", "5", "22"}, CorrectAnswer: "4"},
	}

	form := BuildQuizForm(items, "abc-123", noShuffle{})

	if form.ID != QuizFormID || form.Action != "/submit_quiz" || form.Method != "POST" {
		t.Fatalf("unexpected form header: %+v", form)
	}
	if len(form.Hidden) != 1 || form.Hidden[0].Name != "quiz_history_id" || form.Hidden[0].Value != "abc-123" {
		t.Fatalf("hidden fields = %+v", form.Hidden)
	}
	if len(form.Questions) != len(items) {
		t.Fatalf("questions = %d, want %d", len(form.Questions), len(items))
	}
	for i, q := range form.Questions {
		if q.Number != i+1 || q.Text != items[i].Question {
			t.Fatalf("question %d header = %+v", i, q)
		}
		wantName := QuestionFieldName(i)
		for j, opt := range q.Options {
			if opt.Name != wantName || !opt.Required {
				t.Fatalf("question %d option %d = %+v", i, j, opt)
			}
			if opt.Value != items[i].Options[j] || opt.Label != opt.Value {
				t.Fatalf("option value = %q, want %q", opt.Value, items[i].Options[j])
			}
			if opt.ID != "q"+string(rune('0'+i))+"_option_"+EncodeOptionID(opt.Value) {
				t.Fatalf("option id = %q", opt.ID)
			}
		}
	}
	if form.SubmitLabel != "Selesai Kuis" {
		t.Fatalf("submit label = %q", form.SubmitLabel)
	}
}

func TestBuildQuizFormIDsUniqueWithinQuestion(t *testing.T) {
	items := []models.QuizItem{{
		Question: "Pilih",
		Options:  []string{"a/b", "a?b", "a+b", "a b"},
	}}
	form := BuildQuizForm(items, "1", nil)
	seen := map[string]bool{}
	for _, opt := range form.Questions[0].Options {
		if seen[opt.ID] {
			t.Fatalf("duplicate option id %q", opt.ID)
		}
		seen[opt.ID] = true
	}
}

func TestShuffleOptionsUsesShuffler(t *testing.T) {
	item := models.QuizItem{Options: []string{"A", "B", "C", "D", "E"}}
	got := ShuffleOptions(item, reverseShuffle{})
	if strings.Join(got, "") != "EDCBA" {
		t.Fatalf("shuffled = %v", got)
	}
	if strings.Join(item.Options, "") != "ABCDE" {
		t.Fatalf("input options mutated: %v", item.Options)
	}
}

func TestShuffleOptionsFallbackBelowFour(t *testing.T) {
	item := models.QuizItem{Options: []string{"x", "y"}, CorrectAnswer: "benar"}
	got := ShuffleOptions(item, noShuffle{})
	want := []string{"benar", "Pilihan B", "Pilihan C", "Pilihan D"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("fallback = %v, want %v", got, want)
	}

	nilOpts := ShuffleOptions(models.QuizItem{CorrectAnswer: "benar"}, nil)
	sort.Strings(nilOpts)
	sort.Strings(want)
	if strings.Join(nilOpts, "|") != strings.Join(want, "|") {
		t.Fatalf("fallback for nil options = %v", nilOpts)
	}
}

func TestShuffleOptionsKeepsMultiset(t *testing.T) {
	item := models.QuizItem{Options: []string{"1", "2", "3", "4", "5", "6"}}
	for i := 0; i < 50; i++ {
		got := ShuffleOptions(item, DefaultShuffler())
		sorted := append([]string(nil), got...)
		sort.Strings(sorted)
		if strings.Join(sorted, "") != "123456" {
			t.Fatalf("shuffle lost options: %v", got)
		}
	}
}
