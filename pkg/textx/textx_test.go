package textx

import "testing"

func TestSanitizeText(t *testing.T) {
	in := "he\x00llo\nwo\x7frld\t!"
	got := SanitizeText(in)
	if got != "hello\nworld\t!" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestWords(t *testing.T) {
	got := Words("Built CI/CD pipelines, twice.")
	want := []string{"built", "ci", "cd", "pipelines", "twice"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestSentences(t *testing.T) {
	s := "Short. This one is long enough to count! tiny? Another qualifying sentence here."
	got := Sentences(s, 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 qualifying sentences, got %d: %v", len(got), got)
	}
	if SentenceCount(s) != 5 {
		t.Fatalf("expected 5 raw segments, got %d", SentenceCount(s))
	}
}
