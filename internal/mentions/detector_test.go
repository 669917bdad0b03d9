package mentions

import (
	"strings"
	"testing"

	"cinescan/internal/catalog"
	"cinescan/internal/similarity"
)

func testIndex() *catalog.Index {
	records := []catalog.Record{
		{ID: "tt1375666", Title: "Inception", Year: 2010},
		{ID: "tt0133093", Title: "The Matrix", Year: 1999},
		{ID: "tt0120737", Title: "The Lord of the Rings: The Fellowship of the Ring", Aliases: []string{"Lord of the Rings"}},
		{ID: "br2", Title: "Брат 2"},
	}
	return catalog.BuildIndex(records, catalog.Options{})
}

func newTestDetector() *Detector {
	return New(testIndex(), similarity.WeightedRatio{}, Options{Threshold: 85})
}

func TestDetectExactTitle(t *testing.T) {
	d := newTestDetector()
	text := "I watched Inception last night"

	mentions := d.Detect(text)
	if len(mentions) != 1 {
		t.Fatalf("Detect() returned %d mentions, want 1: %+v", len(mentions), mentions)
	}
	m := mentions[0]
	if m.Text != "Inception" {
		t.Errorf("Text = %q, want Inception", m.Text)
	}
	if m.Film.ID != "tt1375666" {
		t.Errorf("Film.ID = %q, want tt1375666", m.Film.ID)
	}
	if m.Score < 85 {
		t.Errorf("Score = %v, want >= 85", m.Score)
	}
	if text[m.Start:m.End] != m.Text {
		t.Errorf("span mismatch: text[%d:%d] = %q, Text = %q", m.Start, m.End, text[m.Start:m.End], m.Text)
	}
}

func TestDetectSpanFidelity(t *testing.T) {
	d := newTestDetector()
	text := "Вчера пересматривал Inception, а потом — The Matrix (1999)!"

	for _, m := range d.Detect(text) {
		if m.Start >= m.End {
			t.Errorf("invalid span [%d,%d)", m.Start, m.End)
		}
		if text[m.Start:m.End] != m.Text {
			t.Errorf("span mismatch: text[%d:%d] = %q, Text = %q", m.Start, m.End, text[m.Start:m.End], m.Text)
		}
	}
}

func TestDetectMultiTokenAlias(t *testing.T) {
	d := newTestDetector()
	text := "A marathon of Lord of the Rings is planned"

	mentions := d.Detect(text)
	var full *Mention
	for i := range mentions {
		if mentions[i].Text == "Lord of the Rings" {
			full = &mentions[i]
		}
		if mentions[i].Text == "Lord" || mentions[i].Text == "Rings" {
			t.Errorf("sub-window %q accepted at score %v", mentions[i].Text, mentions[i].Score)
		}
	}
	if full == nil {
		t.Fatalf("full phrase not detected, mentions = %+v", mentions)
	}
	if full.Film.ID != "tt0120737" {
		t.Errorf("Film.ID = %q, want tt0120737", full.Film.ID)
	}
}

func TestDetectOrdering(t *testing.T) {
	d := newTestDetector()
	text := "The Matrix then Inception then The Matrix again"

	mentions := d.Detect(text)
	if len(mentions) < 2 {
		t.Fatalf("Detect() returned %d mentions, want several", len(mentions))
	}
	for i := 1; i < len(mentions); i++ {
		prev, curr := mentions[i-1], mentions[i]
		if prev.Start > curr.Start {
			t.Errorf("mentions not ascending by start: %d before %d", prev.Start, curr.Start)
		}
		if prev.Start == curr.Start && prev.Score < curr.Score {
			t.Errorf("tie at start %d not descending by score: %v < %v", curr.Start, prev.Score, curr.Score)
		}
	}
}

func TestDetectQuotedTitle(t *testing.T) {
	d := newTestDetector()
	text := `They showed "Inception" twice`

	mentions := d.Detect(text)
	if len(mentions) != 1 {
		t.Fatalf("Detect() returned %d mentions: %+v", len(mentions), mentions)
	}
	if mentions[0].Text != "Inception" {
		t.Errorf("Text = %q, want quotes excluded from span", mentions[0].Text)
	}
}

func TestDetectCyrillic(t *testing.T) {
	d := newTestDetector()
	text := "Пересматривал Брат 2 на выходных"

	mentions := d.Detect(text)
	found := false
	for _, m := range mentions {
		if m.Film.ID == "br2" && m.Text == "Брат 2" {
			found = true
		}
	}
	if !found {
		t.Errorf("Брат 2 not detected, mentions = %+v", mentions)
	}
}

func TestDetectDegenerateInputs(t *testing.T) {
	d := newTestDetector()
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   \t\n"},
		{"punctuation only", "?! ... --- !!"},
		{"no matches", "completely unrelated words here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); len(got) != 0 {
				t.Errorf("Detect(%q) = %+v, want empty", tt.text, got)
			}
		})
	}
}

func TestDetectEmptyIndex(t *testing.T) {
	idx := catalog.BuildIndex(nil, catalog.Options{})
	d := New(idx, similarity.WeightedRatio{}, Options{Threshold: 85})

	if got := d.Detect("I watched Inception last night"); len(got) != 0 {
		t.Errorf("Detect() with empty index = %+v, want empty", got)
	}
}

func TestDetectExactSpanDedup(t *testing.T) {
	// Two films normalizing to typo-close aliases: the same character span
	// must only appear once, carrying the higher score.
	records := []catalog.Record{
		{ID: "a", Title: "Heat"},
		{ID: "b", Title: "Heart"},
	}
	idx := catalog.BuildIndex(records, catalog.Options{})
	d := New(idx, similarity.WeightedRatio{}, Options{Threshold: 70})

	mentions := d.Detect("watching Heat tonight")
	seen := make(map[[2]int]int)
	for _, m := range mentions {
		seen[[2]int{m.Start, m.End}]++
	}
	for span, n := range seen {
		if n > 1 {
			t.Errorf("span %v appears %d times", span, n)
		}
	}
	for _, m := range mentions {
		if m.Text == "Heat" && m.Film.ID != "a" {
			t.Errorf("span Heat kept film %q, want exact match a", m.Film.ID)
		}
	}
}

func TestAnyMatch(t *testing.T) {
	d := newTestDetector()
	if !d.AnyMatch("everyone loves Inception") {
		t.Error("AnyMatch(known title) = false, want true")
	}
	if d.AnyMatch("no films mentioned at all") {
		t.Error("AnyMatch(no titles) = true, want false")
	}
}

func TestDetectLongText(t *testing.T) {
	d := newTestDetector()
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("filler words without any film titles here. ")
	}
	b.WriteString("Finally: The Matrix.")
	text := b.String()

	mentions := d.Detect(text)
	found := false
	for _, m := range mentions {
		if m.Film.ID == "tt0133093" && text[m.Start:m.End] == m.Text {
			found = true
		}
	}
	if !found {
		t.Errorf("title at end of long text not detected (%d mentions)", len(mentions))
	}
}
