package slides

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hyperjump/deckgen/internal/config"
)

func testDeckConfig() config.DeckConfig {
	return config.DeckConfig{
		MaxBullets:       6,
		SummarySentences: 4,
		ParserChunkSize:  1200,
		TitleLimit:       60,
	}
}

func TestParse_slideHeaders(t *testing.T) {
	p := NewParser(testDeckConfig())
	output := `Slide Title: Introduction
- First point
- Second point

Slide Title: Details
1. Numbered point
Bullet Points:
* Starred point`

	got := p.Parse(output)
	if len(got) != 2 {
		t.Fatalf("got %d slides, want 2", len(got))
	}
	if got[0].Title != "Introduction" {
		t.Errorf("title[0] = %q", got[0].Title)
	}
	if !reflect.DeepEqual(got[0].Bullets, []string{"First point", "Second point"}) {
		t.Errorf("bullets[0] = %v", got[0].Bullets)
	}
	if got[1].Title != "Details" {
		t.Errorf("title[1] = %q", got[1].Title)
	}
	// Meta header line is skipped, list markers are stripped.
	if !reflect.DeepEqual(got[1].Bullets, []string{"Numbered point", "Starred point"}) {
		t.Errorf("bullets[1] = %v", got[1].Bullets)
	}
}

func TestParse_titleVariant(t *testing.T) {
	p := NewParser(testDeckConfig())
	got := p.Parse("Title: Single Slide\n- only point")
	if len(got) != 1 || got[0].Title != "Single Slide" {
		t.Fatalf("got %+v", got)
	}
}

func TestParse_markdownHeadings(t *testing.T) {
	p := NewParser(testDeckConfig())
	output := "# Overview\n- alpha\n- beta\n\n## ignored subheading line has no bullets\n# Next Steps\n- gamma"
	got := p.Parse(output)
	if len(got) < 2 {
		t.Fatalf("got %d slides", len(got))
	}
	if got[0].Title != "Overview" {
		t.Errorf("title[0] = %q", got[0].Title)
	}
	if !reflect.DeepEqual(got[0].Bullets, []string{"alpha", "beta"}) {
		t.Errorf("bullets[0] = %v", got[0].Bullets)
	}
}

func TestParse_markdownBulletsAreDashOnly(t *testing.T) {
	p := NewParser(testDeckConfig())
	got := p.Parse("# Roadmap\n- ship it\n* emphasis line, not a bullet\n3. numbered prose")
	if len(got) != 1 {
		t.Fatalf("got %d slides", len(got))
	}
	if !reflect.DeepEqual(got[0].Bullets, []string{"ship it"}) {
		t.Errorf("bullets = %v, want dash line only", got[0].Bullets)
	}
}

func TestParse_chunkFallback(t *testing.T) {
	p := NewParser(testDeckConfig())
	got := p.Parse("First sentence about the topic. Second sentence with detail.")
	if len(got) != 1 {
		t.Fatalf("got %d slides, want 1", len(got))
	}
	if got[0].Title != "First sentence about the topic." {
		t.Errorf("title = %q", got[0].Title)
	}
	if len(got[0].Bullets) != 2 {
		t.Errorf("bullets = %v", got[0].Bullets)
	}
}

func TestParse_chunkFallbackSplitsLongText(t *testing.T) {
	cfg := testDeckConfig()
	cfg.ParserChunkSize = 100
	p := NewParser(cfg)
	text := strings.Repeat("A fairly short sentence here. ", 20)
	got := p.Parse(text)
	if len(got) < 2 {
		t.Errorf("got %d slides, want multiple chunks", len(got))
	}
}

func TestParse_empty(t *testing.T) {
	p := NewParser(testDeckConfig())
	got := p.Parse("   \n  ")
	if len(got) != 1 || got[0].Title != "No Content" {
		t.Fatalf("got %+v", got)
	}
	if len(got[0].Bullets) != 1 {
		t.Errorf("bullets = %v", got[0].Bullets)
	}
}

func TestParse_capsBullets(t *testing.T) {
	cfg := testDeckConfig()
	cfg.MaxBullets = 3
	p := NewParser(cfg)
	output := "Slide Title: Busy\n- a\n- b\n- c\n- d\n- e"
	got := p.Parse(output)
	if len(got[0].Bullets) != 3 {
		t.Errorf("bullets = %v, want 3", got[0].Bullets)
	}
}

func TestParse_bodyWithoutBulletsUsesSummary(t *testing.T) {
	p := NewParser(testDeckConfig())
	got := p.Parse("Slide Title: Prose\nJust flowing prose here. It has two sentences.")
	if len(got) != 1 {
		t.Fatalf("got %d slides", len(got))
	}
	want := []string{"Just flowing prose here.", "It has two sentences."}
	if !reflect.DeepEqual(got[0].Bullets, want) {
		t.Errorf("bullets = %v, want %v", got[0].Bullets, want)
	}
}

func TestParse_headerWithEmptyBody(t *testing.T) {
	p := NewParser(testDeckConfig())
	got := p.Parse("Slide Title: Lonely")
	if len(got) != 1 || got[0].Title != "Lonely" {
		t.Fatalf("got %+v", got)
	}
	if !reflect.DeepEqual(got[0].Bullets, []string{"(no content)"}) {
		t.Errorf("bullets = %v", got[0].Bullets)
	}
}

func TestParse_cleanBullets(t *testing.T) {
	cfg := testDeckConfig()
	cfg.CleanBullets = true
	p := NewParser(cfg)
	got := p.Parse("Slide Title: Fancy\n- ✨ Amazing результат!!")
	if len(got) != 1 || len(got[0].Bullets) != 1 {
		t.Fatalf("got %+v", got)
	}
	if strings.ContainsRune(got[0].Bullets[0], '✨') {
		t.Errorf("decoration not stripped: %q", got[0].Bullets[0])
	}
	if strings.HasSuffix(got[0].Bullets[0], "!") {
		t.Errorf("trailing punctuation kept: %q", got[0].Bullets[0])
	}
}

func TestParse_longTitleTruncated(t *testing.T) {
	p := NewParser(testDeckConfig())
	long := strings.Repeat("t", 400)
	got := p.Parse("Slide Title: " + long + "\n- point")
	if len(got[0].Title) != 250 {
		t.Errorf("title length = %d, want 250", len(got[0].Title))
	}
}

func TestParse_numberedBulletYearNotStripped(t *testing.T) {
	p := NewParser(testDeckConfig())
	// A line starting with a 4-digit year is prose, not a numbered list item.
	got := p.Parse("Slide Title: Yearly\n2023 was a strong year for the team.")
	if len(got[0].Bullets) == 0 || !strings.HasPrefix(got[0].Bullets[0], "2023") {
		t.Errorf("bullets = %v", got[0].Bullets)
	}
}
