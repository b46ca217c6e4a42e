package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hyperjump/deckgen/internal/config"
	"github.com/hyperjump/deckgen/internal/deck"
	"github.com/hyperjump/deckgen/internal/models"
)

type stubSummarizer struct {
	output string
	err    error
	calls  int
}

func (s *stubSummarizer) Summarize(ctx context.Context, text, designPrompt, model string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	return cfg
}

func textDoc(name, text string) models.Document {
	return models.NewDocument(name, []byte(text))
}

func TestGenerate_modelOutputParsed(t *testing.T) {
	stub := &stubSummarizer{output: "Slide Title: Intro\n- Point one\n- Point two\n\n" +
		`<STYLE_JSON>{"background_color":"#112233","font_size":18}</STYLE_JSON>`}
	gen := NewGenerator(stub, testConfig(), zap.NewNop())

	result, err := gen.Generate(context.Background(), []models.Document{textDoc("a.txt", "Some document text.")}, "", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Slides) != 1 {
		t.Fatalf("got %d slides", len(result.Slides))
	}
	if result.Slides[0].Title != "Intro" {
		t.Errorf("title = %q", result.Slides[0].Title)
	}
	if len(result.Slides[0].Bullets) != 2 {
		t.Errorf("bullets = %v", result.Slides[0].Bullets)
	}
	if result.FallbackUsed {
		t.Error("fallback flagged on a successful model call")
	}
	if result.ModelUsed != "llama3-8b-8192" {
		t.Errorf("model = %q", result.ModelUsed)
	}
	// No slide ever contains the raw style block.
	for _, s := range result.Slides {
		for _, b := range s.Bullets {
			if strings.Contains(b, "STYLE_JSON") {
				t.Errorf("style block leaked into bullets: %q", b)
			}
		}
	}
}

func TestGenerate_styleJSONWinsOverPrompt(t *testing.T) {
	stub := &stubSummarizer{output: "Slide Title: Intro\n- a\n\n" +
		`<STYLE_JSON>{"background_color":"#112233","font_size":18}</STYLE_JSON>`}
	gen := NewGenerator(stub, testConfig(), zap.NewNop())

	result, err := gen.Generate(context.Background(),
		[]models.Document{textDoc("a.txt", "Text.")},
		"blue background, Calibri, large font", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// The declared block overrides the prompt-derived background and size;
	// fields it omits keep their prompt-derived values.
	if result.Style.BackgroundColor != "#112233" {
		t.Errorf("background = %q", result.Style.BackgroundColor)
	}
	if result.Style.FontSize != 18 {
		t.Errorf("font size = %d", result.Style.FontSize)
	}
	if result.Style.Font != "Calibri" {
		t.Errorf("font = %q", result.Style.Font)
	}
	if result.Style.FontColor != "#FFFFFF" {
		t.Errorf("font color = %q (dark prompt background implies white)", result.Style.FontColor)
	}
}

func TestGenerate_fallbackOnModelFailure(t *testing.T) {
	stub := &stubSummarizer{err: errors.New("model down")}
	gen := NewGenerator(stub, testConfig(), zap.NewNop())

	result, err := gen.Generate(context.Background(),
		[]models.Document{textDoc("a.txt", "First sentence of the document. Second sentence here. Third one too.")},
		"", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !result.FallbackUsed {
		t.Error("fallback not flagged")
	}
	if len(result.Slides) == 0 {
		t.Fatal("no fallback slides")
	}
	if len(result.Warnings) != 1 {
		t.Errorf("warnings = %v", result.Warnings)
	}
	// Default MaxRetries of 1 means two attempts.
	if stub.calls != 2 {
		t.Errorf("summarizer called %d times, want 2", stub.calls)
	}
}

func TestGenerate_fallbackStyleCarriesThroughToDeck(t *testing.T) {
	// With the model down, the prompt-derived style must still drive the
	// rendered deck end to end.
	stub := &stubSummarizer{err: errors.New("model down")}
	gen := NewGenerator(stub, testConfig(), zap.NewNop())

	result, err := gen.Generate(context.Background(),
		[]models.Document{textDoc("a.txt", "First sentence of the document. Second sentence here.")},
		"blue background, Calibri, large font", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !result.FallbackUsed {
		t.Error("fallback not flagged")
	}
	st := result.Style
	if st.BackgroundColor != "#003366" || st.Font != "Calibri" || st.FontSize != 20 || st.FontColor != "#FFFFFF" {
		t.Fatalf("style = %+v", st)
	}

	data, err := deck.BuildPPTX(result.Slides, st, nil)
	if err != nil {
		t.Fatalf("BuildPPTX: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("deck is not a zip: %v", err)
	}
	var slide string
	for _, f := range zr.File {
		if f.Name != "ppt/slides/slide2.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open slide: %v", err)
		}
		b, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read slide: %v", err)
		}
		slide = string(b)
	}
	if slide == "" {
		t.Fatal("content slide missing")
	}
	if !strings.Contains(slide, `<a:srgbClr val="003366"/>`) {
		t.Error("background color not rendered")
	}
	if !strings.Contains(slide, `typeface="Calibri"`) {
		t.Error("font not rendered")
	}
	if !strings.Contains(slide, `sz="2000"`) {
		t.Error("body font size not rendered")
	}
	if !strings.Contains(slide, `sz="2400"`) {
		t.Error("title font size not rendered")
	}
}

func TestGenerate_emptyDocumentSkippedWithWarning(t *testing.T) {
	stub := &stubSummarizer{output: "Slide Title: OK\n- fine"}
	gen := NewGenerator(stub, testConfig(), zap.NewNop())

	docs := []models.Document{
		textDoc("empty.txt", "   "),
		textDoc("good.txt", "Real content here."),
	}
	result, err := gen.Generate(context.Background(), docs, "", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].File != "empty.txt" {
		t.Errorf("warnings = %v", result.Warnings)
	}
	if len(result.Slides) != 1 {
		t.Errorf("got %d slides", len(result.Slides))
	}
	if _, ok := result.SourceTexts["empty.txt"]; ok {
		t.Error("empty document recorded as a source")
	}
}

func TestGenerate_noSlidesIsError(t *testing.T) {
	stub := &stubSummarizer{output: "irrelevant"}
	gen := NewGenerator(stub, testConfig(), zap.NewNop())

	_, err := gen.Generate(context.Background(),
		[]models.Document{textDoc("empty.txt", "")}, "", "")
	if !errors.Is(err, ErrNoSlides) {
		t.Errorf("err = %v, want ErrNoSlides", err)
	}
}

func TestGenerate_multipleDocumentsConcatenate(t *testing.T) {
	stub := &stubSummarizer{output: "Slide Title: One\n- a\n\nSlide Title: Two\n- b"}
	gen := NewGenerator(stub, testConfig(), zap.NewNop())

	docs := []models.Document{
		textDoc("a.txt", "Doc A."),
		textDoc("b.txt", "Doc B."),
	}
	result, err := gen.Generate(context.Background(), docs, "", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Slides) != 4 {
		t.Errorf("got %d slides, want 4 (two per document)", len(result.Slides))
	}
	if len(result.SourceNames) != 2 {
		t.Errorf("source names = %v", result.SourceNames)
	}
}

func TestGenerate_explicitModelRecorded(t *testing.T) {
	stub := &stubSummarizer{output: "Slide Title: X\n- y"}
	gen := NewGenerator(stub, testConfig(), zap.NewNop())

	result, err := gen.Generate(context.Background(),
		[]models.Document{textDoc("a.txt", "Text.")}, "", "gemma2-9b-it")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.ModelUsed != "gemma2-9b-it" {
		t.Errorf("model = %q", result.ModelUsed)
	}
}
