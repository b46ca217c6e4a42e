package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hyperjump/deckgen/internal/config"
	"github.com/hyperjump/deckgen/internal/pipeline"
)

type scriptedSummarizer struct {
	output string
	err    error
}

func (s *scriptedSummarizer) Summarize(ctx context.Context, text, designPrompt, model string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

func testServer(t *testing.T, output string, llmErr error) *Server {
	t.Helper()
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	gen := pipeline.NewGenerator(&scriptedSummarizer{output: output, err: llmErr}, cfg, zap.NewNop())
	return NewServer(gen, cfg, zap.NewNop())
}

func multipartRequest(t *testing.T, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, content := range files {
		fw, err := mw.CreateFormFile("files", name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest(http.MethodPost, "/api/v1/decks", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestHandleGenerateDeck_pptx(t *testing.T) {
	srv := testServer(t, "Slide Title: Intro\n- one\n- two", nil)
	r := multipartRequest(t,
		map[string]string{"design_prompt": "blue background"},
		map[string]string{"doc.txt": "Document body text."})
	w := httptest.NewRecorder()
	srv.handleGenerateDeck(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "presentationml") {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, ".pptx") {
		t.Errorf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Error("body is not a zip archive")
	}
	if w.Header().Get("X-Deckgen-Model") == "" {
		t.Error("model header missing")
	}
}

func TestHandleGenerateDeck_pdfOutput(t *testing.T) {
	srv := testServer(t, "Slide Title: Intro\n- one", nil)
	r := multipartRequest(t,
		map[string]string{"output": "pdf"},
		map[string]string{"doc.txt": "Document body text."})
	w := httptest.NewRecorder()
	srv.handleGenerateDeck(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Error("body is not a PDF")
	}
}

func TestHandleGenerateDeck_warningsOnFallback(t *testing.T) {
	srv := testServer(t, "", errors.New("model down"))
	r := multipartRequest(t, nil,
		map[string]string{"doc.txt": "Sentence one. Sentence two."})
	w := httptest.NewRecorder()
	srv.handleGenerateDeck(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(w.Header().Values("X-Deckgen-Warning")) == 0 {
		t.Error("warning header missing")
	}
	if w.Header().Get("X-Deckgen-Fallback") != "true" {
		t.Error("fallback header missing")
	}
}

func TestHandleGenerateDeck_noFiles(t *testing.T) {
	srv := testServer(t, "Slide Title: X\n- y", nil)
	r := multipartRequest(t, map[string]string{"design_prompt": "blue"}, nil)
	w := httptest.NewRecorder()
	srv.handleGenerateDeck(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleGenerateDeck_emptyBatchIs422(t *testing.T) {
	srv := testServer(t, "Slide Title: X\n- y", nil)
	r := multipartRequest(t, nil, map[string]string{"empty.txt": "   "})
	w := httptest.NewRecorder()
	srv.handleGenerateDeck(w, r)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestHandleGenerateDeck_unknownModel(t *testing.T) {
	srv := testServer(t, "Slide Title: X\n- y", nil)
	r := multipartRequest(t,
		map[string]string{"model": "gpt-4"},
		map[string]string{"doc.txt": "Text."})
	w := httptest.NewRecorder()
	srv.handleGenerateDeck(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleGenerateDeck_unknownOutput(t *testing.T) {
	srv := testServer(t, "Slide Title: X\n- y", nil)
	r := multipartRequest(t,
		map[string]string{"output": "docx"},
		map[string]string{"doc.txt": "Text."})
	w := httptest.NewRecorder()
	srv.handleGenerateDeck(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleListModels(t *testing.T) {
	srv := testServer(t, "", nil)
	r := httptest.NewRequest(http.MethodGet, "/api/v1/models", nil)
	w := httptest.NewRecorder()
	srv.handleListModels(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out struct {
		Models  []string `json:"models"`
		Default string   `json:"default"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Models) == 0 || out.Default == "" {
		t.Errorf("out = %+v", out)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t, "", nil)
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.handleHealth(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}
