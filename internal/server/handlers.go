package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/deckgen/internal/deck"
	"github.com/hyperjump/deckgen/internal/models"
	"github.com/hyperjump/deckgen/internal/pipeline"
)

// maxUploadBytes bounds the total size of one multipart upload (64 MiB).
const maxUploadBytes = 64 << 20

// maxLogoBytes bounds the optional logo image (4 MiB).
const maxLogoBytes = 4 << 20

const (
	outputPPTX = "pptx"
	outputPDF  = "pdf"
)

// handleGenerateDeck accepts a multipart upload of documents plus a design
// prompt and streams back the generated artifact. Form fields:
//
//	files          one or more documents (required)
//	design_prompt  free-text styling and content instructions
//	model          model name from the allowed list (optional)
//	logo           PNG placed on every content slide (optional)
//	output         "pptx" (default) or "pdf"
//
// Per-file problems surface as X-Deckgen-Warning headers on a success
// response; a batch that yields no slides at all is a 422.
func (s *Server) handleGenerateDeck(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		s.respondError(w, http.StatusBadRequest, "at least one file is required")
		return
	}

	output := r.FormValue("output")
	if output == "" {
		output = outputPPTX
	}
	if output != outputPPTX && output != outputPDF {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown output format %q", output))
		return
	}

	model := r.FormValue("model")
	if model != "" && !s.config.LLM.ModelAllowed(model) {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("model %q is not in the allowed list", model))
		return
	}
	designPrompt := r.FormValue("design_prompt")

	var docs []models.Document
	for _, fh := range fileHeaders {
		data, err := readMultipartFile(fh)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, fmt.Sprintf("read upload %q: %v", fh.Filename, err))
			return
		}
		docs = append(docs, models.NewDocument(fh.Filename, data))
	}

	var logo []byte
	if logoHeaders := r.MultipartForm.File["logo"]; len(logoHeaders) > 0 {
		data, err := readMultipartFile(logoHeaders[0])
		if err != nil || len(data) > maxLogoBytes {
			// A broken logo never fails the deck; it is simply omitted.
			s.logger.Warn("ignoring unusable logo upload", zap.Error(err))
		} else {
			logo = data
		}
	}

	s.logger.Debug("generate deck request",
		zap.Int("files", len(docs)),
		zap.String("model", model),
		zap.String("output", output))

	result, err := s.generator.Generate(r.Context(), docs, designPrompt, model)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoSlides) {
			s.respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error("generation failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var artifact []byte
	var contentType, ext string
	switch output {
	case outputPDF:
		artifact, err = deck.BuildTextPDF(result.SourceTexts, result.SourceNames)
		contentType, ext = "application/pdf", "pdf"
	default:
		artifact, err = deck.BuildPPTX(result.Slides, result.Style, logo)
		contentType, ext = "application/vnd.openxmlformats-officedocument.presentationml.presentation", "pptx"
	}
	if err != nil {
		s.logger.Error("artifact assembly failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	for _, warning := range result.Warnings {
		w.Header().Add("X-Deckgen-Warning", fmt.Sprintf("%s: %s", warning.File, warning.Message))
	}
	w.Header().Set("X-Deckgen-Model", result.ModelUsed)
	if result.FallbackUsed {
		w.Header().Set("X-Deckgen-Fallback", "true")
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="deck-%s.%s"`, uuid.New().String(), ext))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact)
}

// handleListModels reports the bounded model list and the configured default.
func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"models":  s.config.LLM.AllowedModels,
		"default": s.config.LLM.Model,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
