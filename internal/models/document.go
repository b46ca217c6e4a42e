// Package models defines core data structures for documents, slides, and styles.
package models

import (
	"path/filepath"
	"strings"
)

// DocumentKind identifies the format of an uploaded document.
type DocumentKind string

const (
	KindPDF  DocumentKind = "pdf"
	KindDOCX DocumentKind = "docx"
	KindXLSX DocumentKind = "xlsx"
	KindPPTX DocumentKind = "pptx"
	KindText DocumentKind = "text"
)

// Document is an uploaded document: a named byte buffer plus its inferred kind.
// Documents live only for the duration of one generate request.
type Document struct {
	Name string
	Data []byte
	Kind DocumentKind
}

// NewDocument builds a Document, inferring the kind from the filename extension
// (case-insensitive). Unknown extensions are treated as plain text.
func NewDocument(name string, data []byte) Document {
	return Document{Name: name, Data: data, Kind: KindFromName(name)}
}

// KindFromName infers the document kind from a filename extension.
func KindFromName(name string) DocumentKind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF
	case ".docx", ".doc":
		return KindDOCX
	case ".xlsx":
		return KindXLSX
	case ".pptx":
		return KindPPTX
	default:
		return KindText
	}
}

// Ext returns the canonical extension for the document's kind, with leading dot.
func (d Document) Ext() string {
	switch d.Kind {
	case KindPDF:
		return ".pdf"
	case KindDOCX:
		return ".docx"
	case KindXLSX:
		return ".xlsx"
	case KindPPTX:
		return ".pptx"
	default:
		return ".txt"
	}
}
