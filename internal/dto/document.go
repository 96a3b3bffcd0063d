package dto

import "time"

// UploadDocumentResponse is returned after a PDF upload.
// @Description Identifier for a stored document
type UploadDocumentResponse struct {
	Message  string `json:"message"`
	PDFID    string `json:"pdf_id"`
	Filename string `json:"filename"`
}

// DocumentResponse describes a stored document.
// @Description Stored document metadata
type DocumentResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	CharCount  int       `json:"char_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}
