package models

import (
	"database/sql"
	"time"
)

// Document is the database model for an uploaded document.
type Document struct {
	ID         string    `db:"ID"`          // ULID
	Filename   string    `db:"FILENAME"`    // Original upload name
	CharCount  int       `db:"CHAR_COUNT"`  // Extracted text length in characters
	UploadedAt time.Time `db:"UPLOADED_AT"` // Upload timestamp (UTC)
}

// Generation is the database model for one generated quiz.
type Generation struct {
	ID            string         `db:"ID"`             // ULID
	DocumentID    sql.NullString `db:"DOCUMENT_ID"`    // NULL for direct file uploads
	QuizType      int            `db:"QUIZ_TYPE"`      // 1..6
	Difficulty    int            `db:"DIFFICULTY"`     // 1..3
	QuestionCount int            `db:"QUESTION_COUNT"` // Requested count
	ResultJSON    string         `db:"RESULT_JSON"`    // Normalized quiz as JSON (CLOB)
	CreatedAt     time.Time      `db:"CREATED_AT"`
}
