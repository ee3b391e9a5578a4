package domain

import "github.com/google/uuid"

// Document is a staged file accepted by intake, not yet persisted.
type Document struct {
	Name        string
	Size        int64
	ContentType string
	Path        string // staged location on disk
}

// Submission is one document plus its classification metadata,
// processed by exactly one orchestration run.
type Submission struct {
	Document   *Document
	County     string
	BudgetYear string
	UserID     *uuid.UUID
}

// Result composes the persisted state of a completed run.
type Result struct {
	Upload   *Upload
	Analysis *Analysis
}
