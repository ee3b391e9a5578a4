package domain

import "errors"

var (
	// intake validation, reported before any persistence happens
	ErrUnsupportedType = errors.New("unsupported file type, only PDF is accepted")
	ErrFileTooLarge    = errors.New("file exceeds the 100MB size limit")
	ErrMissingMetadata = errors.New("county and budget year are required")

	// orchestration step failures, all map to a failed upload
	ErrExtraction  = errors.New("text extraction failed")
	ErrAnalysis    = errors.New("analysis failed")
	ErrPersistence = errors.New("persistence failed")

	ErrStatusConflict = errors.New("illegal upload status transition")
	ErrNotFound       = errors.New("not found")
)
