package connectors

import "possales/internal"

// FileSource yields pending export workbooks and archives them once the
// pipeline has consumed them. ReadContent must return bytes parseable as an
// xlsx workbook; MarkProcessed removes the file from the pending set.
type FileSource interface {
	Provider() string
	ListPending() ([]internal.SourceFile, error)
	ReadContent(id string) ([]byte, error)
	MarkProcessed(id string) error
}
