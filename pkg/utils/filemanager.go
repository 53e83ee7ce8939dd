// =============================================================================
// Purchases Manager - Output Tree File Manager
// =============================================================================
//
// The FileManager owns the response/ output tree. It creates the querys and
// tickets directories on demand and writes report artifacts with
// truncate-or-create semantics. Every failure carries the operation and the
// path involved, since filesystem problems here are environment
// misconfiguration and abort the run.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileManager handles file operations for the report generators.
type FileManager struct {
	// QuerysDir is the directory receiving the three query reports.
	QuerysDir string

	// TicketsDir is the directory receiving per-purchase tickets.
	TicketsDir string
}

// NewFileManager creates a FileManager rooted at the given output directory,
// with the query and ticket subdirectories below it.
func NewFileManager(outputDir, querysSubdir, ticketsSubdir string) *FileManager {
	return &FileManager{
		QuerysDir:  filepath.Join(outputDir, querysSubdir),
		TicketsDir: filepath.Join(outputDir, ticketsSubdir),
	}
}

// EnsureDirectories creates the output directories if they don't exist.
// Creation is recursive and idempotent.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{
		fm.QuerysDir,
		fm.TicketsDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// WriteQueryFile writes a query report into the querys directory,
// truncating any previous artifact of the same name.
func (fm *FileManager) WriteQueryFile(name string, content string) error {
	return writeFile(filepath.Join(fm.QuerysDir, name), content)
}

// WriteTicketFile writes a ticket into the tickets directory.
func (fm *FileManager) WriteTicketFile(name string, content string) error {
	return writeFile(filepath.Join(fm.TicketsDir, name), content)
}

func writeFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
