package audit

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

// FileLog appends one line per record to a file.
type FileLog struct {
	mu   sync.Mutex
	path string
}

// NewFileLog creates the file and its parent directories if needed.
func NewFileLog(path string) (*FileLog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create audit directory: %v", domain.ErrStorageUnavailable, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: open audit file: %v", domain.ErrStorageUnavailable, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: close audit file: %v", domain.ErrStorageUnavailable, err)
	}
	return &FileLog{path: path}, nil
}

// Append writes the record line with a single write call.
func (l *FileLog) Append(_ context.Context, record domain.AuditRecord) error {
	line := []byte(record.Line() + "\n")

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open audit file: %v", domain.ErrStorageUnavailable, err)
	}
	if _, err := f.Write(line); err != nil {
		f.Close()
		return fmt.Errorf("%w: write audit entry: %v", domain.ErrStorageUnavailable, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close audit file: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Lines scans the file for entries about bikeID.
func (l *FileLog) Lines(_ context.Context, bikeID string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open audit file: %v", domain.ErrStorageUnavailable, err)
	}
	defer f.Close()

	marker := " | Bike=" + bikeID + " |"
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line+" |", marker) {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read audit file: %v", domain.ErrStorageUnavailable, err)
	}
	return lines, nil
}

func (l *FileLog) Path() string {
	return l.path
}

var (
	_ ports.AuditAppender = (*FileLog)(nil)
	_ ports.AuditReader   = (*FileLog)(nil)
)
