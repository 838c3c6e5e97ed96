package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrDownloadNotFound is returned for unknown or already released tokens
var ErrDownloadNotFound = errors.New("download not found or expired")

// Download is a transient reference to an exported PDF
type Download struct {
	Token     string
	FileName  string
	Key       string
	Size      int64
	Pages     int
	ExpiresAt time.Time
}

// URL is the path the browser fetches the file from
func (d *Download) URL() string {
	return "/downloads/" + d.Token
}

type downloadEntry struct {
	download Download
	timer    *time.Timer
}

// DownloadRegistry hands out short-lived download tokens. Each token and its
// stored file are released once the grace period has passed, never at the
// moment the download is dispatched.
type DownloadRegistry struct {
	storage StorageProvider
	grace   time.Duration

	mu      sync.Mutex
	entries map[string]*downloadEntry
}

// DefaultDownloadGrace is used when a registry is given no grace period
const DefaultDownloadGrace = time.Minute

func NewDownloadRegistry(storage StorageProvider, grace time.Duration) *DownloadRegistry {
	if grace <= 0 {
		log.Printf("[WARNING] Download grace period %s is not positive, using %s", grace, DefaultDownloadGrace)
		grace = DefaultDownloadGrace
	}
	return &DownloadRegistry{
		storage: storage,
		grace:   grace,
		entries: make(map[string]*downloadEntry),
	}
}

// Register stores file and schedules its release
func (r *DownloadRegistry) Register(ctx context.Context, file *PDFFile) (*Download, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, &AssemblyError{Err: errors.New("nothing to deliver")}
	}

	now := time.Now()
	token := uuid.New().String()
	key := GenerateExportKey(token, now)

	result, err := r.storage.UploadReader(ctx, bytes.NewReader(file.Data), key, "application/pdf", int64(len(file.Data)))
	if err != nil {
		return nil, &AssemblyError{Err: fmt.Errorf("failed to store export: %w", err)}
	}

	entry := &downloadEntry{download: Download{
		Token:     token,
		FileName:  file.Name,
		Key:       result.Key,
		Size:      result.FileSize,
		Pages:     file.Pages,
		ExpiresAt: now.Add(r.grace),
	}}

	r.mu.Lock()
	r.entries[token] = entry
	entry.timer = time.AfterFunc(r.grace, func() { r.Release(token) })
	r.mu.Unlock()

	d := entry.download
	return &d, nil
}

// Open returns the download for token and a reader over its content
func (r *DownloadRegistry) Open(ctx context.Context, token string) (*Download, io.ReadCloser, error) {
	r.mu.Lock()
	entry, ok := r.entries[token]
	r.mu.Unlock()
	if !ok {
		return nil, nil, ErrDownloadNotFound
	}

	reader, _, err := r.storage.Get(ctx, entry.download.Key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, nil, ErrDownloadNotFound
		}
		return nil, nil, err
	}

	d := entry.download
	return &d, reader, nil
}

// Release forgets token and deletes its stored file. Releasing an unknown
// token is a no-op.
func (r *DownloadRegistry) Release(token string) {
	r.mu.Lock()
	entry, ok := r.entries[token]
	if ok {
		delete(r.entries, token)
		entry.timer.Stop()
	}
	r.mu.Unlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.storage.Delete(ctx, entry.download.Key); err != nil {
		log.Printf("[WARNING] Failed to delete released export %s: %v", entry.download.Key, err)
	}
}

// Pending reports how many downloads are still held
func (r *DownloadRegistry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// StaleAfter is how old a stored export must be before a sweep may remove
// it. It stays well past the grace period so live tokens keep their file.
func (r *DownloadRegistry) StaleAfter() time.Duration {
	if stale := 2 * r.grace; stale > time.Hour {
		return stale
	}
	return time.Hour
}

// Close releases every held download
func (r *DownloadRegistry) Close() {
	r.mu.Lock()
	tokens := make([]string, 0, len(r.entries))
	for token := range r.entries {
		tokens = append(tokens, token)
	}
	r.mu.Unlock()

	for _, token := range tokens {
		r.Release(token)
	}
}
