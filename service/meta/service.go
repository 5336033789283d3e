// Package meta provides resource access for the engine: it resolves dataset
// locations (optionally through an indirection file whose first line is the
// dataset URL) and reads resources via the abstract file system, so the
// engine works the same with local files, in-memory or cloud storage.
package meta

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// Service provides read access to engine resources.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// New creates a new meta service.
func New(opts ...Option) *Service {
	ret := &Service{fs: afs.New()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Download reads the resource at the supplied location.
func (s *Service) Download(ctx context.Context, location string) ([]byte, error) {
	URL := s.resolveURL(location)
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return nil, fmt.Errorf("cannot open %v: %w", URL, err)
	}
	return data, nil
}

// Exists reports whether the resource at the supplied location is present.
func (s *Service) Exists(ctx context.Context, location string) (bool, error) {
	return s.fs.Exists(ctx, s.resolveURL(location), s.options...)
}

// Resolve reads the indirection file at the supplied location and returns its
// first line as the target dataset location. Only the line terminator is
// stripped; the remainder of the file is ignored.
func (s *Service) Resolve(ctx context.Context, indirectionLocation string) (string, error) {
	data, err := s.Download(ctx, indirectionLocation)
	if err != nil {
		return "", err
	}
	line := string(data)
	if idx := strings.IndexByte(line, '\n'); idx != -1 {
		line = line[:idx]
	}
	return strings.TrimSuffix(line, "\r"), nil
}

// resolveURL joins relative locations with the configured base URL.
func (s *Service) resolveURL(location string) string {
	if s.baseURL == "" || strings.Contains(location, "://") || strings.HasPrefix(location, "/") {
		return location
	}
	return url.Join(s.baseURL, location)
}

// Option customises the meta service.
type Option func(*Service)

// WithBaseURL sets the base URL relative locations are resolved against.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.baseURL = baseURL
	}
}

// WithFsOptions sets the storage options passed to every file system call.
func WithFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.options = options
	}
}
