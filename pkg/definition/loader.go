package definition

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// LoaderOptions configures how a Loader resolves documents.
type LoaderOptions struct {
	// FileSystem serves LoadFS calls. Nil disables them.
	FileSystem fs.FS

	// HTTPClient serves LoadURL calls when set (custom transports, proxies).
	// Nil means remote documents are disabled unless AllowHTTPFallback is
	// true.
	HTTPClient *http.Client

	// AllowHTTPFallback enables a default HTTP client for LoadURL when no
	// custom client is supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for LoadFS.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables the default HTTP client with the given timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resolved configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Loader fetches definition documents from disk, an fs.FS, or HTTP.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// NewLoader constructs a Loader from options.
func NewLoader(options ...LoaderOption) *Loader {
	cfg := NewLoaderOptions(options...)

	var httpClient *http.Client
	switch {
	case cfg.HTTPClient != nil:
		clone := *cfg.HTTPClient
		if cfg.RequestTimeout > 0 && clone.Timeout == 0 {
			clone.Timeout = cfg.RequestTimeout
		}
		httpClient = &clone
	case cfg.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	return &Loader{
		fs:        cfg.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   cfg.RequestTimeout,
	}
}

// LoadFile reads an on-disk document. It does not parse the payload; call
// Parse on the result.
func (l *Loader) LoadFile(ctx context.Context, path string) (Document, error) {
	if path == "" {
		return Document{}, errors.New("definition loader: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return Document{}, err
	}
	return NewDocument(filepath.Clean(path), data)
}

// LoadFS reads a document from the configured fs.FS.
func (l *Loader) LoadFS(ctx context.Context, name string) (Document, error) {
	if name == "" {
		return Document{}, errors.New("definition loader: fs path is required")
	}
	if l.fs == nil {
		return Document{}, errors.New("definition loader: fs is nil")
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return Document{}, err
	}
	return NewDocument(name, data)
}

// LoadURL fetches a remote document over HTTP.
func (l *Loader) LoadURL(ctx context.Context, rawURL string) (Document, error) {
	if rawURL == "" {
		return Document{}, errors.New("definition loader: url is required")
	}
	if !l.allowHTTP {
		return Document{}, errors.New("definition loader: http support disabled")
	}
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return Document{}, errors.New("definition loader: invalid url " + rawURL)
	}

	data, err := loadHTTP(ctx, l.http, rawURL, l.timeout)
	if err != nil {
		return Document{}, err
	}
	return NewDocument(rawURL, data)
}

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("definition loader: unexpected status " + resp.Status)
	}

	return io.ReadAll(resp.Body)
}
