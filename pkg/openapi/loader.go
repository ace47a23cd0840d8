package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrNotFound is returned when the requested operation does not exist or has
// no JSON request body.
var ErrNotFound = errors.New("openapi: operation not found")

// Document wraps a parsed OpenAPI document.
type Document struct {
	spec *openapi3.T
}

type loaderConfig struct {
	files        fs.FS
	externalRefs bool
	validate     bool
}

// LoaderOption configures Load and Parse.
type LoaderOption func(*loaderConfig)

// WithFileSystem resolves paths passed to Load inside files instead of the
// operating system.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(cfg *loaderConfig) {
		cfg.files = files
	}
}

// WithExternalRefs allows $ref values pointing outside the document. Relative
// refs resolve against the location passed to Load, inside the WithFileSystem
// files when set.
func WithExternalRefs() LoaderOption {
	return func(cfg *loaderConfig) {
		cfg.externalRefs = true
	}
}

// WithValidation validates the document after parsing.
func WithValidation() LoaderOption {
	return func(cfg *loaderConfig) {
		cfg.validate = true
	}
}

// Load reads the document at location and parses it.
func Load(ctx context.Context, location string, opts ...LoaderOption) (Document, error) {
	cfg := newLoaderConfig(opts)
	location = strings.TrimSpace(location)
	if location == "" {
		return Document{}, errors.New("openapi: document path is required")
	}

	var (
		raw []byte
		err error
	)
	if cfg.files != nil {
		location = path.Clean(filepath.ToSlash(location))
		raw, err = fs.ReadFile(cfg.files, location)
	} else {
		raw, err = os.ReadFile(location)
	}
	if err != nil {
		return Document{}, fmt.Errorf("openapi: read %s: %w", location, err)
	}
	return parse(ctx, raw, &url.URL{Path: filepath.ToSlash(location)}, cfg)
}

// Parse parses a JSON or YAML OpenAPI document. Relative external refs
// resolve against the working directory.
func Parse(ctx context.Context, raw []byte, opts ...LoaderOption) (Document, error) {
	return parse(ctx, raw, nil, newLoaderConfig(opts))
}

func parse(ctx context.Context, raw []byte, location *url.URL, cfg loaderConfig) (Document, error) {
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: document is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.externalRefs,
	}
	if files := cfg.files; files != nil {
		loader.ReadFromURIFunc = func(_ *openapi3.Loader, uri *url.URL) ([]byte, error) {
			return fs.ReadFile(files, path.Clean(strings.TrimPrefix(uri.Path, "/")))
		}
	}

	var (
		spec *openapi3.T
		err  error
	)
	if location != nil {
		spec, err = loader.LoadFromDataWithPath(raw, location)
	} else {
		spec, err = loader.LoadFromData(raw)
	}
	if err != nil {
		return Document{}, fmt.Errorf("openapi: parse document: %w", err)
	}
	if cfg.validate {
		if err := spec.Validate(ctx); err != nil {
			return Document{}, fmt.Errorf("openapi: validate document: %w", err)
		}
	}
	return Document{spec: spec}, nil
}

func newLoaderConfig(opts []LoaderOption) loaderConfig {
	var cfg loaderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
