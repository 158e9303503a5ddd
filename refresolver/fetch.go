package refresolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
)

// FileFetcher fetches local file paths (resolved against BaseDir) and,
// only when AllowHTTP is set, http(s):// URIs. HTTP is opt-in by default,
// mirroring the parser package's own ResolveHTTPRefs flag and its SSRF
// rationale: a linter run should not reach out to the network for every
// external $ref unless the caller explicitly asked it to.
type FileFetcher struct {
	BaseDir   string
	AllowHTTP bool
	Client    *http.Client
}

// Fetch implements refresolver.Fetcher.
func (f FileFetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return f.fetchHTTP(ctx, uri)
	}

	path := uri
	if !filepath.IsAbs(path) {
		path = filepath.Join(f.BaseDir, path)
	}
	return os.ReadFile(path)
}

func (f FileFetcher) fetchHTTP(ctx context.Context, uri string) ([]byte, error) {
	if !f.AllowHTTP {
		return nil, fmt.Errorf("refresolver: fetching %q requires AllowHTTP (SSRF protection)", uri)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("refresolver: building request for %q: %w", uri, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("refresolver: fetching %q: %w", uri, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("refresolver: fetching %q: unexpected status %s", uri, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// DecodeYAML decodes fetched bytes as YAML (a superset of JSON) into a
// generic map[string]any/[]any tree, the shape bundler.Bundle expects.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("refresolver: decoding document: %w", err)
	}
	return v, nil
}
