// Package refresolver implements lazy, per-ref external reference
// resolution with in-flight fetch deduplication, an LRU document cache,
// and cycle detection. This is deliberately a different access pattern
// from parser.RefResolver, which eagerly resolves every $ref in a
// document up front for bundling/dereferencing and is used for exactly
// that job (see bundler). This one resolves one ref at a time, on
// demand; the bundle CLI command is its caller. Config extends loading,
// the walker and the rules do not use it.
package refresolver

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/oasguard/oasguard/oaserrors"
)

// DefaultFetchTimeout bounds a single document fetch.
const DefaultFetchTimeout = 60 * time.Second

// Fetcher retrieves the raw bytes of a document at an absolute URI
// (file path or http(s) URL). Implementations need not decode YAML or
// JSON: Resolver decodes the fetched bytes with its Decoder.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

// Decoder parses fetched bytes into a generic document tree.
type Decoder func(data []byte) (any, error)

// ResolvedRef is the result of resolving one $ref.
type ResolvedRef struct {
	// SourceURI is the absolute URI of the document the ref pointed
	// into (equal to the requesting document's URI for local refs).
	SourceURI string
	// Pointer is the RFC 6901 JSON Pointer fragment within SourceURI.
	Pointer string
	// Value is the resolved node.
	Value any
}

// CircularRef is returned (wrapped in an error) when resolving a ref
// would revisit a URI+pointer pair already on the current resolution
// stack.
type CircularRef struct {
	Chain []string
}

func (c *CircularRef) Error() string {
	return fmt.Sprintf("circular reference: %s", strings.Join(c.Chain, " -> "))
}

type cacheEntry struct {
	doc any
}

// Resolver resolves $ref targets lazily, one at a time, caching fetched
// documents and deduplicating concurrent fetches of the same URI.
type Resolver struct {
	fetcher Fetcher
	decode  Decoder
	timeout time.Duration

	cache *lru.Cache[string, *cacheEntry]
	group singleflight.Group

	mu        sync.Mutex
	resolving map[string]bool // "uri#pointer" currently on the stack
}

// New creates a Resolver. cacheSize bounds the number of distinct fetched
// documents kept in memory at once (golang-lru evicts least-recently-used
// entries past that bound).
func New(fetcher Fetcher, decode Decoder, cacheSize int) (*Resolver, error) {
	cache, err := lru.New[string, *cacheEntry](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("refresolver: creating cache: %w", err)
	}
	return &Resolver{
		fetcher:   fetcher,
		decode:    decode,
		timeout:   DefaultFetchTimeout,
		cache:     cache,
		resolving: make(map[string]bool),
	}, nil
}

// WithTimeout overrides the per-fetch timeout (default DefaultFetchTimeout).
func (r *Resolver) WithTimeout(d time.Duration) *Resolver {
	r.timeout = d
	return r
}

// Resolve fetches (or reuses a cached copy of) the document at uri and
// navigates to pointer within it. baseURI identifies the document that
// is making the reference; Resolve does not read it, and the
// circular-reference chain lists only uri#pointer keys.
func (r *Resolver) Resolve(ctx context.Context, baseURI, uri, pointer string) (*ResolvedRef, error) {
	key := uri + "#" + pointer

	r.mu.Lock()
	if r.resolving[key] {
		chain := make([]string, 0, len(r.resolving)+1)
		for k := range r.resolving {
			chain = append(chain, k)
		}
		chain = append(chain, key)
		r.mu.Unlock()
		return nil, &CircularRef{Chain: chain}
	}
	r.resolving[key] = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.resolving, key)
		r.mu.Unlock()
	}()

	doc, err := r.fetchDocument(ctx, uri)
	if err != nil {
		return nil, err
	}

	value, err := navigate(doc, pointer)
	if err != nil {
		return nil, &oaserrors.ReferenceError{
			Ref:     uri + "#" + pointer,
			RefType: "external",
			Message: err.Error(),
		}
	}

	return &ResolvedRef{SourceURI: uri, Pointer: pointer, Value: value}, nil
}

// fetchDocument returns the decoded document at uri, fetching it at most
// once even under concurrent calls for the same uri (golang.org/x/sync/
// singleflight), and caching the result in an LRU keyed by uri.
func (r *Resolver) fetchDocument(ctx context.Context, uri string) (any, error) {
	if entry, ok := r.cache.Get(uri); ok {
		return entry.doc, nil
	}

	result, err, _ := r.group.Do(uri, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		data, err := r.fetcher.Fetch(fetchCtx, uri)
		if err != nil {
			return nil, &oaserrors.ReferenceError{Ref: uri, RefType: "external", Message: "fetching reference target", Cause: err}
		}
		doc, err := r.decode(data)
		if err != nil {
			return nil, &oaserrors.ParseError{Path: uri, Message: "decoding reference target", Cause: err}
		}
		r.cache.Add(uri, &cacheEntry{doc: doc})
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// navigate walks an RFC 6901 JSON Pointer into a generic document tree
// built of map[string]any, []any, and scalar leaves.
func navigate(doc any, pointer string) (any, error) {
	if pointer == "" {
		return doc, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("pointer %q must start with '/'", pointer)
	}

	current := doc
	for _, raw := range strings.Split(pointer, "/")[1:] {
		segment := strings.ReplaceAll(strings.ReplaceAll(raw, "~1", "/"), "~0", "~")
		switch node := current.(type) {
		case map[string]any:
			v, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("no such key %q in pointer %q", segment, pointer)
			}
			current = v
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in pointer %q", segment, pointer)
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("cannot descend into scalar at %q in pointer %q", segment, pointer)
		}
	}
	return current, nil
}
