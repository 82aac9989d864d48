// SPDX-License-Identifier: MIT
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS.
var (
	// ErrStartVertexNotFound indicates the start vertex is absent from the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil indicates a nil *core.Graph was passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a BFS run.
type Option func(*Options)

// Options holds the traversal knobs.
type Options struct {
	Ctx      context.Context
	OnVisit  func(id string, depth int) error
	MaxDepth int

	err error
}

// DefaultOptions returns a context.Background, no-op visit hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext cancels the traversal when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visit; an error stops the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search below depth d. Zero means no limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds visit order, hop distances and BFS-tree parents.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Eccentricity is the largest depth reached.
func (r *Result) Eccentricity() int {
	ecc := 0
	for _, d := range r.Depth {
		ecc = max(ecc, d)
	}

	return ecc
}

// PathTo reconstructs the start-to-dest path.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
