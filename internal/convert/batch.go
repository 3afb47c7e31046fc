package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/tagtools/id3json/internal/art"
	"github.com/tagtools/id3json/internal/sidecar"
	"github.com/tagtools/id3json/internal/tag"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent is one per-file progress update from a traversal.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
	Path    string
}

// TraverseOptions configures a batch traversal.
type TraverseOptions struct {
	// Recurse descends into subdirectories discovered during traversal.
	// Directories named explicitly in the input list are always listed one
	// level deep.
	Recurse bool

	// Aggregate collects every file's document into one shared document
	// keyed by file path instead of writing per-file sidecars. Album art is
	// still written per file.
	Aggregate bool

	// Jobs is the number of files processed concurrently. 1 (the default)
	// processes files sequentially in traversal order.
	Jobs int
}

// DefaultTraverseOptions returns the defaults: recursive, non-aggregated,
// sequential.
func DefaultTraverseOptions() TraverseOptions {
	return TraverseOptions{Recurse: true, Jobs: 1}
}

// Traverser walks input paths and extracts a sidecar document for every
// matching audio file it finds.
//
// Failure policy is asymmetric: a file whose tags cannot be read is
// reported and skipped, but a failure writing any output aborts the whole
// run.
type Traverser struct {
	codec      tag.Codec
	opts       TraverseOptions
	onProgress func(ProgressEvent)

	aggregate *sidecar.Document
	mu        sync.Mutex // guards aggregate and onProgress

	processed atomic.Int32
	failed    atomic.Int32
	skipped   atomic.Int32
}

// NewTraverser creates a Traverser. onProgress may be nil.
func NewTraverser(codec tag.Codec, opts TraverseOptions, onProgress func(ProgressEvent)) *Traverser {
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}
	return &Traverser{codec: codec, opts: opts, onProgress: onProgress}
}

// Stats returns how many files were processed, failed to read, and were
// skipped as non-audio.
func (t *Traverser) Stats() (processed, failed, skipped int) {
	return int(t.processed.Load()), int(t.failed.Load()), int(t.skipped.Load())
}

// Run walks the input paths and processes every matching file. In
// aggregate mode the accumulated document is returned; otherwise the
// result is nil and per-file sidecars have been written.
func (t *Traverser) Run(ctx context.Context, inputs []string) (*sidecar.Document, error) {
	if t.opts.Aggregate {
		t.aggregate = sidecar.New()
	}

	files := t.collect(inputs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.opts.Jobs)
	for _, path := range files {
		path := path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return t.processFile(path)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return t.aggregate, nil
}

// collect expands the input list into the matching audio files using an
// explicit worklist, so traversal depth is not bound to call-stack depth.
// Directories named in the input list are always listed one level;
// Recurse governs directories discovered below them. Resolved directory
// identities are remembered to break symlink loops.
func (t *Traverser) collect(inputs []string) []string {
	type item struct {
		path      string
		fromInput bool
	}

	var files []string
	visited := make(map[string]bool)

	queue := make([]item, 0, len(inputs))
	for _, path := range inputs {
		queue = append(queue, item{path: path, fromInput: true})
	}

	for len(queue) > 0 {
		path := queue[0].path
		fromInput := queue[0].fromInput
		queue = queue[1:]

		info, err := os.Stat(path)
		if err != nil {
			t.progress(ProgressEvent{
				Path:    path,
				Level:   LevelError,
				Message: fmt.Sprintf("cannot stat %s: %v", path, err),
			})
			continue
		}

		if info.IsDir() {
			if !fromInput && !t.opts.Recurse {
				t.progress(ProgressEvent{
					Path:    path,
					Level:   LevelVerbose,
					Message: fmt.Sprintf("skipping directory %s (recursion disabled)", path),
				})
				continue
			}

			resolved, err := filepath.EvalSymlinks(path)
			if err != nil {
				resolved = path
			}
			if visited[resolved] {
				t.progress(ProgressEvent{
					Path:    path,
					Level:   LevelVerbose,
					Message: fmt.Sprintf("already visited %s, skipping", path),
				})
				continue
			}
			visited[resolved] = true

			entries, err := os.ReadDir(path)
			if err != nil {
				t.progress(ProgressEvent{
					Path:    path,
					Level:   LevelError,
					Message: fmt.Sprintf("cannot list %s: %v", path, err),
				})
				continue
			}
			for _, entry := range entries {
				queue = append(queue, item{path: filepath.Join(path, entry.Name())})
			}
			continue
		}

		// Literal substring match, kept from the original tool. Callers
		// should not rely on stricter matching.
		if !strings.Contains(info.Name(), "mp3") {
			t.skipped.Add(1)
			t.progress(ProgressEvent{
				Path:    path,
				Level:   LevelVerbose,
				Message: fmt.Sprintf("skipping %s: not an mp3 file", path),
			})
			continue
		}

		files = append(files, path)
	}

	return files
}

// processFile extracts one file. Read failures are tolerated (reported,
// counted, nil returned); output write failures are returned and abort the
// traversal.
func (t *Traverser) processFile(path string) error {
	set, err := t.codec.Read(path)
	if err != nil {
		t.failed.Add(1)
		t.progress(ProgressEvent{
			Path:    path,
			Level:   LevelError,
			Message: fmt.Sprintf("%v, skipping", err),
		})
		return nil
	}

	doc := sidecar.FromTagSet(set)

	if t.opts.Aggregate {
		t.mu.Lock()
		t.aggregate.Set(path, doc)
		t.mu.Unlock()
	} else {
		data, err := doc.Encode()
		if err != nil {
			return fmt.Errorf("encode sidecar for %s: %w", path, err)
		}
		sidecarPath := replaceExt(path, ".json")
		if err := os.WriteFile(sidecarPath, data, 0644); err != nil {
			return &IOError{Op: "write sidecar", Path: sidecarPath, Err: err}
		}
		t.progress(ProgressEvent{
			Path:    path,
			Level:   LevelVerbose,
			Message: fmt.Sprintf("wrote %s", sidecarPath),
		})
	}

	// Art goes to its per-file path even in aggregate mode. Batch mode
	// derives .jpeg where single-file mode derives .jpg.
	if pic, ok := art.FirstPicture(set); ok {
		artPath := replaceExt(path, ".jpeg")
		if err := os.WriteFile(artPath, pic, 0644); err != nil {
			return &IOError{Op: "write album art", Path: artPath, Err: err}
		}
		t.progress(ProgressEvent{
			Path:    path,
			Level:   LevelVerbose,
			Message: fmt.Sprintf("wrote %s", artPath),
		})
	}

	t.processed.Add(1)
	t.progress(ProgressEvent{
		Path:    path,
		Level:   LevelSuccess,
		Message: path,
	})
	return nil
}

func (t *Traverser) progress(event ProgressEvent) {
	if t.onProgress == nil {
		return
	}
	t.mu.Lock()
	t.onProgress(event)
	t.mu.Unlock()
}
