// Package pipeline joins the four stages of a paper-solving run:
// extraction, segmentation, solving, and rendering. One Pipeline value is
// safe for concurrent use; each Run owns its intermediate state.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/paperwise/paperwise/extract"
	"github.com/paperwise/paperwise/render"
	"github.com/paperwise/paperwise/segment"
	"github.com/paperwise/paperwise/solve"
)

// SourceDocument is the raw upload: bytes plus the declared format.
// It exists only for the duration of extraction.
type SourceDocument struct {
	// Path is the original filename; its extension drives extractor
	// selection when ContentType is empty.
	Path string
	// ContentType is the declared MIME type, may be empty.
	ContentType string
	// Content is the raw document bytes.
	Content []byte
}

// RunOptions are the per-run parameters supplied alongside the upload.
type RunOptions struct {
	Subject     string
	ClassLevel  int
	StudentName string
	// Format selects the output renderer ("pdf", "markdown", "html").
	Format string
}

// Pipeline wires the stage components together.
type Pipeline struct {
	extractors   *extract.Registry
	engine       *segment.Engine
	orchestrator *solve.Orchestrator
	renderers    *render.Registry
	log          *zap.Logger
}

// New creates a Pipeline. The orchestrator is required; nil registries
// and engine fall back to defaults, and a nil logger disables logging.
func New(extractors *extract.Registry, engine *segment.Engine, orchestrator *solve.Orchestrator,
	renderers *render.Registry, logger *zap.Logger) *Pipeline {

	if engine == nil {
		engine = segment.NewEngine()
	}
	if renderers == nil {
		renderers = render.DefaultRegistry()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		extractors:   extractors,
		engine:       engine,
		orchestrator: orchestrator,
		renderers:    renderers,
		log:          logger,
	}
}

// Run executes one complete pipeline pass. The caller receives either a
// complete artifact (possibly mixing real and fallback solutions) or a
// terminal error: extraction and segmentation failures reject the whole
// run, while per-question solve failures never do.
func (p *Pipeline) Run(ctx context.Context, doc SourceDocument, opts RunOptions) (*render.Artifact, error) {
	renderer := p.renderers.Get(opts.Format)
	if renderer == nil {
		return nil, fmt.Errorf("unknown output format %q", opts.Format)
	}

	text, err := p.extractors.Extract(ctx, doc.ContentType, doc.Path, doc.Content)
	if err != nil {
		return nil, err
	}
	p.log.Info("extracted document text",
		zap.String("path", doc.Path),
		zap.String("method", text.Method),
		zap.Int("chars", len(text.Content)))

	candidates, err := p.engine.Segment(text.Content)
	if err != nil {
		return nil, err
	}
	summary := segment.Summarize(candidates)
	p.log.Info("segmented questions",
		zap.Int("total", summary.Total),
		zap.Int("mcq", summary.MCQ),
		zap.Int("descriptive", summary.Descriptive),
		zap.Int("stated_marks", summary.TotalMarks))

	solved, err := p.orchestrator.SolveAll(ctx, candidates, opts.Subject, opts.ClassLevel)
	if err != nil {
		return nil, err
	}

	set := &solve.SolutionSet{
		Subject:     opts.Subject,
		ClassLevel:  opts.ClassLevel,
		StudentName: opts.StudentName,
		GeneratedAt: time.Now(),
		Questions:   solved,
	}

	artifact, err := renderer.Render(set)
	if err != nil {
		return nil, fmt.Errorf("rendering %s artifact: %w", opts.Format, err)
	}
	p.log.Info("rendered artifact",
		zap.String("filename", artifact.Filename),
		zap.Int("bytes", len(artifact.Bytes)))

	return artifact, nil
}
