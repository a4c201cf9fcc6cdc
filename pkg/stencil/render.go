package stencil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stencilframe/stencil/pkg/stencil/observability"
	"github.com/stencilframe/stencil/pkg/stencil/template"
)

// Renderer materializes a model's file directives on disk.
//
// Template sources and all target paths are expanded against the model's
// resolved values before writing; plain file sources are copied byte for
// byte. Directives apply in model order, so a later directive may
// overwrite an earlier target.
type Renderer struct {
	sourceDir string
	targetDir string
	expander  *template.Expander
	metrics   observability.MetricsRecorder
	fileMode  os.FileMode
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithMissingVariables sets how unresolved ${path} placeholders in
// template bodies and target paths are handled.
// Default: template.MissingError.
func WithMissingVariables(action template.MissingAction) RenderOption {
	return func(r *Renderer) {
		r.expander = template.NewExpander(template.WithMissingAction(action))
	}
}

// WithRenderMetrics sets the metrics recorder for rendered files.
// Default: no-op.
func WithRenderMetrics(m observability.MetricsRecorder) RenderOption {
	return func(r *Renderer) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithFileMode sets the permission bits for written files.
// Default: 0644.
func WithFileMode(mode os.FileMode) RenderOption {
	return func(r *Renderer) {
		r.fileMode = mode
	}
}

// NewRenderer creates a renderer reading scaffold sources from sourceDir
// and writing generated files under targetDir.
func NewRenderer(sourceDir, targetDir string, opts ...RenderOption) *Renderer {
	r := &Renderer{
		sourceDir: sourceDir,
		targetDir: targetDir,
		expander:  template.NewExpander(template.WithMissingAction(template.MissingError)),
		metrics:   observability.NoopMetrics{},
		fileMode:  0o644,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderReport summarizes a render.
type RenderReport struct {
	// Written lists target-relative paths of written files, in order.
	Written []string
}

// Render writes every file directive of the model.
//
// The first failing directive aborts the render with a *RenderError;
// files written before the failure are left in place.
func (r *Renderer) Render(ctx Context, model *Model) (*RenderReport, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	vars := model.Vars()
	report := &RenderReport{}

	for _, rule := range model.Templates {
		if err := r.renderOne(ctx, rule, vars, true, report); err != nil {
			return nil, err
		}
	}
	for _, rule := range model.Files {
		if err := r.renderOne(ctx, rule, vars, false, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// renderOne materializes a single directive.
func (r *Renderer) renderOne(ctx Context, rule FileRule, vars map[string]any, expand bool, report *RenderReport) error {
	target, err := r.expander.Expand(rule.Target, vars)
	if err != nil {
		return &RenderError{Source: rule.Source, Target: rule.Target, Err: err}
	}

	content, err := os.ReadFile(filepath.Join(r.sourceDir, filepath.FromSlash(rule.Source)))
	if err != nil {
		return &RenderError{Source: rule.Source, Target: target, Err: err}
	}

	if expand {
		expanded, err := r.expander.Expand(string(content), vars)
		if err != nil {
			return &RenderError{Source: rule.Source, Target: target, Err: err}
		}
		content = []byte(expanded)
	}

	dest := filepath.Join(r.targetDir, filepath.FromSlash(target))
	if !withinDir(r.targetDir, dest) {
		return &RenderError{Source: rule.Source, Target: target,
			Err: fmt.Errorf("target escapes output directory")}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return &RenderError{Source: rule.Source, Target: target, Err: err}
	}
	if err := os.WriteFile(dest, content, r.fileMode); err != nil {
		return &RenderError{Source: rule.Source, Target: target, Err: err}
	}

	observability.LogRender(ctx.Logger(), rule.Source, target)
	r.metrics.RecordRender(ctx, int64(len(content)))
	report.Written = append(report.Written, target)
	return nil
}

// withinDir reports whether path stays inside dir after cleaning.
func withinDir(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
