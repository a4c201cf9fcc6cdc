package stencil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencilframe/stencil/pkg/stencil/expr"
	"github.com/stencilframe/stencil/pkg/stencil/template"
)

// writeSource drops a scaffold source file under dir.
func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestRender_TemplatesAndFiles tests expansion versus verbatim copy.
func TestRender_TemplatesAndFiles(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeSource(t, src, "main.go.tmpl", "package ${app.name}\n")
	writeSource(t, src, "static/logo.txt", "art with ${not.a.var}\n")

	model := &Model{
		Values: map[string]expr.Literal{
			"app.name": expr.String("shop"),
		},
		Templates: []FileRule{{Source: "main.go.tmpl", Target: "cmd/${app.name}/main.go"}},
		Files:     []FileRule{{Source: "static/logo.txt", Target: "assets/logo.txt"}},
	}

	report, err := NewRenderer(src, dst).Render(testCtx(), model)
	require.NoError(t, err)
	assert.Equal(t, []string{"cmd/shop/main.go", "assets/logo.txt"}, report.Written)

	expanded, err := os.ReadFile(filepath.Join(dst, "cmd", "shop", "main.go"))
	require.NoError(t, err)
	assert.Equal(t, "package shop\n", string(expanded))

	verbatim, err := os.ReadFile(filepath.Join(dst, "assets", "logo.txt"))
	require.NoError(t, err)
	assert.Equal(t, "art with ${not.a.var}\n", string(verbatim),
		"plain files must not be expanded")
}

// TestRender_MissingVariableFails tests the strict default expander.
func TestRender_MissingVariableFails(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeSource(t, src, "a.tmpl", "hello ${absent}\n")

	model := &Model{
		Values:    map[string]expr.Literal{},
		Templates: []FileRule{{Source: "a.tmpl", Target: "a.txt"}},
	}

	_, err := NewRenderer(src, dst).Render(testCtx(), model)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "a.tmpl", renderErr.Source)

	var uvErr *template.UndefinedVariableError
	assert.ErrorAs(t, err, &uvErr)
}

// TestRender_MissingVariableKept tests the relaxed expander option.
func TestRender_MissingVariableKept(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeSource(t, src, "a.tmpl", "hello ${absent}\n")

	model := &Model{
		Values:    map[string]expr.Literal{},
		Templates: []FileRule{{Source: "a.tmpl", Target: "a.txt"}},
	}

	r := NewRenderer(src, dst, WithMissingVariables(template.MissingKeep))
	_, err := r.Render(testCtx(), model)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello ${absent}\n", string(content))
}

// TestRender_MissingSourceFails tests the error for an absent source file.
func TestRender_MissingSourceFails(t *testing.T) {
	model := &Model{
		Templates: []FileRule{{Source: "nope.tmpl", Target: "nope.txt"}},
	}

	_, err := NewRenderer(t.TempDir(), t.TempDir()).Render(testCtx(), model)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "nope.tmpl", renderErr.Source)
}

// TestRender_TargetEscapeRejected tests path traversal protection.
func TestRender_TargetEscapeRejected(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeSource(t, src, "a.txt", "x")

	model := &Model{
		Files: []FileRule{{Source: "a.txt", Target: "../outside.txt"}},
	}

	_, err := NewRenderer(src, dst).Render(testCtx(), model)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	_, statErr := os.Stat(filepath.Join(filepath.Dir(dst), "outside.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

// TestRender_LaterDirectiveOverwrites tests model-order semantics.
func TestRender_LaterDirectiveOverwrites(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeSource(t, src, "base.txt", "base")
	writeSource(t, src, "override.txt", "override")

	model := &Model{
		Files: []FileRule{
			{Source: "base.txt", Target: "config.txt"},
			{Source: "override.txt", Target: "config.txt"},
		},
	}

	report, err := NewRenderer(src, dst).Render(testCtx(), model)
	require.NoError(t, err)
	assert.Len(t, report.Written, 2)

	content, err := os.ReadFile(filepath.Join(dst, "config.txt"))
	require.NoError(t, err)
	assert.Equal(t, "override", string(content))
}

// TestRender_NilContext tests the nil-context guard.
func TestRender_NilContext(t *testing.T) {
	_, err := NewRenderer(t.TempDir(), t.TempDir()).Render(nil, &Model{})

	assert.ErrorIs(t, err, ErrNilContext)
}

// TestModel_Vars tests value flattening for template expansion.
func TestModel_Vars(t *testing.T) {
	model := &Model{
		Values: map[string]expr.Literal{
			"app.name":     expr.String("shop"),
			"security.tls": expr.Bool(true),
			"features":     expr.Strings([]string{"auth", "cache"}),
		},
	}

	vars := model.Vars()

	assert.Equal(t, "shop", vars["app.name"])
	assert.Equal(t, true, vars["security.tls"])
	assert.Equal(t, "auth,cache", vars["features"])
}
