package benchmarks

import (
	"testing"

	"github.com/stencilframe/stencil/pkg/stencil/expr"
)

var benchVars = map[string]expr.Literal{
	"app.name":     expr.String("shop"),
	"security.tls": expr.Bool(true),
	"db.kind":      expr.String("postgres"),
	"features":     expr.Strings([]string{"auth", "cache", "metrics"}),
}

// BenchmarkTokenize_Simple tokenizes a two-operand comparison.
func BenchmarkTokenize_Simple(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = expr.Tokenize(`${security.tls} == true`)
	}
}

// BenchmarkTokenize_Compound tokenizes a multi-operator expression.
func BenchmarkTokenize_Compound(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = expr.Tokenize(`!(${db.kind} == 'none') && ${features} contains 'auth' || ${security.tls} != false`)
	}
}

// BenchmarkParse_Simple parses a two-operand comparison.
func BenchmarkParse_Simple(b *testing.B) {
	resolve := expr.MapResolver(benchVars)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = expr.Parse(`${security.tls} == true`, resolve)
	}
}

// BenchmarkParse_Compound parses a nested expression with every operator.
func BenchmarkParse_Compound(b *testing.B) {
	resolve := expr.MapResolver(benchVars)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = expr.Parse(`!(${db.kind} == 'none') && ${features} contains 'auth' || ${security.tls} != false`, resolve)
	}
}

// BenchmarkEval_Parsed evaluates a pre-parsed expression.
func BenchmarkEval_Parsed(b *testing.B) {
	parsed, err := expr.Parse(`${features} contains 'auth' && ${security.tls} == true`,
		expr.MapResolver(benchVars))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = parsed.Eval()
	}
}

// BenchmarkEval_ParseAndEval measures the full parse-then-eval path.
func BenchmarkEval_ParseAndEval(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = expr.Eval(`${features} contains 'auth' && ${security.tls} == true`, benchVars)
	}
}
