package template

import (
	"errors"
	"testing"
)

func TestExpand_Basic(t *testing.T) {
	vars := map[string]any{
		"app.name":     "shop",
		"app.port":     8080,
		"security.tls": true,
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single placeholder", input: "name: ${app.name}", want: "name: shop"},
		{name: "multiple placeholders", input: "${app.name}:${app.port}", want: "shop:8080"},
		{name: "boolean value", input: "tls=${security.tls}", want: "tls=true"},
		{name: "no placeholders", input: "plain text", want: "plain text"},
		{name: "empty string", input: "", want: ""},
		{name: "adjacent text", input: "pre${app.name}post", want: "preshoppost"},
		{name: "dollar without braces untouched", input: "echo $HOME ${app.name}", want: "echo $HOME shop"},
		{name: "missing kept by default", input: "${unknown.path}", want: "${unknown.path}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.input, vars)
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpand_MissingActions(t *testing.T) {
	vars := map[string]any{"present": "yes"}

	t.Run("keep", func(t *testing.T) {
		exp := NewExpander(WithMissingAction(MissingKeep))
		got, err := exp.Expand("${present} ${absent}", vars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "yes ${absent}" {
			t.Errorf("got %q, want %q", got, "yes ${absent}")
		}
	})

	t.Run("empty", func(t *testing.T) {
		exp := NewExpander(WithMissingAction(MissingEmpty))
		got, err := exp.Expand("${present} ${absent}", vars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "yes " {
			t.Errorf("got %q, want %q", got, "yes ")
		}
	})

	t.Run("error", func(t *testing.T) {
		exp := NewExpander(WithMissingAction(MissingError))
		_, err := exp.Expand("${absent.one} ${absent.two}", vars)
		var uvErr *UndefinedVariableError
		if !errors.As(err, &uvErr) {
			t.Fatalf("error type = %T, want *UndefinedVariableError", err)
		}
		if len(uvErr.Names) != 2 {
			t.Errorf("Names = %v, want both missing variables", uvErr.Names)
		}
	})
}

func TestExpandAll(t *testing.T) {
	vars := map[string]any{"dir": "conf"}

	got, err := NewExpander().ExpandAll([]string{"${dir}/a.yaml", "${dir}/b.yaml"}, vars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"conf/a.yaml", "conf/b.yaml"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ExpandAll[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	nilResult, err := NewExpander().ExpandAll(nil, vars)
	if err != nil || nilResult != nil {
		t.Errorf("ExpandAll(nil) = %v, %v, want nil, nil", nilResult, err)
	}
}

func TestMustExpand_PanicsOnMissing(t *testing.T) {
	exp := NewExpander(WithMissingAction(MissingError))

	defer func() {
		if recover() == nil {
			t.Error("MustExpand did not panic on missing variable")
		}
	}()
	exp.MustExpand("${absent}", nil)
}
