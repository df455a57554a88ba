package resolver

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/reqvar/reqvar/packages/dynamic"
	"github.com/reqvar/reqvar/packages/scope"
)

func newStore(environment, collection map[string]string) *scope.Store {
	return scope.NewStore(scope.NewScopeFrom(environment), scope.NewScopeFrom(collection))
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		environment map[string]string
		expected    string
		unresolved  []string
	}{
		{
			name:     "no placeholders",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:        "simple lookup",
			input:       "{{baseUrl}}/users",
			environment: map[string]string{"baseUrl": "https://api.test.com"},
			expected:    "https://api.test.com/users",
		},
		{
			name:        "multiple placeholders",
			input:       "{{scheme}}://{{host}}/health",
			environment: map[string]string{"scheme": "https", "host": "api.test.com"},
			expected:    "https://api.test.com/health",
		},
		{
			name:        "unresolved left literal",
			input:       "{{baseUrl}}/users/{{userId}}",
			environment: map[string]string{"baseUrl": "https://api.test.com"},
			expected:    "https://api.test.com/users/{{userId}}",
			unresolved:  []string{"userId"},
		},
		{
			name:       "unresolved deduplicated in first-seen order",
			input:      "{{b}} {{a}} {{b}} {{a}}",
			expected:   "{{b}} {{a}} {{b}} {{a}}",
			unresolved: []string{"b", "a"},
		},
		{
			name:       "unknown dynamic reference keeps dollar prefix",
			input:      "{{$notAGenerator}}",
			expected:   "{{$notAGenerator}}",
			unresolved: []string{"$notAGenerator"},
		},
		{
			name:        "malformed placeholders are inert",
			input:       "{{no space}} {{9digit}} {{dash-ed}} {{unclosed {{}}",
			environment: map[string]string{"no": "x", "unclosed": "y"},
			expected:    "{{no space}} {{9digit}} {{dash-ed}} {{unclosed {{}}",
		},
		{
			name:        "surrounding text preserved exactly",
			input:       `{"user": "{{name}}", "note": "{ not a placeholder }"}`,
			environment: map[string]string{"name": "ada"},
			expected:    `{"user": "ada", "note": "{ not a placeholder }"}`,
		},
		{
			name:        "empty value substitutes to nothing",
			input:       "[{{empty}}]",
			environment: map[string]string{"empty": ""},
			expected:    "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Substitute(tt.input, newStore(tt.environment, nil), dynamic.NewRegistry())

			if result.Text != tt.expected {
				t.Errorf("Substitute(%q) = %q, want %q", tt.input, result.Text, tt.expected)
			}
			assertNames(t, "Unresolved", result.Unresolved, tt.unresolved)
			if len(result.Diagnostics) != 0 {
				t.Errorf("unexpected diagnostics: %v", result.Diagnostics)
			}
		})
	}
}

func assertNames(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", label, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %q, want %q", label, i, got[i], want[i])
		}
	}
}

func TestSubstituteNesting(t *testing.T) {
	store := newStore(map[string]string{
		"A": "{{B}}",
		"B": "{{C}}",
		"C": "final",
	}, nil)

	result := Substitute("{{A}}", store, dynamic.NewRegistry())

	if result.Text != "final" {
		t.Errorf("Text = %q, want %q", result.Text, "final")
	}
	if !result.Clean() {
		t.Errorf("expected clean result, got unresolved=%v diagnostics=%v",
			result.Unresolved, result.Diagnostics)
	}
}

func TestSubstituteNestedInsideLargerValue(t *testing.T) {
	store := newStore(map[string]string{
		"endpoint": "{{baseUrl}}/v2",
		"baseUrl":  "https://api.test.com",
	}, nil)

	result := Substitute("GET {{endpoint}}/users", store, dynamic.NewRegistry())

	if result.Text != "GET https://api.test.com/v2/users" {
		t.Errorf("Text = %q", result.Text)
	}
}

func TestSubstituteDepthCap(t *testing.T) {
	// A chain of 11 variables, each referencing the next.
	vars := make(map[string]string)
	for i := 1; i <= 10; i++ {
		vars[fmt.Sprintf("v%d", i)] = fmt.Sprintf("{{v%d}}", i+1)
	}
	vars["v11"] = "end"
	store := newStore(vars, nil)

	result := Substitute("{{v1}}", store, dynamic.NewRegistry())

	if !strings.Contains(result.Text, "{{") {
		t.Errorf("expected a literal placeholder to remain, got %q", result.Text)
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("Diagnostics = %v, want exactly one", result.Diagnostics)
	}
	if result.Diagnostics[0].Kind != MaxDepthExceeded {
		t.Errorf("diagnostic kind = %v, want MaxDepthExceeded", result.Diagnostics[0].Kind)
	}
	if len(result.Unresolved) != 0 {
		t.Errorf("depth cap is a diagnostic, not an unresolved name: %v", result.Unresolved)
	}
}

func TestSubstituteChainWithinDepthCap(t *testing.T) {
	vars := make(map[string]string)
	for i := 1; i <= 8; i++ {
		vars[fmt.Sprintf("v%d", i)] = fmt.Sprintf("{{v%d}}", i+1)
	}
	vars["v9"] = "done"
	store := newStore(vars, nil)

	result := Substitute("{{v1}}", store, dynamic.NewRegistry())

	if result.Text != "done" {
		t.Errorf("Text = %q, want %q", result.Text, "done")
	}
	if !result.Clean() {
		t.Errorf("chain within the cap must resolve cleanly: %v", result.Diagnostics)
	}
}

func TestSubstituteCycleDetection(t *testing.T) {
	tests := []struct {
		name  string
		vars  map[string]string
		input string
	}{
		{
			name:  "two variable cycle",
			vars:  map[string]string{"A": "{{B}}", "B": "{{A}}"},
			input: "{{A}}",
		},
		{
			name:  "self reference",
			vars:  map[string]string{"loop": "again {{loop}}"},
			input: "{{loop}}",
		},
		{
			name:  "three variable cycle",
			vars:  map[string]string{"A": "{{B}}", "B": "{{C}}", "C": "{{A}}"},
			input: "{{A}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Substitute(tt.input, newStore(tt.vars, nil), dynamic.NewRegistry())

			if len(result.Diagnostics) == 0 {
				t.Fatal("expected a CircularReference diagnostic")
			}
			for _, d := range result.Diagnostics {
				if d.Kind != CircularReference {
					t.Errorf("diagnostic kind = %v, want CircularReference", d.Kind)
				}
			}
			if !strings.Contains(result.Text, "{{") {
				t.Errorf("cycle must leave a literal placeholder, got %q", result.Text)
			}
		})
	}
}

func TestSubstituteSiblingsDoNotShareCycleState(t *testing.T) {
	// The same variable expanded twice as siblings is repetition, not a cycle.
	store := newStore(map[string]string{
		"inner": "x",
		"outer": "{{inner}} and {{inner}}",
	}, nil)

	result := Substitute("{{outer}} / {{outer}}", store, dynamic.NewRegistry())

	if result.Text != "x and x / x and x" {
		t.Errorf("Text = %q", result.Text)
	}
	if !result.Clean() {
		t.Errorf("sibling expansion flagged as cycle: %v", result.Diagnostics)
	}
}

func TestSubstituteIsolatesFailures(t *testing.T) {
	// One bad reference must not stop the rest of the text from resolving.
	store := newStore(map[string]string{
		"good": "ok",
		"loop": "{{loop}}",
	}, nil)

	result := Substitute("{{good}} {{missing}} {{loop}} {{good}}", store, dynamic.NewRegistry())

	if result.Text != "ok {{missing}} {{loop}} ok" {
		t.Errorf("Text = %q", result.Text)
	}
	assertNames(t, "Unresolved", result.Unresolved, []string{"missing"})
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != CircularReference {
		t.Errorf("Diagnostics = %v", result.Diagnostics)
	}
}

func TestSubstitutePrecedence(t *testing.T) {
	store := newStore(map[string]string{"token": "from-environment"}, map[string]string{"token": "from-collection"})

	result := Substitute("{{token}}", store, dynamic.NewRegistry())
	if result.Text != "from-environment" {
		t.Errorf("environment should shadow collection, got %q", result.Text)
	}

	if err := store.SetExtracted("token", "from-response"); err != nil {
		t.Fatal(err)
	}
	result = Substitute("{{token}}", store, dynamic.NewRegistry())
	if result.Text != "from-response" {
		t.Errorf("extracted should shadow environment, got %q", result.Text)
	}
}

var uuidText = `[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}`

func TestSubstituteDynamicUniqueness(t *testing.T) {
	pattern := regexp.MustCompile(fmt.Sprintf(`^(%s)-(%s)$`, uuidText, uuidText))

	result := Substitute("{{$guid}}-{{$guid}}", newStore(nil, nil), dynamic.NewRegistry())

	m := pattern.FindStringSubmatch(result.Text)
	if m == nil {
		t.Fatalf("Text = %q, want two UUID v4 values", result.Text)
	}
	if m[1] == m[2] {
		t.Errorf("both {{$guid}} occurrences produced %q; each must draw independently", m[1])
	}
	if !result.Clean() {
		t.Errorf("unexpected unresolved/diagnostics: %v %v", result.Unresolved, result.Diagnostics)
	}
}

func TestSubstituteDynamicOutputIsTerminal(t *testing.T) {
	reg := dynamic.NewRegistry()
	reg.Register("looksNested", dynamic.CategoryText, "Value containing placeholder syntax", func() string {
		return "{{shouldStayLiteral}}"
	})

	result := Substitute("{{$looksNested}}", newStore(nil, nil), reg)

	if result.Text != "{{shouldStayLiteral}}" {
		t.Errorf("Text = %q; generator output must not be re-scanned", result.Text)
	}
	if len(result.Unresolved) != 0 {
		t.Errorf("Unresolved = %v, want none", result.Unresolved)
	}
}

func TestSubstituteDynamicInsideScopedValue(t *testing.T) {
	store := newStore(map[string]string{"requestId": "req-{{$randomObjectId}}"}, nil)

	result := Substitute("{{requestId}}", store, dynamic.NewRegistry())

	if !regexp.MustCompile(`^req-[0-9a-f]{24}$`).MatchString(result.Text) {
		t.Errorf("Text = %q", result.Text)
	}
}

func TestSubstituteReferentialTransparencyForScopedRefs(t *testing.T) {
	store := newStore(map[string]string{"a": "{{b}} end", "b": "stable"}, nil)

	first := Substitute("{{a}}", store, dynamic.NewRegistry())
	second := Substitute("{{a}}", store, dynamic.NewRegistry())

	if first.Text != second.Text {
		t.Errorf("same store state must produce the same output: %q vs %q", first.Text, second.Text)
	}
}

func TestSubstituteAll(t *testing.T) {
	store := newStore(map[string]string{"baseUrl": "https://api.test.com"}, nil)

	agg := SubstituteAll(map[string]string{
		"url":           "{{baseUrl}}/orders/{{orderId}}",
		"Authorization": "Bearer {{token}}",
		"X-Trace":       "{{token}}",
	}, store, dynamic.NewRegistry())

	if agg.Fields["url"] != "https://api.test.com/orders/{{orderId}}" {
		t.Errorf("url = %q", agg.Fields["url"])
	}
	if agg.Fields["Authorization"] != "Bearer {{token}}" {
		t.Errorf("Authorization = %q", agg.Fields["Authorization"])
	}
	// Sorted key order: Authorization, X-Trace, url. token appears once.
	assertNames(t, "Unresolved", agg.Unresolved, []string{"token", "orderId"})
}
