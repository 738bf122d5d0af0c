package commits

import (
	"testing"
)

func TestParseSubject_Conventional(t *testing.T) {
	tests := []struct {
		name        string
		subject     string
		wantType    TypeTag
		wantMessage string
	}{
		{
			name:        "plain feat",
			subject:     "feat: add login",
			wantType:    TypeFeat,
			wantMessage: "Add login",
		},
		{
			name:        "scoped fix with trailing period",
			subject:     "fix(auth): handle null token.",
			wantType:    TypeFix,
			wantMessage: "auth: Handle null token",
		},
		{
			name:        "uppercase type is lowercased",
			subject:     "FEAT: Add Login",
			wantType:    TypeFeat,
			wantMessage: "Add Login",
		},
		{
			name:        "breaking change marker is accepted and discarded",
			subject:     "feat(api)!: drop v1 endpoints",
			wantType:    TypeFeat,
			wantMessage: "api: Drop v1 endpoints",
		},
		{
			name:        "surrounding whitespace is trimmed",
			subject:     "  chore: tidy deps  ",
			wantType:    TypeChore,
			wantMessage: "Tidy deps",
		},
		{
			name:        "only one trailing period is stripped",
			subject:     "docs: update readme...",
			wantType:    TypeDocs,
			wantMessage: "Update readme..",
		},
		{
			name:        "unrecognized type token is preserved",
			subject:     "wip: half-done thing",
			wantType:    TypeTag("wip"),
			wantMessage: "Half-done thing",
		},
		{
			name:        "scope keeps its casing",
			subject:     "fix(API): retry timeouts",
			wantType:    TypeFix,
			wantMessage: "API: Retry timeouts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotMessage := ParseSubject(tt.subject)
			if gotType != tt.wantType {
				t.Errorf("type: expected %q, got %q", tt.wantType, gotType)
			}
			if gotMessage != tt.wantMessage {
				t.Errorf("message: expected %q, got %q", tt.wantMessage, gotMessage)
			}
		})
	}
}

func TestParseSubject_Fallback(t *testing.T) {
	tests := []struct {
		name        string
		subject     string
		wantMessage string
	}{
		{
			name:        "no colon at all",
			subject:     "weird subject line",
			wantMessage: "Weird subject line",
		},
		{
			name:        "numeric type token",
			subject:     "123: not a type",
			wantMessage: "123: not a type",
		},
		{
			name:        "empty description",
			subject:     "fix: ",
			wantMessage: "Fix:",
		},
		{
			name:        "empty subject",
			subject:     "",
			wantMessage: "",
		},
		{
			name:        "fallback still strips one period and capitalizes",
			subject:     "quick hack.",
			wantMessage: "Quick hack",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotMessage := ParseSubject(tt.subject)
			if gotType != TypeOther {
				t.Errorf("type: expected %q, got %q", TypeOther, gotType)
			}
			if gotMessage != tt.wantMessage {
				t.Errorf("message: expected %q, got %q", tt.wantMessage, gotMessage)
			}
		})
	}
}

func TestTypeTagCanonical(t *testing.T) {
	if got := TypeTag("wip").Canonical(); got != TypeOther {
		t.Errorf("expected unrecognized type to map to %q, got %q", TypeOther, got)
	}
	if got := TypeFeat.Canonical(); got != TypeFeat {
		t.Errorf("expected recognized type to be unchanged, got %q", got)
	}
}
