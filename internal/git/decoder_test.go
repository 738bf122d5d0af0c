package git

import (
	"strings"
	"testing"

	"github.com/Attamusc/standup-cli/internal/commits"
)

// logStream builds a raw stream the way --pretty=format:__COMMIT__%x1f%s
// --numstat emits it.
func logStream(lines ...string) string {
	return strings.Join(lines, "\n")
}

func boundary(subject string) string {
	return recordMarker + fieldSep + subject
}

func TestDecodeLog_Empty(t *testing.T) {
	records, err := DecodeLog(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestDecodeLog_CountsWellFormedStatLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []commits.Record
	}{
		{
			name:  "single commit without stats",
			input: logStream(boundary("feat: add login")),
			want: []commits.Record{
				{Type: commits.TypeFeat, Message: "Add login"},
			},
		},
		{
			name: "stat lines increment the open record",
			input: logStream(
				boundary("fix(auth): handle null token."),
				"3\t1\tauth/token.go",
				"10\t2\tauth/token_test.go",
			),
			want: []commits.Record{
				{Type: commits.TypeFix, Message: "auth: Handle null token", FilesChanged: 2},
			},
		},
		{
			name: "binary placeholder still counts as a file",
			input: logStream(
				boundary("chore: add logo"),
				"-\t-\tassets/logo.png",
			),
			want: []commits.Record{
				{Type: commits.TypeChore, Message: "Add logo", FilesChanged: 1},
			},
		},
		{
			name: "short and blank lines are ignored",
			input: logStream(
				boundary("feat: add login"),
				"",
				"not-a-stat-line",
				"1\t1\tmain.go",
			),
			want: []commits.Record{
				{Type: commits.TypeFeat, Message: "Add login", FilesChanged: 1},
			},
		},
		{
			name: "multiple commits finalize on each boundary",
			input: logStream(
				boundary("feat: add login"),
				"1\t0\tlogin.go",
				"",
				boundary("fix: handle timeout"),
				"2\t2\tclient.go",
				"4\t0\tclient_test.go",
				"",
				boundary("weird subject line"),
			),
			want: []commits.Record{
				{Type: commits.TypeFeat, Message: "Add login", FilesChanged: 1},
				{Type: commits.TypeFix, Message: "Handle timeout", FilesChanged: 2},
				{Type: commits.TypeOther, Message: "Weird subject line"},
			},
		},
		{
			name: "stat lines before any boundary are discarded",
			input: logStream(
				"1\t1\tstray.go",
				boundary("fix: handle timeout"),
			),
			want: []commits.Record{
				{Type: commits.TypeFix, Message: "Handle timeout"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := DecodeLog(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(records) != len(tt.want) {
				t.Fatalf("expected %d records, got %d (%+v)", len(tt.want), len(records), records)
			}
			for i, want := range tt.want {
				if records[i] != want {
					t.Errorf("record %d: expected %+v, got %+v", i, want, records[i])
				}
			}
		})
	}
}

func TestDecodeLog_PreservesStreamOrder(t *testing.T) {
	input := logStream(
		boundary("fix: newest"),
		boundary("feat: older"),
		boundary("docs: oldest"),
	)

	records, err := DecodeLog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMessages := []string{"Newest", "Older", "Oldest"}
	if len(records) != len(wantMessages) {
		t.Fatalf("expected %d records, got %d", len(wantMessages), len(records))
	}
	for i, want := range wantMessages {
		if records[i].Message != want {
			t.Errorf("record %d: expected message %q, got %q", i, want, records[i].Message)
		}
	}
}
