package git

import (
	"bufio"
	"io"
	"strings"

	"github.com/Attamusc/standup-cli/internal/commits"
)

const (
	// recordMarker starts each commit's entry in the raw log stream. The
	// marker is injected via --pretty so it cannot appear in stat lines.
	recordMarker = "__COMMIT__"

	// fieldSep separates the marker from the subject text. The unit
	// separator is effectively impossible to type into a commit subject.
	fieldSep = "\x1f"

	// minStatFields is the field count of a well-formed numstat line:
	// additions, deletions, path. Binary files report "-" placeholders but
	// still split into three fields.
	minStatFields = 3
)

var boundaryPrefix = recordMarker + fieldSep

// decodeState tracks where the decoder is between record boundaries.
type decodeState int

const (
	// awaitingBoundary is the initial state, before the first marker. Any
	// stray non-boundary lines here are discarded.
	awaitingBoundary decodeState = iota

	// accumulatingStats means a record is open and numstat lines belong
	// to it until the next boundary or end of input.
	accumulatingStats
)

// decoder turns raw `git log --pretty=__COMMIT__%x1f%s --numstat` output
// into commit records, preserving the order the stream emitted.
type decoder struct {
	state   decodeState
	current commits.Record
	records []commits.Record
}

// DecodeLog reads an entire log stream and returns the decoded records.
// Empty input yields an empty slice, not an error.
func DecodeLog(r io.Reader) ([]commits.Record, error) {
	d := &decoder{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		d.feed(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	d.finalize()
	return d.records, nil
}

// feed advances the state machine by one line.
func (d *decoder) feed(line string) {
	if subject, ok := strings.CutPrefix(line, boundaryPrefix); ok {
		d.finalize()

		tag, message := commits.ParseSubject(subject)
		d.current = commits.Record{
			Type:    tag.Canonical(),
			Message: message,
		}
		d.state = accumulatingStats
		return
	}

	if d.state != accumulatingStats {
		return
	}
	if strings.TrimSpace(line) == "" {
		return
	}

	// Lines with fewer fields (e.g. the blank separators git emits around
	// numstat blocks) are ignored rather than counted.
	if len(strings.Split(line, "\t")) >= minStatFields {
		d.current.FilesChanged++
	}
}

// finalize appends the in-progress record, if any, and resets the state.
func (d *decoder) finalize() {
	if d.state == accumulatingStats {
		d.records = append(d.records, d.current)
	}
	d.state = awaitingBoundary
	d.current = commits.Record{}
}
