package commits

import "strings"

// noCommitsLine is the placeholder block for a repository with no recent commits.
const noCommitsLine = "No commits in the last 24 hours"

// Summarize deduplicates records by message and groups the survivors by
// commit type, rendered as a heading plus list items per non-empty group in
// display order.
//
// Deduplication is case-insensitive on the message text alone and keeps the
// first occurrence, so a message repeated under a different type is still
// dropped.
func Summarize(records []Record) []string {
	if len(records) == 0 {
		return []string{noCommitsLine}
	}

	seen := make(map[string]struct{}, len(records))
	grouped := make(map[TypeTag][]string)

	for _, record := range records {
		key := strings.ToLower(record.Message)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		tag := record.Type.Canonical()
		grouped[tag] = append(grouped[tag], record.Message)
	}

	var lines []string
	for _, tag := range DisplayOrder {
		messages := grouped[tag]
		if len(messages) == 0 {
			continue
		}
		lines = append(lines, tag.Label()+":")
		for _, message := range messages {
			lines = append(lines, "- "+message)
		}
	}
	return lines
}
