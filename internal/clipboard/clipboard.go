// Package clipboard copies the finished report to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Copy places text on the system clipboard. Failure is expected on headless
// machines; callers degrade to a warning.
func Copy(text string) error {
	if text == "" {
		return errors.New("nothing to copy")
	}
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}
