// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/saasboard/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error

	// write is swapped out in tests; the real clipboard needs a display.
	write = func(text string) error {
		initOnce.Do(func() {
			if err := clipboard.Init(); err != nil {
				initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
			}
		})
		if initErr != nil {
			return initErr
		}
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}
)

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	log := logger.WithComponent("clipboard")
	if err := write(text); err != nil {
		log.Warn("clipboard write failed", "error", err)
		return err
	}
	log.Debug("wrote text", "bytes", len(text))
	return nil
}
