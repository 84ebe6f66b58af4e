package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/edustack-labs/coursectl/internal/core/ports/driving"
)

// TerminalConfirm builds a ConfirmFunc that asks a y/N question on the
// given streams. Anything but an explicit yes cancels. The commands pass
// it to the publish service; the TUI supplies its own confirmation step.
func TerminalConfirm(in io.Reader, out io.Writer) driving.ConfirmFunc {
	reader := bufio.NewReader(in)
	return func(prompt string) (bool, error) {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false, fmt.Errorf("read confirmation: %w", err)
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes", nil
	}
}
