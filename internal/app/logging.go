package app

import (
	"log/slog"

	"github.com/arniber21/portfolio/internal/logging"
)

var appLog = logging.New("app")

// setStatusError shows status in the footer and logs it at error level with
// err and any extra key/value attrs.
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	appLog.Error(status, append([]any{slog.Any("error", err)}, attrs...)...)
}
