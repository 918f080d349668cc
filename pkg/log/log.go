package log

import (
	"io"
	"log/slog"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Names of the log formats accepted by CreateHandler().
const (
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
	JSONFormat   = "json"
)

// CreateHandler creates a slog.Handler that writes log records to w,
// using a level and format provided by name.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	var formatter charmlog.Formatter
	switch strings.ToLower(logFormat) {
	case TextFormat, "":
		formatter = charmlog.TextFormatter
	case LogfmtFormat:
		formatter = charmlog.LogfmtFormatter
	case JSONFormat:
		formatter = charmlog.JSONFormatter
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown log format %#v", logFormat)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	}), nil
}

// GetLevel converts the name of a log level to a level.
func GetLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(level) {
	case "debug", "trace":
		return charmlog.DebugLevel, nil
	case "info", "":
		return charmlog.InfoLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "error":
		return charmlog.ErrorLevel, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "Unknown log level %#v", level)
	}
}
