package util_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/buildbarn/bb-pathlib/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestSlogErrorLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	util.NewSlogErrorLogger(logger).Log(status.Error(codes.InvalidArgument, "Invalid path"))
	require.Equal(t, "level=ERROR msg=\"rpc error: code = InvalidArgument desc = Invalid path\"\n", buf.String())
}
