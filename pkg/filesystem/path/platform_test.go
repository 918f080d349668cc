package path_test

import (
	"testing"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/testutil"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestPlatform(t *testing.T) {
	t.Run("Parse", func(t *testing.T) {
		p, err := path.ParsePlatform("posix")
		require.NoError(t, err)
		require.Equal(t, path.PlatformPOSIX, p)
		require.Same(t, path.POSIX, p.Flavor())

		p, err = path.ParsePlatform("windows")
		require.NoError(t, err)
		require.Equal(t, path.PlatformWindows, p)
		require.Same(t, path.Windows, p.Flavor())

		_, err = path.ParsePlatform("plan9")
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Unknown platform \"plan9\": expected \"posix\" or \"windows\""), err)
	})

	t.Run("Flag", func(t *testing.T) {
		p := path.LocalPlatform
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.Var(&p, "platform", "Path flavor")
		require.NoError(t, fs.Parse([]string{"--platform=windows"}))
		require.Equal(t, path.PlatformWindows, p)
		require.Equal(t, "windows", fs.Lookup("platform").Value.String())
		require.Equal(t, "platform", fs.Lookup("platform").Value.Type())

		require.Error(t, fs.Parse([]string{"--platform=dos"}))
		require.Equal(t, path.PlatformWindows, p)
	})

	t.Run("Flavors", func(t *testing.T) {
		require.Equal(t, "posix", path.POSIX.Name())
		require.Equal(t, "/", path.POSIX.Separator())
		require.True(t, path.POSIX.IsCaseSensitive())
		require.False(t, path.POSIX.SupportsDrives())

		require.Equal(t, "windows", path.Windows.String())
		require.Equal(t, "\\", path.Windows.Separator())
		require.False(t, path.Windows.IsCaseSensitive())
		require.True(t, path.Windows.SupportsDrives())
		require.Equal(t, ".", path.Windows.CurrentToken())
		require.Equal(t, "..", path.Windows.ParentToken())
	})
}
