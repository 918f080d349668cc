package path_test

import (
	"fmt"
	"testing"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
)

func TestValueWithName(t *testing.T) {
	t.Run("LiteralRetained", func(t *testing.T) {
		v, err := path.MustParse(path.POSIX, "/a/../b/c.txt").WithName("d.md")
		require.NoError(t, err)
		require.Equal(t, "/a/../b/d.md", v.LiteralString())
		require.Equal(t, "/b/d.md", v.NormalizedString())
		require.Equal(t, "d", v.Stem())
	})

	t.Run("LiteralReplacedBySimplified", func(t *testing.T) {
		v, err := path.MustParse(path.POSIX, "a/b/c/..").WithName("x")
		require.NoError(t, err)
		require.Equal(t, "a/x", v.LiteralString())
		require.Equal(t, "a/x", v.NormalizedString())
	})

	t.Run("NoName", func(t *testing.T) {
		for _, v := range []*path.Value{
			path.MustParse(path.POSIX, "/"),
			path.MustParse(path.POSIX, "."),
			path.MustParse(path.Windows, "C:\\"),
		} {
			_, err := v.WithName("x")
			testutil.RequireEqualStatus(t, testutil.NewPathError(codes.FailedPrecondition, path.ErrorReasonNoNameComponent, fmt.Sprintf("Path %#v has an empty name", v.LiteralString())), err)
			_, err = v.WithStem("x")
			require.Equal(t, path.ErrorReasonNoNameComponent, path.GetErrorReason(err))
			_, err = v.WithPureStem("x")
			require.Equal(t, path.ErrorReasonNoNameComponent, path.GetErrorReason(err))
			_, err = v.WithSuffix(".x")
			require.Equal(t, path.ErrorReasonNoNameComponent, path.GetErrorReason(err))
			_, err = v.WithSuffixes(".x")
			require.Equal(t, path.ErrorReasonNoNameComponent, path.GetErrorReason(err))
		}
	})

	t.Run("InvalidName", func(t *testing.T) {
		_, err := path.MustParse(path.POSIX, "a/b").WithName("c/d")
		testutil.RequireEqualStatus(t, testutil.NewPathError(codes.InvalidArgument, path.ErrorReasonInvalidComponent, "Pathname component \"c/d\" contains a separator"), err)
	})
}

func TestValueWithStem(t *testing.T) {
	v, err := path.MustParse(path.POSIX, "archive.tar.gz").WithStem("backup")
	require.NoError(t, err)
	require.Equal(t, "backup.gz", v.Name())

	_, err = path.MustParse(path.POSIX, "archive.tar.gz").WithStem("")
	testutil.RequireEqualStatus(t, testutil.NewPathError(codes.InvalidArgument, path.ErrorReasonInvalidComponent, "Stem is empty"), err)
}

func TestValueWithPureStem(t *testing.T) {
	v, err := path.MustParse(path.POSIX, "dir/archive.tar.gz").WithPureStem("backup")
	require.NoError(t, err)
	require.Equal(t, "dir/backup.tar.gz", v.NormalizedString())
	require.Equal(t, "backup", v.PureStem())
	require.Equal(t, []string{".tar", ".gz"}, v.Suffixes())

	v, err = path.MustParse(path.POSIX, "archive.tar.gz").WithPureStem(".hidden")
	require.NoError(t, err)
	require.Equal(t, ".hidden.tar.gz", v.Name())

	for pureStem, message := range map[string]string{
		"":        "Invalid pure stem \"\"",
		"backup.": "Invalid pure stem \"backup.\"",
		"a.b":     "Pure stem \"a.b\" contains suffixes",
	} {
		_, err := path.MustParse(path.POSIX, "archive.tar.gz").WithPureStem(pureStem)
		testutil.RequireEqualStatus(t, testutil.NewPathError(codes.InvalidArgument, path.ErrorReasonInvalidComponent, message), err)
	}
}

func TestValueWithSuffix(t *testing.T) {
	for name, expected := range map[string]map[string]string{
		"archive.tar.gz": {".bz2": "archive.tar.bz2", "": "archive.tar"},
		"README":         {".md": "README.md", "": "README"},
		".bashrc":        {".bak": ".bashrc.bak"},
	} {
		for suffix, expectedName := range expected {
			v, err := path.MustParse(path.POSIX, name).WithSuffix(suffix)
			require.NoError(t, err)
			require.Equal(t, expectedName, v.Name())
		}
	}

	for _, suffix := range []string{".", "md"} {
		_, err := path.MustParse(path.POSIX, "README").WithSuffix(suffix)
		testutil.RequireEqualStatus(t, testutil.NewPathError(codes.InvalidArgument, path.ErrorReasonInvalidComponent, "Invalid suffix \""+suffix+"\""), err)
	}
}

func TestValueWithSuffixes(t *testing.T) {
	v, err := path.MustParse(path.POSIX, "/src/archive.tar.gz").WithSuffixes(".zip")
	require.NoError(t, err)
	require.Equal(t, "/src/archive.zip", v.NormalizedString())
	require.Equal(t, []string{".zip"}, v.Suffixes())

	v, err = path.MustParse(path.POSIX, "/src/archive.tar.gz").WithSuffixes()
	require.NoError(t, err)
	require.Equal(t, "/src/archive", v.NormalizedString())

	v, err = path.MustParse(path.Windows, "C:\\dist\\app").WithSuffixes(".tar", ".xz")
	require.NoError(t, err)
	require.Equal(t, "C:\\dist\\app.tar.xz", v.NormalizedString())
	require.Equal(t, "app", v.PureStem())

	_, err = path.MustParse(path.POSIX, "archive.tar.gz").WithSuffixes(".tar", "gz")
	testutil.RequireEqualStatus(t, testutil.NewPathError(codes.InvalidArgument, path.ErrorReasonInvalidComponent, "Invalid suffix \"gz\""), err)

	t.Run("EmptySuffix", func(t *testing.T) {
		// Suffixes() of "a..b" contains a bare ".", which must be
		// accepted when it is followed by another suffix.
		original := path.MustParse(path.POSIX, "/src/a..b")
		require.Equal(t, []string{".", ".b"}, original.Suffixes())
		v, err := original.WithSuffixes(original.Suffixes()...)
		require.NoError(t, err)
		require.True(t, v.Equal(original))

		_, err = original.WithSuffixes(".b", ".")
		testutil.RequireEqualStatus(t, testutil.NewPathError(codes.InvalidArgument, path.ErrorReasonInvalidComponent, "Invalid suffix \".\""), err)
	})
}
