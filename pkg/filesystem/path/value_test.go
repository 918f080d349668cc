package path_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
)

func getNormalizedStrings(values []*path.Value) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.NormalizedString())
	}
	return out
}

func TestValueConstruction(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		v, err := path.New(path.POSIX)
		require.NoError(t, err)
		require.Equal(t, path.Anchor{}, v.Anchor())
		require.Empty(t, v.Components())
		require.Equal(t, ".", v.NormalizedString())
		require.Equal(t, ".", v.LiteralString())
		require.True(t, v.Equal(path.MustParse(path.POSIX, ".")))
		require.True(t, v.Equal(path.MustParse(path.POSIX, "")))
	})

	t.Run("POSIXRepeatedParent", func(t *testing.T) {
		v := path.MustParse(path.POSIX, "foo/../foo/../foo")
		require.Equal(t, []string{"foo"}, v.Components())
		require.Equal(t, []string{"foo", "..", "foo", "..", "foo"}, v.LiteralComponents())
		require.Equal(t, "foo", v.NormalizedString())
		require.Equal(t, "foo/../foo/../foo", v.LiteralString())
		require.Equal(t, "foo/../foo/../foo", v.String())
	})

	t.Run("POSIXBoundedAtRoot", func(t *testing.T) {
		v := path.MustParse(path.POSIX, "/a/../../b")
		require.Equal(t, []string{"b"}, v.Components())
		require.Equal(t, path.Anchor{Root: "/"}, v.Anchor())
		require.Equal(t, "/b", v.NormalizedString())
		require.Equal(t, "/a/../../b", v.LiteralString())
	})

	t.Run("POSIXLeadingParentRetained", func(t *testing.T) {
		v := path.MustParse(path.POSIX, "../a/../..")
		require.Equal(t, []string{"..", ".."}, v.Components())
		require.Equal(t, "../..", v.NormalizedString())

		v = path.MustParse(path.POSIX, "./a/./b/")
		require.Equal(t, []string{"a", "b"}, v.Components())
		require.Equal(t, "./a/./b", v.LiteralString())
	})

	t.Run("WindowsAnchor", func(t *testing.T) {
		v := path.MustParse(path.Windows, "C:\\a\\b")
		require.Equal(t, path.Anchor{Drive: "C:", Root: "\\"}, v.Anchor())
		require.Equal(t, "C:", v.Drive())
		require.Equal(t, "\\", v.Root())
		require.Equal(t, []string{"a", "b"}, v.Components())
		require.Equal(t, "C:\\a\\b", v.NormalizedString())

		v = path.MustParse(path.Windows, "c:/a/../b/")
		require.Equal(t, "c:\\b", v.NormalizedString())
		require.Equal(t, "c:\\a\\..\\b", v.LiteralString())

		v = path.MustParse(path.Windows, "C:")
		require.Equal(t, "C:", v.NormalizedString())

		v = path.MustParse(path.Windows, "C:..\\a")
		require.Equal(t, []string{"a"}, v.Components())
		require.Equal(t, "C:a", v.NormalizedString())
		require.Equal(t, "C:..\\a", v.LiteralString())

		v = path.MustParse(path.Windows, "C:..")
		require.Empty(t, v.Components())
		require.Equal(t, "C:", v.NormalizedString())

		v = path.MustParse(path.Windows, "C:\\..\\a")
		require.Equal(t, "C:\\a", v.NormalizedString())

		v = path.MustParse(path.Windows, "\\\\server")
		require.Equal(t, path.Anchor{Drive: "\\\\server"}, v.Anchor())
		require.False(t, v.IsAbsolute())
		require.Equal(t, "\\\\server\\x", v.MustChild("x").NormalizedString())
	})

	t.Run("MultipleFragments", func(t *testing.T) {
		base := path.MustParse(path.POSIX, "/usr")
		v, err := path.New(path.POSIX, base, path.Raw("bin/../lib"))
		require.NoError(t, err)
		require.Equal(t, "/usr/bin/../lib", v.LiteralString())
		require.Equal(t, "/usr/lib", v.NormalizedString())

		v, err = path.New(path.POSIX, path.Raw("a"), path.MustParse(path.POSIX, "b/c"))
		require.NoError(t, err)
		require.Equal(t, "a/b/c", v.NormalizedString())

		v = path.MustParse(path.POSIX, "/usr", "local", "bin")
		require.Equal(t, "/usr/local/bin", v.NormalizedString())
	})

	t.Run("AnchoredFragmentRejected", func(t *testing.T) {
		_, err := path.New(path.POSIX, path.Raw("a"), path.MustParse(path.POSIX, "/b"))
		testutil.RequireEqualStatus(t, testutil.NewPathError(codes.InvalidArgument, path.ErrorReasonAnchoredFragmentRejected, "Fragment 1: Cannot join path anchored at \"/\""), err)
	})

	t.Run("FlavorMismatch", func(t *testing.T) {
		_, err := path.New(path.POSIX, path.MustParse(path.Windows, "a"))
		testutil.RequireEqualStatus(t, testutil.NewPathError(codes.InvalidArgument, path.ErrorReasonFlavorMismatch, "Fragment 0: Cannot combine windows path \"a\" with posix paths"), err)
	})

	t.Run("MalformedAnchor", func(t *testing.T) {
		_, err := path.Parse(path.Windows, "\\\\\\share")
		testutil.RequireEqualStatus(t, testutil.NewPathError(codes.InvalidArgument, path.ErrorReasonMalformedAnchor, "Fragment 0: Invalid UNC path: expected a non-empty server name"), err)

		require.Panics(t, func() { path.MustParse(path.Windows, "\\\\\\share") })
	})
}

func TestValueSimplificationIsIdempotent(t *testing.T) {
	for _, flavor := range []*path.Flavor{path.POSIX, path.Windows} {
		for _, raw := range []string{
			"",
			".",
			"..",
			"../..",
			"a/../..",
			"a/./b/../../c",
			"/",
			"/..",
			"/a/../../b/./c",
			"x/y/z/../../..",
		} {
			t.Run(flavor.Name()+"/"+raw, func(t *testing.T) {
				v1 := path.MustParse(flavor, raw)
				v2 := path.MustParse(flavor, v1.NormalizedString())
				require.Equal(t, v1.Components(), v2.Components())
				require.True(t, v1.Equal(v2))
			})
		}
	}
}

func TestValueEquality(t *testing.T) {
	t.Run("LiteralComponentsIgnored", func(t *testing.T) {
		a := path.MustParse(path.POSIX, "a/./b/../c")
		b := path.MustParse(path.POSIX, "a/c")
		require.True(t, a.Equal(b))
		require.Equal(t, a.Key(), b.Key())
		require.Equal(t, a.Hash(), b.Hash())
		require.NotEqual(t, a.LiteralString(), b.LiteralString())
	})

	t.Run("POSIXCaseSensitive", func(t *testing.T) {
		a := path.MustParse(path.POSIX, "/A")
		b := path.MustParse(path.POSIX, "/a")
		require.False(t, a.Equal(b))
		require.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("WindowsCaseInsensitive", func(t *testing.T) {
		a := path.MustParse(path.Windows, "C:\\A\\Ärger")
		b := path.MustParse(path.Windows, "c:/a/ärger")
		require.True(t, a.Equal(b))
		require.Equal(t, a.Hash(), b.Hash())
		require.Equal(t, "C:\\A\\Ärger", a.NormalizedString())
	})

	t.Run("AnchorIsSignificant", func(t *testing.T) {
		require.False(t, path.MustParse(path.POSIX, "/a").Equal(path.MustParse(path.POSIX, "a")))
		require.False(t, path.MustParse(path.Windows, "C:a").Equal(path.MustParse(path.Windows, "C:\\a")))
		require.False(t, path.MustParse(path.Windows, "C:\\a").Equal(path.MustParse(path.Windows, "D:\\a")))
	})

	t.Run("FlavorIsSignificant", func(t *testing.T) {
		require.False(t, path.MustParse(path.POSIX, "a").Equal(path.MustParse(path.Windows, "a")))
	})

	t.Run("ComponentBoundaries", func(t *testing.T) {
		require.False(t, path.MustParse(path.POSIX, "ab/c").Equal(path.MustParse(path.POSIX, "a/bc")))
	})

	t.Run("MapKey", func(t *testing.T) {
		m := map[path.Key]int{}
		for _, raw := range []string{"C:\\a", "c:\\A", "C:\\a\\b\\..", "C:\\b"} {
			m[path.MustParse(path.Windows, raw).Key()]++
		}
		require.Len(t, m, 2)
	})
}

func TestValueNameDecomposition(t *testing.T) {
	for raw, expected := range map[string]struct {
		name     string
		stem     string
		suffix   string
		pureStem string
		suffixes []string
	}{
		"archive.tar.gz":      {"archive.tar.gz", "archive.tar", ".gz", "archive", []string{".tar", ".gz"}},
		"dir/file.txt":        {"file.txt", "file", ".txt", "file", []string{".txt"}},
		".bashrc":             {".bashrc", ".bashrc", "", ".bashrc", nil},
		"..hidden.tar.gz":     {"..hidden.tar.gz", "..hidden.tar", ".gz", "..hidden", []string{".tar", ".gz"}},
		"foo.":                {"foo.", "foo.", "", "foo.", nil},
		"a..b":                {"a..b", "a.", ".b", "a", []string{".", ".b"}},
		"Makefile":            {"Makefile", "Makefile", "", "Makefile", nil},
		"..":                  {"..", "..", "", "..", nil},
		"/":                   {"", "", "", "", nil},
		".":                   {"", "", "", "", nil},
		"/usr/lib/../lib64.d": {"lib64.d", "lib64", ".d", "lib64", []string{".d"}},
	} {
		t.Run(raw, func(t *testing.T) {
			v := path.MustParse(path.POSIX, raw)
			require.Equal(t, expected.name, v.Name())
			require.Equal(t, expected.stem, v.Stem())
			require.Equal(t, expected.suffix, v.Suffix())
			require.Equal(t, expected.pureStem, v.PureStem())
			require.Equal(t, expected.suffixes, v.Suffixes())
			require.Equal(t, v.Name(), v.PureStem()+strings.Join(v.Suffixes(), ""))
			require.Equal(t, v.Name(), v.Stem()+v.Suffix())
		})
	}
}

func TestValueParents(t *testing.T) {
	t.Run("Absolute", func(t *testing.T) {
		v := path.MustParse(path.POSIX, "/a/b/../c/d")
		require.Equal(t, "/a/c", v.Parent().NormalizedString())
		require.Equal(t, "/a/c", v.Parent().LiteralString())
		require.Equal(t, []string{"/a/c", "/a", "/"}, getNormalizedStrings(slices.Collect(v.Parents())))
	})

	t.Run("Relative", func(t *testing.T) {
		v := path.MustParse(path.Windows, "a\\b")
		require.Equal(t, []string{"a", "."}, getNormalizedStrings(slices.Collect(v.Parents())))
	})

	t.Run("Drive", func(t *testing.T) {
		v := path.MustParse(path.Windows, "\\\\server\\share\\x\\y")
		require.Equal(t, []string{"\\\\server\\share\\x", "\\\\server\\share\\"}, getNormalizedStrings(slices.Collect(v.Parents())))
	})

	t.Run("Identity", func(t *testing.T) {
		for _, v := range []*path.Value{
			path.MustParse(path.POSIX, "/"),
			path.MustParse(path.POSIX, "."),
			path.MustParse(path.Windows, "C:\\"),
			path.MustParse(path.Windows, "C:"),
		} {
			require.Same(t, v, v.Parent())
			require.Empty(t, slices.Collect(v.Parents()))
		}
	})

	t.Run("EarlyTermination", func(t *testing.T) {
		count := 0
		for range path.MustParse(path.POSIX, "/a/b/c/d").Parents() {
			count++
			if count == 2 {
				break
			}
		}
		require.Equal(t, 2, count)
	})

	t.Run("JoinPolicyInherited", func(t *testing.T) {
		v := path.MustParse(path.POSIX, "/a/b").WithJoinPolicy(path.JoinRelaxed)
		require.Equal(t, path.JoinRelaxed, v.Parent().JoinPolicy())
	})
}

func TestValueProperties(t *testing.T) {
	t.Run("IsAbsolute", func(t *testing.T) {
		require.True(t, path.MustParse(path.POSIX, "/a").IsAbsolute())
		require.False(t, path.MustParse(path.POSIX, "a").IsAbsolute())
		require.True(t, path.MustParse(path.Windows, "C:\\a").IsAbsolute())
		require.True(t, path.MustParse(path.Windows, "\\\\server\\share").IsAbsolute())
		require.False(t, path.MustParse(path.Windows, "\\a").IsAbsolute())
		require.False(t, path.MustParse(path.Windows, "C:a").IsAbsolute())
	})

	t.Run("IsReserved", func(t *testing.T) {
		require.True(t, path.MustParse(path.Windows, "C:\\dir\\nul.txt").IsReserved())
		require.True(t, path.MustParse(path.Windows, "COM1").IsReserved())
		require.True(t, path.MustParse(path.Windows, "lpt9.tar.gz").IsReserved())
		require.False(t, path.MustParse(path.Windows, "CONSOLE").IsReserved())
		require.False(t, path.MustParse(path.Windows, "C:\\").IsReserved())
		require.False(t, path.MustParse(path.POSIX, "NUL").IsReserved())
	})

	t.Run("AsPOSIX", func(t *testing.T) {
		require.Equal(t, "C:/a/b", path.MustParse(path.Windows, "C:\\a\\b").AsPOSIX())
		require.Equal(t, "//server/share/x", path.MustParse(path.Windows, "\\\\server\\share\\x").AsPOSIX())
		require.Equal(t, "a\\b/c", path.MustParse(path.POSIX, "a\\b/c").AsPOSIX())
	})

	t.Run("Parts", func(t *testing.T) {
		require.Equal(t, []string{"C:\\", "a", "b"}, path.MustParse(path.Windows, "C:\\a\\.\\b").Parts())
		require.Equal(t, []string{"/", "usr"}, path.MustParse(path.POSIX, "/usr").Parts())
		require.Equal(t, []string{"a", "b"}, path.MustParse(path.POSIX, "a/b").Parts())
		require.Empty(t, path.MustParse(path.POSIX, ".").Parts())
	})

	t.Run("ComponentsAreCopies", func(t *testing.T) {
		v := path.MustParse(path.POSIX, "a/b")
		components := v.Components()
		components[0] = "x"
		require.Equal(t, "a/b", v.NormalizedString())
	})
}
