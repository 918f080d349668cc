package path_test

import (
	"testing"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
)

func TestPOSIXParser(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for raw, expected := range map[string]struct {
			anchor     path.Anchor
			components []string
		}{
			"":                 {path.Anchor{}, nil},
			".":                {path.Anchor{}, []string{"."}},
			"..":               {path.Anchor{}, []string{".."}},
			"/":                {path.Anchor{Root: "/"}, nil},
			"//":               {path.Anchor{Root: "/"}, nil},
			"///usr//bin/":     {path.Anchor{Root: "/"}, []string{"usr", "bin"}},
			"hello/../world":   {path.Anchor{}, []string{"hello", "..", "world"}},
			"./hello/":         {path.Anchor{}, []string{".", "hello"}},
			"C:\\Windows":      {path.Anchor{}, []string{"C:\\Windows"}},
			"/a/../../b":       {path.Anchor{Root: "/"}, []string{"a", "..", "..", "b"}},
			"foo/../foo/../fo": {path.Anchor{}, []string{"foo", "..", "foo", "..", "fo"}},
		} {
			t.Run(raw, func(t *testing.T) {
				anchor, components, err := path.POSIX.Parse(raw)
				require.NoError(t, err)
				require.Equal(t, expected.anchor, anchor)
				require.Equal(t, expected.components, components)
			})
		}
	})

	t.Run("NullByte", func(t *testing.T) {
		// The parser itself does not validate components.
		_, components, err := path.POSIX.Parse("a\x00b/c")
		require.NoError(t, err)
		require.Equal(t, []string{"a\x00b", "c"}, components)

		_, err = path.Parse(path.POSIX, "a\x00b/c")
		testutil.RequireEqualStatus(t, testutil.NewPathError(codes.InvalidArgument, path.ErrorReasonInvalidComponent, "Fragment 0: Invalid pathname component \"a\\x00b\": Path contains a null byte"), err)
	})
}
