package pathmodel_test

import (
	"testing"

	pathmodel "github.com/0xalexb/hjarta-pathmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_Resolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		base     string
		other    string
		complete string
	}{
		{
			name:     "relative file onto directory",
			base:     "/a/b/",
			other:    "c/d.txt",
			complete: "/a/b/c/d.txt",
		},
		{
			name:     "base file is replaced",
			base:     "/a/b/old.txt",
			other:    "new.txt",
			complete: "/a/b/new.txt",
		},
		{
			name:     "absolute other overrides",
			base:     "a/b",
			other:    "/c/d",
			complete: "/c/d",
		},
		{
			name:     "device other overrides",
			base:     "/a/b/",
			other:    "C:/x",
			complete: "C:/x",
		},
		{
			name:     "parent references are kept",
			base:     "/a/b/",
			other:    "../x",
			complete: "/a/b/../x",
		},
		{
			name:     "relative base stays relative",
			base:     "a/",
			other:    "b/",
			complete: "a/b/",
		},
		{
			name:     "empty other drops base file",
			base:     "/a/file",
			other:    "",
			complete: "/a/",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			base := pathmodel.Parse(testCase.base)

			fromPath := base.Resolve(pathmodel.Parse(testCase.other))
			fromString := base.ResolveString(testCase.other)

			assert.Equal(t, testCase.complete, fromPath.Complete())
			assert.True(t, fromPath.Equal(fromString))
			assert.False(t, fromPath.IsNormalized())
		})
	}
}

func TestPath_Resolve_AbsoluteOverride(t *testing.T) {
	t.Parallel()

	bases := []string{"", "a/b", "/x/y/", `C:/w/`}
	others := []string{"/c/d", "/", "D:", "E:/f/g.h"}

	for _, base := range bases {
		for _, other := range others {
			otherPath := pathmodel.Parse(other)
			resolved := pathmodel.Parse(base).Resolve(otherPath)

			assert.Equal(t, otherPath.Complete(), resolved.Complete(), "base %q other %q", base, other)
			assert.Equal(t, otherPath.Device(), resolved.Device(), "base %q other %q", base, other)
		}
	}
}

func TestPath_Resolve_Concatenation(t *testing.T) {
	t.Parallel()

	base := pathmodel.Parse(`C:\a\b\`, pathmodel.WithSeparator(`\`))
	other := pathmodel.Parse(`.\c\..\d\e.txt`, pathmodel.WithSeparator(`\`))

	resolved := base.Resolve(other)

	require.Equal(t, append(base.Folder(), other.Folder()...), resolved.Folder())
	require.Equal(t, other.File(), resolved.File())
	require.Equal(t, base.Device(), resolved.Device())
	require.Equal(t, base.IsAbsolute(), resolved.IsAbsolute())
	require.Equal(t, base.Separator(), resolved.Separator())
}

func TestPath_Resolve_ForeignSeparator(t *testing.T) {
	t.Parallel()

	base := pathmodel.Parse("/a/b/")
	other := pathmodel.Parse(`c\d`, pathmodel.WithSeparator(`\`))

	resolved := base.Resolve(other)

	require.Equal(t, `\`, resolved.Separator())
	require.Equal(t, `c\d`, resolved.Complete())
	require.False(t, resolved.IsAbsolute())
}

func TestPath_ResolveString_UsesBaseSeparator(t *testing.T) {
	t.Parallel()

	base := pathmodel.Parse(`C:\temp\`, pathmodel.WithSeparator(`\`))

	resolved := base.ResolveString(`logs\today.log`)

	require.Equal(t, []string{"temp", "logs"}, resolved.Folder())
	require.Equal(t, "today.log", resolved.File())
	require.Equal(t, `C:\temp\logs\today.log`, resolved.Complete())
}

func TestPath_ResolveNormalized(t *testing.T) {
	t.Parallel()

	base := pathmodel.Parse("/a/b/")

	fromPath := base.ResolveNormalized(pathmodel.Parse("../x"))
	fromString := base.ResolveNormalizedString("../x")

	require.Equal(t, "/a/x", fromPath.Complete())
	require.Equal(t, "/a/x", fromString.Complete())
	require.True(t, fromPath.IsNormalized())
	require.True(t, fromString.IsNormalized())
}

func TestPath_ResolveNormalized_CannotEscapeRoot(t *testing.T) {
	t.Parallel()

	resolved := pathmodel.Parse("/srv/").ResolveNormalizedString("../../../etc/passwd")

	require.Equal(t, "/etc/passwd", resolved.Complete())
}
