package runtime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpersAreDefinedExactlyOnce(t *testing.T) {
	for _, name := range []string{
		"_applyDecs",
		"_toPropertyKey",
		"_toPrimitive",
		"_setFunctionName",
		"_checkInRHS",
	} {
		assert.Equal(t, 1, strings.Count(Code, "function "+name+"("), "helper %q", name)
	}
}

func TestCodeTargetsModernSyntax(t *testing.T) {
	// The injected library claims ES2022, so declarations are const/let only
	assert.NotContains(t, Code, " var ")
	assert.False(t, strings.HasPrefix(Code, "var "))
	assert.NotContains(t, Code, "\nvar ")

	// The printer writes the text verbatim, so template literals would leak
	// backticks into output that the rest of the file never uses
	assert.NotContains(t, Code, "`")
}

func TestCodeEndsWithNewline(t *testing.T) {
	// The first statement of the transformed file is appended directly after
	// the library text
	require.True(t, strings.HasSuffix(Code, "\n"))
	require.False(t, strings.HasSuffix(Code, "\n\n"))
}

func TestErrorMessageCatalog(t *testing.T) {
	// Full messages are assembled at runtime from these pieces
	for _, fragment := range []string{
		`"A decorator"`,
		`"An initializer"`,
		`" must "`,
		`" a function"`,
		`" or undefined"`,
		`"field decorators"`,
		`"class decorators"`,
		`"accessor.get"`,
		`"accessor.set"`,
		`"accessor.init"`,
		"accessor decorators must return an object with get, set, or init properties or undefined",
		"attempted to call addInitializer after decoration was finished",
		"Attempted to access private element on non-instance",
		"@@toPrimitive must return a primitive value.",
		"right-hand side of 'in' should be an object, got ",
		") is not supported yet",
	} {
		assert.Contains(t, Code, fragment)
	}
}

func TestApplicationOrderIsFourPasses(t *testing.T) {
	// Static public, instance public, static private, instance private
	index := strings.Index(Code, "applyPass(8, false);")
	require.NotEqual(t, -1, index)
	rest := Code[index:]
	passes := []string{
		"applyPass(8, false);",
		"applyPass(0, false);",
		"applyPass(8, true);",
		"applyPass(0, true);",
	}
	for _, pass := range passes {
		next := strings.Index(rest, pass)
		require.NotEqual(t, -1, next, "pass %q", pass)
		rest = rest[next+len(pass):]
	}
}

func TestMetadataSymbolFallback(t *testing.T) {
	assert.Contains(t, Code, `Symbol.metadata || Symbol.for("Symbol.metadata")`)
}
