package api

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/nyanrus/decs/internal/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loweredEmptyClass = "let _initClass;\nlet Foo = class Foo {\n};\n" +
	"[Foo, _initClass] = _applyDecs(Foo, [], [dec], \"Foo\").c;\nif (_initClass)\n  _initClass();\n"

func TestTransformLowersClassDecorators(t *testing.T) {
	result := Transform("@dec class Foo {}", TransformOptions{})
	require.Empty(t, result.Errors)
	require.Empty(t, result.Warnings)
	assert.Equal(t, runtime.Code+loweredEmptyClass, string(result.JS))
	assert.Empty(t, result.JSSourceMap)
}

func TestTransformLowersMemberDecorators(t *testing.T) {
	result := Transform("class Foo { @log greet() {} }", TransformOptions{})
	require.Empty(t, result.Errors)
	assert.Equal(t, runtime.Code+
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, \"greet\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  greet() {\n  }\n}\n",
		string(result.JS))
}

func TestTransformInjectsRuntimeOnce(t *testing.T) {
	result := Transform("@a class A {}\n@b class B {}", TransformOptions{})
	require.Empty(t, result.Errors)
	js := string(result.JS)
	assert.Equal(t, 1, strings.Count(js, "function _applyDecs("))
	assert.True(t, strings.HasPrefix(js, runtime.Code))
}

func TestTransformPassthrough(t *testing.T) {
	// Without a single "@" byte the input cannot contain decorators and is
	// returned without being parsed
	input := "let kept = 1;\n"
	result := Transform(input, TransformOptions{})
	require.Empty(t, result.Errors)
	require.Empty(t, result.Warnings)
	assert.Equal(t, input, string(result.JS))
	assert.Empty(t, result.JSSourceMap)

	// The "@" scan happens before any syntax checking
	input = "class {"
	result = Transform(input, TransformOptions{})
	require.Empty(t, result.Errors)
	assert.Equal(t, input, string(result.JS))

	// An "@" inside a string forces a parse, but with no decorators collected
	// the original text still comes back byte-for-byte
	input = "let s = '@dec';\nclass Foo {\n}\n"
	result = Transform(input, TransformOptions{})
	require.Empty(t, result.Errors)
	assert.Equal(t, input, string(result.JS))

	// Once a parse happens, syntax errors are reported
	result = Transform("let s = '@'; class {", TransformOptions{})
	require.NotEmpty(t, result.Errors)
	assert.Empty(t, result.JS)
}

func TestTransformLoaderTS(t *testing.T) {
	// Annotations only disappear when a decorator forces a rewrite
	result := Transform("@dec class Foo { m(x: number): void {} }", TransformOptions{Loader: LoaderTS})
	require.Empty(t, result.Errors)
	assert.Equal(t, runtime.Code+
		"let _initClass;\nlet Foo = class Foo {\n  m(x) {\n  }\n};\n[Foo, _initClass] = _applyDecs(Foo, [], [dec], \"Foo\").c;\nif (_initClass)\n  _initClass();\n",
		string(result.JS))

	// Decorator-free TypeScript passes through with its types intact
	input := "let x: number = 1;\n"
	result = Transform(input, TransformOptions{Loader: LoaderTS})
	require.Empty(t, result.Errors)
	assert.Equal(t, input, string(result.JS))

	// Even when the "@" scan forces a parse
	input = "let s: string = \"@\";\n"
	result = Transform(input, TransformOptions{Loader: LoaderTS})
	require.Empty(t, result.Errors)
	assert.Equal(t, input, string(result.JS))

	// The zero value of Loader is plain JavaScript, which rejects annotations
	result = Transform("@dec class Foo { m(x: number) {} }", TransformOptions{})
	require.NotEmpty(t, result.Errors)
	assert.Empty(t, result.JS)
}

func TestTransformErrorLocation(t *testing.T) {
	result := Transform("@dec let x = 1;", TransformOptions{})
	require.Len(t, result.Errors, 1)
	msg := result.Errors[0]
	assert.Equal(t, "Expected \"class\" but found \"let\"", msg.Text)
	require.NotNil(t, msg.Location)
	assert.Equal(t, Location{
		File:     "<stdin>",
		Line:     1,
		Column:   5,
		Length:   3,
		LineText: "@dec let x = 1;",
	}, *msg.Location)
	assert.Empty(t, result.JS)

	// The file name in diagnostics comes from the options
	result = Transform("let s = \"@\";\nenum E {}", TransformOptions{Sourcefile: "input.ts", Loader: LoaderTS})
	require.Len(t, result.Errors, 1)
	msg = result.Errors[0]
	assert.Equal(t, "TypeScript enum declarations are not supported", msg.Text)
	require.NotNil(t, msg.Location)
	assert.Equal(t, Location{
		File:     "input.ts",
		Line:     2,
		Column:   0,
		Length:   4,
		LineText: "enum E {}",
	}, *msg.Location)
}

func TestTransformWarnings(t *testing.T) {
	input := "let s = \"@\";\nfunction f() {\n  return\n  s;\n}\n"
	result := Transform(input, TransformOptions{})
	require.Empty(t, result.Errors)
	require.Len(t, result.Warnings, 1)
	msg := result.Warnings[0]
	assert.Equal(t, "The following expression is not returned because of an automatically-inserted semicolon", msg.Text)
	require.NotNil(t, msg.Location)
	assert.Equal(t, Location{
		File:     "<stdin>",
		Line:     3,
		Column:   8,
		LineText: "  return",
	}, *msg.Location)

	// Warnings don't block the output
	assert.Equal(t, input, string(result.JS))
}

func TestTransformSourceMapExternal(t *testing.T) {
	// Passthrough keeps the text untouched and maps every line onto itself
	input := "let a = \"@\";\nlet b = 2;"
	result := Transform(input, TransformOptions{Sourcemap: SourceMapExternal})
	require.Empty(t, result.Errors)
	assert.Equal(t, input, string(result.JS))
	assert.Equal(t, "{\n  \"version\": 3,\n  \"sources\": [\"<stdin>\"],\n  \"sourcesContent\": [\"let a = \\\"@\\\";\\nlet b = 2;\"],\n  \"mappings\": \"AAAA;AACA\",\n  \"names\": []\n}\n",
		string(result.JSSourceMap))
	assert.NotContains(t, string(result.JS), "sourceMappingURL")

	// A rewritten file gets its mappings from the printer
	result = Transform("@dec class Foo {}", TransformOptions{Sourcemap: SourceMapExternal})
	require.Empty(t, result.Errors)
	sourceMap := string(result.JSSourceMap)
	assert.True(t, strings.HasPrefix(sourceMap, "{\n  \"version\": 3,\n  \"sources\": [\"<stdin>\"],\n"))
	assert.Contains(t, sourceMap, "\"mappings\": \"")
	assert.NotContains(t, string(result.JS), "sourceMappingURL")
}

func TestTransformSourceMapInline(t *testing.T) {
	// The identity map for untouched text is small enough to spell out. The
	// comment gets its own line even when the input lacks a final newline.
	input := "x = 1;"
	result := Transform(input, TransformOptions{Sourcemap: SourceMapInline})
	require.Empty(t, result.Errors)
	expectedJSON := "{\n  \"version\": 3,\n  \"sources\": [\"<stdin>\"],\n  \"sourcesContent\": [\"x = 1;\"],\n  \"mappings\": \"AAAA\",\n  \"names\": []\n}\n"
	assert.Equal(t, "x = 1;\n//# sourceMappingURL=data:application/json;base64,"+
		base64.StdEncoding.EncodeToString([]byte(expectedJSON))+"\n",
		string(result.JS))
	assert.Empty(t, result.JSSourceMap)

	// Rewritten files append the comment after the printed output
	result = Transform("@dec class Foo {}", TransformOptions{Sourcemap: SourceMapInline})
	require.Empty(t, result.Errors)
	js := string(result.JS)
	marker := "\n//# sourceMappingURL=data:application/json;base64,"
	index := strings.Index(js, marker)
	require.NotEqual(t, -1, index)
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSuffix(js[index+len(marker):], "\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(decoded), "{\n  \"version\": 3,\n  \"sources\": [\"<stdin>\"],\n"))
	assert.Empty(t, result.JSSourceMap)
}

func TestTransformSourcefile(t *testing.T) {
	result := Transform("let x = 0;", TransformOptions{Sourcefile: "src/app.js", Sourcemap: SourceMapExternal})
	require.Empty(t, result.Errors)
	assert.Contains(t, string(result.JSSourceMap), "\"sources\": [\"src/app.js\"]")
}

func TestTransformHashbang(t *testing.T) {
	result := Transform("#!/usr/bin/env node\n@dec class Foo {}", TransformOptions{})
	require.Empty(t, result.Errors)
	assert.Equal(t, "#!/usr/bin/env node\n"+runtime.Code+loweredEmptyClass, string(result.JS))
}

func TestTransformDirectivePrologue(t *testing.T) {
	// "use strict" must stay ahead of the injected runtime
	result := Transform("'use strict';\n@dec class Foo {}", TransformOptions{})
	require.Empty(t, result.Errors)
	assert.Equal(t, "\"use strict\";\n"+runtime.Code+loweredEmptyClass, string(result.JS))
}

func TestTransformEmptyInput(t *testing.T) {
	result := Transform("", TransformOptions{})
	require.Empty(t, result.Errors)
	assert.Equal(t, "", string(result.JS))

	result = Transform("", TransformOptions{Sourcemap: SourceMapExternal})
	assert.Equal(t, "", string(result.JS))
	assert.Equal(t, "{\n  \"version\": 3,\n  \"sources\": [\"<stdin>\"],\n  \"sourcesContent\": [\"\"],\n  \"mappings\": \"AAAA\",\n  \"names\": []\n}\n",
		string(result.JSSourceMap))
}

func TestTransformInvalidOptionsPanic(t *testing.T) {
	require.PanicsWithValue(t, "Invalid loader", func() {
		Transform("", TransformOptions{Loader: Loader(99)})
	})
	require.PanicsWithValue(t, "Invalid source map", func() {
		Transform("", TransformOptions{Sourcemap: SourceMap(99)})
	})
	require.PanicsWithValue(t, "Invalid color", func() {
		Transform("", TransformOptions{LogLevel: LogLevelError, Color: StderrColor(99)})
	})
	require.PanicsWithValue(t, "Invalid log level", func() {
		Transform("", TransformOptions{LogLevel: LogLevel(99)})
	})
}
