package js_parser

import (
	"testing"

	"github.com/nyanrus/decs/internal/config"
	"github.com/nyanrus/decs/internal/js_printer"
	"github.com/nyanrus/decs/internal/logger"
	"github.com/nyanrus/decs/internal/test"
)

func expectParseErrorCommon(t *testing.T, contents string, expected string, options config.Options) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		log := logger.NewDeferLog()
		Parse(log, test.SourceForTest(contents), OptionsFromConfig(&options))
		msgs := log.Done()
		text := ""
		for _, msg := range msgs {
			text += msg.String(logger.StderrOptions{}, logger.TerminalInfo{})
		}
		test.AssertEqualWithDiff(t, text, expected)
	})
}

func expectParseError(t *testing.T, contents string, expected string) {
	t.Helper()
	expectParseErrorCommon(t, contents, expected, config.Options{})
}

func expectPrintedCommon(t *testing.T, contents string, expected string, options config.Options) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		log := logger.NewDeferLog()
		tree, ok := Parse(log, test.SourceForTest(contents), OptionsFromConfig(&options))
		msgs := log.Done()
		text := ""
		for _, msg := range msgs {
			text += msg.String(logger.StderrOptions{}, logger.TerminalInfo{})
		}
		test.AssertEqualWithDiff(t, text, "")
		if !ok {
			t.Fatal("Parse error")
		}
		js := js_printer.Print(tree, js_printer.Options{}).JS
		test.AssertEqualWithDiff(t, string(js), expected)
	})
}

func expectPrinted(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents, expected, config.Options{})
}

func TestASI(t *testing.T) {
	expectPrinted(t, "a\nb", "a;\nb;\n")
	expectPrinted(t, "x = a\n+ b", "x = a + b;\n")
	expectPrinted(t, "x = y\n(z)", "x = y(z);\n")

	// "++" and "--" cannot continue across a newline
	expectPrinted(t, "x\n++y", "x;\n++y;\n")
	expectPrinted(t, "x\n--y", "x;\n--y;\n")

	// "return", "break", and "continue" end at a newline
	expectPrinted(t, "while (a)\n  break\nb;", "while (a)\n  break;\nb;\n")
	expectPrinted(t, "function f() {\n  return;\n  a;\n}", "function f() {\n  return;\n  a;\n}\n")
	expectParseError(t, "function f() {\n  return\n  a;\n}",
		"<stdin>: warning: The following expression is not returned because of an automatically-inserted semicolon\n")
}

func TestConstructor(t *testing.T) {
	expectPrinted(t, "class Foo { constructor() {} }", "class Foo {\n  constructor() {\n  }\n}\n")

	// A static or computed member named "constructor" is just a normal member
	expectPrinted(t, "class Foo { static constructor() {} }", "class Foo {\n  static constructor() {\n  }\n}\n")
	expectPrinted(t, "class Foo { [\"constructor\"]() {} }", "class Foo {\n  [\"constructor\"]() {\n  }\n}\n")

	expectParseError(t, "class Foo { constructor() {} constructor() {} }",
		"<stdin>: error: Classes cannot contain more than one constructor\n")
	expectParseError(t, "class Foo { get constructor() {} }",
		"<stdin>: error: Class constructor cannot be a getter\n")
	expectParseError(t, "class Foo { set constructor(x) {} }",
		"<stdin>: error: Class constructor cannot be a setter\n")
	expectParseError(t, "class Foo { async constructor() {} }",
		"<stdin>: error: Class constructor cannot be an async function\n")
	expectParseError(t, "class Foo { *constructor() {} }",
		"<stdin>: error: Class constructor cannot be a generator\n")
	expectParseError(t, "class Foo { static prototype() {} }",
		"<stdin>: error: Invalid static method name \"prototype\"\n")
}

func TestDecoratorPosition(t *testing.T) {
	expectParseError(t, "class Foo { @dec constructor() {} }",
		"<stdin>: error: Decorators are not allowed on class constructors\n")

	// Decorators can only precede classes
	expectParseError(t, "@dec let x = 1;", "<stdin>: error: Expected \"class\" but found \"let\"\n")
	expectParseError(t, "@dec function f() {}", "<stdin>: error: Expected \"class\" but found \"function\"\n")
	expectParseError(t, "x = @dec y", "<stdin>: error: Expected \"class\" but found \"y\"\n")
}

func TestPrivateNames(t *testing.T) {
	expectPrinted(t, "class Foo { #a; m() { return this.#a; } }",
		"class Foo {\n  #a;\n  m() {\n    return this.#a;\n  }\n}\n")
	expectPrinted(t, "class Foo { static #m() {} static n() { Foo.#m(); } }",
		"class Foo {\n  static #m() {\n  }\n  static n() {\n    Foo.#m();\n  }\n}\n")
	expectPrinted(t, "class Foo { #b; m(a) { return a?.#b; } }",
		"class Foo {\n  #b;\n  m(a) {\n    return a?.#b;\n  }\n}\n")

	// Brand checks with "in"
	expectPrinted(t, "class Foo { #a; static has(o) { return #a in o; } }",
		"class Foo {\n  #a;\n  static has(o) {\n    return #a in o;\n  }\n}\n")
}

func TestTopLevelAwait(t *testing.T) {
	expectPrinted(t, "await x;", "await x;\n")
	expectPrinted(t, "for await (const a of b)\n  c;", "for await (const a of b)\n  c;\n")
}

func TestDirectivePrologue(t *testing.T) {
	expectPrinted(t, "'use strict'", "\"use strict\";\n")
	expectPrinted(t, "'use strict'; 'use asm'; x", "\"use strict\";\n\"use asm\";\nx;\n")
}
