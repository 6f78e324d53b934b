package js_printer

import (
	"testing"

	"github.com/nyanrus/decs/internal/config"
	"github.com/nyanrus/decs/internal/js_parser"
	"github.com/nyanrus/decs/internal/logger"
	"github.com/nyanrus/decs/internal/test"
)

func expectPrintedCommon(t *testing.T, name string, contents string, expected string, parse config.Options, options Options) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		t.Helper()
		log := logger.NewDeferLog()
		tree, ok := js_parser.Parse(log, test.SourceForTest(contents), js_parser.OptionsFromConfig(&parse))
		msgs := log.Done()
		text := ""
		for _, msg := range msgs {
			text += msg.String(logger.StderrOptions{}, logger.TerminalInfo{})
		}
		test.AssertEqualWithDiff(t, text, "")
		if !ok {
			t.Fatal("Parse error")
		}
		js := Print(tree, options).JS
		test.AssertEqualWithDiff(t, string(js), expected)
	})
}

func expectPrinted(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents, contents, expected, config.Options{}, Options{})
}

func TestNumber(t *testing.T) {
	expectPrinted(t, "x = 0", "x = 0;\n")
	expectPrinted(t, "x = 123", "x = 123;\n")
	expectPrinted(t, "x = 1.5", "x = 1.5;\n")
	expectPrinted(t, "x = 0.5", "x = 0.5;\n")
	expectPrinted(t, "x = -123", "x = -123;\n")

	// Integer exponents
	expectPrinted(t, "x = 999", "x = 999;\n")
	expectPrinted(t, "x = 1000", "x = 1e3;\n")
	expectPrinted(t, "x = 1000000000000", "x = 1e12;\n")
	expectPrinted(t, "x = 1e100", "x = 1e100;\n")

	// Fractional exponents
	expectPrinted(t, "x = 0.001", "x = 1e-3;\n")
	expectPrinted(t, "x = 0.0001", "x = 1e-4;\n")

	// Negative numbers before exponentiation must be wrapped
	expectPrinted(t, "x = (-1) ** 2", "x = (-1) ** 2;\n")

	// A dot after an integer literal needs a space
	expectPrinted(t, "x = (0).toString()", "x = 0 .toString();\n")
	expectPrinted(t, "x = (1.5).toString()", "x = 1.5.toString();\n")
}

func TestBigInt(t *testing.T) {
	expectPrinted(t, "x = 0n", "x = 0n;\n")
	expectPrinted(t, "x = 123456789012345678901234567890n", "x = 123456789012345678901234567890n;\n")
}

func TestString(t *testing.T) {
	expectPrinted(t, "x = ''", "x = \"\";\n")
	expectPrinted(t, "x = 'abc'", "x = \"abc\";\n")
	expectPrinted(t, "x = \"abc\"", "x = \"abc\";\n")

	// Pick the quote with the fewest escapes
	expectPrinted(t, "x = 'a\"b'", "x = 'a\"b';\n")
	expectPrinted(t, "x = \"a'b\"", "x = \"a'b\";\n")
	expectPrinted(t, "x = 'It\\'s \"quoted\"'", "x = `It's \"quoted\"`;\n")

	// Escapes
	expectPrinted(t, "x = 'a\\nb'", "x = \"a\\nb\";\n")
	expectPrinted(t, "x = 'a\\tb'", "x = \"a\tb\";\n")
	expectPrinted(t, "x = '\\\\'", "x = \"\\\\\";\n")
	expectPrinted(t, "x = '\\0'", "x = \"\\0\";\n")
	expectPrinted(t, "x = '\\x001'", "x = \"\\x001\";\n")
	expectPrinted(t, "x = '\\u2028'", "x = \"\\u2028\";\n")
	expectPrinted(t, "x = '\\u2029'", "x = \"\\u2029\";\n")
	expectPrinted(t, "x = '\\uFEFF'", "x = \"\\uFEFF\";\n")

	// Forming "</script" must be avoided
	expectPrinted(t, "x = '</script'", "x = \"<\\/script\";\n")
	expectPrinted(t, "x = '</SCRIPT'", "x = \"<\\/SCRIPT\";\n")
	expectPrinted(t, "x = '</scripx'", "x = \"</scripx\";\n")

	// Non-BMP code points survive as UTF-8
	expectPrinted(t, "x = '\U0001F601'", "x = \"\U0001F601\";\n")
}

func TestTemplate(t *testing.T) {
	expectPrinted(t, "x = ``", "x = ``;\n")
	expectPrinted(t, "x = `a`", "x = `a`;\n")
	expectPrinted(t, "x = `a${b}c`", "x = `a${b}c`;\n")
	expectPrinted(t, "x = `${a}${b}`", "x = `${a}${b}`;\n")
	expectPrinted(t, "x = tag`a${b}c`", "x = tag`a${b}c`;\n")
	expectPrinted(t, "x = this.tag`y`", "x = this.tag`y`;\n")

	// Raw text is preserved byte for byte
	expectPrinted(t, "x = `\\u0061`", "x = `\\u0061`;\n")
}

func TestRegExp(t *testing.T) {
	expectPrinted(t, "x = /y/g", "x = /y/g;\n")

	// Avoid a "//" sequence after division
	expectPrinted(t, "x = a / /b/", "x = a / /b/;\n")

	// Flags must not merge with a following identifier
	expectPrinted(t, "x = /y/ in z", "x = /y/ in z;\n")
}

func TestOperators(t *testing.T) {
	expectPrinted(t, "x = a + b * c", "x = a + b * c;\n")
	expectPrinted(t, "x = (a + b) * c", "x = (a + b) * c;\n")
	expectPrinted(t, "x = a, b", "x = a, b;\n")
	expectPrinted(t, "a = b = c", "a = b = c;\n")
	expectPrinted(t, "x = a ** b ** c", "x = a ** b ** c;\n")
	expectPrinted(t, "x = (a ** b) ** c", "x = (a ** b) ** c;\n")
	expectPrinted(t, "x = typeof a", "x = typeof a;\n")
	expectPrinted(t, "delete a.b", "delete a.b;\n")
	expectPrinted(t, "x = void 0", "x = void 0;\n")
	expectPrinted(t, "x = !!a", "x = !!a;\n")
	expectPrinted(t, "x = a in b", "x = a in b;\n")
	expectPrinted(t, "x = a instanceof b", "x = a instanceof b;\n")

	// Adjacent operators that must not merge
	expectPrinted(t, "x = +(+a)", "x = + +a;\n")
	expectPrinted(t, "x = -(-a)", "x = - -a;\n")
	expectPrinted(t, "x = +(++a)", "x = + ++a;\n")
	expectPrinted(t, "x = -(--a)", "x = - --a;\n")

	// "??" can't directly contain "||" or "&&"
	expectPrinted(t, "x = (a || b) ?? c", "x = (a || b) ?? c;\n")
	expectPrinted(t, "x = a ?? (b && c)", "x = a ?? (b && c);\n")

	// Conditionals
	expectPrinted(t, "x = a ? b : c", "x = a ? b : c;\n")
	expectPrinted(t, "x = a ? b : c ? d : e", "x = a ? b : c ? d : e;\n")
	expectPrinted(t, "x = (a ? b : c) ? d : e", "x = (a ? b : c) ? d : e;\n")
}

func TestOptionalChain(t *testing.T) {
	expectPrinted(t, "x = a?.b", "x = a?.b;\n")
	expectPrinted(t, "x = a?.[b]", "x = a?.[b];\n")
	expectPrinted(t, "x = a?.(b)", "x = a?.(b);\n")
	expectPrinted(t, "x = a?.b.c", "x = a?.b.c;\n")

	// Parentheses break the chain
	expectPrinted(t, "x = (a?.b).c", "x = (a?.b).c;\n")
	expectPrinted(t, "x = (a?.b)[c]", "x = (a?.b)[c];\n")
	expectPrinted(t, "x = (a?.b)(c)", "x = (a?.b)(c);\n")
}

func TestCallAndNew(t *testing.T) {
	expectPrinted(t, "f()", "f();\n")
	expectPrinted(t, "f(a, b)", "f(a, b);\n")
	expectPrinted(t, "f(...a)", "f(...a);\n")
	expectPrinted(t, "x = new Foo()", "x = new Foo();\n")
	expectPrinted(t, "x = new Foo", "x = new Foo();\n")
	expectPrinted(t, "x = new Foo.Bar()", "x = new Foo.Bar();\n")
	expectPrinted(t, "x = new (foo())()", "x = new (foo())();\n")
	expectPrinted(t, "x = new (new Foo())()", "x = new (new Foo())();\n")
	expectPrinted(t, "x = import(y)", "x = import(y);\n")
	expectPrinted(t, "x = import(y, z)", "x = import(y, z);\n")
	expectPrinted(t, "x = import.meta", "x = import.meta;\n")
	expectPrinted(t, "x = import.meta.hot", "x = import.meta.hot;\n")
}

func TestArray(t *testing.T) {
	expectPrinted(t, "x = []", "x = [];\n")
	expectPrinted(t, "x = [1, 2]", "x = [1, 2];\n")
	expectPrinted(t, "x = [...a]", "x = [...a];\n")

	// Trailing holes need an extra comma
	expectPrinted(t, "x = [,]", "x = [,];\n")
	expectPrinted(t, "x = [, a]", "x = [, a];\n")
	expectPrinted(t, "x = [a, ,]", "x = [a, ,];\n")
}

func TestObject(t *testing.T) {
	expectPrinted(t, "x = {}", "x = {};\n")
	expectPrinted(t, "x = { a: 1 }", "x = { a: 1 };\n")
	expectPrinted(t, "x = { a: 1, b: 2 }", "x = { a: 1, b: 2 };\n")
	expectPrinted(t, "x = { a }", "x = { a };\n")
	expectPrinted(t, "x = { [a]: b }", "x = { [a]: b };\n")
	expectPrinted(t, "x = { 'a b': 1 }", "x = { \"a b\": 1 };\n")
	expectPrinted(t, "x = { 1: 2 }", "x = { 1: 2 };\n")
	expectPrinted(t, "x = { ...a }", "x = { ...a };\n")
	expectPrinted(t, "x = { a() {\n} }", "x = { a() {\n} };\n")
	expectPrinted(t, "x = { get a() {\n} }", "x = { get a() {\n} };\n")
	expectPrinted(t, "x = { set a(b) {\n} }", "x = { set a(b) {\n} };\n")

	// An object at the start of a statement must be wrapped
	expectPrinted(t, "({});", "({});\n")
	expectPrinted(t, "({ a: 1 });", "({ a: 1 });\n")
	expectPrinted(t, "({ a } = b);", "({ a } = b);\n")

	// Same for the concise body of an arrow
	expectPrinted(t, "x = () => ({})", "x = () => ({});\n")
	expectPrinted(t, "x = () => ({ a } = b)", "x = () => ({ a } = b);\n")
}

func TestDestructuring(t *testing.T) {
	expectPrinted(t, "let [] = a", "let [] = a;\n")
	expectPrinted(t, "let [a, b] = c", "let [a, b] = c;\n")
	expectPrinted(t, "let [a, , ...b] = c", "let [a, , ...b] = c;\n")
	expectPrinted(t, "let [a = 1] = b", "let [a = 1] = b;\n")
	expectPrinted(t, "let {} = a", "let {} = a;\n")
	expectPrinted(t, "let { a, b: c, ...rest } = d", "let { a, b: c, ...rest } = d;\n")
	expectPrinted(t, "let { a = 1 } = b", "let { a = 1 } = b;\n")
	expectPrinted(t, "let { [a]: b } = c", "let { [a]: b } = c;\n")
	expectPrinted(t, "let { 'a b': c } = d", "let { \"a b\": c } = d;\n")
}

func TestArrow(t *testing.T) {
	expectPrinted(t, "x = () => {\n}", "x = () => {\n};\n")
	expectPrinted(t, "x = (a) => a", "x = (a) => a;\n")
	expectPrinted(t, "x = a => a", "x = (a) => a;\n")
	expectPrinted(t, "x = (a, b) => a", "x = (a, b) => a;\n")
	expectPrinted(t, "x = (a = 1) => a", "x = (a = 1) => a;\n")
	expectPrinted(t, "x = (...a) => a", "x = (...a) => a;\n")
	expectPrinted(t, "x = async (a) => a", "x = async (a) => a;\n")
	expectPrinted(t, "x = (a) => (b, c)", "x = (a) => (b, c);\n")

	// Arrows bind tighter than assignment targets allow
	expectPrinted(t, "x = (a => a)(b)", "x = ((a) => a)(b);\n")
}

func TestFunction(t *testing.T) {
	expectPrinted(t, "function f() {\n}", "function f() {\n}\n")
	expectPrinted(t, "function f(a, b = 1, ...c) {\n}", "function f(a, b = 1, ...c) {\n}\n")
	expectPrinted(t, "async function f() {\n}", "async function f() {\n}\n")
	expectPrinted(t, "function* f() {\n}", "function* f() {\n}\n")
	expectPrinted(t, "async function f() {\n  await x;\n}", "async function f() {\n  await x;\n}\n")
	expectPrinted(t, "function* f() {\n  yield x;\n}", "function* f() {\n  yield x;\n}\n")
	expectPrinted(t, "function* f() {\n  yield* x;\n}", "function* f() {\n  yield* x;\n}\n")
	expectPrinted(t, "function* f() {\n  yield;\n}", "function* f() {\n  yield;\n}\n")

	// A function expression at the start of a statement must be wrapped
	expectPrinted(t, "(function() {\n})();", "(function() {\n})();\n")
	expectPrinted(t, "x = function f() {\n}", "x = function f() {\n};\n")
}

func TestClass(t *testing.T) {
	expectPrinted(t, "class Foo {\n}", "class Foo {\n}\n")
	expectPrinted(t, "class Foo extends Bar {\n}", "class Foo extends Bar {\n}\n")
	expectPrinted(t, "class Foo extends (a ?? b) {\n}", "class Foo extends (a ?? b) {\n}\n")
	expectPrinted(t, "class Foo {\n  bar() {\n  }\n}", "class Foo {\n  bar() {\n  }\n}\n")
	expectPrinted(t, "class Foo {\n  static bar() {\n  }\n}", "class Foo {\n  static bar() {\n  }\n}\n")
	expectPrinted(t, "class Foo {\n  async bar() {\n  }\n}", "class Foo {\n  async bar() {\n  }\n}\n")
	expectPrinted(t, "class Foo {\n  *bar() {\n  }\n}", "class Foo {\n  *bar() {\n  }\n}\n")
	expectPrinted(t, "class Foo {\n  get bar() {\n  }\n}", "class Foo {\n  get bar() {\n  }\n}\n")
	expectPrinted(t, "class Foo {\n  set bar(x) {\n  }\n}", "class Foo {\n  set bar(x) {\n  }\n}\n")
	expectPrinted(t, "class Foo {\n  \"a b\"() {\n  }\n}", "class Foo {\n  \"a b\"() {\n  }\n}\n")
	expectPrinted(t, "class Foo {\n  1() {\n  }\n}", "class Foo {\n  1() {\n  }\n}\n")
	expectPrinted(t, "class Foo {\n  [a]() {\n  }\n}", "class Foo {\n  [a]() {\n  }\n}\n")

	// Fields get semicolons, methods don't
	expectPrinted(t, "class Foo {\n  a;\n}", "class Foo {\n  a;\n}\n")
	expectPrinted(t, "class Foo {\n  a = 1;\n}", "class Foo {\n  a = 1;\n}\n")
	expectPrinted(t, "class Foo {\n  static a = 1;\n}", "class Foo {\n  static a = 1;\n}\n")
	expectPrinted(t, "class Foo {\n  [a] = 1;\n}", "class Foo {\n  [a] = 1;\n}\n")

	// Auto-accessors
	expectPrinted(t, "class Foo {\n  accessor a = 1;\n}", "class Foo {\n  accessor a = 1;\n}\n")
	expectPrinted(t, "class Foo {\n  static accessor a = 1;\n}", "class Foo {\n  static accessor a = 1;\n}\n")

	// Private members
	expectPrinted(t, "class Foo {\n  #a = 1;\n}", "class Foo {\n  #a = 1;\n}\n")
	expectPrinted(t, "class Foo {\n  #m() {\n  }\n}", "class Foo {\n  #m() {\n  }\n}\n")
	expectPrinted(t, "class Foo {\n  static #m() {\n  }\n}", "class Foo {\n  static #m() {\n  }\n}\n")
	expectPrinted(t,
		"class Foo {\n  #a;\n  m() {\n    return this.#a;\n  }\n}",
		"class Foo {\n  #a;\n  m() {\n    return this.#a;\n  }\n}\n")

	// Static blocks
	expectPrinted(t, "class Foo {\n  static {\n  }\n}", "class Foo {\n  static {\n  }\n}\n")
	expectPrinted(t, "class Foo {\n  static {\n    x;\n  }\n}", "class Foo {\n  static {\n    x;\n  }\n}\n")

	// A class expression at the start of a statement must be wrapped
	expectPrinted(t, "(class {\n});", "(class {\n});\n")
	expectPrinted(t, "x = class extends Foo {\n}", "x = class extends Foo {\n};\n")
}

func TestIf(t *testing.T) {
	expectPrinted(t, "if (a)\n  b;", "if (a)\n  b;\n")
	expectPrinted(t, "if (a) {\n  b;\n}", "if (a) {\n  b;\n}\n")
	expectPrinted(t, "if (a)\n  b;\nelse\n  c;", "if (a)\n  b;\nelse\n  c;\n")
	expectPrinted(t, "if (a) {\n  b;\n} else {\n  c;\n}", "if (a) {\n  b;\n} else {\n  c;\n}\n")
	expectPrinted(t, "if (a)\n  b;\nelse if (c)\n  d;", "if (a)\n  b;\nelse if (c)\n  d;\n")
}

func TestLoops(t *testing.T) {
	expectPrinted(t, "while (a)\n  b;", "while (a)\n  b;\n")
	expectPrinted(t, "while (a) {\n  b;\n}", "while (a) {\n  b;\n}\n")
	expectPrinted(t, "do\n  a;\nwhile (b);", "do\n  a;\nwhile (b);\n")
	expectPrinted(t, "do {\n  a;\n} while (b);", "do {\n  a;\n} while (b);\n")
	expectPrinted(t, "for (;;)\n  a;", "for (; ; )\n  a;\n")
	expectPrinted(t, "for (let i = 0; i < n; i++)\n  a;", "for (let i = 0; i < n; i++)\n  a;\n")
	expectPrinted(t, "for (const a in b)\n  c;", "for (const a in b)\n  c;\n")
	expectPrinted(t, "for (const a of b)\n  c;", "for (const a of b)\n  c;\n")
	expectPrinted(t, "async function f() {\n  for await (const a of b)\n    c;\n}",
		"async function f() {\n  for await (const a of b)\n    c;\n}\n")

	// "in" inside a for initializer must be wrapped
	expectPrinted(t, "for (var x = (a in b); ; )\n  c;", "for (var x = (a in b); ; )\n  c;\n")
}

func TestSwitch(t *testing.T) {
	expectPrinted(t,
		"switch (x) {\n  case 1:\n    y;\n    break;\n  default:\n    z;\n}",
		"switch (x) {\n  case 1:\n    y;\n    break;\n  default:\n    z;\n}\n")
	expectPrinted(t,
		"switch (x) {\n  case 1: {\n    y;\n  }\n}",
		"switch (x) {\n  case 1: {\n    y;\n  }\n}\n")
}

func TestTry(t *testing.T) {
	expectPrinted(t, "try {\n} catch (e) {\n}", "try {\n} catch (e) {\n}\n")
	expectPrinted(t, "try {\n} catch {\n}", "try {\n} catch {\n}\n")
	expectPrinted(t, "try {\n} finally {\n}", "try {\n} finally {\n}\n")
	expectPrinted(t, "try {\n} catch ({ message }) {\n}", "try {\n} catch ({ message }) {\n}\n")
	expectPrinted(t, "try {\n} catch (e) {\n} finally {\n}", "try {\n} catch (e) {\n} finally {\n}\n")
}

func TestStatements(t *testing.T) {
	expectPrinted(t, ";", ";\n")
	expectPrinted(t, "{\n  a;\n}", "{\n  a;\n}\n")
	expectPrinted(t, "debugger;", "debugger;\n")
	expectPrinted(t, "throw a;", "throw a;\n")
	expectPrinted(t, "foo: {\n  break foo;\n}", "foo: {\n  break foo;\n}\n")
	expectPrinted(t, "foo:\n  a;", "foo:\n  a;\n")
	expectPrinted(t, "while (a) {\n  continue;\n}", "while (a) {\n  continue;\n}\n")
	expectPrinted(t, "foo: while (a) {\n  continue foo;\n}", "foo: while (a) {\n  continue foo;\n}\n")
	expectPrinted(t, "function f() {\n  return;\n}", "function f() {\n  return;\n}\n")
	expectPrinted(t, "function f() {\n  return a;\n}", "function f() {\n  return a;\n}\n")
	expectPrinted(t, "with (a)\n  b;", "with (a)\n  b;\n")
	expectPrinted(t, "var a = 1, b;", "var a = 1, b;\n")
	expectPrinted(t, "let a = 1;", "let a = 1;\n")
	expectPrinted(t, "const a = 1;", "const a = 1;\n")
}

func TestImport(t *testing.T) {
	expectPrinted(t, "import \"x\";", "import \"x\";\n")
	expectPrinted(t, "import a from \"x\";", "import a from \"x\";\n")
	expectPrinted(t, "import { a } from \"x\";", "import { a } from \"x\";\n")
	expectPrinted(t, "import { a, b } from \"x\";", "import { a, b } from \"x\";\n")
	expectPrinted(t, "import { a as b } from \"x\";", "import { a as b } from \"x\";\n")
	expectPrinted(t, "import * as ns from \"x\";", "import * as ns from \"x\";\n")
	expectPrinted(t, "import a, { b } from \"x\";", "import a, { b } from \"x\";\n")
	expectPrinted(t, "import a, * as ns from \"x\";", "import a, * as ns from \"x\";\n")
	expectPrinted(t, "import {} from \"x\";", "import {} from \"x\";\n")

	// Arbitrary module namespace names
	expectPrinted(t, "import { \"a b\" as c } from \"x\";", "import { \"a b\" as c } from \"x\";\n")
}

func TestExport(t *testing.T) {
	expectPrinted(t, "export {};", "export {};\n")
	expectPrinted(t, "let a;\nexport { a };", "let a;\nexport { a };\n")
	expectPrinted(t, "let a;\nexport { a as b };", "let a;\nexport { a as b };\n")
	expectPrinted(t, "export { a } from \"x\";", "export { a } from \"x\";\n")
	expectPrinted(t, "export { a as b } from \"x\";", "export { a as b } from \"x\";\n")
	expectPrinted(t, "export * from \"x\";", "export * from \"x\";\n")
	expectPrinted(t, "export * as ns from \"x\";", "export * as ns from \"x\";\n")
	expectPrinted(t, "export let a = 1;", "export let a = 1;\n")
	expectPrinted(t, "export const a = 1;", "export const a = 1;\n")
	expectPrinted(t, "export var a = 1;", "export var a = 1;\n")
	expectPrinted(t, "export function f() {\n}", "export function f() {\n}\n")
	expectPrinted(t, "export class Foo {\n}", "export class Foo {\n}\n")
	expectPrinted(t, "export default 1;", "export default 1;\n")
	expectPrinted(t, "export default function() {\n}", "export default function() {\n}\n")
	expectPrinted(t, "export default function f() {\n}", "export default function f() {\n}\n")
	expectPrinted(t, "export default class {\n}", "export default class {\n}\n")
	expectPrinted(t, "export default class Foo {\n}", "export default class Foo {\n}\n")
	expectPrinted(t, "export default () => {\n};", "export default () => {\n};\n")
	expectPrinted(t, "export default (a, b);", "export default (a, b);\n")

	// Arbitrary module namespace names
	expectPrinted(t, "export { \"a b\" } from \"x\";", "export { \"a b\" } from \"x\";\n")
	expectPrinted(t, "export { a as \"b c\" } from \"x\";", "export { a as \"b c\" } from \"x\";\n")
}

func TestDirective(t *testing.T) {
	expectPrinted(t, "'use strict';", "\"use strict\";\n")
	expectPrinted(t, "'use strict';\nx;", "\"use strict\";\nx;\n")
}

func TestHashbang(t *testing.T) {
	expectPrinted(t, "#!/usr/bin/env node\nx;", "#!/usr/bin/env node\nx;\n")
}
