package js_parser

import (
	"testing"

	"github.com/nyanrus/decs/internal/config"
)

func expectPrintedTS(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents, expected, config.Options{TS: config.TSOptions{Parse: true}})
}

func expectParseErrorTS(t *testing.T, contents string, expected string) {
	t.Helper()
	expectParseErrorCommon(t, contents, expected, config.Options{TS: config.TSOptions{Parse: true}})
}

func TestTSTypes(t *testing.T) {
	expectPrintedTS(t, "let x: number = 1", "let x = 1;\n")
	expectPrintedTS(t, "let x: Array<() => void> = []", "let x = [];\n")
	expectPrintedTS(t, "let x: string | number = 1", "let x = 1;\n")
	expectPrintedTS(t, "let x: { a: number, b?: string } = y", "let x = y;\n")
	expectPrintedTS(t, "let x!: number", "let x;\n")
	expectPrintedTS(t, "function f(a: number, b?: string): void {}", "function f(a, b) {\n}\n")
	expectPrintedTS(t, "function f<T>(x: T): T { return x }", "function f(x) {\n  return x;\n}\n")
	expectPrintedTS(t, "let f = (x: number): number => x", "let f = (x) => x;\n")

	// "type" is still a valid identifier
	expectPrintedTS(t, "let type = 1", "let type = 1;\n")
}

func TestTSCasts(t *testing.T) {
	expectPrintedTS(t, "let x = y as number", "let x = y;\n")
	expectPrintedTS(t, "let x = y as unknown as number", "let x = y;\n")
	expectPrintedTS(t, "let x = <number>y", "let x = y;\n")
	expectPrintedTS(t, "x!.y", "x.y;\n")
	expectPrintedTS(t, "f!()", "f();\n")
}

func TestTSGenericCalls(t *testing.T) {
	expectPrintedTS(t, "f<number>()", "f();\n")
	expectPrintedTS(t, "f<number, string>(a, b)", "f(a, b);\n")
	expectPrintedTS(t, "a.b<number>()", "a.b();\n")
	expectPrintedTS(t, "new Foo<number>()", "new Foo();\n")

	// Comparison chains must not be mistaken for type arguments
	expectPrintedTS(t, "a < b > c", "a < b > c;\n")
}

func TestTSClass(t *testing.T) {
	expectPrintedTS(t, "class Foo<T> implements Bar {}", "class Foo {\n}\n")
	expectPrintedTS(t, "class Foo extends Bar<number> {}", "class Foo extends Bar {\n}\n")
	expectPrintedTS(t, "class Foo { private x = 1; readonly y = 2 }", "class Foo {\n  x = 1;\n  y = 2;\n}\n")
	expectPrintedTS(t, "class Foo { x?: number }", "class Foo {\n  x;\n}\n")
	expectPrintedTS(t, "class Foo { x!: number }", "class Foo {\n  x;\n}\n")
	expectPrintedTS(t, "class Foo { m(): void {} }", "class Foo {\n  m() {\n  }\n}\n")

	// Method overload signatures have no body and are dropped
	expectPrintedTS(t, "class Foo { m(): void; m(x?: number) {} }", "class Foo {\n  m(x) {\n  }\n}\n")

	// Abstract and declared members only exist in the type system
	expectPrintedTS(t, "abstract class Foo { abstract m(): void; n() {} }", "class Foo {\n  n() {\n  }\n}\n")
	expectPrintedTS(t, "class Foo { declare x: number }", "class Foo {\n}\n")
}

func TestTSInterface(t *testing.T) {
	expectPrintedTS(t, "interface Foo { x: number, m(): void }", "")
	expectPrintedTS(t, "interface Foo extends Bar, Baz {}\nlet x = 1", "let x = 1;\n")
	expectPrintedTS(t, "export interface Foo {}", "")
}

func TestTSTypeAlias(t *testing.T) {
	expectPrintedTS(t, "type Foo = number", "")
	expectPrintedTS(t, "type Foo<T> = T[]", "")
	expectPrintedTS(t, "type Foo = { a: string }\nlet x = 1", "let x = 1;\n")

	// A newline after "type" means it was just an expression
	expectPrintedTS(t, "type\nFoo = number", "type;\nFoo = number;\n")
}

func TestTSAmbient(t *testing.T) {
	expectPrintedTS(t, "declare const x: number", "")
	expectPrintedTS(t, "declare let x, y", "")
	expectPrintedTS(t, "declare function f(): void", "")
	expectPrintedTS(t, "declare class Foo { x: number }", "")
	expectPrintedTS(t, "declare enum Foo { A, B = 1 }", "")
	expectPrintedTS(t, "declare namespace Foo { const x: number }", "")
	expectPrintedTS(t, "declare module \"fs\" { function f(): void }", "")
	expectPrintedTS(t, "declare global { interface Window {} }", "")
	expectPrintedTS(t, "declare const x: number\nlet y = 1", "let y = 1;\n")
}

func TestTSImportExportType(t *testing.T) {
	expectPrintedTS(t, "import foo from \"bar\"", "import foo from \"bar\";\n")
	expectPrintedTS(t, "import type foo from \"bar\"", "")
	expectPrintedTS(t, "import type * as foo from \"bar\"", "")
	expectPrintedTS(t, "import type {foo} from \"bar\"", "")
	expectPrintedTS(t, "export type {foo}", "")
	expectPrintedTS(t, "export type {foo} from \"bar\"", "")
	expectPrintedTS(t, "export type Foo = number", "")
	expectParseErrorTS(t, "export type\n{foo}", "<stdin>: error: Unexpected newline after \"type\"\n")
}

func TestTSUnsupportedSyntax(t *testing.T) {
	expectParseErrorTS(t, "enum Foo {}", "<stdin>: error: TypeScript enum declarations are not supported\n")
	expectParseError(t, "enum Foo {}", "<stdin>: error: Unexpected \"enum\"\n")
	expectParseErrorTS(t, "namespace Foo {}", "<stdin>: error: TypeScript namespace declarations are not supported\n")
	expectParseErrorTS(t, "module Foo {}", "<stdin>: error: TypeScript namespace declarations are not supported\n")
	expectParseErrorTS(t, "import foo = require(\"bar\")", "<stdin>: error: TypeScript \"import =\" syntax is not supported\n")
	expectParseErrorTS(t, "export = foo", "<stdin>: error: TypeScript \"export =\" syntax is not supported\n")
	expectParseErrorTS(t, "class Foo { constructor(public x) {} }", "<stdin>: error: TypeScript parameter properties are not supported\n")
}

func TestTSDecorators(t *testing.T) {
	// Type annotations are erased before the decorators are lowered
	expectPrintedTS(t, "class Foo { @dec m(x: number): void {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[dec, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  m(x) {\n  }\n}\n")
	expectPrintedTS(t, "class Foo { @dec #x?: number }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[dec, 0, \"x\", true]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  #x;\n}\n")
	expectPrintedTS(t, "@dec() class Foo<T> implements Bar {}",
		"let _initClass;\nlet Foo = class Foo {\n};\n[Foo, _initClass] = _applyDecs(Foo, [], [dec()], \"Foo\").c;\nif (_initClass)\n  _initClass();\n")
	expectPrintedTS(t, "@dec abstract class Foo {}",
		"let _initClass;\nlet Foo = class Foo {\n};\n[Foo, _initClass] = _applyDecs(Foo, [], [dec], \"Foo\").c;\nif (_initClass)\n  _initClass();\n")
	expectPrintedTS(t, "@dec export abstract class Foo {}",
		"let _initClass;\nexport let Foo = class Foo {\n};\n[Foo, _initClass] = _applyDecs(Foo, [], [dec], \"Foo\").c;\nif (_initClass)\n  _initClass();\n")

	// Ambient classes produce no output, decorated or not
	expectPrintedTS(t, "@dec declare class Foo {}", "")
}
