package js_parser

import (
	"testing"

	"github.com/nyanrus/decs/internal/config"
	"github.com/nyanrus/decs/internal/logger"
	"github.com/nyanrus/decs/internal/test"
)

func TestLowerMemberDecoratorKinds(t *testing.T) {
	// The flags slot encodes the member kind: field 0, accessor 1, method 2,
	// getter 3, setter 4
	expectPrinted(t, "class Foo { @log greet() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, \"greet\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  greet() {\n  }\n}\n")
	expectPrinted(t, "class Foo { @log x = 1; }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 0, \"x\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  x = 1;\n}\n")
	expectPrinted(t, "class Foo { @log accessor x = 1; }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 1, \"x\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  accessor x = 1;\n}\n")
	expectPrinted(t, "class Foo { @log get x() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 3, \"x\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  get x() {\n  }\n}\n")
	expectPrinted(t, "class Foo { @log set x(v) {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 4, \"x\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  set x(v) {\n  }\n}\n")

	// A plain getter and setter with the same name are two separate entries
	expectPrinted(t, "class Foo { @a get x() {} @b set x(v) {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[a, 3, \"x\"], [b, 4, \"x\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  get x() {\n  }\n  set x(v) {\n  }\n}\n")

	// Source order is preserved across kinds
	expectPrinted(t, "class Foo { @a x = 1; @b m() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[a, 0, \"x\"], [b, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  x = 1;\n  m() {\n  }\n}\n")
}

func TestLowerStaticMembers(t *testing.T) {
	// Static members set bit 3 of the flags slot, and a class with only
	// static decorated members does not need constructor instrumentation
	expectPrinted(t, "class Foo { @log static greet() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 10, \"greet\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  static greet() {\n  }\n}\n")
	expectPrinted(t, "class Foo { @log static x = 1; }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 8, \"x\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  static x = 1;\n}\n")
	expectPrinted(t, "class Foo { @log static accessor x = 1; }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 9, \"x\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  static accessor x = 1;\n}\n")
	expectPrinted(t, "class Foo { @log static get x() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 11, \"x\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  static get x() {\n  }\n}\n")
	expectPrinted(t, "class Foo { @log static set x(v) {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 12, \"x\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  static set x(v) {\n  }\n}\n")

	// A mix of static and instance members still instruments the constructor
	expectPrinted(t, "class Foo { @a static x = 1; @b m() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[a, 8, \"x\"], [b, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  static x = 1;\n  m() {\n  }\n}\n")
}

func TestLowerPrivateMembers(t *testing.T) {
	// Private members add a trailing "true" and drop the "#" from the key
	expectPrinted(t, "class Foo { @log #m() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, \"m\", true]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  #m() {\n  }\n}\n")
	expectPrinted(t, "class Foo { @log #x = 1; }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 0, \"x\", true]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  #x = 1;\n}\n")
	expectPrinted(t, "class Foo { @log static #m() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 10, \"m\", true]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  static #m() {\n  }\n}\n")
	expectPrinted(t, "class Foo { @log accessor #x = 1; }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 1, \"x\", true]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  accessor #x = 1;\n}\n")
}

func TestLowerStackedDecorators(t *testing.T) {
	// Stacked decorators become a nested array in the descriptor
	expectPrinted(t, "class Foo { @a @b m() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[[a, b], 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  m() {\n  }\n}\n")
	expectPrinted(t, "class Foo { @a @b @c x = 1; }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[[a, b, c], 0, \"x\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  x = 1;\n}\n")
	expectPrinted(t, "@a @b class Foo {}",
		"let _initClass;\nlet Foo = class Foo {\n};\n[Foo, _initClass] = _applyDecs(Foo, [], [a, b], \"Foo\").c;\nif (_initClass)\n  _initClass();\n")
}

func TestLowerDecoratorExpressions(t *testing.T) {
	expectPrinted(t, "class Foo { @ns.dec m() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[ns.dec, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  m() {\n  }\n}\n")
	expectPrinted(t, "class Foo { @dec() m() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[dec(), 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  m() {\n  }\n}\n")
	expectPrinted(t, "class Foo { @dec(a, b) m() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[dec(a, b), 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  m() {\n  }\n}\n")
	expectPrinted(t, "class Foo { @(x => x) m() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[(x) => x, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  m() {\n  }\n}\n")
}

func TestLowerMemberKeys(t *testing.T) {
	// String, numeric, and bigint keys pass through as written
	expectPrinted(t, "class Foo { @log \"a b\"() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, \"a b\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  \"a b\"() {\n  }\n}\n")
	expectPrinted(t, "class Foo { @log 1() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, 1]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  1() {\n  }\n}\n")
	expectPrinted(t, "class Foo { @log 1n() {} }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, 1n]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  1n() {\n  }\n}\n")
}

func TestLowerClassDecorators(t *testing.T) {
	expectPrinted(t, "@register class Foo {}",
		"let _initClass;\nlet Foo = class Foo {\n};\n[Foo, _initClass] = _applyDecs(Foo, [], [register], \"Foo\").c;\nif (_initClass)\n  _initClass();\n")
	expectPrinted(t, "@register\nclass Foo {}",
		"let _initClass;\nlet Foo = class Foo {\n};\n[Foo, _initClass] = _applyDecs(Foo, [], [register], \"Foo\").c;\nif (_initClass)\n  _initClass();\n")
	expectPrinted(t, "@register(config) class Foo extends Bar {}",
		"let _initClass;\nlet Foo = class Foo extends Bar {\n};\n[Foo, _initClass] = _applyDecs(Foo, [], [register(config)], \"Foo\").c;\nif (_initClass)\n  _initClass();\n")
}

func TestLowerClassAndMemberDecorators(t *testing.T) {
	expectPrinted(t, "@register class Foo { @log greet() {} }",
		"let _initProto, _initClass;\nlet Foo = class Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, \"greet\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  greet() {\n  }\n};\n[Foo, _initClass] = _applyDecs(Foo, [], [register], \"Foo\").c;\nif (_initClass)\n  _initClass();\n")
}

func TestLowerExportForms(t *testing.T) {
	// Member decorators alone leave the export statement in place
	expectPrinted(t, "export class Foo { @log m() {} }",
		"let _initProto, _initClass;\nexport class Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  m() {\n  }\n}\n")

	// Class decorators move the export onto the replacement "let" binding
	expectPrinted(t, "export @register class Foo {}",
		"let _initClass;\nexport let Foo = class Foo {\n};\n[Foo, _initClass] = _applyDecs(Foo, [], [register], \"Foo\").c;\nif (_initClass)\n  _initClass();\n")
	expectPrinted(t, "@register export class Foo {}",
		"let _initClass;\nexport let Foo = class Foo {\n};\n[Foo, _initClass] = _applyDecs(Foo, [], [register], \"Foo\").c;\nif (_initClass)\n  _initClass();\n")

	// Default exports re-export the binding after the decorators have run
	expectPrinted(t, "export default @register class Foo {}",
		"let _initClass;\nlet Foo = class Foo {\n};\n[Foo, _initClass] = _applyDecs(Foo, [], [register], \"Foo\").c;\nif (_initClass)\n  _initClass();\nexport default Foo;\n")

	// Anonymous default exports get a synthetic binding and no name argument
	expectPrinted(t, "export default @register class {}",
		"let _initClass;\nlet _Class = class {\n};\n[_Class, _initClass] = _applyDecs(_Class, [], [register]).c;\nif (_initClass)\n  _initClass();\nexport default _Class;\n")
}

func TestLowerClassExpressions(t *testing.T) {
	// Member decorators alone leave the expression where it is
	expectPrinted(t, "x = class { @log m() {} };",
		"let _initProto, _initClass;\nx = class {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  m() {\n  }\n};\n")

	// Class decorators turn the expression into a comma chain that evaluates
	// to the decorated class
	expectPrinted(t, "x = @dec class {};",
		"let _initClass, _classThis;\nx = ([_classThis, _initClass] = _applyDecs(class {\n}, [], [dec]).c, _initClass && _initClass(), _classThis);\n")
	expectPrinted(t, "x = @dec class Named {};",
		"let _initClass, _classThis;\nx = ([_classThis, _initClass] = _applyDecs(class Named {\n}, [], [dec], \"Named\").c, _initClass && _initClass(), _classThis);\n")
	expectPrinted(t, "x = @dec class { @log m() {} };",
		"let _initProto, _initClass, _classThis;\nx = ([_classThis, _initClass] = _applyDecs(class {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  m() {\n  }\n}, [], [dec]).c, _initClass && _initClass(), _classThis);\n")

	// Decorated class expressions can appear anywhere an expression can
	expectPrinted(t, "f(@dec class {});",
		"let _initClass, _classThis;\nf(([_classThis, _initClass] = _applyDecs(class {\n}, [], [dec]).c, _initClass && _initClass(), _classThis));\n")
}

func TestLowerConstructorPlacement(t *testing.T) {
	// An existing base class constructor runs the initializers first
	expectPrinted(t, "class Foo { @log m() {} constructor() { this.x = 1; } }",
		"let _initProto, _initClass;\nclass Foo {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  m() {\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n    this.x = 1;\n  }\n}\n")

	// A derived class constructor runs them right after "super()"
	expectPrinted(t, "class Foo extends Bar { @log m() {} constructor() { super(); this.x = 1; } }",
		"let _initProto, _initClass;\nclass Foo extends Bar {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  m() {\n  }\n  constructor() {\n    super();\n    if (_initProto)\n      _initProto(this);\n    this.x = 1;\n  }\n}\n")

	// When "super()" is nested inside another statement the initializers run
	// at the end of the constructor instead
	expectPrinted(t, "class Foo extends Bar { @log m() {} constructor() { if (x) super(); } }",
		"let _initProto, _initClass;\nclass Foo extends Bar {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  m() {\n  }\n  constructor() {\n    if (x)\n      super();\n    if (_initProto)\n      _initProto(this);\n  }\n}\n")

	// A derived class without a constructor gets one that forwards arguments
	expectPrinted(t, "class Foo extends Bar { @log m() {} }",
		"let _initProto, _initClass;\nclass Foo extends Bar {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[log, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor(...args) {\n    super(...args);\n    if (_initProto)\n      _initProto(this);\n  }\n  m() {\n  }\n}\n")
}

func TestLowerSyntheticNames(t *testing.T) {
	// Each lowered class gets fresh helper names
	expectPrinted(t, "class A { @a m() {} }\nclass B { @b m() {} }",
		"let _initProto, _initClass;\nclass A {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[a, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  m() {\n  }\n}\nlet _initProto2, _initClass2;\nclass B {\n  static {\n    [_initProto2, _initClass2] = _applyDecs(this, [[b, 2, \"m\"]], []).e;\n    if (_initClass2)\n      _initClass2();\n  }\n  constructor() {\n    if (_initProto2)\n      _initProto2(this);\n  }\n  m() {\n  }\n}\n")

	// Names already used in the source are skipped
	expectPrinted(t, "let _initProto = 1;\nclass A { @a m() {} }",
		"let _initProto = 1;\nlet _initProto2, _initClass;\nclass A {\n  static {\n    [_initProto2, _initClass] = _applyDecs(this, [[a, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto2)\n      _initProto2(this);\n  }\n  m() {\n  }\n}\n")
}

func TestLowerNestedClasses(t *testing.T) {
	// The companion declaration stays inside the enclosing function
	expectPrinted(t, "function f() {\n  class A { @a m() {} }\n}",
		"function f() {\n  let _initProto, _initClass;\n  class A {\n    static {\n      [_initProto, _initClass] = _applyDecs(this, [[a, 2, \"m\"]], []).e;\n      if (_initClass)\n        _initClass();\n    }\n    constructor() {\n      if (_initProto)\n        _initProto(this);\n    }\n    m() {\n    }\n  }\n}\n")

	// Undecorated classes are left alone even when the file has decorators
	expectPrinted(t, "class A {}\nclass B { @b m() {} }",
		"class A {\n}\nlet _initProto, _initClass;\nclass B {\n  static {\n    [_initProto, _initClass] = _applyDecs(this, [[b, 2, \"m\"]], []).e;\n    if (_initClass)\n      _initClass();\n  }\n  constructor() {\n    if (_initProto)\n      _initProto(this);\n  }\n  m() {\n  }\n}\n")
}

func TestLowerComputedKeyError(t *testing.T) {
	expectParseError(t, "class Foo { @dec [x]() {} }",
		"<stdin>: error: Decorators are not allowed on members with computed keys\n")
}

func TestLoweredClassCount(t *testing.T) {
	check := func(contents string, expected int32) {
		t.Helper()
		t.Run(contents, func(t *testing.T) {
			t.Helper()
			log := logger.NewDeferLog()
			tree, ok := Parse(log, test.SourceForTest(contents), OptionsFromConfig(&config.Options{}))
			if !ok {
				t.Fatal("Parse error")
			}
			test.AssertEqual(t, tree.LoweredClassCount, expected)
		})
	}

	check("class Foo {}", 0)
	check("class Foo { m() {} }", 0)
	check("class Foo { @dec m() {} }", 1)
	check("@dec class Foo {}", 1)
	check("@a class A {}\n@b class B {}", 2)
	check("@a class Foo { @b m() {} }", 1)
}
