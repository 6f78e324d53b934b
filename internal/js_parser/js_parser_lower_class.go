package js_parser

// This file rewrites classes that carry decorators into plain ES2022 code.
// Member decorators turn into a static block that hands the decorator list to
// the "_applyDecs" runtime helper, and class decorators turn the declaration
// into a "let" binding that is reassigned with whatever the decorators return:
//
//   @register class Foo {
//     @log greet() {}
//   }
//
// becomes
//
//   let _initProto, _initClass;
//   let Foo = class Foo {
//     static {
//       [_initProto, _initClass] = _applyDecs(this, [[log, 2, "greet"]], []).e;
//       if (_initClass) _initClass();
//     }
//     greet() {}
//   };
//   [Foo, _initClass] = _applyDecs(Foo, [], [register], "Foo").c;
//   if (_initClass) _initClass();
//
// The printer injects the helper definitions at the top of the file whenever
// at least one class was rewritten.

import (
	"strconv"

	"github.com/nyanrus/decs/internal/helpers"
	"github.com/nyanrus/decs/internal/js_ast"
	"github.com/nyanrus/decs/internal/logger"
)

// These values are part of the wire format shared with the runtime helper.
// Each descriptor entry encodes its member kind in the low three bits of the
// flags slot, with bit 3 marking static members.
type decoratorKind uint8

const (
	decoratorKindField decoratorKind = iota
	decoratorKindAccessor
	decoratorKindMethod
	decoratorKindGetter
	decoratorKindSetter
	decoratorKindClass
)

const decoratorFlagStatic = 8

// One decorated class member, ready to be emitted as a descriptor entry of
// the form "[decorator, flags, key, isPrivate]".
type decoratorDescriptor struct {
	decorators []js_ast.Decorator

	// The key as it appears in the descriptor. Private names are stored
	// without the leading "#" since the runtime only sees the closures that
	// reach the private member, never the name itself.
	keyExpr   js_ast.Expr
	memberKey string

	kind      decoratorKind
	isStatic  bool
	isPrivate bool
}

// Everything the rewrite needs to know about one decorated class.
type classLoweringContext struct {
	className          string
	memberDescriptors  []decoratorDescriptor
	classDecorators    []js_ast.Decorator
	hasConstructor     bool
	isDerivedClass     bool
	hasInstanceMembers bool
}

// Returns a name that is not used anywhere in the source file and has not
// been handed out before. Collisions append a counter: "_initProto" is
// followed by "_initProto2", then "_initProto3".
func (p *parser) generateSyntheticName(base string) string {
	name := base
	for n := 2; p.syntheticNames[name] || p.lexer.AllIdentifiers[name]; n++ {
		name = base + strconv.Itoa(n)
	}
	p.syntheticNames[name] = true
	return name
}

// The entry point for the lowering pass, called once per file after parsing.
// Files that never produced a decorator are returned untouched.
func (p *parser) lowerDecoratedClasses(stmts []js_ast.Stmt) []js_ast.Stmt {
	if !p.sawDecorators {
		return stmts
	}
	return p.lowerStmtList(stmts)
}

// Lowers every statement in a statement list. Companion "let" declarations
// generated for class expressions nested somewhere inside a statement are
// flushed right before that statement.
func (p *parser) lowerStmtList(stmts []js_ast.Stmt) []js_ast.Stmt {
	result := make([]js_ast.Stmt, 0, len(stmts))
	oldCompanions := p.companionDecls
	for _, stmt := range stmts {
		p.companionDecls = nil
		lowered := p.lowerStmt(stmt)
		result = append(result, p.companionDecls...)
		result = append(result, lowered...)
	}
	p.companionDecls = oldCompanions
	return result
}

// Lowers a statement in a non-list position such as an "if" branch or a loop
// body. Class declarations cannot appear in these positions, so the only
// rewrites are to nested expressions, and any companion declarations float up
// to the enclosing statement list.
func (p *parser) lowerSingleStmt(stmt js_ast.Stmt) js_ast.Stmt {
	stmts := p.lowerStmt(stmt)
	if len(stmts) == 1 {
		return stmts[0]
	}
	return js_ast.Stmt{Loc: stmt.Loc, Data: &js_ast.SBlock{Stmts: stmts}}
}

func (p *parser) lowerStmt(stmt js_ast.Stmt) []js_ast.Stmt {
	switch s := stmt.Data.(type) {
	case *js_ast.SClass:
		stmts, _ := p.lowerClass(stmt, js_ast.Expr{})
		return stmts

	case *js_ast.SExportDefault:
		switch s2 := s.Value.Data.(type) {
		case *js_ast.SClass:
			stmts, _ := p.lowerClass(stmt, js_ast.Expr{})
			return stmts

		case *js_ast.SFunction:
			p.lowerFn(&s2.Fn)

		case *js_ast.SExpr:
			p.lowerExpr(&s2.Value)
		}

	case *js_ast.SFunction:
		p.lowerFn(&s.Fn)

	case *js_ast.SBlock:
		s.Stmts = p.lowerStmtList(s.Stmts)

	case *js_ast.SExpr:
		p.lowerExpr(&s.Value)

	case *js_ast.SLocal:
		for i := range s.Decls {
			decl := &s.Decls[i]
			p.lowerBinding(decl.Binding)
			if decl.Value != nil {
				p.lowerExpr(decl.Value)
			}
		}

	case *js_ast.SReturn:
		if s.Value != nil {
			p.lowerExpr(s.Value)
		}

	case *js_ast.SThrow:
		p.lowerExpr(&s.Value)

	case *js_ast.SIf:
		p.lowerExpr(&s.Test)
		s.Yes = p.lowerSingleStmt(s.Yes)
		if s.No != nil {
			*s.No = p.lowerSingleStmt(*s.No)
		}

	case *js_ast.SFor:
		if s.Init != nil {
			*s.Init = p.lowerSingleStmt(*s.Init)
		}
		if s.Test != nil {
			p.lowerExpr(s.Test)
		}
		if s.Update != nil {
			p.lowerExpr(s.Update)
		}
		s.Body = p.lowerSingleStmt(s.Body)

	case *js_ast.SForIn:
		s.Init = p.lowerSingleStmt(s.Init)
		p.lowerExpr(&s.Value)
		s.Body = p.lowerSingleStmt(s.Body)

	case *js_ast.SForOf:
		s.Init = p.lowerSingleStmt(s.Init)
		p.lowerExpr(&s.Value)
		s.Body = p.lowerSingleStmt(s.Body)

	case *js_ast.SDoWhile:
		s.Body = p.lowerSingleStmt(s.Body)
		p.lowerExpr(&s.Test)

	case *js_ast.SWhile:
		p.lowerExpr(&s.Test)
		s.Body = p.lowerSingleStmt(s.Body)

	case *js_ast.SWith:
		p.lowerExpr(&s.Value)
		s.Body = p.lowerSingleStmt(s.Body)

	case *js_ast.SLabel:
		s.Stmt = p.lowerSingleStmt(s.Stmt)

	case *js_ast.SSwitch:
		p.lowerExpr(&s.Test)
		for i := range s.Cases {
			c := &s.Cases[i]
			if c.Value != nil {
				p.lowerExpr(c.Value)
			}
			c.Body = p.lowerStmtList(c.Body)
		}

	case *js_ast.STry:
		s.Body = p.lowerStmtList(s.Body)
		if s.Catch != nil {
			if s.Catch.Binding != nil {
				p.lowerBinding(*s.Catch.Binding)
			}
			s.Catch.Body = p.lowerStmtList(s.Catch.Body)
		}
		if s.Finally != nil {
			s.Finally.Stmts = p.lowerStmtList(s.Finally.Stmts)
		}
	}

	return []js_ast.Stmt{stmt}
}

func (p *parser) lowerBinding(binding js_ast.Binding) {
	switch b := binding.Data.(type) {
	case *js_ast.BArray:
		for i := range b.Items {
			item := &b.Items[i]
			p.lowerBinding(item.Binding)
			if item.DefaultValue != nil {
				p.lowerExpr(item.DefaultValue)
			}
		}

	case *js_ast.BObject:
		for i := range b.Properties {
			property := &b.Properties[i]
			if property.IsComputed {
				p.lowerExpr(&property.Key)
			}
			p.lowerBinding(property.Value)
			if property.DefaultValue != nil {
				p.lowerExpr(property.DefaultValue)
			}
		}
	}
}

func (p *parser) lowerArgs(args []js_ast.Arg) {
	for i := range args {
		arg := &args[i]
		p.lowerBinding(arg.Binding)
		if arg.Default != nil {
			p.lowerExpr(arg.Default)
		}
	}
}

func (p *parser) lowerFn(fn *js_ast.Fn) {
	p.lowerArgs(fn.Args)
	fn.Body.Stmts = p.lowerStmtList(fn.Body.Stmts)
}

func (p *parser) lowerExpr(expr *js_ast.Expr) {
	switch e := expr.Data.(type) {
	case *js_ast.EClass:
		_, result := p.lowerClass(js_ast.Stmt{}, *expr)
		*expr = result

	case *js_ast.EFunction:
		p.lowerFn(&e.Fn)

	case *js_ast.EArrow:
		p.lowerArgs(e.Args)
		e.Body.Stmts = p.lowerStmtList(e.Body.Stmts)

	case *js_ast.ECall:
		p.lowerExpr(&e.Target)
		for i := range e.Args {
			p.lowerExpr(&e.Args[i])
		}

	case *js_ast.ENew:
		p.lowerExpr(&e.Target)
		for i := range e.Args {
			p.lowerExpr(&e.Args[i])
		}

	case *js_ast.EDot:
		p.lowerExpr(&e.Target)

	case *js_ast.EIndex:
		p.lowerExpr(&e.Target)
		p.lowerExpr(&e.Index)

	case *js_ast.EUnary:
		p.lowerExpr(&e.Value)

	case *js_ast.EBinary:
		p.lowerExpr(&e.Left)
		p.lowerExpr(&e.Right)

	case *js_ast.EIf:
		p.lowerExpr(&e.Test)
		p.lowerExpr(&e.Yes)
		p.lowerExpr(&e.No)

	case *js_ast.EArray:
		for i := range e.Items {
			p.lowerExpr(&e.Items[i])
		}

	case *js_ast.EObject:
		for i := range e.Properties {
			property := &e.Properties[i]
			if property.IsComputed {
				p.lowerExpr(&property.Key)
			}
			if property.Value != nil {
				p.lowerExpr(property.Value)
			}
			if property.Initializer != nil {
				p.lowerExpr(property.Initializer)
			}
		}

	case *js_ast.ESpread:
		p.lowerExpr(&e.Value)

	case *js_ast.EAwait:
		p.lowerExpr(&e.Value)

	case *js_ast.EYield:
		if e.Value != nil {
			p.lowerExpr(e.Value)
		}

	case *js_ast.ETemplate:
		if e.Tag != nil {
			p.lowerExpr(e.Tag)
		}
		for i := range e.Parts {
			p.lowerExpr(&e.Parts[i].Value)
		}

	case *js_ast.EImportCall:
		p.lowerExpr(&e.Expr)
		if e.Options != nil {
			p.lowerExpr(e.Options)
		}
	}
}

// Rewrites everything nested inside a class body. This runs before the class
// itself is rewritten so that inner decorated classes come out first.
func (p *parser) lowerClassMembers(class *js_ast.Class) {
	if class.Extends != nil {
		p.lowerExpr(class.Extends)
	}
	for i := range class.Decorators {
		p.lowerExpr(&class.Decorators[i].Value)
	}
	for i := range class.Properties {
		property := &class.Properties[i]
		if property.Kind == js_ast.PropertyClassStaticBlock {
			property.ClassStaticBlock.Stmts = p.lowerStmtList(property.ClassStaticBlock.Stmts)
			continue
		}
		for j := range property.Decorators {
			p.lowerExpr(&property.Decorators[j].Value)
		}
		if property.IsComputed {
			p.lowerExpr(&property.Key)
		}
		if property.Value != nil {
			p.lowerExpr(property.Value)
		}
		if property.Initializer != nil {
			p.lowerExpr(property.Initializer)
		}
	}
}

// Strips the decorators off a class and its members and records what was
// removed. Member descriptors keep their source order. The runtime partitions
// them into its static/instance and public/private passes on its own, so the
// collector does not group or pair anything here.
func (p *parser) collectClassDecorators(class *js_ast.Class) (ctx classLoweringContext) {
	ctx.isDerivedClass = class.Extends != nil
	if class.Name != nil {
		ctx.className = class.Name.Name
	}
	ctx.classDecorators = class.Decorators
	class.Decorators = nil

	for i := range class.Properties {
		property := &class.Properties[i]
		if property.Kind == js_ast.PropertyClassStaticBlock {
			continue
		}

		if property.IsMethod && !property.IsStatic && !property.IsComputed {
			if key, ok := property.Key.Data.(*js_ast.EString); ok && helpers.UTF16EqualsString(key.Value, "constructor") {
				ctx.hasConstructor = true
			}
		}

		if len(property.Decorators) == 0 {
			continue
		}
		decorators := property.Decorators
		property.Decorators = nil

		if property.IsComputed {
			r := logger.Range{Loc: decorators[0].AtLoc, Len: 1}
			p.log.AddRangeError(&p.source, r, "Decorators are not allowed on members with computed keys")
			continue
		}

		desc := decoratorDescriptor{decorators: decorators, isStatic: property.IsStatic}
		switch property.Kind {
		case js_ast.PropertyGet:
			desc.kind = decoratorKindGetter
		case js_ast.PropertySet:
			desc.kind = decoratorKindSetter
		case js_ast.PropertyAutoAccessor:
			desc.kind = decoratorKindAccessor
		default:
			if property.IsMethod {
				desc.kind = decoratorKindMethod
			} else {
				desc.kind = decoratorKindField
			}
		}

		switch key := property.Key.Data.(type) {
		case *js_ast.EPrivateIdentifier:
			desc.isPrivate = true
			desc.memberKey = key.Name[1:]
			desc.keyExpr = js_ast.Expr{Loc: property.Key.Loc, Data: &js_ast.EString{
				Value: helpers.StringToUTF16(desc.memberKey)}}

		case *js_ast.EString:
			desc.memberKey = helpers.UTF16ToString(key.Value)
			desc.keyExpr = property.Key

		default:
			// Numeric and bigint keys pass through unchanged. The runtime
			// normalizes them with the same ToPropertyKey coercion the engine
			// itself applies to member keys.
			desc.keyExpr = property.Key
		}

		if !desc.isStatic {
			ctx.hasInstanceMembers = true
		}
		ctx.memberDescriptors = append(ctx.memberDescriptors, desc)
	}
	return
}

// Builds the descriptor array passed to "_applyDecs": one entry of the form
// "[decorator, flags, key, isPrivate]" per decorated member. Stacked
// decorators become a nested array and the isPrivate slot is omitted for
// public members.
func (p *parser) memberDescriptorList(ctx *classLoweringContext, loc logger.Loc) js_ast.Expr {
	items := make([]js_ast.Expr, 0, len(ctx.memberDescriptors))
	for _, desc := range ctx.memberDescriptors {
		var decorator js_ast.Expr
		if len(desc.decorators) == 1 {
			decorator = desc.decorators[0].Value
		} else {
			list := make([]js_ast.Expr, len(desc.decorators))
			for i, d := range desc.decorators {
				list[i] = d.Value
			}
			decorator = js_ast.Expr{Loc: desc.decorators[0].Value.Loc, Data: &js_ast.EArray{
				Items: list, IsSingleLine: true}}
		}

		flags := int(desc.kind)
		if desc.isStatic {
			flags |= decoratorFlagStatic
		}

		entry := []js_ast.Expr{
			decorator,
			{Loc: desc.keyExpr.Loc, Data: &js_ast.ENumber{Value: float64(flags)}},
			desc.keyExpr,
		}
		if desc.isPrivate {
			entry = append(entry, js_ast.Expr{Loc: desc.keyExpr.Loc, Data: &js_ast.EBoolean{Value: true}})
		}
		items = append(items, js_ast.Expr{Loc: decorator.Loc, Data: &js_ast.EArray{
			Items: entry, IsSingleLine: true}})
	}
	return js_ast.Expr{Loc: loc, Data: &js_ast.EArray{Items: items, IsSingleLine: true}}
}

// Builds "_applyDecs(target, members, classDecs, "Name").e" (or ".c"). The
// class name argument is only passed along for named classes so a decorator
// replacing the class can be renamed to match.
func (p *parser) applyDecsCall(loc logger.Loc, target js_ast.Expr, memberList js_ast.Expr,
	classDecorators []js_ast.Decorator, className string, field string) js_ast.Expr {
	classDecList := make([]js_ast.Expr, len(classDecorators))
	for i, decorator := range classDecorators {
		classDecList[i] = decorator.Value
	}
	args := []js_ast.Expr{
		target,
		memberList,
		{Loc: loc, Data: &js_ast.EArray{Items: classDecList, IsSingleLine: true}},
	}
	if className != "" {
		args = append(args, js_ast.Expr{Loc: loc, Data: &js_ast.EString{
			Value: helpers.StringToUTF16(className)}})
	}
	return js_ast.Expr{Loc: loc, Data: &js_ast.EDot{
		Target: js_ast.Expr{Loc: loc, Data: &js_ast.ECall{
			Target: js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{Name: "_applyDecs"}},
			Args:   args,
		}},
		Name:    field,
		NameLoc: loc,
	}}
}

// "if (_initProto) _initProto(this);"
func initRunnerGuard(loc logger.Loc, name string, args []js_ast.Expr) js_ast.Stmt {
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SIf{
		Test: js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{Name: name}},
		Yes: js_ast.Stmt{Loc: loc, Data: &js_ast.SExpr{Value: js_ast.Expr{Loc: loc, Data: &js_ast.ECall{
			Target: js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{Name: name}},
			Args:   args,
		}}}},
	}}
}

// "let _initProto, _initClass;"
func companionDeclStmt(loc logger.Loc, names []string) js_ast.Stmt {
	decls := make([]js_ast.Decl, len(names))
	for i, name := range names {
		decls[i] = js_ast.Decl{Binding: js_ast.Binding{Loc: loc, Data: &js_ast.BIdentifier{Name: name}}}
	}
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SLocal{Kind: js_ast.LocalLet, Decls: decls}}
}

// Synthesizes the static block that runs member decorators during class
// evaluation:
//
//   static {
//     [_initProto, _initClass] = _applyDecs(this, [...], []).e;
//     if (_initClass) _initClass();
//   }
//
// The ".e" pair holds the instance and static initializer runners. The static
// runner fires right away while the class is still being set up, and the
// instance runner is stashed for the constructor to call on each new object.
func (p *parser) makeDecoratorStaticBlock(ctx *classLoweringContext, loc logger.Loc,
	initProtoName string, initClassName string) js_ast.Property {
	assign := js_ast.AssignStmt(
		js_ast.Expr{Loc: loc, Data: &js_ast.EArray{Items: []js_ast.Expr{
			{Loc: loc, Data: &js_ast.EIdentifier{Name: initProtoName}},
			{Loc: loc, Data: &js_ast.EIdentifier{Name: initClassName}},
		}, IsSingleLine: true}},
		p.applyDecsCall(loc, js_ast.Expr{Loc: loc, Data: &js_ast.EThis{}},
			p.memberDescriptorList(ctx, loc), nil, "", "e"),
	)
	return js_ast.Property{
		Kind: js_ast.PropertyClassStaticBlock,
		ClassStaticBlock: &js_ast.ClassStaticBlock{Loc: loc, Stmts: []js_ast.Stmt{
			assign,
			initRunnerGuard(loc, initClassName, nil),
		}},
	}
}

// Makes the constructor call "_initProto(this)" so each new instance gets its
// decorated member initializers. In a base class the call goes first, and in
// a derived class it goes right after "super()" since "this" does not exist
// before then. A constructor is synthesized when the class has none. The
// static block is already at the front of the property list when this runs.
func (p *parser) instrumentConstructor(class *js_ast.Class, ctx *classLoweringContext,
	loc logger.Loc, initProtoName string) {
	guard := initRunnerGuard(loc, initProtoName, []js_ast.Expr{{Loc: loc, Data: &js_ast.EThis{}}})

	if ctx.hasConstructor {
		for i := range class.Properties {
			property := &class.Properties[i]
			if !property.IsMethod || property.IsStatic || property.IsComputed {
				continue
			}
			key, ok := property.Key.Data.(*js_ast.EString)
			if !ok || !helpers.UTF16EqualsString(key.Value, "constructor") {
				continue
			}

			fn := property.Value.Data.(*js_ast.EFunction)
			stmts := fn.Fn.Body.Stmts
			if ctx.isDerivedClass {
				inserted := false
				for j := range stmts {
					if js_ast.IsSuperCall(stmts[j]) {
						stmts = append(stmts[:j+1], append([]js_ast.Stmt{guard}, stmts[j+1:]...)...)
						inserted = true
						break
					}
				}
				if !inserted {
					// "super()" is buried inside some nested statement, so
					// the initializers run last
					stmts = append(stmts, guard)
				}
			} else {
				stmts = append([]js_ast.Stmt{guard}, stmts...)
			}
			fn.Fn.Body.Stmts = stmts
			return
		}
		return
	}

	fn := js_ast.Fn{Body: js_ast.FnBody{Loc: loc}}
	if ctx.isDerivedClass {
		// "constructor(...args) { super(...args); if (_initProto) _initProto(this); }"
		fn.Args = []js_ast.Arg{{Binding: js_ast.Binding{Loc: loc, Data: &js_ast.BIdentifier{Name: "args"}}}}
		fn.HasRestArg = true
		fn.Body.Stmts = []js_ast.Stmt{
			{Loc: loc, Data: &js_ast.SExpr{Value: js_ast.Expr{Loc: loc, Data: &js_ast.ECall{
				Target: js_ast.Expr{Loc: loc, Data: &js_ast.ESuper{}},
				Args: []js_ast.Expr{{Loc: loc, Data: &js_ast.ESpread{
					Value: js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{Name: "args"}}}}},
			}}}},
			guard,
		}
	} else {
		// "constructor() { if (_initProto) _initProto(this); }"
		fn.Body.Stmts = []js_ast.Stmt{guard}
	}

	ctor := js_ast.Property{
		IsMethod: true,
		Key:      js_ast.Expr{Loc: loc, Data: &js_ast.EString{Value: helpers.StringToUTF16("constructor")}},
		Value:    &js_ast.Expr{Loc: loc, Data: &js_ast.EFunction{Fn: fn}},
	}
	properties := make([]js_ast.Property, 0, len(class.Properties)+1)
	properties = append(properties, class.Properties[0], ctor)
	properties = append(properties, class.Properties[1:]...)
	class.Properties = properties
}

// Lower a decorated class statement or expression. Pass a statement whose
// data is an SClass (possibly wrapped in an SExportDefault) to get the
// replacement statements back, or pass an expression holding an EClass with
// "stmt.Data" left nil to get the replacement expression back. Classes
// without any decorators come back unchanged.
func (p *parser) lowerClass(stmt js_ast.Stmt, expr js_ast.Expr) ([]js_ast.Stmt, js_ast.Expr) {
	var class *js_ast.Class
	var classLoc logger.Loc
	var isExport bool
	var isExportDefault bool

	if stmt.Data == nil {
		e := expr.Data.(*js_ast.EClass)
		class = &e.Class
		classLoc = expr.Loc
	} else {
		switch s := stmt.Data.(type) {
		case *js_ast.SClass:
			class = &s.Class
			classLoc = stmt.Loc
			isExport = s.IsExport
		case *js_ast.SExportDefault:
			class = &s.Value.Data.(*js_ast.SClass).Class
			classLoc = s.Value.Loc
			isExportDefault = true
		default:
			panic("Internal error: expected a class statement")
		}
	}

	// Rewrite nested classes first
	p.lowerClassMembers(class)

	ctx := p.collectClassDecorators(class)
	if len(ctx.memberDescriptors) == 0 && len(ctx.classDecorators) == 0 {
		if stmt.Data == nil {
			return nil, expr
		}
		return []js_ast.Stmt{stmt}, js_ast.Expr{}
	}

	p.loweredClassCount++

	var initProtoName string
	if len(ctx.memberDescriptors) > 0 {
		initProtoName = p.generateSyntheticName("_initProto")
	}
	initClassName := p.generateSyntheticName("_initClass")
	companionNames := make([]string, 0, 3)
	if initProtoName != "" {
		companionNames = append(companionNames, initProtoName)
	}
	companionNames = append(companionNames, initClassName)

	if len(ctx.memberDescriptors) > 0 {
		block := p.makeDecoratorStaticBlock(&ctx, classLoc, initProtoName, initClassName)
		class.Properties = append([]js_ast.Property{block}, class.Properties...)
		if ctx.hasInstanceMembers {
			p.instrumentConstructor(class, &ctx, classLoc, initProtoName)
		}
	}

	if stmt.Data == nil {
		if len(ctx.classDecorators) == 0 {
			// Member decorators only: the static block does all the work and
			// the expression itself can stay where it is
			p.companionDecls = append(p.companionDecls, companionDeclStmt(classLoc, companionNames))
			return nil, expr
		}

		// "(@dec class {})" =>
		// "([_classThis, _initClass] = _applyDecs(class {}, [], [dec]).c,
		//   _initClass && _initClass(), _classThis)"
		classThisName := p.generateSyntheticName("_classThis")
		companionNames = append(companionNames, classThisName)
		p.companionDecls = append(p.companionDecls, companionDeclStmt(classLoc, companionNames))

		assign := js_ast.Assign(
			js_ast.Expr{Loc: classLoc, Data: &js_ast.EArray{Items: []js_ast.Expr{
				{Loc: classLoc, Data: &js_ast.EIdentifier{Name: classThisName}},
				{Loc: classLoc, Data: &js_ast.EIdentifier{Name: initClassName}},
			}, IsSingleLine: true}},
			p.applyDecsCall(classLoc, expr,
				js_ast.Expr{Loc: classLoc, Data: &js_ast.EArray{IsSingleLine: true}},
				ctx.classDecorators, ctx.className, "c"),
		)
		runInit := js_ast.Expr{Loc: classLoc, Data: &js_ast.EBinary{
			Op:   js_ast.BinOpLogicalAnd,
			Left: js_ast.Expr{Loc: classLoc, Data: &js_ast.EIdentifier{Name: initClassName}},
			Right: js_ast.Expr{Loc: classLoc, Data: &js_ast.ECall{
				Target: js_ast.Expr{Loc: classLoc, Data: &js_ast.EIdentifier{Name: initClassName}},
			}},
		}}
		return nil, js_ast.JoinAllWithComma([]js_ast.Expr{
			assign,
			runInit,
			{Loc: classLoc, Data: &js_ast.EIdentifier{Name: classThisName}},
		})
	}

	stmts := []js_ast.Stmt{companionDeclStmt(classLoc, companionNames)}

	if len(ctx.classDecorators) == 0 {
		// Member decorators only: the class statement stays in place with its
		// new static block, preceded by the companion declaration
		return append(stmts, stmt), js_ast.Expr{}
	}

	bindingName := ctx.className
	if bindingName == "" {
		// Only "export default class {}" can get here
		bindingName = p.generateSyntheticName("_Class")
	}

	// "class Foo {}" => "let Foo = class Foo {};"
	classExpr := js_ast.Expr{Loc: classLoc, Data: &js_ast.EClass{Class: *class}}
	stmts = append(stmts, js_ast.Stmt{Loc: classLoc, Data: &js_ast.SLocal{
		Kind:     js_ast.LocalLet,
		IsExport: isExport,
		Decls: []js_ast.Decl{{
			Binding: js_ast.Binding{Loc: classLoc, Data: &js_ast.BIdentifier{Name: bindingName}},
			Value:   &classExpr,
		}},
	}})

	// "[Foo, _initClass] = _applyDecs(Foo, [], [dec], "Foo").c;"
	stmts = append(stmts, js_ast.AssignStmt(
		js_ast.Expr{Loc: classLoc, Data: &js_ast.EArray{Items: []js_ast.Expr{
			{Loc: classLoc, Data: &js_ast.EIdentifier{Name: bindingName}},
			{Loc: classLoc, Data: &js_ast.EIdentifier{Name: initClassName}},
		}, IsSingleLine: true}},
		p.applyDecsCall(classLoc,
			js_ast.Expr{Loc: classLoc, Data: &js_ast.EIdentifier{Name: bindingName}},
			js_ast.Expr{Loc: classLoc, Data: &js_ast.EArray{IsSingleLine: true}},
			ctx.classDecorators, ctx.className, "c"),
	))

	// "if (_initClass) _initClass();"
	stmts = append(stmts, initRunnerGuard(classLoc, initClassName, nil))

	if isExportDefault {
		// "export default Foo;"
		stmts = append(stmts, js_ast.Stmt{Loc: stmt.Loc, Data: &js_ast.SExportDefault{
			Value: js_ast.Stmt{Loc: classLoc, Data: &js_ast.SExpr{
				Value: js_ast.Expr{Loc: classLoc, Data: &js_ast.EIdentifier{Name: bindingName}}}},
		}})
	}
	return stmts, js_ast.Expr{}
}
