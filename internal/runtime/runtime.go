package runtime

// Code is prepended verbatim to every transformed file that lowered at least
// one decorated class. It is emitted as printed output, never parsed, so it
// must already look like the printer's style and must not contain backticks.
// The text defines each helper exactly once and never uses "var": the
// transform targets ES2022 engines, where const/let are always available.
const Code = `function _applyDecs(targetClass, memberDecs, classDecs, className, parentClass, metadataParent) {
  const symbolMetadata = Symbol.metadata || Symbol.for("Symbol.metadata");
  const kindNames = ["field", "accessor", "method", "getter", "setter", "class"];
  const usedNames = [Object.create(null), Object.create(null)];
  const protoMembers = [];
  const staticMembers = [];
  const protoCallbacks = [];
  const staticCallbacks = [];
  const assertCallable = (fn, what, verb, required) => {
    if (typeof fn !== "function" && (required || fn !== undefined)) {
      throw new TypeError(what + " must " + (verb || "be") + " a function" + (required ? "" : " or undefined"));
    }
    return fn;
  };
  let inherited = metadataParent;
  if (inherited === undefined && parentClass !== undefined) {
    inherited = parentClass[symbolMetadata];
  }
  if (inherited === undefined) {
    inherited = targetClass[symbolMetadata];
  }
  const metadata = Object.create(inherited == null ? null : inherited);
  const attachMetadata = (cls) => {
    Object.defineProperty(cls, symbolMetadata, { configurable: true, enumerable: true, value: metadata });
    return cls;
  };
  const runCallbacks = (callbacks, receiver) => {
    for (const callback of callbacks) {
      callback.call(receiver);
    }
  };
  const applyMemberDec = (descriptor, isStatic, isPrivate) => {
    const decs = [].concat(descriptor[0]);
    const kind = descriptor[1] & 7;
    const name = isPrivate ? "#" + descriptor[2] : _toPropertyKey(descriptor[2]);
    const target = isStatic ? targetClass : targetClass.prototype;
    const extras = kind < 2 ? [] : isStatic ? staticCallbacks : protoCallbacks;
    const chain = [];
    let property;
    if (!isPrivate) {
      const registry = usedNames[isStatic ? 1 : 0];
      const stored = registry[name];
      if (stored && (stored ^ kind) !== 7) {
        throw new Error("Decorating two elements with the same name (" + String(name) + ") is not supported yet");
      }
      registry[name] = kind < 3 ? 1 : kind;
      if (kind !== 0) {
        property = Object.getOwnPropertyDescriptor(target, name);
      }
    }
    let access;
    if (isPrivate) {
      const brandCheck = isStatic
        ? (other) => _checkInRHS(other) === targetClass
        : (other) => _checkInRHS(other) instanceof targetClass;
      const guard = (other) => {
        if (!brandCheck(other)) {
          throw new TypeError("Attempted to access private element on non-instance");
        }
      };
      access = { has: brandCheck };
      if (kind !== 4) {
        access.get = (other) => {
          guard(other);
        };
      }
      if (kind !== 2 && kind !== 3) {
        access.set = (other, value) => {
          guard(other);
        };
      }
    } else {
      access = { has: (other) => name in other };
      if (kind !== 4) {
        access.get = (other) => other[name];
      }
      if (kind !== 2 && kind !== 3) {
        access.set = (other, value) => {
          other[name] = value;
        };
      }
    }
    for (let i = decs.length - 1; i >= 0; i--) {
      const dec = assertCallable(decs[i], "A decorator", "be", true);
      const state = { done: false };
      const context = {
        kind: kindNames[kind],
        name,
        static: isStatic,
        private: isPrivate,
        metadata,
        access,
        addInitializer: (callback) => {
          if (state.done) {
            throw new TypeError("attempted to call addInitializer after decoration was finished");
          }
          assertCallable(callback, "An initializer", "be", true);
          extras.push(callback);
        },
      };
      let value;
      if (!isPrivate && kind !== 0) {
        value = kind === 1 ? { get: property.get, set: property.set }
          : kind === 3 ? property.get
          : kind === 4 ? property.set
          : property.value;
      }
      const result = dec.call(undefined, value, context);
      state.done = true;
      if (kind === 1) {
        if (result !== undefined) {
          if (typeof result !== "object" || result === null) {
            throw new TypeError("accessor decorators must return an object with get, set, or init properties or undefined");
          }
          let piece = assertCallable(result.get, "accessor.get");
          if (piece && !isPrivate) {
            property.get = piece;
          }
          piece = assertCallable(result.set, "accessor.set");
          if (piece && !isPrivate) {
            property.set = piece;
          }
          piece = assertCallable(result.init, "accessor.init");
          if (piece) {
            chain.unshift(piece);
          }
        }
      } else if (kind === 0) {
        const init = assertCallable(result, "field decorators", "return");
        if (init) {
          chain.unshift(init);
        }
      } else {
        const replacement = assertCallable(result, kindNames[kind] + " decorators", "return");
        if (replacement && !isPrivate) {
          property[kind === 3 ? "get" : kind === 4 ? "set" : "value"] = replacement;
        }
      }
    }
    if (!isPrivate && kind !== 0) {
      Object.defineProperty(target, name, property);
    }
    if (kind < 2) {
      (isStatic ? staticMembers : protoMembers).push({ kind, name, isPrivate, chain, extras });
    }
  };
  const applyPass = (staticBit, wantPrivate) => {
    for (const descriptor of memberDecs) {
      if ((descriptor[1] & 8) === staticBit && !!descriptor[3] === wantPrivate) {
        applyMemberDec(descriptor, staticBit === 8, wantPrivate);
      }
    }
  };
  applyPass(8, false);
  applyPass(0, false);
  applyPass(8, true);
  applyPass(0, true);
  const makeRunner = (members, callbacks, isStatic) => {
    if (members.length === 0 && callbacks.length === 0) {
      return undefined;
    }
    return function (instance) {
      const receiver = isStatic ? targetClass : instance;
      runCallbacks(callbacks, receiver);
      for (const member of members) {
        if (!member.isPrivate && member.chain.length > 0) {
          if (member.kind !== 0 || Object.hasOwn(receiver, member.name)) {
            let value = receiver[member.name];
            for (const init of member.chain) {
              value = init.call(receiver, value);
            }
            receiver[member.name] = value;
          }
        }
        runCallbacks(member.extras, receiver);
      }
    };
  };
  if (!classDecs || classDecs.length === 0) {
    attachMetadata(targetClass);
  }
  return {
    e: [makeRunner(protoMembers, protoCallbacks, false), makeRunner(staticMembers, staticCallbacks, true)],
    get c() {
      if (!classDecs || classDecs.length === 0) {
        return undefined;
      }
      const callbacks = [];
      const name = className === undefined ? targetClass.name : className;
      let currentClass = targetClass;
      for (let i = classDecs.length - 1; i >= 0; i--) {
        const dec = assertCallable(classDecs[i], "A decorator", "be", true);
        const state = { done: false };
        const context = {
          kind: "class",
          name,
          metadata,
          addInitializer: (callback) => {
            if (state.done) {
              throw new TypeError("attempted to call addInitializer after decoration was finished");
            }
            assertCallable(callback, "An initializer", "be", true);
            callbacks.push(callback);
          },
        };
        const result = dec.call(undefined, currentClass, context);
        state.done = true;
        if (assertCallable(result, "class decorators", "return")) {
          currentClass = result;
        }
      }
      if (name !== undefined && !Object.getOwnPropertyDescriptor(currentClass, "name")) {
        _setFunctionName(currentClass, name);
      }
      attachMetadata(currentClass);
      return [currentClass, () => runCallbacks(callbacks, currentClass)];
    },
  };
}
function _toPropertyKey(value) {
  const key = _toPrimitive(value, "string");
  return typeof key === "symbol" ? key : String(key);
}
function _toPrimitive(value, hint) {
  if (typeof value !== "object" || !value) {
    return value;
  }
  const convert = value[Symbol.toPrimitive];
  if (convert !== undefined) {
    const result = convert.call(value, hint || "default");
    if (typeof result !== "object") {
      return result;
    }
    throw new TypeError("@@toPrimitive must return a primitive value.");
  }
  return (hint === "string" ? String : Number)(value);
}
function _setFunctionName(fn, name, prefix) {
  if (typeof name === "symbol") {
    name = name.description ? "[" + name.description + "]" : "";
  }
  try {
    Object.defineProperty(fn, "name", { configurable: true, value: prefix ? prefix + " " + name : name });
  } catch (_) {
  }
  return fn;
}
function _checkInRHS(value) {
  if (Object(value) !== value) {
    throw new TypeError("right-hand side of 'in' should be an object, got " + (value !== null ? typeof value : "null"));
  }
  return value;
}
`

// The stage 3 decorator transform rewrites every decorated class so that all
// decorator application happens through "_applyDecs" at class evaluation
// time.
//
// Member decorators feed a static initialization block inserted at the top of
// the class body:
//
//   // Input                            // Output
//   class C {                           let _initProto, _initClass;
//     @logged                           class C {
//     m(x) { return x + 1; }              static {
//   }                                       [_initProto, _initClass] = _applyDecs(this, [[logged, 2, "m", false]], []).e;
//                                           if (_initClass) _initClass();
//                                         }
//                                         constructor() {
//                                           if (_initProto) _initProto(this);
//                                         }
//                                         m(x) { return x + 1; }
//                                       }
//
// Class decorators force the declaration into a reassignable binding, since a
// decorator may replace the class wholesale:
//
//   // Input                            // Output
//   @dec                                let _initClass;
//   class C {                           let C = class C {
//   }                                   };
//                                       [C, _initClass] = _applyDecs(C, [], [dec], "C").c;
//                                       if (_initClass) _initClass();
//
// The returned "e" pair is [instance runner, static runner]; either slot is
// undefined when that side collected nothing, which is why the emitted guards
// test before calling. The "c" getter is lazy: class decorators only run when
// the lowered code extracts it.
