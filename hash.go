package zeste

import (
	"math/bits"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// TypeHash is a 64-bit deterministic hash of a component type's canonical
// name. It is stable for the lifetime of a single build of this package
// but is never guaranteed stable across versions or processes, and must
// not be persisted across library versions or processes.
type TypeHash uint64

// canonicalName returns a name that is stable across calls within one
// build: package path plus type name for named types, and the type's full
// String() form otherwise (pointers, slices, anonymous structs, generic
// instantiations, ...). The name carries no function scope, so two named
// types declared inside different functions of one package with the same
// name share a canonical name, and therefore a TypeHash.
func canonicalName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if pkg := t.PkgPath(); pkg != "" && t.Name() != "" {
		return pkg + "." + t.Name()
	}
	return t.String()
}

// HashType hashes T's canonical name. Two calls for the same T, in the
// same build, always agree.
func HashType[T any]() TypeHash {
	var zero T
	return HashTypeOf(reflect.TypeOf(&zero).Elem())
}

// HashTypeOf is the runtime counterpart of HashType, for callers that only
// have a reflect.Type (e.g. while walking a bundle struct's fields).
func HashTypeOf(t reflect.Type) TypeHash {
	return TypeHash(xxhash.Sum64String(canonicalName(t)))
}

// mix2 folds two 64-bit hashes into one via 128-bit multiplication: the
// low 64 bits of a*b, xored with the high 64 bits. The product is
// commutative, so mix2(a,b) == mix2(b,a); archetype hashes get their order
// sensitivity from HashCompound starting its fold at compoundSeed.
func mix2(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return lo ^ hi
}

// HashTypes hashes an ordered list of runtime types the same way
// HashBundle hashes a bundle struct's fields: by folding each type's
// HashTypeOf with mix2, in order.
func HashTypes(types ...reflect.Type) TypeHash {
	hashes := make([]TypeHash, len(types))
	for i, t := range types {
		hashes[i] = HashTypeOf(t)
	}
	return HashCompound(hashes)
}

// HashBundle hashes the ordered field types of struct B. B is expected to
// be a plain struct whose fields, in declaration order, name the
// component types of the bundle (e.g. `struct { Position; Velocity }`).
func HashBundle[B any]() TypeHash {
	var zero B
	t := reflect.TypeOf(zero)
	if t == nil || t.Kind() != reflect.Struct {
		panic(addTrace(errInvalidBundle(t)))
	}
	types := make([]reflect.Type, t.NumField())
	for i := range types {
		types[i] = t.Field(i).Type
	}
	return HashTypes(types...)
}

// compoundSeed is the nonzero starting value of HashCompound's fold.
const compoundSeed = 0x9e3779b97f4a7c15

// HashCompound folds an ordered slice of already-computed type hashes
// with mix2, starting from compoundSeed, so [A,B] and [B,A] hash
// differently. An empty slice hashes to 0. It is the shared tail of
// HashType-based and TypeInfo-based (HashCompoundInfo) compound hashing.
func HashCompound(hashes []TypeHash) TypeHash {
	if len(hashes) == 0 {
		return 0
	}
	acc := uint64(compoundSeed)
	for _, h := range hashes {
		acc = mix2(acc, uint64(h))
	}
	return TypeHash(acc)
}

// HashCompoundInfo is the runtime variant of HashCompound that folds the
// hash already carried by each TypeInfo, used to compute an archetype's
// identity from its component list.
func HashCompoundInfo(infos []TypeInfo) uint64 {
	hashes := make([]TypeHash, len(infos))
	for i, info := range infos {
		hashes[i] = info.Hash
	}
	return uint64(HashCompound(hashes))
}
