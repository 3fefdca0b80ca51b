// Package typestate is the decision core of a builder-pattern code
// generator: it classifies each builder-settable member as required or
// optional and derives the compile-time marker types that let the
// generated builder reject an unfinished build at compile time.
//
// 🚀 What does typestate do?
//
//	A small, deterministic, zero-side-effect engine that brings together:
//		• Annotation parsing: a strict mini-language (`into`, `default`, `required`)
//		• Field classification: type-implied optionality reconciled with overrides
//		• Typestate derivation: Unset/Set marker types per member
//		• Top-level records: finishing-method and builder-type overrides
//
// ✨ Why this shape?
//
//   - One decision per declaration site — computed once, never recomputed
//   - Fail-fast diagnostics — the first violated rule wins, with a source
//     span and a corrective message, never a pile of errors
//   - Pure values in, pure values out — no I/O, no globals, no runtime cost
//
// Everything is organized under four subpackages:
//
//	annot/  — annotation surface syntax, spans, diagnostics, strict-bool
//	tyexpr/ — declared-type model (`Ident<Args,…>`) with Option/bool probes
//	field/  — the classifier and the typestate type deriver
//	params/ — builder-level override records (finish_fn, builder_type, name/vis)
//
// Quick sketch:
//
//	x1: u32          → Required<u32>   … Set<u32>
//	x2: Option<u32>  → Optional<u32>   … Set<Option<u32>>
//	x3: bool         → Optional<bool>  … Set<Option<bool>>
//
// The surrounding generator splices these marker types into a state trait
// with one slot per member; finishing the build is only well-typed once
// every required slot reached its Set state.
//
//	go get github.com/buildgen/typestate
package typestate
