// Package tyexpr models declared types as small `Ident<Args,…>` trees and
// provides the two structural probes the field classifier depends on:
// optional-wrapper detection (with inner-type extraction) and two-valued
// (boolean) detection.
//
// The model is deliberately tiny: a name plus zero or more type arguments.
// That is the entire vocabulary the classification rules consume — the
// engine never needs to understand references, lifetimes, or function
// types, only "is this an Option wrapper, is this bool, and what is the
// wrapped type".
//
// Parse accepts the grammar
//
//	type := ident [ '<' type { ',' type } '>' ]
//
// with whitespace tolerated between tokens and idents allowing qualified
// segments ("core.Duration"). String renders the canonical form back.
package tyexpr
