// Package strategies collects concrete policy implementations for the
// contagion mechanic (spec §4.2/§8). Each type's zero value is a sensible
// default, mirroring issun-core's #[derive(Default)] const-generic structs
// (original_source/crates/issun-core/src/mechanics/propagation/strategies/linear.rs
// and .../progression/linear.rs) translated to Go as ordinary struct
// fields read at the zero value when unset, since Go generics carry no
// const-generic equivalent.
package strategies
