// Package contagion implements the worked mechanic of spec §4.4/§C8: a
// contagion (disease, rumor, political claim, market trend, or custom
// content) spreading over a weighted directed graph (see the graph
// package), accumulating per-edge pressure, triggering infections
// stochastically, progressing through a per-(contagion, node) state
// machine, mutating, and decaying in credibility until extinct.
//
// Structurally this package follows kentwait-contagion's epidemic_si.go
// tick loop (gather -> accumulate -> trigger -> progress -> decay ->
// lifetime) and transmission_model.go's interface-as-policy-slot pattern,
// generalized to a four-axis policy composition (spread, progression,
// propagation, mutation).
// Numeric constants in the strategies subpackage are grounded on
// issun-core's propagation/strategies/linear.rs and
// contagion/strategies/progression/linear.rs.
package contagion
