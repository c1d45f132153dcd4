// Package cluster implements the sequential jet-clustering reduction loop
// (spec sections 4.6, 4.7, 4.8, 4.9): the tiled hadron-collider strategy,
// the plain e+e- strategy, the min-locator both share, and the strategy
// façade that validates a Config, picks a strategy, and drives it to a
// finished ClusterSequence.
//
// Orchestration follows markduplicates.MarkDuplicates's shape: one
// validated options struct, one entry point per mode, collaborators built
// up front, a single terminal result returned — never a partial one.
package cluster
