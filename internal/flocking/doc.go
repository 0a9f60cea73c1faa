// Package flocking turns pairwise bird interaction logs into the summary
// tables behind the flocking charts: per-role pair series, collision counts
// and mean neighbour counts.
//
// Logs are symmetric: a pair (a, b) is usually recorded together with
// (b, a). Aggregations that count per-bird quantities first reduce the log
// to unordered pairs with UniquePairs. CollisionCounts deliberately does not,
// so it counts directed collision observations.
package flocking
