// Package springchain solves the spring-chain approximation used to
// redistribute gas along a chain of tiles without inverting mass order.
// See the package-level comment on Solve for the physical analogy.
package springchain
