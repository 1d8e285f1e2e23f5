// Package atmos implements the tick-driven 2D atmospheric simulation
// engine: the gas/tile/Z-level data model, wall detection, the
// spring-chain gas transport pass, and the reaction/conduction/
// sanitization post-process pipeline.
package atmos
