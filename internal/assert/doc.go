// Package assert provides debug-gated precondition checks for the container
// core.
//
// Checks are compiled out by default. Building with `-tags assert` turns every
// That call into a panic-on-violation, which is how the documented
// precondition contracts (index in range, non-empty pop, dereferenceable
// cursor) are exercised in checked test runs. Release builds leave violations
// undefined.
package assert
