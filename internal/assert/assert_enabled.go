//go:build assert

package assert

// Enabled reports whether precondition checks are compiled in.
const Enabled = true

// That panics with msg when cond is false.
func That(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
