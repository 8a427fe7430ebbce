//go:build !assert

package assert

// Enabled reports whether precondition checks are compiled in.
const Enabled = false

// That is a no-op unless the build carries the "assert" tag.
// Callers must not rely on it for control flow; a violated precondition
// is undefined behavior in release builds.
func That(cond bool, msg string) {}
