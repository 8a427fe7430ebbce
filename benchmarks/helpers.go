// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/dynarrx/script"
)

// GenPushScript creates a workload of n sequential pushes.
func GenPushScript(n int) script.Script {
	if n < 1 {
		n = 1
	}
	s := script.Script{
		Name:  fmt.Sprintf("push_%d", n),
		Steps: make([]script.Step, 0, n),
	}
	for i := 0; i < n; i++ {
		s.Steps = append(s.Steps, script.Step{Op: script.OpPush, Value: i})
	}
	return s
}

// GenChurnScript creates a workload that interleaves pushes with front
// inserts and erases, exercising the shifting paths.
func GenChurnScript(n int) script.Script {
	if n < 1 {
		n = 1
	}
	s := script.Script{Name: fmt.Sprintf("churn_%d", n)}
	for i := 0; i < n; i++ {
		s.Steps = append(s.Steps,
			script.Step{Op: script.OpPush, Value: i},
			script.Step{Op: script.OpInsert, Index: 0, Value: i},
			script.Step{Op: script.OpErase, Index: 0},
		)
	}
	return s
}

// MustParse parses a YAML workload document, panicking on error. For
// benchmark setup only.
func MustParse(doc string) script.Script {
	s, err := script.Parse([]byte(doc))
	if err != nil {
		panic(err)
	}
	return s
}

// MarshalScript renders a workload back to YAML, panicking on error.
func MarshalScript(s script.Script) []byte {
	data, err := yaml.Marshal(s)
	if err != nil {
		panic(err)
	}
	return data
}
