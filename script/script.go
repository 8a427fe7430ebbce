// Package script defines a declarative YAML workload format for driving a
// dynarrx container: an ordered list of mutating steps plus the observed
// size/capacity trace of executing them. It backs cmd/demo and gives
// growth-sequence scenarios a data-driven form.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/comalice/dynarrx"
)

// Ops accepted in a Step.
const (
	OpPush    = "push"    // append Value
	OpPop     = "pop"     // remove the last element
	OpInsert  = "insert"  // insert Value before Index
	OpErase   = "erase"   // remove the element at Index
	OpResize  = "resize"  // set element count to N
	OpReserve = "reserve" // ensure capacity for N elements
	OpSet     = "set"     // assign Value over the element at Index
)

// Step is one mutating operation of a workload.
type Step struct {
	Op    string `yaml:"op" json:"op"`
	Value int    `yaml:"value,omitempty" json:"value,omitempty"`
	Index int    `yaml:"index,omitempty" json:"index,omitempty"`
	N     int    `yaml:"n,omitempty" json:"n,omitempty"`
}

// Script is a named workload.
type Script struct {
	Name  string `yaml:"name" json:"name"`
	Steps []Step `yaml:"steps" json:"steps"`
}

// Parse decodes and validates a YAML workload document.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Load reads and parses a workload file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks structural validity of the workload. Whether an index is
// within bounds at execution time is checked by Run, not here.
func (s Script) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("script name is required")
	}
	for i, st := range s.Steps {
		switch st.Op {
		case OpPush, OpPop:
		case OpInsert, OpErase, OpSet:
			if st.Index < 0 {
				return fmt.Errorf("step %d (%s): negative index %d", i, st.Op, st.Index)
			}
		case OpResize, OpReserve:
			if st.N < 0 {
				return fmt.Errorf("step %d (%s): negative n %d", i, st.Op, st.N)
			}
		case "":
			return fmt.Errorf("step %d: op is required", i)
		default:
			return fmt.Errorf("step %d: unknown op %q", i, st.Op)
		}
	}
	return nil
}

// StepResult records the container shape observed after one step.
type StepResult struct {
	Step Step
	Len  int
	Cap  int
}

// Trace is the observed outcome of running a Script.
type Trace struct {
	Name    string
	Results []StepResult
	Final   []int
}

// Run executes the workload against a fresh container and returns the trace.
// Steps whose index is out of bounds at execution time abort the run with an
// error; container-level failures (allocation, construction) propagate
// wrapped with the step number.
func Run(s Script) (Trace, error) {
	if err := s.Validate(); err != nil {
		return Trace{}, err
	}
	arr := dynarrx.New[int]()
	tr := Trace{Name: s.Name}
	for i, st := range s.Steps {
		if err := apply(arr, st); err != nil {
			return tr, fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
		tr.Results = append(tr.Results, StepResult{Step: st, Len: arr.Len(), Cap: arr.Cap()})
	}
	tr.Final = append(tr.Final, arr.Slice()...)
	return tr, nil
}

func apply(arr *dynarrx.Array[int], st Step) error {
	switch st.Op {
	case OpPush:
		return arr.PushBack(st.Value)
	case OpPop:
		if arr.Len() == 0 {
			return fmt.Errorf("pop of empty container")
		}
		arr.PopBack()
		return nil
	case OpInsert:
		if st.Index > arr.Len() {
			return fmt.Errorf("index %d out of range [0, %d]", st.Index, arr.Len())
		}
		_, err := arr.Insert(arr.CursorAt(st.Index), st.Value)
		return err
	case OpErase:
		if st.Index >= arr.Len() {
			return fmt.Errorf("index %d out of range [0, %d)", st.Index, arr.Len())
		}
		_, err := arr.Erase(arr.CursorAt(st.Index))
		return err
	case OpSet:
		if st.Index >= arr.Len() {
			return fmt.Errorf("index %d out of range [0, %d)", st.Index, arr.Len())
		}
		return arr.Set(st.Index, st.Value)
	case OpResize:
		return arr.Resize(st.N)
	case OpReserve:
		return arr.Reserve(st.N)
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
}
