// Command demo runs a YAML container workload and prints the observed
// size/capacity trace.
//
// Usage:
//
//	demo [workload.yaml]
//
// Without an argument a built-in growth workload is used.
package main

import (
	"fmt"
	"os"

	"github.com/comalice/dynarrx/script"
)

const defaultWorkload = `
name: doubling-growth
steps:
  - {op: push, value: 1}
  - {op: push, value: 2}
  - {op: push, value: 3}
  - {op: push, value: 4}
  - {op: push, value: 5}
  - {op: insert, index: 0, value: 0}
  - {op: erase, index: 3}
  - {op: resize, n: 8}
  - {op: reserve, n: 16}
  - {op: pop}
`

func main() {
	var (
		s   script.Script
		err error
	)
	if len(os.Args) > 1 {
		s, err = script.Load(os.Args[1])
	} else {
		s, err = script.Parse([]byte(defaultWorkload))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	tr, err := script.Run(s)
	printTrace(tr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printTrace(tr script.Trace) {
	fmt.Printf("workload %q\n", tr.Name)
	for i, res := range tr.Results {
		fmt.Printf("  step %2d  %-8s", i, res.Step.Op)
		switch res.Step.Op {
		case script.OpPush:
			fmt.Printf(" value=%-4d", res.Step.Value)
		case script.OpInsert, script.OpSet:
			fmt.Printf(" index=%d value=%-4d", res.Step.Index, res.Step.Value)
		case script.OpErase:
			fmt.Printf(" index=%-10d", res.Step.Index)
		case script.OpResize, script.OpReserve:
			fmt.Printf(" n=%-14d", res.Step.N)
		default:
			fmt.Printf("%16s", "")
		}
		fmt.Printf("  -> len=%d cap=%d\n", res.Len, res.Cap)
	}
	fmt.Println("final:", tr.Final)
}
