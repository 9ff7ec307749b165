// Package graph detects circular dependency chains in a task list. Nodes
// are task titles; edges run from a task to each dependency whose title
// also appears in the list.
package graph

import (
	"fmt"
	"strings"

	"taskrank/internal/domain"
)

// Detect scans the task list for dependency loops with an iterative
// depth-first traversal. Roots are taken in input order; each title is
// explored at most once, so a cycle is reported from the first root that
// can reach it before its nodes become visited. Dependencies naming titles
// outside the list are ignored. Runs in O(V+E).
func Detect(tasks []domain.Task) domain.CycleReport {
	report := domain.CycleReport{
		Cycles:   []domain.Cycle{},
		Warnings: []string{},
	}

	edges := make(map[string][]string, len(tasks))
	order := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if _, dup := edges[t.Title]; dup {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Duplicate task title %q: using the last definition", t.Title))
		} else {
			order = append(order, t.Title)
		}
		edges[t.Title] = t.Dependencies
	}

	visited := make(map[string]bool, len(tasks))
	onPath := make(map[string]bool, len(tasks))
	path := make([]string, 0, len(tasks))

	// frame mirrors one recursive call: the node plus the index of the
	// next outgoing edge to follow.
	type frame struct {
		title string
		next  int
	}

	for _, root := range order {
		if visited[root] {
			continue
		}

		stack := []frame{{title: root}}
		visited[root] = true
		onPath[root] = true
		path = append(path, root)

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := edges[top.title]

			descended := false
			for top.next < len(deps) {
				dep := deps[top.next]
				top.next++

				if _, known := edges[dep]; !known {
					continue
				}
				if onPath[dep] {
					cycle := closeCycle(path, dep)
					report.Cycles = append(report.Cycles, cycle)
					report.Warnings = append(report.Warnings,
						"Circular dependency detected: "+strings.Join(cycle, " -> "))
					continue
				}
				if visited[dep] {
					continue
				}

				visited[dep] = true
				onPath[dep] = true
				path = append(path, dep)
				stack = append(stack, frame{title: dep})
				descended = true
				break
			}

			if !descended {
				onPath[top.title] = false
				path = path[:len(path)-1]
				stack = stack[:len(stack)-1]
			}
		}
	}

	report.HasCircular = len(report.Cycles) > 0
	return report
}

// closeCycle returns the suffix of path starting at the repeated title,
// with that title appended again to close the loop.
func closeCycle(path []string, start string) domain.Cycle {
	i := 0
	for i < len(path) && path[i] != start {
		i++
	}
	cycle := make(domain.Cycle, 0, len(path)-i+1)
	cycle = append(cycle, path[i:]...)
	cycle = append(cycle, start)
	return cycle
}
