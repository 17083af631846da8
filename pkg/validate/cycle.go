// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validate

import (
	"fmt"
	"sort"
	"strings"

	"sigs.k8s.io/cli-utils/pkg/multierror"

	"kpt.dev/templatesync/pkg/core"
	"kpt.dev/templatesync/pkg/status"
)

// DependencyCycleErrorCode is the error code for a dependency cycle among
// enabled units.
const DependencyCycleErrorCode = "1062"

var dependencyCycleErrorBuilder = status.NewErrorBuilder(DependencyCycleErrorCode)

// DependencyCycleError reports one dependency cycle. The cycle slice lists
// the members in traversal order; the last member depends on the first.
func DependencyCycleError(cycle []core.UnitID) status.UnitError {
	var sb strings.Builder
	sb.WriteString("cyclic dependency:")
	for i, id := range cycle {
		next := cycle[(i+1)%len(cycle)]
		sb.WriteString(fmt.Sprintf("\n%s%s -> %s", multierror.Prefix, id, next))
	}
	return dependencyCycleErrorBuilder.
		Sprint(sb.String()).
		BuildWithUnits(cycle...)
}

// rejectCycles reports every distinct dependency cycle in the graph. Roots
// are visited in sorted order so repeated runs report cycles identically.
func rejectCycles(graph map[core.UnitID][]core.UnitID) status.MultiError {
	roots := make([]core.UnitID, 0, len(graph))
	for id := range graph {
		roots = append(roots, id)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].String() < roots[j].String() })

	var errs status.MultiError
	visited := newMarkSet()
	reported := map[string]bool{}
	for _, root := range roots {
		if visited[root] {
			continue
		}
		var stack []core.UnitID
		onStack := newMarkSet()
		walk(graph, root, visited, onStack, &stack, func(cycle []core.UnitID) {
			cycle = rotateToSmallest(cycle)
			key := strings.Join(core.UnitIDs(cycle), ",")
			if !reported[key] {
				reported[key] = true
				errs = status.Append(errs, DependencyCycleError(cycle))
			}
		})
	}
	return errs
}

func newMarkSet() map[core.UnitID]bool {
	return make(map[core.UnitID]bool)
}

// walk runs a depth-first traversal from id, invoking report for every back
// edge's cycle.
func walk(graph map[core.UnitID][]core.UnitID, id core.UnitID, visited, onStack map[core.UnitID]bool, stack *[]core.UnitID, report func([]core.UnitID)) {
	visited[id] = true
	onStack[id] = true
	*stack = append(*stack, id)

	for _, next := range graph[id] {
		if onStack[next] {
			report(cycleFrom(*stack, next))
			continue
		}
		if !visited[next] {
			walk(graph, next, visited, onStack, stack, report)
		}
	}

	*stack = (*stack)[:len(*stack)-1]
	onStack[id] = false
}

// cycleFrom extracts the cycle members from the traversal stack, starting
// at the first occurrence of entry.
func cycleFrom(stack []core.UnitID, entry core.UnitID) []core.UnitID {
	for i, id := range stack {
		if id == entry {
			cycle := make([]core.UnitID, len(stack)-i)
			copy(cycle, stack[i:])
			return cycle
		}
	}
	return []core.UnitID{entry}
}

// rotateToSmallest rotates the cycle so its lexicographically smallest
// member comes first, giving every cycle one canonical form.
func rotateToSmallest(cycle []core.UnitID) []core.UnitID {
	smallest := 0
	for i := 1; i < len(cycle); i++ {
		if cycle[i].String() < cycle[smallest].String() {
			smallest = i
		}
	}
	return append(cycle[smallest:], cycle[:smallest]...)
}
