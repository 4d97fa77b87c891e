package planner

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gohrl/graph"
)

// Task is a single navigation problem on a state-transition graph:
// reach the Goal vertex starting from the Start vertex
type Task struct {
	Start int
	Goal  int
}

// Behavior is the optimal solution to a Task: the vertex path an
// optimal planner takes from the task's start to its goal
type Behavior struct {
	Task Task
	Path []int
}

// GenerateTasks returns one Task for every ordered pair of distinct
// vertices in the given graph. The set of tasks over a graph is the
// full evaluation suite for region decompositions of that graph.
func GenerateTasks(g *graph.UndirectedGraph[mat.Vector]) []Task {
	tasks := make([]Task, 0, g.VertexCount()*(g.VertexCount()-1))
	for start := 0; start < g.VertexCount(); start++ {
		for goal := 0; goal < g.VertexCount(); goal++ {
			if start != goal {
				tasks = append(tasks, Task{Start: start, Goal: goal})
			}
		}
	}
	return tasks
}

// SolveTask plans an optimal path for the given task. The returned
// path begins at the task's start and ends at its goal; an empty path
// means the goal is unreachable from the start.
func SolveTask(task Task, search *Search[int]) []int {
	path := search.Plan(task.Start, []int{task.Goal})
	if len(path) == 0 {
		return nil
	}

	if path[0] != task.Start || path[len(path)-1] != task.Goal {
		panic(fmt.Sprintf("solveTask: planned path connects %d to %d, not "+
			"%d to %d", path[0], path[len(path)-1], task.Start, task.Goal))
	}
	return path
}

// GenerateOptimalBehaviors plans an optimal behavior for every ordered
// pair of distinct vertices in the given graph, skipping pairs with no
// connecting path. On a connected graph this yields exactly
// |V| * (|V| - 1) behaviors.
//
// The callback f, if non-nil, is called once per task after the task
// is attempted, so callers can track progress over long runs.
func GenerateOptimalBehaviors(g *graph.UndirectedGraph[mat.Vector],
	f func()) []Behavior {
	search := NewSearch[int](NewGraphProblem(g))

	tasks := GenerateTasks(g)
	behaviors := make([]Behavior, 0, len(tasks))
	for _, task := range tasks {
		path := SolveTask(task, search)
		if len(path) > 0 {
			behaviors = append(behaviors, Behavior{Task: task, Path: path})
		}
		if f != nil {
			f()
		}
	}
	return behaviors
}
