package main

import (
	"fmt"
	"log"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gohrl/agent/regionbased"
	"github.com/samuelfneumann/gohrl/environment/fourrooms"
	"github.com/samuelfneumann/gohrl/fitness"
	"github.com/samuelfneumann/gohrl/graph"
	"github.com/samuelfneumann/gohrl/planner"
	"github.com/samuelfneumann/gohrl/utils/progressbar"
)

func main() {
	var seed uint64 = 192382
	rng := rand.New(rand.NewSource(seed))

	// Create the environment and its state-transition graph
	env, err := fourrooms.New(fourrooms.Kings)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(env)

	stateSpace, err := graph.NewTransitionGraph(env)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(stateSpace)

	// Plan the optimal behavior for every (start, goal) pair
	fmt.Println("Generating optimal behaviors")
	numTasks := stateSpace.VertexCount() * (stateSpace.VertexCount() - 1)
	bar := progressbar.NewManualProgressBar(65, numTasks)
	behaviors := planner.GenerateOptimalBehaviors(stateSpace, func() {
		bar.Increment()
		bar.Display()
	})
	fmt.Printf("\nBehaviors: %d\n", len(behaviors))

	// Decompose the state space into four random connected regions and
	// score the resulting hierarchy against the behavior dataset
	regions, err := graph.Decompose(4, stateSpace, rng)
	if err != nil {
		log.Fatal(err)
	}

	agent := regionbased.New(regions)
	fmt.Printf("Subgoal options: %d\n", agent.NumOptions())

	evidence, err := fitness.LogModelEvidence(agent, behaviors)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Log model evidence: %.4f\n", evidence)

	// Round-trip the partition through its genetic encoding. The
	// evaluator decodes a fresh agent, so the score matches the
	// evidence computed above.
	evaluator := fitness.NewEvaluator(stateSpace, behaviors)
	score, err := evaluator.Fitness(fitness.Encode(agent))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Encoded fitness:    %.4f\n", score)
}
