package fitness

import (
	"math"

	"github.com/samuelfneumann/gohrl/agent/regionbased"
	"github.com/samuelfneumann/gohrl/planner"
)

// LogModelEvidence returns the log evidence of the agent's policy
// hierarchy given the behavior dataset: the negated sum, over every
// behavior and every transition along its path, of the log branching
// factor at that transition. Higher is better; a hierarchy whose
// options explain more of the observed behavior leaves fewer
// constrained choices to count.
//
// The agent's per-option constraint flags accumulate across the
// behaviors, so each (option, state) pair is counted at most once over
// the whole dataset.
func LogModelEvidence(agent *regionbased.Agent,
	behaviors []planner.Behavior) (float64, error) {
	evidence := 0.0
	for _, behavior := range behaviors {
		factors, err := agent.PossibleActions(behavior.Path)
		if err != nil {
			return 0, err
		}
		for _, factor := range factors {
			evidence -= math.Log(float64(factor))
		}
	}
	return evidence, nil
}
