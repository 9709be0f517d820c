package jobservice

import "github.com/voxgate/voxgate/internal/domain"

// transitions holds the legal state graph per service tier. pending is
// entered only after a successful debit; terminal states have no edges.
var transitions = map[string]map[string][]string{
	domain.TierAutomated: {
		domain.JobStatePending:    {domain.JobStateProcessing, domain.JobStateCancelled},
		domain.JobStateProcessing: {domain.JobStateCompleted, domain.JobStateError, domain.JobStateCancelled},
	},
	domain.TierReviewed: {
		domain.JobStatePending:     {domain.JobStateProcessing, domain.JobStateCancelled},
		domain.JobStateProcessing:  {domain.JobStateHumanReview, domain.JobStateError, domain.JobStateCancelled},
		domain.JobStateHumanReview: {domain.JobStateCompleted, domain.JobStateError},
	},
	domain.TierHuman: {
		domain.JobStatePending:    {domain.JobStateAssigned, domain.JobStateCancelled},
		domain.JobStateAssigned:   {domain.JobStateInProgress, domain.JobStateCompleted, domain.JobStateError},
		domain.JobStateInProgress: {domain.JobStateCompleted, domain.JobStateError},
	},
}

// CanTransition reports whether a job of the given tier may move from
// one state to another.
func CanTransition(tier, from, to string) bool {
	tierGraph, ok := transitions[tier]
	if !ok {
		return false
	}
	for _, next := range tierGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}
