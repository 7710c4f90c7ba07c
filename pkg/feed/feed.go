// Package feed groups ranked opportunities for display and derives the
// per-sale progress counters.
package feed

import (
	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// ApplyActions sets each opportunity's action status from the recorded
// actions for its sale. Pairs without a record stay at none.
func ApplyActions(opps []domain.Opportunity, actions []domain.SaleContactAction) {
	byContact := make(map[string]domain.ActionStatus, len(actions))
	for _, a := range actions {
		byContact[a.ContactID] = a.Action
	}
	for i := range opps {
		if status, ok := byContact[opps[i].Contact.ID]; ok {
			opps[i].ActionStatus = status
			continue
		}
		opps[i].ActionStatus = domain.ActionNone
	}
}

// Partition splits opportunities into mutually exclusive display groups.
// Input order is preserved inside each group. Cooldown is only consulted for
// pairs without an explicit action.
func Partition(opps []domain.Opportunity) domain.FeedGroups {
	g := domain.FeedGroups{
		Hot:                 []domain.Opportunity{},
		NeverContacted:      []domain.Opportunity{},
		PreviouslyContacted: []domain.Opportunity{},
		OnCooldown:          []domain.Opportunity{},
		Contacted:           []domain.Opportunity{},
		Ignored:             []domain.Opportunity{},
	}

	for _, o := range opps {
		switch {
		case o.ActionStatus == domain.ActionContacted:
			g.Contacted = append(g.Contacted, o)
		case o.ActionStatus == domain.ActionIgnored:
			g.Ignored = append(g.Ignored, o)
		case o.IsOnCooldown:
			g.OnCooldown = append(g.OnCooldown, o)
		case o.NeverContacted && o.SameStreet:
			g.Hot = append(g.Hot, o)
		case o.NeverContacted:
			g.NeverContacted = append(g.NeverContacted, o)
		default:
			g.PreviouslyContacted = append(g.PreviouslyContacted, o)
		}
	}

	return g
}

// Remaining returns the unresolved opportunities that are not on cooldown.
func Remaining(g domain.FeedGroups) []domain.Opportunity {
	out := make([]domain.Opportunity, 0, len(g.Hot)+len(g.NeverContacted)+len(g.PreviouslyContacted))
	out = append(out, g.Hot...)
	out = append(out, g.NeverContacted...)
	out = append(out, g.PreviouslyContacted...)
	return out
}

// Progress derives the per-sale counters. A sale is complete once nothing
// remains to act on.
func Progress(g domain.FeedGroups, messagesSent int) domain.SaleProgress {
	remaining := len(g.Hot) + len(g.NeverContacted) + len(g.PreviouslyContacted)
	total := remaining + len(g.OnCooldown) + len(g.Contacted) + len(g.Ignored)

	return domain.SaleProgress{
		Total:        total,
		Contacted:    len(g.Contacted),
		Ignored:      len(g.Ignored),
		OnCooldown:   len(g.OnCooldown),
		Remaining:    remaining,
		MessagesSent: messagesSent,
		Complete:     total > 0 && remaining == 0,
	}
}
