package http

import (
	"customer-support-agent/internal/analytics"
)

type snapshotResp struct {
	Requests       int            `json:"requests"`
	Degraded       int            `json:"degraded"`
	Flagged        int            `json:"flagged"`
	Escalated      int            `json:"escalated"`
	EscalationRate float64        `json:"escalation_rate"`
	Intents        map[string]int `json:"intents"`
	Sentiments     map[string]int `json:"sentiments"`
	Escalations    map[string]int `json:"escalations"`
}

func newSnapshotResp(s analytics.Snapshot) snapshotResp {
	out := snapshotResp{
		Requests:    s.Requests,
		Degraded:    s.Degraded,
		Flagged:     s.Flagged,
		Intents:     stringKeys(s.Intents),
		Sentiments:  stringKeys(s.Sentiments),
		Escalations: stringKeys(s.Escalations),
	}
	for _, n := range s.Escalations {
		out.Escalated += n
	}
	if s.Requests > 0 {
		out.EscalationRate = float64(out.Escalated) / float64(s.Requests)
	}
	return out
}

func stringKeys[K ~string](m map[K]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}
