package models

// StatsSnapshot is a point-in-time copy of the pipeline counters, served by
// the status API. Operational telemetry only; no launch data is retained.
type StatsSnapshot struct {
	EventsSeen      int64 `json:"events_seen"`
	LaunchesMatched int64 `json:"launches_matched"`
	Resolved        int64 `json:"resolved"`
	Skipped         int64 `json:"skipped"`
	Failed          int64 `json:"failed"`
	Verdicts        int64 `json:"verdicts"`
	HighRisk        int64 `json:"high_risk"`
}
