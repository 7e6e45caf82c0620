package entity

// RecoveryPlan is the structured output of the AI coach for a given workout.
// The shape mirrors the strict JSON contract the coach service is prompted
// to return; anything that does not parse into it is rejected upstream.
type RecoveryPlan struct {
	Title           string   `json:"title"`
	DurationMinutes int      `json:"duration_minutes"`
	Exercises       []string `json:"exercises"`
	Notes           string   `json:"notes"`
}
