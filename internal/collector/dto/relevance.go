package dto

// RelevanceVerdict is the outcome of judging one (entity, news item) pair.
// Score is in [0.0, 1.0]; a value outside that range is a contract violation
// by the producing judge.
type RelevanceVerdict struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Valid reports whether the score is inside the contract domain.
func (v *RelevanceVerdict) Valid() bool {
	return v != nil && v.Score >= 0.0 && v.Score <= 1.0
}
