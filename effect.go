package stepseq

// Effect is a slot for a per-row modulation. It carries no parameters yet; a
// Row keeps its effects in the order they are meant to be applied.
type Effect struct{}
