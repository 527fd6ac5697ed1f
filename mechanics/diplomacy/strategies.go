package diplomacy

// StandardNegotiation rejects any argument whose strength does not
// clear the target's resistance, and otherwise converts the surplus
// strength into agreement progress, scaled by the argument type and the
// configured difficulty. Intimidation and bribery buy progress at the
// cost of relationship score; logic and emotion build both.
type StandardNegotiation struct{}

func (StandardNegotiation) Evaluate(in Input, relationship float32, cfg Config) (progressDelta, relationshipDelta float32, rejected bool) {
	if in.ArgumentStrength < in.TargetResistance {
		return 0, rejectionPenalty(in.ArgumentType), true
	}

	surplus := in.ArgumentStrength - in.TargetResistance
	difficulty := cfg.Difficulty
	if difficulty <= 0 {
		difficulty = 1
	}

	switch in.ArgumentType {
	case Logic:
		return surplus / difficulty, 0.5, false
	case Emotion:
		return (surplus * 0.8) / difficulty, 1.5, false
	case Bribe:
		return (surplus * 1.2) / difficulty, -0.5, false
	case Intimidation:
		return (surplus * 1.5) / difficulty, -2.0, false
	default:
		return surplus / difficulty, 0, false
	}
}

func rejectionPenalty(argType ArgumentType) float32 {
	switch argType {
	case Intimidation:
		return -3.0
	case Bribe:
		return -1.0
	default:
		return -0.25
	}
}
