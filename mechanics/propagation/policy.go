package propagation

// Policy computes per-edge pressure, the trigger decision, and the
// initial severity assigned when a node crosses the threshold.
type Policy interface {
	// Pressure returns one edge's contribution: w(u,v) * (s(u)/100).
	Pressure(sourceSeverity float32, edgeRate float32) float32

	// ShouldTrigger reports whether accumulated pressure is high enough
	// to seed a fresh infection at a currently-uninfected node.
	ShouldTrigger(totalPressure float32, cfg Config) bool

	// InitialSeverity computes the severity a freshly triggered node
	// starts at.
	InitialSeverity(totalPressure float32, cfg Config) uint32
}

// LinearPropagation is the straightforward pressure formula:
// pressure = edge_rate * (source_severity/100); should_trigger at
// pressure >= trigger_threshold; initial_severity =
// min(pressure*scale, cap).
type LinearPropagation struct{}

func (LinearPropagation) Pressure(sourceSeverity float32, edgeRate float32) float32 {
	return edgeRate * (sourceSeverity / 100)
}

func (LinearPropagation) ShouldTrigger(totalPressure float32, cfg Config) bool {
	return totalPressure >= cfg.TriggerThreshold
}

func (LinearPropagation) InitialSeverity(totalPressure float32, cfg Config) uint32 {
	severity := totalPressure * cfg.InitialSeverityScale
	if severity > float32(cfg.InitialSeverityCap) {
		return cfg.InitialSeverityCap
	}
	if severity < 0 {
		return 0
	}
	return uint32(severity)
}
