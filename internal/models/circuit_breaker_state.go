package models

// CircuitBreakerState tracks the state of a circuit breaker guarding an
// external dependency (the generative oracle).
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half-open"
	default:
		return "unknown"
	}
}
