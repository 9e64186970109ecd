package auth

// FailureKind classifies how an operation went wrong.
type FailureKind int

const (
	// NetworkFailure means no response was received at all.
	NetworkFailure FailureKind = iota
	// ServerRejected means the server responded with success=false; the
	// failure message comes from the response payload when present.
	ServerRejected
	// Malformed means a response arrived but was missing expected fields.
	Malformed
	// InvalidInput means local validation rejected the request before any
	// network call was issued.
	InvalidInput
)

func (k FailureKind) String() string {
	switch k {
	case NetworkFailure:
		return "network failure"
	case ServerRejected:
		return "server rejected"
	case Malformed:
		return "malformed response"
	case InvalidInput:
		return "invalid input"
	}
	return "unknown"
}

// Failure is the uniform failure value returned by every orchestrator
// operation. The message is always suitable for display; transport errors
// never propagate past the orchestrator boundary.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func networkFailure(fallback string) *Failure {
	return &Failure{Kind: NetworkFailure, Message: fallback}
}

func serverRejected(message, fallback string) *Failure {
	if message == "" {
		message = fallback
	}
	return &Failure{Kind: ServerRejected, Message: message}
}

func malformed(fallback string) *Failure {
	return &Failure{Kind: Malformed, Message: fallback}
}

func invalidInput(err error) *Failure {
	return &Failure{Kind: InvalidInput, Message: err.Error()}
}
