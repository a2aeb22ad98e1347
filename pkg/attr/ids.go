package attr

// Opaque identifiers owned by the external interview engine. Uniqueness and
// format are the engine's concern; clients treat them as string tokens.
type (
	// StepID identifies a node in the session's step tree.
	StepID string
	// ReleaseID identifies a published interview release.
	ReleaseID string
	// ProjectID identifies an interview project.
	ProjectID string
	// SessionID identifies one in-progress interview session.
	SessionID string
	// InterviewID identifies an interview definition.
	InterviewID string
	// AttributeID identifies a named answer slot in the interview data graph.
	AttributeID string
)
