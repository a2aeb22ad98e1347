package attr

// Wire layouts for temporal control values. The 24 hour layouts are the only
// formats that appear on the wire; the 12 hour variants are display hints for
// hosts that render clock-style inputs.
const (
	// DateLayout renders yyyy-MM-dd.
	DateLayout = "2006-01-02"
	// TimeLayout renders HH:mm:ss in 24 hour time.
	TimeLayout = "15:04:05"
	// TimeLayout12 renders h:mm:ss a. Display only, never sent on the wire.
	TimeLayout12 = "3:04:05 PM"
	// DateTimeLayout renders yyyy-MM-dd HH:mm:ss.
	DateTimeLayout = "2006-01-02 15:04:05"
	// DateTimeLayout12 renders yyyy-MM-dd h:mm:ss a. Display only.
	DateTimeLayout12 = "2006-01-02 3:04:05 PM"
)

// NowSentinel is the literal a date/datetime bound may carry at design time.
// The engine resolves it to a concrete date before a session reaches a client.
const NowSentinel = "now"

// FileRefPrefix is the mandatory prefix of every file attribute entry. The
// remainder is a storage reference, optionally followed by ";base64,<name>".
const FileRefPrefix = "data:id="

// ParentKey is the reserved key carrying the parent entity-instance path in
// response payloads and session data.
const ParentKey = "@parent"

// InstanceIDKey is the reserved key carrying an entity row's stable identity.
const InstanceIDKey = "@id"

// GlobalEntity names the root object of the interview data graph.
const GlobalEntity = "global"
