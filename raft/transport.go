package raft

// VoteRequest is issued by a candidate soliciting votes for a term.
type VoteRequest struct {
	Term        uint64
	CandidateID string
}

// VoteResponse is a voter's reply to a VoteRequest.
type VoteResponse struct {
	Term        uint64
	VoteGranted bool
}

// LogEntry is a tagged union of messages the leader broadcasts. Heartbeat
// is the only variant the election core produces or consumes; the
// interface exists so future log-replication work can add variants
// without disturbing Heartbeat's handling or wire framing.
type LogEntry interface {
	logEntryTag()
}

// Heartbeat is a leader's liveness announcement, carrying just enough for
// followers to recognize and/or step down to a newer leader.
type Heartbeat struct {
	Term   uint64
	PeerID string
}

func (Heartbeat) logEntryTag() {}

// Transport is the Node's only dependency on the outside world: fanning
// vote requests and heartbeats out to peers. Implementations own peer
// discovery/addressing; the Node only ever sees a peer count.
type Transport interface {
	// RequestVote fans req out to all configured peers and returns one
	// response per responding peer; unreachable peers are silently
	// omitted. May block up to an implementation-defined deadline. Must
	// not be called while holding the Node's lock.
	RequestVote(req VoteRequest) []VoteResponse

	// BroadcastLogEntry fans entry out to all peers, fire-and-forget.
	// Delivery failure to individual peers is not surfaced.
	BroadcastLogEntry(entry LogEntry)
}
