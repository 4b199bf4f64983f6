package raft

// RunElection is the election driver. It is invoked by Run whenever
// HasTimedOut reports true: it transitions this node to Candidate, solicits
// votes from every peer via the transport, and promotes to Leader iff a
// strict majority granted and nothing invalidated the candidacy while the
// RPC was in flight.
func (n *Node) RunElection() {
	n.mu.Lock()
	if n.role == Leader {
		// A leader never starts an election.
		n.mu.Unlock()
		return
	}

	oldRole := n.role
	n.role = Candidate
	n.term++
	n.armTimeoutLocked()
	self := n.id
	n.votedFor = &self
	newTerm := n.term
	n.mu.Unlock()

	n.logger.LogStateChange(oldRole, Candidate, newTerm)
	n.logger.LogElectionStart(newTerm)

	// Solicit votes with the lock released: this call may block on the
	// network and must never hold up inbound handlers.
	responses := n.transport.RequestVote(VoteRequest{Term: newTerm, CandidateID: n.id})

	granted := 1 // the self-vote
	for _, resp := range responses {
		if resp.VoteGranted {
			granted++
		}
	}
	need := quorumSize(n.peerCount)

	n.mu.Lock()
	promote := granted >= need && n.role == Candidate && !n.hasTimedOutLocked()
	if promote {
		n.becomeLeaderLocked()
	}
	n.mu.Unlock()

	if promote {
		n.logger.LogElectionWon(newTerm, uint64(granted), uint64(need))
		// Broadcast immediately to suppress other candidates.
		n.transport.BroadcastLogEntry(Heartbeat{Term: newTerm, PeerID: n.id})
	} else {
		n.logger.LogElectionLost(newTerm, uint64(granted), uint64(need))
	}
}

// HandleVoteRequest is the inbound vote handler. It always returns a
// well-formed response and never blocks.
//
// The response echoes req.Term rather than this node's own term, and a
// granted vote does not advance the voter's term; it advances only via
// heartbeats or the node's own candidacy. See DESIGN.md for the decision
// record on both points.
func (n *Node) HandleVoteRequest(req VoteRequest) VoteResponse {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.votedFor != nil {
		n.logger.LogVoteDenied(req.CandidateID, req.Term, "already voted this term")
		return VoteResponse{Term: req.Term, VoteGranted: false}
	}

	if req.Term > n.term {
		candidate := req.CandidateID
		n.votedFor = &candidate
		n.logger.LogVoteGranted(req.CandidateID, req.Term)
		return VoteResponse{Term: req.Term, VoteGranted: true}
	}

	n.logger.LogVoteDenied(req.CandidateID, req.Term, "stale term")
	return VoteResponse{Term: req.Term, VoteGranted: false}
}
