package raft

import "time"

// maybeBroadcastHeartbeat is the heartbeat driver. It is a no-op
// unless this node is Leader and the randomized pacing interval has
// elapsed. Broadcasting is fire-and-forget: the transport ignores
// per-peer delivery failure.
func (n *Node) maybeBroadcastHeartbeat() {
	n.mu.Lock()
	if n.role != Leader {
		n.mu.Unlock()
		return
	}
	now := time.Now()
	if now.Before(n.nextHeartbeatAt) {
		n.mu.Unlock()
		return
	}
	term := n.term
	self := n.id
	peerCount := n.peerCount
	n.nextHeartbeatAt = now.Add(RandomDuration(n.heartbeatMin, n.heartbeatMax))
	n.mu.Unlock()

	n.logger.LogHeartbeatSent(term, peerCount)
	n.transport.BroadcastLogEntry(Heartbeat{Term: term, PeerID: self})
}

// HandleLogEntry is the inbound log-entry handler. Only the
// Heartbeat variant is meaningful to the election core today; any other
// LogEntry implementation is accepted (so the wire framing in proto/ can
// grow new variants without this handler rejecting them) but otherwise
// ignored beyond returning the current term.
func (n *Node) HandleLogEntry(entry LogEntry) uint64 {
	hb, ok := entry.(Heartbeat)
	if !ok {
		return n.Term()
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	// Refresh the timeout before comparing terms, even for a stale
	// (lower-term) heartbeat. A stale leader can therefore keep
	// suppressing a follower's election; DESIGN.md records why this
	// ordering is kept.
	n.armTimeoutLocked()

	if hb.Term > n.term {
		oldTerm := n.term
		n.term = hb.Term
		n.role = Follower
		n.votedFor = nil
		n.currentLeader = &LeaderView{ID: hb.PeerID, Term: hb.Term}
		n.logger.LogStepDown(oldTerm, hb.Term)
	}
	// A Candidate observing a same-term heartbeat does NOT step down
	// here; only a strictly higher term demotes (see DESIGN.md).

	n.logger.LogHeartbeatReceived(hb.PeerID, hb.Term)
	return n.term
}
