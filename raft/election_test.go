package raft

import (
	"testing"
	"time"
)

// Both peers grant, so a 3-node cluster promotes the candidate and it
// immediately broadcasts one heartbeat to suppress other candidacies.
func TestSuccessfulElection(t *testing.T) {
	transport := &fakeTransport{voteResponses: grantAll(2)}
	n := newTestNode("A", 2, time.Second, transport)
	n.Start()

	n.RunElection()

	if n.Role() != Leader {
		t.Fatalf("Role() = %s, want Leader", n.Role())
	}
	if n.Term() != 1 {
		t.Errorf("Term() = %d, want 1", n.Term())
	}
	req, ok := transport.lastVoteRequest()
	if !ok {
		t.Fatal("no vote request was issued")
	}
	if req.Term != 1 || req.CandidateID != "A" {
		t.Errorf("vote request = %+v, want {Term:1 CandidateID:A}", req)
	}
	heartbeats := transport.heartbeats()
	if len(heartbeats) != 1 {
		t.Fatalf("got %d heartbeat broadcasts, want exactly 1", len(heartbeats))
	}
	if heartbeats[0].Term != 1 || heartbeats[0].PeerID != "A" {
		t.Errorf("heartbeat = %+v, want {Term:1 PeerID:A}", heartbeats[0])
	}
}

// Both peers deny, so the node stays Candidate at the incremented term
// and broadcasts nothing.
func TestDeniedElection(t *testing.T) {
	transport := &fakeTransport{voteResponses: denyAll(2)}
	n := newTestNode("A", 2, time.Second, transport)
	n.Start()

	n.RunElection()

	if n.Role() != Candidate {
		t.Errorf("Role() = %s, want Candidate", n.Role())
	}
	if n.Term() != 1 {
		t.Errorf("Term() = %d, want 1", n.Term())
	}
	if heartbeats := transport.heartbeats(); len(heartbeats) != 0 {
		t.Errorf("a losing candidate must not broadcast heartbeats, got %d", len(heartbeats))
	}
}

// A sitting leader never starts an election, regardless of what the
// transport would answer.
func TestLeaderDoesNotStartElection(t *testing.T) {
	transport := &fakeTransport{voteResponses: grantAll(2)}
	n := newTestNode("A", 2, time.Second, transport)
	n.Start()

	n.mu.Lock()
	n.role = Leader
	n.term = 10
	self := n.id
	n.votedFor = &self
	n.currentLeader = &LeaderView{ID: "A", Term: 10}
	n.nextTimeout = nil
	n.mu.Unlock()

	n.RunElection()

	if n.Role() != Leader {
		t.Errorf("Role() = %s, want Leader", n.Role())
	}
	if n.Term() != 10 {
		t.Errorf("Term() = %d, want 10 (unchanged)", n.Term())
	}
	if _, ok := transport.lastVoteRequest(); ok {
		t.Error("a leader must not solicit votes")
	}
}

// If the vote RPC outlasts the election timeout, the post-RPC guard
// vetoes promotion even when every peer granted.
func TestTimeoutDuringVoteRPCVetoesPromotion(t *testing.T) {
	transport := &fakeTransport{
		voteResponses: grantAll(2),
		voteDelay:     60 * time.Millisecond,
	}
	n := newTestNode("A", 2, 30*time.Millisecond, transport)
	n.Start()

	n.RunElection()

	if n.Role() != Candidate {
		t.Errorf("Role() = %s, want Candidate (promotion must be vetoed)", n.Role())
	}
	if n.Term() != 1 {
		t.Errorf("Term() = %d, want 1", n.Term())
	}
	if heartbeats := transport.heartbeats(); len(heartbeats) != 0 {
		t.Errorf("a vetoed candidate must not broadcast heartbeats, got %d", len(heartbeats))
	}
}

// A candidate that keeps losing re-runs the election at a further
// incremented term each time (split-vote retry).
func TestRepeatedElectionIncrementsTerm(t *testing.T) {
	transport := &fakeTransport{voteResponses: denyAll(2)}
	n := newTestNode("A", 2, time.Second, transport)
	n.Start()

	n.RunElection()
	n.RunElection()

	if n.Role() != Candidate {
		t.Errorf("Role() = %s, want Candidate", n.Role())
	}
	if n.Term() != 2 {
		t.Errorf("Term() = %d, want 2 after two failed elections", n.Term())
	}
}

// Quorum boundaries at the election level: with peerCount=2 (N=3) a single
// peer grant plus the self-vote wins; with peerCount=4 (N=5) one grant is
// not enough but two are.
func TestElectionQuorumBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		peerCount int
		responses []VoteResponse
		wantRole  Role
	}{
		{
			name:      "three nodes, one grant suffices",
			peerCount: 2,
			responses: []VoteResponse{
				{Term: 1, VoteGranted: true},
				{Term: 1, VoteGranted: false},
			},
			wantRole: Leader,
		},
		{
			name:      "five nodes, one grant is short of quorum",
			peerCount: 4,
			responses: []VoteResponse{
				{Term: 1, VoteGranted: true},
				{Term: 1, VoteGranted: false},
				{Term: 1, VoteGranted: false},
				{Term: 1, VoteGranted: false},
			},
			wantRole: Candidate,
		},
		{
			name:      "five nodes, two grants suffice",
			peerCount: 4,
			responses: []VoteResponse{
				{Term: 1, VoteGranted: true},
				{Term: 1, VoteGranted: true},
				{Term: 1, VoteGranted: false},
				{Term: 1, VoteGranted: false},
			},
			wantRole: Leader,
		},
		{
			name:      "three nodes, unreachable peers contribute nothing",
			peerCount: 2,
			responses: nil,
			wantRole:  Candidate,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			transport := &fakeTransport{voteResponses: c.responses}
			n := newTestNode("A", c.peerCount, time.Second, transport)
			n.Start()

			n.RunElection()

			if n.Role() != c.wantRole {
				t.Errorf("Role() = %s, want %s", n.Role(), c.wantRole)
			}
		})
	}
}

// At most one vote per term: the first candidate to ask gets it, a
// second same-term candidate is denied, and the recorded vote is stable.
func TestSingleVotePerTerm(t *testing.T) {
	n := newTestNode("A", 2, time.Second, &fakeTransport{})
	n.Start()

	first := n.HandleVoteRequest(VoteRequest{Term: 1, CandidateID: "B"})
	if !first.VoteGranted {
		t.Fatal("first vote request should be granted")
	}
	if got := n.VotedFor(); got == nil || *got != "B" {
		t.Fatalf("VotedFor() = %v, want B", got)
	}

	second := n.HandleVoteRequest(VoteRequest{Term: 1, CandidateID: "C"})
	if second.VoteGranted {
		t.Error("second same-term vote request must be denied")
	}
	if got := n.VotedFor(); got == nil || *got != "B" {
		t.Errorf("VotedFor() = %v, want B (unchanged)", got)
	}
}

// A candidate whose term is not strictly greater than the voter's is stale
// and gets denied.
func TestVoteDeniedForStaleTerm(t *testing.T) {
	n := newTestNode("A", 2, time.Second, &fakeTransport{})
	n.Start()
	n.HandleLogEntry(Heartbeat{Term: 5, PeerID: "L"}) // raises self.term to 5

	equal := n.HandleVoteRequest(VoteRequest{Term: 5, CandidateID: "B"})
	if equal.VoteGranted {
		t.Error("equal-term vote request must be denied")
	}
	lower := n.HandleVoteRequest(VoteRequest{Term: 3, CandidateID: "B"})
	if lower.VoteGranted {
		t.Error("lower-term vote request must be denied")
	}
	higher := n.HandleVoteRequest(VoteRequest{Term: 6, CandidateID: "B"})
	if !higher.VoteGranted {
		t.Error("higher-term vote request should be granted")
	}
}

// The vote response echoes the request's term, and granting does not
// advance the voter's own term. DESIGN.md records why both behaviors are
// kept; changing either is a decision this test makes visible.
func TestVoteGrantEchoesRequestTermWithoutAdoptingIt(t *testing.T) {
	n := newTestNode("A", 2, time.Second, &fakeTransport{})
	n.Start()

	resp := n.HandleVoteRequest(VoteRequest{Term: 7, CandidateID: "B"})

	if !resp.VoteGranted {
		t.Fatal("vote for term 7 should be granted at term 0")
	}
	if resp.Term != 7 {
		t.Errorf("response Term = %d, want 7 (the request's term)", resp.Term)
	}
	if n.Term() != 0 {
		t.Errorf("voter's Term() = %d, want 0 (grant must not advance it)", n.Term())
	}
}

// A higher-term heartbeat clears the vote record, which frees the node to
// vote again in a later term.
func TestHigherTermMessageClearsVoteRecord(t *testing.T) {
	n := newTestNode("A", 2, time.Second, &fakeTransport{})
	n.Start()

	n.HandleVoteRequest(VoteRequest{Term: 1, CandidateID: "B"})
	if got := n.VotedFor(); got == nil || *got != "B" {
		t.Fatalf("VotedFor() = %v, want B", got)
	}

	n.HandleLogEntry(Heartbeat{Term: 2, PeerID: "C"})
	if got := n.VotedFor(); got != nil {
		t.Fatalf("VotedFor() = %v, want nil after adopting term 2", got)
	}

	resp := n.HandleVoteRequest(VoteRequest{Term: 3, CandidateID: "D"})
	if !resp.VoteGranted {
		t.Error("vote for term 3 should be granted after the term-2 reset")
	}
	if got := n.VotedFor(); got == nil || *got != "D" {
		t.Errorf("VotedFor() = %v, want D", got)
	}
}

// Terms only ever move forward, whatever mix of messages arrives.
func TestTermIsMonotonic(t *testing.T) {
	n := newTestNode("A", 2, time.Second, &fakeTransport{voteResponses: denyAll(2)})
	n.Start()

	observed := []uint64{n.Term()}
	n.RunElection()
	observed = append(observed, n.Term())
	n.HandleLogEntry(Heartbeat{Term: 9, PeerID: "B"})
	observed = append(observed, n.Term())
	n.HandleLogEntry(Heartbeat{Term: 4, PeerID: "C"}) // stale, must not regress
	observed = append(observed, n.Term())
	n.HandleVoteRequest(VoteRequest{Term: 2, CandidateID: "D"}) // stale, must not regress
	observed = append(observed, n.Term())

	for i := 1; i < len(observed); i++ {
		if observed[i] < observed[i-1] {
			t.Fatalf("term regressed from %d to %d (sequence %v)", observed[i-1], observed[i], observed)
		}
	}
}

// Starting a candidacy votes for self: a node that just ran an election
// denies other candidates for that term.
func TestCandidateVotesForItself(t *testing.T) {
	transport := &fakeTransport{voteResponses: denyAll(2)}
	n := newTestNode("A", 2, time.Second, transport)
	n.Start()

	n.RunElection()

	if got := n.VotedFor(); got == nil || *got != "A" {
		t.Fatalf("VotedFor() = %v, want A (the self-vote)", got)
	}
	resp := n.HandleVoteRequest(VoteRequest{Term: 1, CandidateID: "B"})
	if resp.VoteGranted {
		t.Error("a candidate must deny same-term vote requests after voting for itself")
	}
}
