// Package raft implements the per-node leader-election state machine: the
// node state, the election and heartbeat drivers, and the inbound RPC
// handlers. Log replication, persistence, and membership changes are out
// of scope.
package raft

import (
	"sync"
	"time"
)

// Role is a node's position in the election protocol.
type Role int

const (
	Follower Role = iota
	Candidate
	Leader
)

func (r Role) String() string {
	switch r {
	case Follower:
		return "Follower"
	case Candidate:
		return "Candidate"
	case Leader:
		return "Leader"
	default:
		return "Unknown"
	}
}

// LeaderView is a node's most recently acknowledged view of the cluster
// leader: who it is, and for which term.
type LeaderView struct {
	ID   string
	Term uint64
}

// NodeConfig configures a Node at construction time. ElectionTimeout should
// already be randomized per node (see RandomDuration) by the caller — the
// core itself treats it as a fixed base interval.
type NodeConfig struct {
	ID              string
	Address         string
	PeerCount       int
	ElectionTimeout time.Duration
	// HeartbeatMin/HeartbeatMax bound the randomized interval between
	// heartbeat broadcasts while this node is Leader. Zero values fall
	// back to a 1-6s window.
	HeartbeatMin time.Duration
	HeartbeatMax time.Duration
	Transport    Transport
	Logger       *Logger
}

// Node is one process's view of the cluster's leader-election state. All
// mutable fields are guarded by mu; callers never see a partially-updated
// Node.
type Node struct {
	mu sync.Mutex

	id        string
	address   string
	peerCount int

	term          uint64
	role          Role
	votedFor      *string
	currentLeader *LeaderView

	nextTimeout     *time.Time
	timeoutDuration time.Duration
	started         bool

	// nextHeartbeatAt paces the heartbeat driver. Scheduling state only;
	// it carries no protocol meaning.
	nextHeartbeatAt time.Time
	heartbeatMin    time.Duration
	heartbeatMax    time.Duration

	transport Transport
	logger    *Logger
}

const (
	defaultHeartbeatMin = 1 * time.Second
	defaultHeartbeatMax = 6 * time.Second
)

// NewNode constructs an inert node: Follower role, term 0, no vote, no
// timeout armed. Call Start to activate it.
func NewNode(cfg NodeConfig) *Node {
	logger := cfg.Logger
	if logger == nil {
		logger = NewLogger(cfg.ID)
	}
	heartbeatMin, heartbeatMax := cfg.HeartbeatMin, cfg.HeartbeatMax
	if heartbeatMin == 0 {
		heartbeatMin = defaultHeartbeatMin
	}
	if heartbeatMax == 0 {
		heartbeatMax = defaultHeartbeatMax
	}
	return &Node{
		id:              cfg.ID,
		address:         cfg.Address,
		peerCount:       cfg.PeerCount,
		role:            Follower,
		timeoutDuration: cfg.ElectionTimeout,
		heartbeatMin:    heartbeatMin,
		heartbeatMax:    heartbeatMax,
		transport:       cfg.Transport,
		logger:          logger,
	}
}

// ID returns the node's configured identity.
func (n *Node) ID() string { return n.id }

// Start activates the node, arming the election timeout. Calling Start
// again re-arms the timeout rather than no-op'ing: a node that is stopped
// and restarted in tests should get a fresh deadline, not inherit a stale
// one (decided open question — see DESIGN.md).
func (n *Node) Start() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.started = true
	n.armTimeoutLocked()
}

// Term returns the node's current term.
func (n *Node) Term() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.term
}

// Role returns the node's current role.
func (n *Node) Role() Role {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.role
}

// CurrentLeader returns the node's most recently acknowledged leader view,
// or nil if none has been observed.
func (n *Node) CurrentLeader() *LeaderView {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.currentLeader
}

// VotedFor returns who this node voted for in its current term, or nil if
// it has not yet voted.
func (n *Node) VotedFor() *string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.votedFor
}

// PeerCount returns the configured number of other nodes in the cluster.
func (n *Node) PeerCount() int {
	return n.peerCount
}

// HasTimedOut reports whether the election deadline has passed. A Leader
// never times itself out.
func (n *Node) HasTimedOut() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.hasTimedOutLocked()
}

func (n *Node) hasTimedOutLocked() bool {
	if !n.started || n.role == Leader || n.nextTimeout == nil {
		return false
	}
	return !time.Now().Before(*n.nextTimeout)
}

// RefreshTimeout resets the election deadline to now + timeoutDuration.
func (n *Node) RefreshTimeout() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.armTimeoutLocked()
}

func (n *Node) armTimeoutLocked() {
	deadline := time.Now().Add(n.timeoutDuration)
	n.nextTimeout = &deadline
}

// BecomeLeader transitions a Candidate to Leader. Calling it on a node
// that is not currently a Candidate is a programmer error: the reference
// implementation logs and no-ops rather than panicking, so a buggy caller
// degrades the node instead of crashing the process (see DESIGN.md).
func (n *Node) BecomeLeader() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.becomeLeaderLocked()
}

func (n *Node) becomeLeaderLocked() {
	if n.role != Candidate {
		n.logger.Error("BecomeLeader called while role=%s, want Candidate", n.role)
		return
	}

	n.role = Leader
	n.nextTimeout = nil
	n.currentLeader = &LeaderView{ID: n.id, Term: n.term}
	n.logger.LogStateChange(Candidate, Leader, n.term)
}

// quorumSize returns the minimum number of granted votes (including the
// candidate's own) required to win an election with the given peer count.
func quorumSize(peerCount int) int {
	n := peerCount + 1
	return n/2 + 1
}
