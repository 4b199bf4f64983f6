package raft

import (
	"context"
	"time"
)

// tickInterval is the background loop's polling granularity: the election
// timer is a polled deadline, not a cancelable task, so Run wakes up this
// often to re-check HasTimedOut and the heartbeat pacing.
const tickInterval = 10 * time.Millisecond

// Run drives the node's background loop until ctx is canceled: on each
// tick, it runs the election driver if the timer has expired, then runs
// the heartbeat driver if this node is Leader. ctx cancellation is purely
// a process-lifecycle convenience for cmd/node (SIGINT/SIGTERM); the
// protocol itself never stops a node.
func (n *Node) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n.HasTimedOut() {
				n.RunElection()
			}
			if n.Role() == Leader {
				n.maybeBroadcastHeartbeat()
			}
		}
	}
}
