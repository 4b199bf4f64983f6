package raft

import (
	"context"
	"sync"
	"time"

	"quorum/config"
	"quorum/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// grpcTransport implements Transport over gRPC, dialing and caching one
// connection per peer and fanning RequestVote out across goroutines. The
// transport owns peer addressing and the fan-out; the election driver
// only ever sees the collected responses.
type grpcTransport struct {
	mu          sync.Mutex
	connections map[string]*grpc.ClientConn

	peers   []config.PeerConfig
	timeout time.Duration
	logger  *Logger
}

// NewGRPCTransport constructs a Transport that fans RequestVote and
// BroadcastLogEntry out to the given peers over gRPC. timeout bounds each
// individual peer RPC; a peer that doesn't answer within timeout is
// silently omitted from RequestVote's results.
func NewGRPCTransport(peers []config.PeerConfig, timeout time.Duration, logger *Logger) Transport {
	return &grpcTransport{
		connections: make(map[string]*grpc.ClientConn),
		peers:       peers,
		timeout:     timeout,
		logger:      logger,
	}
}

func (t *grpcTransport) connection(address string) (*grpc.ClientConn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if conn, ok := t.connections[address]; ok {
		return conn, nil
	}
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	t.connections[address] = conn
	return conn, nil
}

// RequestVote fans req out to every configured peer concurrently and waits
// for all of them to either answer or fail; a peer that cannot be dialed or
// that returns an RPC error contributes no response. It must not be called
// while holding the Node's lock — it blocks on the network.
func (t *grpcTransport) RequestVote(req VoteRequest) []VoteResponse {
	type outcome struct {
		resp VoteResponse
		ok   bool
	}

	results := make(chan outcome, len(t.peers))
	for _, peer := range t.peers {
		go func(peer config.PeerConfig) {
			conn, err := t.connection(peer.Address)
			if err != nil {
				t.logger.Debug("RequestVote: dial %s failed: %v", peer.Address, err)
				results <- outcome{}
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
			defer cancel()

			pbResp, err := proto.NewElectionClient(conn).RequestVote(ctx, &proto.VoteRequest{
				Term:        req.Term,
				CandidateId: req.CandidateID,
			})
			if err != nil {
				t.logger.Debug("RequestVote to %s failed: %v", peer.ID, err)
				results <- outcome{}
				return
			}
			results <- outcome{resp: VoteResponse{Term: pbResp.Term, VoteGranted: pbResp.VoteGranted}, ok: true}
		}(peer)
	}

	responses := make([]VoteResponse, 0, len(t.peers))
	for range t.peers {
		if r := <-results; r.ok {
			responses = append(responses, r.resp)
		}
	}
	return responses
}

// BroadcastLogEntry fans entry out to every peer, fire-and-forget. Only the
// Heartbeat variant is meaningful over this wire today; any other LogEntry
// implementation is silently dropped.
func (t *grpcTransport) BroadcastLogEntry(entry LogEntry) {
	hb, ok := entry.(Heartbeat)
	if !ok {
		return
	}

	for _, peer := range t.peers {
		go func(peer config.PeerConfig) {
			conn, err := t.connection(peer.Address)
			if err != nil {
				t.logger.Debug("BroadcastLogEntry: dial %s failed: %v", peer.Address, err)
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
			defer cancel()

			_, err = proto.NewElectionClient(conn).AppendLogEntry(ctx, &proto.LogEntry{
				Variant: "heartbeat",
				Term:    hb.Term,
				PeerId:  hb.PeerID,
			})
			if err != nil {
				t.logger.Debug("BroadcastLogEntry to %s failed: %v", peer.ID, err)
			}
		}(peer)
	}
}
