package raft

import (
	"context"

	"quorum/proto"
)

// grpcServer implements proto.ElectionServer by delegating straight to a
// Node's inbound handlers. It holds no state of its own.
type grpcServer struct {
	proto.UnimplementedElectionServer
	node *Node
}

// NewGRPCServer wraps node so it can be registered against a grpc.Server
// via proto.RegisterElectionServer.
func NewGRPCServer(node *Node) proto.ElectionServer {
	return &grpcServer{node: node}
}

func (s *grpcServer) RequestVote(ctx context.Context, req *proto.VoteRequest) (*proto.VoteResponse, error) {
	resp := s.node.HandleVoteRequest(VoteRequest{
		Term:        req.Term,
		CandidateID: req.CandidateId,
	})
	return &proto.VoteResponse{Term: resp.Term, VoteGranted: resp.VoteGranted}, nil
}

func (s *grpcServer) AppendLogEntry(ctx context.Context, entry *proto.LogEntry) (*proto.TermReply, error) {
	// Only the heartbeat variant exists today; future variants would be
	// dispatched here without disturbing this framing.
	term := s.node.HandleLogEntry(Heartbeat{Term: entry.Term, PeerID: entry.PeerId})
	return &proto.TermReply{Term: term}, nil
}
