package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Election_RequestVote_FullMethodName    = "/election.Election/RequestVote"
	Election_AppendLogEntry_FullMethodName = "/election.Election/AppendLogEntry"
)

// ElectionClient is the client API for the Election service.
type ElectionClient interface {
	RequestVote(ctx context.Context, in *VoteRequest, opts ...grpc.CallOption) (*VoteResponse, error)
	AppendLogEntry(ctx context.Context, in *LogEntry, opts ...grpc.CallOption) (*TermReply, error)
}

type electionClient struct {
	cc grpc.ClientConnInterface
}

// NewElectionClient wraps a connection in the Election service's client API.
func NewElectionClient(cc grpc.ClientConnInterface) ElectionClient {
	return &electionClient{cc}
}

func (c *electionClient) RequestVote(ctx context.Context, in *VoteRequest, opts ...grpc.CallOption) (*VoteResponse, error) {
	out := new(VoteResponse)
	if err := c.cc.Invoke(ctx, Election_RequestVote_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *electionClient) AppendLogEntry(ctx context.Context, in *LogEntry, opts ...grpc.CallOption) (*TermReply, error) {
	out := new(TermReply)
	if err := c.cc.Invoke(ctx, Election_AppendLogEntry_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ElectionServer is the server API for the Election service.
type ElectionServer interface {
	RequestVote(context.Context, *VoteRequest) (*VoteResponse, error)
	AppendLogEntry(context.Context, *LogEntry) (*TermReply, error)
}

// UnimplementedElectionServer can be embedded to satisfy ElectionServer
// while only overriding the methods a given server actually implements.
type UnimplementedElectionServer struct{}

func (UnimplementedElectionServer) RequestVote(context.Context, *VoteRequest) (*VoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RequestVote not implemented")
}

func (UnimplementedElectionServer) AppendLogEntry(context.Context, *LogEntry) (*TermReply, error) {
	return nil, status.Error(codes.Unimplemented, "method AppendLogEntry not implemented")
}

// RegisterElectionServer registers srv with s under the Election service name.
func RegisterElectionServer(s grpc.ServiceRegistrar, srv ElectionServer) {
	s.RegisterService(&Election_ServiceDesc, srv)
}

func _Election_RequestVote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ElectionServer).RequestVote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Election_RequestVote_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ElectionServer).RequestVote(ctx, req.(*VoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Election_AppendLogEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LogEntry)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ElectionServer).AppendLogEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Election_AppendLogEntry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ElectionServer).AppendLogEntry(ctx, req.(*LogEntry))
	}
	return interceptor(ctx, in, info, handler)
}

// Election_ServiceDesc is the grpc.ServiceDesc for the Election service.
var Election_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "election.Election",
	HandlerType: (*ElectionServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RequestVote",
			Handler:    _Election_RequestVote_Handler,
		},
		{
			MethodName: "AppendLogEntry",
			Handler:    _Election_AppendLogEntry_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "election.proto",
}
