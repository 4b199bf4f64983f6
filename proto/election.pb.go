// Package proto holds the wire types for the election service described in
// election.proto. Rather than vendoring protoc-gen-go output, the messages
// below hand-code their Marshal/Unmarshal methods directly against
// google.golang.org/protobuf/encoding/protowire: real protobuf wire framing
// (tags, varints, length-delimited fields) without depending on a generated
// file descriptor. See DESIGN.md for why.
package proto

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// wireMessage is the minimal shape the gRPC codec (codec.go) needs.
type wireMessage interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
}

// VoteRequest is sent by a candidate soliciting votes for a term.
type VoteRequest struct {
	Term        uint64
	CandidateId string
}

func (m *VoteRequest) Marshal() ([]byte, error) {
	var b []byte
	if m.Term != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, m.Term)
	}
	if m.CandidateId != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, m.CandidateId)
	}
	return b, nil
}

func (m *VoteRequest) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("proto: VoteRequest: %w", protowire.ParseError(n))
		}
		data = data[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("proto: VoteRequest.term: %w", protowire.ParseError(n))
			}
			m.Term = v
			data = data[n:]
		case 2:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("proto: VoteRequest.candidate_id: %w", protowire.ParseError(n))
			}
			m.CandidateId = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("proto: VoteRequest: unknown field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}

// VoteResponse is a voter's reply to a VoteRequest.
type VoteResponse struct {
	Term        uint64
	VoteGranted bool
}

func (m *VoteResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Term != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, m.Term)
	}
	if m.VoteGranted {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	return b, nil
}

func (m *VoteResponse) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("proto: VoteResponse: %w", protowire.ParseError(n))
		}
		data = data[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("proto: VoteResponse.term: %w", protowire.ParseError(n))
			}
			m.Term = v
			data = data[n:]
		case 2:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("proto: VoteResponse.vote_granted: %w", protowire.ParseError(n))
			}
			m.VoteGranted = v != 0
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("proto: VoteResponse: unknown field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}

// LogEntry is a tagged union; only the "heartbeat" variant is populated by
// the election core. The variant field lets future log-replication work
// add payloads without disturbing heartbeat framing.
type LogEntry struct {
	Variant string
	Term    uint64
	PeerId  string
}

func (m *LogEntry) Marshal() ([]byte, error) {
	var b []byte
	if m.Variant != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.Variant)
	}
	if m.Term != 0 {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, m.Term)
	}
	if m.PeerId != "" {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, m.PeerId)
	}
	return b, nil
}

func (m *LogEntry) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("proto: LogEntry: %w", protowire.ParseError(n))
		}
		data = data[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("proto: LogEntry.variant: %w", protowire.ParseError(n))
			}
			m.Variant = v
			data = data[n:]
		case 2:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("proto: LogEntry.term: %w", protowire.ParseError(n))
			}
			m.Term = v
			data = data[n:]
		case 3:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("proto: LogEntry.peer_id: %w", protowire.ParseError(n))
			}
			m.PeerId = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("proto: LogEntry: unknown field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}

// TermReply carries the responder's term back to the caller of AppendLogEntry.
type TermReply struct {
	Term uint64
}

func (m *TermReply) Marshal() ([]byte, error) {
	var b []byte
	if m.Term != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, m.Term)
	}
	return b, nil
}

func (m *TermReply) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("proto: TermReply: %w", protowire.ParseError(n))
		}
		data = data[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("proto: TermReply.term: %w", protowire.ParseError(n))
			}
			m.Term = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("proto: TermReply: unknown field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}
