package proto

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

// wireCodec implements encoding.Codec by delegating to each message's own
// Marshal/Unmarshal. Registering it under the name "proto" (codec.go's
// init) replaces gRPC's default protobuf codec, which would otherwise
// require full protoreflect-backed messages.
type wireCodec struct{}

func (wireCodec) Name() string { return "proto" }

func (wireCodec) Marshal(v interface{}) ([]byte, error) {
	m, ok := v.(wireMessage)
	if !ok {
		return nil, fmt.Errorf("proto: cannot marshal %T: does not implement wireMessage", v)
	}
	return m.Marshal()
}

func (wireCodec) Unmarshal(data []byte, v interface{}) error {
	m, ok := v.(wireMessage)
	if !ok {
		return fmt.Errorf("proto: cannot unmarshal into %T: does not implement wireMessage", v)
	}
	return m.Unmarshal(data)
}

func init() {
	encoding.RegisterCodec(wireCodec{})
}
