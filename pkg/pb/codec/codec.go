// Package codec provides the wire codec shared by every facade in pkg/pb.
// Those packages are hand-written in the shape protoc-gen-go-grpc would
// emit, but their message structs are plain Go structs, not generated
// proto.Message implementations — there is no ProtoReflect/Reset/String
// triple to satisfy gRPC's default protobuf codec. Codec marshals the
// same structs with encoding/json instead, so every client (pkg/clients)
// and server (pkg/gateway) must force it consistently via grpc.ForceCodec /
// grpc.ForceServerCodec rather than relying on content-type negotiation.
package codec

import "encoding/json"

// Name is the codec identifier forced on every facade channel and
// server.
const Name = "json"

// Codec implements google.golang.org/grpc/encoding.Codec for plain Go
// structs.
type Codec struct{}

func (Codec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (Codec) Name() string {
	return Name
}
