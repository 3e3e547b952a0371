package fmaas

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GenerationServiceClient is the client API for the upstream generation
// service, as protoc-gen-go-grpc would emit it.
type GenerationServiceClient interface {
	Generate(ctx context.Context, in *BatchedGenerationRequest, opts ...grpc.CallOption) (*BatchedGenerationResponse, error)
	GenerateStream(ctx context.Context, in *SingleGenerationRequest, opts ...grpc.CallOption) (GenerationService_GenerateStreamClient, error)
	Tokenize(ctx context.Context, in *BatchedTokenizeRequest, opts ...grpc.CallOption) (*BatchedTokenizeResponse, error)
	ModelInfo(ctx context.Context, in *ModelInfoRequest, opts ...grpc.CallOption) (*ModelInfoResponse, error)
}

type generationServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGenerationServiceClient wraps a connection as a typed client. The
// connection is expected to be a load-balanced channel constructed by
// pkg/clients; cloning this client does not clone the channel.
func NewGenerationServiceClient(cc grpc.ClientConnInterface) GenerationServiceClient {
	return &generationServiceClient{cc: cc}
}

func (c *generationServiceClient) Generate(ctx context.Context, in *BatchedGenerationRequest, opts ...grpc.CallOption) (*BatchedGenerationResponse, error) {
	out := new(BatchedGenerationResponse)
	err := c.cc.Invoke(ctx, GenerationService_Generate_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *generationServiceClient) GenerateStream(ctx context.Context, in *SingleGenerationRequest, opts ...grpc.CallOption) (GenerationService_GenerateStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &_GenerationService_serviceDesc.Streams[0], GenerationService_GenerateStream_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &generationServiceGenerateStreamClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *generationServiceClient) Tokenize(ctx context.Context, in *BatchedTokenizeRequest, opts ...grpc.CallOption) (*BatchedTokenizeResponse, error) {
	out := new(BatchedTokenizeResponse)
	err := c.cc.Invoke(ctx, GenerationService_Tokenize_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *generationServiceClient) ModelInfo(ctx context.Context, in *ModelInfoRequest, opts ...grpc.CallOption) (*ModelInfoResponse, error) {
	out := new(ModelInfoResponse)
	err := c.cc.Invoke(ctx, GenerationService_ModelInfo_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GenerationService_GenerateStreamClient is the client side of the
// server-streaming GenerateStream RPC.
type GenerationService_GenerateStreamClient interface {
	Recv() (*GenerationResponse, error)
	grpc.ClientStream
}

type generationServiceGenerateStreamClient struct {
	grpc.ClientStream
}

func (x *generationServiceGenerateStreamClient) Recv() (*GenerationResponse, error) {
	m := new(GenerationResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// GenerationServiceServer is the server API for the generation facade.
// Methods not implemented must embed UnimplementedGenerationServiceServer.
type GenerationServiceServer interface {
	Generate(context.Context, *BatchedGenerationRequest) (*BatchedGenerationResponse, error)
	GenerateStream(*SingleGenerationRequest, GenerationService_GenerateStreamServer) error
	Tokenize(context.Context, *BatchedTokenizeRequest) (*BatchedTokenizeResponse, error)
	ModelInfo(context.Context, *ModelInfoRequest) (*ModelInfoResponse, error)
}

// UnimplementedGenerationServiceServer must be embedded for forward
// compatibility with new methods added to the service.
type UnimplementedGenerationServiceServer struct{}

func (UnimplementedGenerationServiceServer) Generate(context.Context, *BatchedGenerationRequest) (*BatchedGenerationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Generate not implemented")
}
func (UnimplementedGenerationServiceServer) GenerateStream(*SingleGenerationRequest, GenerationService_GenerateStreamServer) error {
	return status.Error(codes.Unimplemented, "method GenerateStream not implemented")
}
func (UnimplementedGenerationServiceServer) Tokenize(context.Context, *BatchedTokenizeRequest) (*BatchedTokenizeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Tokenize not implemented")
}
func (UnimplementedGenerationServiceServer) ModelInfo(context.Context, *ModelInfoRequest) (*ModelInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ModelInfo not implemented")
}

// RegisterGenerationServiceServer registers the facade on a gRPC server.
func RegisterGenerationServiceServer(s grpc.ServiceRegistrar, srv GenerationServiceServer) {
	s.RegisterService(&_GenerationService_serviceDesc, srv)
}

func _GenerationService_Generate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BatchedGenerationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GenerationServiceServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GenerationService_Generate_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GenerationServiceServer).Generate(ctx, req.(*BatchedGenerationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GenerationService_GenerateStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SingleGenerationRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(GenerationServiceServer).GenerateStream(m, &generationServiceGenerateStreamServer{stream})
}

func _GenerationService_Tokenize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BatchedTokenizeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GenerationServiceServer).Tokenize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GenerationService_Tokenize_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GenerationServiceServer).Tokenize(ctx, req.(*BatchedTokenizeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GenerationService_ModelInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ModelInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GenerationServiceServer).ModelInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GenerationService_ModelInfo_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GenerationServiceServer).ModelInfo(ctx, req.(*ModelInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// GenerationService_GenerateStreamServer is the server side of the
// server-streaming GenerateStream RPC.
type GenerationService_GenerateStreamServer interface {
	Send(*GenerationResponse) error
	grpc.ServerStream
}

type generationServiceGenerateStreamServer struct {
	grpc.ServerStream
}

func (x *generationServiceGenerateStreamServer) Send(m *GenerationResponse) error {
	return x.ServerStream.SendMsg(m)
}

const (
	GenerationService_Generate_FullMethodName       = "/fmaas.GenerationService/Generate"
	GenerationService_GenerateStream_FullMethodName = "/fmaas.GenerationService/GenerateStream"
	GenerationService_Tokenize_FullMethodName       = "/fmaas.GenerationService/Tokenize"
	GenerationService_ModelInfo_FullMethodName      = "/fmaas.GenerationService/ModelInfo"
)

var _GenerationService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "fmaas.GenerationService",
	HandlerType: (*GenerationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: _GenerationService_Generate_Handler},
		{MethodName: "Tokenize", Handler: _GenerationService_Tokenize_Handler},
		{MethodName: "ModelInfo", Handler: _GenerationService_ModelInfo_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GenerateStream",
			Handler:       _GenerationService_GenerateStream_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "generation.proto",
}
