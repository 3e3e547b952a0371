package nlp

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NlpServiceClient is the client API for the upstream NLP task service.
type NlpServiceClient interface {
	EmbeddingTaskPredict(ctx context.Context, in *EmbeddingTaskRequest, opts ...grpc.CallOption) (*EmbeddingResult, error)
	EmbeddingTasksPredict(ctx context.Context, in *EmbeddingTasksRequest, opts ...grpc.CallOption) (*EmbeddingResults, error)
	RerankTaskPredict(ctx context.Context, in *RerankTaskRequest, opts ...grpc.CallOption) (*RerankResult, error)
	RerankTasksPredict(ctx context.Context, in *RerankTasksRequest, opts ...grpc.CallOption) (*RerankResults, error)
	SentenceSimilarityTaskPredict(ctx context.Context, in *SentenceSimilarityTaskRequest, opts ...grpc.CallOption) (*SentenceSimilarityResult, error)
	SentenceSimilarityTasksPredict(ctx context.Context, in *SentenceSimilarityTasksRequest, opts ...grpc.CallOption) (*SentenceSimilarityResults, error)
	TextClassificationTaskPredict(ctx context.Context, in *TextClassificationTaskRequest, opts ...grpc.CallOption) (*ClassificationResults, error)
	TextGenerationTaskPredict(ctx context.Context, in *TextGenerationTaskRequest, opts ...grpc.CallOption) (*GeneratedTextResult, error)
	TokenClassificationTaskPredict(ctx context.Context, in *TokenClassificationTaskRequest, opts ...grpc.CallOption) (*TokenClassificationResults, error)
	ServerStreamingTextGenerationTaskPredict(ctx context.Context, in *ServerStreamingTextGenerationTaskRequest, opts ...grpc.CallOption) (NlpService_ServerStreamingTextGenerationTaskPredictClient, error)
	BidiStreamingTokenClassificationTaskPredict(ctx context.Context, opts ...grpc.CallOption) (NlpService_BidiStreamingTokenClassificationTaskPredictClient, error)
}

type nlpServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewNlpServiceClient wraps a connection as a typed client.
func NewNlpServiceClient(cc grpc.ClientConnInterface) NlpServiceClient {
	return &nlpServiceClient{cc: cc}
}

func (c *nlpServiceClient) EmbeddingTaskPredict(ctx context.Context, in *EmbeddingTaskRequest, opts ...grpc.CallOption) (*EmbeddingResult, error) {
	out := new(EmbeddingResult)
	if err := c.cc.Invoke(ctx, "/caikit.runtime.Nlp.NlpService/EmbeddingTaskPredict", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nlpServiceClient) EmbeddingTasksPredict(ctx context.Context, in *EmbeddingTasksRequest, opts ...grpc.CallOption) (*EmbeddingResults, error) {
	out := new(EmbeddingResults)
	if err := c.cc.Invoke(ctx, "/caikit.runtime.Nlp.NlpService/EmbeddingTasksPredict", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nlpServiceClient) RerankTaskPredict(ctx context.Context, in *RerankTaskRequest, opts ...grpc.CallOption) (*RerankResult, error) {
	out := new(RerankResult)
	if err := c.cc.Invoke(ctx, "/caikit.runtime.Nlp.NlpService/RerankTaskPredict", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nlpServiceClient) RerankTasksPredict(ctx context.Context, in *RerankTasksRequest, opts ...grpc.CallOption) (*RerankResults, error) {
	out := new(RerankResults)
	if err := c.cc.Invoke(ctx, "/caikit.runtime.Nlp.NlpService/RerankTasksPredict", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nlpServiceClient) SentenceSimilarityTaskPredict(ctx context.Context, in *SentenceSimilarityTaskRequest, opts ...grpc.CallOption) (*SentenceSimilarityResult, error) {
	out := new(SentenceSimilarityResult)
	if err := c.cc.Invoke(ctx, "/caikit.runtime.Nlp.NlpService/SentenceSimilarityTaskPredict", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nlpServiceClient) SentenceSimilarityTasksPredict(ctx context.Context, in *SentenceSimilarityTasksRequest, opts ...grpc.CallOption) (*SentenceSimilarityResults, error) {
	out := new(SentenceSimilarityResults)
	if err := c.cc.Invoke(ctx, "/caikit.runtime.Nlp.NlpService/SentenceSimilarityTasksPredict", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nlpServiceClient) TextClassificationTaskPredict(ctx context.Context, in *TextClassificationTaskRequest, opts ...grpc.CallOption) (*ClassificationResults, error) {
	out := new(ClassificationResults)
	if err := c.cc.Invoke(ctx, "/caikit.runtime.Nlp.NlpService/TextClassificationTaskPredict", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nlpServiceClient) TextGenerationTaskPredict(ctx context.Context, in *TextGenerationTaskRequest, opts ...grpc.CallOption) (*GeneratedTextResult, error) {
	out := new(GeneratedTextResult)
	if err := c.cc.Invoke(ctx, "/caikit.runtime.Nlp.NlpService/TextGenerationTaskPredict", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nlpServiceClient) TokenClassificationTaskPredict(ctx context.Context, in *TokenClassificationTaskRequest, opts ...grpc.CallOption) (*TokenClassificationResults, error) {
	out := new(TokenClassificationResults)
	if err := c.cc.Invoke(ctx, "/caikit.runtime.Nlp.NlpService/TokenClassificationTaskPredict", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nlpServiceClient) ServerStreamingTextGenerationTaskPredict(ctx context.Context, in *ServerStreamingTextGenerationTaskRequest, opts ...grpc.CallOption) (NlpService_ServerStreamingTextGenerationTaskPredictClient, error) {
	stream, err := c.cc.NewStream(ctx, &_NlpService_serviceDesc.Streams[0], "/caikit.runtime.Nlp.NlpService/ServerStreamingTextGenerationTaskPredict", opts...)
	if err != nil {
		return nil, err
	}
	x := &nlpServiceServerStreamingTextGenerationTaskPredictClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type NlpService_ServerStreamingTextGenerationTaskPredictClient interface {
	Recv() (*GeneratedTextStreamResult, error)
	grpc.ClientStream
}

type nlpServiceServerStreamingTextGenerationTaskPredictClient struct {
	grpc.ClientStream
}

func (x *nlpServiceServerStreamingTextGenerationTaskPredictClient) Recv() (*GeneratedTextStreamResult, error) {
	m := new(GeneratedTextStreamResult)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *nlpServiceClient) BidiStreamingTokenClassificationTaskPredict(ctx context.Context, opts ...grpc.CallOption) (NlpService_BidiStreamingTokenClassificationTaskPredictClient, error) {
	stream, err := c.cc.NewStream(ctx, &_NlpService_serviceDesc.Streams[1], "/caikit.runtime.Nlp.NlpService/BidiStreamingTokenClassificationTaskPredict", opts...)
	if err != nil {
		return nil, err
	}
	return &nlpServiceBidiStreamingTokenClassificationTaskPredictClient{stream}, nil
}

type NlpService_BidiStreamingTokenClassificationTaskPredictClient interface {
	Send(*BidiStreamingTokenClassificationTaskRequest) error
	Recv() (*TokenClassificationStreamResult, error)
	grpc.ClientStream
}

type nlpServiceBidiStreamingTokenClassificationTaskPredictClient struct {
	grpc.ClientStream
}

func (x *nlpServiceBidiStreamingTokenClassificationTaskPredictClient) Send(m *BidiStreamingTokenClassificationTaskRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *nlpServiceBidiStreamingTokenClassificationTaskPredictClient) Recv() (*TokenClassificationStreamResult, error) {
	m := new(TokenClassificationStreamResult)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// NlpService is the server API for the NLP task facade.
type NlpService interface {
	EmbeddingTaskPredict(context.Context, *EmbeddingTaskRequest) (*EmbeddingResult, error)
	EmbeddingTasksPredict(context.Context, *EmbeddingTasksRequest) (*EmbeddingResults, error)
	RerankTaskPredict(context.Context, *RerankTaskRequest) (*RerankResult, error)
	RerankTasksPredict(context.Context, *RerankTasksRequest) (*RerankResults, error)
	SentenceSimilarityTaskPredict(context.Context, *SentenceSimilarityTaskRequest) (*SentenceSimilarityResult, error)
	SentenceSimilarityTasksPredict(context.Context, *SentenceSimilarityTasksRequest) (*SentenceSimilarityResults, error)
	TextClassificationTaskPredict(context.Context, *TextClassificationTaskRequest) (*ClassificationResults, error)
	TextGenerationTaskPredict(context.Context, *TextGenerationTaskRequest) (*GeneratedTextResult, error)
	TokenClassificationTaskPredict(context.Context, *TokenClassificationTaskRequest) (*TokenClassificationResults, error)
	ServerStreamingTextGenerationTaskPredict(*ServerStreamingTextGenerationTaskRequest, NlpService_ServerStreamingTextGenerationTaskPredictServer) error
	BidiStreamingTokenClassificationTaskPredict(NlpService_BidiStreamingTokenClassificationTaskPredictServer) error
}

// UnimplementedNlpServiceServer must be embedded for forward compatibility.
type UnimplementedNlpServiceServer struct{}

func (UnimplementedNlpServiceServer) EmbeddingTaskPredict(context.Context, *EmbeddingTaskRequest) (*EmbeddingResult, error) {
	return nil, status.Error(codes.Unimplemented, "method EmbeddingTaskPredict not implemented")
}
func (UnimplementedNlpServiceServer) EmbeddingTasksPredict(context.Context, *EmbeddingTasksRequest) (*EmbeddingResults, error) {
	return nil, status.Error(codes.Unimplemented, "method EmbeddingTasksPredict not implemented")
}
func (UnimplementedNlpServiceServer) RerankTaskPredict(context.Context, *RerankTaskRequest) (*RerankResult, error) {
	return nil, status.Error(codes.Unimplemented, "method RerankTaskPredict not implemented")
}
func (UnimplementedNlpServiceServer) RerankTasksPredict(context.Context, *RerankTasksRequest) (*RerankResults, error) {
	return nil, status.Error(codes.Unimplemented, "method RerankTasksPredict not implemented")
}
func (UnimplementedNlpServiceServer) SentenceSimilarityTaskPredict(context.Context, *SentenceSimilarityTaskRequest) (*SentenceSimilarityResult, error) {
	return nil, status.Error(codes.Unimplemented, "method SentenceSimilarityTaskPredict not implemented")
}
func (UnimplementedNlpServiceServer) SentenceSimilarityTasksPredict(context.Context, *SentenceSimilarityTasksRequest) (*SentenceSimilarityResults, error) {
	return nil, status.Error(codes.Unimplemented, "method SentenceSimilarityTasksPredict not implemented")
}
func (UnimplementedNlpServiceServer) TextClassificationTaskPredict(context.Context, *TextClassificationTaskRequest) (*ClassificationResults, error) {
	return nil, status.Error(codes.Unimplemented, "method TextClassificationTaskPredict not implemented")
}
func (UnimplementedNlpServiceServer) TextGenerationTaskPredict(context.Context, *TextGenerationTaskRequest) (*GeneratedTextResult, error) {
	return nil, status.Error(codes.Unimplemented, "method TextGenerationTaskPredict not implemented")
}
func (UnimplementedNlpServiceServer) TokenClassificationTaskPredict(context.Context, *TokenClassificationTaskRequest) (*TokenClassificationResults, error) {
	return nil, status.Error(codes.Unimplemented, "method TokenClassificationTaskPredict not implemented")
}
func (UnimplementedNlpServiceServer) ServerStreamingTextGenerationTaskPredict(*ServerStreamingTextGenerationTaskRequest, NlpService_ServerStreamingTextGenerationTaskPredictServer) error {
	return status.Error(codes.Unimplemented, "method ServerStreamingTextGenerationTaskPredict not implemented")
}
func (UnimplementedNlpServiceServer) BidiStreamingTokenClassificationTaskPredict(NlpService_BidiStreamingTokenClassificationTaskPredictServer) error {
	return status.Error(codes.Unimplemented, "method BidiStreamingTokenClassificationTaskPredict not implemented")
}

// RegisterNlpServiceServer registers the facade on a gRPC server.
func RegisterNlpServiceServer(s grpc.ServiceRegistrar, srv NlpService) {
	s.RegisterService(&_NlpService_serviceDesc, srv)
}

type NlpService_ServerStreamingTextGenerationTaskPredictServer interface {
	Send(*GeneratedTextStreamResult) error
	grpc.ServerStream
}

type nlpServiceServerStreamingTextGenerationTaskPredictServer struct {
	grpc.ServerStream
}

func (x *nlpServiceServerStreamingTextGenerationTaskPredictServer) Send(m *GeneratedTextStreamResult) error {
	return x.ServerStream.SendMsg(m)
}

type NlpService_BidiStreamingTokenClassificationTaskPredictServer interface {
	Send(*TokenClassificationStreamResult) error
	Recv() (*BidiStreamingTokenClassificationTaskRequest, error)
	grpc.ServerStream
}

type nlpServiceBidiStreamingTokenClassificationTaskPredictServer struct {
	grpc.ServerStream
}

func (x *nlpServiceBidiStreamingTokenClassificationTaskPredictServer) Send(m *TokenClassificationStreamResult) error {
	return x.ServerStream.SendMsg(m)
}

func (x *nlpServiceBidiStreamingTokenClassificationTaskPredictServer) Recv() (*BidiStreamingTokenClassificationTaskRequest, error) {
	m := new(BidiStreamingTokenClassificationTaskRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _NlpService_EmbeddingTaskPredict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EmbeddingTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NlpService).EmbeddingTaskPredict(ctx, in)
	}
	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: "/caikit.runtime.Nlp.NlpService/EmbeddingTaskPredict"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NlpService).EmbeddingTaskPredict(ctx, req.(*EmbeddingTaskRequest))
	})
}

func _NlpService_EmbeddingTasksPredict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EmbeddingTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NlpService).EmbeddingTasksPredict(ctx, in)
	}
	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: "/caikit.runtime.Nlp.NlpService/EmbeddingTasksPredict"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NlpService).EmbeddingTasksPredict(ctx, req.(*EmbeddingTasksRequest))
	})
}

func _NlpService_RerankTaskPredict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RerankTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NlpService).RerankTaskPredict(ctx, in)
	}
	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: "/caikit.runtime.Nlp.NlpService/RerankTaskPredict"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NlpService).RerankTaskPredict(ctx, req.(*RerankTaskRequest))
	})
}

func _NlpService_RerankTasksPredict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RerankTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NlpService).RerankTasksPredict(ctx, in)
	}
	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: "/caikit.runtime.Nlp.NlpService/RerankTasksPredict"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NlpService).RerankTasksPredict(ctx, req.(*RerankTasksRequest))
	})
}

func _NlpService_SentenceSimilarityTaskPredict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SentenceSimilarityTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NlpService).SentenceSimilarityTaskPredict(ctx, in)
	}
	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: "/caikit.runtime.Nlp.NlpService/SentenceSimilarityTaskPredict"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NlpService).SentenceSimilarityTaskPredict(ctx, req.(*SentenceSimilarityTaskRequest))
	})
}

func _NlpService_SentenceSimilarityTasksPredict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SentenceSimilarityTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NlpService).SentenceSimilarityTasksPredict(ctx, in)
	}
	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: "/caikit.runtime.Nlp.NlpService/SentenceSimilarityTasksPredict"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NlpService).SentenceSimilarityTasksPredict(ctx, req.(*SentenceSimilarityTasksRequest))
	})
}

func _NlpService_TextClassificationTaskPredict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TextClassificationTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NlpService).TextClassificationTaskPredict(ctx, in)
	}
	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: "/caikit.runtime.Nlp.NlpService/TextClassificationTaskPredict"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NlpService).TextClassificationTaskPredict(ctx, req.(*TextClassificationTaskRequest))
	})
}

func _NlpService_TextGenerationTaskPredict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TextGenerationTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NlpService).TextGenerationTaskPredict(ctx, in)
	}
	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: "/caikit.runtime.Nlp.NlpService/TextGenerationTaskPredict"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NlpService).TextGenerationTaskPredict(ctx, req.(*TextGenerationTaskRequest))
	})
}

func _NlpService_TokenClassificationTaskPredict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TokenClassificationTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NlpService).TokenClassificationTaskPredict(ctx, in)
	}
	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: "/caikit.runtime.Nlp.NlpService/TokenClassificationTaskPredict"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NlpService).TokenClassificationTaskPredict(ctx, req.(*TokenClassificationTaskRequest))
	})
}

func _NlpService_ServerStreamingTextGenerationTaskPredict_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ServerStreamingTextGenerationTaskRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(NlpService).ServerStreamingTextGenerationTaskPredict(m, &nlpServiceServerStreamingTextGenerationTaskPredictServer{stream})
}

func _NlpService_BidiStreamingTokenClassificationTaskPredict_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(NlpService).BidiStreamingTokenClassificationTaskPredict(&nlpServiceBidiStreamingTokenClassificationTaskPredictServer{stream})
}

var _NlpService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "caikit.runtime.Nlp.NlpService",
	HandlerType: (*NlpService)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "EmbeddingTaskPredict", Handler: _NlpService_EmbeddingTaskPredict_Handler},
		{MethodName: "EmbeddingTasksPredict", Handler: _NlpService_EmbeddingTasksPredict_Handler},
		{MethodName: "RerankTaskPredict", Handler: _NlpService_RerankTaskPredict_Handler},
		{MethodName: "RerankTasksPredict", Handler: _NlpService_RerankTasksPredict_Handler},
		{MethodName: "SentenceSimilarityTaskPredict", Handler: _NlpService_SentenceSimilarityTaskPredict_Handler},
		{MethodName: "SentenceSimilarityTasksPredict", Handler: _NlpService_SentenceSimilarityTasksPredict_Handler},
		{MethodName: "TextClassificationTaskPredict", Handler: _NlpService_TextClassificationTaskPredict_Handler},
		{MethodName: "TextGenerationTaskPredict", Handler: _NlpService_TextGenerationTaskPredict_Handler},
		{MethodName: "TokenClassificationTaskPredict", Handler: _NlpService_TokenClassificationTaskPredict_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ServerStreamingTextGenerationTaskPredict",
			Handler:       _NlpService_ServerStreamingTextGenerationTaskPredict_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "BidiStreamingTokenClassificationTaskPredict",
			Handler:       _NlpService_BidiStreamingTokenClassificationTaskPredict_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "caikit_runtime_Nlp.proto",
}
