package info

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InfoServiceClient is the client API for the upstream model-info service.
type InfoServiceClient interface {
	GetModelsInfo(ctx context.Context, in *GetModelsInfoRequest, opts ...grpc.CallOption) (*GetModelsInfoResponse, error)
	GetRuntimeInfo(ctx context.Context, in *GetRuntimeInfoRequest, opts ...grpc.CallOption) (*RuntimeInfoResponse, error)
}

type infoServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewInfoServiceClient wraps a connection as a typed client.
func NewInfoServiceClient(cc grpc.ClientConnInterface) InfoServiceClient {
	return &infoServiceClient{cc: cc}
}

func (c *infoServiceClient) GetModelsInfo(ctx context.Context, in *GetModelsInfoRequest, opts ...grpc.CallOption) (*GetModelsInfoResponse, error) {
	out := new(GetModelsInfoResponse)
	if err := c.cc.Invoke(ctx, "/caikit.runtime.info.InfoService/GetModelsInfo", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *infoServiceClient) GetRuntimeInfo(ctx context.Context, in *GetRuntimeInfoRequest, opts ...grpc.CallOption) (*RuntimeInfoResponse, error) {
	out := new(RuntimeInfoResponse)
	if err := c.cc.Invoke(ctx, "/caikit.runtime.info.InfoService/GetRuntimeInfo", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// InfoService is the server API for the model-info facade.
type InfoService interface {
	GetModelsInfo(context.Context, *GetModelsInfoRequest) (*GetModelsInfoResponse, error)
	GetRuntimeInfo(context.Context, *GetRuntimeInfoRequest) (*RuntimeInfoResponse, error)
}

// UnimplementedInfoServiceServer must be embedded for forward compatibility.
type UnimplementedInfoServiceServer struct{}

func (UnimplementedInfoServiceServer) GetModelsInfo(context.Context, *GetModelsInfoRequest) (*GetModelsInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetModelsInfo not implemented")
}

func (UnimplementedInfoServiceServer) GetRuntimeInfo(context.Context, *GetRuntimeInfoRequest) (*RuntimeInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRuntimeInfo not implemented")
}

// RegisterInfoServiceServer registers the facade on a gRPC server.
func RegisterInfoServiceServer(s grpc.ServiceRegistrar, srv InfoService) {
	s.RegisterService(&_InfoService_serviceDesc, srv)
}

func _InfoService_GetModelsInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetModelsInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InfoService).GetModelsInfo(ctx, in)
	}
	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: "/caikit.runtime.info.InfoService/GetModelsInfo"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InfoService).GetModelsInfo(ctx, req.(*GetModelsInfoRequest))
	})
}

func _InfoService_GetRuntimeInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRuntimeInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InfoService).GetRuntimeInfo(ctx, in)
	}
	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: "/caikit.runtime.info.InfoService/GetRuntimeInfo"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InfoService).GetRuntimeInfo(ctx, req.(*GetRuntimeInfoRequest))
	})
}

var _InfoService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "caikit.runtime.info.InfoService",
	HandlerType: (*InfoService)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetModelsInfo", Handler: _InfoService_GetModelsInfo_Handler},
		{MethodName: "GetRuntimeInfo", Handler: _InfoService_GetRuntimeInfo_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "caikit_runtime_info.proto",
}
