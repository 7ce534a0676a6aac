// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"

	"github.com/MKhiriev/go-refute/models"
	"google.golang.org/grpc"
)

// ShareServiceName is the fully-qualified gRPC service name.
const ShareServiceName = "refute.v1.Share"

// Full method names, as seen by interceptors and used by clients.
const (
	ShareEncryptFullMethod         = "/" + ShareServiceName + "/Encrypt"
	ShareDecryptFullMethod         = "/" + ShareServiceName + "/Decrypt"
	ShareCandidatesFullMethod      = "/" + ShareServiceName + "/Candidates"
	ShareCheckCandidatesFullMethod = "/" + ShareServiceName + "/CheckCandidates"
	ShareVersionFullMethod         = "/" + ShareServiceName + "/Version"
)

// Empty is the request of methods that take no arguments.
type Empty struct{}

// VersionResponse carries the server application version.
type VersionResponse struct {
	Version string `json:"version"`
}

// ShareServer is the server API of the share service.
type ShareServer interface {
	Encrypt(context.Context, *models.EncryptRequest) (*models.EncryptResponse, error)
	Decrypt(context.Context, *models.DecryptRequest) (*models.DecryptResponse, error)
	Candidates(context.Context, *Empty) (*models.CandidatesResponse, error)
	CheckCandidates(context.Context, *Empty) (*models.CheckResponse, error)
	Version(context.Context, *Empty) (*VersionResponse, error)
}

// ShareServiceDesc describes the share service for [grpc.ServiceRegistrar].
var ShareServiceDesc = grpc.ServiceDesc{
	ServiceName: ShareServiceName,
	HandlerType: (*ShareServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Encrypt", Handler: unaryHandler(ShareEncryptFullMethod, ShareServer.Encrypt)},
		{MethodName: "Decrypt", Handler: unaryHandler(ShareDecryptFullMethod, ShareServer.Decrypt)},
		{MethodName: "Candidates", Handler: unaryHandler(ShareCandidatesFullMethod, ShareServer.Candidates)},
		{MethodName: "CheckCandidates", Handler: unaryHandler(ShareCheckCandidatesFullMethod, ShareServer.CheckCandidates)},
		{MethodName: "Version", Handler: unaryHandler(ShareVersionFullMethod, ShareServer.Version)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterShareServer registers srv on s.
func RegisterShareServer(s grpc.ServiceRegistrar, srv ShareServer) {
	s.RegisterService(&ShareServiceDesc, srv)
}

// unaryHandler adapts a typed ShareServer method to [grpc.MethodHandler],
// decoding the request and routing it through the server's interceptor chain.
func unaryHandler[Req, Resp any](fullMethod string, call func(ShareServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(ShareServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ShareServer), ctx, req.(*Req))
		}

		return interceptor(ctx, in, info, handler)
	}
}

// ShareClient is the client API of the share service.
type ShareClient interface {
	Encrypt(ctx context.Context, in *models.EncryptRequest, opts ...grpc.CallOption) (*models.EncryptResponse, error)
	Decrypt(ctx context.Context, in *models.DecryptRequest, opts ...grpc.CallOption) (*models.DecryptResponse, error)
	Candidates(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*models.CandidatesResponse, error)
	CheckCandidates(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*models.CheckResponse, error)
	Version(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*VersionResponse, error)
}

type shareClient struct {
	cc grpc.ClientConnInterface
}

// NewShareClient returns a [ShareClient] over cc. Every call is sent with the
// JSON content-subtype.
func NewShareClient(cc grpc.ClientConnInterface) ShareClient {
	return &shareClient{cc: cc}
}

func (c *shareClient) Encrypt(ctx context.Context, in *models.EncryptRequest, opts ...grpc.CallOption) (*models.EncryptResponse, error) {
	return invoke[models.EncryptResponse](ctx, c.cc, ShareEncryptFullMethod, in, opts)
}

func (c *shareClient) Decrypt(ctx context.Context, in *models.DecryptRequest, opts ...grpc.CallOption) (*models.DecryptResponse, error) {
	return invoke[models.DecryptResponse](ctx, c.cc, ShareDecryptFullMethod, in, opts)
}

func (c *shareClient) Candidates(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*models.CandidatesResponse, error) {
	return invoke[models.CandidatesResponse](ctx, c.cc, ShareCandidatesFullMethod, in, opts)
}

func (c *shareClient) CheckCandidates(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*models.CheckResponse, error) {
	return invoke[models.CheckResponse](ctx, c.cc, ShareCheckCandidatesFullMethod, in, opts)
}

func (c *shareClient) Version(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*VersionResponse, error) {
	return invoke[VersionResponse](ctx, c.cc, ShareVersionFullMethod, in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}
