// Package paletted serves palette assignment and class resolution over gRPC.
package paletted

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "palette.v1.PaletteService"

// Method names.
const (
	MethodPing           = "Ping"
	MethodGetStatus      = "GetStatus"
	MethodListPalettes   = "ListPalettes"
	MethodAssignPalette  = "AssignPalette"
	MethodResolveClasses = "ResolveClasses"
)

// FullMethod returns the gRPC path for a method name.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// PaletteServiceServer is implemented by Server. Requests and responses are
// google.protobuf.Struct messages.
type PaletteServiceServer interface {
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListPalettes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AssignPalette(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResolveClasses(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(context.Context, *structpb.Struct) (*structpb.Struct, error)

// ServiceDesc describes PaletteService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PaletteServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		methodDesc(MethodPing, func(s PaletteServiceServer) unaryMethod { return s.Ping }),
		methodDesc(MethodGetStatus, func(s PaletteServiceServer) unaryMethod { return s.GetStatus }),
		methodDesc(MethodListPalettes, func(s PaletteServiceServer) unaryMethod { return s.ListPalettes }),
		methodDesc(MethodAssignPalette, func(s PaletteServiceServer) unaryMethod { return s.AssignPalette }),
		methodDesc(MethodResolveClasses, func(s PaletteServiceServer) unaryMethod { return s.ResolveClasses }),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "palette/v1/palette.proto",
}

// RegisterPaletteServiceServer registers srv with s.
func RegisterPaletteServiceServer(s grpc.ServiceRegistrar, srv PaletteServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func methodDesc(name string, pick func(PaletteServiceServer) unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			call := pick(srv.(PaletteServiceServer))
			if interceptor == nil {
				return call(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(ctx, req.(*structpb.Struct))
			})
		},
	}
}

// Client calls PaletteService.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with a request built from fields.
func (c *Client) Call(ctx context.Context, method string, fields map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", method, err)
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping returns the daemon version.
func (c *Client) Ping(ctx context.Context) (string, error) {
	out, err := c.Call(ctx, MethodPing, nil)
	if err != nil {
		return "", err
	}
	return stringField(out, "version"), nil
}

// ListPalettes returns the current snapshot. With an item ID the entry
// the item resolves to is flagged current.
func (c *Client) ListPalettes(ctx context.Context, itemID string) ([]PaletteEntry, error) {
	fields := map[string]any{}
	if itemID != "" {
		fields["item_id"] = itemID
	}
	out, err := c.Call(ctx, MethodListPalettes, fields)
	if err != nil {
		return nil, err
	}
	return decodePalettes(out), nil
}

// AssignPalette submits a save for an item.
func (c *Client) AssignPalette(ctx context.Context, req AssignRequest) (*AssignResult, error) {
	out, err := c.Call(ctx, MethodAssignPalette, req.fields())
	if err != nil {
		return nil, err
	}
	return decodeAssignResult(out), nil
}

// ResolveClasses returns the body classes for a render target.
func (c *Client) ResolveClasses(ctx context.Context, req ResolveRequest) ([]string, error) {
	out, err := c.Call(ctx, MethodResolveClasses, req.fields())
	if err != nil {
		return nil, err
	}
	return stringList(out, "classes"), nil
}
