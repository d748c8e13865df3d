package mempool

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// jsonCodecName is registered once so the query surface can be dialed
// without a protoc step, per the DESIGN.md note on this file: the
// teacher's generated `node` package is wallet/crypto-specific and out
// of scope (spec section 1), so this surface marshals with JSON instead
// of a committed .proto.
const jsonCodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                               { return jsonCodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// CountsRequest is the empty request for Counts.
type CountsRequest struct{}

// CountsResponse reports the live entry count of each queue.
type CountsResponse struct {
	Unconfirmed    int `json:"unconfirmed"`
	Bundled        int `json:"bundled"`
	Queued         int `json:"queued"`
	Multisignature int `json:"multisignature"`
}

// MergedListRequest mirrors GetMergedTransactionList's parameters.
type MergedListRequest struct {
	Reverse bool `json:"reverse"`
	Limit   int  `json:"limit"`
}

// MergedListResponse carries the ids of the merged transaction list;
// the query surface is read-only introspection, not a transaction feed,
// so only ids cross the wire.
type MergedListResponse struct {
	Ids []string `json:"ids"`
}

// QueryServer exposes read-only mempool state over gRPC, adapted from
// the teacher's `NewMempool(..., srv *grpc.Server)` /
// `node.RegisterMempoolServer(srv, m)` wiring: registration is opt-in,
// skipped when srv is nil.
type QueryServer struct {
	pool *Pool
}

// NewQueryServer wraps pool for gRPC registration.
func NewQueryServer(pool *Pool) *QueryServer {
	return &QueryServer{pool: pool}
}

// Counts implements the Counts RPC.
func (s *QueryServer) Counts(ctx context.Context, _ *CountsRequest) (*CountsResponse, error) {
	return &CountsResponse{
		Unconfirmed:    s.pool.CountUnconfirmed(),
		Bundled:        s.pool.CountBundled(),
		Queued:         s.pool.CountQueued(),
		Multisignature: s.pool.CountMultisignature(),
	}, nil
}

// MergedList implements the MergedList RPC.
func (s *QueryServer) MergedList(ctx context.Context, req *MergedListRequest) (*MergedListResponse, error) {
	txs := s.pool.GetMergedTransactionList(req.Reverse, req.Limit)
	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.ID()
	}
	return &MergedListResponse{Ids: ids}, nil
}

func countsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(*QueryServer).Counts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/mempool.Query/Counts"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(*QueryServer).Counts(ctx, req.(*CountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func mergedListHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MergedListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(*QueryServer).MergedList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/mempool.Query/MergedList"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(*QueryServer).MergedList(ctx, req.(*MergedListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// queryServiceDesc is the hand-written equivalent of what protoc-gen-go-grpc
// would emit for a "mempool.Query" service with Counts/MergedList methods.
var queryServiceDesc = grpc.ServiceDesc{
	ServiceName: "mempool.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Counts", Handler: countsHandler},
		{MethodName: "MergedList", Handler: mergedListHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mempool.proto",
}

// RegisterQueryServer registers srv's mempool query surface on s, per
// the teacher's node.RegisterMempoolServer(srv, m) call site. Passing a
// nil *grpc.Server leaves the surface unregistered, as the teacher does
// when no gRPC transport was supplied to NewMempool.
func RegisterQueryServer(s *grpc.Server, srv *QueryServer) {
	if s == nil {
		return
	}
	s.RegisterService(&queryServiceDesc, srv)
}
