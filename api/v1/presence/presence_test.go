package presence

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type statusOnlyServer struct {
	UnimplementedPresenceServiceServer
}

func (statusOnlyServer) GetManyUserStatuses(ctx context.Context, in *UserIDs) (*UserStatusesResponse, error) {
	resp := &UserStatusesResponse{}
	for _, id := range in.IDs {
		st := "offline"
		if id%2 == 0 {
			st = "online"
		}
		resp.Statuses = append(resp.Statuses, StatusWithID{ID: id, Status: st})
	}
	return resp, nil
}

func dial(t *testing.T, srv PresenceServiceServer) PresenceServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	RegisterPresenceServiceServer(server, srv)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewPresenceServiceClient(conn)
}

func TestPresenceService_JSONRoundTrip(t *testing.T) {
	client := dial(t, statusOnlyServer{})

	resp, err := client.GetManyUserStatuses(context.Background(), &UserIDs{IDs: []int64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []StatusWithID{{ID: 1, Status: "offline"}, {ID: 2, Status: "online"}}, resp.Statuses)
}

func TestPresenceService_Unimplemented(t *testing.T) {
	client := dial(t, statusOnlyServer{})

	_, err := client.SetOnline(context.Background(), &UserID{ID: 1})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
