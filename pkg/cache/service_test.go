package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type city struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestService_GetHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)

	cached, err := json.Marshal(city{ID: "c1", Name: "Hanoi"})
	require.NoError(t, err)
	mock.ExpectGet("ticketops:cities:detail:uuid:c1").SetVal(string(cached))

	var got city
	err = svc.Get(context.Background(), "ticketops:cities:detail:uuid:c1", &got)

	require.NoError(t, err)
	assert.Equal(t, "Hanoi", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)

	mock.ExpectGet("missing").RedisNil()

	var got city
	err := svc.Get(context.Background(), "missing", &got)

	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestService_GetOrSet_FetchesOnMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)

	mock.ExpectGet("key").RedisNil()
	data, _ := json.Marshal(city{ID: "c2", Name: "Da Nang"})
	mock.ExpectSet("key", data, time.Minute).SetVal("OK")

	fetched := false
	var got city
	err := svc.GetOrSet(context.Background(), "key", time.Minute, func() (interface{}, error) {
		fetched = true
		return city{ID: "c2", Name: "Da Nang"}, nil
	}, &got)

	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Equal(t, "Da Nang", got.Name)

	// The async cache fill may or may not have run; only the fetch result matters.
	time.Sleep(50 * time.Millisecond)
}

func TestService_DeletePattern(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)

	mock.ExpectKeys("ticketops:cities:*").SetVal([]string{"ticketops:cities:list", "ticketops:cities:detail:uuid:c1"})
	mock.ExpectDel("ticketops:cities:list", "ticketops:cities:detail:uuid:c1").SetVal(2)

	err := svc.DeletePattern(context.Background(), "ticketops:cities:*")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
