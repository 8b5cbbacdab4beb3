package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanillaDeath/Wilbot/pkg/bot"
	"github.com/VanillaDeath/Wilbot/pkg/domain"
	"github.com/VanillaDeath/Wilbot/pkg/markov"
	"github.com/VanillaDeath/Wilbot/pkg/repository"
	"github.com/VanillaDeath/Wilbot/server/mocks"
)

func testMocks() (*mocks.ConfigProviderMock, *mocks.InfoProviderMock, *mocks.StateReaderMock) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 30 * time.Second },
	}
	info := &mocks.InfoProviderMock{
		InfoFunc: func(ctx context.Context) (bot.Info, error) {
			return bot.Info{
				Account: domain.Account{ID: "self-1", Acct: "wilbot"},
				Follows: 3,
				Engine:  markov.Stats{Prefixes: 100, Transitions: 250, Starts: 40},
			}, nil
		},
	}
	states := &mocks.StateReaderMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			return "2025-06-01T18:00:00Z", nil
		},
	}
	return cfg, info, states
}

func TestServer_New(t *testing.T) {
	cfg, info, states := testMocks()
	s := New(cfg, info, states, "test", false)
	require.NotNil(t, s)
	assert.NotNil(t, s.router)
}

func TestServer_StatusHandler(t *testing.T) {
	cfg, info, states := testMocks()
	s := New(cfg, info, states, "v1.2.3", false)

	ts := httptest.NewServer(s.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status statusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "v1.2.3", status.Version)
	assert.Equal(t, "wilbot", status.Account)
	assert.Equal(t, 3, status.Follows)
	assert.Equal(t, 100, status.Prefixes)
	assert.Equal(t, 250, status.Transitions)
	assert.Equal(t, "2025-06-01T18:00:00Z", status.LastAutoPost)

	// the state key is the persisted auto-post marker
	require.Len(t, states.GetCalls(), 1)
	assert.Equal(t, repository.StateLastAutoPost, states.GetCalls()[0].Key)
}

func TestServer_StatusHandlerInfoFailure(t *testing.T) {
	cfg, info, states := testMocks()
	info.InfoFunc = func(ctx context.Context) (bot.Info, error) {
		return bot.Info{}, errors.New("api down")
	}
	s := New(cfg, info, states, "test", false)

	ts := httptest.NewServer(s.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "api down")
}

func TestServer_Ping(t *testing.T) {
	cfg, info, states := testMocks()
	s := New(cfg, info, states, "test", false)

	ts := httptest.NewServer(s.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_RunAndShutdown(t *testing.T) {
	// grab a free port first, then hand it to the server
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg, info, states := testMocks()
	cfg.GetServerConfigFunc = func() (string, time.Duration) {
		return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
	}
	s := New(cfg, info, states, "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// wait for the server to come up
	var resp *http.Response
	require.Eventually(t, func() bool {
		var reqErr error
		resp, reqErr = http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port))
		return reqErr == nil
	}, 2*time.Second, 20*time.Millisecond)
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
