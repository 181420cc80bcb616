//go:build unit || e2e

package httptest

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SSEEvent is one server-sent event as read off the wire.
type SSEEvent struct {
	Name string
	Data string
}

func (e SSEEvent) Decode(t *testing.T, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(e.Data), target), "undecodable %s event: %s", e.Name, e.Data)
}

// OpenEventStream connects to an SSE endpoint of a running server and relays
// its events until the test ends. A non-200 answer arrives as one event named
// "status" carrying the code.
func OpenEventStream(t *testing.T, url, authToken string) <-chan SSEEvent {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "text/event-stream")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	out := make(chan SSEEvent, 16)
	go func() {
		defer close(out)
		resp, derr := http.DefaultClient.Do(req)
		if derr != nil {
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			out <- SSEEvent{Name: "status", Data: strconv.Itoa(resp.StatusCode)}
			return
		}

		var ev SSEEvent
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() {
			line := sc.Text()
			switch {
			case strings.HasPrefix(line, "event:"):
				ev.Name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
			case strings.HasPrefix(line, "data:"):
				ev.Data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			case line == "":
				if ev.Name != "" {
					select {
					case out <- ev:
					case <-ctx.Done():
						return
					}
				}
				ev = SSEEvent{}
			}
		}
	}()
	return out
}
