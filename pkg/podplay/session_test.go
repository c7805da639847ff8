package podplay

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

// closeRecorder counts CloseIdleConnections calls so tests can assert
// whether Client.Close released the transport.
type closeRecorder struct {
	rt     http.RoundTripper
	closed int
}

func (r *closeRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	return r.rt.RoundTrip(req)
}

func (r *closeRecorder) CloseIdleConnections() {
	r.closed++
}

// failingTransport fails every request with a fixed error.
type failingTransport struct {
	err error
}

func (t *failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, t.err
}

func TestClient_Close_OwnedTransport(t *testing.T) {
	recorder := &closeRecorder{rt: &failingTransport{err: errors.New("connection reset")}}

	// No HTTPClient supplied, so the client owns the transport it builds.
	client := NewClient(Config{
		BaseURL:   "http://podplay.invalid",
		Transport: recorder,
	})

	// A failed request must not prevent Close from releasing the session.
	err := func() error {
		defer client.Close()
		_, err := client.GetPodcast(context.Background(), 31428)
		return err
	}()

	if !errors.Is(err, ErrTransport) {
		t.Errorf("Expected ErrTransport, got %v", err)
	}
	if recorder.closed != 1 {
		t.Errorf("Expected owned transport to be closed once, got %d", recorder.closed)
	}
}

func TestClient_Close_BorrowedTransport(t *testing.T) {
	recorder := &closeRecorder{rt: &failingTransport{err: errors.New("connection reset")}}
	borrowed := &http.Client{Transport: recorder}

	client := NewClient(Config{
		BaseURL:    "http://podplay.invalid",
		HTTPClient: borrowed,
	})

	_, _ = client.GetPodcast(context.Background(), 31428)
	client.Close()

	if recorder.closed != 0 {
		t.Errorf("Borrowed transport must not be closed by the client, got %d close calls", recorder.closed)
	}
}
