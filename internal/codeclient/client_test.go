package codeclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/zhubert/codeview/internal/errors"
	"github.com/zhubert/codeview/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of /tmp/codeview-debug.log
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

func TestListFiles_Success(t *testing.T) {
	var gotPath, gotAccept, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"a.py","content":"print(1)","language":"python"},
			{"name":"b.txt","content":"hi","language":"plain"}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/")
	files, err := c.ListFiles(context.Background(), "chat-123")
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}

	if gotPath != "/api/code/chat-123" {
		t.Errorf("request path = %q, want /api/code/chat-123", gotPath)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept header = %q", gotAccept)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header should be set")
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Name != "a.py" || files[0].Content != "print(1)" || files[0].Language != "python" {
		t.Errorf("unexpected first file: %+v", files[0])
	}
	if files[1].Name != "b.txt" {
		t.Errorf("server order not preserved: %+v", files)
	}
}

func TestListFiles_EmptyAndNull(t *testing.T) {
	for _, body := range []string{"[]", "null"} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			files, err := New(srv.URL).ListFiles(context.Background(), "s")
			if err != nil {
				t.Fatalf("ListFiles() error = %v", err)
			}
			if files == nil || len(files) != 0 {
				t.Errorf("expected empty non-nil list, got %#v", files)
			}
		})
	}
}

func TestListFiles_EscapesSessionID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	if _, err := New(srv.URL).ListFiles(context.Background(), "a/b c"); err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if gotPath != "/code/a%2Fb%20c" {
		t.Errorf("request path = %q", gotPath)
	}
}

func TestListFiles_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		kind    errors.Kind
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			kind: errors.KindNotFound,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			kind: errors.KindNetwork,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"name":"not-an-array"}`))
			},
			kind: errors.KindInvalid,
		},
		{
			name: "truncated body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"name":"a.py"`))
			},
			kind: errors.KindInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			files, err := New(srv.URL).ListFiles(context.Background(), "s")
			if err == nil {
				t.Fatal("expected error")
			}
			if files != nil {
				t.Errorf("expected nil files on error, got %v", files)
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("error kind = %v, want %v (%v)", errors.GetKind(err), tt.kind, err)
			}
		})
	}
}

func TestListFiles_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url).ListFiles(context.Background(), "s")
	if !errors.Is(err, errors.KindNetwork) {
		t.Errorf("expected KindNetwork, got %v", err)
	}
}

func TestListFiles_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).ListFiles(context.Background(), "s")
	if !errors.Is(err, errors.KindTimeout) {
		t.Errorf("expected KindTimeout, got %v", err)
	}
}

func TestListFiles_EmptySession(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListFiles(context.Background(), "")
	if !errors.Is(err, errors.KindInvalid) {
		t.Errorf("expected KindInvalid, got %v", err)
	}
	if called {
		t.Error("no request should be sent for an empty session id")
	}
}

func TestNew_Options(t *testing.T) {
	hc := &http.Client{}
	c := New("http://example.com/api/", WithHTTPClient(hc), WithTimeout(0))

	if c.BaseURL() != "http://example.com/api" {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
	if c.httpClient != hc {
		t.Error("WithHTTPClient should replace the client")
	}
	if c.timeout != DefaultTimeout {
		t.Errorf("zero timeout should keep default, got %v", c.timeout)
	}
	if got := c.FilesURL("x"); got != "http://example.com/api/code/x" {
		t.Errorf("FilesURL() = %q", got)
	}
}
