package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"MarketPing/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(&logger.Config{Level: "error", Format: "json"})
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestSend(t *testing.T) {
	var gotPath, gotAuth string
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Error(err)
		}
		gotForm = map[string]string{
			"From": r.PostFormValue("From"),
			"To":   r.PostFormValue("To"),
			"Body": r.PostFormValue("Body"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid": "SM123", "status": "queued"}`))
	}))
	defer srv.Close()

	c := NewClient("AC1", "token", "whatsapp:+14155238886", testLogger(t), WithBaseURL(srv.URL))

	sid, err := c.Send(context.Background(), "+911234", "hello")
	if err != nil {
		t.Fatal(err)
	}
	if sid != "SM123" {
		t.Fatalf("sid = %q", sid)
	}
	if gotPath != "/2010-04-01/Accounts/AC1/Messages.json" {
		t.Fatalf("path = %q", gotPath)
	}
	if !strings.HasPrefix(gotAuth, "Basic ") {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotForm["To"] != "whatsapp:+911234" {
		t.Fatalf("channel prefix not applied, To = %q", gotForm["To"])
	}
	if gotForm["From"] != "whatsapp:+14155238886" || gotForm["Body"] != "hello" {
		t.Fatalf("unexpected form %v", gotForm)
	}
}

func TestSendKeepsExistingPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if to := r.PostFormValue("To"); to != "whatsapp:+911234" {
			t.Errorf("To = %q", to)
		}
		w.Write([]byte(`{"sid": "SM1"}`))
	}))
	defer srv.Close()

	c := NewClient("AC1", "token", "whatsapp:+1", testLogger(t), WithBaseURL(srv.URL))
	if _, err := c.Send(context.Background(), "whatsapp:+911234", "hi"); err != nil {
		t.Fatal(err)
	}
}

func TestSendSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Authentication Error"}`))
	}))
	defer srv.Close()

	c := NewClient("AC1", "bad", "whatsapp:+1", testLogger(t), WithBaseURL(srv.URL))
	if _, err := c.Send(context.Background(), "+911234", "hi"); err == nil {
		t.Fatal("expected error on 401")
	}
}

func TestSendTruncatesByRunes(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotBody = r.PostFormValue("Body")
		w.Write([]byte(`{"sid": "SM1"}`))
	}))
	defer srv.Close()

	c := NewClient("AC1", "token", "whatsapp:+1", testLogger(t), WithBaseURL(srv.URL))

	tests := []struct {
		name      string
		body      string
		wantRunes int
	}{
		{"ascii over cap", strings.Repeat("a", 2000), MaxBodyLen},
		// 1580 four-byte runes is over 1600 bytes but within the
		// character limit and must not be cut.
		{"emoji within cap", strings.Repeat("🟢", 1580), 1580},
		{"emoji over cap", strings.Repeat("🟢", 1700), MaxBodyLen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Send(context.Background(), "+911234", tt.body); err != nil {
				t.Fatal(err)
			}
			if got := len([]rune(gotBody)); got != tt.wantRunes {
				t.Fatalf("body runes = %d, want %d", got, tt.wantRunes)
			}
			if !utf8.ValidString(gotBody) {
				t.Fatal("truncation produced invalid UTF-8")
			}
		})
	}
}
