package geo

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestCountryResolver_ResolveAndLog(t *testing.T) {
	t.Run("logs resolved country", func(t *testing.T) {
		buf := captureLog(t)
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte("Lithuania\n"))
		}))
		defer srv.Close()

		r := NewCountryResolver(srv.URL, time.Second)
		r.ResolveAndLog("1.2.3.4")

		if gotPath != "/1.2.3.4/country_name/" {
			t.Fatalf("lookup path = %q", gotPath)
		}
		if !bytes.Contains(buf.Bytes(), []byte("country=Lithuania")) {
			t.Fatalf("log output missing country: %s", buf.String())
		}
	})

	t.Run("Undefined is not logged as a country", func(t *testing.T) {
		buf := captureLog(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Undefined"))
		}))
		defer srv.Close()

		NewCountryResolver(srv.URL, time.Second).ResolveAndLog("10.0.0.1")

		if bytes.Contains(buf.Bytes(), []byte("country=Undefined")) {
			t.Fatalf("Undefined must not be logged as a country: %s", buf.String())
		}
		if !bytes.Contains(buf.Bytes(), []byte("could not resolve")) {
			t.Fatalf("expected unresolved log line: %s", buf.String())
		}
	})

	t.Run("lookup failure is swallowed", func(t *testing.T) {
		buf := captureLog(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		NewCountryResolver(srv.URL, time.Second).ResolveAndLog("10.0.0.1")

		if !bytes.Contains(buf.Bytes(), []byte("lookup failed")) {
			t.Fatalf("expected failure log line: %s", buf.String())
		}
	})

	t.Run("blank ip is a no-op", func(t *testing.T) {
		buf := captureLog(t)
		NewCountryResolver("http://127.0.0.1:1", time.Second).ResolveAndLog("  ")
		if buf.Len() != 0 {
			t.Fatalf("unexpected log output: %s", buf.String())
		}
	})
}
