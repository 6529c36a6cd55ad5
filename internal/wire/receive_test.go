package wire

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"testing"
)

// chunkedReader yields its pre-cut chunks one per Read call, then EOF.
// It models a socket that delivers a response across several recv calls.
type chunkedReader struct {
	chunks [][]byte
}

func (r *chunkedReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	if n < len(r.chunks[0]) {
		r.chunks[0] = r.chunks[0][n:]
	} else {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

// errReader fails with the given error on its first Read.
type errReader struct {
	err error
}

func (r *errReader) Read([]byte) (int, error) {
	return 0, r.err
}

func gzipBytes(t *testing.T, plain []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(plain); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

// TestReceiveUntilDelimiter tests streamed response receiving.
func TestReceiveUntilDelimiter(t *testing.T) {
	t.Parallel()

	t.Run("decompresses gzip body", func(t *testing.T) {
		t.Parallel()

		raw := append([]byte("HTTP/1.1 200 OK\r\n\r\n"), gzipBytes(t, []byte("Hello, world!"))...)
		stream := &chunkedReader{chunks: [][]byte{raw}}

		got, err := ReceiveUntilDelimiter(stream)
		if err != nil {
			t.Fatalf("receive failed: %v", err)
		}
		want := "HTTP/1.1 200 OK\r\n\r\nHello, world!"
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("passes plain body through unchanged", func(t *testing.T) {
		t.Parallel()

		raw := []byte("HTTP/1.1 200 OK\r\n\r\n<html></html>")
		stream := &chunkedReader{chunks: [][]byte{raw}}

		got, err := ReceiveUntilDelimiter(stream)
		if err != nil {
			t.Fatalf("receive failed: %v", err)
		}
		if !bytes.Equal(got, raw) {
			t.Errorf("plain body modified: got %q, want %q", got, raw)
		}
	})

	t.Run("accumulates across chunks", func(t *testing.T) {
		t.Parallel()

		stream := &chunkedReader{chunks: [][]byte{
			[]byte("HTTP/1.1 200 OK\r\n"),
			[]byte("Server: test\r\n"),
			[]byte("\r\nbody"),
		}}

		got, err := ReceiveUntilDelimiter(stream)
		if err != nil {
			t.Fatalf("receive failed: %v", err)
		}
		want := "HTTP/1.1 200 OK\r\nServer: test\r\n\r\nbody"
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("returns partial data when stream ends before delimiter", func(t *testing.T) {
		t.Parallel()

		stream := &chunkedReader{chunks: [][]byte{[]byte("HTTP/1.1 200 OK\r\nTrunc")}}

		got, err := ReceiveUntilDelimiter(stream)
		if err != nil {
			t.Fatalf("header-incomplete condition must not be an error: %v", err)
		}
		if string(got) != "HTTP/1.1 200 OK\r\nTrunc" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("truncated gzip body falls through as raw bytes", func(t *testing.T) {
		t.Parallel()

		gz := gzipBytes(t, []byte("Hello, world!"))
		truncated := gz[:len(gz)-4]
		raw := append([]byte("HTTP/1.1 200 OK\r\n\r\n"), truncated...)
		stream := &chunkedReader{chunks: [][]byte{raw}}

		got, err := ReceiveUntilDelimiter(stream)
		if err != nil {
			t.Fatalf("receive failed: %v", err)
		}
		if !bytes.Equal(got, raw) {
			t.Error("truncated gzip body must be returned untouched")
		}
	})

	t.Run("propagates transport read errors", func(t *testing.T) {
		t.Parallel()

		readErr := errors.New("connection reset")
		if _, err := ReceiveUntilDelimiter(&errReader{err: readErr}); !errors.Is(err, readErr) {
			t.Errorf("expected wrapped transport error, got %v", err)
		}
	})
}
