package wire

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
)

// Delimiter is the four-byte boundary between HTTP headers and body.
const Delimiter = "\r\n\r\n"

// recvChunkSize is the read size for each chunk pulled off the stream.
const recvChunkSize = 2048

// ReceiveUntilDelimiter reads from the stream until the header/body
// delimiter appears in the accumulated buffer, then returns the headers,
// the delimiter, and the (decompressed if applicable) body.
//
// If the stream ends before the delimiter is seen, whatever was
// accumulated is returned as-is with a nil error: an incomplete header
// block is a degraded result, not a failure. Only transport-level read
// errors other than EOF are returned.
//
// The body is run through a gzip decompression attempt unconditionally,
// without consulting Content-Encoding. A body that is not gzip (or is a
// truncated gzip stream) falls through untouched. This mirrors the
// tool's best-effort stance: the server under test compresses bodies but
// does not always say so.
func ReceiveUntilDelimiter(stream io.Reader) ([]byte, error) {
	delim := []byte(Delimiter)
	buf := make([]byte, 0, recvChunkSize)
	chunk := make([]byte, recvChunkSize)

	for !bytes.Contains(buf, delim) {
		n, err := stream.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read response: %w", err)
		}
		if n == 0 {
			break
		}
	}

	headers, body, found := bytes.Cut(buf, delim)
	if !found {
		return buf, nil
	}

	out := make([]byte, 0, len(buf))
	out = append(out, headers...)
	out = append(out, delim...)
	out = append(out, maybeGunzip(body)...)
	return out, nil
}

// maybeGunzip decompresses body if it is a complete gzip stream and
// returns it unchanged otherwise.
func maybeGunzip(body []byte) []byte {
	zr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return body
	}
	defer zr.Close()

	plain, err := io.ReadAll(zr)
	if err != nil {
		// Truncated or corrupt stream: fall back to the raw bytes.
		return body
	}
	return plain
}
