package s3

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purrlog/internal/ports/blobstore"
)

// mockRoundTripper emula GET/PUT path-style sobre un map en memoria.
type mockRoundTripper struct {
	mu    sync.Mutex
	state map[string][]byte
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// path-style: /bucket/key
	parts := strings.SplitN(strings.TrimPrefix(req.URL.Path, "/"), "/", 2)
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}
	switch req.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(req.Body)
		if dec, ok := decodeChunked(body); ok {
			body = dec
		}
		m.state[key] = body
		return respond(http.StatusOK, nil, http.Header{"ETag": {`"etag"`}}), nil
	case http.MethodGet:
		body, ok := m.state[key]
		if !ok {
			return respond(http.StatusNotFound,
				[]byte(`<?xml version="1.0"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`),
				http.Header{"Content-Type": {"application/xml"}}), nil
		}
		return respond(http.StatusOK, body, http.Header{
			"Content-Length": {strconv.Itoa(len(body))},
			"Content-Type":   {"application/json"},
		}), nil
	}
	return respond(http.StatusNotImplemented, nil, http.Header{}), nil
}

func respond(code int, body []byte, h http.Header) *http.Response {
	return &http.Response{
		StatusCode:    code,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Header:        h,
	}
}

// decodeChunked decodifica un payload aws-chunked de un solo chunk: <hex>[;ext]\r\n<body>\r\n0...
func decodeChunked(b []byte) ([]byte, bool) {
	parts := strings.SplitN(string(b), "\r\n", 3)
	if len(parts) < 3 {
		return nil, false
	}
	sizeHex, _, _ := strings.Cut(parts[0], ";")
	n, err := strconv.ParseInt(sizeHex, 16, 64)
	if err != nil || n < 0 || int64(len(parts[1])) != n {
		return nil, false
	}
	if !strings.HasPrefix(parts[2], "0") {
		return nil, false
	}
	return []byte(parts[1]), true
}

func newMockStore(t *testing.T) (*Store, *mockRoundTripper) {
	t.Helper()
	rt := &mockRoundTripper{state: make(map[string][]byte)}
	client := s3.New(s3.Options{
		Region:                     "us-east-1",
		Credentials:                credentials.NewStaticCredentialsProvider("AKIA", "SECRET", ""),
		HTTPClient:                 &http.Client{Transport: rt},
		BaseEndpoint:               aws.String("https://mock.s3.local"),
		UsePathStyle:               true,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
	})
	return NewWithClient(client, "purrlog-test"), rt
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, rt := newMockStore(t)
	assert.Equal(t, blobstore.DriverS3, s.Driver())

	_, err := s.Get(ctx, "purrlog/local/entries")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, s.Put(ctx, "purrlog/local/entries", []byte(`[{"id":"1"}]`)))
	require.NoError(t, s.Put(ctx, "purrlog/local/entries", []byte(`[]`)))

	got, err := s.Get(ctx, "purrlog/local/entries")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
	assert.Contains(t, rt.state, "purrlog/local/entries")
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}

func TestDecodeChunked(t *testing.T) {
	dec, ok := decodeChunked([]byte("3\r\nabc\r\n0\r\n\r\n"))
	require.True(t, ok)
	assert.Equal(t, "abc", string(dec))

	_, ok = decodeChunked([]byte(`{"raw":true}`))
	assert.False(t, ok)
}
