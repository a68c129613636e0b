package tally

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientPost(t *testing.T) {
	var gotContentType, gotAccept, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte("<ENVELOPE>ok</ENVELOPE>"))
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, TimeoutMS: 5000})
	raw, err := c.Post(context.Background(), "<ENVELOPE>req</ENVELOPE>")
	require.NoError(t, err)

	assert.Equal(t, "<ENVELOPE>ok</ENVELOPE>", raw)
	assert.Equal(t, "application/xml", gotContentType)
	assert.Equal(t, "application/xml", gotAccept)
	assert.Equal(t, "<ENVELOPE>req</ENVELOPE>", gotBody)
}

func TestClientPost_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("gateway busy"))
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, TimeoutMS: 5000})
	_, err := c.Post(context.Background(), "<ENVELOPE/>")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP_500", apiErr.Code)
	assert.Equal(t, "gateway busy", apiErr.Details)
}

func TestClientPost_ConnectionRefused(t *testing.T) {
	c := NewClient(Config{URL: "http://127.0.0.1:1", TimeoutMS: 1000})
	_, err := c.Post(context.Background(), "<ENVELOPE/>")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP_ERROR", apiErr.Code)
}

func TestClientUpdateConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<ENVELOPE/>"))
	}))
	defer srv.Close()

	c := NewClient(Config{URL: "http://127.0.0.1:1", TimeoutMS: 1000})
	c.UpdateConfig(srv.URL, 0)

	_, err := c.Post(context.Background(), "<ENVELOPE/>")
	assert.NoError(t, err)
}
