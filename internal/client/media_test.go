package client

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestUploadMediaMultipart(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake image bytes")

	var (
		gotField, gotFile, gotType, gotAuth string
		gotData                             []byte
		parts                               int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/media" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		mr := multipart.NewReader(r.Body, params["boundary"])
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Errorf("reading part: %v", err)
				break
			}
			parts++
			gotField = part.FormName()
			gotFile = part.FileName()
			gotType = part.Header.Get("Content-Type")
			gotData, _ = io.ReadAll(part)
		}

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"data":{"_id":"m1","path":"/api/media/m1","type":"image/png"}}`)
	}))
	defer srv.Close()

	c := New(srv.URL, WithLogger(zerolog.Nop()))
	media, err := c.UploadMedia(context.Background(), "tok", png)
	if err != nil {
		t.Fatalf("UploadMedia returned error: %v", err)
	}

	if parts != 1 {
		t.Errorf("expected 1 part, got %d", parts)
	}
	if gotField != "file" {
		t.Errorf("field name = %q, want %q", gotField, "file")
	}
	if gotFile != "image.png" {
		t.Errorf("file name = %q, want %q", gotFile, "image.png")
	}
	if gotType != "image/png" {
		t.Errorf("part Content-Type = %q, want %q", gotType, "image/png")
	}
	if !bytes.Equal(gotData, png) {
		t.Errorf("uploaded bytes differ: got %q", gotData)
	}
	if gotAuth != "tok" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "tok")
	}
	if media.ID != "m1" || media.Path != "/api/media/m1" || media.Type != "image/png" {
		t.Errorf("unexpected media: %+v", media)
	}
}
