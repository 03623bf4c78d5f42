package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"tvshows-client/internal/models"
)

const (
	mediaFieldName = "file"
	mediaFileName  = "image.png"
	mediaMIMEType  = "image/png"
)

// UploadMedia uploads a PNG image as multipart form data. POST /api/media
func (c *Client) UploadMedia(ctx context.Context, token string, png []byte) (models.Media, error) {
	const op = "upload media"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, mediaFieldName, mediaFileName))
	header.Set("Content-Type", mediaMIMEType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return models.Media{}, fmt.Errorf("%s: failed to create form part: %w", op, err)
	}
	if _, err := part.Write(png); err != nil {
		return models.Media{}, fmt.Errorf("%s: failed to write image: %w", op, err)
	}
	if err := mw.Close(); err != nil {
		return models.Media{}, fmt.Errorf("%s: failed to close form: %w", op, err)
	}

	return send[models.Media](ctx, c, request{
		op:          op,
		method:      http.MethodPost,
		path:        "/api/media",
		token:       token,
		body:        buf.Bytes(),
		contentType: mw.FormDataContentType(),
	})
}
