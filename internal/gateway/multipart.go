package gateway

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// File is one file part of a multipart upload.
type File struct {
	Field   string
	Name    string
	Content io.Reader
}

// MultipartBody is an explicitly declared multipart payload. The encoded
// writer chooses the boundary, so the gateway must not force a JSON content
// type on these requests.
type MultipartBody struct {
	Fields map[string]string
	Files  []File
}

func (m *MultipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for field, value := range m.Fields {
		if err := w.WriteField(field, value); err != nil {
			return nil, "", fmt.Errorf("write field %q: %w", field, err)
		}
	}

	for _, f := range m.Files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %q: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", fmt.Errorf("copy file part %q: %w", f.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
