package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/internal/errors"
)

// File is an upload. ContentType defaults to application/octet-stream.
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
}

type formField struct {
	name, value string
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func multipartRequest(path, fileField string, f File, fields []formField) (*client.Request, error) {
	if f.Content == nil || f.Name == "" {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "upload to %s needs a named file", path)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(fileField), quoteEscaper.Replace(filepath.Base(f.Name))))
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f.Content); err != nil {
		return nil, errors.Wrapf(err, "reading %s", f.Name)
	}
	for _, field := range fields {
		if err := mw.WriteField(field.name, field.value); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	return client.NewRequest(http.MethodPost, path).WithRawBody(mw.FormDataContentType(), buf.Bytes()), nil
}
