package forms

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// Strategy encodes a payload into a request body and headers.
type Strategy interface {
	Name() string
	Encode(v Values) (io.Reader, http.Header, error)
}

// URLEncoded sends fields as application/x-www-form-urlencoded; files are
// reduced to their filenames.
type URLEncoded struct{}

func (URLEncoded) Name() string { return "urlencoded" }

func (URLEncoded) Encode(v Values) (io.Reader, http.Header, error) {
	h := http.Header{}
	h.Set("Content-Type", "application/x-www-form-urlencoded")
	h.Set("Accept", "application/json")
	return strings.NewReader(v.Encode()), h, nil
}

// Multipart sends the native multipart body, including file content.
type Multipart struct{}

func (Multipart) Name() string { return "multipart" }

func (Multipart) Encode(v Values) (io.Reader, http.Header, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, e := range v.entries {
		if !e.IsFile {
			if err := mw.WriteField(e.Key, e.Value); err != nil {
				return nil, nil, err
			}
			continue
		}
		if err := writeFilePart(mw, e); err != nil {
			return nil, nil, fmt.Errorf("forms: encode %s: %w", e.Key, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, nil, err
	}
	h := http.Header{}
	h.Set("Content-Type", mw.FormDataContentType())
	return &buf, h, nil
}

func writeFilePart(mw *multipart.Writer, e Entry) error {
	name, ctype := "", "application/octet-stream"
	if e.File != nil {
		name = e.File.Name
		if e.File.ContentType != "" {
			ctype = e.File.ContentType
		}
	}
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(e.Key), escapeQuotes(name)))
	hdr.Set("Content-Type", ctype)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return err
	}
	if e.File == nil || e.File.Open == nil {
		return nil
	}
	rc, err := e.File.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	_, err = io.Copy(part, rc)
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string { return quoteEscaper.Replace(s) }
