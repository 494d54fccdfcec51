package forms

import (
	"bytes"
	"io"
	"net/url"
	"strings"
)

// File is an uploaded file handle carried in a payload.
type File struct {
	Name        string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// BytesFile wraps in-memory content as a File.
func BytesFile(name, contentType string, data []byte) *File {
	return &File{
		Name:        name,
		Size:        int64(len(data)),
		ContentType: contentType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// Entry is one key/value pair. IsFile marks file inputs; File is nil when none was chosen.
type Entry struct {
	Key    string
	Value  string
	IsFile bool
	File   *File
}

// Values is an ordered multi-map of form fields.
type Values struct {
	entries []Entry
}

// Add appends a string value.
func (v *Values) Add(key, value string) {
	v.entries = append(v.entries, Entry{Key: key, Value: value})
}

// AddFile appends a file value. A nil file stands for an empty file input.
func (v *Values) AddFile(key string, f *File) {
	e := Entry{Key: key, IsFile: true, File: f}
	if f != nil {
		e.Value = f.Name
	}
	v.entries = append(v.entries, e)
}

// Get returns the first value for key.
func (v Values) Get(key string) string {
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value
		}
	}
	return ""
}

// All returns every value for key in order.
func (v Values) All(key string) []string {
	var out []string
	for _, e := range v.entries {
		if e.Key == key {
			out = append(out, e.Value)
		}
	}
	return out
}

// Has reports whether key appears at least once.
func (v Values) Has(key string) bool {
	for _, e := range v.entries {
		if e.Key == key {
			return true
		}
	}
	return false
}

// Keys lists distinct keys in first-seen order.
func (v Values) Keys() []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range v.entries {
		if !seen[e.Key] {
			seen[e.Key] = true
			out = append(out, e.Key)
		}
	}
	return out
}

// Entries returns a copy of the ordered entries.
func (v Values) Entries() []Entry {
	return append([]Entry(nil), v.entries...)
}

// Len reports the number of entries.
func (v Values) Len() int { return len(v.entries) }

// Encode renders the values as application/x-www-form-urlencoded, keeping
// insertion order. File entries encode as their filename.
func (v Values) Encode() string {
	var b strings.Builder
	for i, e := range v.entries {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(e.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(e.Value))
	}
	return b.String()
}
