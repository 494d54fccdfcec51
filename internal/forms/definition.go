package forms

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/mail"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FieldKind is the input type of a field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindTel      FieldKind = "tel"
	KindURL      FieldKind = "url"
	KindSelect   FieldKind = "select"
	KindTextarea FieldKind = "textarea"
	KindCheckbox FieldKind = "checkbox-group"
	KindFile     FieldKind = "file"
	KindHidden   FieldKind = "hidden"
	KindHoneypot FieldKind = "honeypot"
)

// Field describes one named input.
type Field struct {
	Name        string
	Label       string
	Kind        FieldKind
	Options     []string
	Default     string
	Placeholder string
	Help        string
	Required    bool
	Rows        int
	Wide        bool
	// Block names the conditional block the field belongs to, if any.
	Block string
	// Accept lists allowed file extensions, e.g. ".pdf".
	Accept []string
	// MaxBytes caps file size; zero means unlimited.
	MaxBytes int64
	// Derive computes a hidden field's value from the rest of the instance.
	Derive func(*Instance) string
}

// Block is a group of fields shown only when Control holds one of When.
// Unless inverts the match. A block whose control sits in a hidden block is hidden too.
type Block struct {
	Name    string
	Control string
	When    []string
	Unless  bool
}

// Definition is the fixed ordered field set of one form.
type Definition struct {
	Name           string
	Strategy       Strategy
	Fields         []Field
	Blocks         []Block
	FallbackEmail  string
	SubmitLabel    string
	SuccessMessage string
	Disclaimer     string
}

// Field returns the named field.
func (d *Definition) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Block returns the named block.
func (d *Definition) Block(name string) (Block, bool) {
	for _, b := range d.Blocks {
		if b.Name == name {
			return b, true
		}
	}
	return Block{}, false
}

// Multipart reports whether the form posts multipart bodies.
func (d *Definition) Multipart() bool {
	_, ok := d.Strategy.(Multipart)
	return ok
}

// FieldErrors maps field names to messages.
type FieldErrors map[string]string

// Instance is one mounted form: its definition plus current field values.
type Instance struct {
	ID    string
	Def   *Definition
	vals  map[string][]string
	files map[string]*File
}

// NewInstance mounts def with its defaults.
func NewInstance(def *Definition) *Instance {
	inst := &Instance{ID: uuid.NewString(), Def: def}
	inst.Reset()
	return inst
}

// Reset restores every field to its default and drops files.
func (i *Instance) Reset() {
	i.vals = map[string][]string{}
	i.files = map[string]*File{}
	for _, f := range i.Def.Fields {
		if f.Default != "" {
			i.vals[f.Name] = []string{f.Default}
		}
	}
}

// Set replaces the values of name. Unknown names are ignored.
func (i *Instance) Set(name string, values ...string) {
	if _, ok := i.Def.Field(name); !ok {
		return
	}
	i.vals[name] = append([]string(nil), values...)
}

// SetFile attaches a file to a file field.
func (i *Instance) SetFile(name string, f *File) {
	if fd, ok := i.Def.Field(name); !ok || fd.Kind != KindFile {
		return
	}
	if f == nil {
		delete(i.files, name)
		return
	}
	i.files[name] = f
}

// File returns the file attached to name.
func (i *Instance) File(name string) *File { return i.files[name] }

// Value returns the first value of name, computing derived fields.
func (i *Instance) Value(name string) string {
	if f, ok := i.Def.Field(name); ok && f.Derive != nil {
		return f.Derive(i)
	}
	if v := i.vals[name]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Values returns every value of name.
func (i *Instance) Values(name string) []string {
	return append([]string(nil), i.vals[name]...)
}

// Checked reports whether option is selected for a checkbox group.
func (i *Instance) Checked(name, option string) bool {
	for _, v := range i.vals[name] {
		if v == option {
			return true
		}
	}
	return false
}

// BlockVisible reports whether the named block is shown. Fields outside any block are always visible.
func (i *Instance) BlockVisible(name string) bool {
	if name == "" {
		return true
	}
	b, ok := i.Def.Block(name)
	if !ok {
		return false
	}
	if ctl, ok := i.Def.Field(b.Control); ok && ctl.Block != "" && ctl.Block != name && !i.BlockVisible(ctl.Block) {
		return false
	}
	return contains(b.When, i.Value(b.Control)) != b.Unless
}

// Bind copies submitted values for known fields as entered, trimmed.
// Fields absent from the submission keep their defaults, except checkbox
// groups which an unchecked browser form omits entirely.
func (i *Instance) Bind(form url.Values, files map[string][]*multipart.FileHeader) {
	for _, f := range i.Def.Fields {
		switch f.Kind {
		case KindFile:
			if hs := files[f.Name]; len(hs) > 0 && hs[0] != nil && hs[0].Filename != "" {
				i.files[f.Name] = fileFromHeader(hs[0])
			}
			continue
		case KindCheckbox:
			i.vals[f.Name] = cleanAll(form[f.Name])
			continue
		}
		if f.Derive != nil {
			continue
		}
		if vs, ok := form[f.Name]; ok {
			i.vals[f.Name] = cleanAll(vs)
		}
	}
}

func cleanAll(vs []string) []string {
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, Clean(v))
	}
	return out
}

// Clean trims surrounding space. Markup is left as typed; templates escape it.
func Clean(v string) string { return strings.TrimSpace(v) }

func fileFromHeader(h *multipart.FileHeader) *File {
	return &File{
		Name:        h.Filename,
		Size:        h.Size,
		ContentType: h.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return h.Open()
		},
	}
}

// Payload serializes the visible fields in definition order.
// Fields inside a hidden block are left out.
func (i *Instance) Payload() Values {
	var v Values
	for _, f := range i.Def.Fields {
		if !i.BlockVisible(f.Block) {
			continue
		}
		switch f.Kind {
		case KindFile:
			v.AddFile(f.Name, i.files[f.Name])
		case KindCheckbox:
			for _, val := range i.vals[f.Name] {
				v.Add(f.Name, val)
			}
		default:
			v.Add(f.Name, i.Value(f.Name))
		}
	}
	return v
}

// Honeypot reports whether a bot filled the trap field.
func (i *Instance) Honeypot() bool {
	for _, f := range i.Def.Fields {
		if f.Kind == KindHoneypot && strings.TrimSpace(i.Value(f.Name)) != "" {
			return true
		}
	}
	return false
}

// Validate checks the visible fields the way a browser would before allowing submit.
func (i *Instance) Validate() FieldErrors {
	errs := FieldErrors{}
	for _, f := range i.Def.Fields {
		if !i.BlockVisible(f.Block) || f.Kind == KindHidden || f.Kind == KindHoneypot {
			continue
		}
		if f.Kind == KindFile {
			if msg := validateFile(f, i.files[f.Name]); msg != "" {
				errs[f.Name] = msg
			}
			continue
		}
		vals := i.vals[f.Name]
		val := ""
		if len(vals) > 0 {
			val = strings.TrimSpace(vals[0])
		}
		if f.Required && val == "" {
			errs[f.Name] = fmt.Sprintf("%s is required.", f.Label)
			continue
		}
		if val == "" {
			continue
		}
		switch f.Kind {
		case KindEmail:
			if _, err := mail.ParseAddress(val); err != nil {
				errs[f.Name] = "Enter a valid email address."
			}
		case KindURL:
			if u, err := url.Parse(val); err != nil || u.Scheme == "" || u.Host == "" {
				errs[f.Name] = "Enter a full link, including https://."
			}
		case KindSelect:
			if len(f.Options) > 0 && !contains(f.Options, val) {
				errs[f.Name] = fmt.Sprintf("Choose a listed %s.", strings.ToLower(f.Label))
			}
		case KindCheckbox:
			for _, v := range vals {
				if !contains(f.Options, v) {
					errs[f.Name] = fmt.Sprintf("Choose listed %s.", strings.ToLower(f.Label))
					break
				}
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateFile(f Field, file *File) string {
	if file == nil {
		if f.Required {
			return fmt.Sprintf("%s is required.", f.Label)
		}
		return ""
	}
	if f.MaxBytes > 0 && file.Size > f.MaxBytes {
		return fmt.Sprintf("%s must be under %d MB.", f.Label, f.MaxBytes>>20)
	}
	if len(f.Accept) > 0 {
		ext := strings.ToLower(filepath.Ext(file.Name))
		if !contains(f.Accept, ext) {
			return fmt.Sprintf("%s must be one of %s.", f.Label, strings.Join(f.Accept, ", "))
		}
	}
	return ""
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
