package content

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"helixcraftworks.com/helix-web/internal/routes"
)

const defaultPagesDir = "content/pages"

// ErrEmptyPage is returned when a markdown file yields neither intro nor sections.
var ErrEmptyPage = errors.New("content: page has no intro or sections")

type pageFrontMatter struct {
	Path     string `yaml:"path"`
	Title    string `yaml:"title"`
	Intro    string `yaml:"intro"`
	CTALabel string `yaml:"cta_label"`
	Draft    bool   `yaml:"draft"`
}

var (
	markdown  = goldmark.New()
	plainText = bluemonday.StrictPolicy()
)

// LoadStandalone reads every *.md file in dir and returns standalone page
// descriptors keyed by path. The path comes from front matter or the file slug.
func LoadStandalone(dir string) (map[string]routes.Page, error) {
	if strings.TrimSpace(dir) == "" {
		dir = defaultPagesDir
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	pages := make(map[string]routes.Page, len(names))
	for _, name := range names {
		file := filepath.Join(dir, name)
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", file, err)
		}
		slug := strings.TrimSuffix(name, ".md")
		path, page, draft, err := ParsePage(slug, raw)
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", file, err)
		}
		if draft {
			continue
		}
		if _, dup := pages[path]; dup {
			return nil, fmt.Errorf("content: %s: %w: %s", file, routes.ErrDuplicatePath, path)
		}
		pages[path] = page
	}
	return pages, nil
}

// ParsePage converts one markdown document into a standalone page.
// Level-two headings open sections; list items beneath them become the section items.
// Paragraphs before the first heading form the intro unless front matter sets one.
func ParsePage(slug string, raw []byte) (string, routes.Page, bool, error) {
	var fm pageFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return "", routes.Page{}, false, fmt.Errorf("parse front matter: %w", err)
	}

	page := routes.Page{
		Variant:  routes.VariantStandalone,
		Title:    strings.TrimSpace(fm.Title),
		Intro:    strings.TrimSpace(fm.Intro),
		CTALabel: strings.TrimSpace(fm.CTALabel),
	}

	doc := markdown.Parser().Parse(text.NewReader(body))
	var intro []string
	var current *routes.Section
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			heading := nodeText(node, body)
			if node.Level == 1 {
				if page.Title == "" {
					page.Title = heading
				}
				continue
			}
			page.Sections = append(page.Sections, routes.Section{Heading: heading})
			current = &page.Sections[len(page.Sections)-1]
		case *ast.List:
			if current == nil {
				continue
			}
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				if s := nodeText(item, body); s != "" {
					current.Items = append(current.Items, s)
				}
			}
		case *ast.Paragraph:
			if current == nil {
				intro = append(intro, nodeText(node, body))
			}
		}
	}
	if page.Intro == "" {
		page.Intro = strings.Join(intro, " ")
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	if page.Intro == "" && len(page.Sections) == 0 {
		return "", routes.Page{}, false, ErrEmptyPage
	}

	path := strings.TrimSpace(fm.Path)
	if path == "" {
		path = "/" + sanitizeSlug(slug)
	}
	return path, page, fm.Draft, nil
}

func nodeText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.CodeSpan:
			for c := t.FirstChild(); c != nil; c = c.NextSibling() {
				if seg, ok := c.(*ast.Text); ok {
					buf.Write(seg.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return cleanText(buf.String())
}

// cleanText strips any markup and collapses whitespace.
func cleanText(s string) string {
	s = html.UnescapeString(plainText.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	var b strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == '_' || r == ' ':
			b.WriteRune('-')
		}
	}
	return b.String()
}

func prettifySlug(slug string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
