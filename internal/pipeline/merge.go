package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// Structural failures, all matching ErrStructure.
var (
	ErrHeadNotFound      = fmt.Errorf("%w: no <head> element", ErrStructure)
	ErrMissingHref       = fmt.Errorf("%w: <link> without href", ErrStructure)
	ErrScriptNotFound    = fmt.Errorf("%w: no <script> element", ErrStructure)
	ErrMissingSrc        = fmt.Errorf("%w: <script> without src", ErrStructure)
	ErrUnmergedReference = fmt.Errorf("%w: external reference left after merge", ErrStructure)
)

// Progress messages emitted by Merge.
const (
	StepLoadCSS        = "Loading css..."
	StepLoadJavaScript = "Loading javascript..."
)

// TextLoader loads a bundled asset as text. assets.AssetLoader satisfies it.
type TextLoader interface {
	LoadText(name string) (string, error)
}

// Merger inlines CSS and JavaScript referenced by a stylesheet template.
type Merger struct {
	Loader TextLoader

	// OnStep, when set, is called with a progress message before each stage.
	OnStep func(step string)
}

// NewMerger creates a Merger reading assets from loader.
func NewMerger(loader TextLoader) *Merger {
	return &Merger{Loader: loader}
}

// Merge inlines CSS first, then JavaScript, and returns doc for chaining.
// The document is mutated in place.
func (m *Merger) Merge(doc *etree.Document) (*etree.Document, error) {
	if err := m.MergeCSS(doc); err != nil {
		return nil, err
	}
	if err := m.MergeJavaScript(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// MergeCSS replaces every <link> element with a <style> element holding the
// referenced CSS. Each replacement keeps the link's position in the tree.
func (m *Merger) MergeCSS(doc *etree.Document) error {
	m.step(StepLoadCSS)

	if doc.FindElement("//head") == nil {
		return ErrHeadNotFound
	}

	// Collect first: replacing while walking would disturb the search.
	links := doc.FindElements("//link")
	for _, link := range links {
		href := link.SelectAttr("href")
		if href == nil {
			return fmt.Errorf("%w at %s", ErrMissingHref, link.GetPath())
		}

		css, err := m.Loader.LoadText(href.Value)
		if err != nil {
			return fmt.Errorf("loading stylesheet %q: %w", href.Value, err)
		}

		style := etree.NewElement("style")
		style.SetText(sanitizeCSS(css))
		replaceElement(link, style)
	}

	return nil
}

// MergeJavaScript moves the script referenced by the first <script> element
// inline and drops its src attribute. Existing content is discarded.
func (m *Merger) MergeJavaScript(doc *etree.Document) error {
	m.step(StepLoadJavaScript)

	script := doc.FindElement("//script")
	if script == nil {
		return ErrScriptNotFound
	}

	src := script.SelectAttr("src")
	if src == nil {
		return fmt.Errorf("%w at %s", ErrMissingSrc, script.GetPath())
	}

	js, err := m.Loader.LoadText(src.Value)
	if err != nil {
		return fmt.Errorf("loading script %q: %w", src.Value, err)
	}

	script.RemoveAttr("src")
	for len(script.Child) > 0 {
		script.RemoveChildAt(0)
	}
	script.SetText(sanitizeScript(js))

	return nil
}

// Verify reports ErrUnmergedReference if doc still holds a <link> element or
// a <script> element with a src attribute.
func Verify(doc *etree.Document) error {
	if links := doc.FindElements("//link"); len(links) > 0 {
		return fmt.Errorf("%w: %d <link> element(s)", ErrUnmergedReference, len(links))
	}
	for _, script := range doc.FindElements("//script") {
		if script.SelectAttr("src") != nil {
			return fmt.Errorf("%w: <script src=%q>", ErrUnmergedReference, script.SelectAttrValue("src", ""))
		}
	}
	return nil
}

func (m *Merger) step(msg string) {
	if m.OnStep != nil {
		m.OnStep(msg)
	}
}

// replaceElement puts repl where old sits in its parent.
func replaceElement(old, repl *etree.Element) {
	parent := old.Parent()
	idx := old.Index()
	parent.RemoveChildAt(idx)
	parent.InsertChildAt(idx, repl)
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
// The report is serialized with the HTML output method, which writes style
// content verbatim.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

var scriptCloseRe = regexp.MustCompile(`(?i)</script`)

// sanitizeScript escapes closing script tags inside inline JavaScript.
func sanitizeScript(js string) string {
	return scriptCloseRe.ReplaceAllStringFunc(js, func(m string) string {
		return `<\/` + m[2:]
	})
}
