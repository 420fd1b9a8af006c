package trxer

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/trxer/go-trxer/internal/assets"
	"github.com/trxer/go-trxer/internal/pipeline"
	"github.com/trxer/go-trxer/internal/schema"
	"github.com/trxer/go-trxer/internal/transform"
)

// Compile-time interface implementation checks.
var (
	_ AssetLoader         = (*assetLoaderAdapter)(nil)
	_ assets.AssetLoader  = (*publicToInternalAdapter)(nil)
	_ pipeline.TextLoader = (assets.AssetLoader)(nil)
	_ transform.Engine    = (*transform.LibXSLT)(nil)
	_ transform.Engine    = (*transform.XSLTProc)(nil)
)

// Progress messages, in the order they are emitted.
const (
	StepLoadTemplate   = "Loading xslt template..."
	StepLoadCSS        = pipeline.StepLoadCSS
	StepLoadJavaScript = pipeline.StepLoadJavaScript
	StepTransform      = "Transforming..."
	StepDone           = "Done transforming xml into html"
)

// OutputPath returns the report path for inputPath: inputPath + ".html".
func OutputPath(inputPath string) string {
	return transform.OutputPath(inputPath)
}

// Converter turns TRX files into HTML reports.
// Create with NewConverter(), use ConvertFile() or Convert(), and Close() when done.
// A Converter may be shared between goroutines.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	schemaSource      assets.FSProvider
	engine            transform.Engine

	mu     sync.Mutex
	merged []byte
	sheet  transform.Stylesheet
	check  transform.InputCheck
	closed bool
}

// NewConverter creates a Converter. The template is not loaded until the
// first conversion or an explicit Prepare.
// Returns ErrInvalidAssetPath for an unusable asset directory and ErrEngine
// for an unknown engine name.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}

	embedded := assets.NewEmbeddedLoader()
	c.assetLoader = embedded
	c.schemaSource = embedded

	// Handle WithAssetPath: custom directory with embedded fallback
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, convertError(err)
		}
		c.assetLoader = resolver
		c.schemaSource = resolver
	}

	// Handle WithAssetLoader (public interface): wrap to internal interface
	if c.publicAssetLoader != nil {
		c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
		c.schemaSource = embedded
	}

	// Engine may already be injected (tests)
	if c.engine == nil {
		engine, err := transform.NewEngine(c.cfg.engineName, transform.Options{
			XSLTProcPath: c.cfg.xsltprocPath,
		})
		if err != nil {
			return nil, convertError(err)
		}
		c.engine = engine
	}

	return c, nil
}

// EngineName returns the name of the XSLT engine in use.
func (c *Converter) EngineName() string {
	return c.engine.Name()
}

// Prepare loads the template, inlines its stylesheets and script, and
// compiles it. It runs once; later calls return immediately. ConvertFile
// and Convert call it as needed.
func (c *Converter) Prepare(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prepareLocked(ctx)
}

func (c *Converter) prepareLocked(ctx context.Context) error {
	if c.closed {
		return fmt.Errorf("%w: converter is closed", ErrEngine)
	}
	if c.sheet != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	merged, err := c.mergeTemplate()
	if err != nil {
		return convertError(err)
	}

	sheet, err := c.engine.Compile(ctx, merged)
	if err != nil {
		return convertError(err)
	}

	var check transform.InputCheck
	if c.cfg.validate {
		validator, err := schema.NewBundledValidator(c.schemaSource)
		if err != nil {
			_ = sheet.Close()
			return convertError(err)
		}
		check = validator.Check
	}

	c.merged = merged
	c.sheet = sheet
	c.check = check
	return nil
}

// mergeTemplate produces the self-contained stylesheet source.
func (c *Converter) mergeTemplate() ([]byte, error) {
	c.progress(StepLoadTemplate)
	raw, err := c.assetLoader.Load(assets.TemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	doc, err := pipeline.ParseStylesheet(raw)
	if err != nil {
		return nil, err
	}

	merger := pipeline.NewMerger(c.assetLoader)
	merger.OnStep = c.progress
	if _, err := merger.Merge(doc); err != nil {
		return nil, err
	}
	if err := pipeline.Verify(doc); err != nil {
		return nil, err
	}

	return pipeline.Serialize(doc)
}

// MergedStylesheet returns the stylesheet with CSS and JavaScript inlined,
// as passed to the engine. Prepares the converter if needed.
func (c *Converter) MergedStylesheet(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.prepareLocked(ctx); err != nil {
		return nil, err
	}
	out := make([]byte, len(c.merged))
	copy(out, c.merged)
	return out, nil
}

// ConvertFile transforms the TRX file at inputPath and writes the report to
// OutputPath(inputPath), replacing any existing file. Returns the report path.
// No report is written when the input is missing or cannot be transformed.
func (c *Converter) ConvertFile(ctx context.Context, inputPath string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.prepareLocked(ctx); err != nil {
		return "", err
	}

	c.progress(StepTransform)
	out, err := transform.ApplyFile(ctx, c.sheet, inputPath, c.check)
	if err != nil {
		return "", convertError(err)
	}
	c.progress(StepDone)

	return out, nil
}

// Convert transforms TRX content held in memory and returns the HTML report.
func (c *Converter) Convert(ctx context.Context, trx []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.prepareLocked(ctx); err != nil {
		return nil, err
	}
	if len(trx) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrTransform)
	}
	if c.check != nil {
		if err := c.check(trx); err != nil {
			return nil, convertError(err)
		}
	}

	c.progress(StepTransform)
	html, err := c.sheet.Transform(ctx, trx)
	if err != nil {
		return nil, convertError(err)
	}
	c.progress(StepDone)

	return html, nil
}

// Close releases the compiled stylesheet. Further conversions fail.
// Safe to call more than once.
func (c *Converter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.sheet == nil {
		return nil
	}
	err := c.sheet.Close()
	c.sheet = nil
	return err
}

func (c *Converter) progress(step string) {
	if c.cfg.progress == nil {
		return
	}
	_, _ = io.WriteString(c.cfg.progress, step+"\n")
}
