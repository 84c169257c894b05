package pipeline

import (
	"image"

	"github.com/rs/zerolog"

	"github.com/ironsheep/screen-text-ocr/internal/debugsink"
	"github.com/ironsheep/screen-text-ocr/internal/imaging"
)

// Variant supplies the steps that differ between kinds of on-screen text.
//
// Crop and Normalize receive the zero-based index of the current iteration.
// ShouldRetry receives the number of iterations completed so far, which is
// one-based: it is 1 after the first iteration.
//
// The pipeline never caps the number of iterations. A variant whose
// ShouldRetry always returns true loops forever, so every variant must bound
// its own retries.
type Variant interface {
	Crop(screenshot image.Image, iteration int) (image.Image, error)
	Normalize(raw string, iteration int) string
	ShouldRetry(text string, completed int) bool

	// Filename is the debug image name, without extension. It is the same
	// for every iteration, so only the last enhanced image is kept.
	Filename() string
}

// Recognizer reads text from an enhanced image.
type Recognizer interface {
	Recognize(img image.Image) (string, error)
}

// RecognizerFunc adapts a function to the Recognizer interface.
type RecognizerFunc func(img image.Image) (string, error)

// Recognize calls f(img).
func (f RecognizerFunc) Recognize(img image.Image) (string, error) {
	return f(img)
}

// Sink receives each enhanced image before recognition. Errors are logged
// and recorded as warnings; they never fail a Process call.
type Sink interface {
	Save(img image.Image, name string) error
}

// Result is the outcome of a successful ProcessDetailed call.
type Result struct {
	Text       string
	Iterations int
	Warnings   []Warning
}

// Pipeline runs the crop, enhance, recognize, normalize, retry loop.
//
// A Pipeline holds only configuration fixed at construction, so one value
// can serve concurrent Process calls. Each call owns its intermediate images.
type Pipeline struct {
	recognizer     Recognizer
	sink           Sink
	log            zerolog.Logger
	contrastScale  float64
	contrastOffset float64
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSink sets where enhanced images are saved for debugging.
func WithSink(s Sink) Option {
	return func(p *Pipeline) {
		if s != nil {
			p.sink = s
		}
	}
}

// WithLogger sets the logger used for result and warning records.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// WithRescale overrides the contrast rescale parameters of the enhancement step.
func WithRescale(scale, offset float64) Option {
	return func(p *Pipeline) {
		p.contrastScale = scale
		p.contrastOffset = offset
	}
}

// New creates a Pipeline that recognizes text with rec. By default debug
// images are discarded and nothing is logged.
func New(rec Recognizer, opts ...Option) *Pipeline {
	p := &Pipeline{
		recognizer:     rec,
		sink:           debugsink.Discard{},
		log:            zerolog.Nop(),
		contrastScale:  imaging.DefaultContrastScale,
		contrastOffset: imaging.DefaultContrastOffset,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process extracts the text v describes from screenshot and returns the
// normalized text of the final iteration.
//
// screenshot is only read, never modified. Crop, enhancement and
// recognition failures abort the call with an *Error; debug-save failures
// are logged and ignored.
func (p *Pipeline) Process(screenshot image.Image, v Variant) (string, error) {
	res, err := p.ProcessDetailed(screenshot, v)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// ProcessDetailed is Process, also reporting the number of iterations run
// and any warnings raised along the way.
func (p *Pipeline) ProcessDetailed(screenshot image.Image, v Variant) (*Result, error) {
	res := &Result{}

	iteration := 0
	for {
		text, warn, err := p.iterate(screenshot, v, iteration)
		if err != nil {
			return nil, err
		}
		if warn != nil {
			res.Warnings = append(res.Warnings, *warn)
		}

		res.Text = text
		iteration++
		res.Iterations = iteration

		if !v.ShouldRetry(text, iteration) {
			break
		}
	}

	p.log.Debug().
		Str("variant", v.Filename()).
		Int("iterations", res.Iterations).
		Msgf("OCR recognised %q", res.Text)

	return res, nil
}

// iterate runs one crop, enhance, save, recognize, normalize cycle. The
// cropped and enhanced images do not outlive it.
func (p *Pipeline) iterate(screenshot image.Image, v Variant, iteration int) (string, *Warning, error) {
	cropped, err := v.Crop(screenshot, iteration)
	if err != nil {
		return "", nil, &Error{Stage: StageCrop, Iteration: iteration, Err: err}
	}

	enhanced, err := imaging.EnhanceWith(cropped, p.contrastScale, p.contrastOffset)
	if err != nil {
		return "", nil, &Error{Stage: StageEnhance, Iteration: iteration, Err: err}
	}

	warn := p.saveCopy(enhanced, v.Filename(), iteration)

	raw, err := p.recognizer.Recognize(enhanced)
	if err != nil {
		return "", nil, &Error{Stage: StageRecognize, Iteration: iteration, Err: err}
	}

	return v.Normalize(raw, iteration), warn, nil
}

func (p *Pipeline) saveCopy(img image.Image, name string, iteration int) *Warning {
	err := p.sink.Save(img, name)
	if err == nil {
		return nil
	}

	p.log.Warn().Err(err).Str("variant", name).Int("iteration", iteration).Msg("Error writing OCR image")
	return &Warning{Iteration: iteration, Message: "error writing OCR image " + name, Err: err}
}
