package textlens

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Stage names reported in errors, logs, spans and metrics.
const (
	StageValidate    = "validate"
	StageSegment     = "segment"
	StageTag         = "tag"
	StageEntities    = "entities"
	StageSyntax      = "syntax"
	StageSentiment   = "sentiment"
	StageSummary     = "summary"
	StageKeywords    = "keywords"
	StageReadability = "readability"
	StageLanguage    = "language"
)

// Analysis outcomes passed to Recorder.ObserveAnalysis.
const (
	StatusOK           = "ok"
	StatusInvalidInput = "invalid_input"
	StatusTooLarge     = "too_large"
	StatusCancelled    = "cancelled"
	StatusError        = "error"
)

// A Recorder receives timing measurements from the analyzer.
type Recorder interface {
	ObserveStage(stage string, elapsed time.Duration)
	ObserveAnalysis(status string, elapsed time.Duration, inputRunes int)
	AddInFlight(delta float64)
}

type nopRecorder struct{}

func (nopRecorder) ObserveStage(string, time.Duration)         {}
func (nopRecorder) ObserveAnalysis(string, time.Duration, int) {}
func (nopRecorder) AddInFlight(float64)                        {}

// An AnalyzerOpt represents a setting that changes how an Analyzer runs.
//
// For example, it might attach a logger:
//
//	a, err := textlens.NewAnalyzer(cfg, textlens.WithLogger(log))
type AnalyzerOpt func(a *Analyzer)

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(t Tokenizer) AnalyzerOpt {
	return func(a *Analyzer) {
		a.tokenizer = t
	}
}

// UsingTagger specifies the Tagger to use.
func UsingTagger(t Tagger) AnalyzerOpt {
	return func(a *Analyzer) {
		a.tagger = t
	}
}

// UsingEntityRecognizer specifies the EntityRecognizer to use. It replaces
// the category filter from the Config.
func UsingEntityRecognizer(r EntityRecognizer) AnalyzerOpt {
	return func(a *Analyzer) {
		a.recognizer = r
	}
}

// UsingLexicon specifies the sentiment lexicon. It takes precedence over
// Config.SentimentLexiconPath.
func UsingLexicon(l *SentimentLexicon) AnalyzerOpt {
	return func(a *Analyzer) {
		a.lexicon = l
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) AnalyzerOpt {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) AnalyzerOpt {
	return func(a *Analyzer) {
		a.recorder = r
	}
}

// WithTracer sets the tracer used for analysis and stage spans.
func WithTracer(t trace.Tracer) AnalyzerOpt {
	return func(a *Analyzer) {
		a.tracer = t
	}
}

// WithTimeout bounds each analysis.
func WithTimeout(timeout time.Duration) AnalyzerOpt {
	return func(a *Analyzer) {
		a.timeout = timeout
	}
}

// WithProgressCallback sets a progress reporting callback. It is called
// from the analyzing goroutine with values in (0, 1].
func WithProgressCallback(callback func(float64)) AnalyzerOpt {
	return func(a *Analyzer) {
		a.progress = callback
	}
}

// WithClock sets the time source for result timestamps.
func WithClock(now func() time.Time) AnalyzerOpt {
	return func(a *Analyzer) {
		a.now = now
	}
}

// WithIDGenerator sets the function producing result ids.
func WithIDGenerator(newID func() string) AnalyzerOpt {
	return func(a *Analyzer) {
		a.newID = newID
	}
}

// An Analyzer runs the full analysis pipeline. It holds no per-call state
// and is safe for concurrent use.
type Analyzer struct {
	cfg Config

	tokenizer  Tokenizer
	tagger     Tagger
	recognizer EntityRecognizer
	lexicon    *SentimentLexicon
	sentiment  *SentimentAnalyzer
	detector   *LanguageDetector

	logger   zerolog.Logger
	recorder Recorder
	tracer   trace.Tracer
	timeout  time.Duration
	progress func(float64)
	now      func() time.Time
	newID    func() string
}

// NewAnalyzer validates cfg and builds an Analyzer.
func NewAnalyzer(cfg Config, opts ...AnalyzerOpt) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{
		cfg:      cfg,
		logger:   zerolog.Nop(),
		recorder: nopRecorder{},
		tracer:   otel.Tracer("github.com/textlens/textlens"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, applyOpt := range opts {
		applyOpt(a)
	}

	if a.tokenizer == nil {
		a.tokenizer = NewIterTokenizer()
	}
	if a.tagger == nil {
		a.tagger = NewTagger()
	}
	if a.recognizer == nil {
		a.recognizer = NewEntityRecognizer(cfg.EntityCategories...)
	}
	if a.lexicon == nil {
		lex, err := LoadSentimentLexicon(cfg.SentimentLexiconPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		a.lexicon = lex
	}
	a.sentiment = NewSentimentAnalyzer(a.lexicon, DefaultSentimentConfig())
	a.detector = NewLanguageDetector(cfg.LanguageProfiles...)

	return a, nil
}

// Analyze runs the pipeline with a one-off Analyzer built from cfg.
func Analyze(ctx context.Context, text string, cfg Config) (*AnalysisResult, error) {
	a, err := NewAnalyzer(cfg)
	if err != nil {
		return nil, err
	}
	return a.Analyze(ctx, text)
}

// Analyze produces the full AnalysisResult for text.
//
// Empty text yields a result with empty collections. Text that is not
// valid UTF-8 fails with ErrInvalidInput and text longer than
// Config.MaxInputLength characters fails with ErrInputTooLarge.
// Cancellation is checked between stages and fails with ErrCancelled; no
// partial result is returned on any error.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*AnalysisResult, error) {
	start := time.Now()
	runes := utf8.RuneCountInString(text)

	a.recorder.AddInFlight(1)
	defer a.recorder.AddInFlight(-1)

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	ctx, span := a.tracer.Start(ctx, "textlens.Analyze")
	defer span.End()
	span.SetAttributes(attribute.Int("textlens.input_runes", runes))

	res, err := a.analyze(ctx, text, runes)

	status := statusOf(err)
	elapsed := time.Since(start)
	a.recorder.ObserveAnalysis(status, elapsed, runes)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		level := zerolog.ErrorLevel
		if status != StatusError {
			level = zerolog.WarnLevel
		}
		a.logger.WithLevel(level).Err(err).Str("status", status).Int("runes", runes).Dur("elapsed", elapsed).Msg("analysis failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.String("textlens.id", res.ID),
		attribute.Int("textlens.tokens", len(res.Tokens)),
		attribute.Int("textlens.sentences", len(res.Sentences)),
	)
	a.logger.Info().
		Str("id", res.ID).
		Int("runes", runes).
		Int("tokens", len(res.Tokens)).
		Int("sentences", len(res.Sentences)).
		Int("entities", len(res.Entities)).
		Str("language", res.Language.Code).
		Dur("elapsed", elapsed).
		Msg("analysis complete")
	return res, nil
}

func (a *Analyzer) analyze(ctx context.Context, text string, runes int) (*AnalysisResult, error) {
	if !utf8.ValidString(text) {
		return nil, stageError(StageValidate, fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidInput))
	}
	if runes > a.cfg.MaxInputLength {
		return nil, stageError(StageValidate, fmt.Errorf("%w: %d characters exceeds limit of %d",
			ErrInputTooLarge, runes, a.cfg.MaxInputLength))
	}

	res := &AnalysisResult{
		ID:        a.newID(),
		Text:      text,
		Timestamp: a.now().UTC(),
	}

	err := a.runStage(ctx, StageSegment, func() error {
		res.Tokens = a.tokenizer.Tokenize(text)
		if res.Tokens == nil {
			res.Tokens = []Token{}
		}
		sents, err := segment(text, res.Tokens)
		res.Sentences = sents
		return err
	})
	if err != nil {
		return nil, err
	}
	a.reportProgress(0.25)

	err = a.runStage(ctx, StageTag, func() error {
		res.POSTagging = a.tagger.Tag(res.Tokens)
		if len(res.POSTagging) != len(res.Tokens) {
			return fmt.Errorf("%w: tagger returned %d tags for %d tokens",
				ErrInternalFailure, len(res.POSTagging), len(res.Tokens))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	a.reportProgress(0.5)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.runStage(gctx, StageEntities, func() error {
			res.Entities = a.recognizer.Recognize(text, res.Tokens)
			if res.Entities == nil {
				res.Entities = []EntityTag{}
			}
			return verifyEntities(text, res.Entities)
		})
	})
	g.Go(func() error {
		return a.runStage(gctx, StageSyntax, func() error {
			res.Syntax = BuildSyntax(res.Sentences, res.POSTagging)
			return nil
		})
	})
	g.Go(func() error {
		return a.runStage(gctx, StageSentiment, func() error {
			res.Sentiment = a.sentiment.Analyze(res.Sentences)
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.reportProgress(0.75)

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.runStage(gctx, StageSummary, func() error {
			res.Summary = Summarize(text, res.Sentences, SummaryOptions{
				SentenceCount: a.cfg.SummarySentenceCount,
				CharBudget:    a.cfg.SummaryCharBudget,
			})
			return nil
		})
	})
	g.Go(func() error {
		return a.runStage(gctx, StageKeywords, func() error {
			res.Keywords = ExtractKeywords(res.Tokens, a.cfg.KeywordCount)
			return nil
		})
	})
	g.Go(func() error {
		return a.runStage(gctx, StageReadability, func() error {
			res.Readability = Readability(res.Sentences)
			return nil
		})
	})
	g.Go(func() error {
		return a.runStage(gctx, StageLanguage, func() error {
			res.Language = a.detector.DetectLanguage(text)
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// A cancellation that arrived during the last group still wins.
	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}
	a.reportProgress(1.0)

	return res, nil
}

// runStage checks for cancellation, then runs fn inside a span. A panic in
// fn is reported as ErrInternalFailure.
func (a *Analyzer) runStage(ctx context.Context, stage string, fn func() error) (err error) {
	if err := checkCancelled(ctx); err != nil {
		return stageError(stage, err)
	}

	_, span := a.tracer.Start(ctx, "textlens."+stage)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrInternalFailure, r)
		}
		elapsed := time.Since(start)
		a.recorder.ObserveStage(stage, elapsed)
		if err != nil {
			err = stageError(stage, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		a.logger.Debug().Str("stage", stage).Dur("elapsed", elapsed).Msg("stage finished")
	}()

	return fn()
}

func (a *Analyzer) reportProgress(p float64) {
	if a.progress != nil {
		a.progress(p)
	}
}

func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
	default:
		return nil
	}
}

// verifyEntities guards the offset invariant of every emitted span.
func verifyEntities(text string, entities []EntityTag) error {
	last := 0
	for _, e := range entities {
		if e.Start < last || e.Start >= e.End || e.End > len(text) || text[e.Start:e.End] != e.Word {
			return fmt.Errorf("%w: entity %q at [%d,%d) does not match the text", ErrInternalFailure, e.Word, e.Start, e.End)
		}
		last = e.End
	}
	return nil
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrCancelled):
		return StatusCancelled
	case errors.Is(err, ErrInvalidInput):
		return StatusInvalidInput
	case errors.Is(err, ErrInputTooLarge):
		return StatusTooLarge
	}
	return StatusError
}
