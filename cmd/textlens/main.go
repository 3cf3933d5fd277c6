// textlens analyzes text from files or standard input and prints the
// result as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/textlens/textlens"
	"github.com/textlens/textlens/internal/logger"
	"github.com/textlens/textlens/internal/metrics"
)

var (
	configPath  = flag.String("config", "", "YAML or JSON config file")
	logLevel    = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	pretty      = flag.Bool("pretty", false, "Human-readable log output")
	logCaller   = flag.Bool("log-caller", false, "Include the source location in log lines")
	metricsAddr = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	printTree   = flag.Bool("tree", false, "Print the syntax tree instead of JSON")
	timeout     = flag.Duration("timeout", 30*time.Second, "Per-analysis timeout (0 disables)")
	indent      = flag.Bool("indent", true, "Indent JSON output")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file ...]\n\nWith no files, text is read from standard input.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logger.NewLogger(logger.Config{Level: *logLevel, Pretty: *pretty, WithCaller: *logCaller})

	if err := run(log); err != nil {
		log.Error().Err(err).Msg("textlens failed")
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	cfg, err := textlens.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(reg)

	if *metricsAddr != "" {
		srv := newObservabilityServer(*metricsAddr, reg, log)
		defer srv.Close()
	}

	analyzer, err := textlens.NewAnalyzer(cfg,
		textlens.WithLogger(log.Component("analyzer").GetZerolog()),
		textlens.WithRecorder(m),
		textlens.WithTimeout(*timeout),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	history, skipped, err := analyzeInputs(ctx, analyzer, log, inputs)
	if err != nil {
		return err
	}

	// History is newest first; print in input order.
	results := history.List()
	for i := len(results) - 1; i >= 0; i-- {
		if err := write(os.Stdout, results[i]); err != nil {
			return err
		}
	}
	if skipped > 0 {
		return fmt.Errorf("%d of %d inputs skipped", skipped, len(inputs))
	}
	return nil
}

// analyzeInputs analyzes each input in turn. Inputs rejected as invalid or
// too large are logged and counted instead of aborting the run.
func analyzeInputs(ctx context.Context, analyzer *textlens.Analyzer, log *logger.Logger, inputs []string) (*textlens.History, int, error) {
	history := textlens.NewHistory(0)
	skipped := 0
	for _, name := range inputs {
		inputLog := log.WithFields(map[string]interface{}{"input": name})

		text, err := readInput(name)
		if err != nil {
			return nil, 0, err
		}
		inputLog.LogInput(name, len(text))

		res, err := analyzer.Analyze(ctx, text)
		switch {
		case errors.Is(err, textlens.ErrInvalidInput), errors.Is(err, textlens.ErrInputTooLarge):
			// Bad input only affects this file; keep going with the rest.
			inputLog.Warn().Err(err).Msg("input skipped")
			skipped++
			continue
		case err != nil:
			return nil, 0, fmt.Errorf("%s: %w", name, err)
		}
		inputLog.Info().
			Str("id", res.ID).
			Int("tokens", len(res.Tokens)).
			Str("language", res.Language.Code).
			Msg("input analyzed")
		history.Add(res)
	}
	return history, skipped, nil
}

func readInput(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}

func write(w io.Writer, res *textlens.AnalysisResult) error {
	if *printTree {
		_, err := fmt.Fprintln(w, res.Syntax.Format())
		return err
	}
	enc := json.NewEncoder(w)
	if *indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}

// newObservabilityServer serves /metrics and /health in the background.
func newObservabilityServer(addr string, reg *prometheus.Registry, log *logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","service":"textlens"}`))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.LogMetricsServer(addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	return srv
}
