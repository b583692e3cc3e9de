// SPDX-License-Identifier: MIT

package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/windgrid/core"
	"github.com/katalvlaran/windgrid/loader"
	"github.com/katalvlaran/windgrid/metrics"
	"github.com/katalvlaran/windgrid/reinforce"
	"github.com/katalvlaran/windgrid/simulation"
)

const (
	pathSimulate = "/api/simulate"
	pathDatasets = "/api/datasets"
	pathMetrics  = "/metrics"

	defaultWind    = 7.0
	defaultDataset = "example"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"coord": func(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) },
}).ParseFS(templateFS, "templates/*.html"))

var validate = validator.New(validator.WithRequiredStructEnabled())

// Server holds the dependencies shared by all handlers.
type Server struct {
	logger  *slog.Logger
	metrics *metrics.Registry
	runner  *simulation.Runner
	workers int
}

// Option configures a Server.
type Option func(*Server)

// WithServerLogger sets the base logger.
func WithServerLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the registry served on /metrics and fed by every run.
func WithMetrics(reg *metrics.Registry) Option {
	return func(s *Server) { s.metrics = reg }
}

// WithWorkers bounds parallel greedy trials per run.
func WithWorkers(n int) Option {
	return func(s *Server) { s.workers = n }
}

// New returns a Server. Without WithMetrics a private registry is used.
func New(opts ...Option) *Server {
	s := &Server{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.NewRegistry()
	}
	s.runner = simulation.NewRunner(
		simulation.WithLogger(s.logger),
		simulation.WithRecorder(s.metrics),
		simulation.WithWorkers(s.workers),
	)

	return s
}

// Handler returns the routed, fully wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleForm)
	mux.HandleFunc("POST /{$}", s.handleFormRun)
	mux.HandleFunc("POST "+pathSimulate, s.handleSimulate)
	mux.HandleFunc("GET "+pathDatasets, s.handleDatasets)
	mux.Handle("GET "+pathMetrics, s.metrics.Handler())

	return WrapMiddleware(mux,
		WithRequestID,
		WithLogger(s.logger),
		Recover(s.logger),
		AccessLog(s.logger),
		Instrument(s.metrics),
	)
}

// ----------------------------------------------------------------------------
// JSON API

type simulateRequest struct {
	Definition *loader.Definition `json:"definition" validate:"required_without=Dataset"`
	Dataset    string             `json:"dataset,omitempty"`
	Wind       *float64           `json:"wind" validate:"required"`
	Method     string             `json:"method" validate:"required"`
	K          int                `json:"k"`
	Generators []string           `json:"generators,omitempty" validate:"dive,required"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	log := LoggerFromContext(r.Context(), s.logger)

	req, err := decode[simulateRequest](w, r)
	if err != nil {
		respond(w, http.StatusBadRequest, errResp{Error: err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		respond(w, http.StatusBadRequest, errResp{Error: fmt.Sprintf("request: %v", err)})
		return
	}

	def := req.Definition
	if def == nil {
		if def, err = loader.Dataset(req.Dataset); err != nil {
			respond(w, http.StatusBadRequest, errResp{Error: err.Error()})
			return
		}
	}

	res, _, err := s.simulate(r.Context(), def, *req.Wind, req.Method, req.K, req.Generators)
	if err != nil {
		log.Debug("simulation rejected", "error", err)
		respond(w, statusFor(err), errResp{Error: err.Error()})
		return
	}

	respond(w, http.StatusOK, res)
}

func (s *Server) handleDatasets(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, loader.DatasetNames())
}

// ----------------------------------------------------------------------------
// HTML form

type formView struct {
	Wind       float64
	Method     string
	K          int
	Dataset    string
	Generators string
	Methods    []reinforce.Method
	Datasets   []string
	Error      string
}

type resultsView struct {
	formView
	Result *simulation.Result
	Plot   plot
}

func (s *Server) newFormView() formView {
	return formView{
		Wind:     defaultWind,
		Method:   string(reinforce.MethodGreedy),
		K:        1,
		Dataset:  defaultDataset,
		Methods:  reinforce.Methods(),
		Datasets: loader.DatasetNames(),
	}
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "index.html", s.newFormView())
}

func (s *Server) handleFormRun(w http.ResponseWriter, r *http.Request) {
	view := s.newFormView()
	fail := func(err error) {
		view.Error = err.Error()
		s.render(w, r, http.StatusBadRequest, "index.html", view)
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseMultipartForm(maxBodySize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		fail(fmt.Errorf("request: %w", err))
		return
	}

	view.Method = r.FormValue("method")
	view.Dataset = r.FormValue("dataset")
	view.Generators = r.FormValue("generators")

	wind, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("wind")), 64)
	if err != nil {
		fail(fmt.Errorf("wind: %q is not a number", r.FormValue("wind")))
		return
	}
	view.Wind = wind

	k, err := strconv.Atoi(strings.TrimSpace(r.FormValue("k")))
	if err != nil {
		fail(fmt.Errorf("k: %q is not an integer", r.FormValue("k")))
		return
	}
	view.K = k

	def, err := s.formDefinition(r, view.Dataset)
	if err != nil {
		fail(err)
		return
	}

	res, g, err := s.simulate(r.Context(), def, wind, view.Method, k, loader.SplitList(view.Generators))
	if err != nil {
		fail(err)
		return
	}

	p, err := layout(g, res, def.MergedGenerators(loader.SplitList(view.Generators)...))
	if err != nil {
		LoggerFromContext(r.Context(), s.logger).Warn("plot without supply labels", "error", err)
	}

	s.render(w, r, http.StatusOK, "results.html", resultsView{
		formView: view,
		Result:   res,
		Plot:     p,
	})
}

// formDefinition prefers an uploaded file over the dataset selector.
func (s *Server) formDefinition(r *http.Request, dataset string) (*loader.Definition, error) {
	f, hdr, err := r.FormFile("upload")
	switch {
	case err == nil:
		defer f.Close()
		return loader.Decode(f, loader.FormatFromPath(hdr.Filename))
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		if dataset == "" {
			dataset = defaultDataset
		}
		return loader.Dataset(dataset)
	default:
		return nil, fmt.Errorf("upload: %w", err)
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, code int, name string, data any) {
	var buf strings.Builder
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		LoggerFromContext(r.Context(), s.logger).Error("render template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(buf.String()))
}

// ----------------------------------------------------------------------------
// Shared

// simulate builds def, merges generators and runs one simulation.
func (s *Server) simulate(ctx context.Context, def *loader.Definition, wind float64, method string, k int, generators []string) (*simulation.Result, *core.Graph, error) {
	g, err := def.Build()
	if err != nil {
		return nil, nil, err
	}

	res, err := s.runner.Run(ctx, g, simulation.Params{
		Wind:       wind,
		Method:     reinforce.Method(strings.ToLower(strings.TrimSpace(method))),
		K:          k,
		Generators: def.MergedGenerators(generators...),
	})
	if err != nil {
		return nil, nil, err
	}

	return res, g, nil
}

// statusFor maps cancellation to 503 and everything else to 400: every other
// error the pipeline returns describes bad input.
func statusFor(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}
