package rest

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"lintang/ridecost/pkg/datastructure"
	"lintang/ridecost/pkg/engine/experiment"
	"lintang/ridecost/pkg/engine/routingalgorithm"
	"lintang/ridecost/pkg/guidance"
	"lintang/ridecost/pkg/server"
	"lintang/ridecost/pkg/server/rest/service"
	"lintang/ridecost/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	ShortestPath(ctx context.Context, start, target, strategyName string) (service.RouteResult, error)
	Compare(ctx context.Context, start, target string) ([]service.RouteResult, error)
	ManyToManyQuery(ctx context.Context, sources, targets []string, strategyName string) (map[string][]service.TargetResult, error)
	SubsidyExperiment(ctx context.Context, start, target string) (experiment.Report, error)
	NearestCities(ctx context.Context, x, y float64, k int) ([]datastructure.City, error)
	Cities(ctx context.Context) []datastructure.City
}

type NavigationHandler struct {
	svc          NavigationService
	promeMetrics *metrics
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, m *metrics) {
	handler := &NavigationHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/routes", func(r chi.Router) {
			r.Post("/shortest-path", handler.shortestPath)
			r.Post("/compare", handler.compare)
			r.Post("/many-to-many", handler.ManyToManyQuery)
			r.Post("/subsidy-experiment", handler.SubsidyExperiment)
		})
		r.Route("/api/cities", func(r chi.Router) {
			r.Get("/", handler.cities)
			r.Post("/nearest", handler.nearestCities)
		})
	})
}

// validateRequest return false kalau request tidak valid, error response sudah di-render.
func validateRequest(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return false
	}
	return true
}

// ShortestPathRequest model info
//
//	@Description	request body for a shortest path query between two cities
type ShortestPathRequest struct {
	Start    string `json:"start" validate:"required"`
	Target   string `json:"target" validate:"required"`
	Strategy string `json:"strategy" validate:"required,oneof=company driver fairness weather fatigue subsidy"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if s.Start == "" || s.Target == "" {
		return errors.New("invalid request")
	}
	return nil
}

// ShortestPathResponse	model info
//
//	@Description	response body for a shortest path query between two cities
type ShortestPathResponse struct {
	Start       string                        `json:"start"`
	Target      string                        `json:"target"`
	Strategy    string                        `json:"strategy"`
	Found       bool                          `json:"found"`
	Cost        *float64                      `json:"cost"`
	Distance    float64                       `json:"distance"`
	Path        []string                      `json:"path"`
	Polyline    string                        `json:"polyline"`
	LongDrives  int                           `json:"long_drives"`
	Legs        []guidance.Leg                `json:"legs"`
	Navigations []guidance.DrivingInstruction `json:"navigations"`
}

// renderCost nil untuk route yang unreachable, json tidak bisa encode +Inf.
func renderCost(cost float64) *float64 {
	if math.IsInf(cost, 0) || math.IsNaN(cost) {
		return nil
	}
	c := util.RoundFloat(cost, 4)
	return &c
}

func NewShortestPathResponse(rr service.RouteResult) *ShortestPathResponse {
	return &ShortestPathResponse{
		Start:       rr.Start,
		Target:      rr.Target,
		Strategy:    rr.Strategy.String(),
		Found:       rr.Found,
		Cost:        renderCost(rr.Cost),
		Distance:    util.RoundFloat(rr.Itinerary.TotalDistance, 2),
		Path:        datastructure.PathIDs(rr.Path),
		Polyline:    rr.Itinerary.Polyline,
		LongDrives:  rr.Itinerary.LongDrives,
		Legs:        rr.Itinerary.Legs,
		Navigations: rr.Itinerary.Instructions,
	}
}

// shortestPath
//
//	@Summary		shortest path query between two cities for one stakeholder cost strategy.
//	@Description	shortest path query between two cities. strategy is one of company, driver, fairness, weather, fatigue, subsidy
//	@Tags			routes
//	@Param			body	body	ShortestPathRequest	true	"request body shortest path query"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, *data) {
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues(data.Strategy).Inc()
	rr, err := h.svc.ShortestPath(r.Context(), data.Start, data.Target, data.Strategy)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewShortestPathResponse(rr))
}

// CompareRequest model info
//
//	@Description	request body for comparing every cost strategy on the same query
type CompareRequest struct {
	Start  string `json:"start" validate:"required"`
	Target string `json:"target" validate:"required"`
}

func (s *CompareRequest) Bind(r *http.Request) error {
	if s.Start == "" || s.Target == "" {
		return errors.New("invalid request")
	}
	return nil
}

// CompareResponse model info
//
//	@Description	response body for comparing every cost strategy on the same query
type CompareResponse struct {
	Routes []*ShortestPathResponse `json:"routes"`
}

// compare
//
//	@Summary		run every cost strategy for the same start and target.
//	@Description	run every cost strategy for the same start and target, so company, driver and ethical routes can be compared side by side
//	@Tags			routes
//	@Param			body	body	CompareRequest	true	"request body compare query"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/compare [post]
//	@Success		200	{object}	CompareResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) compare(w http.ResponseWriter, r *http.Request) {
	data := &CompareRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, *data) {
		return
	}

	results, err := h.svc.Compare(r.Context(), data.Start, data.Target)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	resp := &CompareResponse{Routes: make([]*ShortestPathResponse, 0, len(results))}
	for _, rr := range results {
		h.promeMetrics.SPQueryCount.WithLabelValues(rr.Strategy.String()).Inc()
		resp.Routes = append(resp.Routes, NewShortestPathResponse(rr))
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// ManyToManyQueryRequest model info
//
//	@Description	request body for a many to many shortest path query
type ManyToManyQueryRequest struct {
	Sources  []string `json:"sources" validate:"required,min=1,dive,required"`
	Targets  []string `json:"targets" validate:"required,min=1,dive,required"`
	Strategy string   `json:"strategy" validate:"required,oneof=company driver fairness weather fatigue subsidy"`
}

func (s *ManyToManyQueryRequest) Bind(r *http.Request) error {
	if len(s.Sources) == 0 || len(s.Targets) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// TargetRes model info
//
//	@Description	one destination in a many to many query
type TargetRes struct {
	Target string   `json:"target"`
	Found  bool     `json:"found"`
	Path   []string `json:"path"`
	Cost   *float64 `json:"cost"`
}

// SrcTargetPair model info
//
//	@Description	source and its destinations in a many to many query
type SrcTargetPair struct {
	Source  string      `json:"source"`
	Targets []TargetRes `json:"targets"`
}

// ManyToManyQueryResponse model info
//
//	@Description	response body for a many to many shortest path query
type ManyToManyQueryResponse struct {
	Strategy string          `json:"strategy"`
	Results  []SrcTargetPair `json:"results"`
}

// ManyToManyQuery
//
//	@Summary		many to many shortest path query. Every source is routed to every target.
//	@Description	many to many shortest path query. Every pair runs as its own query on a worker pool
//	@Tags			routes
//	@Param			body	body	ManyToManyQueryRequest	true	"request body many to many query"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/many-to-many [post]
//	@Success		200	{object}	ManyToManyQueryResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) ManyToManyQuery(w http.ResponseWriter, r *http.Request) {
	data := &ManyToManyQueryRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, *data) {
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues(data.Strategy).Add(float64(len(data.Sources) * len(data.Targets)))
	results, err := h.svc.ManyToManyQuery(r.Context(), data.Sources, data.Targets, data.Strategy)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderManyToManyQueryResponse(data.Strategy, data.Sources, results))
}

func RenderManyToManyQueryResponse(strategy string, sources []string, res map[string][]service.TargetResult) *ManyToManyQueryResponse {
	results := make([]SrcTargetPair, 0, len(sources))
	for _, src := range sources {
		targets := []TargetRes{}
		for _, t := range res[src] {
			targets = append(targets, TargetRes{
				Target: t.Target,
				Found:  t.Route.Found,
				Path:   datastructure.PathIDs(t.Route.Path),
				Cost:   renderCost(t.Route.Cost),
			})
		}
		results = append(results, SrcTargetPair{Source: src, Targets: targets})
	}
	return &ManyToManyQueryResponse{Strategy: strategy, Results: results}
}

// SubsidyExperimentRequest model info
//
//	@Description	request body for the negative subsidy experiment
type SubsidyExperimentRequest struct {
	Start  string `json:"start" validate:"required"`
	Target string `json:"target" validate:"required"`
}

func (s *SubsidyExperimentRequest) Bind(r *http.Request) error {
	if s.Start == "" || s.Target == "" {
		return errors.New("invalid request")
	}
	return nil
}

// RouteSummary model info
//
//	@Description	path and cost of one route in the subsidy experiment
type RouteSummary struct {
	Found       bool     `json:"found"`
	Path        []string `json:"path"`
	Cost        *float64 `json:"cost"`
	UsesSubsidy bool     `json:"uses_subsidy"`
}

// SubsidyExperimentResponse model info
//
//	@Description	response body for the negative subsidy experiment
type SubsidyExperimentResponse struct {
	SubsidyEdge   string       `json:"subsidy_edge"`
	SubsidyAmount float64      `json:"subsidy_amount"`
	Regular       RouteSummary `json:"regular"`
	Subsidized    RouteSummary `json:"subsidized"`
	Witness       RouteSummary `json:"witness"`
	Missed        bool         `json:"missed"`
}

func newRouteSummary(report experiment.Report, res routingalgorithm.Result) RouteSummary {
	return RouteSummary{
		Found:       res.Found(),
		Path:        res.PathIDs(),
		Cost:        renderCost(res.Cost),
		UsesSubsidy: report.UsesSubsidy(res.Path),
	}
}

func NewSubsidyExperimentResponse(report experiment.Report) *SubsidyExperimentResponse {
	return &SubsidyExperimentResponse{
		SubsidyEdge:   fmt.Sprintf("%s -> %s", report.Scenario.SubsidyFrom, report.Scenario.SubsidyTo),
		SubsidyAmount: report.Scenario.SubsidyAmount,
		Regular:       newRouteSummary(report, report.Regular),
		Subsidized:    newRouteSummary(report, report.Subsidized),
		Witness:       newRouteSummary(report, report.Witness),
		Missed:        report.Missed(),
	}
}

// SubsidyExperiment
//
//	@Summary		run dijkstra with a negative subsidy on Lakeville -> Northfield.
//	@Description	run plain dijkstra with a -100 subsidy on Lakeville -> Northfield and report whether a cheaper route through the subsidy was missed
//	@Tags			routes
//	@Param			body	body	SubsidyExperimentRequest	true	"request body subsidy experiment"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/subsidy-experiment [post]
//	@Success		200	{object}	SubsidyExperimentResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) SubsidyExperiment(w http.ResponseWriter, r *http.Request) {
	data := &SubsidyExperimentRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, *data) {
		return
	}

	report, err := h.svc.SubsidyExperiment(r.Context(), data.Start, data.Target)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewSubsidyExperimentResponse(report))
}

// NearestCitiesRequest model info
//
//	@Description	request body for snapping a coordinate to the nearest cities
type NearestCitiesRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
	K int      `json:"k" validate:"omitempty,min=1,max=25"`
}

func (s *NearestCitiesRequest) Bind(r *http.Request) error {
	if s.X == nil || s.Y == nil {
		return errors.New("invalid request")
	}
	if s.K == 0 {
		s.K = 1
	}
	return nil
}

// CitiesResponse model info
//
//	@Description	list of cities
type CitiesResponse struct {
	Cities []datastructure.City `json:"cities"`
}

// nearestCities
//
//	@Summary		nearest cities to a coordinate.
//	@Description	snap a coordinate on the map grid to the k nearest cities using an rtree
//	@Tags			cities
//	@Param			body	body	NearestCitiesRequest	true	"request body nearest cities"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/cities/nearest [post]
//	@Success		200	{object}	CitiesResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) nearestCities(w http.ResponseWriter, r *http.Request) {
	data := &NearestCitiesRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, *data) {
		return
	}

	cities, err := h.svc.NearestCities(r.Context(), *data.X, *data.Y, data.K)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &CitiesResponse{Cities: cities})
}

// cities
//
//	@Summary		list every city in the road network.
//	@Tags			cities
//	@Produce		application/json
//	@Router			/cities [get]
//	@Success		200	{object}	CitiesResponse
func (h *NavigationHandler) cities(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &CitiesResponse{Cities: h.svc.Cities(r.Context())})
}

// ErrResponse model info
//
//	@Description	error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusNotImplemented:
		statusText = "Not implemented."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	}
	switch ierr.Code() {
	case server.ErrInternalServerError:
		return http.StatusInternalServerError
	case server.ErrNotFound:
		return http.StatusNotFound
	case server.ErrBadParamInput:
		return http.StatusBadRequest
	case server.ErrNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
