package controllers

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/congestion-router/pkg/engine"
	helper "github.com/lintang-b-s/congestion-router/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/congestion-router/pkg/util"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.shortestPath)
	group.POST("/computeRoutes/batch", api.batchShortestPath)
	group.GET("/locations", api.locations)
}

// shortestPath
//
//	@Summary		least congested route between two locations
//	@Produce		json
//	@Param			start	query		string	true	"start location"
//	@Param			end		query		string	true	"end location"
//	@Param			time	query		string	false	"departure time, HH:MM"
//	@Success		200		{object}	shortestPathResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/computeRoutes [get]
func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := shortestPathRequest{
		Start: query.Get("start"),
		End:   query.Get("end"),
		Time:  query.Get("time"),
	}

	if err := validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	stops, totalCongestion, err := api.routingService.ShortestPath(request.Start, request.End, departure(request.Time))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewShortestPathResponse(stops, totalCongestion)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// batchShortestPath
//
//	@Summary		least congested routes for up to 100 location pairs
//	@Accept			json
//	@Produce		json
//	@Param			body	body		batchShortestPathRequest	true	"queries"
//	@Success		200		{array}		batchItemResponse
//	@Failure		400		{object}	errorResponse
//	@Router			/computeRoutes/batch [post]
func (api *routingAPI) batchShortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request batchShortestPathRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	queries := make([]engine.Query, len(request.Queries))
	for i, q := range request.Queries {
		queries[i] = engine.Query{Start: q.Start, End: q.End, Departure: departure(q.Time)}
	}

	results := api.routingService.ShortestPaths(r.Context(), queries)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewBatchResponse(results)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// locations
//
//	@Summary	known locations, in order of first observation
//	@Produce	json
//	@Success	200	{object}	locationsResponse
//	@Router		/locations [get]
func (api *routingAPI) locations(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	resp := locationsResponse{
		Locations: api.routingService.Locations(),
		Stats:     api.routingService.Stats(),
	}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// departure parses an already validated HH:MM value, empty means now.
func departure(clock string) time.Time {
	if clock == "" {
		return time.Now()
	}
	t, err := util.ParseClock(clock)
	if err != nil {
		return time.Now()
	}
	return t
}
