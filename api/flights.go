package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skyways/skybook/internal/domain"
	"github.com/skyways/skybook/internal/search"
	"github.com/skyways/skybook/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.search)
	router.GET("/:id", h.get)
}

type searchResponse struct {
	Outbound []domain.Flight `json:"outbound"`
	Return   []domain.Flight `json:"return,omitempty"`
}

func (h *FlightHandler) search(c *gin.Context) {
	query := search.ParseQuery(c.Request.URL.Query())
	spec := parseFilterSpec(c)
	key, order := parseSort(c)

	outbound, err := h.service.Search(c.Request.Context(), query.Criteria(), spec, key, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := searchResponse{Outbound: outbound}
	if query.RoundTrip() {
		ret, err := h.service.Search(c.Request.Context(), query.ReturnCriteria(), spec, key, order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp.Return = ret
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func parseFilterSpec(c *gin.Context) search.FilterSpec {
	spec := search.FilterSpec{
		Stops:     search.StopsFilter(c.DefaultQuery("stops", string(search.StopsAll))),
		Departure: search.DepartureWindow(c.DefaultQuery("departureTime", string(search.DepartureAll))),
	}
	if v, err := strconv.ParseFloat(c.Query("priceMin"), 64); err == nil {
		spec.PriceMin = v
	}
	if v, err := strconv.ParseFloat(c.Query("priceMax"), 64); err == nil {
		spec.PriceMax = v
	}
	if raw := c.Query("airlines"); raw != "" {
		spec.Airlines = strings.Split(raw, ",")
	}
	return spec
}

func parseSort(c *gin.Context) (search.SortKey, search.SortOrder) {
	key := search.SortKey(c.DefaultQuery("sortBy", string(search.SortByPrice)))
	order := search.SortOrder(c.DefaultQuery("order", string(search.Asc)))
	return key, order
}
