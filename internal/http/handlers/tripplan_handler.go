// README: AI trip-planner endpoint.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rentbus/internal/modules/tripplan"
)

// Model calls can take a while; bound them so a stuck upstream does not
// pin the connection.
const planTimeout = 30 * time.Second

type TripPlanHandler struct {
	planner *tripplan.Service
}

func NewTripPlanHandler(svc *tripplan.Service) *TripPlanHandler {
	return &TripPlanHandler{planner: svc}
}

type planReq struct {
	Pickup      string `json:"pickup"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Passengers  int    `json:"passengers"`
	TripType    string `json:"trip_type"`
}

func (h *TripPlanHandler) Create(c *gin.Context) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	plan, err := h.planner.Plan(ctx, tripplan.PlanRequest{
		Pickup:      req.Pickup,
		Destination: req.Destination,
		Date:        req.Date,
		Time:        req.Time,
		Passengers:  req.Passengers,
		TripType:    req.TripType,
		Language:    string(requestLanguage(c)),
	})
	if err != nil {
		writeTripPlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"plan": plan})
}
