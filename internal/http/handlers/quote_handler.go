// README: Quote endpoint: form fields in, itemized breakdown out.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rentbus/internal/modules/content"
	"rentbus/internal/modules/pricing"
	"rentbus/internal/types"
)

type QuoteHandler struct {
	pricing *pricing.Service
}

func NewQuoteHandler(svc *pricing.Service) *QuoteHandler {
	return &QuoteHandler{pricing: svc}
}

// quoteReq mirrors the booking form: passengers arrives as a string
// because that is what the select control submits.
type quoteReq struct {
	Service    string `json:"service"`
	Passengers string `json:"passengers"`
	Date       string `json:"date"` // "2026-09-10"
	Time       string `json:"time"` // "14:30"
	Pickup     string `json:"pickup"`
	Dropoff    string `json:"dropoff"`
}

// quoteLine is one display row of the breakdown.
type quoteLine struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type quoteResp struct {
	Breakdown *pricing.Breakdown `json:"breakdown"`
	Lines     []quoteLine        `json:"lines"`
	PerPerson string             `json:"per_person"`
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Service == "" || req.Passengers == "" || req.Date == "" || req.Time == "" {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}

	passengers, err := strconv.Atoi(req.Passengers)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid passenger count")
		return
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid date")
		return
	}
	hhmm, err := time.Parse("15:04", req.Time)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid time")
		return
	}

	b, err := h.pricing.Quote(c.Request.Context(), pricing.QuoteRequest{
		Service:    pricing.ServiceKey(req.Service),
		Passengers: passengers,
		Date:       date,
		Hour:       hhmm.Hour(),
		Minute:     hhmm.Minute(),
		Pickup:     req.Pickup,
		Dropoff:    req.Dropoff,
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	lang := requestLanguage(c)
	writeJSON(c, http.StatusOK, quoteResp{
		Breakdown: b,
		Lines:     breakdownLines(b, content.BreakdownLabels(lang)),
		PerPerson: b.PerPerson.String(),
	})
}

// breakdownLines renders the display rows. Zero surcharges are omitted;
// base price and total always appear.
func breakdownLines(b *pricing.Breakdown, labels content.Labels) []quoteLine {
	lines := []quoteLine{{Label: labels.BasePrice, Amount: b.BasePrice.String()}}
	optional := []struct {
		label  string
		amount types.Money
	}{
		{labels.PeakTime, b.PeakTimeSurcharge},
		{labels.Weekend, b.WeekendSurcharge},
		{labels.Distance, b.DistanceFee},
		{labels.ExtraPassengers, b.ExtraPassengerFee},
		{labels.LastMinute, b.LastMinuteSurcharge},
	}
	for _, row := range optional {
		if !row.amount.IsZero() {
			lines = append(lines, quoteLine{Label: row.label, Amount: row.amount.String()})
		}
	}
	return append(lines, quoteLine{Label: labels.Total, Amount: b.Total.String()})
}
