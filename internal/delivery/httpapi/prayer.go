package httpapi

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/domain/qibla"
	"github.com/aliskhannn/nurul-islam-bot/internal/service"
)

const (
	noticeDefaultLocation = "location unavailable, showing Dhaka"
	noticeStaleSchedule   = "prayer time provider unavailable, showing the last known schedule"
	noticeNoHeading       = "no compass heading, relative bearing assumes the device faces north"
	noticeApproxQibla     = "location unavailable, bearing is approximate"
)

type pointResponse struct {
	Label  entities.PrayerLabel `json:"label"`
	Time   string               `json:"time"`
	Time12 string               `json:"time_12h"`
}

type scheduleResponse struct {
	Date     string          `json:"date"`
	Timezone string          `json:"timezone,omitempty"`
	City     string          `json:"city"`
	Method   int             `json:"method"`
	Points   []pointResponse `json:"points"`
	Stale    bool            `json:"stale"`
	Notice   string          `json:"notice,omitempty"`
}

type windowResponse struct {
	Schedule         scheduleResponse `json:"schedule"`
	Prev             pointResponse    `json:"prev"`
	Next             pointResponse    `json:"next"`
	SpanMinutes      int              `json:"span_minutes"`
	ElapsedMinutes   int              `json:"elapsed_minutes"`
	RemainingMinutes int              `json:"remaining_minutes"`
	Progress         float64          `json:"progress"`
}

type qiblaResponse struct {
	Bearing     float64  `json:"bearing"`
	Point       string   `json:"point"`
	Heading     *float64 `json:"heading,omitempty"`
	Relative    float64  `json:"relative"`
	Approximate bool     `json:"approximate"`
	Notice      string   `json:"notice,omitempty"`
}

func mapPoint(p entities.PrayerTimePoint) pointResponse {
	return pointResponse{
		Label:  p.Label,
		Time:   p.Clock.String(),
		Time12: p.Clock.Format12Hour(),
	}
}

func mapSchedule(t *service.PrayerTimes, defaultLocation bool) scheduleResponse {
	out := scheduleResponse{
		Date:     t.Schedule.Date,
		Timezone: t.Schedule.Timezone,
		City:     t.City,
		Method:   t.Method,
		Stale:    t.Stale,
	}
	for _, p := range t.Schedule.Points {
		out.Points = append(out.Points, mapPoint(p))
	}

	var notices []string
	if defaultLocation {
		out.City = entities.DefaultCity
		notices = append(notices, noticeDefaultLocation)
	}
	if t.Stale {
		notices = append(notices, noticeStaleSchedule)
	}
	out.Notice = strings.Join(notices, "; ")

	return out
}

// coordinateQuery reads lat and lng. When both are absent the second value is
// false and Dhaka is returned.
func coordinateQuery(c *gin.Context) (entities.GeoCoordinate, bool, *apiError) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" && lngStr == "" {
		return entities.Dhaka, false, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return entities.GeoCoordinate{}, false, badRequest("lat must be a number")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return entities.GeoCoordinate{}, false, badRequest("lng must be a number")
	}

	coord, err := entities.NewGeoCoordinate(lat, lng)
	if err != nil {
		return entities.GeoCoordinate{}, false, badRequest(err.Error())
	}
	return coord, true, nil
}

func methodQuery(c *gin.Context) (int, *apiError) {
	s := c.Query("method")
	if s == "" {
		return entities.DefaultCalculationMethod, nil
	}
	method, err := strconv.Atoi(s)
	if err != nil {
		return 0, badRequest("method must be an integer")
	}
	if _, ok := entities.LookupCalculationMethod(method); !ok {
		return 0, badRequest(service.ErrInvalidMethod.Error())
	}
	return method, nil
}

func (h *Handler) times(c *gin.Context) (*service.PrayerTimes, bool, *apiError) {
	coord, shared, apiErr := coordinateQuery(c)
	if apiErr != nil {
		return nil, false, apiErr
	}
	method, apiErr := methodQuery(c)
	if apiErr != nil {
		return nil, false, apiErr
	}

	t, err := h.services.Prayer.Times(c.Request.Context(), coord, method, h.now())
	if err != nil {
		return nil, false, fromError(err)
	}
	return t, !shared, nil
}

func (h *Handler) prayerTimes(c *gin.Context) (any, *apiError) {
	t, defaultLocation, apiErr := h.times(c)
	if apiErr != nil {
		return nil, apiErr
	}
	return mapSchedule(t, defaultLocation), nil
}

func (h *Handler) prayerWindow(c *gin.Context) (any, *apiError) {
	t, defaultLocation, apiErr := h.times(c)
	if apiErr != nil {
		return nil, apiErr
	}

	w := service.WindowAt(t.Schedule, h.now())
	return windowResponse{
		Schedule:         mapSchedule(t, defaultLocation),
		Prev:             mapPoint(w.Prev),
		Next:             mapPoint(w.Next),
		SpanMinutes:      w.Span,
		ElapsedMinutes:   w.Elapsed,
		RemainingMinutes: w.Remaining(),
		Progress:         w.Progress,
	}, nil
}

func (h *Handler) qiblaDirection(c *gin.Context) (any, *apiError) {
	coord, shared, apiErr := coordinateQuery(c)
	if apiErr != nil {
		return nil, apiErr
	}

	dir := qibla.Qibla(nil)
	if shared {
		var err error
		if dir, err = h.services.Qibla.DirectionFrom(coord); err != nil {
			return nil, fromError(err)
		}
	}

	var heading *float64
	if s := c.Query("heading"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, badRequest("heading must be a finite number")
		}
		heading = &v
	}

	reading, err := h.services.Qibla.Compass(dir, heading)
	if err != nil && !errors.Is(err, entities.ErrCapabilityUnavailable) {
		return nil, fromError(err)
	}

	var notices []string
	if dir.Approximate {
		notices = append(notices, noticeApproxQibla)
	}
	if heading == nil {
		notices = append(notices, noticeNoHeading)
	}

	return qiblaResponse{
		Bearing:     reading.Bearing,
		Point:       reading.Point,
		Heading:     heading,
		Relative:    reading.Relative,
		Approximate: dir.Approximate,
		Notice:      strings.Join(notices, "; "),
	}, nil
}
