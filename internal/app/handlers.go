package app

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// saveJourneyReq is the booking form payload. The server derives postcodes,
// destination and miles from the chosen sites; clients never send them.
type saveJourneyReq struct {
	Name      string `json:"name" binding:"required"`
	StartSite string `json:"start_site"`
	EndSite   string `json:"end_site"`
	Purpose   string `json:"purpose"`
	Type      string `json:"type"`
	Day       string `json:"day"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// journeyForm mirrors the booking form for edit prefill: stored postcodes
// converted back to site names by reverse lookup.
type journeyForm struct {
	Name      string `json:"name"`
	StartSite string `json:"start_site"`
	EndSite   string `json:"end_site"`
	Purpose   string `json:"purpose"`
	Type      string `json:"type"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func storeError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "journey not found"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
}

// buildEvent constructs the full journey record from the form, resolving
// postcodes and distance through the site registry. Absent registry entries
// become sentinels, never errors.
func buildEvent(userID string, req saveJourneyReq) *Event {
	miles := MilesUnknown
	if d, ok := DistanceBetween(req.StartSite, req.EndSite); ok {
		miles = strconv.FormatFloat(d, 'f', -1, 64)
	}
	return &Event{
		UserID:        userID,
		Day:           req.Day,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Name:          strings.TrimSpace(req.Name),
		Purpose:       req.Purpose,
		Type:          req.Type,
		StartPostcode: PostcodeOf(req.StartSite),
		EndPostcode:   PostcodeOf(req.EndSite),
		Destination:   req.EndSite,
		Miles:         miles,
	}
}

// validateSlotRange checks the day and the half-open time interval against
// the fixed grid.
func validateSlotRange(day, start, end string) error {
	if day == "" {
		return errors.New("day is required")
	}
	if !ValidDay(day) {
		return errors.New("day must be a weekday")
	}
	if !ValidSlotTime(start) {
		return errors.New("start_time is not a grid slot")
	}
	if end != "16:00" && !ValidSlotTime(end) {
		return errors.New("end_time is not a grid slot")
	}
	if start >= end {
		return errors.New("start_time must be before end_time")
	}
	return nil
}

// overlaps reports whether [s1,e1) and [s2,e2) intersect.
func overlaps(s1, e1, s2, e2 string) bool {
	return s1 < e2 && s2 < e1
}

// checkOverlap rejects a journey whose interval intersects another journey on
// the same day. skipID exempts the journey being replaced.
func (a *App) checkOverlap(c *gin.Context, ev *Event, skipID string) (bool, error) {
	existing, err := a.Store.ListEvents(c.Request.Context(), ev.UserID)
	if err != nil {
		return false, err
	}
	for _, other := range existing {
		if other.ID == skipID || other.Day != ev.Day {
			continue
		}
		if overlaps(ev.StartTime, ev.EndTime, other.StartTime, other.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

// GET /api/grid
// Returns the painted week for the signed-in user. Booked state is derived
// wholesale from the current journey list on every request.
func (a *App) GridHandler(c *gin.Context) {
	events, err := a.Store.ListEvents(c.Request.Context(), currentUserID(c))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, BuildGrid(events))
}

// GET /api/sites
// Returns the site registry for the booking form's site selectors.
func (a *App) SitesHandler(c *gin.Context) {
	sites := make([]gin.H, 0, len(sitePostcodes))
	for _, name := range SiteNames() {
		sites = append(sites, gin.H{"name": name, "postcode": PostcodeOf(name)})
	}
	c.JSON(http.StatusOK, gin.H{"sites": sites})
}

// GET /api/journeys
func (a *App) ListJourneysHandler(c *gin.Context) {
	events, err := a.Store.ListEvents(c.Request.Context(), currentUserID(c))
	if err != nil {
		storeError(c, err)
		return
	}
	if events == nil {
		events = []Event{}
	}
	c.JSON(http.StatusOK, events)
}

// GET /api/journeys/:id
// Returns the journey plus the booking form prefill, with site names
// recovered from the stored postcodes.
func (a *App) GetJourneyHandler(c *gin.Context) {
	ev, err := a.Store.GetEvent(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"journey": ev,
		"form": journeyForm{
			Name:      ev.Name,
			StartSite: SiteByPostcode(ev.StartPostcode),
			EndSite:   SiteByPostcode(ev.EndPostcode),
			Purpose:   ev.Purpose,
			Type:      ev.Type,
			Day:       ev.Day,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
		},
	})
}

// POST /api/journeys
func (a *App) CreateJourneyHandler(c *gin.Context) {
	var req saveJourneyReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateSlotRange(req.Day, req.StartTime, req.EndTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev := buildEvent(currentUserID(c), req)
	clash, err := a.checkOverlap(c, ev, "")
	if err != nil {
		storeError(c, err)
		return
	}
	if clash {
		c.JSON(http.StatusConflict, gin.H{"error": "slot already booked"})
		return
	}

	id, err := a.Store.CreateEvent(c.Request.Context(), ev)
	if err != nil {
		storeError(c, err)
		return
	}
	ev.ID = id
	c.JSON(http.StatusCreated, ev)
}

// PUT /api/journeys/:id
// Full overwrite. A request without a day keeps the stored journey's day,
// mirroring the booking form where the day comes from the clicked slot.
func (a *App) ReplaceJourneyHandler(c *gin.Context) {
	id := c.Param("id")
	userID := currentUserID(c)

	var req saveJourneyReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Day == "" {
		existing, err := a.Store.GetEvent(c.Request.Context(), userID, id)
		if err != nil {
			storeError(c, err)
			return
		}
		req.Day = existing.Day
	}
	if err := validateSlotRange(req.Day, req.StartTime, req.EndTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev := buildEvent(userID, req)
	clash, err := a.checkOverlap(c, ev, id)
	if err != nil {
		storeError(c, err)
		return
	}
	if clash {
		c.JSON(http.StatusConflict, gin.H{"error": "slot already booked"})
		return
	}

	if err := a.Store.ReplaceEvent(c.Request.Context(), id, ev); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}
