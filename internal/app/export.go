package app

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gin-gonic/gin"
)

// CSVFilename is the attachment name of the mileage report.
const CSVFilename = "mileage-report.csv"

// csvHeader is the fixed 7-column mileage report header.
var csvHeader = []string{"Date", "Type", "Postcode Start", "Postcode End", "Destination", "Purpose", "Miles"}

// ErrNoData is returned when an export is requested with zero journeys.
var ErrNoData = errors.New("no data to export")

// ReportRows maps journeys to report rows in export column order.
func ReportRows(events []Event) []ReportRow {
	rows := make([]ReportRow, 0, len(events))
	for _, ev := range events {
		rows = append(rows, ReportRow{
			Day:           ev.Day,
			Type:          ev.Type,
			StartPostcode: ev.StartPostcode,
			EndPostcode:   ev.EndPostcode,
			Destination:   ev.Destination,
			Purpose:       ev.Purpose,
			Miles:         ev.Miles,
		})
	}
	return rows
}

// WriteCSV renders the mileage report. Fields pass through encoding/csv, so
// embedded delimiters are quoted; clean fields serialize bare.
func WriteCSV(w io.Writer, events []Event) error {
	if len(events) == 0 {
		return ErrNoData
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range ReportRows(events) {
		record := []string{row.Day, row.Type, row.StartPostcode, row.EndPostcode, row.Destination, row.Purpose, row.Miles}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// weekdayDate returns the date of the named weekday in the week containing
// now (weeks anchored on Monday).
func weekdayDate(now time.Time, day string) time.Time {
	offset := int(now.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday := now.AddDate(0, 0, -offset)
	for i, d := range Days {
		if d == day {
			return monday.AddDate(0, 0, i)
		}
	}
	return monday
}

// BuildICS renders the journeys as an iCalendar feed anchored to the current
// week, one event per journey.
func BuildICS(events []Event, now time.Time) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//mileage-scheduler//EN")

	for _, ev := range events {
		start, err := parseHHMM(ev.StartTime)
		if err != nil {
			return "", fmt.Errorf("journey %s: %w", ev.ID, err)
		}
		end, err := parseHHMM(ev.EndTime)
		if err != nil {
			return "", fmt.Errorf("journey %s: %w", ev.ID, err)
		}

		date := weekdayDate(now, ev.Day)
		startAt := time.Date(date.Year(), date.Month(), date.Day(), start.Hour(), start.Minute(), 0, 0, time.UTC)
		endAt := time.Date(date.Year(), date.Month(), date.Day(), end.Hour(), end.Minute(), 0, 0, time.UTC)

		e := cal.AddEvent(fmt.Sprintf("%s@mileage-scheduler", ev.ID))
		e.SetDtStampTime(now.UTC())
		e.SetStartAt(startAt)
		e.SetEndAt(endAt)
		e.SetSummary(ev.Name)
		e.SetLocation(ev.Destination)
		e.SetDescription(fmt.Sprintf("%s, %s to %s, %s miles", ev.Purpose, ev.StartPostcode, ev.EndPostcode, ev.Miles))
	}
	return cal.Serialize(), nil
}

// GET /api/report
// One row per journey, replacing whatever the client showed before.
func (a *App) ReportHandler(c *gin.Context) {
	events, err := a.Store.ListEvents(c.Request.Context(), currentUserID(c))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": ReportRows(events), "count": len(events)})
}

// GET /api/report/csv
// Offers the mileage report as a CSV download. With zero journeys the user
// is told there is nothing to export and no file is produced.
func (a *App) ReportCSVHandler(c *gin.Context) {
	events, err := a.Store.ListEvents(c.Request.Context(), currentUserID(c))
	if err != nil {
		storeError(c, err)
		return
	}
	if len(events) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNoData.Error()})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", CSVFilename))
	if err := WriteCSV(c.Writer, events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate csv"})
	}
}

// GET /api/report/ics
// Serves the weekly journeys as a calendar feed.
func (a *App) ReportICSHandler(c *gin.Context) {
	events, err := a.Store.ListEvents(c.Request.Context(), currentUserID(c))
	if err != nil {
		storeError(c, err)
		return
	}
	if len(events) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNoData.Error()})
		return
	}

	feed, err := BuildICS(events, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate calendar"})
		return
	}
	c.Header("Content-Type", "text/calendar; charset=utf-8")
	c.String(http.StatusOK, feed)
}
