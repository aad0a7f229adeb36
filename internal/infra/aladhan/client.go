// Package aladhan fetches prayer schedules and Hijri dates from the AlAdhan API.
package aladhan

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/restclient"
)

// Client talks to the AlAdhan HTTP API.
type Client struct {
	rest *restclient.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	rest, err := restclient.New(baseURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("aladhan: %w", err)
	}
	return &Client{rest: rest}, nil
}

type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
		Meta    struct {
			Timezone string `json:"timezone"`
		} `json:"meta"`
	} `json:"data"`
}

type hijriResponse struct {
	Code int `json:"code"`
	Data struct {
		Hijri struct {
			Day   string `json:"day"`
			Year  string `json:"year"`
			Month struct {
				En string `json:"en"`
			} `json:"month"`
		} `json:"hijri"`
	} `json:"data"`
}

// Timings returns the schedule for coord on date's calendar day.
func (c *Client) Timings(ctx context.Context, coord entities.GeoCoordinate, method int, date time.Time) (entities.DailySchedule, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	query.Set("method", strconv.Itoa(method))

	var payload timingsResponse
	if err := c.rest.Get(ctx, "/timings/"+date.Format("02-01-2006"), query, &payload); err != nil {
		return entities.DailySchedule{}, fmt.Errorf("fetch timings: %w", err)
	}
	if payload.Code != 200 {
		return entities.DailySchedule{}, fmt.Errorf("fetch timings: api code %d", payload.Code)
	}

	clocks := make(map[entities.PrayerLabel]entities.Clock, len(entities.ScheduleLabels))
	for _, label := range entities.ScheduleLabels {
		raw, ok := payload.Data.Timings[string(label)]
		if !ok {
			continue
		}
		clock, err := entities.ParseClock(raw)
		if err != nil {
			return entities.DailySchedule{}, fmt.Errorf("parse %s: %w", label, err)
		}
		clocks[label] = clock
	}

	schedule, err := entities.NewDailySchedule(date.Format(time.DateOnly), clocks)
	if err != nil {
		return entities.DailySchedule{}, err
	}
	schedule.Timezone = payload.Data.Meta.Timezone

	return schedule, nil
}

// HijriDate converts a Gregorian date and formats it as "day Month year AH".
func (c *Client) HijriDate(ctx context.Context, date time.Time) (string, error) {
	query := url.Values{}
	query.Set("date", date.Format("02-01-2006"))

	var payload hijriResponse
	if err := c.rest.Get(ctx, "/gToH", query, &payload); err != nil {
		return "", fmt.Errorf("fetch hijri date: %w", err)
	}
	if payload.Code != 200 {
		return "", fmt.Errorf("fetch hijri date: api code %d", payload.Code)
	}

	h := payload.Data.Hijri
	return fmt.Sprintf("%s %s %s AH", h.Day, h.Month.En, h.Year), nil
}
