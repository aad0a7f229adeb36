// Package alquran fetches the chapter catalogue and verse texts from the AlQuran Cloud API.
package alquran

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/restclient"
)

// Client talks to the AlQuran Cloud HTTP API.
type Client struct {
	rest *restclient.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	rest, err := restclient.New(baseURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("alquran: %w", err)
	}
	return &Client{rest: rest}, nil
}

type surahsResponse struct {
	Code int              `json:"code"`
	Data []entities.Surah `json:"data"`
}

type ayahsResponse struct {
	Code int `json:"code"`
	Data struct {
		Ayahs []entities.Ayah `json:"ayahs"`
	} `json:"data"`
}

// Surahs returns all 114 chapters.
func (c *Client) Surahs(ctx context.Context) ([]entities.Surah, error) {
	var payload surahsResponse
	if err := c.rest.Get(ctx, "/surah", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch surahs: %w", err)
	}
	if payload.Code != 200 {
		return nil, fmt.Errorf("fetch surahs: api code %d", payload.Code)
	}
	return payload.Data, nil
}

// Ayahs returns the verses of chapter in the given edition.
func (c *Client) Ayahs(ctx context.Context, chapter int, edition string) ([]entities.Ayah, error) {
	path := "/surah/" + strconv.Itoa(chapter) + "/" + edition

	var payload ayahsResponse
	if err := c.rest.Get(ctx, path, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch ayahs %d/%s: %w", chapter, edition, err)
	}
	if payload.Code != 200 {
		return nil, fmt.Errorf("fetch ayahs %d/%s: api code %d", chapter, edition, payload.Code)
	}
	return payload.Data.Ayahs, nil
}
