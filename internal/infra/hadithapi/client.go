// Package hadithapi downloads hadith collections from the fawazahmed0 hadith-api CDN.
package hadithapi

import (
	"context"
	"fmt"
	"time"

	"github.com/aliskhannn/nurul-islam-bot/internal/infra/restclient"
)

// Client fetches whole editions; each edition is one static JSON file.
type Client struct {
	rest *restclient.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	rest, err := restclient.New(baseURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("hadithapi: %w", err)
	}
	return &Client{rest: rest}, nil
}

// Narration is a single entry of an edition.
type Narration struct {
	Number float64 `json:"hadithnumber"`
	Text   string  `json:"text"`
}

type editionResponse struct {
	Hadiths []Narration `json:"hadiths"`
}

// Edition names follow "{lang}-{slug}", e.g. "ben-bukhari" or "ara-bukhari".
func Edition(lang, slug string) string {
	return lang + "-" + slug
}

// Hadiths returns every narration of an edition in file order.
func (c *Client) Hadiths(ctx context.Context, edition string) ([]Narration, error) {
	var payload editionResponse
	if err := c.rest.Get(ctx, "/"+edition+".min.json", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch hadiths %s: %w", edition, err)
	}
	return payload.Hadiths, nil
}
