// Package cobalt resolves media through a cobalt instance.
package cobalt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/samber/mo"
	"github.com/vidgrab/vidgrab/log"
	"github.com/vidgrab/vidgrab/network"
	"github.com/vidgrab/vidgrab/source"
)

const (
	ID       = "cobalt"
	Name     = "Cobalt"
	Endpoint = "https://api.cobalt.tools/api/json"
)

// cobalt always answers with a single rendition at the requested quality.
const (
	quality = "1080p"
	format  = "mp4"
)

type request struct {
	URL         string `json:"url"`
	VCodec      string `json:"vCodec"`
	VQuality    string `json:"vQuality"`
	AFormat     string `json:"aFormat"`
	IsAudioOnly bool   `json:"isAudioOnly"`
}

type response struct {
	Status   string `json:"status"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Thumb    string `json:"thumb"`
	Text     string `json:"text"`
}

// Cobalt implements source.Source on top of the cobalt JSON API.
type Cobalt struct {
	client   *http.Client
	endpoint string
	apiKey   mo.Option[string]
}

// New returns a cobalt source posting to endpoint.
// When apiKey is present it is sent as an Api-Key authorization header.
func New(client *http.Client, endpoint string, apiKey mo.Option[string]) *Cobalt {
	if endpoint == "" {
		endpoint = Endpoint
	}
	return &Cobalt{client: client, endpoint: endpoint, apiKey: apiKey}
}

func (c *Cobalt) Name() string {
	return Name
}

func (c *Cobalt) ID() string {
	return ID
}

func (c *Cobalt) Resolve(ctx context.Context, url string) source.Outcome {
	resp, err := c.request(ctx, url)
	if err != nil {
		return source.Fail(ID, err)
	}

	if resp.Status != "success" && resp.URL == "" {
		if resp.Text != "" {
			return source.Fail(ID, fmt.Errorf("%w: %s", source.ErrNoMedia, resp.Text))
		}
		return source.Fail(ID, source.ErrNoMedia)
	}

	// a "success" status without a link is not downloadable
	if resp.URL == "" {
		return source.Fail(ID, source.ErrNoMedia)
	}

	record := source.NewRecord(ID, resp.Filename, source.NewRendition(resp.URL, quality, format))
	record.Thumbnail = source.Text(resp.Thumb)

	log.With(log.Fields{"provider": ID}).Debugf("resolved %s", url)
	return source.Ok(record)
}

func (c *Cobalt) request(ctx context.Context, url string) (*response, error) {
	body, err := json.Marshal(request{
		URL:      url,
		VCodec:   "h264",
		VQuality: "1080",
		AFormat:  "mp3",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := network.NewRequest(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if key, ok := c.apiKey.Get(); ok {
		req.Header.Set("Authorization", "Api-Key "+key)
	}

	var resp response
	if err := network.DecodeJSON(c.client, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
