// Package instavideo resolves media through the InstaVideo metadata API,
// which lists every format a yt-dlp extraction produced.
package instavideo

import (
	"context"
	"fmt"
	"math"
	"net/http"
	neturl "net/url"
	"strconv"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidgrab/vidgrab/log"
	"github.com/vidgrab/vidgrab/network"
	"github.com/vidgrab/vidgrab/source"
)

const (
	ID       = "instavideo"
	Name     = "InstaVideo"
	Endpoint = "https://instavideo-uhd.onrender.com/api/video-info"
)

// audioQuality labels formats that carry no video height.
const audioQuality = "Audio"

type item struct {
	URL      string   `json:"url"`
	Height   *float64 `json:"height"`
	Ext      string   `json:"ext"`
	Filesize *float64 `json:"filesize"`
	FPS      *float64 `json:"fps"`
}

type response struct {
	Title     string  `json:"title"`
	Thumbnail string  `json:"thumbnail"`
	Duration  any     `json:"duration"`
	Uploader  string  `json:"uploader"`
	ViewCount *int64  `json:"view_count"`
	Formats   []*item `json:"formats"`
}

type InstaVideo struct {
	client   *http.Client
	endpoint string
}

func New(client *http.Client, endpoint string) *InstaVideo {
	if endpoint == "" {
		endpoint = Endpoint
	}
	return &InstaVideo{client: client, endpoint: endpoint}
}

func (i *InstaVideo) Name() string {
	return Name
}

func (i *InstaVideo) ID() string {
	return ID
}

func (i *InstaVideo) Resolve(ctx context.Context, url string) source.Outcome {
	target := i.endpoint + "?url=" + neturl.QueryEscape(url)

	req, err := network.NewRequest(ctx, http.MethodGet, target, nil)
	if err != nil {
		return source.Fail(ID, err)
	}

	var resp response
	if err := network.DecodeJSON(i.client, req, &resp); err != nil {
		return source.Fail(ID, err)
	}

	formats := lo.Compact(resp.Formats)
	if len(formats) == 0 {
		return source.Fail(ID, source.ErrNoMedia)
	}

	renditions := lo.Map(formats, func(f *item, _ int) *source.Rendition {
		return toRendition(f)
	})

	record := source.NewRecord(ID, resp.Title, renditions...)
	record.Thumbnail = source.Text(resp.Thumbnail)
	record.Duration = duration(resp.Duration)
	record.Uploader = source.Text(resp.Uploader)
	if resp.ViewCount != nil && *resp.ViewCount >= 0 {
		record.Views = mo.Some(*resp.ViewCount)
	}

	log.With(log.Fields{"provider": ID}).Debugf("resolved %s with %d formats", url, len(renditions))
	return source.Ok(record)
}

func toRendition(f *item) *source.Rendition {
	quality := audioQuality
	if f.Height != nil && *f.Height > 0 {
		quality = fmt.Sprintf("%dp", int(*f.Height))
	}

	r := source.NewRendition(f.URL, quality, f.Ext)
	if f.Filesize != nil {
		r.WithSize(lo.ToPtr(int64(*f.Filesize)))
	}
	if f.FPS != nil {
		r.WithFPS(lo.ToPtr(int(math.Round(*f.FPS))))
	}
	return r
}

// duration keeps the provider value as text; numbers are seconds and are
// formatted for display later.
func duration(raw any) mo.Option[string] {
	switch v := raw.(type) {
	case string:
		return source.Text(v)
	case float64:
		return mo.Some(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return mo.None[string]()
	}
}
