// Package ytdlp resolves media through a hosted yt-dlp download API.
package ytdlp

import (
	"context"
	"net/http"
	neturl "net/url"

	"github.com/samber/lo"
	"github.com/vidgrab/vidgrab/log"
	"github.com/vidgrab/vidgrab/network"
	"github.com/vidgrab/vidgrab/source"
)

const (
	ID       = "ytdlp"
	Name     = "yt-dlp"
	Endpoint = "https://yt-dlp-api.herokuapp.com/download"
)

const defaultQuality = "720p"

type response struct {
	DownloadURL string   `json:"download_url"`
	Title       string   `json:"title"`
	Thumbnail   string   `json:"thumbnail"`
	Quality     string   `json:"quality"`
	Format      string   `json:"format"`
	Filesize    *float64 `json:"filesize"`
}

type YtDlp struct {
	client   *http.Client
	endpoint string
}

func New(client *http.Client, endpoint string) *YtDlp {
	if endpoint == "" {
		endpoint = Endpoint
	}
	return &YtDlp{client: client, endpoint: endpoint}
}

func (y *YtDlp) Name() string {
	return Name
}

func (y *YtDlp) ID() string {
	return ID
}

func (y *YtDlp) Resolve(ctx context.Context, url string) source.Outcome {
	req, err := network.NewRequest(ctx, http.MethodGet, y.endpoint+"?url="+neturl.QueryEscape(url), nil)
	if err != nil {
		return source.Fail(ID, err)
	}

	var resp response
	if err := network.DecodeJSON(y.client, req, &resp); err != nil {
		return source.Fail(ID, err)
	}

	if resp.DownloadURL == "" {
		return source.Fail(ID, source.ErrNoMedia)
	}

	rendition := source.NewRendition(resp.DownloadURL, lo.Ternary(resp.Quality != "", resp.Quality, defaultQuality), resp.Format)
	if resp.Filesize != nil {
		rendition.WithSize(lo.ToPtr(int64(*resp.Filesize)))
	}

	record := source.NewRecord(ID, resp.Title, rendition)
	record.Thumbnail = source.Text(resp.Thumbnail)

	log.With(log.Fields{"provider": ID}).Debugf("resolved %s", url)
	return source.Ok(record)
}
