package provider

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"

	"github.com/vidgrab/vidgrab/internal/scraper"
	"github.com/vidgrab/vidgrab/log"
	"github.com/vidgrab/vidgrab/where"
)

// Install downloads the Lua adapter at rawURL into the sources directory and
// returns the path it was written to. changed is false when the installed copy was already current.
func Install(ctx context.Context, rawURL string) (dest string, changed bool, err error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false, err
	}

	name := path.Base(parsed.Path)
	if filepath.Ext(name) != ".lua" {
		return "", false, fmt.Errorf("%s does not point to a .lua script", rawURL)
	}

	dest = filepath.Join(where.Sources(), name)
	changed, err = scraper.Install(ctx, rawURL, dest)
	if err != nil {
		log.Warnf("install %s: %v", rawURL, err)
		return "", false, err
	}

	if changed {
		log.Infof("installed provider script %s", dest)
	}
	return dest, changed, nil
}
