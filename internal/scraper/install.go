package scraper

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"

	"github.com/vidgrab/vidgrab/filesystem"
	"github.com/vidgrab/vidgrab/network"
)

// maxScript caps downloaded adapter scripts.
const maxScript = 1 << 20

// Install downloads the script at remoteURL into localPath.
// It reports false when the local copy already has the same content.
// The file is replaced through a rename so a running resolution never sees a partial script.
func Install(ctx context.Context, remoteURL, localPath string) (bool, error) {
	req, err := network.NewRequest(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "*/*")

	resp, err := network.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("download script: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("download script: unexpected status %s", resp.Status)
	}

	remote, err := io.ReadAll(io.LimitReader(resp.Body, maxScript))
	if err != nil {
		return false, fmt.Errorf("read script: %w", err)
	}

	fs := filesystem.API()
	if local, err := fs.ReadFile(localPath); err == nil {
		if sha256.Sum256(local) == sha256.Sum256(remote) {
			return false, nil
		}
	}

	err = filesystem.Replace(localPath, func(w io.Writer) error {
		_, err := w.Write(remote)
		return err
	})
	if err != nil {
		return false, err
	}

	Forget(localPath)
	return true, nil
}
