package meta

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Client fetches manifests and artifacts over HTTP. The zero value uses
// http.DefaultClient and the hosted ManifestURL. Network failures, non-2xx
// statuses, and decode failures all surface as a single wrapped error per
// call; there is no retry
type Client struct {
	// HTTP overrides the underlying http client
	HTTP *http.Client
	// ManifestURL overrides where the root manifest is fetched from
	ManifestURL string
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) manifestURL() string {
	if c.ManifestURL != "" {
		return c.ManifestURL
	}
	return ManifestURL
}

// get performs one request and fails on any non-2xx status. The caller owns
// the returned body
func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	log.WithField("url", url).Debug("fetching")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", url)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, errors.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	return resp.Body, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v interface{}) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return errors.Wrapf(err, "decoding %s", url)
	}
	return nil
}

// RootManifest fetches and decodes the root version manifest
func (c *Client) RootManifest(ctx context.Context) (*RootManifest, error) {
	return c.RootManifestFrom(ctx, c.manifestURL())
}

// RootManifestFrom fetches the root manifest from an explicit url
func (c *Client) RootManifestFrom(ctx context.Context, url string) (*RootManifest, error) {
	var manifest RootManifest
	if err := c.getJSON(ctx, url, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// VersionManifest fetches the per-version manifest a release points at
func (c *Client) VersionManifest(ctx context.Context, release *VersionRelease) (*VersionManifest, error) {
	var manifest VersionManifest
	if err := c.getJSON(ctx, release.URL, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// Download fetches an artifact fully into memory
func (c *Client) Download(ctx context.Context, info DownloadInfo) ([]byte, error) {
	return c.download(ctx, info.URL)
}

// DownloadString fetches a text artifact, such as a mapping file
func (c *Client) DownloadString(ctx context.Context, info DownloadInfo) (string, error) {
	data, err := c.download(ctx, info.URL)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DownloadStream returns the artifact body for streaming reads; the caller
// closes it
func (c *Client) DownloadStream(ctx context.Context, info DownloadInfo) (io.ReadCloser, error) {
	return c.get(ctx, info.URL)
}

func (c *Client) download(ctx context.Context, url string) ([]byte, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", url)
	}
	return data, nil
}

// LibraryFile pairs downloaded library content with the repository path it
// belongs at
type LibraryFile struct {
	Path string
	Data []byte
}

// LibraryFiles is the result of downloading one library: its main artifact
// and, when one exists for the current operating system, its natives jar
type LibraryFiles struct {
	Artifact LibraryFile
	Native   *LibraryFile
}

// DownloadLibrary fetches a library's artifact and native classifier. It
// returns nil with no error when the library's rules exclude the current
// operating system
func (c *Client) DownloadLibrary(ctx context.Context, lib *Library) (*LibraryFiles, error) {
	if !lib.Allowed() {
		log.WithField("library", lib.Name).Debug("skipping disallowed library")
		return nil, nil
	}

	artifact := lib.Artifact()
	data, err := c.download(ctx, artifact.URL)
	if err != nil {
		return nil, err
	}
	files := &LibraryFiles{
		Artifact: LibraryFile{Path: artifact.Path, Data: data},
	}

	if native := lib.Native(); native != nil {
		data, err := c.download(ctx, native.URL)
		if err != nil {
			return nil, err
		}
		files.Native = &LibraryFile{Path: native.Path, Data: data}
	}
	return files, nil
}
