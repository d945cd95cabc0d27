//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package reader

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// FetchURL downloads the content behind urlStr and returns the body along
// with a display name derived from the URL path. The caller closes the body.
func FetchURL(urlStr string) (io.ReadCloser, string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, "", fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, "", fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
	}

	resp, err := http.Get(parsed.String())
	if err != nil {
		return nil, "", fmt.Errorf("failed to download %s: %w", urlStr, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", fmt.Errorf("HTTP request failed with status: %d", resp.StatusCode)
	}

	return resp.Body, nameFromURL(parsed), nil
}

// nameFromURL derives a document name from the last URL path element.
func nameFromURL(parsed *url.URL) string {
	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		return parsed.Host
	}
	return strings.TrimSuffix(name, path.Ext(name))
}
