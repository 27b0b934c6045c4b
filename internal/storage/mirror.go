package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
)

// MaxImageSize caps a mirrored image.
const MaxImageSize = 5 << 20

// Mirror downloads src and stores it under name. Only image responses are
// accepted.
func Mirror(ctx context.Context, client *http.Client, st Storage, name, src string) (PutResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return PutResult{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return PutResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PutResult{}, fmt.Errorf("fetch %s: %s", src, resp.Status)
	}
	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		return PutResult{}, fmt.Errorf("fetch %s: not an image (%s)", src, ct)
	}
	if resp.ContentLength > MaxImageSize {
		return PutResult{}, fmt.Errorf("fetch %s: image too large (%d bytes)", src, resp.ContentLength)
	}

	size := resp.ContentLength
	if size < 0 {
		size = 0
	}
	return st.Put(ctx, io.LimitReader(resp.Body, MaxImageSize), PutInput{
		Name:        name,
		Filename:    path.Base(req.URL.Path),
		ContentType: ct,
		Size:        size,
	})
}
