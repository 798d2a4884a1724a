package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Physical is an image size in inches as measured by the storefront.
type Physical struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Dimensions asks the storefront for the physical size of an image.
func (c *Client) Dimensions(ctx context.Context, name string, r io.Reader) (Physical, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.postForm(ctx, pathDimensions, nil, &formFile{field: "file", name: name, body: r})
	if err != nil {
		return Physical{}, fmt.Errorf("%w: %s: %w", ErrDimensions, name, err)
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return Physical{}, statusError(ErrDimensions, resp, "could not read image dimensions")
	}

	var p Physical
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Physical{}, fmt.Errorf("%w: decode response: %v", ErrDimensions, err)
	}

	c.logger.Debug("dimensions received", "file", name, "width", p.Width, "height", p.Height)
	return p, nil
}
