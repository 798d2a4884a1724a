package storefront

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/print-orders/internal/orders"
)

// FileUpload is one file submission tagged with its order.
type FileUpload struct {
	OrderID string
	File    orders.File
	Detail  orders.Detail
	IsLast  bool
}

// UploadResponse is the storefront's acknowledgement of a file.
type UploadResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// UploadFile submits a single file. The request is bounded by the configured
// file timeout; expiry returns ErrTimeout. A response that does not report
// success returns ErrUpload.
func (c *Client) UploadFile(ctx context.Context, up FileUpload) (UploadResponse, error) {
	detail, err := json.Marshal(up.Detail)
	if err != nil {
		return UploadResponse{}, fmt.Errorf("%w: encode detail: %v", ErrUpload, err)
	}

	fields := [][2]string{
		{"order_id", up.OrderID},
		{"fileDetails", string(detail)},
	}
	if up.IsLast {
		fields = append(fields, [2]string{"is_last_file", "true"})
	}

	rc, err := up.File.Open()
	if err != nil {
		return UploadResponse{}, fmt.Errorf("%w: open %s: %v", ErrUpload, up.File.Name(), err)
	}
	defer rc.Close()

	ctx, cancel := context.WithTimeout(ctx, c.fileTimeout)
	defer cancel()

	resp, err := c.postForm(ctx, pathUpload, fields, &formFile{field: "file", name: up.File.Name(), body: rc})
	if err != nil {
		return UploadResponse{}, err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return UploadResponse{}, statusError(ErrUpload, resp, "Upload failed")
	}

	var result UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if ctx.Err() != nil {
			return UploadResponse{}, classify(ctx.Err())
		}
		return UploadResponse{}, fmt.Errorf("%w: decode response: %v", ErrUpload, err)
	}

	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Upload failed"
		}
		return result, fmt.Errorf("%w: %s", ErrUpload, msg)
	}

	c.logger.Debug("file uploaded", "order_id", up.OrderID, "file", up.File.Name(), "last", up.IsLast)
	return result, nil
}
