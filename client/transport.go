package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/itm-clinic/clinic-client/internal/errors"
)

// transport is the bottom of the pipeline. Non-2xx responses come back as
// both a Response and an *Error.
func (c *Client) transport(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: MsgDefault, Method: req.Method, Path: req.Path, Err: err}
	}

	httpResp, err := c.doer.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(req, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, c.maxResponseBytes+1))
	if err != nil {
		return nil, newNetworkError(req, err)
	}
	if int64(len(body)) > c.maxResponseBytes {
		return nil, &Error{
			Kind:       KindUnknown,
			StatusCode: httpResp.StatusCode,
			Message:    MsgDefault,
			Method:     req.Method,
			Path:       req.Path,
			Err:        errors.ErrResponseTooLarge,
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
		Request:    req,
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, newHTTPError(req, resp)
	}
	return resp, nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	contentType := "application/json"
	switch {
	case req.RawBody != nil:
		body = bytes.NewReader(req.RawBody)
		if req.ContentType != "" {
			contentType = req.ContentType
		}
	case req.Body != nil:
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: encode body: %w", errors.ErrInvalidRequest, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidRequest, err)
	}
	for k, v := range req.Header {
		httpReq.Header[k] = append([]string(nil), v...)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", contentType)
	}
	return httpReq, nil
}
