package client

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// Request is one logical API call. The pipeline may send it twice: once, and
// once more after a successful token refresh.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header

	// Body is JSON-encoded. RawBody, when set, is sent as-is with ContentType.
	Body        any
	RawBody     []byte
	ContentType string

	// Silent suppresses the failure toast for this call.
	Silent bool

	retried   bool
	sentToken string
}

func NewRequest(method, path string) *Request {
	return &Request{Method: method, Path: path, Header: http.Header{}}
}

func (r *Request) WithQuery(q url.Values) *Request {
	r.Query = q
	return r
}

func (r *Request) WithBody(body any) *Request {
	r.Body = body
	return r
}

func (r *Request) WithRawBody(contentType string, body []byte) *Request {
	r.ContentType = contentType
	r.RawBody = body
	return r
}

func (r *Request) WithSilent() *Request {
	r.Silent = true
	return r
}

// Retried reports whether this is the replay after a refresh.
func (r *Request) Retried() bool {
	return r.retried
}

func (r *Request) clone() *Request {
	c := *r
	c.Header = r.Header.Clone()
	if c.Header == nil {
		c.Header = http.Header{}
	}
	if r.Query != nil {
		c.Query = make(url.Values, len(r.Query))
		for k, v := range r.Query {
			c.Query[k] = append([]string(nil), v...)
		}
	}
	return &c
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Request    *Request
}

func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}
