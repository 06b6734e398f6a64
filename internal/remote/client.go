package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"fitpick/internal/domain"
)

// Client talks to a fitserver at Base.
type Client struct {
	Base string
	HTTP *http.Client
}

// New returns a client for base. A nil hc uses http.DefaultClient.
func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{Base: base, HTTP: hc}
}

// Error is a failure reported by the server.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("fitserver: %d %s", e.Status, e.Code)
	}
	return e.Message
}

// Unwrap returns the domain sentinel for Code, if any.
func (e *Error) Unwrap() error { return domain.ErrorForCode(e.Code) }

type envelope struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (c *Client) ResolveFit(ctx context.Context, name string) (domain.FitDefinition, error) {
	var out domain.FitDefinition
	if err := c.get(ctx, "/api/fits/"+url.PathEscape(name), nil, &out); err != nil {
		return domain.FitDefinition{}, err
	}
	return out, nil
}

func (c *Client) ListFits(ctx context.Context) ([]domain.FitDefinition, error) {
	var out []domain.FitDefinition
	if err := c.get(ctx, "/api/fits", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ComputeLimits(ctx context.Context, class domain.ToleranceClass, nominalMM float64) (domain.DimensionLimits, error) {
	q := url.Values{}
	q.Set("class", class.String())
	q.Set("nominal_mm", formatMM(nominalMM))
	var out domain.DimensionLimits
	if err := c.get(ctx, "/api/limits", q, &out); err != nil {
		return domain.DimensionLimits{}, err
	}
	return out, nil
}

func (c *Client) ComputeFit(ctx context.Context, req domain.FitRequest) (domain.FitReport, error) {
	var out domain.FitReport
	if err := c.post(ctx, "/api/fit", req, &out); err != nil {
		return domain.FitReport{}, err
	}
	return out, nil
}

func (c *Client) Sweep(ctx context.Context, nominalMM float64) ([]domain.SweepEntry, error) {
	q := url.Values{}
	q.Set("nominal_mm", formatMM(nominalMM))
	var out []domain.SweepEntry
	if err := c.get(ctx, "/api/sweep", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Reference(ctx context.Context) (domain.ReferenceInfo, error) {
	var out domain.ReferenceInfo
	if err := c.get(ctx, "/api/reference", nil, &out); err != nil {
		return domain.ReferenceInfo{}, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.Base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || env.Error.Code == "" {
		return &Error{Status: resp.StatusCode, Code: domain.CodeInternal, Message: fmt.Sprintf("fitserver: %s", resp.Status)}
	}
	return &Error{Status: resp.StatusCode, Code: env.Error.Code, Message: env.Error.Message}
}

func formatMM(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

var _ domain.Engine = (*Client)(nil)
