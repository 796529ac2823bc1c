// Package client is a Go SDK for the specialist back office API. Edits go
// through an EditSession, which sends only what changed since the last save
// and skips the network entirely when nothing did.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Specialist is the API representation of a specialist.
type Specialist struct {
	ID                   uuid.UUID       `json:"id"`
	Slug                 string          `json:"slug"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	DurationDays         int             `json:"durationDays"`
	BasePrice            decimal.Decimal `json:"basePrice"`
	PlatformFee          decimal.Decimal `json:"platformFee"`
	FinalPrice           decimal.Decimal `json:"finalPrice"`
	IsDraft              bool            `json:"isDraft"`
	IsVerified           bool            `json:"isVerified"`
	VerificationStatus   string          `json:"verificationStatus"`
	AverageRating        decimal.Decimal `json:"averageRating"`
	TotalNumberOfRatings int             `json:"totalNumberOfRatings"`
	Version              uint            `json:"version"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
	Media                []Media         `json:"media"`
	Offerings            []OfferingLink  `json:"offerings"`
}

type Media struct {
	ID           uuid.UUID `json:"id"`
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mimeType"`
	Kind         string    `json:"kind"`
	DisplayOrder int       `json:"displayOrder"`
}

type OfferingLink struct {
	OfferingID uuid.UUID `json:"offeringId"`
	Title      string    `json:"title"`
	ImageKey   string    `json:"imageKey"`
}

type Quote struct {
	Tier struct {
		Name       string           `json:"name"`
		MinValue   decimal.Decimal  `json:"minValue"`
		MaxValue   *decimal.Decimal `json:"maxValue"`
		Percentage decimal.Decimal  `json:"percentage"`
	} `json:"tier"`
	Fee         decimal.Decimal `json:"fee"`
	FinalAmount decimal.Decimal `json:"finalAmount"`
}

// APIError is a non-2xx answer of the API.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Client talks to the back office API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// New returns a client for the API served at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}

	c := &Client{baseURL: u, http: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Create creates a specialist from a complete form.
func (c *Client) Create(ctx context.Context, form FormState, files []File) (*Specialist, error) {
	form = form.Normalized()
	title, description, duration, draft := form.Title, form.Description, form.DurationDays, form.IsDraft
	body := payload{
		title:        &title,
		description:  &description,
		durationDays: &duration,
		basePrice:    &form.BasePrice,
		isDraft:      &draft,
		offerings:    form.OfferingIDs,
		hasOfferings: true,
		files:        files,
	}

	var out Specialist
	if err := c.sendForm(ctx, http.MethodPost, "/v1/specialists", body, &out); err != nil {
		return nil, errors.Wrap(err, "create specialist")
	}

	return &out, nil
}

// Get fetches a specialist by id, drafts included.
func (c *Client) Get(ctx context.Context, id uuid.UUID) (*Specialist, error) {
	var out Specialist
	if err := c.do(ctx, http.MethodGet, "/v1/specialists/"+id.String(), nil, "", &out); err != nil {
		return nil, errors.Wrap(err, "get specialist")
	}

	return &out, nil
}

// Delete soft-deletes a specialist.
func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.do(ctx, http.MethodDelete, "/v1/specialists/"+id.String(), nil, "", nil); err != nil {
		return errors.Wrap(err, "delete specialist")
	}

	return nil
}

// QuoteFee asks the server for the fee of a base price.
func (c *Client) QuoteFee(ctx context.Context, amount decimal.Decimal) (*Quote, error) {
	var out Quote
	path := "/v1/fees/quote?amount=" + url.QueryEscape(amount.String())
	if err := c.do(ctx, http.MethodGet, path, nil, "", &out); err != nil {
		return nil, errors.Wrap(err, "quote fee")
	}

	return &out, nil
}

func (c *Client) update(ctx context.Context, id uuid.UUID, version uint, ch Changes, files []File) (*Specialist, error) {
	body := payload{
		title:        ch.Title,
		description:  ch.Description,
		durationDays: ch.DurationDays,
		basePrice:    ch.BasePrice,
		isDraft:      ch.IsDraft,
		offerings:    ch.Offerings,
		hasOfferings: len(ch.OfferingAdds) > 0 || len(ch.OfferingRemoves) > 0,
		files:        files,
		version:      &version,
	}

	var out Specialist
	if err := c.sendForm(ctx, http.MethodPatch, "/v1/specialists/"+id.String(), body, &out); err != nil {
		return nil, errors.Wrap(err, "update specialist")
	}

	return &out, nil
}

// payload is a create or update body. Nil fields are left out.
type payload struct {
	title        *string
	description  *string
	durationDays *int
	basePrice    *decimal.Decimal
	isDraft      *bool
	offerings    []uuid.UUID
	hasOfferings bool
	files        []File
	version      *uint
}

func (p payload) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	fields := [][2]string{}
	if p.title != nil {
		fields = append(fields, [2]string{"title", *p.title})
	}
	if p.description != nil {
		fields = append(fields, [2]string{"description", *p.description})
	}
	if p.durationDays != nil {
		fields = append(fields, [2]string{"duration_days", strconv.Itoa(*p.durationDays)})
	}
	if p.basePrice != nil {
		fields = append(fields, [2]string{"base_price", p.basePrice.String()})
	}
	if p.isDraft != nil {
		fields = append(fields, [2]string{"is_draft", strconv.FormatBool(*p.isDraft)})
	}
	if p.hasOfferings {
		ids := make([]string, 0, len(p.offerings))
		for _, id := range p.offerings {
			ids = append(ids, id.String())
		}
		raw, err := json.Marshal(ids)
		if err != nil {
			return nil, "", errors.Wrap(err, "encode services")
		}
		fields = append(fields, [2]string{"services", string(raw)})
	}
	if p.version != nil {
		fields = append(fields, [2]string{"expected_version", strconv.FormatUint(uint64(*p.version), 10)})
	}

	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return nil, "", errors.Wrapf(err, "write field %s", f[0])
		}
	}
	for _, f := range p.files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename=%q`, f.Name))
		h.Set("Content-Type", f.ContentType)
		w, err := mw.CreatePart(h)
		if err != nil {
			return nil, "", errors.Wrapf(err, "create part %s", f.Name)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, "", errors.Wrapf(err, "write part %s", f.Name)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}

	return buf, mw.FormDataContentType(), nil
}

func (c *Client) sendForm(ctx context.Context, method, path string, p payload, out any) error {
	body, contentType, err := p.encode()
	if err != nil {
		return err
	}

	return c.do(ctx, method, path, body, contentType, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: res.StatusCode}
		if err := json.NewDecoder(res.Body).Decode(apiErr); err != nil {
			apiErr.Code = http.StatusText(res.StatusCode)
		}

		return apiErr
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}
