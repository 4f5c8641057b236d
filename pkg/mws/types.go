package mws

import (
	"cmp"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Credentials identify one seller account ("store").
type Credentials struct {
	SellerID      string `validate:"required"`
	MarketplaceID string
	AccessKeyID   string `validate:"required"`
	SecretKey     string `validate:"required"`
	AuthToken     string
	// ServiceURL defaults to the marketplace's regional endpoint.
	ServiceURL string `validate:"omitempty,url"`
}

// Request is a single API call before common parameters and the
// signature are added.
type Request struct {
	Action        string
	Section       Section
	Params        url.Values
	ThrottleGroup string
	// Body is sent as-is with params moved to the query string. Feeds only.
	Body        []byte
	ContentType string
}

func (r *Request) group() string {
	if r.ThrottleGroup != "" {
		return r.ThrottleGroup
	}
	return r.Action
}

// ResponseMetadata is the bookkeeping attached to every reply.
type ResponseMetadata struct {
	RequestID      string
	Timestamp      time.Time
	StatusCode     int
	QuotaMax       float64
	QuotaRemaining float64
	QuotaResetsOn  time.Time
}

// HasQuota reports whether the reply carried quota headers.
func (m ResponseMetadata) HasQuota() bool {
	return m.QuotaMax > 0
}

func metadataFromHeader(status int, h http.Header) ResponseMetadata {
	md := ResponseMetadata{
		StatusCode: status,
		RequestID:  h.Get("x-mws-request-id"),
	}
	if ts, err := time.Parse(time.RFC3339, h.Get("x-mws-timestamp")); err == nil {
		md.Timestamp = ts
	}
	if v, err := strconv.ParseFloat(h.Get("x-mws-quota-max"), 64); err == nil {
		md.QuotaMax = v
	}
	if v, err := strconv.ParseFloat(h.Get("x-mws-quota-remaining"), 64); err == nil {
		md.QuotaRemaining = v
	}
	if ts, err := time.Parse(time.RFC3339, h.Get("x-mws-quota-resetsOn")); err == nil {
		md.QuotaResetsOn = ts
	}
	return md
}

// Response is embedded in every parsed result.
type Response struct {
	Metadata ResponseMetadata `xml:"-"`
}

func (r *Response) setMetadata(md ResponseMetadata) {
	r.Metadata = md
}

type metadataSetter interface {
	setMetadata(ResponseMetadata)
}

// RawResponse is an unparsed reply as received.
type RawResponse struct {
	Action     string
	StatusCode int
	Header     http.Header
	Body       []byte
	Metadata   ResponseMetadata
	ReceivedAt time.Time
}

// Money is an amount in a currency. The service spells the amount element
// Amount, CurrencyAmount or Value depending on the section; all three decode.
type Money struct {
	Amount       decimal.Decimal
	CurrencyCode string
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.CurrencyCode)
}

// UnmarshalXML implements xml.Unmarshaler.
func (m *Money) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		CurrencyCode   string `xml:"CurrencyCode"`
		Amount         string `xml:"Amount"`
		CurrencyAmount string `xml:"CurrencyAmount"`
		Value          string `xml:"Value"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}

	m.CurrencyCode = raw.CurrencyCode
	text := strings.TrimSpace(cmp.Or(raw.Amount, raw.CurrencyAmount, raw.Value))
	if text == "" {
		m.Amount = decimal.Zero
		return nil
	}

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", text, err)
	}
	m.Amount = amount
	return nil
}

// Address is a postal address. Outbound fulfillment names its lines Line1
// and its region StateOrProvinceCode; both spellings decode.
type Address struct {
	Name          string `validate:"required"`
	AddressLine1  string `validate:"required"`
	AddressLine2  string
	AddressLine3  string
	City          string
	County        string
	District      string
	StateOrRegion string
	PostalCode    string
	CountryCode   string `validate:"required"`
	Phone         string
}

// UnmarshalXML implements xml.Unmarshaler.
func (a *Address) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Name                string
		AddressLine1        string
		AddressLine2        string
		AddressLine3        string
		Line1               string
		Line2               string
		Line3               string
		City                string
		County              string
		DistrictOrCounty    string
		District            string
		StateOrRegion       string
		StateOrProvinceCode string
		PostalCode          string
		CountryCode         string
		Phone               string
		PhoneNumber         string
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}

	*a = Address{
		Name:          raw.Name,
		AddressLine1:  cmp.Or(raw.AddressLine1, raw.Line1),
		AddressLine2:  cmp.Or(raw.AddressLine2, raw.Line2),
		AddressLine3:  cmp.Or(raw.AddressLine3, raw.Line3),
		City:          raw.City,
		County:        cmp.Or(raw.County, raw.DistrictOrCounty),
		District:      raw.District,
		StateOrRegion: cmp.Or(raw.StateOrRegion, raw.StateOrProvinceCode),
		PostalCode:    raw.PostalCode,
		CountryCode:   raw.CountryCode,
		Phone:         cmp.Or(raw.Phone, raw.PhoneNumber),
	}
	return nil
}

// envelope decodes a <ActionResponse> with a single <ActionResult>.
type envelope[T any] struct {
	Result   T `xml:",any"`
	Metadata struct {
		RequestID string `xml:"RequestId"`
	} `xml:"ResponseMetadata"`
}

// multiEnvelope decodes responses carrying one result element per input ID.
type multiEnvelope[T any] struct {
	Results  []T `xml:",any"`
	Metadata struct {
		RequestID string `xml:"RequestId"`
	} `xml:"ResponseMetadata"`
}

// countResult is shared by the Get*Count operations.
type countResult struct {
	Response
	Count int `xml:"Count"`
}
