package mws_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func TestCanonicalQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params url.Values
		want   string
	}{
		{
			name:   "sorts keys by byte order",
			params: url.Values{"b": {"2"}, "B": {"1"}, "a": {"3"}},
			want:   "B=1&a=3&b=2",
		},
		{
			name:   "space is percent encoded",
			params: url.Values{"Query": {"red shoes"}},
			want:   "Query=red%20shoes",
		},
		{
			name:   "tilde stays literal",
			params: url.Values{"Key": {"a~b"}},
			want:   "Key=a~b",
		},
		{
			name:   "reserved characters are encoded",
			params: url.Values{"Key": {"a*b+c/d:e"}},
			want:   "Key=a%2Ab%2Bc%2Fd%3Ae",
		},
		{
			name:   "utf-8 is encoded per byte",
			params: url.Values{"Name": {"é"}},
			want:   "Name=%C3%A9",
		},
		{
			name:   "signature is excluded",
			params: url.Values{"Action": {"ListOrders"}, "Signature": {"abc"}},
			want:   "Action=ListOrders",
		},
		{
			name:   "empty",
			params: url.Values{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mws.CanonicalQuery(tt.params))
		})
	}
}

func TestSign(t *testing.T) {
	t.Parallel()

	params := url.Values{
		"AWSAccessKeyId":     {"AKIAEXAMPLE"},
		"Action":             {"ListOrders"},
		"SellerId":           {"A1EXAMPLE"},
		"SignatureMethod":    {"HmacSHA256"},
		"SignatureVersion":   {"2"},
		"Timestamp":          {"2017-02-25T18:10:21Z"},
		"Version":            {"2013-09-01"},
		"MarketplaceId.Id.1": {"ATVPDKIKX0DER"},
	}

	got := mws.Sign("POST", "mws.amazonservices.com", "/Orders/2013-09-01", params, "secret-key")
	assert.Equal(t, "FtmD9F2OjQvY41dk1krtDwudSObbcAoN6tiCOGnWzcY=", got)

	t.Run("host is case insensitive", func(t *testing.T) {
		t.Parallel()
		upper := mws.Sign("post", "MWS.AmazonServices.com", "/Orders/2013-09-01", params, "secret-key")
		assert.Equal(t, got, upper)
	})

	t.Run("secret changes signature", func(t *testing.T) {
		t.Parallel()
		other := mws.Sign("POST", "mws.amazonservices.com", "/Orders/2013-09-01", params, "other-key")
		assert.NotEqual(t, got, other)
	})

	t.Run("existing signature param is ignored", func(t *testing.T) {
		t.Parallel()
		withSig := url.Values{}
		for k, v := range params {
			withSig[k] = v
		}
		withSig.Set("Signature", "stale")
		assert.Equal(t, got, mws.Sign("POST", "mws.amazonservices.com", "/Orders/2013-09-01", withSig, "secret-key"))
	})

	t.Run("empty path signs as root", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			mws.Sign("POST", "mws.amazonservices.com", "/", params, "secret-key"),
			mws.Sign("POST", "mws.amazonservices.com", "", params, "secret-key"),
		)
	})
}
