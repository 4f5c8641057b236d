package mws_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func TestGetServiceStatus(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "service_status.xml")
	status, err := c.GetServiceStatus(context.Background(), mws.SectionOrders)
	require.NoError(t, err)

	assert.Equal(t, mws.StatusYellow, status.Status)
	assert.False(t, status.OK())
	require.Len(t, status.Messages, 1)
	assert.Equal(t, "en_US", status.Messages[0].Locale)
	assert.Equal(t, "/Orders/2013-09-01", mustLastRequest(t, mock).Path)

	var groups []string
	for _, st := range c.Throttle().Status() {
		groups = append(groups, st.Group)
	}
	assert.Contains(t, groups, "GetServiceStatus:Orders")
}

func TestGetServiceStatus_UnsupportedSection(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "service_status.xml")
	_, err := c.GetServiceStatus(context.Background(), mws.SectionReports)
	require.ErrorIs(t, err, mws.ErrInvalidRequest)
	assert.Empty(t, mock.Requests())
}

func TestSectionByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "orders", want: "Orders"},
		{name: "FEEDS", want: "Feeds"},
		{name: "inbound", want: "FulfillmentInboundShipment"},
		{name: "outbound", want: "FulfillmentOutboundShipment"},
		{name: "inventory", want: "FulfillmentInventory"},
		{name: "Finances", want: "Finances"},
		{name: "subscriptions", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := mws.SectionByName(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Name)
		})
	}
}

func TestEndpointFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://mws-eu.amazonservices.com", mws.EndpointFor("A1F83G8C2ARO7P"))
	assert.Equal(t, "https://mws.amazonservices.com", mws.EndpointFor("unknown"))

	for _, m := range mws.Marketplaces() {
		assert.NotEmpty(t, m.Endpoint, m.ID)
	}
}
