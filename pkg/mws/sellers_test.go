package mws_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMarketplaceParticipations(t *testing.T) {
	t.Parallel()

	c, mock := newTestClient(t, "marketplace_participations.xml")
	res, err := c.ParticipationPager().All(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Items, 1)

	list := res.Items[0]
	require.Len(t, list.Participations, 1)
	assert.Equal(t, "No", list.Participations[0].HasSellerSuspendedListings)
	require.Len(t, list.Marketplaces, 1)
	assert.Equal(t, "www.amazon.com", list.Marketplaces[0].DomainName)
	assert.Equal(t, "USD", list.Marketplaces[0].DefaultCurrencyCode)

	rec := mustLastRequest(t, mock)
	assert.Equal(t, "/Sellers/2011-07-01", rec.Path)
	assert.Equal(t, "2011-07-01", rec.Params.Get("Version"))
}
