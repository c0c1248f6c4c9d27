// Package catalog
package catalog

import (
	"fmt"
	"sort"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abridged/collabland-token-price-action/types"
)

func testTokens() []types.TokenInfo {
	return []types.TokenInfo{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum"},
		{ID: "bittorrent", Symbol: "btt", Name: "BitTorrent"},
		{ID: "collab-land", Symbol: "collab", Name: "Collab.Land"},
		{ID: "tether", Symbol: "usdt", Name: "Tether", Platforms: map[string]string{
			"ethereum": "0xdac17f958d2ee523a2206206994597c13d831ec7",
		}},
	}
}

func TestCatalog_Find(t *testing.T) {
	c := New(testTokens())

	cases := map[string]string{
		"btc":      "bitcoin",
		"BTC":      "bitcoin",
		"Bitcoin":  "bitcoin",
		"bitcoin":  "bitcoin",
		"ETHEREUM": "ethereum",
		"UsDt":     "tether",
	}
	for input, wantID := range cases {
		token := c.Find(input)
		require.NotNil(t, token, "input %q", input)
		assert.Equal(t, wantID, token.ID, "input %q", input)
	}

	assert.Nil(t, c.Find("doge"))
	assert.Nil(t, c.Find("not-a-token"))
}

func TestCatalog_FindFirstMatchWins(t *testing.T) {
	c := New([]types.TokenInfo{
		{ID: "token-one", Symbol: "dup", Name: "First"},
		{ID: "token-two", Symbol: "dup", Name: "Second"},
	})
	token := c.Find("dup")
	require.NotNil(t, token)
	assert.Equal(t, "token-one", token.ID)
}

func TestCatalog_Reference(t *testing.T) {
	c := New(testTokens())
	require.NotNil(t, c.Reference())
	assert.Equal(t, ReferenceTokenID, c.Reference().ID)

	empty := New(nil)
	assert.Nil(t, empty.Reference())
	assert.Equal(t, 0, empty.Len())
}

func TestCatalog_Suggest(t *testing.T) {
	c := New(testTokens())

	choices := c.Suggest("bt")
	require.Len(t, choices, 2)
	assert.Equal(t, "btc: Bitcoin", choices[0].Display)
	assert.Equal(t, "bitcoin", choices[0].Value)
	assert.Equal(t, "btt: BitTorrent", choices[1].Display)
	for _, choice := range choices {
		assert.NotEqual(t, ReferenceTokenID, choice.Value)
	}

	// prefix matching is case-insensitive
	assert.Equal(t, choices, c.Suggest("BT"))
}

func TestCatalog_SuggestReferenceToken(t *testing.T) {
	c := New(testTokens())

	for _, prefix := range []string{"", "c", "coll", "collab", "collab-land", "collab.land"} {
		choices := c.Suggest(prefix)
		require.NotEmpty(t, choices, "prefix %q", prefix)
		assert.Equal(t, ReferenceTokenID, choices[0].Value, "prefix %q", prefix)
		assert.Equal(t, "collab: Collab.Land", choices[0].Display, "prefix %q", prefix)
	}

	// unrelated prefixes never surface the reference token
	for _, choice := range c.Suggest("bt") {
		assert.NotEqual(t, ReferenceTokenID, choice.Value)
	}
}

func TestCatalog_SuggestCap(t *testing.T) {
	tokens := []types.TokenInfo{
		{ID: ReferenceTokenID, Symbol: "collab", Name: "Collab.Land"},
	}
	for i := 0; i < 30; i++ {
		tokens = append(tokens, types.TokenInfo{
			ID:     fmt.Sprintf("co-token-%02d", i),
			Symbol: fmt.Sprintf("co%02d", i),
			Name:   faker.Word(),
		})
	}
	c := New(tokens)

	// "co" is a prefix of "collab-land", so the reference token rides on top
	// of the 20-item cap.
	choices := c.Suggest("co")
	require.Len(t, choices, maxSuggestions+1)
	assert.Equal(t, ReferenceTokenID, choices[0].Value)

	rest := choices[1:]
	assert.True(t, sort.SliceIsSorted(rest, func(i, j int) bool {
		return rest[i].Display < rest[j].Display
	}))
}

func TestCatalog_SuggestNoMatch(t *testing.T) {
	c := New(testTokens())
	assert.Empty(t, c.Suggest("zzz"))
}
