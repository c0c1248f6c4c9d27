// Package catalog
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abridged/collabland-token-price-action/coingecko"
	"github.com/abridged/collabland-token-price-action/types"
)

// ReferenceTokenID is the platform's own token id on the market-data provider.
// It is surfaced first in autocomplete when the user starts typing its name.
const ReferenceTokenID = "collab-land"

const maxSuggestions = 20

// Choice is one autocomplete suggestion.
type Choice struct {
	Display string
	Value   string
}

// Catalog is a read-only snapshot of the provider's coin list, built once at
// startup and shared by reference afterwards. No mutation after construction.
type Catalog struct {
	tokens    []types.TokenInfo
	reference *types.TokenInfo
}

func New(tokens []types.TokenInfo) *Catalog {
	c := &Catalog{tokens: tokens}
	for i := range tokens {
		if tokens[i].ID == ReferenceTokenID {
			c.reference = &tokens[i]
			break
		}
	}
	return c
}

// Load fetches the full coin list and builds the snapshot. There is no retry;
// a failure here is fatal for the process.
func Load(ctx context.Context, client coingecko.ClientInterface) (*Catalog, error) {
	tokens, err := client.CoinList(ctx)
	if err != nil {
		return nil, err
	}
	return New(tokens), nil
}

func (c *Catalog) Len() int {
	return len(c.tokens)
}

// Reference returns the platform's own token, nil when the provider does not
// list it.
func (c *Catalog) Reference() *types.TokenInfo {
	return c.reference
}

// Find matches by id, name or symbol, case-insensitive. Catalog order decides
// ties; nil when nothing matches.
func (c *Catalog) Find(symbol string) *types.TokenInfo {
	for i := range c.tokens {
		t := &c.tokens[i]
		if strings.EqualFold(t.ID, symbol) ||
			strings.EqualFold(t.Name, symbol) ||
			strings.EqualFold(t.Symbol, symbol) {
			return t
		}
	}
	return nil
}

// Suggest returns autocomplete choices for a partial symbol: tokens whose
// symbol starts with the lower-cased input, sorted by display string and
// capped at 20. The reference token is excluded from the scan and prepended
// (after the cap) when the input is a prefix of "collab.land"/"collab-land".
func (c *Catalog) Suggest(partial string) []Choice {
	prefix := strings.ToLower(partial)
	var choices []Choice
	for i := range c.tokens {
		t := &c.tokens[i]
		if t.ID == ReferenceTokenID {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(t.Symbol), prefix) {
			continue
		}
		choices = append(choices, choiceOf(t))
	}
	sort.Slice(choices, func(i, j int) bool {
		return choices[i].Display < choices[j].Display
	})
	if len(choices) > maxSuggestions {
		choices = choices[:maxSuggestions]
	}
	if c.reference != nil &&
		(strings.HasPrefix("collab.land", prefix) || strings.HasPrefix(ReferenceTokenID, prefix)) {
		choices = append([]Choice{choiceOf(c.reference)}, choices...)
	}
	return choices
}

func choiceOf(t *types.TokenInfo) Choice {
	return Choice{
		Display: fmt.Sprintf("%s: %s", t.Symbol, t.Name),
		Value:   t.ID,
	}
}
