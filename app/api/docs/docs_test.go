package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestValidateNftBodyIsOptional(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	parsed := struct {
		Paths map[string]map[string]struct {
			Parameters []struct {
				Name     string `json:"name"`
				Required bool   `json:"required"`
			} `json:"parameters"`
		} `json:"paths"`
		Definitions map[string]struct {
			Properties map[string]struct {
				Description string `json:"description"`
			} `json:"properties"`
		} `json:"definitions"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	params := parsed.Paths["/api/nfts/validate-nft"]["post"].Parameters
	require.Len(t, params, 1)
	assert.Equal(t, "body", params[0].Name)
	assert.False(t, params[0].Required)

	props := parsed.Definitions["domain.NftValidationRequest"].Properties
	assert.Contains(t, props["tokenId"].Description, "server.strictParams")
	assert.Contains(t, props["contractAddress"].Description, "server.strictParams")
}
