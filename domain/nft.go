package domain

import "encoding/json"

type Address string

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// NftValidationRequest is forwarded as the provider's validate-nft body.
// Nil fields are left out of the outbound JSON. The validate rules only
// apply with server.strictParams on.
type NftValidationRequest struct {
	// required only with server.strictParams on
	TokenId *TokenId `json:"tokenId,omitempty" validate:"required" example:"42"`
	// required and 0x prefixed hex only with server.strictParams on
	ContractAddress *Address `json:"contractAddress,omitempty" validate:"required,address" example:"0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"`
}

// NftAnalyticsQuery is forwarded as the provider's nft-analytics query.
// Nil fields are left out of the outbound query string.
type NftAnalyticsQuery struct {
	TokenId         *TokenId `query:"tokenId" validate:"required"`
	ContractAddress *Address `query:"contractAddress" validate:"required,address"`
}

// NftResult is the provider payload, passed back untouched
type NftResult = json.RawMessage
