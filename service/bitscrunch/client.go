package bitscrunch

import (
	"net/http"
	"time"

	bCtx "github.com/x-xyz/nftrelay/base/ctx"
	"github.com/x-xyz/nftrelay/base/metrics"
	"github.com/x-xyz/nftrelay/domain"
)

// Client talks to the bitsCrunch NFT API. Every failure is returned as
// *UpstreamError.
type Client interface {
	ValidateNft(bCtx.Ctx, domain.NftValidationRequest) (domain.NftResult, error)
	GetNftAnalytics(bCtx.Ctx, domain.NftAnalyticsQuery) (domain.NftResult, error)
}

type ClientCfg struct {
	HttpClient *http.Client
	BaseUrl    string
	Apikey     string
	// Timeout bounds a single call, 0 disables it
	Timeout time.Duration
	Metrics metrics.Service
}
