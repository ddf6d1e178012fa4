package bitscrunch

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	bCtx "github.com/x-xyz/nftrelay/base/ctx"
	"github.com/x-xyz/nftrelay/base/log"
	"github.com/x-xyz/nftrelay/base/metrics"
	"github.com/x-xyz/nftrelay/domain"
)

const (
	authorizationKey = "Authorization"
	bearerPrefix     = "Bearer "

	endpointValidateNft  = "validate-nft"
	endpointNftAnalytics = "nft-analytics"
)

// emptyResult is what an empty 2xx body is handed back as
var emptyResult = domain.NftResult(`""`)

func NewClient(cfg *ClientCfg) Client {
	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	met := cfg.Metrics
	if met == nil {
		met = metrics.New("bitscrunch")
	}
	return &client{
		client:  httpClient,
		baseUrl: strings.TrimRight(cfg.BaseUrl, "/"),
		apikey:  cfg.Apikey,
		timeout: cfg.Timeout,
		met:     met,
	}
}

type client struct {
	client  *http.Client
	baseUrl string
	apikey  string
	timeout time.Duration
	met     metrics.Service
}

func (c *client) ValidateNft(ctx bCtx.Ctx, r domain.NftValidationRequest) (domain.NftResult, error) {
	body, err := json.Marshal(r)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return nil, newTransportError(err)
	}
	return c.call(ctx, endpointValidateNft, http.MethodPost, c.baseUrl+"/"+endpointValidateNft, body)
}

func (c *client) GetNftAnalytics(ctx bCtx.Ctx, q domain.NftAnalyticsQuery) (domain.NftResult, error) {
	base, err := url.Parse(c.baseUrl + "/" + endpointNftAnalytics)
	if err != nil {
		ctx.WithFields(log.Fields{
			"baseUrl": c.baseUrl,
			"err":     err,
		}).Error("url.Parse failed")
		return nil, newTransportError(err)
	}

	params := url.Values{}
	if q.TokenId != nil {
		params.Set("tokenId", q.TokenId.String())
	}
	if q.ContractAddress != nil {
		params.Set("contractAddress", string(*q.ContractAddress))
	}
	base.RawQuery = params.Encode()

	return c.call(ctx, endpointNftAnalytics, http.MethodGet, base.String(), nil)
}

func (c *client) call(ctx bCtx.Ctx, endpoint, method, url string, body []byte) (domain.NftResult, error) {
	defer c.met.BumpTime("request.latency", "endpoint", endpoint).End()

	res, uErr := c.do(ctx, method, url, body)
	if uErr != nil {
		c.met.BumpSum("request.err", 1, "endpoint", endpoint, "kind", uErr.Kind.String())
		return nil, uErr
	}
	return res, nil
}

func (c *client) do(ctx bCtx.Ctx, method, url string, body []byte) (domain.NftResult, *UpstreamError) {
	if c.timeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, newTransportError(err)
	}
	req.Header.Set(authorizationKey, bearerPrefix+c.apikey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, newTransportError(err)
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, newTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
			"body":       string(data),
		}).Error("resp.StatusCode not 2xx")
		return nil, newUpstreamError(resp.StatusCode, data)
	}

	if len(data) == 0 {
		return emptyResult, nil
	}
	return asJson(data), nil
}
