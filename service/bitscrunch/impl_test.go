package bitscrunch

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/nftrelay/base/ctx"
	"github.com/x-xyz/nftrelay/domain"
)

type clientSuite struct {
	suite.Suite

	server  *httptest.Server
	handler http.HandlerFunc
	client  Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func (s *clientSuite) SetupTest() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
	s.client = NewClient(&ClientCfg{
		HttpClient: s.server.Client(),
		BaseUrl:    s.server.URL + "/api/v1/",
		Apikey:     "api_key",
		Timeout:    time.Second,
	})
}

func (s *clientSuite) TearDownTest() {
	s.server.Close()
}

func tokenId(v string) *domain.TokenId {
	id := domain.TokenId(v)
	return &id
}

func address(v string) *domain.Address {
	a := domain.Address(v)
	return &a
}

func (s *clientSuite) upstreamErr(err error) *UpstreamError {
	uErr := &UpstreamError{}
	s.Require().True(errors.As(err, &uErr), "want *UpstreamError, got %T", err)
	return uErr
}

func (s *clientSuite) TestValidateNft() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/api/v1/validate-nft", r.URL.Path)
		s.Equal("Bearer api_key", r.Header.Get("Authorization"))
		s.Equal("application/json", r.Header.Get("Content-Type"))
		body, err := ioutil.ReadAll(r.Body)
		s.NoError(err)
		s.JSONEq(`{"tokenId":"42","contractAddress":"0xABC"}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"valid":true}`))
	}

	res, err := s.client.ValidateNft(bCtx.Background(), domain.NftValidationRequest{
		TokenId:         tokenId("42"),
		ContractAddress: address("0xABC"),
	})
	s.Require().NoError(err)
	s.JSONEq(`{"valid":true}`, string(res))
}

func (s *clientSuite) TestValidateNftOmitsMissingFields() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		body, err := ioutil.ReadAll(r.Body)
		s.NoError(err)
		s.JSONEq(`{"tokenId":"42"}`, string(body))
		w.Write([]byte(`{"valid":false}`))
	}

	res, err := s.client.ValidateNft(bCtx.Background(), domain.NftValidationRequest{
		TokenId: tokenId("42"),
	})
	s.Require().NoError(err)
	s.JSONEq(`{"valid":false}`, string(res))
}

func (s *clientSuite) TestGetNftAnalytics() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("/api/v1/nft-analytics", r.URL.Path)
		s.Equal("Bearer api_key", r.Header.Get("Authorization"))
		s.Equal("42", r.URL.Query().Get("tokenId"))
		s.Equal("0xABC", r.URL.Query().Get("contractAddress"))
		w.Write([]byte(`{"volume":100}`))
	}

	res, err := s.client.GetNftAnalytics(bCtx.Background(), domain.NftAnalyticsQuery{
		TokenId:         tokenId("42"),
		ContractAddress: address("0xABC"),
	})
	s.Require().NoError(err)
	s.JSONEq(`{"volume":100}`, string(res))
}

func (s *clientSuite) TestGetNftAnalyticsOmitsMissingParams() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.Equal("42", q.Get("tokenId"))
		_, ok := q["contractAddress"]
		s.False(ok)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"contractAddress is required"}`))
	}

	_, err := s.client.GetNftAnalytics(bCtx.Background(), domain.NftAnalyticsQuery{
		TokenId: tokenId("42"),
	})
	uErr := s.upstreamErr(err)
	s.Equal(ErrorKindUpstream, uErr.Kind)
	s.Equal(http.StatusBadRequest, uErr.StatusCode)
	s.JSONEq(`{"error":"contractAddress is required"}`, string(uErr.Payload))

	encoded, err := json.Marshal(uErr)
	s.Require().NoError(err)
	s.JSONEq(`{"error":"contractAddress is required"}`, string(encoded))
}

func (s *clientSuite) TestUpstreamErrorWithoutBody() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}

	_, err := s.client.ValidateNft(bCtx.Background(), domain.NftValidationRequest{})
	uErr := s.upstreamErr(err)
	s.Equal(ErrorKindUpstream, uErr.Kind)
	s.Empty(uErr.Payload)
	s.Equal("Request failed with status code 502", uErr.Error())

	encoded, err := json.Marshal(uErr)
	s.Require().NoError(err)
	s.Equal(`"Request failed with status code 502"`, string(encoded))
}

func (s *clientSuite) TestUpstreamErrorWithFalsyBody() {
	for _, body := range []string{"null", "false", "0", `""`, " null\n"} {
		s.handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(body))
		}

		_, err := s.client.ValidateNft(bCtx.Background(), domain.NftValidationRequest{})
		uErr := s.upstreamErr(err)
		s.Equal(ErrorKindUpstream, uErr.Kind, body)
		s.Empty(uErr.Payload, body)

		encoded, err := json.Marshal(uErr)
		s.Require().NoError(err)
		s.Equal(`"Request failed with status code 500"`, string(encoded), body)
	}
}

func (s *clientSuite) TestUpstreamErrorKeepsTruthyScalar() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`"token not found"`))
	}

	_, err := s.client.GetNftAnalytics(bCtx.Background(), domain.NftAnalyticsQuery{})
	uErr := s.upstreamErr(err)
	s.Equal(`"token not found"`, string(uErr.Payload))
}

func (s *clientSuite) TestUpstreamErrorWithTextBody() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("invalid api key"))
	}

	_, err := s.client.GetNftAnalytics(bCtx.Background(), domain.NftAnalyticsQuery{})
	uErr := s.upstreamErr(err)
	s.Equal(`"invalid api key"`, string(uErr.Payload))
}

func (s *clientSuite) TestTimeout() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}
	c := NewClient(&ClientCfg{
		HttpClient: s.server.Client(),
		BaseUrl:    s.server.URL,
		Apikey:     "api_key",
		Timeout:    50 * time.Millisecond,
	})

	_, err := c.ValidateNft(bCtx.Background(), domain.NftValidationRequest{
		TokenId:         tokenId("42"),
		ContractAddress: address("0xABC"),
	})
	uErr := s.upstreamErr(err)
	s.Equal(ErrorKindTransport, uErr.Kind)
	s.NotEmpty(uErr.Message)
	s.NotNil(errors.Unwrap(uErr))

	encoded, err := json.Marshal(uErr)
	s.Require().NoError(err)
	s.Equal(`"`, string(encoded[0]))
}

func (s *clientSuite) TestConnectionRefused() {
	c := NewClient(&ClientCfg{
		BaseUrl: s.server.URL,
		Apikey:  "api_key",
	})
	s.server.Close()

	_, err := c.GetNftAnalytics(bCtx.Background(), domain.NftAnalyticsQuery{})
	uErr := s.upstreamErr(err)
	s.Equal(ErrorKindTransport, uErr.Kind)
	s.Zero(uErr.StatusCode)
}

func (s *clientSuite) TestEmptySuccessBody() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	res, err := s.client.GetNftAnalytics(bCtx.Background(), domain.NftAnalyticsQuery{})
	s.Require().NoError(err)
	s.Equal(`""`, string(res))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "transport", ErrorKindTransport.String())
	assert.Equal(t, "upstream", ErrorKindUpstream.String())
	assert.Equal(t, "unknown", ErrorKind(9).String())
}
