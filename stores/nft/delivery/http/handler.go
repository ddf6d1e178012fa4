package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftrelay/base/ctx"
	"github.com/x-xyz/nftrelay/base/delivery"
	bValidator "github.com/x-xyz/nftrelay/base/validator"
	"github.com/x-xyz/nftrelay/domain"
	"github.com/x-xyz/nftrelay/service/bitscrunch"
)

const (
	MsgValidateNftFailed  = "Failed to validate NFT metadata"
	MsgNftAnalyticsFailed = "Failed to fetch NFT analytics"
	MsgInvalidPayload     = "Invalid request payload"
	MsgInvalidParams      = "Invalid request parameters"
)

type handler struct {
	client       bitscrunch.Client
	strictParams bool
}

// New mounts the nft routes. With strictParams set, requests missing
// tokenId or contractAddress are rejected before reaching the provider.
func New(e *echo.Echo, client bitscrunch.Client, strictParams bool) {
	h := &handler{
		client:       client,
		strictParams: strictParams,
	}

	g := e.Group("/api/nfts")
	g.POST("/validate-nft", h.validateNft)
	g.GET("/nft-analytics", h.getNftAnalytics)
}

// validateNft
//
//	@Summary		Validate NFT metadata
//	@Description	Forward a token to the provider's validate-nft endpoint.
//	@Description	tokenId and contractAddress are only enforced with server.strictParams on; otherwise the body is forwarded as is.
//	@Tags			nfts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		domain.NftValidationRequest	false	"token to validate"
//	@Success		200		{object}	delivery.JsonResponse
//	@Failure		400		{object}	delivery.JsonResponse
//	@Failure		500		{object}	delivery.JsonResponse
//	@Router			/api/nfts/validate-nft [post]
func (h *handler) validateNft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := domain.NftValidationRequest{}
	if err := bindJsonBody(c, &p); err != nil {
		ctx.WithField("err", err).Warn("bindJsonBody failed")
		return delivery.MakeFailResp(c, http.StatusBadRequest, MsgInvalidPayload, bindError(err))
	}

	if h.strictParams {
		if err := c.Validate(&p); err != nil {
			return delivery.MakeFailResp(c, http.StatusBadRequest, MsgInvalidParams, paramError(err))
		}
	}

	res, err := h.client.ValidateNft(ctx, p)
	if err != nil {
		return delivery.MakeFailResp(c, http.StatusInternalServerError, MsgValidateNftFailed, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getNftAnalytics
//
//	@Summary		Get NFT analytics
//	@Description	Forward a token to the provider's nft-analytics endpoint
//	@Tags			nfts
//	@Produce		json
//	@Param			tokenId			query		string	false	"token id"			example(42)
//	@Param			contractAddress	query		string	false	"contract address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Success		200				{object}	delivery.JsonResponse
//	@Failure		400				{object}	delivery.JsonResponse
//	@Failure		500				{object}	delivery.JsonResponse
//	@Router			/api/nfts/nft-analytics [get]
func (h *handler) getNftAnalytics(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := domain.NftAnalyticsQuery{}
	if v := queryParam(c, "tokenId"); v != nil {
		id := domain.TokenId(*v)
		p.TokenId = &id
	}
	if v := queryParam(c, "contractAddress"); v != nil {
		addr := domain.Address(*v)
		p.ContractAddress = &addr
	}

	if h.strictParams {
		if err := c.Validate(&p); err != nil {
			return delivery.MakeFailResp(c, http.StatusBadRequest, MsgInvalidParams, paramError(err))
		}
	}

	res, err := h.client.GetNftAnalytics(ctx, p)
	if err != nil {
		return delivery.MakeFailResp(c, http.StatusInternalServerError, MsgNftAnalyticsFailed, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// queryParam tells an absent parameter (nil) from an empty one
func queryParam(c echo.Context, name string) *string {
	values, ok := c.QueryParams()[name]
	if !ok {
		return nil
	}
	v := ""
	if len(values) > 0 {
		v = values[0]
	}
	return &v
}

// bindJsonBody decodes a JSON body into i. A body that is not declared as
// JSON, or is empty, leaves i untouched so the request is forwarded as {}.
func bindJsonBody(c echo.Context, i interface{}) error {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return nil
	}
	err := (&echo.DefaultBinder{}).BindBody(c, i)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// bindError drops echo's code/internal decoration from binder errors
func bindError(err error) error {
	he := &echo.HTTPError{}
	if errors.As(err, &he) {
		return errors.New(fmt.Sprint(he.Message))
	}
	return err
}

// paramError maps validator output onto the domain errors
func paramError(err error) error {
	verrs := validator.ValidationErrors{}
	if !errors.As(err, &verrs) {
		return err
	}

	missing := []string{}
	for _, fe := range verrs {
		if fe.Tag() == bValidator.TagAddress {
			return xerrors.Errorf("%s: %w", fe.Field(), domain.ErrInvalidAddress)
		}
		missing = append(missing, fe.Field())
	}
	return xerrors.Errorf("%s: %w", strings.Join(missing, ","), domain.ErrBadParamInput)
}
