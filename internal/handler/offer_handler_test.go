package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakispin/spinshop/internal/model"
)

// mockOfferService is a mock implementation of OfferServiceInterface.
type mockOfferService struct {
	currentFn         func(ctx context.Context) *model.Offer
	clearFn           func(ctx context.Context)
	discountPercentFn func(ctx context.Context) int
	hasFreeShippingFn func(ctx context.Context) bool
	hasGiftFn         func(ctx context.Context) bool
	timeRemainingFn   func(ctx context.Context) int64
}

func (m *mockOfferService) Current(ctx context.Context) *model.Offer {
	if m.currentFn != nil {
		return m.currentFn(ctx)
	}
	return nil
}

func (m *mockOfferService) Clear(ctx context.Context) {
	if m.clearFn != nil {
		m.clearFn(ctx)
	}
}

func (m *mockOfferService) DiscountPercent(ctx context.Context) int {
	if m.discountPercentFn != nil {
		return m.discountPercentFn(ctx)
	}
	return 0
}

func (m *mockOfferService) HasFreeShipping(ctx context.Context) bool {
	if m.hasFreeShippingFn != nil {
		return m.hasFreeShippingFn(ctx)
	}
	return false
}

func (m *mockOfferService) HasGift(ctx context.Context) bool {
	if m.hasGiftFn != nil {
		return m.hasGiftFn(ctx)
	}
	return false
}

func (m *mockOfferService) TimeRemaining(ctx context.Context) int64 {
	if m.timeRemainingFn != nil {
		return m.timeRemainingFn(ctx)
	}
	return 0
}

func setupOfferTestApp(mockSvc *mockOfferService) *fiber.App {
	app := fiber.New()
	h := NewOfferHandler(mockSvc)
	app.Get("/api/offer", h.GetOffer)
	app.Delete("/api/offer", h.DeleteOffer)
	return app
}

func TestGetOffer_ActiveDiscount(t *testing.T) {
	expires := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	mockSvc := &mockOfferService{
		currentFn: func(ctx context.Context) *model.Offer {
			return &model.Offer{
				Kind:      model.KindDiscount,
				Magnitude: 30,
				Label:     "30% off all products",
				ExpiresAt: expires,
			}
		},
		discountPercentFn: func(ctx context.Context) int { return 30 },
		timeRemainingFn:   func(ctx context.Context) int64 { return 82800000 },
	}
	app := setupOfferTestApp(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/offer", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result model.OfferResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)
	require.NotNil(t, result.Offer)
	assert.Equal(t, model.KindDiscount, result.Offer.Kind)
	assert.Equal(t, 30, result.DiscountPercent)
	assert.Equal(t, int64(82800000), result.TimeRemainingMS)
	assert.False(t, result.FreeShipping)
	assert.False(t, result.Gift)
}

func TestGetOffer_NoOffer(t *testing.T) {
	mockSvc := &mockOfferService{}
	app := setupOfferTestApp(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/offer", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The raw body must carry an explicit null so clients can
	// distinguish "no offer" from a missing field.
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"offer":null`)

	var result model.OfferResponse
	err = json.Unmarshal(body, &result)
	require.NoError(t, err)
	assert.Nil(t, result.Offer)
	assert.Zero(t, result.DiscountPercent)
	assert.Zero(t, result.TimeRemainingMS)
}

func TestGetOffer_FreeShippingFlags(t *testing.T) {
	mockSvc := &mockOfferService{
		currentFn: func(ctx context.Context) *model.Offer {
			return &model.Offer{Kind: model.KindFreeShipping, Label: "Free shipping on your order"}
		},
		hasFreeShippingFn: func(ctx context.Context) bool { return true },
	}
	app := setupOfferTestApp(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/offer", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var result model.OfferResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)
	assert.True(t, result.FreeShipping)
	assert.Zero(t, result.DiscountPercent)
}

func TestDeleteOffer_ClearsAndReturns204(t *testing.T) {
	clearCalled := false
	mockSvc := &mockOfferService{
		clearFn: func(ctx context.Context) { clearCalled = true },
	}
	app := setupOfferTestApp(mockSvc)

	req := httptest.NewRequest(http.MethodDelete, "/api/offer", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.True(t, clearCalled)
}

func TestDeleteOffer_AbsentOfferStillSucceeds(t *testing.T) {
	mockSvc := &mockOfferService{}
	app := setupOfferTestApp(mockSvc)

	req := httptest.NewRequest(http.MethodDelete, "/api/offer", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
