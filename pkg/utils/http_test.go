package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/courier-hub/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

type request struct {
	Address string `json:"deliveryAddress" validate:"required"`
	Items   []item `json:"items" validate:"dive"`
}

func TestWriteValidationError(t *testing.T) {
	err := utils.NewValidator().Struct(request{Items: []item{{ProductID: "p1"}}})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, utils.WriteValidationError(rec, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var res utils.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, map[string]string{
		"deliveryAddress":   "required",
		"items[0].quantity": "gt=0",
	}, res.Fields)
}

func TestDecodeBody(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"deliveryAddress":"A"}`},
		{name: "trailing value", body: `{"deliveryAddress":"A"} {"deliveryAddress":"B"}`, wantErr: true},
		{name: "broken", body: `{"deliveryAddress":`, wantErr: true},
		{name: "too large", body: `{"deliveryAddress":"` + strings.Repeat("a", 2<<20) + `"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var v request
			err := utils.DecodeBody(req, &v)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "A", v.Address)
		})
	}
}
