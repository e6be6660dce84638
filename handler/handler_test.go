package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numentry/handler"
	"github.com/dmitrymomot/numentry/pkg/numformat"
)

const testSchema = `
fields:
  price:
    negative: false
    decimalPlaces: 2
  quantity:
    decimalPlaces: 0
  amount: {}
`

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/validate",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeFields(t *testing.T, rec *httptest.ResponseRecorder) map[string]handler.Result {
	t.Helper()
	var body struct {
		Fields map[string]handler.Result `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Fields
}

func TestValidateEndpoint(t *testing.T) {
	t.Parallel()

	schema, err := handler.ParseSchema([]byte(testSchema))
	require.NoError(t, err)
	h := handler.New(schema)

	t.Run("reports per-field outcomes", func(t *testing.T) {
		rec := postForm(t, h, url.Values{
			"price":    {"12.50"},
			"quantity": {"3"},
			"amount":   {"-1.234"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		fields := decodeFields(t, rec)
		require.Len(t, fields, 3)
		assert.Equal(t, 1, fields["price"].Code)
		assert.Equal(t, 1, fields["quantity"].Code)
		assert.Equal(t, 1, fields["amount"].Code)
		assert.Equal(t, "entry is a valid number", fields["price"].Message)
	})

	t.Run("failed checks are code 0 with HTTP 200", func(t *testing.T) {
		rec := postForm(t, h, url.Values{
			"price":    {"-12.50"}, // negatives disabled for price
			"quantity": {"3.5"},    // zero places
			"amount":   {"12.5.6"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		fields := decodeFields(t, rec)
		assert.Equal(t, 0, fields["price"].Code)
		assert.Equal(t, 0, fields["quantity"].Code)
		assert.Equal(t, 0, fields["amount"].Code)
		assert.Equal(t, "entry is not a valid number", fields["amount"].Message)
		assert.Equal(t, "12.5.6", fields["amount"].Value)
	})

	t.Run("fields outside the schema are ignored", func(t *testing.T) {
		rec := postForm(t, h, url.Values{"rogue": {"abc"}})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeFields(t, rec))
	})

	t.Run("wrong content type gets 415", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/validate",
			strings.NewReader(`{"price": "12"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("missing content type gets 415", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader("a=1"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("custom defaults apply under schema layers", func(t *testing.T) {
		base := numformat.Default()
		base.Decimal = ','
		hh := handler.New(schema, handler.WithDefaults(base))

		rec := postForm(t, hh, url.Values{"amount": {"12,5"}})
		fields := decodeFields(t, rec)
		assert.Equal(t, 1, fields["amount"].Code)
	})
}

func TestSchemaLoading(t *testing.T) {
	t.Parallel()

	t.Run("loads from a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.yml")
		require.NoError(t, os.WriteFile(path, []byte(testSchema), 0o600))

		schema, err := handler.LoadSchema(path)
		require.NoError(t, err)
		assert.Len(t, schema.Fields, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := handler.LoadSchema(filepath.Join(t.TempDir(), "nope.yml"))
		assert.ErrorIs(t, err, handler.ErrSchemaRead)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := handler.ParseSchema([]byte("fields: [not a map"))
		assert.ErrorIs(t, err, handler.ErrSchemaParse)
	})

	t.Run("empty schema", func(t *testing.T) {
		_, err := handler.ParseSchema([]byte("fields: {}"))
		assert.ErrorIs(t, err, handler.ErrSchemaParse)
	})

	t.Run("schema typos degrade to defaults instead of failing", func(t *testing.T) {
		schema, err := handler.ParseSchema([]byte("fields:\n  price:\n    negative: sometimes\n"))
		require.NoError(t, err)

		h := handler.New(schema)
		rec := postForm(t, h, url.Values{"price": {"-12"}})
		fields := decodeFields(t, rec)
		assert.Equal(t, 1, fields["price"].Code, "default still allows negatives")
	})
}
