package checkapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcheck/pkg/checkapi"
	"github.com/dmitrymomot/strcheck/pkg/messages"
)

func newServer(t *testing.T, opts ...checkapi.Option) http.Handler {
	t.Helper()
	catalog, err := messages.New()
	require.NoError(t, err)
	return checkapi.New(catalog, opts...).Router()
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestKinds(t *testing.T) {
	t.Parallel()
	rec := do(t, newServer(t), http.MethodGet, "/kinds", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[checkapi.KindsResponse](t, rec)
	assert.Equal(t, []string{
		"email", "chinese", "english", "digit", "chinese_tel",
		"chinese_id_card", "visa_card", "master_card", "link",
	}, resp.Kinds)
}

func TestCheck(t *testing.T) {
	t.Parallel()
	h := newServer(t)

	t.Run("valid value", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/check", `{"kind":"chinese_tel","value":"13812345678"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[checkapi.CheckResponse](t, rec)
		assert.True(t, resp.Valid)
		assert.Equal(t, "chinese_tel", resp.Kind)
		assert.Empty(t, resp.Message)
		assert.Nil(t, resp.IDCard)
	})

	t.Run("invalid value is localized", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/check", `{"kind":"Chinese-Tel","value":"12812345678"}`,
			map[string]string{"Accept-Language": "zh-CN,zh;q=0.9"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "zh", rec.Header().Get("Content-Language"))

		resp := decode[checkapi.CheckResponse](t, rec)
		assert.False(t, resp.Valid)
		assert.Equal(t, "chinese_tel", resp.Kind)
		assert.Equal(t, "chinese_tel必须是有效的手机号码", resp.Message)
	})

	t.Run("id card details", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/check", `{"kind":"chinese_id_card","value":"15210319861215033x"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[checkapi.CheckResponse](t, rec)
		require.True(t, resp.Valid)
		require.NotNil(t, resp.IDCard)
		assert.Equal(t, checkapi.IDCard{
			Region:    "152103",
			BirthDate: "1986-12-15",
			Sequence:  "033",
			Gender:    "male",
			CheckCode: "X",
		}, *resp.IDCard)
	})

	t.Run("empty value is checked as given", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/check", `{"kind":"chinese"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[checkapi.CheckResponse](t, rec).Valid)
	})

	t.Run("unknown kind", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/check", `{"kind":"iban","value":"x"}`, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "unknown_kind", decode[checkapi.ErrorResponse](t, rec).Error.Code)
	})

	t.Run("malformed bodies", func(t *testing.T) {
		for _, body := range []string{`{`, `{"kind":"email","value":"a","extra":1}`, `{"kind":"email"} {}`, `[]`} {
			rec := do(t, h, http.MethodPost, "/check", body, nil)
			require.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Equal(t, "invalid_request", decode[checkapi.ErrorResponse](t, rec).Error.Code, body)
		}
	})

	t.Run("wrong content type", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/check", `{"kind":"email","value":"a"}`,
			map[string]string{"Content-Type": "text/plain"})
		require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Equal(t, "unsupported_media_type", decode[checkapi.ErrorResponse](t, rec).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/check", "", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestCheckBatch(t *testing.T) {
	t.Parallel()
	h := newServer(t, checkapi.WithMaxBatchItems(3))

	t.Run("all valid", func(t *testing.T) {
		body := `{"items":[
			{"field":"email","kind":"email","value":"test@gmail.com"},
			{"field":"card","kind":"visa_card","value":"4111111111111"}
		]}`
		rec := do(t, h, http.MethodPost, "/check/batch", body, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[checkapi.BatchResponse](t, rec)
		assert.True(t, resp.Valid)
		assert.Empty(t, resp.Errors)
	})

	t.Run("reports failing items in order", func(t *testing.T) {
		body := `{"items":[
			{"field":"phone","kind":"chinese_tel","value":"1381234567"},
			{"field":"name","kind":"english","value":"test"},
			{"kind":"master_card","value":"4500000000000004"}
		]}`
		rec := do(t, h, http.MethodPost, "/check/batch", body, map[string]string{"Accept-Language": "en-US"})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[checkapi.BatchResponse](t, rec)
		assert.False(t, resp.Valid)
		assert.Equal(t, []checkapi.FieldError{
			{Field: "phone", Key: "validation.chinese_tel", Message: "The phone must be a valid Chinese mobile number."},
			{Field: "items[2]", Key: "validation.master_card", Message: "The items[2] must be a valid MasterCard number."},
		}, resp.Errors)
	})

	t.Run("limits", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/check/batch", `{"items":[]}`, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "empty_batch", decode[checkapi.ErrorResponse](t, rec).Error.Code)

		item := `{"kind":"digit","value":"1"}`
		body := `{"items":[` + strings.Join([]string{item, item, item, item}, ",") + `]}`
		rec = do(t, h, http.MethodPost, "/check/batch", body, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "too_many_items", decode[checkapi.ErrorResponse](t, rec).Error.Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/check/batch", `{"items":[{"field":"x","kind":"ssn","value":"1"}]}`, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decode[checkapi.ErrorResponse](t, rec)
		assert.Equal(t, "unknown_kind", errResp.Error.Code)
		assert.Contains(t, errResp.Error.Message, "x:")
	})
}
