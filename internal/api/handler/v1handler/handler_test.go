package v1handler_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"net/http"
	"net/http/httptest"
	"net/url"
	"qrgen/internal/api/handler/v1handler"
	"qrgen/internal/generator"
	mockgenerator "qrgen/internal/generator/mock"
	"qrgen/pkg/controller"
	"qrgen/pkg/domain"
	"qrgen/pkg/logger"
	"qrgen/pkg/qrdecoder"
	"qrgen/pkg/qrencoder/skip2qr"
	"qrgen/pkg/serrors"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const exampleURL = "https://example.com"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newRouter(gen generator.Generator) http.Handler {
	r := chi.NewRouter()
	r.Route("/v1", v1handler.New(v1handler.Deps{Generator: gen}, v1handler.Options{MaxBodyBytes: 4096}).Routes)

	return r
}

func newRealRouter(t *testing.T) http.Handler {
	t.Helper()

	gen, err := generator.New(skip2qr.New(), generator.DefaultOptions(), nil)
	require.NoError(t, err)

	return newRouter(gen)
}

func do(h http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decodePNG(t *testing.T, body []byte) string {
	t.Helper()

	img, _, err := image.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	text, err := qrdecoder.Decode(img)
	require.NoError(t, err)

	return text
}

func TestGetQR_PNGRoundTrip(t *testing.T) {
	rec := do(newRealRouter(t), http.MethodGet, "/v1/qr?url="+url.QueryEscape(exampleURL), "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "qrcode.png")
	require.Equal(t, exampleURL, decodePNG(t, rec.Body.Bytes()))
}

func TestPostQR_JSONDataURI(t *testing.T) {
	rec := do(newRealRouter(t), http.MethodPost, "/v1/qr", `{"url":"https://example.com","scale":4}`,
		map[string]string{"Accept": "application/json"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp v1handler.QRResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, exampleURL, resp.URL)
	require.Equal(t, "highest", resp.Level)
	require.Equal(t, resp.Width, resp.Height)
	require.Equal(t, (17+4*resp.Version+8)*4, resp.Width)

	raw, ok := strings.CutPrefix(resp.DataURI, "data:image/png;base64,")
	require.True(t, ok, "unexpected data URI prefix")
	png, err := base64.StdEncoding.DecodeString(raw)
	require.NoError(t, err)
	require.Equal(t, exampleURL, decodePNG(t, png))
}

func TestGetQR_JPEG(t *testing.T) {
	rec := do(newRealRouter(t), http.MethodGet, "/v1/qr?format=jpeg&url="+url.QueryEscape(exampleURL), "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
}

func TestQR_Errors(t *testing.T) {
	cases := []struct {
		name   string
		method string
		target string
		body   string
		status int
		kind   string
		reason string
	}{
		{
			name: "empty url", method: http.MethodGet, target: "/v1/qr",
			status: http.StatusBadRequest, kind: "INVALID_INPUT", reason: "EMPTY",
		},
		{
			name: "unsupported scheme", method: http.MethodPost, target: "/v1/qr", body: `{"url":"ftp://example.com"}`,
			status: http.StatusBadRequest, kind: "INVALID_INPUT", reason: "UNSUPPORTED_SCHEME",
		},
		{
			name: "malformed body", method: http.MethodPost, target: "/v1/qr", body: `{"url":`,
			status: http.StatusBadRequest, kind: "BAD_REQUEST",
		},
		{
			name: "bad scale", method: http.MethodGet, target: "/v1/qr?scale=big&url=https://example.com",
			status: http.StatusBadRequest, kind: "BAD_REQUEST",
		},
		{
			name: "scale above maximum", method: http.MethodGet, target: "/v1/qr?scale=1000&url=https://example.com",
			status: http.StatusBadRequest, kind: "BAD_REQUEST",
		},
		{
			name: "negative scale", method: http.MethodPost, target: "/v1/qr", body: `{"url":"https://example.com","scale":-2}`,
			status: http.StatusBadRequest, kind: "BAD_REQUEST",
		},
		{
			name: "bad format", method: http.MethodGet, target: "/v1/qr?format=gif&url=https://example.com",
			status: http.StatusBadRequest, kind: "BAD_REQUEST",
		},
		{
			name: "too long", method: http.MethodPost, target: "/v1/qr",
			body:   `{"url":"https://example.com/` + strings.Repeat("a", 1500) + `"}`,
			status: http.StatusUnprocessableEntity, kind: "ENCODING_FAILED",
		},
		{
			name: "body too large", method: http.MethodPost, target: "/v1/qr",
			body:   `{"url":"https://example.com/` + strings.Repeat("a", 5000) + `"}`,
			status: http.StatusRequestEntityTooLarge, kind: "PAYLOAD_TOO_LARGE",
		},
		{
			name: "format too long", method: http.MethodPost, target: "/v1/qr",
			body:   `{"url":"https://example.com","format":"` + strings.Repeat("p", 20) + `"}`,
			status: http.StatusBadRequest, kind: "BAD_REQUEST",
		},
	}

	h := newRealRouter(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(h, tc.method, tc.target, tc.body, nil)
			require.Equal(t, tc.status, rec.Code)

			var resp controller.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, tc.kind, resp.Kind)
			require.Equal(t, tc.reason, resp.Reason)
			require.NotEmpty(t, resp.Error)
		})
	}
}

func TestGetQR_UsesScaleOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mockgenerator.NewMockGenerator(ctrl)

	gen.EXPECT().GenerateScaled(gomock.Any(), exampleURL, 3).
		Return(&domain.QRImage{Content: exampleURL, Image: image.NewGray(image.Rect(0, 0, 3, 3))}, nil)

	rec := do(newRouter(gen), http.MethodGet, "/v1/qr?scale=3&url="+url.QueryEscape(exampleURL), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetQR_InternalErrorHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mockgenerator.NewMockGenerator(ctrl)

	gen.EXPECT().Generate(gomock.Any(), exampleURL).Return(nil, errors.New("secret detail"))

	rec := do(newRouter(gen), http.MethodGet, "/v1/qr?url="+url.QueryEscape(exampleURL), "", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "secret detail")
}

func TestPostValidate(t *testing.T) {
	cases := []struct {
		url    string
		valid  bool
		reason string
	}{
		{url: exampleURL, valid: true},
		{url: "", reason: "EMPTY"},
		{url: "example.com", reason: "MISSING_SCHEME"},
		{url: "http://localhost", reason: "MISSING_DOMAIN"},
		{url: "http://-bad-.com", reason: "MALFORMED_DOMAIN_LABEL"},
	}

	h := newRealRouter(t)
	for _, tc := range cases {
		body, err := json.Marshal(v1handler.ValidateRequest{URL: tc.url})
		require.NoError(t, err)

		rec := do(h, http.MethodPost, "/v1/validate", string(body), nil)
		require.Equal(t, http.StatusOK, rec.Code, tc.url)

		var resp v1handler.ValidateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, tc.valid, resp.Valid, tc.url)
		require.Equal(t, tc.reason, resp.Reason, tc.url)
		require.Equal(t, tc.valid, resp.Message == "", tc.url)
	}
}

func TestPostValidate_MalformedBody(t *testing.T) {
	rec := do(newRealRouter(t), http.MethodPost, "/v1/validate", "not json", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostValidate_BodyTooLarge(t *testing.T) {
	body := `{"url":"https://example.com/` + strings.Repeat("a", 5000) + `"}`
	rec := do(newRealRouter(t), http.MethodPost, "/v1/validate", body, nil)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var resp controller.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "PAYLOAD_TOO_LARGE", resp.Kind)
}

func TestErrorKindsMapToStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mockgenerator.NewMockGenerator(ctrl)

	gen.EXPECT().Generate(gomock.Any(), exampleURL).
		Return(nil, serrors.Wrap(serrors.ErrEncodingFailed, errors.New("boom"), "could not encode URL"))

	rec := do(newRouter(gen), http.MethodGet, "/v1/qr?url="+url.QueryEscape(exampleURL), "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
