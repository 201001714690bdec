package v1handler

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"qrgen/pkg/controller"
	"qrgen/pkg/domain"
	"qrgen/pkg/imagefile"
	"qrgen/pkg/serrors"
	"strconv"
	"strings"
)

// QRRequest is the body of POST /v1/qr.
type QRRequest struct {
	URL string `json:"url"`
	// Scale overrides the configured module scale when positive.
	Scale int `json:"scale,omitempty" validate:"gte=0"`
	// Format is "png" (default) or "jpeg".
	Format string `json:"format,omitempty" validate:"omitempty,max=8"`
}

// QRResponse is returned instead of raw image bytes when the client accepts JSON.
type QRResponse struct {
	URL     string `json:"url"`
	Version int    `json:"version"`
	Level   string `json:"level"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	DataURI string `json:"dataUri"`
}

// GetQR renders the URL given in the "url" query parameter.
func (h *Handler) GetQR(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	scale, err := parseScale(q.Get("scale"))
	if err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	h.render(w, r, QRRequest{URL: q.Get("url"), Scale: scale, Format: q.Get("format")})
}

// PostQR renders the URL given in a JSON QRRequest body.
func (h *Handler) PostQR(w http.ResponseWriter, r *http.Request) {
	var req QRRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	h.render(w, r, req)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, req QRRequest) {
	ctx := r.Context()

	format, err := parseFormat(req.Format)
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	var img *domain.QRImage
	if req.Scale > 0 {
		img, err = h.deps.Generator.GenerateScaled(ctx, req.URL, req.Scale)
	} else {
		img, err = h.deps.Generator.Generate(ctx, req.URL)
	}
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	var buf bytes.Buffer
	if err := imagefile.Encode(&buf, img.Image, format); err != nil {
		controller.WriteError(ctx, w, fmt.Errorf("could not encode image: %w", err))

		return
	}

	if acceptsJSON(r) {
		controller.WriteJSON(ctx, w, http.StatusOK, QRResponse{
			URL:     img.Content,
			Version: img.Version,
			Level:   string(img.Level),
			Width:   img.Width(),
			Height:  img.Height(),
			DataURI: "data:" + format.ContentType() + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		})

		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="qrcode.%s"`, format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func parseScale(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	scale, err := strconv.Atoi(raw)
	if err != nil || scale < 1 {
		return 0, serrors.With(serrors.ErrBadRequest, "scale must be a positive integer")
	}

	return scale, nil
}

func parseFormat(raw string) (imagefile.Format, error) {
	switch strings.ToLower(raw) {
	case "", "png":
		return imagefile.FormatPNG, nil
	case "jpg", "jpeg":
		return imagefile.FormatJPEG, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unsupported format %q", raw)
	}
}

func acceptsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
