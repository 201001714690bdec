package v1handler

import (
	"net/http"
	"qrgen/pkg/controller"
)

// ValidateRequest is the body of POST /v1/validate.
type ValidateRequest struct {
	URL string `json:"url" validate:"max=8192"`
}

// ValidateResponse reports the validation outcome. Reason and Message are
// empty for valid URLs.
type ValidateResponse struct {
	URL     string `json:"url"`
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// PostValidate classifies a candidate URL. Rejected URLs are an ordinary
// outcome and answered with 200.
func (h *Handler) PostValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		controller.WriteError(r.Context(), w, err)

		return
	}

	res := h.deps.Generator.Validate(req.URL)
	resp := ValidateResponse{URL: res.URL, Valid: res.Valid()}
	if !res.Valid() {
		resp.Reason = res.Reason.String()
		resp.Message = res.Reason.Error()
	}

	controller.WriteJSON(r.Context(), w, http.StatusOK, resp)
}
