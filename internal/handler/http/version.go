package http

import (
	"net/http"

	"github.com/MKhiriev/go-config-keeper/internal/utils"
)

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteText(w, h.appInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
