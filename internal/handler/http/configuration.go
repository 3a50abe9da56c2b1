// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/utils"
	"github.com/MKhiriev/go-config-keeper/models"
)

// loadConfiguration answers GET /configuration/LoadConfigurationFromServer.
// A configuration is 200, a rejected identity 400 with the error list.
// Failures reaching or interpreting the configuration server end with an
// empty body and the status from errorStatuses.
func (h *Handler) loadConfiguration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	identity := models.ClientIdentity{
		IP:   query.Get("ip"),
		Name: query.Get("name"),
	}

	resp, err := h.gatewayService.LoadConfiguration(r.Context(), identity)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("error loading configuration")
		w.WriteHeader(status)
		return
	}

	status := http.StatusOK
	if len(resp.Errors) > 0 {
		status = http.StatusBadRequest
	}

	if _, err = utils.WriteJSON(w, resp, status); err != nil {
		log.Err(err).Msg("error writing configuration response")
	}
}

// loadNodesConfiguration answers GET /configuration/LoadNodesConfigurationFromServer.
// The nodeNames parameter is repeatable; omitting it requests every node.
func (h *Handler) loadNodesConfiguration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	request := models.NodeRequest{RequestedNames: r.URL.Query()["nodeNames"]}

	resp, err := h.gatewayService.LoadNodesConfiguration(r.Context(), request)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("error loading nodes configuration")
		w.WriteHeader(status)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing nodes configuration response")
	}
}
