package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Symantec/Dominator/lib/log"
	"github.com/Symantec/pamauth/lib/pwauth"
)

const (
	authPath          = "/auth"
	metricsPath       = "/prometheus_metrics"
	authenticatedUser = "X-Authenticated-User"
)

type authHandler struct {
	authenticator pwauth.PasswordAuthenticator
	backendName   string
	realm         string
	logger        log.DebugLogger
}

func (h *authHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	username, password, ok := r.BasicAuth()
	if !ok || username == "" {
		h.challenge(w)
		return
	}
	start := time.Now()
	valid, err := h.authenticator.PasswordAuthenticate(username,
		[]byte(password))
	metricLogAuthDuration(h.backendName, time.Since(start))
	metricLogAuthOperation(h.backendName, valid, err)
	if err != nil {
		h.logger.Printf("password check for %s failed: %s", username, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError)
		return
	}
	if !valid {
		h.logger.Debugf(1, "rejected %s from %s", username, r.RemoteAddr)
		h.challenge(w)
		return
	}
	h.logger.Debugf(1, "accepted %s from %s", username, r.RemoteAddr)
	w.Header().Set(authenticatedUser, username)
	w.WriteHeader(http.StatusOK)
}

func (h *authHandler) challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate",
		fmt.Sprintf("Basic realm=%q, charset=\"UTF-8\"", h.realm))
	http.Error(w, http.StatusText(http.StatusUnauthorized),
		http.StatusUnauthorized)
}
