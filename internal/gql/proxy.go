package gql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/instansys/postserver/pkg"
)

// Proxy relays GraphQL requests to an externally hosted instance of the
// same contract. Pure passthrough: the request/response shape is
// preserved and non-2xx upstream statuses are forwarded verbatim.
type Proxy struct {
	upstreamURL string
	httpClient  *http.Client
}

func NewProxy(upstreamURL string, httpClient *http.Client) *Proxy {
	return &Proxy{
		upstreamURL: upstreamURL,
		httpClient:  httpClient,
	}
}

func (p *Proxy) HandleProxy(w http.ResponseWriter, r *http.Request) {
	setProxyCorsHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req RequestEnvelope
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("graphql proxy, unmarshal json body: %s", err)
		writeErrorsResponse(w, http.StatusInternalServerError, "invalid request body")
		return
	}

	if req.Query == "" {
		writeErrorsResponse(w, http.StatusBadRequest, "GraphQL query is required")
		return
	}

	reqJson, err := json.Marshal(req)
	if err != nil {
		log.Errorf("graphql proxy, marshal upstream request: %s", err)
		writeErrorsResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}

	upstreamReq, err := http.NewRequestWithContext(r.Context(), http.MethodPost, p.upstreamURL, bytes.NewReader(reqJson))
	if err != nil {
		log.Errorf("graphql proxy, create upstream request: %s", err)
		writeErrorsResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}
	upstreamReq.Header.Set("Content-Type", pkg.ContentType.JSON)

	resp, err := p.httpClient.Do(upstreamReq)
	if err != nil {
		log.Errorf("graphql proxy, upstream call: %s", err)
		writeErrorsResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warnf("graphql proxy, close upstream response body: %s", err)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("graphql proxy, read upstream response: %s", err)
		writeErrorsResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warnf("graphql proxy, upstream returned %d", resp.StatusCode)
		writeErrorsResponse(w, resp.StatusCode, fmt.Sprintf(
			"external GraphQL server error: %d - %s", resp.StatusCode, string(respBody),
		))
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBody)
}

func setProxyCorsHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
