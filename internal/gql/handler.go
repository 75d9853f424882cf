package gql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	log "github.com/sirupsen/logrus"

	"github.com/instansys/postserver/pkg"
)

// RequestEnvelope is the transport wrapper for an incoming GraphQL call
type RequestEnvelope struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type ErrorsEnvelope struct {
	Errors []ErrorDescriptor `json:"errors"`
}

type ErrorDescriptor struct {
	Message string `json:"message"`
}

type Handler struct {
	schema graphql.Schema
}

func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{
		schema: schema,
	}
}

// HandleQuery executes a GraphQL request against the schema. Resolver
// errors (bad input, not found, storage faults) are part of the 200
// response per the GraphQL convention; only a missing query document
// (400) or an unexpected fault (500) changes the transport status.
func (h *Handler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("graphql request handling panic: %v", rec)
			writeErrorsResponse(w, http.StatusInternalServerError, "internal server error")
		}
	}()

	var req RequestEnvelope
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("graphql request, unmarshal json body: %s", err)
		writeErrorsResponse(w, http.StatusInternalServerError, "invalid request body")
		return
	}

	if req.Query == "" {
		writeErrorsResponse(w, http.StatusBadRequest, "GraphQL query is required")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		Context:        r.Context(),
	})

	if len(result.Errors) > 0 {
		log.Tracef("graphql request finished with %d errors, first: %s", len(result.Errors), result.Errors[0].Message)
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal graphql result: %s", err)
		writeErrorsResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resultJson)
}

func writeErrorsResponse(w http.ResponseWriter, statusCode int, message string) {
	envelope := ErrorsEnvelope{
		Errors: []ErrorDescriptor{{Message: message}},
	}
	envelopeJson, err := json.Marshal(envelope)
	if err != nil {
		log.Errorf("marshal errors envelope: %s", err)
		http.Error(w, message, statusCode)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, envelopeJson, statusCode)
}
