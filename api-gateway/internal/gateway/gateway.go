package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"overcooked-delivery/logging"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL string
	StatsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Target picks the upstream base URL for an API path.
func (g *Gateway) Target(path string) (string, bool) {
	if strings.HasPrefix(path, "/api/restaurants/") && strings.HasSuffix(strings.TrimSuffix(path, "/"), "/stats") {
		return g.config.StatsSvcURL, true
	}
	for _, prefix := range []string{"/api/restaurants", "/api/meals", "/api/drinks", "/api/orders"} {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return g.config.OrderSvcURL, true
		}
	}
	return "", false
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	logger := zerolog.Ctx(r.Context())
	logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Str("target", targetURL).Msg("proxy")

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create upstream request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	if id := w.Header().Get(logging.RequestIDHeader); id != "" {
		req.Header.Set(logging.RequestIDHeader, id)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("target", targetURL).Msg("failed to proxy request")
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.Warn().Err(err).Msg("failed to copy upstream response")
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	target, ok := g.Target(r.URL.Path)
	if !ok {
		zerolog.Ctx(r.Context()).Debug().Str("path", r.URL.Path).Msg("unmatched API route")
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return logging.Middleware(r)
}
