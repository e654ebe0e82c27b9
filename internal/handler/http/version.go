package http

import "net/http"

// serverVersion is set once at startup from the build-stamped version
// in cmd/server.
var serverVersion = "N/A"

// SetVersion records the running build's version string.
func SetVersion(version string) {
	if version != "" {
		serverVersion = version
	}
}

func (h *Handler) getServerVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(serverVersion))
}
