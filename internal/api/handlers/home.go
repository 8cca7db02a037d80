package handlers

import "net/http"

// Home is the service banner endpoint.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"message": "Travelling Salesman Backend Running"})
}
