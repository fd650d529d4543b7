package http

import (
	"net/http"

	"go.uber.org/zap"
)

// NewRouter registers every API route and wraps the mux with request id,
// logging and panic recovery.
func NewRouter(items *CatalogHandler, employees *RosterHandler, events *EventsHandler, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/items", items.AddItem)
	mux.HandleFunc("GET /api/v1/items", items.ListItems)
	mux.HandleFunc("GET /api/v1/items/out-of-stock", items.ListOutOfStock)
	mux.HandleFunc("GET /api/v1/items/{id}", items.GetItem)
	mux.HandleFunc("PUT /api/v1/items/{id}/stock", items.UpdateStock)
	mux.HandleFunc("POST /api/v1/discounts", items.ApplyDiscount)
	mux.HandleFunc("POST /api/v1/sweeps", items.Sweep)
	mux.Handle("GET /api/v1/events", events)

	mux.HandleFunc("POST /api/v1/employees", employees.AddEmployee)
	mux.HandleFunc("GET /api/v1/employees", employees.ListEmployees)
	mux.HandleFunc("GET /api/v1/employees/by-national-id/{nid}", employees.GetByNationalID)
	mux.HandleFunc("DELETE /api/v1/employees/{id}", employees.DeleteEmployee)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return Chain(mux, Recover(logger), RequestID(), Logging(logger))
}
