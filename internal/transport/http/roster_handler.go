package http

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/light-bringer/wardrobe-catalog/internal/app/roster"
	"github.com/light-bringer/wardrobe-catalog/internal/app/roster/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/apperr"
)

// RosterService is the part of roster.Roster the handler needs.
type RosterService interface {
	AddEmployee(ctx context.Context, in roster.NewEmployee) (domain.EmployeeSnapshot, error)
	DeleteEmployee(ctx context.Context, employeeID int64) error
	FindByNationalID(ctx context.Context, nationalID string) (domain.EmployeeSnapshot, error)
	ListAll(ctx context.Context) ([]domain.EmployeeSnapshot, error)
	ListAllByJoiningDate(ctx context.Context) ([]domain.EmployeeSnapshot, error)
}

// RosterHandler serves the employee endpoints.
type RosterHandler struct {
	svc    RosterService
	logger *zap.Logger
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(svc RosterService, logger *zap.Logger) *RosterHandler {
	return &RosterHandler{svc: svc, logger: logger}
}

// AddEmployeeRequest is the body of POST /api/v1/employees.
type AddEmployeeRequest struct {
	Name          string          `json:"name"`
	DateOfJoining string          `json:"date_of_joining"` // YYYY-MM-DD
	Phone         string          `json:"phone"`
	NationalID    string          `json:"national_id"`
	PayMode       string          `json:"pay_mode"`
	PayAmount     decimal.Decimal `json:"pay_amount"`
}

// ListEmployeesResponse holds a list of employees.
type ListEmployeesResponse struct {
	Employees []Employee `json:"employees"`
}

// AddEmployee handles POST /api/v1/employees.
func (h *RosterHandler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var req AddEmployeeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	joined, err := time.Parse(time.DateOnly, req.DateOfJoining)
	if err != nil {
		writeError(w, r, h.logger, apperr.Validationf(domain.FieldDateOfJoining, "%q is not a YYYY-MM-DD date", req.DateOfJoining))
		return
	}

	snap, err := h.svc.AddEmployee(r.Context(), roster.NewEmployee{
		Name:          req.Name,
		DateOfJoining: joined,
		Phone:         req.Phone,
		NationalID:    req.NationalID,
		PayMode:       req.PayMode,
		PayAmount:     req.PayAmount,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, employeeFromSnapshot(snap))
}

// ListEmployees handles GET /api/v1/employees, with ?sort=joined for joining
// date order.
func (h *RosterHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	var (
		list []domain.EmployeeSnapshot
		err  error
	)
	switch sort := r.URL.Query().Get("sort"); sort {
	case "":
		list, err = h.svc.ListAll(r.Context())
	case "joined":
		list, err = h.svc.ListAllByJoiningDate(r.Context())
	default:
		err = apperr.Validationf("sort", "unknown sort %q", sort)
	}
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	out := make([]Employee, 0, len(list))
	for _, e := range list {
		out = append(out, employeeFromSnapshot(e))
	}
	writeJSON(w, http.StatusOK, ListEmployeesResponse{Employees: out})
}

// GetByNationalID handles GET /api/v1/employees/by-national-id/{nid}.
func (h *RosterHandler) GetByNationalID(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.FindByNationalID(r.Context(), r.PathValue("nid"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, employeeFromSnapshot(snap))
}

// DeleteEmployee handles DELETE /api/v1/employees/{id}.
func (h *RosterHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := h.svc.DeleteEmployee(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
