package transport

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"sales/pkg/domain/model"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request, _ *model.Session) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeFailure(w, err)
		return
	}

	user, err := h.services.Users.CreateUser(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, userJSON{Username: user.Username})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request, _ *model.Session) {
	users, err := h.services.Users.ListUsers(r.Context())
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUsersJSON(users))
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request, _ *model.Session) {
	var req addProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeFailure(w, err)
		return
	}

	product, err := h.services.Products.AddProduct(r.Context(), req.Name, req.Price)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductJSON(*product))
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request, _ *model.Session) {
	overview, err := h.services.Admin.Overview(r.Context())
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOverviewJSON(overview))
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request, _ *model.Session) {
	orders, err := h.services.Orders.ListOrders(r.Context())
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrdersJSON(orders))
}

func (h *Handler) invoice(w http.ResponseWriter, r *http.Request, _ *model.Session) {
	orderRef := mux.Vars(r)["orderRef"]

	invoice, err := h.services.Invoices.Invoice(r.Context(), orderRef)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	w.Header().Set("Content-Type", invoice.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", invoice.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(invoice.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(invoice.Body)
}
