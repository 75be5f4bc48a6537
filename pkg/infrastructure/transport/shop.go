package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"sales/pkg/domain/model"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request, _ *model.Session) {
	products, err := h.services.Products.ListProducts(r.Context())
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductsJSON(products))
}

func (h *Handler) viewCart(w http.ResponseWriter, _ *http.Request, session *model.Session) {
	writeJSON(w, http.StatusOK, toCartJSON(session.Cart))
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request, session *model.Session) {
	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeFailure(w, err)
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.writeFailure(w, model.ErrProductNotFound)
		return
	}

	if _, err := h.services.Cart.AddToCart(r.Context(), session.Cart, productID); err != nil {
		h.writeFailure(w, err)
		return
	}
	h.saveCart(w, r, session, http.StatusCreated)
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request, session *model.Session) {
	var req setQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeFailure(w, err)
		return
	}

	if err := session.Cart.SetQuantity(cartIndex(r), req.Quantity); err != nil {
		h.writeFailure(w, err)
		return
	}
	h.saveCart(w, r, session, http.StatusOK)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request, session *model.Session) {
	if err := session.Cart.Remove(cartIndex(r)); err != nil {
		h.writeFailure(w, err)
		return
	}
	h.saveCart(w, r, session, http.StatusOK)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request, session *model.Session) {
	session.Cart.Clear()
	h.saveCart(w, r, session, http.StatusOK)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request, session *model.Session) {
	order, err := h.services.Checkout.PlaceOrder(r.Context(), session.Username, session.Cart)
	if errors.Is(err, model.ErrCartEmpty) {
		cart := toCartJSON(session.Cart)
		cart.Message = "your cart is empty"
		writeJSON(w, http.StatusOK, cart)
		return
	}
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	// The order is already stored. A failed save leaves the old cart in the
	// session and is logged, not reported to the client.
	if err := h.sessions.Save(r.Context(), session); err != nil {
		h.logger.WithError(err).WithFields(log.Fields{
			"orderID":   order.ID,
			"username":  session.Username,
			"sessionID": session.ID,
		}).Error("order placed but session cart not cleared")
	}
	writeJSON(w, http.StatusCreated, toOrderJSON(*order))
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request, session *model.Session) {
	orders, err := h.services.Orders.ListUserOrders(r.Context(), session.Username)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrdersJSON(orders))
}

func (h *Handler) saveCart(w http.ResponseWriter, r *http.Request, session *model.Session, status int) {
	if err := h.sessions.Save(r.Context(), session); err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, status, toCartJSON(session.Cart))
}

// cartIndex reads the route's index. The route pattern only admits digits,
// so overflow is the only parse failure and maps to an unknown line.
func cartIndex(r *http.Request) int {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		return -1
	}
	return index
}
