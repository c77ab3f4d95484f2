package http

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/Flacelol/caffewebsite/internal/cafe/service"
	"github.com/Flacelol/caffewebsite/pkg/httpx"
	"github.com/Flacelol/caffewebsite/pkg/slogx"
)

type MenuHandler struct {
	MenuService *service.MenuService
}

// HandleListCategories handles GET /api/categories.
func (h *MenuHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	categories, err := h.MenuService.ListCategories(r.Context())
	if err != nil {
		log.Error("list categories failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, categories)
}

// HandleListMenu handles GET /api/menu. With ?available=true only items
// currently on sale are included; the admin panel omits the flag and sees
// everything.
func (h *MenuHandler) HandleListMenu(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	availableOnly := r.URL.Query().Get("available") == "true"

	menu, err := h.MenuService.ListMenu(r.Context(), availableOnly)
	if err != nil {
		log.Error("list menu failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, menu)
}

// HandleAddItem handles POST /api/menu.
//
// Responses:
//   - 201: item created
//   - 400: malformed body, field errors, or unknown category
func (h *MenuHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// A body with no price at all reads the same as price 0 after decoding,
	// so the pointer distinguishes "absent" from "free item".
	price := math.NaN()
	if req.Price != nil {
		price = *req.Price
	}

	item, err := h.MenuService.AddItem(r.Context(), service.AddItemParams{
		Name:        req.Name,
		Price:       price,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.Image,
	})
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			httpx.WriteJSON(w, http.StatusBadRequest, errorsResponse{Errors: vErr.Fields})
		case errors.Is(err, service.ErrCategoryNotFound):
			httpx.WriteError(w, http.StatusBadRequest, "category not found")
		default:
			log.Error("add item failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, addItemResponse{
		Message: "item added",
		ID:      item.ID,
	})
}

// HandleSetAvailability handles PATCH /api/menu/{id}/availability.
func (h *MenuHandler) HandleSetAvailability(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())
	id := r.PathValue("id")

	var req availabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Available == nil {
		httpx.WriteError(w, http.StatusBadRequest, "available must be a boolean")
		return
	}

	item, err := h.MenuService.SetAvailability(r.Context(), id, *req.Available)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "item not found")
			return
		}
		log.Error("set availability failed", "error", err, "item_id", id)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, item)
}

// HandleDeleteItem handles DELETE /api/menu/{id}.
func (h *MenuHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())
	id := r.PathValue("id")

	if err := h.MenuService.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "item not found")
			return
		}
		log.Error("delete item failed", "error", err, "item_id", id)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, messageResponse{Message: "item deleted"})
}

// HandleExport handles GET /api/menu/export. The payload is a full menu
// snapshot the admin panel offers as a download.
func (h *MenuHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	export, err := h.MenuService.Export(r.Context())
	if err != nil {
		log.Error("menu export failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="menu-export.json"`)
	httpx.WriteJSON(w, http.StatusOK, export)
}
