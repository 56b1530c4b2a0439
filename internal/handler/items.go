package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ItemRegistry_Go/internal/domain"
	"github.com/osse101/ItemRegistry_Go/internal/logger"
)

// ItemService is the read side of the item registry used by the HTTP handlers
type ItemService interface {
	Lookup(id int) (*domain.Item, bool)
	SearchByAlias(name string) (*domain.Item, bool)
	ClassOf(id int) (domain.ItemClass, bool)
	IsEquipment(id int) bool
	IsWearable(id int) bool
	All() []*domain.Item
	Len() int
	Generation() uint64
}

// ItemResponse is the JSON view of one item record
type ItemResponse struct {
	*domain.Item
	ClassName      string `json:"class_name"`
	SexName        string `json:"sex_name"`
	HasUseScript   bool   `json:"has_use_script"`
	HasEquipScript bool   `json:"has_equip_script"`
}

// EquipmentResponse reports how an id classifies, defined or not
type EquipmentResponse struct {
	ID          int    `json:"id"`
	Class       string `json:"class"`
	IsEquipment bool   `json:"is_equipment"`
	IsWearable  bool   `json:"is_wearable"`
	Defined     bool   `json:"defined"`
}

// StatsResponse summarizes the loaded registry
type StatsResponse struct {
	Records    int            `json:"records"`
	Equipment  int            `json:"equipment"`
	ByClass    map[string]int `json:"by_class"`
	Generation uint64         `json:"generation"`
}

func newItemResponse(it *domain.Item) ItemResponse {
	return ItemResponse{
		Item:           it,
		ClassName:      it.Class.String(),
		SexName:        it.Sex.String(),
		HasUseScript:   it.UseScript != nil,
		HasEquipScript: it.EquipScript != nil,
	}
}

func parseItemID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, URLParamItemID))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
		return 0, false
	}
	return id, true
}

// HandleGetItem returns one item record
// @Summary Get item
// @Description Returns the record stored for an item id
// @Tags items
// @Produce json
// @Param id path int true "Item id"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func HandleGetItem(svc ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseItemID(w, r)
		if !ok {
			return
		}

		it, found := svc.Lookup(id)
		if !found {
			logger.FromContext(r.Context()).Debug(LogMsgItemNotFound, "id", id)
			respondError(w, http.StatusNotFound, ErrMsgItemNotFound)
			return
		}

		respondJSON(w, http.StatusOK, newItemResponse(it))
	}
}

// HandleGetEquipment classifies an item id without creating a record
// @Summary Classify item
// @Description Reports the class of an id and whether it can be equipped or worn
// @Tags items
// @Produce json
// @Param id path int true "Item id"
// @Success 200 {object} EquipmentResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items/{id}/equipment [get]
func HandleGetEquipment(svc ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseItemID(w, r)
		if !ok {
			return
		}

		class, defined := svc.ClassOf(id)
		respondJSON(w, http.StatusOK, EquipmentResponse{
			ID:          id,
			Class:       class.String(),
			IsEquipment: svc.IsEquipment(id),
			IsWearable:  svc.IsWearable(id),
			Defined:     defined,
		})
	}
}

// HandleSearchAlias finds the first item with the given alias
// @Summary Search by alias
// @Description Returns the lowest-id item whose alias matches exactly
// @Tags items
// @Produce json
// @Param alias query string true "Item alias"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items [get]
func HandleSearchAlias(svc ItemService, cache *AliasCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alias := r.URL.Query().Get(QueryParamAlias)
		if alias == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, QueryParamAlias))
			return
		}

		it, found := cache.Search(svc, alias)
		if !found {
			logger.FromContext(r.Context()).Debug(LogMsgAliasNotFound, "alias", alias)
			respondError(w, http.StatusNotFound, ErrMsgItemNotFound)
			return
		}

		respondJSON(w, http.StatusOK, newItemResponse(it))
	}
}

// HandleItemStats summarizes the registry
// @Summary Registry statistics
// @Description Returns the record count broken down by class
// @Tags items
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /api/v1/items/stats [get]
func HandleItemStats(svc ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := svc.All()
		stats := StatsResponse{
			Records:    len(all),
			ByClass:    make(map[string]int),
			Generation: svc.Generation(),
		}
		for _, it := range all {
			stats.ByClass[it.Class.String()]++
			if svc.IsEquipment(it.ID) {
				stats.Equipment++
			}
		}

		respondJSON(w, http.StatusOK, stats)
	}
}
