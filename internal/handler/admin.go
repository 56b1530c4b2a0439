package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/osse101/ItemRegistry_Go/internal/domain"
	"github.com/osse101/ItemRegistry_Go/internal/item"
	"github.com/osse101/ItemRegistry_Go/internal/logger"
)

// Reloader rebuilds the item registry from database files
type Reloader interface {
	Reload(ctx context.Context, paths []string) ([]*item.LoadResult, error)
}

// ReloadResponse reports the outcome of a reload
type ReloadResponse struct {
	OK      bool     `json:"ok"`
	Loaded  int      `json:"loaded"`
	Failed  int      `json:"failed"`
	Records int      `json:"records"`
	Files   []string `json:"files"`
}

// HandleReloadItems reloads the item database files (admin only)
// @Summary Reload item database
// @Description Re-reads every configured item database file and swaps in the result
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/items/reload [post]
// @Security ApiKeyAuth
func HandleReloadItems(reloader Reloader, counter RecordCounter, paths []string, cache *AliasCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		log.Info(LogMsgReloadRequested, "files", paths)

		results, err := reloader.Reload(ctx, paths)
		if errors.Is(err, domain.ErrOpenDatabase) {
			log.Error(LogMsgReloadFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadFailed)
			return
		}

		if cache != nil {
			cache.Clear()
		}

		resp := ReloadResponse{
			OK:      err == nil,
			Records: counter.Len(),
			Files:   make([]string, 0, len(results)),
		}
		for _, res := range results {
			resp.Loaded += res.Loaded
			resp.Failed += res.Failed()
			resp.Files = append(resp.Files, res.Path)
		}

		if err != nil {
			log.Warn(LogMsgReloadPartial, "failed", resp.Failed, "error", err)
		} else {
			log.Info(LogMsgReloadDone, "loaded", resp.Loaded, "records", resp.Records)
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
