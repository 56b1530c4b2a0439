package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemRegistry_Go/internal/handler"
	"github.com/osse101/ItemRegistry_Go/internal/item"
	"github.com/osse101/ItemRegistry_Go/internal/script"
	"github.com/osse101/ItemRegistry_Go/internal/testing/leaktest"
)

const testAPIKey = "test-key"

const testItemDB = `// id,alias,name,class,buy,sell,weight,atk,def,range,mbonus,slots,sex,loc,wlv,elv,look
501,Red_Potion,Red Potion,0,50,0,70,0,0,0,0,0,2,0,0,0,0,{ itemheal 45,0; },{}
1201,Knife,Knife,4,0,25,400,17,0,1,0,3,2,2,1,1,1,{},{ bonus bStr,1; }
`

func newTestServer(t *testing.T) (*Server, *item.Registry, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "item_db.txt")
	require.NoError(t, os.WriteFile(path, []byte(testItemDB), 0o644))

	registry := item.NewRegistry()
	loader := item.NewLoader(registry, script.NewBlockCompiler())
	_, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	cache := handler.NewAliasCache(16, time.Minute)
	srv := NewServer(0, testAPIKey, nil, registry, loader, []string{path}, cache)
	return srv, registry, path
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_ItemRoutes(t *testing.T) {
	srv, _, _ := newTestServer(t)

	t.Run("get item", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest("GET", "/api/v1/items/1201", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Knife", body["alias"])
		assert.Equal(t, float64(50), body["buy_price"], "buy price derived from sell price")
		assert.Equal(t, true, body["has_equip_script"])
	})

	t.Run("unknown item", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest("GET", "/api/v1/items/9999", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("alias search", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest("GET", "/api/v1/items?alias=Red_Potion", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":501`)
		assert.Contains(t, rec.Body.String(), `"sell_price":25`)
	})

	t.Run("equipment of undefined id", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest("GET", "/api/v1/items/2205/equipment", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.EquipmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ARMOR", resp.Class)
		assert.True(t, resp.IsEquipment)
		assert.False(t, resp.Defined)
	})

	t.Run("stats", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest("GET", "/api/v1/items/stats", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.StatsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Records)
		assert.Equal(t, 1, resp.Equipment)
	})

	t.Run("security headers", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest("GET", "/healthz", nil))
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentTypeOptions))
	})
}

func TestServer_Readyz(t *testing.T) {
	srv, registry, _ := newTestServer(t)

	rec := serve(srv, httptest.NewRequest("GET", "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	registry.Clear()
	rec = serve(srv, httptest.NewRequest("GET", "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	srv, _, _ := newTestServer(t)
	serve(srv, httptest.NewRequest("GET", "/api/v1/items/501", nil))

	rec := serve(srv, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "itemdb_records")
	assert.Contains(t, rec.Body.String(), `path="/api/v1/items/{id}"`)
}

func TestServer_AdminReload(t *testing.T) {
	srv, registry, path := newTestServer(t)

	t.Run("requires api key", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest("POST", "/api/v1/admin/items/reload", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("picks up file changes", func(t *testing.T) {
		updated := testItemDB + "1202,Cutter,Cutter,4,1250,0,450,25,0,1,0,3,2,2,1,1,1\n"
		require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

		req := httptest.NewRequest("POST", "/api/v1/admin/items/reload", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)
		rec := serve(srv, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.ReloadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.Equal(t, 3, resp.Loaded)
		assert.Equal(t, 3, resp.Records)
		assert.True(t, registry.Exists(1202))
	})

	t.Run("missing file keeps registry", func(t *testing.T) {
		require.NoError(t, os.Remove(path))

		req := httptest.NewRequest("POST", "/api/v1/admin/items/reload", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)
		rec := serve(srv, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, 3, registry.Len())
	})
}

func TestServer_StartStop(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		srv, _, _ := newTestServer(t)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()
		time.Sleep(50 * time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, srv.Stop(ctx))
		assert.ErrorIs(t, <-errCh, http.ErrServerClosed)
	})
}
