package config

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/store"
	"Food-Wastage-Management/internal/storetest"
	"Food-Wastage-Management/pkg/jwt"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  bool            `json:"status"`
	Level   domain.Level    `json:"level"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T, secret string) *fiber.App {
	t.Helper()
	t.Setenv("ACCESS_LOG_PATH", filepath.Join(t.TempDir(), "logs", "access.log"))
	t.Setenv("RATE_LIMIT_MAX", "0")
	t.Setenv("JWT_SECRET", secret)

	ready, executor := storetest.NewSQLite(t)
	storetest.SeedSample(t, executor)

	app, err := NewApp(ready, zerolog.Nop())
	require.NoError(t, err)
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string, headers ...string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestNewAppRequiresGate(t *testing.T) {
	app, err := NewApp(store.Ready{}, zerolog.Nop())
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestPing(t *testing.T) {
	app := newTestApp(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.MessageSuccessPing, body["message"])
}

func TestTableRoutes(t *testing.T) {
	app := newTestApp(t, "")

	t.Run("list tables", func(t *testing.T) {
		status, env := do(t, app, http.MethodGet, "/api/v1/tables", "")
		assert.Equal(t, fiber.StatusOK, status)

		var schemas []domain.TableSchema
		require.NoError(t, json.Unmarshal(env.Data, &schemas))
		assert.Len(t, schemas, len(domain.AllTables))
	})

	t.Run("browse with text filter", func(t *testing.T) {
		status, env := do(t, app, http.MethodGet, "/api/v1/tables/Providers?City=spring", "")
		assert.Equal(t, fiber.StatusOK, status)

		var res domain.BrowseResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, 3, res.Total)
		assert.Equal(t, 2, res.Matched)
	})

	t.Run("browse with bad range", func(t *testing.T) {
		status, env := do(t, app, http.MethodGet, "/api/v1/tables/Food_Listings?Quantity_min=lots", "")
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, env.Error, "Quantity_min")
	})

	t.Run("create", func(t *testing.T) {
		status, env := do(t, app, http.MethodPost, "/api/v1/tables/Providers",
			`{"fields":{"Provider_ID":10,"Name":"Acme Foods","City":"Springfield","Contact":""}}`)
		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, domain.LevelSuccess, env.Level)

		var res domain.MutationResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, int64(10), res.RecordID)
		assert.Equal(t, []string{"Provider_ID", "Name", "City"}, res.Columns)
	})

	t.Run("create with nothing to insert", func(t *testing.T) {
		status, env := do(t, app, http.MethodPost, "/api/v1/tables/Providers", `{"fields":{"Name":"","Provider_ID":0}}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, domain.LevelWarning, env.Level)
		assert.Contains(t, env.Error, "no data to insert")
	})

	t.Run("missing fields object is a warning", func(t *testing.T) {
		status, env := do(t, app, http.MethodPost, "/api/v1/tables/Providers", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, domain.LevelWarning, env.Level)
		assert.Contains(t, env.Error, "no data to insert")

		status, env = do(t, app, http.MethodPut, "/api/v1/tables/Providers/1", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, domain.LevelWarning, env.Level)
		assert.Contains(t, env.Error, "no fields to update")
	})

	t.Run("text filter on numeric column", func(t *testing.T) {
		status, env := do(t, app, http.MethodGet, "/api/v1/tables/Food_Listings?Quantity=1", "")
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, env.Error, "Quantity_min")
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		status, env := do(t, app, http.MethodPost, "/api/v1/tables/Food_Listings", `{"fields":{"Food_Name":"Beans","Quantity":-5}}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, env.Error, "must not be negative")
	})

	t.Run("create in unknown table", func(t *testing.T) {
		status, env := do(t, app, http.MethodPost, "/api/v1/tables/Donations", `{"fields":{"Name":"x"}}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, domain.LevelError, env.Level)
	})

	t.Run("update", func(t *testing.T) {
		status, _ := do(t, app, http.MethodPut, "/api/v1/tables/Providers/1", `{"fields":{"City":"Capital City"}}`)
		assert.Equal(t, fiber.StatusOK, status)

		_, env := do(t, app, http.MethodGet, "/api/v1/tables/Providers?City=capital", "")
		var res domain.BrowseResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, 1, res.Matched)
	})

	t.Run("update with bad id", func(t *testing.T) {
		status, _ := do(t, app, http.MethodPut, "/api/v1/tables/Providers/abc", `{"fields":{"City":"x"}}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("delete cascades claims", func(t *testing.T) {
		status, env := do(t, app, http.MethodDelete, "/api/v1/tables/Food_Listings/1", "")
		assert.Equal(t, fiber.StatusOK, status)

		var res domain.MutationResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, int64(1), res.RowsAffected)
		assert.Equal(t, int64(2), res.DependentsDeleted)
	})

	t.Run("delete missing record", func(t *testing.T) {
		status, env := do(t, app, http.MethodDelete, "/api/v1/tables/Providers/999", "")
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, domain.LevelWarning, env.Level)
		assert.Equal(t, "no record found with Provider_ID = 999", env.Error)
	})
}

func TestContactRoute(t *testing.T) {
	app := newTestApp(t, "")

	status, env := do(t, app, http.MethodGet, "/api/v1/contacts/provider/2", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), "555-0102")

	status, env = do(t, app, http.MethodGet, "/api/v1/contacts/receiver/42", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, domain.LevelWarning, env.Level)

	status, _ = do(t, app, http.MethodGet, "/api/v1/contacts/donor/1", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAnalysisRoutes(t *testing.T) {
	app := newTestApp(t, "")

	status, env := do(t, app, http.MethodGet, "/api/v1/analyses", "")
	assert.Equal(t, fiber.StatusOK, status)
	var infos []domain.AnalysisInfo
	require.NoError(t, json.Unmarshal(env.Data, &infos))
	assert.Len(t, infos, len(domain.AllAnalyses))

	status, env = do(t, app, http.MethodPost, "/api/v1/analyses/run", `{"name":"Total Food Quantity Available"}`)
	assert.Equal(t, fiber.StatusOK, status)
	var res domain.AnalysisResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Equal(t, 1, res.Data.Len())
	assert.EqualValues(t, 15, res.Data.Rows[0][0])

	status, env = do(t, app, http.MethodPost, "/api/v1/analyses/run", `{"name":"Provider Contact Info by City"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.LevelWarning, env.Level)

	status, env = do(t, app, http.MethodPost, "/api/v1/analyses/run", `{"name":"Provider Contact Info by City","param":"Atlantis"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, domain.LevelInfo, env.Level)
	assert.Equal(t, domain.MessageNoDataAnalysis, env.Message)

	status, _ = do(t, app, http.MethodPost, "/api/v1/analyses/run", `{"name":"Nope"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestPlaygroundRoute(t *testing.T) {
	t.Run("open without secret", func(t *testing.T) {
		app := newTestApp(t, "")

		status, env := do(t, app, http.MethodPost, "/api/v1/playground",
			`{"sql":"SELECT City, COUNT(*) AS n FROM Providers GROUP BY City ORDER BY City","chart":"Pie"}`)
		assert.Equal(t, fiber.StatusOK, status)

		var res domain.PlaygroundResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.NotEmpty(t, res.RunID)
		assert.Equal(t, 2, res.Data.Len())
		require.NotNil(t, res.Chart)
		assert.Equal(t, domain.ChartPie, res.Chart.Type)

		status, env = do(t, app, http.MethodPost, "/api/v1/playground", `{"sql":"   "}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, domain.LevelWarning, env.Level)

		status, env = do(t, app, http.MethodPost, "/api/v1/playground", `{"sql":"SELEC * FORM x"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, domain.LevelError, env.Level)
	})

	t.Run("guarded with secret", func(t *testing.T) {
		app := newTestApp(t, "test-secret")
		body := `{"sql":"SELECT Name FROM Receivers ORDER BY Receiver_ID"}`

		status, _ := do(t, app, http.MethodPost, "/api/v1/playground", body)
		assert.Equal(t, fiber.StatusUnauthorized, status)

		status, _ = do(t, app, http.MethodPost, "/api/v1/playground", body, fiber.HeaderAuthorization, "Bearer not-a-token")
		assert.Equal(t, fiber.StatusUnauthorized, status)

		token, err := jwt.NewJWTService("test-secret").GenerateOperatorToken("ops", time.Hour)
		require.NoError(t, err)
		status, env := do(t, app, http.MethodPost, "/api/v1/playground", body, fiber.HeaderAuthorization, "Bearer "+token)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, string(env.Data), "Food Bank North")

		// reads stay open
		status, _ = do(t, app, http.MethodGet, "/api/v1/tables/Receivers", "")
		assert.Equal(t, fiber.StatusOK, status)
	})
}
