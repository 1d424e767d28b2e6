package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient(DefaultBaseURL)

	assert.NotNil(t, client)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 15*time.Second, client.httpClient.Timeout)
}

// TestClient_All проверяет загрузку полного списка стран
func TestClient_All(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/all", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":{"common":"Germany","official":"Federal Republic of Germany"},"cca3":"DEU","region":"Europe","capital":["Berlin"],"population":83240525},
			{"name":{"common":"Japan","official":"Japan"},"cca3":"JPN","region":"Asia","capital":["Tokyo"],"population":125836021}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	countries, err := client.All(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Germany", countries[0].Name.Common)
	assert.Equal(t, "DEU", countries[0].Code)
	assert.Equal(t, "Europe", countries[0].Region)
	assert.Equal(t, int64(83240525), countries[0].Population)
}

// TestClient_All_DropsInvalidRecords проверяет фильтрацию неполных записей
func TestClient_All_DropsInvalidRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Вторая запись без cca3, третья без имени - обе должны быть отброшены
		_, _ = w.Write([]byte(`[
			{"name":{"common":"Germany"},"cca3":"DEU","region":"Europe"},
			{"name":{"common":"Nowhere"},"region":"Europe"},
			{"cca3":"XXX","region":"Europe"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	countries, err := client.All(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "DEU", countries[0].Code)
}

// TestClient_ByName проверяет поиск по имени
func TestClient_ByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/name/ger", r.URL.Path)

		_, _ = w.Write([]byte(`[{"name":{"common":"Germany"},"cca3":"DEU","region":"Europe"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	countries, err := client.ByName(context.Background(), "ger")
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "Germany", countries[0].Name.Common)
}

// TestClient_ByName_NotFound проверяет обработку 404 от API
func TestClient_ByName_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"message":"Not Found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.ByName(context.Background(), "xyzzy")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestClient_ByRegion проверяет фильтр по региону
func TestClient_ByRegion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/region/Europe", r.URL.Path)

		_, _ = w.Write([]byte(`[
			{"name":{"common":"Germany"},"cca3":"DEU","region":"Europe"},
			{"name":{"common":"France"},"cca3":"FRA","region":"Europe"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	countries, err := client.ByRegion(context.Background(), "Europe")
	require.NoError(t, err)
	assert.Len(t, countries, 2)
}

// TestClient_ByCode проверяет поиск по коду страны
func TestClient_ByCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/alpha/DEU", r.URL.Path)

		// API возвращает коллекцию из одного элемента
		_, _ = w.Write([]byte(`[{"name":{"common":"Germany"},"cca3":"DEU","region":"Europe","borders":["FRA","POL"]}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	country, err := client.ByCode(context.Background(), "DEU")
	require.NoError(t, err)
	assert.Equal(t, "Germany", country.Name.Common)
	assert.Equal(t, []string{"FRA", "POL"}, country.Borders)
}

// TestClient_ByCode_NotFound проверяет поиск по несуществующему коду
func TestClient_ByCode_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.ByCode(context.Background(), "XXX")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestClient_ServerError проверяет обработку ошибок сервера
func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.All(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "status 500")
}

// TestClient_InvalidJSON проверяет обработку некорректного ответа
func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.All(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

// TestClient_ContextCancellation проверяет отмену запроса через контекст
func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.All(ctx)
	assert.Error(t, err)
}

// TestClient_PathEscaping проверяет экранирование параметров запроса
func TestClient_PathEscaping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/name/Costa%20Rica", r.URL.EscapedPath())

		_, _ = w.Write([]byte(`[{"name":{"common":"Costa Rica"},"cca3":"CRI","region":"Americas"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	countries, err := client.ByName(context.Background(), "Costa Rica")
	require.NoError(t, err)
	assert.Len(t, countries, 1)
}
