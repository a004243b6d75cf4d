package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBlog(t *testing.T) {
	t.Run("With token", func(t *testing.T) {
		app := setupTestApp(t)
		registerUser(t, app, "root", "Superuser", "sekret")
		token := loginFor(t, app, "root", "sekret")

		status, body := doJSON(t, app, withBearer(jsonRequest(http.MethodPost, "/api/blogs", fiber.Map{
			"title":  "React patterns",
			"author": "Michael Chan",
			"url":    "https://reactpatterns.com/",
			"likes":  7,
		}), token))
		require.Equal(t, http.StatusCreated, status, "body: %v", body)

		assert.Equal(t, "React patterns", body["title"])
		assert.Equal(t, float64(7), body["likes"])

		// The identifier is exposed as "id", never a storage-internal key.
		assert.NotZero(t, body["id"])
		assert.NotContains(t, body, "_id")

		owner := body["user"].(map[string]interface{})
		assert.Equal(t, "root", owner["username"])
		assert.NotContains(t, owner, "passwordHash")

		assert.Equal(t, 1, blogCount(t, app))
	})

	t.Run("Likes defaults to zero", func(t *testing.T) {
		app := setupTestApp(t)
		registerUser(t, app, "root", "Superuser", "sekret")
		token := loginFor(t, app, "root", "sekret")

		status, body := doJSON(t, app, withBearer(jsonRequest(http.MethodPost, "/api/blogs", fiber.Map{
			"title": "Go To Statement Considered Harmful",
			"url":   "https://example.com/dijkstra",
		}), token))
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, float64(0), body["likes"])
	})

	t.Run("Without token", func(t *testing.T) {
		app := setupTestApp(t)
		registerUser(t, app, "root", "Superuser", "sekret")

		status, body := doJSON(t, app, jsonRequest(http.MethodPost, "/api/blogs", fiber.Map{
			"title": "React patterns",
			"url":   "https://reactpatterns.com/",
		}))
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "token missing", body["error"])
		assert.Equal(t, 0, blogCount(t, app))
	})

	t.Run("Tampered token", func(t *testing.T) {
		app := setupTestApp(t)
		registerUser(t, app, "root", "Superuser", "sekret")
		token := loginFor(t, app, "root", "sekret")

		status, body := doJSON(t, app, withBearer(jsonRequest(http.MethodPost, "/api/blogs", fiber.Map{
			"title": "React patterns",
			"url":   "https://reactpatterns.com/",
		}), token[:len(token)-4]+"AAAA"))
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "token invalid", body["error"])
		assert.Equal(t, 0, blogCount(t, app))
	})

	t.Run("Missing title", func(t *testing.T) {
		app := setupTestApp(t)
		registerUser(t, app, "root", "Superuser", "sekret")
		token := loginFor(t, app, "root", "sekret")

		status, body := doJSON(t, app, withBearer(jsonRequest(http.MethodPost, "/api/blogs", fiber.Map{
			"url": "https://reactpatterns.com/",
		}), token))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "title is required", body["error"])
	})

	t.Run("Missing url", func(t *testing.T) {
		app := setupTestApp(t)
		registerUser(t, app, "root", "Superuser", "sekret")
		token := loginFor(t, app, "root", "sekret")

		status, body := doJSON(t, app, withBearer(jsonRequest(http.MethodPost, "/api/blogs", fiber.Map{
			"title": "React patterns",
		}), token))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "url is required", body["error"])
	})
}

func TestGetBlogs(t *testing.T) {
	app := setupTestApp(t)
	registerUser(t, app, "root", "Superuser", "sekret")
	token := loginFor(t, app, "root", "sekret")

	titles := []string{"React patterns", "Go To Statement Considered Harmful"}
	for _, title := range titles {
		status, _ := doJSON(t, app, withBearer(jsonRequest(http.MethodPost, "/api/blogs", fiber.Map{
			"title": title,
			"url":   "https://example.com/",
		}), token))
		require.Equal(t, http.StatusCreated, status)
	}

	// Listing is public.
	status, blogs := doJSONList(t, app, jsonRequest(http.MethodGet, "/api/blogs", nil))
	require.Equal(t, http.StatusOK, status)
	require.Len(t, blogs, 2)

	for i, b := range blogs {
		assert.Equal(t, titles[i], b["title"])
		assert.NotZero(t, b["id"])
		assert.NotContains(t, b, "_id")
	}
}

func TestUpdateBlogLikes(t *testing.T) {
	t.Run("Known blog without token", func(t *testing.T) {
		app := setupTestApp(t)
		registerUser(t, app, "root", "Superuser", "sekret")
		token := loginFor(t, app, "root", "sekret")

		status, created := doJSON(t, app, withBearer(jsonRequest(http.MethodPost, "/api/blogs", fiber.Map{
			"title": "React patterns",
			"url":   "https://reactpatterns.com/",
			"likes": 7,
		}), token))
		require.Equal(t, http.StatusCreated, status)
		id := int(created["id"].(float64))

		status, body := doJSON(t, app, jsonRequest(http.MethodPut, blogPath(id), fiber.Map{
			"likes": 42,
		}))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(42), body["likes"])
		assert.Equal(t, "React patterns", body["title"])
	})

	t.Run("Unknown blog", func(t *testing.T) {
		app := setupTestApp(t)

		resp, err := app.Test(jsonRequest(http.MethodPut, "/api/blogs/9999", fiber.Map{
			"likes": 42,
		}), -1)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, raw)
	})

	t.Run("Non-numeric id", func(t *testing.T) {
		app := setupTestApp(t)

		resp, err := app.Test(jsonRequest(http.MethodPut, "/api/blogs/notanid", fiber.Map{
			"likes": 42,
		}), -1)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Missing likes", func(t *testing.T) {
		app := setupTestApp(t)
		registerUser(t, app, "root", "Superuser", "sekret")
		token := loginFor(t, app, "root", "sekret")

		status, created := doJSON(t, app, withBearer(jsonRequest(http.MethodPost, "/api/blogs", fiber.Map{
			"title": "React patterns",
			"url":   "https://reactpatterns.com/",
		}), token))
		require.Equal(t, http.StatusCreated, status)
		id := int(created["id"].(float64))

		status, body := doJSON(t, app, jsonRequest(http.MethodPut, blogPath(id), fiber.Map{}))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "likes is required", body["error"])
	})
}

func TestDeleteBlog(t *testing.T) {
	createOwnedBlog := func(t *testing.T, app *fiber.App, token string) int {
		t.Helper()
		status, created := doJSON(t, app, withBearer(jsonRequest(http.MethodPost, "/api/blogs", fiber.Map{
			"title": "React patterns",
			"url":   "https://reactpatterns.com/",
		}), token))
		require.Equal(t, http.StatusCreated, status)
		return int(created["id"].(float64))
	}

	t.Run("By creator", func(t *testing.T) {
		app := setupTestApp(t)
		registerUser(t, app, "root", "Superuser", "sekret")
		token := loginFor(t, app, "root", "sekret")
		id := createOwnedBlog(t, app, token)

		resp, err := app.Test(withBearer(httptest.NewRequest(http.MethodDelete, blogPath(id), nil), token), -1)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, 0, blogCount(t, app))
	})

	t.Run("By another user", func(t *testing.T) {
		app := setupTestApp(t)
		registerUser(t, app, "root", "Superuser", "sekret")
		registerUser(t, app, "mluukkai", "Matti Luukkainen", "salainen")
		ownerToken := loginFor(t, app, "root", "sekret")
		otherToken := loginFor(t, app, "mluukkai", "salainen")
		id := createOwnedBlog(t, app, ownerToken)

		status, body := doJSON(t, app, withBearer(jsonRequest(http.MethodDelete, blogPath(id), nil), otherToken))
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "not the creator", body["error"])
		assert.Equal(t, 1, blogCount(t, app))
	})

	t.Run("Without token", func(t *testing.T) {
		app := setupTestApp(t)
		registerUser(t, app, "root", "Superuser", "sekret")
		token := loginFor(t, app, "root", "sekret")
		id := createOwnedBlog(t, app, token)

		status, body := doJSON(t, app, jsonRequest(http.MethodDelete, blogPath(id), nil))
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "token missing", body["error"])
		assert.Equal(t, 1, blogCount(t, app))
	})

	t.Run("Unknown blog", func(t *testing.T) {
		app := setupTestApp(t)
		registerUser(t, app, "root", "Superuser", "sekret")
		token := loginFor(t, app, "root", "sekret")

		resp, err := app.Test(withBearer(httptest.NewRequest(http.MethodDelete, "/api/blogs/9999", nil), token), -1)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, raw)
	})
}

func blogPath(id int) string {
	return "/api/blogs/" + strconv.Itoa(id)
}
