package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/recipe-share/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testSecret = []byte("flash-secret")

func flashRouter() *gin.Engine {
	r := gin.New()
	r.Use(FlashMiddleware(testSecret, false))
	r.GET("/add", func(c *gin.Context) {
		AddFlash(c, FlashSuccess, "Saved!")
		c.Redirect(http.StatusFound, "/show")
	})
	r.GET("/show", func(c *gin.Context) {
		c.JSON(http.StatusOK, Flashes(c))
	})
	r.GET("/inline", func(c *gin.Context) {
		AddFlash(c, FlashError, "Nope")
		c.JSON(http.StatusOK, Flashes(c))
	})
	return r
}

func cookieNamed(cookies []*http.Cookie, name string) *http.Cookie {
	for _, ck := range cookies {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestFlashSurvivesRedirectOnce(t *testing.T) {
	r := flashRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/add", nil))
	require.Equal(t, http.StatusFound, w.Code)
	flash := cookieNamed(w.Result().Cookies(), flashCookieName)
	require.NotNil(t, flash)

	req := httptest.NewRequest(http.MethodGet, "/show", nil)
	req.AddCookie(flash)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.JSONEq(t, `[{"category":"success","message":"Saved!"}]`, w.Body.String())
	cleared := cookieNamed(w.Result().Cookies(), flashCookieName)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestFlashShownOnSameRequest(t *testing.T) {
	w := httptest.NewRecorder()
	flashRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/inline", nil))

	assert.JSONEq(t, `[{"category":"error","message":"Nope"}]`, w.Body.String())
}

func TestFlashIgnoresTamperedCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/show", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "eyJhbGciOiJub25lIn0.e30."})
	w := httptest.NewRecorder()
	flashRouter().ServeHTTP(w, req)

	assert.Equal(t, "null", w.Body.String())
}

func TestRequireLogin(t *testing.T) {
	handled := false
	r := gin.New()
	r.GET("/anon", RequireLogin(), func(c *gin.Context) { handled = true })
	r.GET("/known", func(c *gin.Context) {
		c.Set(ContextKeyUser, &models.User{ID: 7, Username: "alice"})
	}, RequireLogin(), func(c *gin.Context) {
		c.String(http.StatusOK, "%d", GetUserID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anon", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
	assert.False(t, handled, "handler must not run for anonymous requests")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/known", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", w.Body.String())
}

func TestGetUserAnonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetUser(c))
	assert.Zero(t, GetUserID(c))
	assert.Nil(t, GetSession(c))
}
