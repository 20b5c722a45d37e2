package handler

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avelline/stagelist/internal/app"
	"github.com/avelline/stagelist/internal/view"
)

// NewRouter builds the full HTTP surface: listing, search, detail, create
// and edit pages for venues and artists, the show listing and booking form,
// and the 404/500 pages.
func NewRouter(app *app.App) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(app.Logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		app.Logger.Error("panic recovered", zap.Any("error", err))
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
	}))

	store := cookie.NewStore([]byte(app.Config.SessionSecret))
	r.Use(sessions.Sessions("stagelist", store))

	r.SetFuncMap(template.FuncMap{
		"datetime": view.FormatDatetime,
	})
	r.LoadHTMLGlob(app.Config.TemplateGlob)

	venues := NewVenueHandler(app)
	artists := NewArtistHandler(app)
	shows := NewShowHandler(app)

	r.GET("/", func(c *gin.Context) {
		renderHTML(c, http.StatusOK, "home.html", gin.H{})
	})

	r.GET("/venues", venues.List)
	r.POST("/venues/search", venues.Search)
	r.GET("/venues/create", venues.CreateForm)
	r.POST("/venues/create", venues.Create)
	r.GET("/venues/:id", venues.Detail)
	r.DELETE("/venues/:id", venues.Delete)
	r.GET("/venues/:id/edit", venues.EditForm)
	r.POST("/venues/:id/edit", venues.Edit)

	r.GET("/artists", artists.List)
	r.POST("/artists/search", artists.Search)
	r.GET("/artists/create", artists.CreateForm)
	r.POST("/artists/create", artists.Create)
	r.GET("/artists/:id", artists.Detail)
	r.GET("/artists/:id/edit", artists.EditForm)
	r.POST("/artists/:id/edit", artists.Edit)

	r.GET("/shows", shows.List)
	r.GET("/shows/create", shows.CreateForm)
	r.POST("/shows/create", shows.Create)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
	})

	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
