package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"
)

var docsPolicy = bluemonday.UGCPolicy()

// APIDocs serves docs/endpoints.md rendered as HTML.
func APIDocs(ctx *gin.Context) {
	path := os.Getenv("DOCS_PATH")
	if path == "" {
		path = "docs/endpoints.md"
	}

	source, err := os.ReadFile(path)

	if err != nil {
		logrus.WithError(err).Error("Failed to read API docs")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	rendered := markdown.ToHTML(source, nil, nil)

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", docsPolicy.SanitizeBytes(rendered))
}
