package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// WebhookResponse is the JSON body answered to every webhook call.
type WebhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func successResponse() (int, WebhookResponse) {
	return http.StatusOK, WebhookResponse{Status: statusSuccess}
}

// errorResponse is the single failure shape for every webhook stage.
func errorResponse(err error) (int, WebhookResponse) {
	return http.StatusInternalServerError, WebhookResponse{Status: statusError, Message: err.Error()}
}

func errorPage(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{"error": message})
}
