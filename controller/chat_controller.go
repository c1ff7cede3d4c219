package controller

import (
	"log"
	"net/http"

	service "github.com/Itish41/NyayaMitra/service"

	"github.com/gin-gonic/gin"
)

// ChatController manages HTTP requests for the legal question answering
// endpoints.
type ChatController struct {
	rag  *service.RAGService
	sync *service.CorpusSyncService
}

// NewChatController initializes the controller with the services
func NewChatController(rag *service.RAGService, sync *service.CorpusSyncService) *ChatController {
	return &ChatController{rag: rag, sync: sync}
}

type chatRequest struct {
	Message        string `json:"message" binding:"required"`
	TopK           int    `json:"top_k"`
	IncludeSources *bool  `json:"include_sources"`
}

// SendMessage answers a legal question
func (cc *ChatController) SendMessage(ctx *gin.Context) {
	var req chatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Field 'message' is required"})
		return
	}

	includeSources := true
	if req.IncludeSources != nil {
		includeSources = *req.IncludeSources
	}

	answer := cc.rag.AnswerQuery(ctx.Request.Context(), req.Message, req.TopK, includeSources)
	ctx.JSON(http.StatusOK, answer)
}

// GetDocuments returns the catalog of loaded legal documents
func (cc *ChatController) GetDocuments(ctx *gin.Context) {
	docs := cc.sync.GetDocumentList()
	ctx.JSON(http.StatusOK, gin.H{
		"documents": docs,
		"total":     len(docs),
	})
}

// SearchDocuments runs a direct document search
func (cc *ChatController) SearchDocuments(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	results, err := cc.sync.SearchDocuments(query, 10)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"results": results,
		"total":   len(results),
	})
}

type feedbackRequest struct {
	QueryID      string `json:"query_id" binding:"required"`
	Rating       int    `json:"rating" binding:"required"`
	FeedbackText string `json:"feedback_text"`
	IsHelpful    bool   `json:"is_helpful"`
}

// SubmitFeedback records a rating for an answered query
func (cc *ChatController) SubmitFeedback(ctx *gin.Context) {
	var req feedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Fields 'query_id' and 'rating' are required"})
		return
	}

	if err := cc.sync.SubmitFeedback(req.QueryID, req.Rating, req.FeedbackText, req.IsHelpful); err != nil {
		log.Printf("Error saving feedback: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Feedback recorded successfully"})
}

// GetPopularQueries returns the most frequently asked questions
func (cc *ChatController) GetPopularQueries(ctx *gin.Context) {
	rows, err := cc.sync.GetPopularQueries(10)
	if err != nil {
		log.Printf("Error fetching popular queries: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve popular queries"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"queries": rows,
		"total":   len(rows),
	})
}

// SyncCorpus reloads the retrieval corpus from its backing sources
func (cc *ChatController) SyncCorpus(ctx *gin.Context) {
	if err := cc.sync.SyncCorpus(ctx.Request.Context()); err != nil {
		log.Printf("Corpus sync failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Corpus synced successfully"})
}
