package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"fab/internal/analysis"
	"fab/internal/pkg/extract"

	"github.com/gin-gonic/gin"
)

// Comparer runs a two-sided figure comparison; *analysis.Analyzer satisfies it.
type Comparer interface {
	Compare(ctx context.Context, question, fromFilter, toFilter string) (*analysis.Comparison, error)
}

type CompareController struct {
	Analyzer Comparer
}

type compareRequest struct {
	Question string `json:"question" binding:"required"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// PostCompare handles POST /api/v1/compare
func (cc *CompareController) PostCompare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	result, err := cc.Analyzer.Compare(c.Request.Context(), req.Question, req.From, req.To)
	if err != nil {
		var noExtract *analysis.NoExtractionError
		if errors.As(err, &noExtract) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": noExtract.Error()})
			return
		}

		log.Printf("comparison failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	resp := gin.H{
		"report": result.Report,
		"from":   sideJSON(result.From),
		"to":     sideJSON(result.To),
	}
	if result.PctChange != nil {
		resp["pct_change"] = result.PctChange.String()
	}

	c.JSON(http.StatusOK, resp)
}

func sideJSON(side analysis.Side) gin.H {
	out := gin.H{
		"source":  side.Source,
		"value":   side.Extract.Value.String(),
		"context": side.Extract.Context,
	}
	out["quarter"] = quarterOrNil(side.Metadata)
	if side.Metadata.Year != nil {
		out["year"] = *side.Metadata.Year
	}
	return out
}

func quarterOrNil(meta extract.SourceMetadata) any {
	if meta.Quarter == "" {
		return nil
	}
	return meta.Quarter
}
