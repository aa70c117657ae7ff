package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajatjain1997/meal-planner/services"
	"github.com/rajatjain1997/meal-planner/utils"
)

type CheatController struct {
	Library *services.LibraryService
	Logs    *services.LogService
	Now     func() time.Time
}

func NewCheatController(library *services.LibraryService, logs *services.LogService) *CheatController {
	return &CheatController{Library: library, Logs: logs, Now: time.Now}
}

func (cc *CheatController) List(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Library.CheatMeals())
}

// Purchase spends today's net credits on a cheat meal. The cost is added to
// the day's cheatCreditsUsed, which the summary subtracts.
func (cc *CheatController) Purchase(c *gin.Context) {
	cheat, ok := cc.Library.ResolveCheat(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cheat meal not found"})
		return
	}

	today := utils.DateString(cc.Now())
	l, _ := cc.Logs.Get(today)
	l.Date = today

	summary := services.CalculateDailySummary(l, cc.Library.Resolve)
	if summary.NetCredits < cheat.CreditCost {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("not enough credits: need %d, have %d", cheat.CreditCost, summary.NetCredits),
		})
		return
	}

	l.CheatCreditsUsed += cheat.CreditCost
	saved, err := cc.Logs.Save(l)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"log":     saved,
		"summary": services.CalculateDailySummary(saved, cc.Library.Resolve),
	})
}
