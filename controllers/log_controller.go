package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajatjain1997/meal-planner/models"
	"github.com/rajatjain1997/meal-planner/services"
	"github.com/rajatjain1997/meal-planner/utils"
)

type LogController struct {
	Logs    *services.LogService
	Library *services.LibraryService
}

func NewLogController(logs *services.LogService, library *services.LibraryService) *LogController {
	return &LogController{Logs: logs, Library: library}
}

func validDate(s string) bool {
	_, err := time.Parse(utils.DateLayout, s)
	return err == nil
}

func (lc *LogController) List(c *gin.Context) {
	c.JSON(http.StatusOK, lc.Logs.List())
}

func (lc *LogController) Get(c *gin.Context) {
	date := c.Param("date")
	l, ok := lc.Logs.Get(date)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no log for date"})
		return
	}
	c.JSON(http.StatusOK, l)
}

func (lc *LogController) Put(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return
	}
	var body models.DailyLog
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.Date = date
	saved, err := lc.Logs.Save(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (lc *LogController) Delete(c *gin.Context) {
	if err := lc.Logs.Delete(c.Param("date")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// AppendMeal is the "I ate X" endpoint: it appends to today's slot list,
// never replacing earlier entries in the same slot.
func (lc *LogController) AppendMeal(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return
	}
	var body struct {
		MealID string          `json:"mealId" binding:"required"`
		Slot   models.MealType `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Slot != models.Breakfast && body.Slot != models.Lunch && body.Slot != models.Dinner {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slot"})
		return
	}
	l, err := lc.Logs.AppendMeal(date, body.MealID, body.Slot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, l)
}

// Import accepts a previously exported log list, in either the
// legacy or the current shape.
func (lc *LogController) Import(c *gin.Context) {
	var body []models.DailyLog
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	count, err := lc.Logs.Import(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": count})
}

func (lc *LogController) Summary(c *gin.Context) {
	date := c.Param("date")
	l, _ := lc.Logs.Get(date) // absent date yields a zero summary
	l.Date = date
	summary := services.CalculateDailySummary(l, lc.Library.Resolve)
	c.JSON(http.StatusOK, summary)
}
