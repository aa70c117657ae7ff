package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajatjain1997/meal-planner/models"
	"github.com/rajatjain1997/meal-planner/services"
)

type MealController struct {
	Library *services.LibraryService
}

func NewMealController(library *services.LibraryService) *MealController {
	return &MealController{Library: library}
}

func (mc *MealController) List(c *gin.Context) {
	c.JSON(http.StatusOK, mc.Library.Merged())
}

func (mc *MealController) Get(c *gin.Context) {
	meal, ok := mc.Library.Resolve(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) ListByType(c *gin.Context) {
	t := models.MealType(c.Param("type"))
	if t != models.Breakfast && t != models.Lunch && t != models.Dinner {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal type"})
		return
	}
	c.JSON(http.StatusOK, mc.Library.ListByType(t))
}

func (mc *MealController) Create(c *gin.Context) {
	var draft services.MealDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal, err := mc.Library.Append(draft)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) Delete(c *gin.Context) {
	if err := mc.Library.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
