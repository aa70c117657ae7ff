package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajatjain1997/meal-planner/models"
	"github.com/rajatjain1997/meal-planner/services"
)

type PlanController struct {
	Plans *services.PlanService
}

func NewPlanController(plans *services.PlanService) *PlanController {
	return &PlanController{Plans: plans}
}

func (pc *PlanController) List(c *gin.Context) {
	c.JSON(http.StatusOK, pc.Plans.List())
}

func (pc *PlanController) Get(c *gin.Context) {
	p, ok := pc.Plans.Get(c.Param("date"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no plan for date"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *PlanController) Put(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return
	}
	var body models.MealPlan
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.Date = date
	saved, err := pc.Plans.Save(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (pc *PlanController) Delete(c *gin.Context) {
	if err := pc.Plans.Delete(c.Param("date")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (pc *PlanController) Options(c *gin.Context) {
	options, err := pc.Plans.GenerateOptions()
	if err != nil {
		if errors.Is(err, services.ErrInsufficientCatalog) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, options)
}
