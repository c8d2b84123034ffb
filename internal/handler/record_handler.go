package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/basilogast/portfolio-server/internal/service"
)

// ListRecords returns every record of the requested table.
func (a *API) ListRecords(c *gin.Context) {
	table, ok := tableParam(c)
	if !ok {
		return
	}

	records, err := a.records.List(table)
	if err != nil {
		a.logError(err, "failed to list records", logrus.Fields{"table": table.String()})
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetRecord returns a single record by id.
func (a *API) GetRecord(c *gin.Context) {
	table, ok := tableParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	record, err := a.records.Get(table, id)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Record not found")
			return
		}
		a.logError(err, "failed to fetch record", logrus.Fields{"table": table.String(), "id": id})
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	c.JSON(http.StatusOK, record)
}

// CreateRecord inserts a new record from multipart form fields.
func (a *API) CreateRecord(c *gin.Context) {
	table, ok := tableParam(c)
	if !ok {
		return
	}

	record, err := a.records.Create(table, recordInputFromForm(c))
	if err != nil {
		a.logError(err, "failed to create record", logrus.Fields{"table": table.String()})
		respondError(c, http.StatusInternalServerError, "Server error occurred.")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// UpdateRecord applies a sparse patch: only fields present in the form with
// a non-empty value are written.
func (a *API) UpdateRecord(c *gin.Context) {
	table, ok := tableParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	record, err := a.records.Update(table, id, recordInputFromForm(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoUpdates):
			respondError(c, http.StatusBadRequest, "No updates provided.")
		case errors.Is(err, service.ErrRecordNotFound):
			respondError(c, http.StatusNotFound, "Record not found")
		default:
			a.logError(err, "failed to update record", logrus.Fields{"table": table.String(), "id": id})
			respondError(c, http.StatusInternalServerError, "Server Error")
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteRecord removes a record together with the stored assets its img and
// pdfUrl fields reference.
func (a *API) DeleteRecord(c *gin.Context) {
	table, ok := tableParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := a.records.Delete(c.Request.Context(), table, id); err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("%s not found", table))
			return
		}
		a.logError(err, "failed to delete record", logrus.Fields{"table": table.String(), "id": id})
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s and associated files deleted successfully", table),
	})
}

func recordInputFromForm(c *gin.Context) service.RecordInput {
	return service.RecordInput{
		Size:         c.PostForm("size"),
		Text:         c.PostForm("text"),
		TextPara:     parseTextPara(c.PostForm("textPara")),
		DetailsRoute: c.PostForm("detailsRoute"),
		Img:          c.PostForm("img"),
		PDFURL:       c.PostForm("pdfUrl"),
	}
}
