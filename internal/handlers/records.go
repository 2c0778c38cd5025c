package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hospital-records-server/internal/models"
	"hospital-records-server/internal/records"
	"hospital-records-server/internal/store"
	"hospital-records-server/internal/utils"
)

// RecordHandler handles the patient test record workflow.
type RecordHandler struct {
	Manager *records.Manager
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(manager *records.Manager) *RecordHandler {
	return &RecordHandler{Manager: manager}
}

func listFilterFromQuery(c *gin.Context) store.ListFilter {
	return store.ListFilter{
		Department: c.Query("department"),
		Search:     c.Query("search"),
	}
}

func testIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid record id")
		return 0, false
	}
	return uint(id), true
}

// ListRecords returns the joined test+patient rows, optionally narrowed by
// an exact department match and a case-insensitive name search. Each call
// fully replaces the displayed record set.
func (h *RecordHandler) ListRecords(c *gin.Context) {
	rows, err := h.Manager.List(listFilterFromQuery(c))
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch records: "+err.Error())
		return
	}
	utils.Success(c, "Records fetched successfully", rows)
}

// GetDepartments returns the fixed department list for the entry form.
func (h *RecordHandler) GetDepartments(c *gin.Context) {
	utils.Success(c, "Departments fetched successfully", models.Departments)
}

// AddRecord validates the entry form and records a new test, creating or
// merging the patient by CNIC.
func (h *RecordHandler) AddRecord(c *gin.Context) {
	var form records.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	record, err := h.Manager.AddTest(form)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Created(c, "Record Added Successfully", record)
}

// UpdateRecord rewrites the selected record's test and patient fields.
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	var form records.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.Manager.UpdateSelected(form); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Record Updated Successfully", nil)
}

// DeleteRecord removes the selected record once the operator has confirmed,
// then discards any patient left without tests.
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	if err := h.Manager.DeleteSelected(confirmed); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Record Deleted Successfully", nil)
}

// SelectRecord marks a row as the target of the next update or delete and
// returns its fields for the entry form.
func (h *RecordHandler) SelectRecord(c *gin.Context) {
	id, ok := testIDParam(c)
	if !ok {
		return
	}

	record, err := h.Manager.Select(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Record selected", record)
}

// ClearSelection drops the selection and reports the default date for a
// fresh entry form.
func (h *RecordHandler) ClearSelection(c *gin.Context) {
	h.Manager.Clear()
	utils.Success(c, "Selection cleared", gin.H{"defaultDate": records.DefaultDate()})
}
