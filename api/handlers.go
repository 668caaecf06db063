// Package api - HTTP surface of the document archive
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/alwitt/goutils"
	"github.com/alwitt/larder/db"
	"github.com/alwitt/larder/models"
	"github.com/alwitt/larder/query"
	"github.com/alwitt/larder/store"
	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
)

// Accepted query parameter layouts
const (
	dateParamLayout = "2006-01-02"
	timeParamLayout = "15:04"
)

// Handler HTTP request handler against the document archive
type Handler struct {
	goutils.Component

	archive store.DocumentArchive
}

/*
NewHandler define a new HTTP request handler

	@param archive store.DocumentArchive - the document archive controller
	@returns handler instance
*/
func NewHandler(archive store.DocumentArchive) *Handler {
	logTags := log.Fields{"module": "api", "component": "handler"}

	return &Handler{
		Component: goutils.Component{
			LogTags: logTags,
			LogTagModifiers: []goutils.LogMetadataModifier{
				goutils.ModifyLogMetadataByRestRequestParam,
			},
		},
		archive: archive,
	}
}

/*
ListDocuments fetch archived documents, newest first

	GET /v1/documents

Optional query parameters `type` and `dept` restrict the listing.
*/
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	filters := db.DocumentQueryFilter{}
	if kind := r.URL.Query().Get("type"); kind != "" {
		filters.Types = []string{kind}
	}
	if dept := r.URL.Query().Get("dept"); dept != "" {
		filters.Depts = []string{dept}
	}

	documents, err := h.archive.ListDocuments(r.Context(), filters, nil)
	if err != nil {
		log.WithError(err).WithFields(h.LogTags).Error("Document listing failed")
		writeAPIError(w, FromStoreError(err))
		return
	}

	writeJSON(w, http.StatusOK, documents)
}

/*
CreateDocument store a new inspection document

	POST /v1/documents
*/
func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var document models.ArchiveRecord
	if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
		writeAPIError(w, NewBadRequestError("Request body is not a valid document"))
		return
	}

	// A caller supplied ID must not collide with an archived document
	if document.ID != "" {
		if _, err := h.archive.GetDocument(r.Context(), document.ID, nil); err == nil {
			writeAPIError(w, NewConflictError("A document with this ID already exists"))
			return
		}
	}

	stored, err := h.archive.AddDocument(r.Context(), document, nil)
	if err != nil {
		log.WithError(err).WithFields(h.LogTags).Error("Document creation failed")
		writeAPIError(w, NewBadRequestError("The document was rejected by the archive"))
		return
	}

	writeJSON(w, http.StatusCreated, stored)
}

/*
SearchDocuments select archived documents matching the query parameters

	GET /v1/documents/search

Supported query parameters: `from_date`, `to_date` (2006-01-02), `from_time`,
`to_time` (15:04), `type`, `dept`, `food`, `supplier`, `use_by_date`,
`sign_off`, and `sort`.
*/
func (h *Handler) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	criteria, apiErr := parseSearchCriteria(r)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	documents, err := h.archive.SearchDocuments(r.Context(), criteria, nil)
	if err != nil {
		log.WithError(err).WithFields(h.LogTags).Error("Document search failed")
		writeAPIError(w, FromStoreError(err))
		return
	}

	// The search answer is newest first; an explicit sort column reorders it
	if sortField := r.URL.Query().Get("sort"); sortField != "" {
		query.SortDocuments(documents, query.SortFieldENUMType(sortField))
	}

	writeJSON(w, http.StatusOK, documents)
}

/*
GetDocument fetch one archived document

	GET /v1/documents/{id}
*/
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "id")

	document, err := h.archive.GetDocument(r.Context(), documentID, nil)
	if err != nil {
		writeAPIError(w, FromStoreError(err))
		return
	}

	writeJSON(w, http.StatusOK, document)
}

/*
AmendDocument amend one archived document

	PUT /v1/documents/{id}
*/
func (h *Handler) AmendDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "id")

	var document models.ArchiveRecord
	if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
		writeAPIError(w, NewBadRequestError("Request body is not a valid document"))
		return
	}
	if document.ID != "" && document.ID != documentID {
		writeAPIError(w, NewBadRequestError("Document ID in body does not match the request path"))
		return
	}
	document.ID = documentID

	amended, err := h.archive.AmendDocument(r.Context(), document, nil)
	if err != nil {
		log.WithError(err).WithFields(h.LogTags).Error("Document amendment failed")
		writeAPIError(w, FromStoreError(err))
		return
	}

	writeJSON(w, http.StatusOK, amended)
}

/*
DeleteDocument delete one archived document

	DELETE /v1/documents/{id}
*/
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "id")

	// Resolve the document first so an unknown ID reports 404
	if _, err := h.archive.GetDocument(r.Context(), documentID, nil); err != nil {
		writeAPIError(w, FromStoreError(err))
		return
	}

	if err := h.archive.DeleteDocument(r.Context(), documentID, nil); err != nil {
		log.WithError(err).WithFields(h.LogTags).Error("Document deletion failed")
		writeAPIError(w, FromStoreError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

/*
BrowseArchiveFolders derive the archive folder entries for one browse request

	GET /v1/archive/folders

Supported query parameters: `period` (YEARS, MONTHS, DAYS, DAY, ALL), `focus`
(2006-01-02, defaults to today), `type`, and `dept`.
*/
func (h *Handler) BrowseArchiveFolders(w http.ResponseWriter, r *http.Request) {
	period := models.PeriodAll
	if param := r.URL.Query().Get("period"); param != "" {
		period = models.PeriodENUMType(param)
		switch period {
		case models.PeriodYears, models.PeriodMonths, models.PeriodDays, models.PeriodDay, models.PeriodAll:
		default:
			writeAPIError(w, NewBadRequestError("Unknown folder period"))
			return
		}
	}

	focus := time.Now().UTC()
	if param := r.URL.Query().Get("focus"); param != "" {
		parsed, err := time.Parse(dateParamLayout, param)
		if err != nil {
			writeAPIError(w, NewBadRequestError("Focus date must use the layout 2006-01-02"))
			return
		}
		focus = parsed
	}

	folders, err := h.archive.BrowseArchiveFolders(
		r.Context(),
		period,
		focus,
		r.URL.Query().Get("type"),
		r.URL.Query().Get("dept"),
		nil,
	)
	if err != nil {
		log.WithError(err).WithFields(h.LogTags).Error("Folder browsing failed")
		writeAPIError(w, FromStoreError(err))
		return
	}

	writeJSON(w, http.StatusOK, folders)
}

/*
ListArchiveEvents list the captured archive audit events

	GET /v1/archive/events

Supported query parameters: `type` (audit event type), `limit`, and `offset`.
*/
func (h *Handler) ListArchiveEvents(w http.ResponseWriter, r *http.Request) {
	filters := db.ArchiveEventQueryFilter{}
	params := r.URL.Query()

	if raw := params.Get("type"); raw != "" {
		filters.EventTypes = []models.ArchiveEventTypeENUMType{
			models.ArchiveEventTypeENUMType(raw),
		}
	}
	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeAPIError(w, NewBadRequestError("Parameter 'limit' must be a non-negative integer"))
			return
		}
		filters.Limit = &limit
	}
	if raw := params.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			writeAPIError(w, NewBadRequestError("Parameter 'offset' must be a non-negative integer"))
			return
		}
		filters.Offset = &offset
	}

	events, err := h.archive.ListArchiveEvents(r.Context(), filters, nil)
	if err != nil {
		log.WithError(err).WithFields(h.LogTags).Error("Audit event listing failed")
		writeAPIError(w, FromStoreError(err))
		return
	}

	writeJSON(w, http.StatusOK, events)
}

/*
ListDocumentKinds report the known document kind codes

	GET /v1/archive/kinds
*/
func (h *Handler) ListDocumentKinds(w http.ResponseWriter, _ *http.Request) {
	type documentKind struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	}

	kinds := []documentKind{}
	for _, code := range models.KnownDocumentKinds() {
		description, _ := models.DocumentKindDescription(code)
		kinds = append(kinds, documentKind{Code: code, Description: description})
	}

	writeJSON(w, http.StatusOK, kinds)
}

/*
Healthz liveness probe

	GET /healthz
*/
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseSearchCriteria read the search criteria from the request query parameters
func parseSearchCriteria(r *http.Request) (models.SearchCriteria, *APIError) {
	criteria := models.SearchCriteria{}
	params := r.URL.Query()

	dateParams := map[string]**time.Time{
		"from_date": &criteria.FromDate,
		"to_date":   &criteria.ToDate,
	}
	for name, target := range dateParams {
		if raw := params.Get(name); raw != "" {
			parsed, err := time.Parse(dateParamLayout, raw)
			if err != nil {
				return models.SearchCriteria{}, NewBadRequestError(
					"Parameter '" + name + "' must use the layout 2006-01-02",
				)
			}
			*target = &parsed
		}
	}

	timeParams := map[string]**time.Time{
		"from_time": &criteria.FromTime,
		"to_time":   &criteria.ToTime,
	}
	for name, target := range timeParams {
		if raw := params.Get(name); raw != "" {
			parsed, err := time.Parse(timeParamLayout, raw)
			if err != nil {
				return models.SearchCriteria{}, NewBadRequestError(
					"Parameter '" + name + "' must use the layout 15:04",
				)
			}
			*target = &parsed
		}
	}

	if raw := params.Get("type"); raw != "" {
		criteria.Type = &raw
	}
	if raw := params.Get("dept"); raw != "" {
		criteria.Dept = &raw
	}
	if raw := params.Get("food"); raw != "" {
		criteria.Food = &raw
	}
	if raw := params.Get("supplier"); raw != "" {
		criteria.Supplier = &raw
	}
	if raw := params.Get("sign_off"); raw != "" {
		criteria.SignOff = &raw
	}
	if raw := params.Get("use_by_date"); raw != "" {
		check := models.UseByDateCheckENUMType(raw)
		switch check {
		case models.UseByDateNotApplicable, models.UseByDateChecked, models.UseByDateExpired:
			criteria.UseByDate = &check
		default:
			return models.SearchCriteria{}, NewBadRequestError(
				"Parameter 'use_by_date' must be NOT_APPLICABLE, CHECKED, or EXPIRED",
			)
		}
	}

	return criteria, nil
}
