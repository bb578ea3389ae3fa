package http

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/frontend"
	"github.com/secmon-lab/roster/pkg/domain/interfaces"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
	"github.com/secmon-lab/roster/pkg/utils/apperr"
)

// EmployeeHandler serves the employee form and its list landing page
type EmployeeHandler struct {
	form          interfaces.EmployeeForm
	notifications interfaces.Notifications
	messages      *model.Messages
	pages         map[string]*template.Template
	decoder       *form.Decoder
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeForm interfaces.EmployeeForm, notifications interfaces.Notifications, messages *model.Messages, pages map[string]*template.Template) *EmployeeHandler {
	return &EmployeeHandler{
		form:          employeeForm,
		notifications: notifications,
		messages:      messages,
		pages:         pages,
		decoder:       form.NewDecoder(),
	}
}

type layoutData struct {
	Title         string
	Messages      *model.Messages
	Notifications []*model.Notification
}

type formPageData struct {
	layoutData
	Action    string
	CancelURL string
	Values    model.EmployeeValues
	Errors    model.FieldErrors
	Options   []model.SelectOption
}

type listPageData struct {
	layoutData
	CreateURL string
}

// HandleList renders the list landing page with pending notifications
func (h *EmployeeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	data := listPageData{
		layoutData: h.layout(r.Context(), h.messages.ListTitle),
		CreateURL:  formPath(types.CreateRouteToken),
	}
	h.render(w, r, frontend.PageEmployeeList, http.StatusOK, data)
}

// HandleShowForm mounts the form for the route identifier and renders it
func (h *EmployeeHandler) HandleShowForm(w http.ResponseWriter, r *http.Request) {
	routeID := types.RouteID(chi.URLParam(r, "employeeID"))
	state := h.form.Mount(r.Context(), routeID)
	defer state.Unmount()

	h.renderForm(w, r, state, http.StatusOK)
}

// HandleSubmitForm restores the posted values and submits them. Cancel posts
// never reach the submit path.
func (h *EmployeeHandler) HandleSubmitForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	routeID := types.RouteID(chi.URLParam(r, "employeeID"))

	if err := r.ParseForm(); err != nil {
		ctxlog.From(ctx).Warn("Failed to parse employee form", "error", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var input model.FormInput
	if err := h.decoder.Decode(&input, r.PostForm); err != nil {
		ctxlog.From(ctx).Warn("Failed to decode employee form", "error", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if input.IsCancel() {
		h.navigate(w, r, h.form.Cancel(ctx, nil))
		return
	}

	state := h.form.Restore(ctx, routeID, input)
	defer state.Unmount()

	result, err := h.form.Submit(ctx, state)
	if err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to submit employee form",
			goerr.V("routeID", routeID)))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	switch {
	case result.Succeeded():
		h.navigate(w, r, result.Navigation)
	case result.Invalid():
		h.renderForm(w, r, state, http.StatusUnprocessableEntity)
	default:
		h.renderForm(w, r, state, http.StatusBadGateway)
	}
}

func (h *EmployeeHandler) navigate(w http.ResponseWriter, r *http.Request, nav *model.Navigation) {
	http.Redirect(w, r, nav.Path, http.StatusSeeOther)
}

func (h *EmployeeHandler) renderForm(w http.ResponseWriter, r *http.Request, state *model.FormState, status int) {
	data := formPageData{
		layoutData: h.layout(r.Context(), h.messages.Title),
		Action:     formPath(state.RouteID().String()),
		CancelURL:  model.EmployeeListRoute,
		Values:     state.Values(),
		Errors:     state.Errors(),
		Options:    state.SelectOptions(),
	}
	h.render(w, r, frontend.PageEmployeeForm, status, data)
}

func (h *EmployeeHandler) layout(ctx context.Context, title string) layoutData {
	notifications, err := h.notifications.Drain(ctx)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to drain notifications", "error", err)
	}
	return layoutData{
		Title:         title,
		Messages:      h.messages,
		Notifications: notifications,
	}
}

func (h *EmployeeHandler) render(w http.ResponseWriter, r *http.Request, page string, status int, data any) {
	tmpl, ok := h.pages[page]
	if !ok {
		apperr.Handle(r.Context(), goerr.New("page template not found", goerr.V("page", page)))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		apperr.Handle(r.Context(), goerr.Wrap(err, "failed to render page", goerr.V("page", page)))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write page", "error", err, "page", page)
	}
}

func formPath(routeID string) string {
	return model.EmployeeListRoute + "/" + url.PathEscape(routeID)
}
