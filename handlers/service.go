// File: servizo/handlers/service.go
package handlers

import (
	"net/http"

	"servizo/forms"
	"servizo/locations"
	"servizo/middleware"
	"servizo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func serviceInput(c *gin.Context) forms.ServiceInput {
	return forms.ServiceInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Category:    c.PostForm("category"),
		Country:     c.PostForm("country"),
		Province:    c.PostForm("province"),
		Photos:      c.PostForm("photos"),
		Videos:      c.PostForm("videos"),

		QuestionIDs:      c.PostFormArray("question_id"),
		QuestionTexts:    c.PostFormArray("question_text"),
		QuestionTypes:    c.PostFormArray("question_type"),
		QuestionRequired: c.PostFormArray("question_required"),
	}
}

func (h *HandlerBundle) renderServiceForm(c *gin.Context, form serviceForm, action, errMsg string, isEdit bool) {
	sess, _ := middleware.CurrentSession(c)
	c.HTML(http.StatusOK, "service_form.html", gin.H{
		"User":      sess.User,
		"Form":      form,
		"Action":    action,
		"IsEdit":    isEdit,
		"Error":     errMsg,
		"Provinces": locations.PHProvinces,
	})
}

// NewService renders the standalone service form. The dashboard's create tab
// embeds the same fields.
func (h *HandlerBundle) NewService(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	if !sess.User.ProviderMode {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	h.renderServiceForm(c, newServiceForm(), "/services", "", false)
}

// CreateService builds the draft from the posted form and hands it to the
// backend. The redirect is the confirmation; no server echo is inspected.
func (h *HandlerBundle) CreateService(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	if !sess.User.ProviderMode {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	in := serviceInput(c)
	draft := forms.BuildServiceDraft(in)
	if _, err := h.Catalog.Create(c.Request.Context(), sess.Token, draft); err != nil {
		h.renderServiceForm(c, serviceFormFromInput(in), "/services", err.Error(), false)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard?tab=browse&notice=service_created")
}

// EditService renders the form pre-filled with an existing listing. Only the
// owning provider gets here; anyone else is sent back to browse.
func (h *HandlerBundle) EditService(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	id := c.Param("id")

	svc, err := h.Catalog.Get(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Warn("edit service: fetch failed", zap.String("id", id), zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	if svc.ProviderID != "" && svc.ProviderID != sess.User.ID {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	h.renderServiceForm(c, serviceFormFromService(svc), "/services/"+id, "", true)
}

// UpdateService replaces the listing with the posted draft.
func (h *HandlerBundle) UpdateService(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	id := c.Param("id")

	in := serviceInput(c)
	draft := forms.BuildServiceDraft(in)
	if _, err := h.Catalog.Update(c.Request.Context(), sess.Token, id, draft); err != nil {
		h.renderServiceForm(c, serviceFormFromInput(in), "/services/"+id, err.Error(), true)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard?tab=browse&notice=service_updated")
}

// DeleteService removes a listing. Failures are logged; the browse tab
// re-fetch shows whatever the backend now has.
func (h *HandlerBundle) DeleteService(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	id := c.Param("id")

	if err := h.Catalog.Delete(c.Request.Context(), sess.Token, id); err != nil {
		utils.GetLogger().Warn("delete service failed", zap.String("id", id), zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/dashboard?tab=browse")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard?tab=browse&notice=service_deleted")
}
