package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"frotaweb/pkg/i18n"
	"frotaweb/pkg/middleware"
	"frotaweb/pkg/models"
	"frotaweb/pkg/pages"
	"frotaweb/pkg/refdata"
	"frotaweb/pkg/response"
)

// GetCities returns the city options of a state
// @Summary List the cities of a state
// @Description Returns the cities offered by the city select for a two-letter state code. Unknown states fall back to the placeholder list.
// @Tags Reference Data
// @Produce json
// @Param state query string true "State code" example(SP)
// @Success 200 {object} response.Envelope{data=models.CitiesResponse}
// @Failure 400 {object} models.ErrorResponse "Missing state"
// @Router /cities [get]
func (h *HandlerService) GetCities(c *gin.Context) {
	state := strings.ToUpper(strings.TrimSpace(c.Query("state")))
	if state == "" {
		HandleError(c, NewBadRequestError("Invalid parameter", fmt.Errorf("%w: state is required", ErrInvalidParam)))
		return
	}
	response.OK(c, models.CitiesResponse{
		State:  state,
		Known:  refdata.HasState(state),
		Cities: refdata.CitiesFor(state),
	})
}

// GetReference returns every enumeration used by the forms
// @Summary Get reference data
// @Description Returns states, cities per state, partner segments, fuel brands, client segments, fleet sizes and solutions
// @Tags Reference Data
// @Produce json
// @Success 200 {object} response.Envelope{data=refdata.Catalog}
// @Router /reference [get]
func (h *HandlerService) GetReference(c *gin.Context) {
	response.OK(c, refdata.NewCatalog())
}

// GetOrganization returns the schema.org organization record
// @Summary Get organization structured data
// @Description Returns the Organization record embedded as JSON-LD in the home page
// @Tags Site
// @Produce json
// @Success 200 {object} response.Envelope{data=seo.OrganizationSchema}
// @Router /organization [get]
func (h *HandlerService) GetOrganization(c *gin.Context) {
	response.OK(c, h.resolver.SEO().Organization())
}

// GetPages lists the registered pages
// @Summary List pages
// @Description Returns every registered route with its localized title and canonical URL
// @Tags Site
// @Produce json
// @Param lang query string false "Locale (pt or en)"
// @Success 200 {object} response.Envelope{data=models.PageListResponse}
// @Router /pages [get]
func (h *HandlerService) GetPages(c *gin.Context) {
	locale := middleware.LocaleFrom(c)
	list := models.PageListResponse{Locale: locale.String()}

	for _, d := range pages.Routes() {
		list.Pages = append(list.Pages, h.summarize(d, locale))
	}
	list.Count = len(list.Pages)

	response.OK(c, list)
}

func (h *HandlerService) summarize(d pages.Descriptor, locale i18n.Locale) models.PageSummary {
	summary := models.PageSummary{
		Route:     d.Route,
		Title:     h.resolver.Translate(locale, d.TitleKey),
		Canonical: h.resolver.SEO().CanonicalURL(d.Route),
		NoIndex:   d.NoIndex,
		Form:      string(d.Form),
	}
	for _, set := range d.CarouselSets() {
		summary.Carousels = append(summary.Carousels, set.Name)
	}
	return summary
}
