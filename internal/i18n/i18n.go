// Package i18n translates user-facing messages for the salinity service.
// Locales are negotiated from Accept-Language; English is the fallback.
package i18n

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// AcceptLanguageHeader is the request header consulted by GetLocale.
const AcceptLanguageHeader = "Accept-Language"

// DefaultLocale is served when no supported language matches.
const DefaultLocale = "en"

// supported lists the catalog locales; the first entry is the fallback.
var supported = []language.Tag{language.English, language.Portuguese, language.Dutch}

var matcher = language.NewMatcher(supported)

const localeKey = "i18n.locale"

// Locale resolves an Accept-Language value to a catalog locale. Regional
// variants map to their base language, so "pt-BR" serves "pt".
func Locale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	base, _ := supported[idx].Base()
	return base.String()
}

// GetLocale returns the locale negotiated for the request, caching it on the
// gin context.
func GetLocale(c *gin.Context) string {
	if v := c.GetString(localeKey); v != "" {
		return v
	}
	locale := Locale(c.GetHeader(AcceptLanguageHeader))
	c.Set(localeKey, locale)
	return locale
}

// T returns the message for key in locale, falling back to English and then to
// the key itself.
func T(locale, key string) string {
	if msg, ok := catalog[locale][key]; ok {
		return msg
	}
	if msg, ok := catalog[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Message translates key for the request's negotiated locale.
func Message(c *gin.Context, key string) string {
	return T(GetLocale(c), key)
}

var catalog = map[string]map[string]string{
	"en": {
		"error.invalid_history_query":       "Invalid history query: limit, skip and since must be well formed",
		"error.method_not_allowed":          "Method not allowed",
		"error.invalid_request_body":        "Invalid request body",
		"error.internal_error":              "An unexpected error occurred",
		"error.api_key_required":            "API key is required",
		"error.invalid_api_key":             "Invalid API key",
		"error.not_found":                   "Not found",
		"error.rate_limit_exceeded":         "Too many requests, please try again later",
		"error.timeout":                     "Request timed out",
		"error.service_unavailable":         "Storage is not available",
		"error.validation.inputs":           "inputs: ion concentrations are required and must be finite numbers",
		"error.validation.solver":           "max_iter must be between 1 and 1000 and tolerance between 0 and 1",
		"error.validation.assumptions":      "assumptions: invalid assumptions document",
		"error.validation.specific_gravity": "sp, t and p must be finite numbers and sp must not be negative",
		"error.invalid_calculation_id":      "Invalid calculation ID",
		"error.calculation_not_found":       "Calculation not found",
	},
	"pt": {
		"error.invalid_history_query":       "Consulta de histórico inválida: limit, skip e since devem ser válidos",
		"error.method_not_allowed":          "Método não permitido",
		"error.invalid_request_body":        "Corpo da requisição inválido",
		"error.internal_error":              "Ocorreu um erro inesperado",
		"error.api_key_required":            "Chave de API é obrigatória",
		"error.invalid_api_key":             "Chave de API inválida",
		"error.not_found":                   "Não encontrado",
		"error.rate_limit_exceeded":         "Muitas requisições, tente novamente mais tarde",
		"error.timeout":                     "Tempo limite da requisição esgotado",
		"error.service_unavailable":         "Armazenamento indisponível",
		"error.validation.inputs":           "inputs: as concentrações de íons são obrigatórias e devem ser números finitos",
		"error.validation.solver":           "max_iter deve estar entre 1 e 1000 e tolerance entre 0 e 1",
		"error.validation.assumptions":      "assumptions: documento de premissas inválido",
		"error.validation.specific_gravity": "sp, t e p devem ser números finitos e sp não pode ser negativo",
		"error.invalid_calculation_id":      "ID de cálculo inválido",
		"error.calculation_not_found":       "Cálculo não encontrado",
	},
	"nl": {
		"error.invalid_history_query":       "Ongeldige historiekquery: limit, skip en since moeten geldig zijn",
		"error.method_not_allowed":          "Methode niet toegestaan",
		"error.invalid_request_body":        "Ongeldige aanvraag body",
		"error.internal_error":              "Er is een onverwachte fout opgetreden",
		"error.api_key_required":            "API-sleutel is vereist",
		"error.invalid_api_key":             "Ongeldige API-sleutel",
		"error.not_found":                   "Niet gevonden",
		"error.rate_limit_exceeded":         "Te veel verzoeken, probeer het later opnieuw",
		"error.timeout":                     "Verzoek is verlopen",
		"error.service_unavailable":         "Opslag is niet beschikbaar",
		"error.validation.inputs":           "inputs: ionconcentraties zijn vereist en moeten eindige getallen zijn",
		"error.validation.solver":           "max_iter moet tussen 1 en 1000 liggen en tolerance tussen 0 en 1",
		"error.validation.assumptions":      "assumptions: ongeldig aannamedocument",
		"error.validation.specific_gravity": "sp, t en p moeten eindige getallen zijn en sp mag niet negatief zijn",
		"error.invalid_calculation_id":      "Ongeldige berekenings-ID",
		"error.calculation_not_found":       "Berekening niet gevonden",
	},
}
