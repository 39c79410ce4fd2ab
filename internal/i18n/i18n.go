// Package i18n provides internationalization support for the lysate impact service.
// It handles translation of user-facing messages, error messages and number formatting.
package i18n

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once

	// supportedTags lists the locales with message catalogs; the first is the fallback.
	supportedTags = []language.Tag{language.English, language.Portuguese, language.Dutch}
	matcher       = language.NewMatcher(supportedTags)
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// MatchLocale returns the best supported base locale for an Accept-Language
// value or a plain tag such as "pt-BR".
func MatchLocale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	base, _ := supportedTags[idx].Base()
	return base.String()
}

// GetLocale extracts the locale from the gin context's Accept-Language header.
func GetLocale(c *gin.Context) string {
	return MatchLocale(c.GetHeader(AcceptLanguageHeader))
}

// Printer returns a number-aware printer for the locale, e.g. "7,615,042" in
// English and "7.615.042" in Dutch.
func Printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":          "Invalid request",
			"error.invalid_request_body":     "Invalid request body",
			"error.internal_error":           "An unexpected error occurred",
			"error.api_key_required":         "API key is required",
			"error.invalid_api_key":          "Invalid API key",
			"error.not_found":                "Not found",
			"error.rate_limit_exceeded":      "Too many requests, please try again later",
			"error.validation.adoption_rate": "adoption_rate: must be between 0 and 1",
			"error.validation.effect_size":   "effect_size: must be a finite number",
			"error.configuration":            "The parameter set is misconfigured",
			"error.unknown_table":            "Unknown export table",
			"error.timeout":                  "Request timeout",

			// Console summary
			"summary.title":                "Antibiotic courses avoided with bacterial lysates",
			"summary.population":           "Children with RRTI",
			"summary.baseline":             "Baseline annual courses",
			"summary.scenarios":            "Adoption scenarios",
			"summary.confidence_intervals": "95% confidence intervals",
			"summary.sensitivity":          "Prevalence sensitivity",
			"summary.adoption":             "Adoption",
			"summary.children_treated":     "Children treated",
			"summary.courses_avoided":      "Courses avoided",
			"summary.reduction":            "Reduction",
			"summary.prevalence":           "Prevalence",
			"summary.lower_bound":          "Lower bound",
			"summary.point_estimate":       "Point estimate",
			"summary.upper_bound":          "Upper bound",
		},
		"pt": {
			// Error messages
			"error.invalid_request":          "Requisição inválida",
			"error.invalid_request_body":     "Corpo da requisição inválido",
			"error.internal_error":           "Ocorreu um erro inesperado",
			"error.api_key_required":         "Chave de API é obrigatória",
			"error.invalid_api_key":          "Chave de API inválida",
			"error.not_found":                "Não encontrado",
			"error.rate_limit_exceeded":      "Muitas requisições, tente novamente mais tarde",
			"error.validation.adoption_rate": "adoption_rate: deve estar entre 0 e 1",
			"error.validation.effect_size":   "effect_size: deve ser um número finito",
			"error.configuration":            "O conjunto de parâmetros está mal configurado",
			"error.unknown_table":            "Tabela de exportação desconhecida",
			"error.timeout":                  "Tempo limite da requisição esgotado",

			// Console summary
			"summary.title":                "Cursos de antibióticos evitados com lisados bacterianos",
			"summary.population":           "Crianças com IRR",
			"summary.baseline":             "Cursos anuais de referência",
			"summary.scenarios":            "Cenários de adoção",
			"summary.confidence_intervals": "Intervalos de confiança de 95%",
			"summary.sensitivity":          "Sensibilidade à prevalência",
			"summary.adoption":             "Adoção",
			"summary.children_treated":     "Crianças tratadas",
			"summary.courses_avoided":      "Cursos evitados",
			"summary.reduction":            "Redução",
			"summary.prevalence":           "Prevalência",
			"summary.lower_bound":          "Limite inferior",
			"summary.point_estimate":       "Estimativa pontual",
			"summary.upper_bound":          "Limite superior",
		},
		"nl": {
			// Error messages
			"error.invalid_request":          "Ongeldig verzoek",
			"error.invalid_request_body":     "Ongeldige aanvraag body",
			"error.internal_error":           "Er is een onverwachte fout opgetreden",
			"error.api_key_required":         "API-sleutel is vereist",
			"error.invalid_api_key":          "Ongeldige API-sleutel",
			"error.not_found":                "Niet gevonden",
			"error.rate_limit_exceeded":      "Te veel verzoeken, probeer het later opnieuw",
			"error.validation.adoption_rate": "adoption_rate: moet tussen 0 en 1 liggen",
			"error.validation.effect_size":   "effect_size: moet een eindig getal zijn",
			"error.configuration":            "De parameterset is onjuist geconfigureerd",
			"error.unknown_table":            "Onbekende exporttabel",
			"error.timeout":                  "Time-out van verzoek",

			// Console summary
			"summary.title":                "Vermeden antibioticakuren met bacteriële lysaten",
			"summary.population":           "Kinderen met RRTI",
			"summary.baseline":             "Jaarlijkse basiskuren",
			"summary.scenarios":            "Adoptiescenario's",
			"summary.confidence_intervals": "95%-betrouwbaarheidsintervallen",
			"summary.sensitivity":          "Gevoeligheid voor prevalentie",
			"summary.adoption":             "Adoptie",
			"summary.children_treated":     "Behandelde kinderen",
			"summary.courses_avoided":      "Vermeden kuren",
			"summary.reduction":            "Reductie",
			"summary.prevalence":           "Prevalentie",
			"summary.lower_bound":          "Ondergrens",
			"summary.point_estimate":       "Puntschatting",
			"summary.upper_bound":          "Bovengrens",
		},
	}
}
