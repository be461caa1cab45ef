package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/blog-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware negocia o idioma das mensagens de resposta
type I18nMiddleware struct {
	i18nService *i18n.Service
	// tag em minúsculas -> tag do arquivo de locale ("pt-br" -> "pt-BR")
	exact map[string]string
	// idioma base -> tag suportada ("pt" -> "pt-BR")
	base map[string]string
}

// NewI18nMiddleware indexa os idiomas carregados pelo serviço
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	m := &I18nMiddleware{
		i18nService: i18nService,
		exact:       make(map[string]string),
		base:        make(map[string]string),
	}

	langs := i18nService.GetSupportedLanguages()
	sort.Strings(langs)
	for _, lang := range langs {
		lower := strings.ToLower(lang)
		m.exact[lower] = lang

		primary, _, _ := strings.Cut(lower, "-")
		// "en" ganha de "en-GB" como destino de "en-US"
		if _, ok := m.base[primary]; !ok || lower == primary {
			m.base[primary] = lang
		}
	}

	return m
}

// DetectLanguage escolhe o idioma por ?lang=, depois Accept-Language
// (respeitando q=), depois o padrão; ecoa a escolha em Content-Language
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.match(c.Query("lang"))
		if lang == "" {
			lang = m.negotiate(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

type weightedTag struct {
	tag string
	q   float64
}

// negotiate devolve o idioma suportado de maior peso no header.
// Pesos iguais mantêm a ordem do cliente; q=0 exclui a tag.
func (m *I18nMiddleware) negotiate(header string) string {
	if header == "" {
		return ""
	}

	var tags []weightedTag
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "*" {
			continue
		}

		q := 1.0
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			q = parsed
		}
		if q <= 0 {
			continue
		}

		tags = append(tags, weightedTag{tag: tag, q: q})
	}

	sort.SliceStable(tags, func(i, j int) bool { return tags[i].q > tags[j].q })

	for _, t := range tags {
		if lang := m.match(t.tag); lang != "" {
			return lang
		}
	}
	return ""
}

// match resolve uma tag para um locale carregado, ignorando maiúsculas
// e caindo para o idioma base ("pt-PT" -> "pt-BR", "en-US" -> "en")
func (m *I18nMiddleware) match(tag string) string {
	lower := strings.ToLower(strings.TrimSpace(tag))
	if lower == "" {
		return ""
	}
	if lang, ok := m.exact[lower]; ok {
		return lang
	}

	primary, _, _ := strings.Cut(lower, "-")
	return m.base[primary]
}

// Translate traduz key no idioma negociado para a requisição.
// Sem o middleware no caminho devolve a própria chave.
func Translate(c *gin.Context, key string, params ...map[string]interface{}) string {
	svc, ok := c.Get(I18nServiceContextKey)
	if !ok {
		return key
	}
	service, ok := svc.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(c.GetString(LanguageContextKey), key, params...)
}
