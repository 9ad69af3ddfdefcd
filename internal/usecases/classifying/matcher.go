package classifying

import (
	"regexp"
	"strings"
	"unicode"
)

// Matcher decide se um texto contém algum dos termos de marca configurados.
// Uma instância é construída por execução e injetada em cada classificador;
// não existe matcher global.
type Matcher struct {
	pattern *regexp.Regexp
}

// NewMatcher compila os termos numa única alternação case-insensitive.
// Cada termo é flexibilizado antes da compilação: separadores internos
// (hífen, espaço, underscore) viram opcionais e intercambiáveis, e todo
// dígito aceita um espaço opcional antes. Assim "brand-name", "brand name",
// "brandname" e "brand 2" casam com uma única lista canônica de termos.
//
// O casamento é por termo, não por frase: termos genéricos demais casam com
// consultas comuns, e isso é responsabilidade de quem configura a lista.
func NewMatcher(terms []string) (*Matcher, error) {
	alternatives := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		alternatives = append(alternatives, flexibleTermPattern(term))
	}

	// Lista vazia produz um matcher que não casa com nada, nunca um
	// padrão vazio que casaria com tudo.
	if len(alternatives) == 0 {
		return &Matcher{}, nil
	}

	pattern, err := regexp.Compile("(?i)(" + strings.Join(alternatives, "|") + ")")
	if err != nil {
		return nil, err
	}

	return &Matcher{pattern: pattern}, nil
}

// Matches retorna verdadeiro se o texto contém algum termo de marca.
// Texto vazio nunca casa.
func (m *Matcher) Matches(text string) bool {
	if m == nil || m.pattern == nil || text == "" {
		return false
	}

	return m.pattern.MatchString(text)
}

// flexibleTermPattern converte um termo na sua forma flexível de regex.
func flexibleTermPattern(term string) string {
	var builder strings.Builder

	for _, r := range term {
		switch {
		case r == '-' || r == '_' || r == ' ':
			builder.WriteString("[-_ ]?")
		case unicode.IsDigit(r):
			builder.WriteString(" ?")
			builder.WriteRune(r)
		default:
			builder.WriteString(regexp.QuoteMeta(string(r)))
		}
	}

	return builder.String()
}
