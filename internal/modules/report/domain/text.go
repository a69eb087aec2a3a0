package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// Header identifies who the report is for.
type Header struct {
	Name         string
	Congregation string
	// Pioneer reports always state hours and visit counts; publishers only
	// state whether they took part.
	Pioneer bool
}

const Footer = "\nEnviado via app de relatório de campo."

// Text renders the monthly report sent to the congregation elder.
func Text(h Header, s Summary) string {
	b := strings.Builder{}
	b.WriteString("Relatório – " + s.Month.Label() + "\n")
	b.WriteString("Publicador: " + h.Name + "\n")
	b.WriteString("Congregação: " + h.Congregation + "\n\n")

	if h.Pioneer {
		b.WriteString("Total de horas: " + s.HoursLabel() + "\n")
		b.WriteString("Revisitas: " + strconv.Itoa(s.ReturnVisits) + "\n")
		b.WriteString("Estudos bíblicos: " + strconv.Itoa(s.BibleStudies) + "\n")
		writeCounters(&b, s)
	} else if s.TotalHours() > 0 {
		b.WriteString("Participei no ministério: Sim\n")
		writeCount(&b, "Revisitas", s.ReturnVisits)
		writeCount(&b, "Estudos bíblicos", s.BibleStudies)
		writeCounters(&b, s)
	} else {
		b.WriteString("Participei no ministério: Não\n")
	}

	b.WriteString(Footer)
	return b.String()
}

func writeCounters(b *strings.Builder, s Summary) {
	writeCount(b, "Publicações", s.Publications)
	writeCount(b, "Revisitas abertas", s.ReopenedVisits)
	writeCount(b, "Cartas", s.Letters)
}

func writeCount(b *strings.Builder, label string, n int) {
	if n > 0 {
		b.WriteString(label + ": " + strconv.Itoa(n) + "\n")
	}
}

// ShareLink builds a WhatsApp deep link carrying text, addressed to phone
// when it has digits.
func ShareLink(text, phoneDigits string) string {
	if phoneDigits == "" {
		return "https://wa.me/?text=" + EncodeURIComponent(text)
	}
	return "https://wa.me/" + phoneDigits + "?text=" + EncodeURIComponent(text)
}

var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers do for a URI component:
// spaces become %20 and !'()* stay literal.
func EncodeURIComponent(s string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(s))
}
