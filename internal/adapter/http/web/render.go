package web

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/internal/ui/controller"
)

var shortMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

var styleLabels = map[types.TravelStyle]string{
	types.Backpacker: "🎒 Mochilero",
	types.Standard:   "✈️ Estándar",
	types.Luxury:     "💎 Lujo",
}

type styleOption struct {
	Value string
	Label string
}

type loginView struct {
	State controller.LoginState
}

type listView struct {
	State          controller.TripListState
	Pending        *models.Trip
	ConfirmMessage string
}

type formView struct {
	State       controller.TripFormState
	Title       string
	SubmitLabel string
	Action      string
	Styles      []styleOption
	Groups      []string
}

func newFormView(state controller.TripFormState, action string) formView {
	v := formView{
		State:       state,
		Title:       "Nuevo Viaje",
		SubmitLabel: "Crear Viaje",
		Action:      action,
		Groups:      models.GroupSizes,
	}
	if state.EditMode {
		v.Title = "Editar Viaje"
		v.SubmitLabel = "Actualizar Viaje"
	}
	for _, s := range types.TravelStyles {
		v.Styles = append(v.Styles, styleOption{Value: s.String(), Label: styleLabels[s]})
	}
	return v
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": formatDate,
		"money":      money,
		"lower":      strings.ToLower,
	}
}

// formatDate renders dates the way Spanish locales abbreviate them, e.g. "1 jun 2025".
func formatDate(d models.Date) string {
	if d.IsZero() {
		return ""
	}
	return strconv.Itoa(d.Day()) + " " + shortMonths[d.Month()-1] + " " + strconv.Itoa(d.Year())
}

// money formats an amount with two decimals and comma thousands separators.
func money(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "." + frac
}
