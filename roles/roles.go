package roles

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Role is the authorization tier derived from an employee's grade.
type Role string

const (
	Admin    Role = "admin"
	RH       Role = "rh"
	Employee Role = "employee"
	Visitor  Role = "visitor"
)

// rule pairs a keyword set with the role it grants. Rules are evaluated in
// order and the first keyword hit wins, so overlapping sets (every DRH also
// contains RH) resolve by precedence rather than by accident.
type rule struct {
	role     Role
	keywords []string
}

// Keywords are stored folded (upper case, accents stripped) and matched as
// substrings anywhere in the grade.
var rules = []rule{
	{Admin, []string{"PATRON", "CO PATRON"}},
	{RH, []string{"DRH", "RH"}},
	{Employee, []string{"RESPONSABLE", "CHEF", "CONFIRME", "MECANO", "APPRENTI", "STAGIAIRE"}},
}

// FromGrade maps a free-text grade to a Role. Pure and deterministic;
// unmatched grades fall through to Visitor.
func FromGrade(grade string) Role {
	folded := fold(grade)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(folded, kw) {
				return r.role
			}
		}
	}
	return Visitor
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold upper-cases and strips combining marks so "Mécano confirmé" matches the
// accent-free keyword table whichever way the sheet was typed.
func fold(s string) string {
	stripped, _, err := transform.String(foldTransformer, s)
	if err != nil {
		stripped = s
	}
	return strings.ToUpper(stripped)
}
