package valueobjects

import "fmt"

// Section is a named area of the application gated by permission.
type Section string

const (
	SectionTickets  Section = "tickets"
	SectionUsuarios Section = "usuarios"
	SectionReportes Section = "reportes"
)

var validSections = map[Section]bool{
	SectionTickets:  true,
	SectionUsuarios: true,
	SectionReportes: true,
}

func (s Section) String() string {
	return string(s)
}

func (s Section) IsValid() bool {
	return validSections[s]
}

func NewSection(s string) (Section, error) {
	section := Section(s)
	if !section.IsValid() {
		return "", fmt.Errorf("invalid section: %s", s)
	}
	return section, nil
}

// AllSections returns every known section, the permission set granted
// to the designated super-admin on first sight.
func AllSections() []Section {
	return []Section{SectionTickets, SectionUsuarios, SectionReportes}
}

// Permissions is a set of sections stored as an ordered list.
type Permissions []Section

func (p Permissions) Contains(section Section) bool {
	for _, s := range p {
		if s == section {
			return true
		}
	}
	return false
}

func (p Permissions) Strings() []string {
	out := make([]string, len(p))
	for i, s := range p {
		out[i] = s.String()
	}
	return out
}

// NewPermissions validates a list of section names into a permission set.
func NewPermissions(sections []string) (Permissions, error) {
	perms := make(Permissions, 0, len(sections))
	for _, s := range sections {
		section, err := NewSection(s)
		if err != nil {
			return nil, err
		}
		if perms.Contains(section) {
			continue
		}
		perms = append(perms, section)
	}
	return perms, nil
}
