package resume

import "strings"

// Facts is the structured record extracted from one resume document.
// Scalar fields hold the first match found in the text (empty if none).
// List fields are deduplicated, lexicographically sorted sets of line
// fragments. A Facts value is immutable once extraction returns it;
// re-extraction on re-upload replaces it wholesale.
type Facts struct {
	Name     string
	Email    string
	Phone    string
	GitHub   string
	LinkedIn string

	Education      []string
	Skills         []string
	Experience     []string
	Projects       []string
	Certifications []string
	Internships    []string
	Achievements   []string
}

// IsEmpty reports whether extraction produced nothing usable.
func (f Facts) IsEmpty() bool {
	return f.Name == "" && f.Email == "" && f.Phone == "" &&
		f.GitHub == "" && f.LinkedIn == "" &&
		len(f.Education) == 0 && len(f.Skills) == 0 &&
		len(f.Experience) == 0 && len(f.Projects) == 0 &&
		len(f.Certifications) == 0 && len(f.Internships) == 0 &&
		len(f.Achievements) == 0
}

// Summary renders the facts as labeled lines for prompt embedding.
// Empty fields render as "N/A" so the model sees every category.
func (f Facts) Summary() string {
	var b strings.Builder

	writeLine := func(label, value string) {
		if value == "" {
			value = "N/A"
		}
		b.WriteString("- ")
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	writeLine("Name", f.Name)
	writeLine("Skills", strings.Join(f.Skills, ", "))
	writeLine("Experience", strings.Join(f.Experience, ", "))
	writeLine("Projects", strings.Join(f.Projects, ", "))
	writeLine("Education", strings.Join(f.Education, ", "))
	writeLine("Certifications", strings.Join(f.Certifications, ", "))

	return strings.TrimRight(b.String(), "\n")
}
