package layouts

// CalculateTitle builds the document title from a page title and the site
// owner's name.
func CalculateTitle(title, owner string) string {
	switch {
	case title != "" && owner != "":
		return title + " - " + owner
	case title != "":
		return title
	case owner != "":
		return owner
	default:
		return "Portfolio"
	}
}
