package navigation

// Item is an entry in the site header.
type Item struct {
	Label string
	// Section is set for entries that scroll to a home page section.
	Section string
	Href    string
	// Scroll is true when the entry scrolls in place instead of navigating.
	Scroll   bool
	Download bool
}

// Items returns the header entries for the page at path. On the home page
// section entries scroll in place; elsewhere they link back to /#section.
func Items(path, resumeHref string) []Item {
	home := path == "/"
	section := func(label, id string) Item {
		it := Item{Label: label, Section: id, Scroll: home}
		if home {
			it.Href = "#" + id
		} else {
			it.Href = "/#" + id
		}
		return it
	}
	return []Item{
		section("Home", SectionHome),
		section("About", SectionAbout),
		section("Work", SectionWork),
		{Label: "Certifications", Href: "/certifications"},
		{Label: "Skills", Href: "/skills"},
		section("Contact", SectionContact),
		{Label: "Resume", Href: resumeHref, Download: true},
	}
}
