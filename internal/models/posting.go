package models

// Sentinels substituted when a source omits a field. LinkNone marks a
// posting with no usable identity; such postings are never persisted.
const (
	CompanyUnknown = "N/A"
	LinkNone       = "N/A"
)

// Posting is the normalized record produced by source adapters and
// persisted to the store.
type Posting struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Stipend  string `json:"stipend"`
	Link     string `json:"link"`
	Source   string `json:"source"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// Header is the store's column order.
func Header() []string {
	return []string{"Title", "Company", "Location", "Stipend", "Link", "Source", "Date", "Category"}
}

// Row renders the posting in Header order.
func (p Posting) Row() []string {
	return []string{p.Title, p.Company, p.Location, p.Stipend, p.Link, p.Source, p.Date, p.Category}
}

// HasLink reports whether the posting carries a usable identity.
// The Link field is the sole dedup key.
func (p Posting) HasLink() bool {
	return p.Link != "" && p.Link != LinkNone
}
