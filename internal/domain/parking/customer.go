package parking

// Customer identifies a parking customer. Customers are not consulted by
// pricing; the repository exists for enrichment of invoice output only.
type Customer struct {
	ID   string
	Name string
}
