package market

import "strconv"

// CompanyID uniquely identifies a listed company.
type CompanyID int64

// Company represents a listed company.
type Company struct {
	ID   int64
	Name string
}

// CompanyID returns the CompanyID for this Company.
func (c Company) CompanyID() CompanyID {
	return CompanyID(c.ID)
}

// Price is a price in whole won.
type Price int64

func (p Price) String() string { return strconv.FormatInt(int64(p), 10) }

// Price bounds enforced by the engine on every tick.
const (
	MinPrice Price = 100
	MaxPrice Price = 1_000_000
)

// Clamp returns p forced into the [MinPrice, MaxPrice] range.
func Clamp(p Price) Price {
	if p < MinPrice {
		return MinPrice
	}
	if p > MaxPrice {
		return MaxPrice
	}
	return p
}

// DefaultListing returns the fixed ten-company roster.
func DefaultListing() []Company {
	return []Company{
		{ID: 1, Name: "Gemini AI"},
		{ID: 2, Name: "Streamlit Solutions"},
		{ID: 3, Name: "Data World"},
		{ID: 4, Name: "Python Power"},
		{ID: 5, Name: "Algorithm Labs"},
		{ID: 6, Name: "Cloud Nine"},
		{ID: 7, Name: "AI Vision"},
		{ID: 8, Name: "Code Master"},
		{ID: 9, Name: "Quantum Leap"},
		{ID: 10, Name: "BigData Inc."},
	}
}

// ListingFromNames builds a roster from plain names, assigning IDs in listing order.
func ListingFromNames(names []string) []Company {
	listing := make([]Company, 0, len(names))
	for i, name := range names {
		listing = append(listing, Company{ID: int64(i + 1), Name: name})
	}
	return listing
}
