package model

// Company is the projection of a company document returned by exports:
// identity and the handful of descriptive fields clients consume.
type Company struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Country           string `json:"country,omitempty"`
	Industry          string `json:"industry,omitempty"`
	Website           string `json:"website,omitempty"`
	TradedAs          string `json:"traded_as,omitempty"`
	NumberOfEmployees int64  `json:"number_of_employees,omitempty"`
	Revenue           string `json:"revenue,omitempty"`
}

// Export is the outcome of a single export request: the resolved
// target, the companies it matched and the file they were written to.
type Export struct {
	Target    string
	Filename  string
	Path      string
	Companies []Company
}
