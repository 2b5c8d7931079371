package models

// Charity is the record returned by the getters; the dashboard never writes it directly.
type Charity struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	ImageURL    string     `json:"image_url"`
	Active      bool       `json:"active"`
	WishLength  int        `json:"wish_length"`
	CreatedAt   *Timestamp `json:"created_at,omitempty"`
}

func (c Charity) Status() string {
	if c.Active {
		return "active"
	}
	return "inactive"
}

type Wish struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	UnitPrice    float64    `json:"unit_price"`
	Quantity     float64    `json:"quantity"`
	CurrentPrice float64    `json:"current_price"`
	TotalPrice   float64    `json:"total_price"`
	CharityName  string     `json:"charity_name"`
	Fulfilled    bool       `json:"fulfilled"`
	CreatedAt    *Timestamp `json:"created_at,omitempty"`
}

type Donation struct {
	ID          int64      `json:"id"`
	WishID      int64      `json:"wish_id"`
	WishName    string     `json:"wish_name"`
	CharityName string     `json:"charity_name"`
	Quantity    float64    `json:"quantity"`
	UnitPrice   float64    `json:"unit_price"`
	Amount      float64    `json:"amount"`
	PaymentDate *Timestamp `json:"payment_date,omitempty"`
	DonorEmail  string     `json:"donor_email"`
}

// WishProgress is a wish row as the dashboard shows it.
type WishProgress struct {
	Wish
	Progress int `json:"progress"`
}

type Stats struct {
	ActiveCharities int     `json:"active_charities"`
	TotalCharities  int     `json:"total_charities"`
	TotalDonations  float64 `json:"total_donations"`
	DonationCount   int     `json:"donation_count"`
}
