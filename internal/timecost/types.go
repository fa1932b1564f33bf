package timecost

// CalculateRequest is the JSON body for POST /timecost/calculate. Numeric
// fields are raw text, exactly as typed. Blank hourly_rate, tax_rate and
// currency fall back to the remembered settings.
type CalculateRequest struct {
	Price      string `json:"price"`
	HourlyRate string `json:"hourly_rate"`
	TaxRate    string `json:"tax_rate"`
	IsNeed     *bool  `json:"is_need"` // null when the user did not choose
	Currency   string `json:"currency"`
}

// CalculateResponse is the JSON response for a successful calculation.
type CalculateResponse struct {
	Price      float64  `json:"price"`
	PriceLabel string   `json:"price_label"` // e.g. "$1,234.50"
	Currency   string   `json:"currency"`
	HourlyRate float64  `json:"hourly_rate"`
	TaxRate    float64  `json:"tax_rate"`
	IsNeed     *bool    `json:"is_need"`
	PreTax     WorkTime `json:"pre_tax"`
	AfterTax   WorkTime `json:"after_tax"`
}

// WorkTime renders one hour count both ways.
type WorkTime struct {
	Hours    float64 `json:"hours"` // one decimal place
	Days     int     `json:"days"`
	HoursOf  int     `json:"hours_of_day"`
	Minutes  int     `json:"minutes"`
	Text     string  `json:"text"`     // e.g. "16 hours, 40 minutes"
	Workdays float64 `json:"workdays"` // 8-hour days, two decimals
}

// FailureResponse is the JSON response for a rejected calculation.
type FailureResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func newWorkTime(hours float64, d Duration) WorkTime {
	return WorkTime{
		Hours:    RoundTenth(hours),
		Days:     d.Days,
		HoursOf:  d.Hours,
		Minutes:  d.Minutes,
		Text:     d.String(),
		Workdays: Workdays(hours),
	}
}
