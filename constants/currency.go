package constants

// CurrencyRule maps a literal symbol or code occurring anywhere in the text
// to an ISO 4217 currency code. Rules are probed in order; first hit wins.
type CurrencyRule struct {
	Token string
	Code  string
}

var CurrencyRules = []CurrencyRule{
	{Token: "$", Code: "USD"},
	{Token: "USD", Code: "USD"},
	{Token: "CAD", Code: "CAD"},
	{Token: "EUR", Code: "EUR"},
	{Token: "€", Code: "EUR"},
	{Token: "£", Code: "GBP"},
}
